package Forest

import "testing"

// TestCaterpillarShape exercises the concrete scenario from spec.md §8 (4):
// after Delete(1), Delete(2), Delete(3), Delete(4) on n=4, the forest is a
// caterpillar chain 1->2->3->4->5, giving max height 4 rooted at 5, and the
// deepest node is 1.
func TestCaterpillarShape(t *testing.T) {
	f := New(4)
	f.Init(4)
	for _, i := range []int64{1, 2, 3, 4} {
		f.Delete(i)
	}
	if f.maxHeight != 4 {
		t.Fatalf("maxHeight = %d, want 4", f.maxHeight)
	}
	if f.rootsOfHeight[4] != 5 {
		t.Fatalf("rootsOfHeight[4] = %d, want 5", f.rootsOfHeight[4])
	}
	if got := f.DeepestNode(); got != 1 {
		t.Fatalf("DeepestNode() = %d, want 1", got)
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// TestSuccessorFlattensCaterpillar continues the scenario above: Successor(1)
// path-compresses the whole chain directly onto root 5, turning it into a
// star of 4 leaves. A star's root has height 1 (1 + max(leaf heights, all 0)),
// not 0 - flattening a depth-4 chain cannot make the tree shallower than a
// single star level once it has more than one leaf. Validate confirms the
// seven structural invariants (and the btree max-height cross-check) still
// hold after compression.
func TestSuccessorFlattensCaterpillar(t *testing.T) {
	f := New(4)
	f.Init(4)
	for _, i := range []int64{1, 2, 3, 4} {
		f.Delete(i)
	}
	root := f.Successor(1)
	if root != 5 {
		t.Fatalf("Successor(1) = %d, want 5", root)
	}
	if f.maxHeight != 1 {
		t.Fatalf("maxHeight after Successor(1) = %d, want 1", f.maxHeight)
	}
	if f.height[5] != 1 {
		t.Fatalf("height[5] = %d, want 1", f.height[5])
	}
	for _, leaf := range []int64{1, 2, 3, 4} {
		if f.parent[leaf] != 5 {
			t.Errorf("parent[%d] = %d, want 5 (direct child of root after compression)", leaf, f.parent[leaf])
		}
		if f.height[leaf] != 0 {
			t.Errorf("height[%d] = %d, want 0", leaf, f.height[leaf])
		}
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSuccessorIsFixpointAndInRange(t *testing.T) {
	const n = 64
	f := New(n)
	f.Init(n)
	for i := int64(1); i <= n; i += 3 {
		f.Delete(i)
	}
	for i := int64(0); i <= n+1; i++ {
		r := f.Successor(i)
		if r < i || r > n+1 {
			t.Fatalf("Successor(%d) = %d out of range", i, r)
		}
		if r2 := f.Successor(r); r2 != r {
			t.Fatalf("Successor(%d) = %d is not a fixpoint: Successor(%d) = %d", i, r, r, r2)
		}
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestDeepestNodeTracksWorstCaseShape(t *testing.T) {
	const n = 32
	f := New(n)
	f.Init(n)
	for i := int64(1); i <= n; i++ {
		f.Delete(i)
		deepest := f.DeepestNode()
		if deepest < 1 || deepest > n {
			t.Fatalf("DeepestNode() = %d out of range after Delete(%d)", deepest, i)
		}
		f.Successor(deepest)
		if err := f.Validate(); err != nil {
			t.Fatalf("Validate after Delete(%d): %v", i, err)
		}
	}
}

func TestInitIsAllSingletons(t *testing.T) {
	const n = 8
	f := New(n)
	f.Init(n)
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for i := int64(0); i <= n+1; i++ {
		if f.Successor(i) != i {
			t.Errorf("Successor(%d) = %d, want %d", i, f.Successor(i), i)
		}
	}
}
