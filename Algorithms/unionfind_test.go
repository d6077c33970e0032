package Algorithms

import "testing"

func TestUnionFindCompressesPath(t *testing.T) {
	const n = 10
	uf := NewUnionFind(n)
	uf.Init(n)
	for i := int64(1); i <= n; i++ {
		uf.Delete(i)
	}
	// Weighted union keeps the heavier root: 2 absorbs 1 on the first (tied)
	// union and then outweighs every singleton it meets, so 2 stays the root
	// while succ[2] follows the deletions up to the sentinel n+1.
	root := uf.Find(1)
	if root != 2 {
		t.Fatalf("Find(1) = %d, want 2", root)
	}
	if got := uf.succ[root]; got != n+1 {
		t.Fatalf("succ[%d] = %d, want %d", root, got, n+1)
	}
	for i := int64(1); i <= n; i++ {
		if uf.parent[i] != root {
			t.Errorf("parent[%d] = %d after Find, want %d (not compressed)", i, uf.parent[i], root)
		}
	}
}

func TestUnionFindSuccSurvivesWeightedUnion(t *testing.T) {
	const n = 8
	uf := NewUnionFind(n)
	uf.Init(n)
	uf.Delete(5)
	if got := uf.Successor(5); got != 6 {
		t.Fatalf("Successor(5) after deleting 5 = %d, want 6", got)
	}
	uf.Delete(6)
	if got := uf.Successor(5); got != 7 {
		t.Fatalf("Successor(5) after deleting 5,6 = %d, want 7", got)
	}
}
