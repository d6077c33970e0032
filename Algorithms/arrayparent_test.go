package Algorithms

import (
	"math/rand"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

// TestArrayParentVariantsAgree fuzzes each variant against the naive
// walk-no-compression reference on the same random (no-duplicate) delete
// sequence and checks every successor reply agrees.
func TestArrayParentVariantsAgree(t *testing.T) {
	const n = 500
	perm := rg.Perm(int(n))
	deletes := make([]int64, n)
	for i, p := range perm {
		deletes[i] = int64(p) + 1
	}

	variants := []func(int64) *ArrayParent{
		NewArrayParentNaive,
		NewArrayParentRecursive,
		NewArrayParentTwoPass,
		NewArrayParentHalving,
	}
	algs := make([]*ArrayParent, len(variants))
	for i, ctor := range variants {
		algs[i] = ctor(n)
		algs[i].Init(n)
	}

	for step, d := range deletes {
		for _, alg := range algs {
			alg.Delete(d)
		}
		if step%17 != 0 {
			continue
		}
		for q := int64(0); q <= n+1; q += 23 {
			want := algs[0].Successor(q)
			for _, alg := range algs[1:] {
				if got := alg.Successor(q); got != want {
					t.Fatalf("%s: Successor(%d) = %d, want %d (agreeing with %s)", alg.Name(), q, got, want, algs[0].Name())
				}
			}
		}
	}
}

func TestArrayParentSentinelNeverDeletedMeansAFixed(t *testing.T) {
	const n = 4
	alg := NewArrayParentTwoPass(n)
	alg.Init(n)
	if alg.Successor(n + 1); alg.a[n+1] != n+1 {
		t.Fatalf("sentinel n+1 mutated")
	}
	if alg.a[0] != 0 {
		t.Fatalf("sentinel 0 mutated")
	}
}
