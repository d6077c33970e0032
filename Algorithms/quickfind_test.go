package Algorithms

import "testing"

func TestQuickFindContiguity(t *testing.T) {
	const n = 64
	qf := NewQuickFind(n)
	qf.Init(n)
	for i := int64(1); i <= n; i += 2 {
		qf.Delete(i)
	}
	// after deleting every odd index, every successor must stay in range and
	// be a fixpoint of Successor.
	for i := int64(0); i <= n+1; i++ {
		r := qf.Successor(i)
		if r < i || r > n+1 {
			t.Fatalf("Successor(%d) = %d out of range", i, r)
		}
		if qf.Successor(r) != r {
			t.Fatalf("Successor(%d) = %d is not a fixpoint", i, r)
		}
	}
}

func TestQuickFindMonotone(t *testing.T) {
	const n = 100
	qf := NewQuickFind(n)
	qf.Init(n)
	for _, d := range []int64{10, 11, 12, 50, 51} {
		qf.Delete(d)
	}
	for i := int64(0); i < n; i++ {
		if qf.Successor(i) > qf.Successor(i+1) {
			t.Fatalf("Successor not monotone at %d: Successor(i)=%d > Successor(i+1)=%d", i, qf.Successor(i), qf.Successor(i+1))
		}
	}
}
