package Bench

import "github.com/petar/GoLLRB/llrb"

// int64Item adapts int64 to llrb.Item so a red-black tree can serve as a
// second, structurally independent live-set oracle.
type int64Item int64

func (a int64Item) Less(than llrb.Item) bool {
	return a < than.(int64Item)
}

// oracle is an independent successor-delete reference backed by a red-black
// tree rather than index arithmetic over an array, used to cross-check the
// array-parent-2-pass reference before that reference is trusted to validate
// every candidate (see DESIGN.md's DOMAIN STACK entry for Bench).
type oracle struct {
	tree *llrb.LLRB
}

func newOracle(n int64) *oracle {
	t := llrb.New()
	for i := int64(0); i <= n+1; i++ {
		t.ReplaceOrInsert(int64Item(i))
	}
	return &oracle{tree: t}
}

func (o *oracle) delete(i int64) {
	o.tree.Delete(int64Item(i))
}

func (o *oracle) successor(i int64) int64 {
	var result int64 = -1
	o.tree.AscendGreaterOrEqual(int64Item(i), func(item llrb.Item) bool {
		result = int64(item.(int64Item))
		return false
	})
	return result
}
