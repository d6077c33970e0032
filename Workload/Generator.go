// Package Workload implements the C7 operation-stream generators: query_one,
// worst_case and random. Each produces a flat, 0-terminated stream of signed
// int64 operations (positive x = Successor(x), negative x = Delete(-x)) plus
// the reference output obtained by replaying the stream on the array-parent
// 2-pass structure.
package Workload

import (
	"fmt"
	"math/rand"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/brodal/succdel/Algorithms"
	"github.com/brodal/succdel/Forest"
)

// MaxOperations bounds every generated stream per spec §7's precondition
// taxonomy: emitting more than this is a fatal bug in the generator itself,
// never a runtime condition a caller can trigger.
func MaxOperations(maxN int64) int64 { return 9*maxN + 1 }

// Workload is a generated operation stream together with its reference
// output and a human-readable label identifying the family and density.
type Workload struct {
	N      int64
	Label  string
	Input  []int64
	Output []int64
}

// QueryOne emits Delete(1..n) followed by n copies of Successor(1).
func QueryOne(n int64) *Workload {
	ops := arraylist.New()
	for i := int64(1); i <= n; i++ {
		ops.Add(-i)
	}
	for i := int64(0); i < n; i++ {
		ops.Add(int64(1))
	}
	return finish(n, "query_one", ops)
}

// WorstCase interleaves Delete(1..n) with, after each deletion, queries on
// the current deepest node in a height-tracking forest until at least
// floor(i*alpha) queries have been emitted so far. The forest's own
// Successor is applied after each such query so subsequent deepest-node
// queries reflect the forest's evolved shape, per spec §9's explicit
// "do not substitute a different reference here".
func WorstCase(n int64, alpha float64) *Workload {
	ops := arraylist.New()
	f := Forest.New(n)
	f.Init(n)
	queries := int64(0)
	for i := int64(1); i <= n; i++ {
		f.Delete(i)
		ops.Add(-i)
		for float64(queries) < float64(i)*alpha {
			j := f.DeepestNode()
			f.Successor(j)
			ops.Add(j)
			queries++
		}
	}
	return finish(n, fmt.Sprintf("worst_case %.3f", alpha), ops)
}

// Random interleaves n uniformly random deletions in [1, n-1] with worst-case
// queries, exactly as WorstCase. Duplicate deletions are possible and
// tolerated by the forest oracle (re-deleting an already-deleted node unlinks
// it and links it under its right neighbour again, which leads to the same
// root), and the recorded reference output comes from the array-parent 2-pass
// structure, whose own delete is unconditional and on an already-dead index
// just resets its parent to the right neighbour rather than corrupting
// state — so every candidate answers the same way after a duplicate delete
// as after its first occurrence. How many duplicates occurred is still
// tallied in a concurrent hashmap.Map and logged rather than silently
// absorbed, per spec §9's open question about duplicates (see DESIGN.md).
func Random(n int64, alpha float64, rng *rand.Rand) *Workload {
	ops := arraylist.New()
	f := Forest.New(n)
	f.Init(n)
	dupCount := hashmap.New[int64, int]()
	queries := int64(0)
	for i := int64(1); i <= n; i++ {
		d := rng.Int63n(n-1) + 1
		if c, ok := dupCount.Get(d); ok {
			dupCount.Set(d, c+1)
		} else {
			dupCount.Set(d, 0)
		}
		f.Delete(d)
		ops.Add(-d)
		for float64(queries) < float64(i)*alpha {
			j := f.DeepestNode()
			f.Successor(j)
			ops.Add(j)
			queries++
		}
	}
	totalDups := 0
	dupCount.Range(func(_ int64, c int) bool {
		totalDups += c
		return true
	})
	if totalDups > 0 {
		fmt.Printf("random %.3f: n=%d, %d duplicate deletions (safe: every candidate's delete is a no-op or harmless parent reset on an already-dead index)\n", alpha, n, totalDups)
	}
	return finish(n, fmt.Sprintf("random %.3f", alpha), ops)
}

// finish terminates the stream with 0, flattens it to []int64, checks the
// §7 precondition bound, and populates Output by replaying on the
// array-parent 2-pass reference structure. Output is parallel to Input: 0 for
// every delete and for the terminator.
func finish(n int64, label string, ops *arraylist.List) *Workload {
	ops.Add(int64(0))
	values := ops.Values()
	input := make([]int64, len(values))
	for i, v := range values {
		input[i] = v.(int64)
	}
	if int64(len(input)) > MaxOperations(n)+1 {
		panic(fmt.Sprintf("Workload: %s emitted %d operations, exceeding the bound of %d", label, len(input), MaxOperations(n)))
	}

	ref := Algorithms.NewArrayParentTwoPass(n)
	ref.Init(n)
	output := make([]int64, 0, len(input))
	for _, x := range input {
		if x == 0 {
			output = append(output, 0)
			break
		}
		if x > 0 {
			output = append(output, ref.Successor(x))
		} else {
			output = append(output, 0)
			ref.Delete(-x)
		}
	}
	return &Workload{N: n, Label: label, Input: input, Output: output}
}
