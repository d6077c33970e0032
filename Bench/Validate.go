// Package Bench implements the C8 validator and best-of-k timer: every
// candidate structure is replayed against a generated workload and checked
// for exact agreement with the recorded reference output before it is ever
// timed, so timed code is known-correct.
package Bench

import (
	"fmt"

	"github.com/brodal/succdel/Algorithms"
	"github.com/brodal/succdel/Workload"
)

// MismatchError reports a disagreement between a candidate's replayed output
// and the recorded reference output (or between the two reference oracles
// themselves). It is a typed error, not a bare panic, so a caller can choose
// to skip one bad scenario and keep going; cmd/succdel still escalates every
// MismatchError fatally via log.Fatalf, matching spec §7's "no recoverable
// errors" taxonomy, but the type gives that choice to the caller rather than
// baking it into the package.
type MismatchError struct {
	Algorithm string
	Position  int
	Input     int64
	Got, Want int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: operation %d (input %d) returned %d, want %d", e.Algorithm, e.Position, e.Input, e.Got, e.Want)
}

// CrossCheckOracle recomputes wl's reference output independently, using a
// red-black-tree live set rather than the array-parent reference that
// produced wl.Output, and returns a MismatchError on the first disagreement.
// This must pass before wl.Output is trusted to validate any candidate.
func CrossCheckOracle(wl *Workload.Workload) error {
	o := newOracle(wl.N)
	pos := 0
	for _, x := range wl.Input {
		if x == 0 {
			break
		}
		if x > 0 {
			got := o.successor(x)
			if got != wl.Output[pos] {
				return &MismatchError{Algorithm: "oracle", Position: pos, Input: x, Got: got, Want: wl.Output[pos]}
			}
		} else {
			o.delete(-x)
		}
		pos++
	}
	return nil
}

// Validate replays wl.Input on a freshly-Init'd alg and checks every
// Successor reply against wl.Output. Delete preconditions (1 <= i <= n) are
// exactly those the generator itself already respects, so no additional
// bounds checking is done here beyond the slice indexing Go already does.
func Validate(alg Algorithms.Algorithm, wl *Workload.Workload) error {
	alg.Init(wl.N)
	pos := 0
	for _, x := range wl.Input {
		if x == 0 {
			break
		}
		if x > 0 {
			got := alg.Successor(x)
			if got != wl.Output[pos] {
				return &MismatchError{Algorithm: alg.Name(), Position: pos, Input: x, Got: got, Want: wl.Output[pos]}
			}
		} else {
			alg.Delete(-x)
		}
		pos++
	}
	return nil
}
