package Bench

import (
	"time"

	"github.com/brodal/succdel/Algorithms"
	"github.com/brodal/succdel/Workload"
)

const (
	// BestOf is the number of independent timing trials; the minimum
	// per-replay average across all of them is reported.
	BestOf = 3
	// MinRepeats is the starting repeat count for the first trial.
	MinRepeats = 5
	// MinTestTime is the minimum wall-clock duration (seconds) a trial must
	// reach before its average is trusted.
	MinTestTime = 1.0
)

// TrashSink accumulates an xor of every successor reply seen during timing,
// across every Time call for the life of the process. Nothing ever reads it
// back except to print it, which is exactly the point: the optimizer cannot
// prove the accumulated value is unused, so it cannot elide the Successor
// calls being timed.
var TrashSink int64

// Time measures the best-of-BestOf per-replay average wall-clock time of
// replaying wl's entire operation stream against alg, re-initialising alg
// before every replay. The repeat counter and target repeat count persist
// across trials (a later trial resumes counting where the previous one left
// off rather than starting from zero), matching the adaptive-doubling timer
// in the original evaluation harness exactly: a later trial's elapsed time
// is measured only over the repeats it newly performs, but is still divided
// by the cumulative repeat count, which is why best-of-k keeps finding lower
// times on later trials when earlier ones undershot MinTestTime.
func Time(alg Algorithms.Algorithm, wl *Workload.Workload) float64 {
	bestTime := -1.0
	r := 0
	repeats := MinRepeats
	for trial := 0; trial < BestOf; trial++ {
		start := time.Now()
		var elapsedSeconds float64
		for {
			for ; r < repeats; r++ {
				alg.Init(wl.N)
				for _, x := range wl.Input {
					if x == 0 {
						break
					}
					if x > 0 {
						TrashSink ^= alg.Successor(x)
					} else {
						alg.Delete(-x)
					}
				}
			}
			elapsedSeconds = time.Since(start).Seconds()
			if elapsedSeconds >= MinTestTime {
				break
			}
			repeats *= 2
		}
		perReplay := elapsedSeconds / float64(r)
		if bestTime < 0 || perReplay < bestTime {
			bestTime = perReplay
		}
	}
	return bestTime
}
