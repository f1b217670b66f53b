package bench

import (
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/necrashter/dmsgo/problem"
	"github.com/necrashter/dmsgo/solution"
)

// Result is one config's outcome: the input it ran (by index, so
// callers can correlate results arriving out of order), the assembled
// solution (nil on error), any error Solve returned, and wall time.
type Result struct {
	Index    int
	Solution *solution.Solution
	Err      error
	Elapsed  time.Duration
}

// Run solves every config concurrently, one goroutine per config
// fanned in with channerics.Merge, and returns their results in
// arrival order (not config order; callers that need the submission
// order should consult Index). done aborts in-flight and not-yet
// started worker sends but does not cancel a Solve already running.
func Run(done <-chan struct{}, configs []problem.Input) []Result {
	workers := make([]<-chan Result, len(configs))
	for i, cfg := range configs {
		workers[i] = runOne(done, i, cfg)
	}
	merged := channerics.Merge(done, workers...)

	results := make([]Result, 0, len(configs))
	for r := range merged {
		results = append(results, r)
	}
	return results
}

func runOne(done <-chan struct{}, index int, cfg problem.Input) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		start := time.Now()
		sol, err := problem.Solve(cfg)
		r := Result{Index: index, Solution: sol, Err: err, Elapsed: time.Since(start)}
		select {
		case out <- r:
		case <-done:
		}
	}()
	return out
}
