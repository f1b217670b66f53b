package action

// Naive is the base action generator: every parked team may choose any
// finite-β destination (itself only if its own bus has finite β), every
// en-route team is forced toward its current destination, and any
// joint action in which no team targets a β=1 bus is rejected (the
// progress condition) unless an already-en-route team is already
// headed to one.
type Naive struct{}

// NewNaive constructs the base action generator.
func NewNaive() *Naive { return &Naive{} }

func (Naive) Prepare(as State) Iter {
	candidates := make([][]int, len(as.State.Teams))
	for i, t := range as.State.Teams {
		if _, dst, _, ok := t.EnRoute(); ok {
			candidates[i] = []int{dst}
			continue
		}
		bus, _ := t.OnBus()
		// A synthetic team-start node is not a bus; waiting there is
		// never legal.
		busReachable := bus < len(as.Beta) && !isInf(as.Beta[bus])
		var opts []int
		for k, beta := range as.Beta {
			if isInf(beta) {
				continue
			}
			if k == bus && !busReachable {
				continue
			}
			opts = append(opts, k)
		}
		candidates[i] = opts
	}
	return &odometerIter{as: as, candidates: candidates, cursor: make([]int, len(candidates))}
}

func isInf(f float64) bool { return f > 1e300 }

// odometerIter is an explicit cursor over the cartesian product of
// per-team candidate lists: each call to Next advances the rightmost
// counter with carry, bounded memory regardless of the product's size.
type odometerIter struct {
	as         State
	candidates [][]int
	cursor     []int
	started    bool
	done       bool
}

func (it *odometerIter) Next() (Action, bool) {
	if it.done {
		return nil, false
	}
	for _, c := range it.candidates {
		if len(c) == 0 {
			it.done = true
			return nil, false
		}
	}
	for {
		if !it.started {
			it.started = true
		} else if !it.advance() {
			it.done = true
			return nil, false
		}
		a := it.current()
		if progressSatisfied(a, it.as.Beta) {
			return a, true
		}
	}
}

func (it *odometerIter) current() Action {
	a := make(Action, len(it.cursor))
	for i, c := range it.cursor {
		a[i] = it.candidates[i][c]
	}
	return a
}

func (it *odometerIter) advance() bool {
	for i := len(it.cursor) - 1; i >= 0; i-- {
		it.cursor[i]++
		if it.cursor[i] < len(it.candidates[i]) {
			return true
		}
		it.cursor[i] = 0
	}
	return false
}

// progressSatisfied reports whether some team's target under a (chosen
// destination for parked, forced destination for en-route) has β == 1.
func progressSatisfied(a Action, beta []float64) bool {
	for _, target := range a {
		if beta[target] == 1 {
			return true
		}
	}
	return false
}
