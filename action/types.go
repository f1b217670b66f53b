package action

import (
	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/state"
)

// Action is a joint team dispatch: length == team count. For a parked
// team, Action[i] is the chosen destination bus (equal to its current
// bus means "wait"). For an en-route team, Action[i] is forced to its
// current destination.
type Action []int

// State bundles everything an action generator needs: the state to
// dispatch from, the network it runs over, and that state's
// precomputed β-levels (state.ComputeMinBeta is not cheap, so callers
// compute it once and pass it in rather than each filter recomputing
// it).
type State struct {
	State state.State
	Graph *graph.Graph
	Beta  []float64
}

// Set produces joint actions for a given action.State. Prepare may be
// called repeatedly (once per distinct action.State); the returned
// Iter is not safe for concurrent use.
type Set interface {
	Prepare(as State) Iter
}

// Iter yields joint actions one at a time. Next returns false once
// exhausted; consumers must not rely on enumeration order. An empty
// iterator is only expected for terminal states, which the driver
// special-cases before ever calling Prepare.
type Iter interface {
	Next() (Action, bool)
}

// sliceIter adapts a pre-materialized slice of actions to Iter.
type sliceIter struct {
	actions []Action
	pos     int
}

func (it *sliceIter) Next() (Action, bool) {
	if it.pos >= len(it.actions) {
		return nil, false
	}
	a := it.actions[it.pos]
	it.pos++
	return a, true
}
