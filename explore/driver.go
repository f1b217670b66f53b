package explore

import (
	"github.com/necrashter/dmsgo/action"
	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/indexer"
	"github.com/necrashter/dmsgo/state"
	"github.com/necrashter/dmsgo/transition"
)

// Driver is the naive exploration driver: it asks the action generator
// for every feasible joint action of a state and applies all of them,
// storing one transition list per action. See GreedyDriver for the
// single-cheapest-action alternative.
type Driver struct {
	Graph   *graph.Graph
	Indexer indexer.Indexer
	Actions action.Set
	Applier *transition.Applier

	// MemoryLimit is the allocated-bytes ceiling; 0 means unlimited.
	MemoryLimit uint64
	// Allocator defaults to a runtime.MemStats-backed sampler if nil.
	Allocator Allocator
	// Progress, if set, is called every memorySamplePeriod states.
	Progress func(Snapshot)
}

// Run indexes start and explores every state reachable from it,
// returning the dismantled state matrices and per-state transition
// lists, or an *OutOfMemoryError if MemoryLimit is exceeded.
func (d *Driver) Run(start state.State) (*Result, error) {
	alloc := d.Allocator
	if alloc == nil {
		alloc = runtimeAllocator{}
	}
	d.Indexer.Index(start)

	var transitions [][][]transition.Record
	var peak uint64
	explored := 0
	first := true
	for {
		idx, s, ok := d.Indexer.Next()
		if !ok {
			break
		}
		var actionTx [][]transition.Record
		if first {
			actionTx = d.explore(idx, s, true)
			first = false
		} else {
			actionTx = d.explore(idx, s, false)
		}
		transitions = growTransitions(transitions, idx)
		transitions[idx] = actionTx

		explored++
		if explored%memorySamplePeriod == 0 {
			used := alloc.BytesAllocated()
			if used > peak {
				peak = used
			}
			if d.MemoryLimit > 0 && used > d.MemoryLimit {
				return nil, &OutOfMemoryError{Used: used, Limit: d.MemoryLimit}
			}
			if d.Progress != nil {
				d.Progress(Snapshot{StatesIndexed: d.Indexer.Count(), StatesExplored: explored, PeakBytes: peak})
			}
		}
	}

	if used := alloc.BytesAllocated(); used > peak {
		peak = used
	}
	busStates, teamStates := d.Indexer.Deconstruct()
	return &Result{BusStates: busStates, TeamStates: teamStates, Transitions: transitions, PeakBytes: peak}, nil
}

// explore produces the per-action transition lists for state s at
// index idx. isInitial selects the initial-state exception: attempt
// energization before any team moves, and if it yields outcomes, those
// become the sole (cost-0) "action" of the state.
func (d *Driver) explore(idx int, s state.State, isInitial bool) [][]transition.Record {
	cost := state.Cost(s)
	if state.IsTerminal(s, d.Graph) {
		return [][]transition.Record{transition.TerminalSelfLoop(idx, cost)}
	}
	if isInitial {
		if outcomes := transition.InitialEnergization(s, d.Graph); len(outcomes) > 0 {
			return [][]transition.Record{transition.Records(outcomes, 0, 1, d.Indexer.Index)}
		}
	}

	beta := state.ComputeMinBeta(s, d.Graph)
	as := action.State{State: s, Graph: d.Graph, Beta: beta}
	it := d.Actions.Prepare(as)

	var out [][]transition.Record
	for {
		a, ok := it.Next()
		if !ok {
			break
		}
		dt, outcomes := d.Applier.Apply(s, d.Graph, beta, a)
		out = append(out, transition.Records(outcomes, float64(cost), dt, d.Indexer.Index))
	}
	if out == nil {
		panic("explore: non-terminal state produced no actions")
	}
	return out
}
