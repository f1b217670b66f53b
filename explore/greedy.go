package explore

import (
	"github.com/necrashter/dmsgo/action"
	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/indexer"
	"github.com/necrashter/dmsgo/state"
	"github.com/necrashter/dmsgo/transition"
)

// greedyHorizon is the lookahead used by the heuristic that ranks
// candidate actions; it has no relation to the solver's own horizon,
// it only needs to be large relative to realistic travel times so an
// unresolved bus dominates the sum.
const greedyHorizon = 100.0

// GreedyDriver explores a single action per state — the one the
// heuristic scores lowest — rather than every feasible action, trading
// optimality of the resulting policy for a much smaller transition
// graph. It is a distinct exploration strategy, not a filter
// composable with Driver.
type GreedyDriver struct {
	Graph   *graph.Graph
	Indexer indexer.Indexer
	Actions action.Set
	Applier *transition.Applier

	MemoryLimit uint64
	Allocator   Allocator
	Progress    func(Snapshot)
}

// Run has the same contract as Driver.Run.
func (d *GreedyDriver) Run(start state.State) (*Result, error) {
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
		actionTx := d.explore(idx, s, first)
		first = false
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

func (d *GreedyDriver) explore(idx int, s state.State, isInitial bool) [][]transition.Record {
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

	best, ok := it.Next()
	if !ok {
		panic("explore: non-terminal state produced no actions")
	}
	bestScore := heuristic(d.Graph, s, best)
	for {
		a, ok := it.Next()
		if !ok {
			break
		}
		if score := heuristic(d.Graph, s, a); score < bestScore {
			best, bestScore = a, score
		}
	}

	dt, outcomes := d.Applier.Apply(s, d.Graph, beta, best)
	return [][]transition.Record{transition.Records(outcomes, float64(cost), dt, d.Indexer.Index)}
}

// heuristic scores a joint action by, per bus, the expected future
// cost of reaching it: greedyHorizon for a bus no team targets and
// still Unknown, 0 for an already-resolved bus, and for a bus some
// team targets, the travel time to it plus the remaining horizon
// weighted by its failure probability (a team may fail to energize on
// arrival, in which case the bus keeps accruing cost for the rest of
// the local horizon).
func heuristic(g *graph.Graph, s state.State, a action.Action) float64 {
	costs := make([]float64, len(s.Buses))
	for i, b := range s.Buses {
		if b == state.Unknown {
			costs[i] = greedyHorizon
		}
	}
	for i, t := range s.Teams {
		var target int
		var remaining float64
		if bus, ok := t.OnBus(); ok {
			target = a[i]
			if target != bus {
				remaining = g.TravelTime(bus, target)
			}
		} else {
			src, dst, elapsed, _ := t.EnRoute()
			target = dst
			remaining = g.TravelTime(src, dst) - float64(elapsed)
		}
		pf := g.Pf(target)
		cost := remaining + (greedyHorizon-remaining)*pf
		if cost < costs[target] {
			costs[target] = cost
		}
	}
	total := 0.0
	for _, c := range costs {
		total += c
	}
	return total
}
