package problem

import (
	"math"
	"time"

	"github.com/necrashter/dmsgo/action"
	"github.com/necrashter/dmsgo/explore"
	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/indexer"
	"github.com/necrashter/dmsgo/policy"
	"github.com/necrashter/dmsgo/solution"
	"github.com/necrashter/dmsgo/state"
	"github.com/necrashter/dmsgo/transition"
)

// Solve validates and resolves in, explores its reachable state space
// under the requested optimization selection, synthesizes a policy,
// and assembles the result. This is the single entry point
// cmd/dmssolve and internal/bench call.
func Solve(in Input) (*solution.Solution, error) {
	resolved, err := Build(in)
	if err != nil {
		return nil, err
	}

	idx, err := ParseIndexer(
		defaultName(in.Optimization.Indexer, "NaiveStateIndexer"),
		resolved.Graph.BusCount(), resolved.Graph.NodeCount(), maxTravelTime(resolved.Graph), len(resolved.Teams),
	)
	if err != nil {
		return nil, err
	}
	actions, err := ParseActions(defaultName(in.Optimization.Actions, "NaiveActions"))
	if err != nil {
		return nil, err
	}
	applier, err := ParseTransitions(defaultName(in.Optimization.Transitions, "NaiveActionApplier"))
	if err != nil {
		return nil, err
	}

	start := state.StartState(resolved.Graph, resolved.Teams)

	exploreStart := time.Now()
	exploreResult, err := runExplorer(in.Optimization.Explorer, resolved.Graph, idx, actions, applier, in.MemoryLimit, start)
	if err != nil {
		return nil, err
	}
	exploreElapsed := time.Since(exploreStart)

	policyStart := time.Now()
	policyResult, err := policy.Synthesize(exploreResult.Transitions, in.Horizon)
	if err != nil {
		return nil, err
	}
	policyElapsed := time.Since(policyStart)

	sol := solution.Assemble(exploreResult, policyResult, applier.Timed, solution.Stats{
		ExploreWallTime: exploreElapsed,
		PolicyWallTime:  policyElapsed,
		PeakMemoryBytes: exploreResult.PeakBytes,
	})
	return sol, nil
}

func defaultName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func maxTravelTime(g *graph.Graph) int {
	n := g.NodeCount()
	max := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := int(math.Ceil(g.TravelTime(i, j))); v > max {
				max = v
			}
		}
	}
	return max
}

// runExplorer dispatches to the full Driver or the supplemented
// GreedyDriver, per OptimizationNames.Explorer ("" or "Naive" ->
// Driver, "Greedy" -> GreedyDriver).
func runExplorer(name string, g *graph.Graph, idx indexer.Indexer, actions action.Set, applier *transition.Applier, memLimit uint64, start state.State) (*explore.Result, error) {
	switch name {
	case "", "Naive":
		d := &explore.Driver{Graph: g, Indexer: idx, Actions: actions, Applier: applier, MemoryLimit: memLimit}
		return d.Run(start)
	case "Greedy":
		d := &explore.GreedyDriver{Graph: g, Indexer: idx, Actions: actions, Applier: applier, MemoryLimit: memLimit}
		return d.Run(start)
	default:
		return nil, badInput(ErrUnknownOptimization, "unknown explorer %q, available: \"\", \"Naive\", \"Greedy\"", name)
	}
}
