package state

import (
	"math"
	"strconv"

	"github.com/necrashter/dmsgo/bfs"
	"github.com/necrashter/dmsgo/graph"
)

// betaSource is the synthetic vertex id added to a cloned topology to
// run a single multi-source BFS from every bus directly reachable from
// an energy source.
const betaSource = "__beta_source__"

// StartState builds the initial state for a scenario: every bus is
// Unknown except those with pf == 1, which start Damaged (a
// certain-failure bus needs no energization attempt), and teams are
// placed at their given positions.
func StartState(g *graph.Graph, teams []Team) State {
	buses := make([]BusStatus, g.BusCount())
	for i := range buses {
		if g.Pf(i) >= 1 {
			buses[i] = Damaged
		} else {
			buses[i] = Unknown
		}
	}
	return State{Buses: buses, Teams: append([]Team(nil), teams...)}
}

// Cost is the count of non-Energized buses.
func Cost(s State) int {
	c := 0
	for _, b := range s.Buses {
		if b != Energized {
			c++
		}
	}
	return c
}

// IsTerminal reports whether no Unknown bus remains reachable from an
// energization source (an external source or an Energized neighbour)
// through a chain of Unknown/Energized buses — i.e. β(i, s) is
// infinite for every Unknown bus.
func IsTerminal(s State, g *graph.Graph) bool {
	beta := ComputeMinBeta(s, g)
	for i, b := range s.Buses {
		if b == Unknown && !math.IsInf(beta[i], 1) {
			return false
		}
	}
	return true
}

// ComputeMinBeta returns, for each bus, the minimum number of
// energization rounds needed to reach it: 0 if already known
// (Damaged or Energized), 1 if directly connected to a source or
// adjacent to an Energized bus, else 1 + the minimum over Unknown
// neighbours, computed by BFS from the β=1 frontier through
// Unknown/Energized buses. math.Inf(1) if unreachable.
func ComputeMinBeta(s State, g *graph.Graph) []float64 {
	beta := make([]float64, g.BusCount())
	for i, b := range s.Buses {
		if b != Unknown {
			beta[i] = 0
			continue
		}
		beta[i] = math.Inf(1)
	}

	frontier := make([]int, 0, g.BusCount())
	for i, b := range s.Buses {
		if b != Unknown {
			continue
		}
		if g.Connected(i) {
			frontier = append(frontier, i)
			continue
		}
		for _, nb := range g.Neighbors(i) {
			if s.Buses[nb] == Energized {
				frontier = append(frontier, i)
				break
			}
		}
	}
	if len(frontier) == 0 {
		return beta
	}

	topo := g.Topology().Clone()
	if err := topo.AddVertex(betaSource); err != nil {
		panic("state: ComputeMinBeta: adding synthetic source: " + err.Error())
	}
	for _, i := range frontier {
		if _, err := topo.AddEdge(betaSource, strconv.Itoa(i), 0); err != nil {
			panic("state: ComputeMinBeta: wiring synthetic source: " + err.Error())
		}
	}

	result, err := bfs.BFS(topo, betaSource, bfs.WithFilterNeighbor(func(_, neighbor string) bool {
		if neighbor == betaSource {
			return false
		}
		i, convErr := strconv.Atoi(neighbor)
		if convErr != nil {
			return true
		}
		return s.Buses[i] == Unknown || s.Buses[i] == Energized
	}))
	if err != nil {
		panic("state: ComputeMinBeta: bfs: " + err.Error())
	}

	for i, b := range s.Buses {
		if b != Unknown {
			continue
		}
		if depth, ok := result.Depth[strconv.Itoa(i)]; ok {
			beta[i] = float64(depth)
		}
	}
	return beta
}

// CompareTeams orders two teams lexicographically on (parked < moving,
// endpoint indices, elapsed time); it is the total order the sorted
// indexer variant uses to collapse team-permutation-equivalent states.
func CompareTeams(a, b Team) int {
	_, aParked := a.OnBus()
	_, bParked := b.OnBus()
	if aParked != bParked {
		if aParked {
			return -1
		}
		return 1
	}
	if a.Src != b.Src {
		return cmpInt(a.Src, b.Src)
	}
	if a.Dst != b.Dst {
		return cmpInt(a.Dst, b.Dst)
	}
	return cmpInt(a.Elapsed, b.Elapsed)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortedTeams returns a copy of teams sorted by CompareTeams.
func SortedTeams(teams []Team) []Team {
	out := append([]Team(nil), teams...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && CompareTeams(out[j-1], out[j]) > 0; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
