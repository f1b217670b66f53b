package graph

import (
	"fmt"
	"strconv"

	"github.com/necrashter/dmsgo/core"
)

// Branch is an unordered pair of bus indices carrying a physical
// connection (a power line) between them.
type Branch struct {
	A, B int
}

// Graph is the immutable network a solve runs against. Node indices
// 0..BusCount-1 are buses; BusCount..NodeCount-1 (if any) are synthetic
// team-start nodes contributed by the problem layer for teams given as
// geographic coordinates rather than an existing bus index.
type Graph struct {
	busCount  int
	nodeCount int

	pf        []float64 // per-bus failure probability, len == busCount
	connected []bool    // per-bus: directly connected to an external energy source, len == busCount
	adjacency [][]int   // per-bus neighbour bus indices, sorted ascending, len == busCount

	travel [][]float64 // nodeCount x nodeCount travel-time matrix

	topology *core.Graph // branch topology over bus vertices, for traversal (bfs/dfs)
}

// Build validates and assembles a Graph from resolved scenario data.
// pf and connected are indexed by bus; branches connect two distinct bus
// indices; travel is a full nodeCount x nodeCount matrix (nodeCount >=
// busCount) with a zero diagonal and off-diagonal entries >= 1.
func Build(pf []float64, connected []bool, branches []Branch, travel [][]float64) (*Graph, error) {
	busCount := len(pf)
	if busCount == 0 {
		return nil, ErrNoBuses
	}
	if len(connected) != busCount {
		return nil, fmt.Errorf("graph: Build: connected length %d != bus count %d: %w", len(connected), busCount, ErrTravelMatrixSize)
	}
	for i, p := range pf {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("graph: Build: bus %d pf=%v: %w", i, p, ErrBadProbability)
		}
	}

	nodeCount := len(travel)
	if nodeCount < busCount {
		return nil, fmt.Errorf("graph: Build: travel matrix has %d rows, need >= %d buses: %w", nodeCount, busCount, ErrTravelMatrixSize)
	}
	for i, row := range travel {
		if len(row) != nodeCount {
			return nil, fmt.Errorf("graph: Build: travel matrix row %d has %d cols, want %d: %w", i, len(row), nodeCount, ErrTravelMatrixSize)
		}
		for j, v := range row {
			if i == j {
				if v != 0 {
					return nil, fmt.Errorf("graph: Build: travel[%d][%d]=%v: %w", i, j, v, ErrNonZeroDiagonal)
				}
				continue
			}
			if v < 1 {
				return nil, fmt.Errorf("graph: Build: travel[%d][%d]=%v: %w", i, j, v, ErrNegativeTravel)
			}
			if v != travel[j][i] {
				return nil, fmt.Errorf("graph: Build: travel[%d][%d]=%v travel[%d][%d]=%v: %w", i, j, v, j, i, travel[j][i], ErrAsymmetric)
			}
		}
	}

	topo := core.NewGraph()
	for i := 0; i < busCount; i++ {
		if err := topo.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("graph: Build: adding bus vertex %d: %w", i, err)
		}
	}
	adjacency := make([][]int, busCount)
	for _, b := range branches {
		if b.A < 0 || b.A >= busCount || b.B < 0 || b.B >= busCount {
			return nil, fmt.Errorf("graph: Build: branch (%d,%d): %w", b.A, b.B, ErrBadBranch)
		}
		if b.A == b.B {
			return nil, fmt.Errorf("graph: Build: branch (%d,%d): %w", b.A, b.B, ErrSelfLoopBranch)
		}
		if _, err := topo.AddEdge(strconv.Itoa(b.A), strconv.Itoa(b.B), 0); err != nil {
			// Duplicate branches collapse silently; a second line between
			// the same pair of buses carries no new adjacency information.
			continue
		}
		adjacency[b.A] = append(adjacency[b.A], b.B)
		adjacency[b.B] = append(adjacency[b.B], b.A)
	}
	for i := range adjacency {
		sortInts(adjacency[i])
	}

	g := &Graph{
		busCount:  busCount,
		nodeCount: nodeCount,
		pf:        append([]float64(nil), pf...),
		connected: append([]bool(nil), connected...),
		adjacency: adjacency,
		travel:    travel,
		topology:  topo,
	}
	return g, nil
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// BusCount returns the number of buses in the network.
func (g *Graph) BusCount() int { return g.busCount }

// NodeCount returns the number of travel-time nodes (buses plus
// synthetic team-start nodes).
func (g *Graph) NodeCount() int { return g.nodeCount }

// Pf returns the failure probability of bus i.
func (g *Graph) Pf(i int) float64 { return g.pf[i] }

// Connected reports whether bus i is directly wired to an external
// energy source.
func (g *Graph) Connected(i int) bool { return g.connected[i] }

// Neighbors returns the sorted list of buses adjacent to bus i via a
// branch.
func (g *Graph) Neighbors(i int) []int { return g.adjacency[i] }

// TravelTime returns the time units required to move directly from
// node i to node j (0 iff i == j).
func (g *Graph) TravelTime(i, j int) float64 { return g.travel[i][j] }

// Topology exposes the underlying branch graph over bus vertices, for
// callers that want to run core-compatible traversals (bfs, dfs) over
// it directly.
func (g *Graph) Topology() *core.Graph { return g.topology }
