package problem

import (
	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/state"
)

// BusInput describes one bus as given by the scenario source: its
// failure probability, its geographic position (used only for
// great-circle travel-time precomputation), and whether it is wired
// directly to an external energy source.
type BusInput struct {
	Pf        float64
	Lat, Lon  float64
	Connected bool
}

// ResourceInput names a resource declared on the scenario. Only
// "transmission" resources are meaningful to this solver; anything
// else is rejected.
type ResourceInput struct {
	Kind string
}

// TeamInput locates a team either at an existing bus (BusIndex) or at
// a geographic position (Lat/Lon) that becomes a synthetic start node.
// Exactly one of the two must be set.
type TeamInput struct {
	BusIndex *int
	Lat, Lon *float64
}

// TravelTimeKind selects how TravelTimeSpec computes travel time
// between two nodes.
type TravelTimeKind int

const (
	// GreatCircle computes travel time from great-circle distance
	// between node coordinates, scaled by Multiplier/Divider.
	GreatCircle TravelTimeKind = iota
	// Constant uses Value for every pair of distinct nodes.
	Constant
)

// TravelTimeSpec configures travel-time precomputation.
type TravelTimeSpec struct {
	Kind       TravelTimeKind
	Multiplier float64 // GreatCircle: distance multiplier (e.g. unit conversion); 0 means 1
	Divider    float64 // GreatCircle: divided by travel speed; 0 means 1
	Value      float64 // Constant: the travel time itself
}

// OptimizationNames selects one combination of indexer, action set,
// transition applier, and exploration strategy by name. Indexer,
// Actions, and Transitions follow a composable "Outer<Inner>" grammar
// (e.g. "FilterOnWay<PermutationalActions>",
// "TimedActionApplier<TimeUntilEnergization>"). Explorer selects
// between the default full driver ("" or "Naive") and the
// supplemented "Greedy" single-action-per-state strategy.
type OptimizationNames struct {
	Indexer     string
	Actions     string
	Transitions string
	Explorer    string
}

// Input is the resolved-from-source scenario description a caller
// (cmd/dmssolve, a future HTTP handler, a test) builds and passes to
// Solve.
type Input struct {
	Buses      []BusInput
	Branches   []graph.Branch
	Resources  []ResourceInput
	Teams      []TeamInput
	Horizon    int // 0 means automatic (policy.AutoHorizon)
	PfOverride *float64
	// Partitions is accepted for forward compatibility with a
	// partition-aware action set, but rejected if non-empty: no
	// component consumes partitions today.
	Partitions   []int
	TravelTime   TravelTimeSpec
	Optimization OptimizationNames
	MemoryLimit  uint64 // bytes; 0 means unlimited
}

// Resolved is a validated Input with synthetic team-start nodes folded
// into the graph and a starting team configuration ready for explore.
// Every team starts parked (state.Parked); no team starts en route.
type Resolved struct {
	Graph *graph.Graph
	Teams []state.Team
}
