package transition

import (
	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/state"
)

// leaf is one resolved bus-status vector and its accumulated
// probability, produced by energize.
type leaf struct {
	buses []state.BusStatus
	prob  float64
}

// energize recursively resolves every candidate bus that currently
// qualifies (directly connected to a source, or adjacent to an
// Energized bus) into {Damaged, Energized}, re-scanning the remaining
// candidates after each resolution so that a bus which only qualifies
// once a sibling candidate resolves to Energized is still reached —
// this is the "newly energized buses may open further α-sets"
// recursion. Zero-probability branches (pf == 0 or pf == 1) are
// pruned rather than emitted and immediately discarded.
func energize(buses []state.BusStatus, prob float64, g *graph.Graph, candidates []int, out *[]leaf) {
	for _, bus := range candidates {
		if buses[bus] != state.Unknown || !qualifies(bus, buses, g) {
			continue
		}
		pf := g.Pf(bus)
		if pf < 1 {
			energized := append([]state.BusStatus(nil), buses...)
			energized[bus] = state.Energized
			energize(energized, prob*(1-pf), g, candidates, out)
		}
		if pf > 0 {
			damaged := append([]state.BusStatus(nil), buses...)
			damaged[bus] = state.Damaged
			energize(damaged, prob*pf, g, candidates, out)
		}
		return
	}
	*out = append(*out, leaf{buses: buses, prob: prob})
}

// qualifies reports whether bus is eligible for energization given the
// current (possibly partially resolved) bus-status vector.
func qualifies(bus int, buses []state.BusStatus, g *graph.Graph) bool {
	if g.Connected(bus) {
		return true
	}
	for _, nb := range g.Neighbors(bus) {
		if buses[nb] == state.Energized {
			return true
		}
	}
	return false
}

// InitialEnergization implements the initial-state exception: on the
// very first state, energization is attempted before any team moves,
// at every Unknown bus a team is already standing on. If at least one
// non-identity outcome results, those outcomes are the sole
// transitions of the initial state's implicit action (cost 0).
func InitialEnergization(s state.State, g *graph.Graph) []Outcome {
	seen := make(map[int]bool, len(s.Teams))
	var candidates []int
	for _, t := range s.Teams {
		bus, parked := t.OnBus()
		if !parked || bus >= g.BusCount() || seen[bus] {
			continue
		}
		seen[bus] = true
		if s.Buses[bus] == state.Unknown {
			candidates = append(candidates, bus)
		}
	}
	var leaves []leaf
	energize(append([]state.BusStatus(nil), s.Buses...), 1, g, candidates, &leaves)

	outcomes := make([]Outcome, 0, len(leaves))
	for _, lf := range leaves {
		if lf.prob <= 0 || sameBuses(lf.buses, s.Buses) {
			continue
		}
		outcomes = append(outcomes, Outcome{State: state.State{Buses: lf.buses, Teams: s.Teams}, Prob: lf.prob})
	}
	return outcomes
}

func sameBuses(a, b []state.BusStatus) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
