package transition

import (
	"math"

	"github.com/necrashter/dmsgo/action"
	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/state"
)

// Applier advances a state by one joint action under a chosen time
// policy, and reports whether it labels its output as the 4-tuple
// "timed" shape (Timed == true) or the regular 3-tuple shape where
// time is implicitly 1.
type Applier struct {
	Policy Policy
	Timed  bool
}

// NewNaive returns the regular (untimed, 3-tuple) applier: Δt is
// always 1.
func NewNaive() *Applier { return &Applier{Policy: ConstantTime, Timed: false} }

// NewTimed returns a timed (4-tuple) applier using the given Δt
// policy.
func NewTimed(p Policy) *Applier { return &Applier{Policy: p, Timed: true} }

// Apply advances s by a under the applier's policy and resolves the
// resulting probabilistic energization outcomes. It panics if the
// chosen policy's preconditions are violated (no team moving for
// TimeUntilArrival, progress condition violated for
// TimeUntilEnergization) — per the data model, these are invariant
// violations, not recoverable errors.
func (a *Applier) Apply(s state.State, g *graph.Graph, beta []float64, act action.Action) (dt int, outcomes []Outcome) {
	dt = a.computeDt(s, g, beta, act)

	teams := make([]state.Team, len(s.Teams))
	for i, t := range s.Teams {
		if bus, parked := t.OnBus(); parked {
			if act[i] == bus {
				teams[i] = t
				continue
			}
			total := g.TravelTime(bus, act[i])
			if float64(dt) >= total {
				teams[i] = state.Parked(act[i])
			} else {
				teams[i] = state.Moving(bus, act[i], dt)
			}
			continue
		}
		src, dst, elapsed, _ := t.EnRoute()
		total := g.TravelTime(src, dst)
		newElapsed := elapsed + dt
		if float64(newElapsed) >= total {
			teams[i] = state.Parked(dst)
		} else {
			teams[i] = state.Moving(src, dst, newElapsed)
		}
	}

	// Every bus with a team standing on it participates in the
	// energization cascade, whether the team arrived this step or
	// waited in place; synthetic team-start nodes are not buses.
	var present []int
	for _, t := range teams {
		if bus, parked := t.OnBus(); parked && bus < g.BusCount() {
			present = append(present, bus)
		}
	}
	candidates := uniqueUnknownBuses(present, s.Buses)
	var leaves []leaf
	energize(append([]state.BusStatus(nil), s.Buses...), 1, g, candidates, &leaves)

	outcomes = make([]Outcome, 0, len(leaves))
	for _, lf := range leaves {
		if lf.prob <= 0 {
			continue
		}
		outcomes = append(outcomes, Outcome{State: state.State{Buses: lf.buses, Teams: teams}, Prob: lf.prob})
	}
	return dt, outcomes
}

func uniqueUnknownBuses(arrived []int, buses []state.BusStatus) []int {
	seen := make(map[int]bool, len(arrived))
	out := make([]int, 0, len(arrived))
	for _, bus := range arrived {
		if seen[bus] || buses[bus] != state.Unknown {
			continue
		}
		seen[bus] = true
		out = append(out, bus)
	}
	return out
}

func (a *Applier) computeDt(s state.State, g *graph.Graph, beta []float64, act action.Action) int {
	switch a.Policy {
	case ConstantTime:
		return 1
	case TimeUntilArrival:
		best := math.Inf(1)
		for i, t := range s.Teams {
			if bus, parked := t.OnBus(); parked {
				if act[i] == bus {
					continue
				}
				best = math.Min(best, g.TravelTime(bus, act[i]))
				continue
			}
			src, dst, elapsed, _ := t.EnRoute()
			best = math.Min(best, g.TravelTime(src, dst)-float64(elapsed))
		}
		if math.IsInf(best, 1) {
			panic("transition: TimeUntilArrival requires at least one moving team")
		}
		return int(math.Ceil(best))
	case TimeUntilEnergization:
		best := math.Inf(1)
		for i, t := range s.Teams {
			var target int
			var remain float64
			if bus, parked := t.OnBus(); parked {
				if act[i] == bus {
					continue
				}
				target = act[i]
				remain = g.TravelTime(bus, act[i])
			} else {
				src, dst, elapsed, _ := t.EnRoute()
				target = dst
				remain = g.TravelTime(src, dst) - float64(elapsed)
			}
			if beta[target] != 1 {
				continue
			}
			best = math.Min(best, remain)
		}
		if math.IsInf(best, 1) {
			panic("transition: TimeUntilEnergization: progress condition violated")
		}
		return int(math.Ceil(best))
	default:
		panic("transition: unknown time policy")
	}
}
