package solution

import (
	"time"

	"github.com/necrashter/dmsgo/explore"
	"github.com/necrashter/dmsgo/policy"
	"github.com/necrashter/dmsgo/state"
	"github.com/necrashter/dmsgo/transition"
)

// Stats carries the wall-clock and memory figures a caller reports
// alongside a solution. Exploration and policy synthesis are timed
// separately since they dominate in different regimes.
type Stats struct {
	ExploreWallTime time.Duration
	PolicyWallTime  time.Duration
	PeakMemoryBytes uint64
}

// Solution is the assembled result of a solve: two row-major matrices
// (bus-state per row, team-state per row, one row per state index),
// the transition lists that produced them, the per-state per-action
// values and policy from value iteration, the horizon used, whether
// Transitions carries real elapsed time or an implicit 1 per record,
// and collected statistics.
type Solution struct {
	BusStates   [][]state.BusStatus
	TeamStates  [][]state.Team
	Transitions [][][]transition.Record
	Values      [][]float64
	Policy      []int
	Horizon     int
	AutoHorizon int
	Undershoot  bool
	Timed       bool
	Stats       Stats
}

// Assemble combines an exploration Result and a policy Result into a
// Solution. timed should reflect the Applier.Timed flag used during
// exploration.
func Assemble(er *explore.Result, pr *policy.Result, timed bool, stats Stats) *Solution {
	return &Solution{
		BusStates:   er.BusStates,
		TeamStates:  er.TeamStates,
		Transitions: er.Transitions,
		Values:      pr.Values,
		Policy:      pr.Policy,
		Horizon:     pr.Horizon,
		AutoHorizon: pr.AutoHorizon,
		Undershoot:  pr.Undershoot,
		Timed:       timed,
		Stats:       stats,
	}
}

// StateCount is the number of distinct states the solution covers.
func (s *Solution) StateCount() int { return len(s.BusStates) }

// OptimalValue is the value of the start state (index 0; the indexer
// always indexes the start state first) under the synthesized policy.
func (s *Solution) OptimalValue() float64 {
	return s.Values[0][s.Policy[0]]
}
