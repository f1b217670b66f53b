package transition

import "github.com/necrashter/dmsgo/state"

// Policy selects how Δt is determined for a (state, action) pair.
type Policy int

const (
	// ConstantTime always advances by exactly 1 (the untimed MDP
	// embedding: teams tick toward their destination one step at a
	// time regardless of real travel time).
	ConstantTime Policy = iota
	// TimeUntilArrival advances by the minimum remaining travel time
	// among moving teams under this action. At least one team must be
	// moving.
	TimeUntilArrival
	// TimeUntilEnergization advances by the minimum remaining travel
	// time among teams heading to a β=1 bus. Requires the progress
	// condition to hold.
	TimeUntilEnergization
)

// Outcome is one leaf of the probabilistic energization resolution: a
// successor state and the probability of reaching it.
type Outcome struct {
	State state.State
	Prob  float64
}

// Record is a stored (successor, probability, cost, time) transition,
// cost and time shared by every outcome of the same (state, action)
// pair that produced it.
type Record struct {
	Successor int
	Prob      float64
	Cost      float64
	Time      int
}
