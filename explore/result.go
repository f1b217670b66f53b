package explore

import (
	"github.com/necrashter/dmsgo/state"
	"github.com/necrashter/dmsgo/transition"
)

// Snapshot is a point-in-time exploration progress report, pushed to a
// caller-supplied Progress callback every memorySamplePeriod states
// (internal/monitor streams these over a websocket).
type Snapshot struct {
	StatesIndexed  int
	StatesExplored int
	PeakBytes      uint64
}

// Result is the raw product of exploration: the dismantled indexer
// matrices and, per state, per action, the list of transition records
// that action produces. Transitions[i][j] is empty for no state (every
// indexed state is explored before Run returns); Transitions[i] has
// exactly one action-list of length 1 for a terminal state.
type Result struct {
	BusStates   [][]state.BusStatus
	TeamStates  [][]state.Team
	Transitions [][][]transition.Record
	PeakBytes   uint64
}

func growTransitions(t [][][]transition.Record, idx int) [][][]transition.Record {
	for len(t) <= idx {
		t = append(t, nil)
	}
	return t
}
