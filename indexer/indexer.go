package indexer

import "github.com/necrashter/dmsgo/state"

// Indexer maintains an injective map from distinct states to dense
// indices 0..N and a work queue of indexed-but-unexplored states.
type Indexer interface {
	// Index inserts s if unseen and returns its dense index either way.
	Index(s state.State) int
	// Next pops the next unexplored (index, state) pair, or reports
	// false once every indexed state has been popped.
	Next() (int, state.State, bool)
	// Count returns the number of distinct states indexed so far.
	Count() int
	// Deconstruct dismantles the indexer into row-major per-bus and
	// per-team matrices, one row per dense index in index order.
	Deconstruct() ([][]state.BusStatus, [][]state.Team)
}

// entry is the shared unexplored-state record queued by every variant.
type entry struct {
	index int
	state state.State
}
