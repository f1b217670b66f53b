package indexer

import "github.com/necrashter/dmsgo/state"

// Sorted wraps any base Indexer, sorting a state's teams (by
// state.CompareTeams) before delegating. Two states that differ only
// by a permutation of otherwise-identical teams collapse onto the same
// canonical (sorted) representative and therefore the same index.
type Sorted struct {
	base Indexer
}

// NewSorted wraps base with team-permutation collapsing.
func NewSorted(base Indexer) *Sorted {
	return &Sorted{base: base}
}

func (s *Sorted) Index(st state.State) int {
	canonical := state.State{Buses: st.Buses, Teams: state.SortedTeams(st.Teams)}
	return s.base.Index(canonical)
}

func (s *Sorted) Next() (int, state.State, bool) { return s.base.Next() }

func (s *Sorted) Count() int { return s.base.Count() }

func (s *Sorted) Deconstruct() ([][]state.BusStatus, [][]state.Team) {
	return s.base.Deconstruct()
}
