package indexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/necrashter/dmsgo/state"
)

func sampleStates() []state.State {
	return []state.State{
		{
			Buses: []state.BusStatus{state.Unknown, state.Unknown, state.Unknown},
			Teams: []state.Team{state.Parked(0), state.Parked(1)},
		},
		{
			Buses: []state.BusStatus{state.Energized, state.Unknown, state.Unknown},
			Teams: []state.Team{state.Parked(1), state.Parked(0)},
		},
		{
			Buses: []state.BusStatus{state.Damaged, state.Energized, state.Unknown},
			Teams: []state.Team{state.Moving(0, 2, 1), state.Parked(1)},
		},
	}
}

func TestVariantsProduceSameStateSet(t *testing.T) {
	codec := NewKeyCodec(3, 3, 4)
	variants := []Indexer{
		NewNaive(),
		NewBitStack(codec, 2),
		NewSorted(NewNaive()),
		NewTrie(codec),
	}
	for _, v := range variants {
		for _, s := range sampleStates() {
			v.Index(s)
		}
		require.Equal(t, 3, v.Count())
		buses, teams := v.Deconstruct()
		require.Len(t, buses, 3)
		require.Len(t, teams, 3)
	}
}

func TestSortedCollapsesTeamPermutation(t *testing.T) {
	s := NewSorted(NewNaive())
	a := state.State{
		Buses: []state.BusStatus{state.Unknown, state.Unknown},
		Teams: []state.Team{state.Parked(0), state.Parked(1)},
	}
	b := state.State{
		Buses: []state.BusStatus{state.Unknown, state.Unknown},
		Teams: []state.Team{state.Parked(1), state.Parked(0)},
	}
	require.Equal(t, s.Index(a), s.Index(b))
	require.Equal(t, 1, s.Count())
}

func TestBitStackIsLIFO(t *testing.T) {
	codec := NewKeyCodec(2, 2, 2)
	b := NewBitStack(codec, 1)
	for _, bus := range [][2]state.BusStatus{{state.Unknown, state.Unknown}, {state.Energized, state.Unknown}} {
		b.Index(state.State{Buses: []state.BusStatus{bus[0], bus[1]}, Teams: []state.Team{state.Parked(0)}})
	}
	i, _, ok := b.Next()
	require.True(t, ok)
	require.Equal(t, 1, i)
}
