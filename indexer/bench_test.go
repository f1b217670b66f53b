package indexer

import (
	"testing"

	"github.com/necrashter/dmsgo/state"
)

func benchStates(n int) []state.State {
	out := make([]state.State, n)
	for i := 0; i < n; i++ {
		out[i] = state.State{
			Buses: []state.BusStatus{state.BusStatus(i % 3), state.BusStatus((i + 1) % 3), state.Unknown},
			Teams: []state.Team{state.Parked(i % 3)},
		}
	}
	return out
}

func BenchmarkBitStackIndex(b *testing.B) {
	codec := NewKeyCodec(3, 3, 4)
	states := benchStates(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := NewBitStack(codec, 1)
		for _, s := range states {
			idx.Index(s)
		}
	}
}

func BenchmarkTrieIndex(b *testing.B) {
	codec := NewKeyCodec(3, 3, 4)
	states := benchStates(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := NewTrie(codec)
		for _, s := range states {
			idx.Index(s)
		}
	}
}
