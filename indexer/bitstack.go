package indexer

import "github.com/necrashter/dmsgo/state"

// BitStack uses the bit-packed KeyCodec as its hash-map key and serves
// unexplored states LIFO, which keeps recently-discovered successors
// (typically still resident in cache) at the front of exploration.
type BitStack struct {
	codec     KeyCodec
	teamCount int
	byKey     map[string]int
	rows      []state.State
	stack     []entry
}

// NewBitStack constructs an empty BitStack indexer. teamCount must
// match every state ever passed to Index.
func NewBitStack(codec KeyCodec, teamCount int) *BitStack {
	return &BitStack{codec: codec, teamCount: teamCount, byKey: make(map[string]int)}
}

func (b *BitStack) Index(s state.State) int {
	key := b.codec.Encode(s)
	if i, ok := b.byKey[key]; ok {
		return i
	}
	i := len(b.rows)
	b.byKey[key] = i
	b.rows = append(b.rows, s.Clone())
	b.stack = append(b.stack, entry{index: i, state: b.rows[i]})
	return i
}

func (b *BitStack) Next() (int, state.State, bool) {
	if len(b.stack) == 0 {
		return 0, state.State{}, false
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return top.index, top.state, true
}

func (b *BitStack) Count() int { return len(b.rows) }

func (b *BitStack) Deconstruct() ([][]state.BusStatus, [][]state.Team) {
	return deconstructRows(b.rows)
}
