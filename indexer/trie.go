package indexer

import "github.com/necrashter/dmsgo/state"

// trieNode is one branch point of an 8-bit (byte) trie: at most 256
// children, only the ones actually reached are allocated.
type trieNode struct {
	children map[byte]*trieNode
	has      bool
	index    int
}

func (n *trieNode) child(b byte) *trieNode {
	if n.children == nil {
		n.children = make(map[byte]*trieNode, 1)
	}
	c, ok := n.children[b]
	if !ok {
		c = &trieNode{}
		n.children[b] = c
	}
	return c
}

// Trie stores the bit-packed key of each state along an 8-bit-branching
// trie path rather than in a flat hash map, trading per-lookup CPU for
// lower memory on state spaces with highly repetitive key prefixes
// (e.g. many states sharing the same leading bus-status bits).
type Trie struct {
	codec KeyCodec
	root  *trieNode
	rows  []state.State
	queue []entry
	head  int
}

// NewTrie constructs an empty Trie indexer, FIFO work order.
func NewTrie(codec KeyCodec) *Trie {
	return &Trie{codec: codec, root: &trieNode{}}
}

func (t *Trie) Index(s state.State) int {
	key := t.codec.Encode(s)
	node := t.root
	for i := 0; i < len(key); i++ {
		node = node.child(key[i])
	}
	if node.has {
		return node.index
	}
	idx := len(t.rows)
	node.has = true
	node.index = idx
	t.rows = append(t.rows, s.Clone())
	t.queue = append(t.queue, entry{index: idx, state: t.rows[idx]})
	return idx
}

func (t *Trie) Next() (int, state.State, bool) {
	if t.head >= len(t.queue) {
		return 0, state.State{}, false
	}
	e := t.queue[t.head]
	t.head++
	return e.index, e.state, true
}

func (t *Trie) Count() int { return len(t.rows) }

func (t *Trie) Deconstruct() ([][]state.BusStatus, [][]state.Team) {
	return deconstructRows(t.rows)
}
