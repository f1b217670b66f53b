package indexer

import (
	"math/bits"

	"github.com/necrashter/dmsgo/state"
)

// KeyCodec packs a state.State into a compact bit string: 2 bits per
// bus (Unknown=0, Damaged=1, Energized=2), then 1 tag bit per team (0 =
// parked, 1 = en route) followed by ceil(log2(nodeCount)) bits for the
// team's current/destination node, and for en-route teams an
// additional destination field of the same width plus
// ceil(log2(maxTravelTime+1)) bits of elapsed time.
//
// This mirrors tsp/exact.go's bitmask-over-a-machine-word idiom: pack
// small discrete fields into []uint64 words and read them back with
// bits.Len-derived widths instead of hashing a full composite key.
type KeyCodec struct {
	busCount  int
	nodeBits  int
	timeBits  int
	nodeCount int
}

// NewKeyCodec derives field widths from the network's node and
// maximum-travel-time ranges.
func NewKeyCodec(busCount, nodeCount, maxTravelTime int) KeyCodec {
	nodeBits := bitWidth(nodeCount - 1)
	timeBits := bitWidth(maxTravelTime)
	return KeyCodec{busCount: busCount, nodeBits: nodeBits, timeBits: timeBits, nodeCount: nodeCount}
}

// bitWidth returns the number of bits needed to represent values
// 0..n inclusive (ceil(log2(n+1)), at least 1).
func bitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	return bits.Len(uint(n))
}

// Encode packs s into a key suitable for use as a Go map key.
func (c KeyCodec) Encode(s state.State) string {
	w := newBitWriter()
	for _, b := range s.Buses {
		w.writeBits(uint64(b), 2)
	}
	for _, t := range s.Teams {
		if bus, ok := t.OnBus(); ok {
			w.writeBits(0, 1)
			w.writeBits(uint64(bus), c.nodeBits)
			continue
		}
		src, dst, elapsed, _ := t.EnRoute()
		w.writeBits(1, 1)
		w.writeBits(uint64(src), c.nodeBits)
		w.writeBits(uint64(dst), c.nodeBits)
		w.writeBits(uint64(elapsed), c.timeBits)
	}
	return w.string()
}

// Decode reverses Encode. teamCount must match the team count the key
// was encoded with.
func (c KeyCodec) Decode(key string, teamCount int) state.State {
	r := newBitReader(key)
	buses := make([]state.BusStatus, c.busCount)
	for i := range buses {
		buses[i] = state.BusStatus(r.readBits(2))
	}
	teams := make([]state.Team, teamCount)
	for i := range teams {
		tag := r.readBits(1)
		if tag == 0 {
			bus := int(r.readBits(c.nodeBits))
			teams[i] = state.Parked(bus)
			continue
		}
		src := int(r.readBits(c.nodeBits))
		dst := int(r.readBits(c.nodeBits))
		elapsed := int(r.readBits(c.timeBits))
		teams[i] = state.Moving(src, dst, elapsed)
	}
	return state.State{Buses: buses, Teams: teams}
}

type bitWriter struct {
	words []uint64
	nbits uint
}

func newBitWriter() *bitWriter { return &bitWriter{} }

func (w *bitWriter) writeBits(value uint64, width int) {
	if width <= 0 {
		return
	}
	value &= maskBits(width)
	wordIdx := int(w.nbits / 64)
	bitOff := w.nbits % 64
	for len(w.words) <= wordIdx {
		w.words = append(w.words, 0)
	}
	w.words[wordIdx] |= value << bitOff
	if spill := int(bitOff) + width - 64; spill > 0 {
		for len(w.words) <= wordIdx+1 {
			w.words = append(w.words, 0)
		}
		w.words[wordIdx+1] |= value >> (64 - bitOff)
	}
	w.nbits += uint(width)
}

func (w *bitWriter) string() string {
	buf := make([]byte, len(w.words)*8)
	for i, word := range w.words {
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(word >> (8 * b))
		}
	}
	return string(buf)
}

type bitReader struct {
	words []uint64
	pos   uint
}

func newBitReader(key string) *bitReader {
	words := make([]uint64, (len(key)+7)/8)
	for i := 0; i < len(key); i++ {
		words[i/8] |= uint64(key[i]) << (8 * uint(i%8))
	}
	return &bitReader{words: words}
}

func (r *bitReader) readBits(width int) uint64 {
	if width <= 0 {
		return 0
	}
	wordIdx := int(r.pos / 64)
	bitOff := r.pos % 64
	var v uint64
	if wordIdx < len(r.words) {
		v = r.words[wordIdx] >> bitOff
	}
	if spill := int(bitOff) + width - 64; spill > 0 && wordIdx+1 < len(r.words) {
		v |= r.words[wordIdx+1] << (64 - bitOff)
	}
	r.pos += uint(width)
	return v & maskBits(width)
}

func maskBits(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}
