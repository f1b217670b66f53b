package explore

import "runtime"

// Allocator reports the process-wide allocated-bytes counter the
// driver samples against a caller-supplied limit. Encapsulated behind
// an interface so tests can substitute a deterministic stand-in
// instead of depending on the real allocator's behavior.
type Allocator interface {
	BytesAllocated() uint64
}

// runtimeAllocator is the default Allocator, backed by runtime.MemStats.
type runtimeAllocator struct{}

func (runtimeAllocator) BytesAllocated() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// memorySamplePeriod is the number of explored states between memory
// checks. A var, not a const, so tests can shrink it to force a sample
// without exploring 2^15 states.
var memorySamplePeriod = 1 << 15
