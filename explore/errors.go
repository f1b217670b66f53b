package explore

import "fmt"

// OutOfMemoryError is returned when the sampled allocator counter
// exceeds the configured memory limit during exploration. It carries
// both figures so a caller can report them without re-deriving either.
type OutOfMemoryError struct {
	Used  uint64
	Limit uint64
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("explore: out of memory: used %d bytes, limit %d bytes", e.Used, e.Limit)
}
