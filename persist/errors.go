package persist

import "errors"

// ErrTruncated is returned when the input ends before a complete
// record could be read.
var ErrTruncated = errors.New("persist: truncated record")

// ErrBadTag is returned when a tagged union's discriminant byte is
// neither of the two known values.
var ErrBadTag = errors.New("persist: unrecognized tag")
