package policy

import "errors"

// ErrEmptyStateSpace is returned when Synthesize is called before any
// state has been explored; at minimum the start state must be present.
var ErrEmptyStateSpace = errors.New("policy: state space is empty")
