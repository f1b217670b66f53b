package graph

import "errors"

// Sentinel errors returned by Build. Callers should compare with
// errors.Is; messages are wrapped with fmt.Errorf("graph: ...: %w").
var (
	ErrNoBuses          = errors.New("graph: bus count must be positive")
	ErrBadProbability   = errors.New("graph: pf must be in [0,1]")
	ErrBadBranch        = errors.New("graph: branch endpoint out of range")
	ErrSelfLoopBranch   = errors.New("graph: branch endpoints must differ")
	ErrTravelMatrixSize = errors.New("graph: travel-time matrix shape mismatch")
	ErrNegativeTravel   = errors.New("graph: off-diagonal travel time must be >= 1")
	ErrNonZeroDiagonal  = errors.New("graph: travel-time diagonal must be 0")
	ErrAsymmetric       = errors.New("graph: travel-time matrix must be symmetric")
)
