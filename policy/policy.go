package policy

import "github.com/necrashter/dmsgo/transition"

// Result is the outcome of finite-horizon value iteration: per-state
// per-action values at t == Horizon, the argmin action index per
// state, and the horizon actually used.
type Result struct {
	// Values[i][a] is Q_Horizon[i][a].
	Values [][]float64
	// Policy[i] is argmin_a Values[i][a], ties broken by lowest index.
	Policy []int
	// Horizon is the horizon value iteration actually ran for.
	Horizon int
	// AutoHorizon is what AutoHorizon(transitions) computed, regardless
	// of whether a user-supplied horizon overrode it.
	AutoHorizon int
	// Undershoot is true when a user-supplied horizon was smaller than
	// AutoHorizon. This package never logs; callers that want to
	// surface a warning check this field.
	Undershoot bool
}

// Synthesize runs backward value iteration over transitions. If
// userHorizon is <= 0, the horizon is computed automatically as
// AutoHorizon(transitions) (at least 1, so a single-terminal-state
// graph still gets one iteration). Otherwise userHorizon is used
// as-is, and Undershoot reports whether it came in under the
// automatic horizon.
func Synthesize(transitions [][][]transition.Record, userHorizon int) (*Result, error) {
	if len(transitions) == 0 {
		return nil, ErrEmptyStateSpace
	}
	auto := AutoHorizon(transitions)
	if auto < 1 {
		auto = 1
	}

	horizon := auto
	undershoot := false
	if userHorizon > 0 {
		horizon = userHorizon
		undershoot = userHorizon < auto
	}

	values, policyIdx := valueIteration(transitions, horizon)
	return &Result{
		Values:      values,
		Policy:      policyIdx,
		Horizon:     horizon,
		AutoHorizon: auto,
		Undershoot:  undershoot,
	}, nil
}
