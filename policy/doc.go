// Package policy runs finite-horizon backward value iteration over the
// transition graph explore produces, yielding per-state per-action
// values and an argmin action-index policy.
//
// The same recurrence handles both the untimed and timed transition
// shapes: transition.Record.Time is already 1 for every record the
// untimed applier produces, so Q_t[i][a] = Σ p·(cost·time + V_{t−time}[successor])
// collapses to the untimed form without a separate code path.
package policy
