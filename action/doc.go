// Package action enumerates feasible joint team dispatches for a given
// state and applies the progressively stricter elimination filters
// described for the restoration MDP: the progress condition (base),
// Pareto-dominance over permutation-equivalent target assignments,
// wait-while-moving collapse, and component-on-the-way rejection.
//
// A Set is a restartable, lazy-in-spirit sequence of joint actions
// produced by Prepare; filters wrap a base Set the way bfs/dfs wrap
// neighbor iteration with a predicate, composing outward from
// NaiveActions.
package action
