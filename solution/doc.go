// Package solution packages the output of exploration and policy
// synthesis into the single record an external collaborator persists
// or prints: the dismantled state matrices, the transition lists, the
// per-state per-action values, the policy, the horizon used, and
// exploration/synthesis statistics.
package solution
