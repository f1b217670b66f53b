// Package transition advances time under a joint action, resolves the
// probabilistic energization outcomes that follow, and packages the
// result as transition records ready for the exploration driver to
// index and store.
//
// Three time-advance policies are provided (ConstantTime,
// TimeUntilArrival, TimeUntilEnergization); all share the same
// recursive energization resolution, which also powers the
// initial-state exception (energization attempted before any team
// moves) and is reused unchanged for both.
package transition
