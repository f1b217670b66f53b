// Package state defines the per-bus and per-team state of a restoration
// scenario, the operations that derive cost, terminality, and β-level
// reachability from it, and the ordering used to collapse
// team-permutation-equivalent states.
//
// A State is created once when first encountered by the indexer and
// never mutated afterwards; every later reference to it is by value
// (States are small fixed-shape slices, cheap to copy and compare).
package state
