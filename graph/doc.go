// Package graph holds the immutable network a restoration scenario is
// solved against: per-bus failure probabilities and energy-source
// markers, the branch adjacency between buses, and the symmetric
// travel-time matrix over every node a team can occupy (buses plus any
// synthetic team-start nodes contributed by the problem layer).
//
// A Graph is built once from resolved input and never mutated during a
// solve; every other package in this module borrows it by pointer.
package graph
