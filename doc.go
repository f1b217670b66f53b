// Package dmsgo computes dispatch policies for field repair teams restoring
// a damaged power distribution network.
//
// The network, the outage, and the available teams are modeled as a
// finite-horizon Markov decision process: every reachable joint
// configuration of team positions and bus repair/energization states is
// enumerated once, every dispatch action available in each configuration is
// generated and filtered for dominance, and the resulting transition graph
// is solved by backward value iteration to produce a minimum-expected-cost
// policy.
//
// Packages
//
//	graph/      — travel-time matrix and branch topology over buses and team starts
//	state/      — per-bus/per-team state, cost accounting, β-level (hop-count) layering
//	indexer/    — bit-packed state deduplication (four interchangeable encodings)
//	action/     — joint action enumeration with composable dominance filters
//	transition/ — time-advance policies and probabilistic energization outcomes
//	explore/    — memory-bounded single-threaded state-space construction
//	policy/     — finite-horizon backward value iteration
//	solution/   — assembled matrices, policy, and exploration statistics
//	problem/    — external scenario input contract
//	persist/    — on-disk solution layout
//
// The computational core (graph through solution) is deliberately
// single-threaded and allocation-conscious: state spaces for field
// restoration scenarios can run into the millions of entries, and
// correctness of the value-iteration recurrence depends on a fully
// constructed transition graph rather than incremental sampling.
//
//	go get github.com/necrashter/dmsgo
package dmsgo
