// Package indexer assigns a dense, deduplicated index to every distinct
// state the exploration driver encounters, and hands the driver back an
// unexplored-state work queue.
//
// Four interchangeable variants are provided, all satisfying the same
// Indexer contract and producing the same set of indices (modulo
// iteration order) for the same input, except that Sorted gives states
// that differ only by a team permutation a single index:
//
//	Naive      — full state.State as the map key (baseline, for testing).
//	BitStack   — bit-packed key (see key.go), LIFO work order.
//	Sorted     — wraps a base indexer, sorting each state's teams first
//	             to collapse team-permutation duplicates.
//	Trie       — bit-packed key stored in an 8-bit-branching trie,
//	             trading CPU for lower memory on repetitive prefixes.
//
// The bit-packed key layout (2 bits per bus, a tag bit plus
// ceil(log2(nodeCount)) bits per team, with destination and elapsed
// fields for en-route teams) is load-bearing: it is what makes
// exploring state spaces past 10^6 entries tractable, matching
// tsp/exact.go's bitmask-over-a-machine-word idiom in spirit (there:
// visited-city sets in a TSP tour; here: bus/team fields of a state).
package indexer
