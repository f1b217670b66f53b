// Package explore drives state-space construction: pop the next
// unexplored state from the indexer, enumerate its feasible actions,
// apply each to produce transition records, and feed newly-discovered
// successor states back into the indexer, until none remain.
//
// The driver is single-threaded and allocation-conscious by design —
// state spaces for realistic restoration scenarios run past 10^6
// entries — and periodically samples a replaceable memory-usage
// oracle, aborting with *OutOfMemoryError if a caller-supplied byte
// limit is exceeded.
//
// Driver explores every feasible action per state. GreedyDriver is an
// alternative strategy that commits to the single lowest-heuristic
// action per state instead, trading policy optimality for a much
// smaller transition graph.
package explore
