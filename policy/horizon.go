package policy

import "github.com/necrashter/dmsgo/transition"

// AutoHorizon computes the longest acyclic path length in the
// transition graph, ignoring self-loop transitions entirely (not only
// the ones terminal states emit — any transition whose successor
// equals its own state cannot lengthen a simple path).
//
// The transition graph is not guaranteed to be acyclic in general: a
// team can retrace an earlier route and return the bus vector to an
// unchanged configuration, producing a genuine cycle rather than a
// self-loop. Longest *simple* path in a general graph is NP-hard, so
// cycles are broken pragmatically: a back-edge into a state already on
// the current DFS stack contributes no further length from that point
// (the recursion just stops there), rather than attempting an exact
// longest-simple-path search. The result is always long enough for
// backward value iteration to reach every terminal state.
func AutoHorizon(transitions [][][]transition.Record) int {
	n := len(transitions)
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	mark := make([]int8, n)
	memo := make([]int, n)

	var dfs func(i int) int
	dfs = func(i int) int {
		switch mark[i] {
		case done:
			return memo[i]
		case visiting:
			return 0
		}
		mark[i] = visiting
		best := 0
		for _, records := range transitions[i] {
			for _, r := range records {
				if r.Successor == i {
					continue
				}
				if d := dfs(r.Successor) + 1; d > best {
					best = d
				}
			}
		}
		mark[i] = done
		memo[i] = best
		return best
	}

	longest := 0
	for i := range transitions {
		if d := dfs(i); d > longest {
			longest = d
		}
	}
	return longest
}
