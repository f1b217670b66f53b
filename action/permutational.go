package action

import "sort"

// Permutational replaces ordered-tuple enumeration of parked ("ready")
// teams with combinations-with-replacement over candidate target
// buses, emitting only Pareto-optimal team→target assignments within
// each combination (no assignment dominated component-wise by another
// assignment of the same combination) and pruning symmetric duplicate
// assignments via standard distinct-multiset-permutation enumeration
// rather than generating every ordered tuple and deduplicating after
// the fact.
type Permutational struct{}

// NewPermutational constructs the combination-based action generator.
func NewPermutational() *Permutational { return &Permutational{} }

func (Permutational) Prepare(as State) Iter {
	teams := as.State.Teams
	forced := make([]int, len(teams))
	var readyIdx []int
	for i, t := range teams {
		if _, dst, _, ok := t.EnRoute(); ok {
			forced[i] = dst
			continue
		}
		forced[i] = -1
		readyIdx = append(readyIdx, i)
	}

	poolSet := map[int]bool{}
	readyCandidates := make([][]int, len(readyIdx))
	for ri, i := range readyIdx {
		bus, _ := teams[i].OnBus()
		busReachable := bus < len(as.Beta) && !isInf(as.Beta[bus])
		var opts []int
		for k, beta := range as.Beta {
			if isInf(beta) {
				continue
			}
			if k == bus && !busReachable {
				continue
			}
			opts = append(opts, k)
			poolSet[k] = true
		}
		readyCandidates[ri] = opts
	}
	pool := make([]int, 0, len(poolSet))
	for k := range poolSet {
		pool = append(pool, k)
	}
	sort.Ints(pool)

	var actions []Action
	for _, combo := range combinationsWithReplacement(pool, len(readyIdx)) {
		var valid []assignment
		for _, perm := range distinctPermutations(combo) {
			ok := true
			for ri, target := range perm {
				if !containsInt(readyCandidates[ri], target) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			times := make([]float64, len(perm))
			for ri, target := range perm {
				bus, _ := teams[readyIdx[ri]].OnBus()
				times[ri] = as.Graph.TravelTime(bus, target)
			}
			valid = append(valid, assignment{targets: perm, times: times})
		}
		for _, asg := range paretoFront(valid) {
			full := make(Action, len(teams))
			for i := range teams {
				if forced[i] >= 0 {
					full[i] = forced[i]
				}
			}
			for ri, target := range asg.targets {
				full[readyIdx[ri]] = target
			}
			if progressSatisfied(full, as.Beta) {
				actions = append(actions, full)
			}
		}
	}
	return &sliceIter{actions: actions}
}

type assignment struct {
	targets []int
	times   []float64
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// paretoFront keeps assignments not dominated (component-wise <=, with
// at least one strict <) by another assignment in the same set.
func paretoFront(in []assignment) []assignment {
	var out []assignment
	for i, a := range in {
		dominated := false
		for j, b := range in {
			if i == j {
				continue
			}
			if dominatesOrEqual(b.times, a.times) && !sameTimes(a.times, b.times) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, a)
		}
	}
	return out
}

func dominatesOrEqual(a, b []float64) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

func sameTimes(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// combinationsWithReplacement returns every non-decreasing sequence of
// length k over pool's sorted values.
func combinationsWithReplacement(pool []int, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if len(pool) == 0 {
		return nil
	}
	var out [][]int
	var rec func(start int, cur []int)
	rec = func(start int, cur []int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i < len(pool); i++ {
			rec(i, append(cur, pool[i]))
		}
	}
	rec(0, nil)
	return out
}

// distinctPermutations enumerates every distinct ordering of combo's
// multiset of values (repeats collapse to one ordering per distinct
// arrangement, the standard "permutations of a multiset" algorithm).
func distinctPermutations(combo []int) [][]int {
	n := len(combo)
	if n == 0 {
		return [][]int{{}}
	}
	sorted := append([]int(nil), combo...)
	sort.Ints(sorted)
	used := make([]bool, n)
	cur := make([]int, 0, n)
	var out [][]int
	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			if i > 0 && sorted[i] == sorted[i-1] && !used[i-1] {
				continue
			}
			used[i] = true
			cur = append(cur, sorted[i])
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}
