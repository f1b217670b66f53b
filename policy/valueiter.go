package policy

import (
	"math"

	"github.com/necrashter/dmsgo/transition"
)

// valueIteration runs the backward recurrence for t = 1..horizon and
// returns the per-state per-action values and the argmin policy at
// t == horizon. V_0 is the zero vector; V_t for every intermediate t
// is retained (not just V_{t-1}) because a timed transition's Time
// field can exceed 1, so a later t may need V_{t-time} for time > 1.
func valueIteration(transitions [][][]transition.Record, horizon int) ([][]float64, []int) {
	n := len(transitions)
	v := make([][]float64, horizon+1)
	v[0] = make([]float64, n)

	var values [][]float64
	var policy []int
	for t := 1; t <= horizon; t++ {
		v[t] = make([]float64, n)
		values = make([][]float64, n)
		policy = make([]int, n)
		for i, actionList := range transitions {
			row := make([]float64, len(actionList))
			bestA := 0
			bestQ := math.Inf(1)
			for a, records := range actionList {
				q := 0.0
				for _, r := range records {
					rem := t - r.Time
					if rem < 0 {
						rem = 0
					}
					q += r.Prob * (r.Cost*float64(r.Time) + v[rem][r.Successor])
				}
				if math.IsNaN(q) || math.IsInf(q, 0) {
					panic("policy: non-finite value during value iteration")
				}
				row[a] = q
				if q < bestQ {
					bestQ = q
					bestA = a
				}
			}
			values[i] = row
			policy[i] = bestA
			v[t][i] = bestQ
		}
	}
	return values, policy
}
