package action

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/state"
)

func lineGraph(t *testing.T) *graph.Graph {
	t.Helper()
	travel := [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	g, err := graph.Build(
		[]float64{0, 0, 0},
		[]bool{true, false, false},
		[]graph.Branch{{A: 0, B: 1}, {A: 1, B: 2}},
		travel,
	)
	require.NoError(t, err)
	return g
}

func TestNaiveProgressCondition(t *testing.T) {
	g := lineGraph(t)
	s := state.StartState(g, []state.Team{state.Parked(0)})
	beta := state.ComputeMinBeta(s, g)
	require.Equal(t, float64(1), beta[0])

	it := NewNaive().Prepare(State{State: s, Graph: g, Beta: beta})
	var actions []Action
	for {
		a, ok := it.Next()
		if !ok {
			break
		}
		actions = append(actions, append(Action(nil), a...))
	}
	require.Len(t, actions, 1)
	require.Equal(t, Action{0}, actions[0])
}

func TestPermutationalSubsetOfNaive(t *testing.T) {
	g := lineGraph(t)
	s := state.State{
		Buses: []state.BusStatus{state.Energized, state.Unknown, state.Unknown},
		Teams: []state.Team{state.Parked(0), state.Parked(1)},
	}
	beta := state.ComputeMinBeta(s, g)

	as := State{State: s, Graph: g, Beta: beta}
	naive := collect(t, NewNaive().Prepare(as))
	perm := collect(t, NewPermutational().Prepare(as))

	naiveSet := map[string]bool{}
	for _, a := range naive {
		naiveSet[actionKey(a)] = true
	}
	for _, a := range perm {
		require.True(t, naiveSet[actionKey(a)], "permutational action %v not in naive set", a)
	}
	require.NotEmpty(t, perm)
}

func TestWaitMovingCollapse(t *testing.T) {
	g := lineGraph(t)
	s := state.State{
		Buses: []state.BusStatus{state.Energized, state.Unknown, state.Unknown},
		Teams: []state.Team{state.Moving(0, 1, 0), state.Parked(0)},
	}
	beta := state.ComputeMinBeta(s, g)
	as := State{State: s, Graph: g, Beta: beta}

	it := NewWaitMoving(NewNaive()).Prepare(as)
	actions := collect(t, it)
	require.Len(t, actions, 1)
	require.Equal(t, Action{1, 0}, actions[0])
}

func collect(t *testing.T, it Iter) []Action {
	t.Helper()
	var out []Action
	for {
		a, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, append(Action(nil), a...))
	}
}

func actionKey(a Action) string {
	b := make([]byte, len(a)*8)
	for i, v := range a {
		for j := 0; j < 8; j++ {
			b[i*8+j] = byte(v >> (8 * j))
		}
	}
	return string(b)
}
