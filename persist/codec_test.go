package persist

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/necrashter/dmsgo/solution"
	"github.com/necrashter/dmsgo/state"
	"github.com/necrashter/dmsgo/transition"
)

func fixtureSolution(timed bool) *solution.Solution {
	return &solution.Solution{
		BusStates: [][]state.BusStatus{
			{state.Unknown, state.Unknown},
			{state.Energized, state.Damaged},
		},
		TeamStates: [][]state.Team{
			{state.Parked(0)},
			{state.Moving(0, 1, 1)},
		},
		Transitions: [][][]transition.Record{
			{{{Successor: 1, Prob: 1, Cost: 2, Time: 3}}},
			{transition.TerminalSelfLoop(1, 1)},
		},
		Values:      [][]float64{{5}, {1}},
		Policy:      []int{0, 0},
		Horizon:     7,
		AutoHorizon: 5,
		Undershoot:  true,
		Timed:       timed,
		Stats: solution.Stats{
			ExploreWallTime: 10 * time.Millisecond,
			PolicyWallTime:  2 * time.Millisecond,
			PeakMemoryBytes: 4096,
		},
	}
}

func TestSaveLoadRoundTripRegular(t *testing.T) {
	sol := fixtureSolution(false)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sol))

	got, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, sol.BusStates, got.BusStates)
	require.Equal(t, sol.TeamStates, got.TeamStates)
	require.Equal(t, sol.Values, got.Values)
	require.Equal(t, sol.Policy, got.Policy)
	require.Equal(t, sol.Horizon, got.Horizon)
	require.Equal(t, sol.AutoHorizon, got.AutoHorizon)
	require.Equal(t, sol.Undershoot, got.Undershoot)
	require.Equal(t, sol.Timed, got.Timed)
	require.Equal(t, sol.Stats, got.Stats)
	// Regular tag drops Time; round-tripped records implicitly carry 1.
	require.Equal(t, 1, got.Transitions[0][0][0].Time)
	require.Equal(t, sol.Transitions[0][0][0].Successor, got.Transitions[0][0][0].Successor)
	require.Equal(t, sol.Transitions[0][0][0].Prob, got.Transitions[0][0][0].Prob)
	require.Equal(t, sol.Transitions[0][0][0].Cost, got.Transitions[0][0][0].Cost)
}

func TestSaveLoadRoundTripTimed(t *testing.T) {
	sol := fixtureSolution(true)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sol))

	got, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, sol.Transitions, got.Transitions)
}

func TestLoadTruncated(t *testing.T) {
	sol := fixtureSolution(false)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sol))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	_, err := Load(truncated)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestLoadBadTag(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte{0xFF}))
	require.ErrorIs(t, err, ErrBadTag)
}
