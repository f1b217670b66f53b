package transition

import "github.com/necrashter/dmsgo/state"

// Records indexes each outcome via idx and packages it as a stored
// Record sharing the given predecessor cost and time advance.
func Records(outcomes []Outcome, cost float64, dt int, idx func(state.State) int) []Record {
	out := make([]Record, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, Record{Successor: idx(o.State), Prob: o.Prob, Cost: cost, Time: dt})
	}
	return out
}

// TerminalSelfLoop builds the single self-loop transition a terminal
// state emits: probability 1, the state's own cost, and time 1.
func TerminalSelfLoop(index int, cost int) []Record {
	return []Record{{Successor: index, Prob: 1, Cost: float64(cost), Time: 1}}
}
