package problem

import (
	"strings"

	"github.com/necrashter/dmsgo/action"
	"github.com/necrashter/dmsgo/indexer"
	"github.com/necrashter/dmsgo/transition"
)

// availableIndexers, availableActions, and availableTransitions list
// the names a *BadInputError reports when parsing fails, so a caller
// sees every accepted spelling in the message.
var (
	availableIndexers     = []string{"NaiveStateIndexer", "BitStackStateIndexer", "SortedStateIndexer<...>", "TrieStateIndexer"}
	availableActions      = []string{"NaiveActions", "PermutationalActions", "FilterOnWay<...>", "FilterEnergizedOnWay<...>", "WaitMovingActions<...>"}
	availableTransitions  = []string{"NaiveActionApplier", "TimedActionApplier<ConstantTime|TimeUntilArrival|TimeUntilEnergization>"}
)

// unwrap splits "Outer<Inner>" into ("Outer", "Inner", true); returns
// ("", "", false) if name does not have that shape.
func unwrap(name string) (outer, inner string, ok bool) {
	open := strings.IndexByte(name, '<')
	if open < 0 || !strings.HasSuffix(name, ">") {
		return "", "", false
	}
	return name[:open], name[open+1 : len(name)-1], true
}

// ParseIndexer resolves an indexer name into a concrete
// indexer.Indexer, given the network dimensions the bit-packed
// variants need.
func ParseIndexer(name string, busCount, nodeCount, maxTravelTime, teamCount int) (indexer.Indexer, error) {
	switch name {
	case "NaiveStateIndexer":
		return indexer.NewNaive(), nil
	case "BitStackStateIndexer":
		return indexer.NewBitStack(indexer.NewKeyCodec(busCount, nodeCount, maxTravelTime), teamCount), nil
	case "TrieStateIndexer":
		return indexer.NewTrie(indexer.NewKeyCodec(busCount, nodeCount, maxTravelTime)), nil
	}
	if outer, inner, ok := unwrap(name); ok && outer == "SortedStateIndexer" {
		base, err := ParseIndexer(inner, busCount, nodeCount, maxTravelTime, teamCount)
		if err != nil {
			return nil, err
		}
		return indexer.NewSorted(base), nil
	}
	return nil, badInput(ErrUnknownOptimization, "unknown indexer %q, available: %s", name, strings.Join(availableIndexers, ", "))
}

// ParseActions resolves an action-set name, recursively unwrapping
// composable filters.
func ParseActions(name string) (action.Set, error) {
	switch name {
	case "NaiveActions":
		return action.NewNaive(), nil
	case "PermutationalActions":
		return action.NewPermutational(), nil
	}
	if outer, inner, ok := unwrap(name); ok {
		base, err := ParseActions(inner)
		if err != nil {
			return nil, err
		}
		switch outer {
		case "FilterOnWay":
			return action.NewFilterOnWay(base), nil
		case "FilterEnergizedOnWay":
			return action.NewFilterEnergizedOnWay(base), nil
		case "WaitMovingActions":
			return action.NewWaitMoving(base), nil
		}
	}
	return nil, badInput(ErrUnknownOptimization, "unknown action set %q, available: %s", name, strings.Join(availableActions, ", "))
}

// ParseTransitions resolves an applier name.
func ParseTransitions(name string) (*transition.Applier, error) {
	switch name {
	case "NaiveActionApplier":
		return transition.NewNaive(), nil
	}
	if outer, inner, ok := unwrap(name); ok && outer == "TimedActionApplier" {
		switch inner {
		case "ConstantTime":
			return transition.NewTimed(transition.ConstantTime), nil
		case "TimeUntilArrival":
			return transition.NewTimed(transition.TimeUntilArrival), nil
		case "TimeUntilEnergization":
			return transition.NewTimed(transition.TimeUntilEnergization), nil
		}
	}
	return nil, badInput(ErrUnknownOptimization, "unknown action applier %q, available: %s", name, strings.Join(availableTransitions, ", "))
}
