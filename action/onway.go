package action

import "github.com/necrashter/dmsgo/state"

// onWayFilter rejects any joint action in which a parked team's chosen
// path runs through a qualifying intermediate bus it does not stop at
// — since d(src,k)+d(k,dst) <= d(src,dst), the team could have stopped
// at k for a strictly-as-good-or-better outcome, so passing through
// without stopping is dominated. The qualifying set is either β=1
// buses only (FilterEnergizedOnWay) or every Unknown bus (FilterOnWay).
type onWayFilter struct {
	base            Set
	energizableOnly bool
}

// NewFilterOnWay rejects actions whose path passes any Unknown
// intermediate bus without stopping.
func NewFilterOnWay(base Set) Set { return &onWayFilter{base: base} }

// NewFilterEnergizedOnWay rejects actions whose path passes a β=1
// intermediate bus without stopping.
func NewFilterEnergizedOnWay(base Set) Set { return &onWayFilter{base: base, energizableOnly: true} }

func (f *onWayFilter) Prepare(as State) Iter {
	return &onWayIter{base: f.base.Prepare(as), as: as, energizableOnly: f.energizableOnly}
}

type onWayIter struct {
	base            Iter
	as              State
	energizableOnly bool
}

func (it *onWayIter) Next() (Action, bool) {
	for {
		a, ok := it.base.Next()
		if !ok {
			return nil, false
		}
		if it.accept(a) {
			return a, true
		}
	}
}

func (it *onWayIter) accept(a Action) bool {
	for i, t := range it.as.State.Teams {
		bus, parked := t.OnBus()
		if !parked {
			continue
		}
		dst := a[i]
		if dst == bus {
			continue
		}
		direct := it.as.Graph.TravelTime(bus, dst)
		for k := 0; k < len(it.as.Beta); k++ {
			if k == bus || k == dst || !it.qualifies(k) {
				continue
			}
			if it.as.Graph.TravelTime(bus, k)+it.as.Graph.TravelTime(k, dst) <= direct {
				return false
			}
		}
	}
	return true
}

func (it *onWayIter) qualifies(k int) bool {
	if it.energizableOnly {
		return it.as.Beta[k] == 1
	}
	return it.as.State.Buses[k] == state.Unknown
}
