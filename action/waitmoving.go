package action

// WaitMoving wraps a base Set: when some already-en-route team is
// headed to a β=1 bus and every parked team sits on a reachable bus
// (so waiting is legal for all of them), every alternative joint
// action is dominated by the single all-wait action, so that is the
// only one emitted. Otherwise it delegates to the base generator
// unchanged.
type WaitMoving struct {
	base Set
}

// NewWaitMoving wraps base with the wait-while-moving collapse.
func NewWaitMoving(base Set) Set { return &WaitMoving{base: base} }

func (w *WaitMoving) Prepare(as State) Iter {
	movingProgress := false
	for _, t := range as.State.Teams {
		if _, dst, _, ok := t.EnRoute(); ok && as.Beta[dst] == 1 {
			movingProgress = true
			break
		}
	}
	if !movingProgress {
		return w.base.Prepare(as)
	}
	for _, t := range as.State.Teams {
		if bus, ok := t.OnBus(); ok && (bus >= len(as.Beta) || isInf(as.Beta[bus])) {
			return w.base.Prepare(as)
		}
	}

	full := make(Action, len(as.State.Teams))
	for i, t := range as.State.Teams {
		if _, dst, _, ok := t.EnRoute(); ok {
			full[i] = dst
			continue
		}
		bus, _ := t.OnBus()
		full[i] = bus
	}
	return &sliceIter{actions: []Action{full}}
}
