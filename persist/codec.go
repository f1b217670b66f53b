package persist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/necrashter/dmsgo/solution"
	"github.com/necrashter/dmsgo/state"
	"github.com/necrashter/dmsgo/transition"
)

// teamKindParked and teamKindEnRoute are the tagged-union discriminants
// of a persisted team state.
const (
	teamKindParked uint8 = iota
	teamKindEnRoute
)

// regularTag and timedTag are the outer tagged-union discriminants
// selecting whether each transition record carries a Time field.
const (
	regularTag uint8 = iota
	timedTag
)

// Save writes sol to w as a single flat binary record. The Timed field
// selects the tagged-union variant: when true, every transition record
// additionally carries its Time; when false, Time is dropped (and is
// implicitly 1 on Load, matching transition.Record's untimed shape).
func Save(w io.Writer, sol *solution.Solution) error {
	bw := bufio.NewWriter(w)

	tag := regularTag
	if sol.Timed {
		tag = timedTag
	}
	if err := writeU8(bw, tag); err != nil {
		return err
	}

	stateCount := sol.StateCount()
	busCount := 0
	if stateCount > 0 {
		busCount = len(sol.BusStates[0])
	}
	teamCount := 0
	if stateCount > 0 {
		teamCount = len(sol.TeamStates[0])
	}
	if err := writeU32s(bw, uint32(stateCount), uint32(busCount), uint32(teamCount)); err != nil {
		return err
	}

	for _, row := range sol.BusStates {
		for _, b := range row {
			if err := writeU8(bw, uint8(b)); err != nil {
				return err
			}
		}
	}

	for _, row := range sol.TeamStates {
		for _, t := range row {
			if err := writeTeam(bw, t); err != nil {
				return err
			}
		}
	}

	for _, actions := range sol.Transitions {
		if err := writeU32(bw, uint32(len(actions))); err != nil {
			return err
		}
		for _, records := range actions {
			if err := writeU32(bw, uint32(len(records))); err != nil {
				return err
			}
			for _, r := range records {
				if err := writeRecord(bw, r, sol.Timed); err != nil {
					return err
				}
			}
		}
	}

	for _, row := range sol.Values {
		if err := writeU32(bw, uint32(len(row))); err != nil {
			return err
		}
		for _, v := range row {
			if err := writeF64(bw, v); err != nil {
				return err
			}
		}
	}
	for _, p := range sol.Policy {
		if err := writeU32(bw, uint32(p)); err != nil {
			return err
		}
	}

	if err := writeU32s(bw, uint32(sol.Horizon), uint32(sol.AutoHorizon)); err != nil {
		return err
	}
	undershoot := uint8(0)
	if sol.Undershoot {
		undershoot = 1
	}
	if err := writeU8(bw, undershoot); err != nil {
		return err
	}

	if err := writeI64(bw, int64(sol.Stats.ExploreWallTime)); err != nil {
		return err
	}
	if err := writeI64(bw, int64(sol.Stats.PolicyWallTime)); err != nil {
		return err
	}
	if err := writeU64(bw, sol.Stats.PeakMemoryBytes); err != nil {
		return err
	}

	return bw.Flush()
}

// Load reads a Solution previously written by Save.
func Load(r io.Reader) (*solution.Solution, error) {
	br := bufio.NewReader(r)

	tag, err := readU8(br)
	if err != nil {
		return nil, err
	}
	var timed bool
	switch tag {
	case regularTag:
		timed = false
	case timedTag:
		timed = true
	default:
		return nil, ErrBadTag
	}

	stateCount, err := readU32(br)
	if err != nil {
		return nil, err
	}
	busCount, err := readU32(br)
	if err != nil {
		return nil, err
	}
	teamCount, err := readU32(br)
	if err != nil {
		return nil, err
	}

	busStates := make([][]state.BusStatus, stateCount)
	for i := range busStates {
		row := make([]state.BusStatus, busCount)
		for j := range row {
			b, err := readU8(br)
			if err != nil {
				return nil, err
			}
			row[j] = state.BusStatus(b)
		}
		busStates[i] = row
	}

	teamStates := make([][]state.Team, stateCount)
	for i := range teamStates {
		row := make([]state.Team, teamCount)
		for j := range row {
			t, err := readTeam(br)
			if err != nil {
				return nil, err
			}
			row[j] = t
		}
		teamStates[i] = row
	}

	transitions := make([][][]transition.Record, stateCount)
	for i := range transitions {
		actionCount, err := readU32(br)
		if err != nil {
			return nil, err
		}
		actions := make([][]transition.Record, actionCount)
		for a := range actions {
			recordCount, err := readU32(br)
			if err != nil {
				return nil, err
			}
			records := make([]transition.Record, recordCount)
			for k := range records {
				rec, err := readRecord(br, timed)
				if err != nil {
					return nil, err
				}
				records[k] = rec
			}
			actions[a] = records
		}
		transitions[i] = actions
	}

	values := make([][]float64, stateCount)
	for i := range values {
		n, err := readU32(br)
		if err != nil {
			return nil, err
		}
		row := make([]float64, n)
		for j := range row {
			v, err := readF64(br)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		values[i] = row
	}

	policy := make([]int, stateCount)
	for i := range policy {
		p, err := readU32(br)
		if err != nil {
			return nil, err
		}
		policy[i] = int(p)
	}

	horizon, err := readU32(br)
	if err != nil {
		return nil, err
	}
	autoHorizon, err := readU32(br)
	if err != nil {
		return nil, err
	}
	undershootByte, err := readU8(br)
	if err != nil {
		return nil, err
	}

	exploreNs, err := readI64(br)
	if err != nil {
		return nil, err
	}
	policyNs, err := readI64(br)
	if err != nil {
		return nil, err
	}
	peakBytes, err := readU64(br)
	if err != nil {
		return nil, err
	}

	return &solution.Solution{
		BusStates:   busStates,
		TeamStates:  teamStates,
		Transitions: transitions,
		Values:      values,
		Policy:      policy,
		Horizon:     int(horizon),
		AutoHorizon: int(autoHorizon),
		Undershoot:  undershootByte != 0,
		Timed:       timed,
		Stats: solution.Stats{
			ExploreWallTime: time.Duration(exploreNs),
			PolicyWallTime:  time.Duration(policyNs),
			PeakMemoryBytes: peakBytes,
		},
	}, nil
}

func writeTeam(w io.Writer, t state.Team) error {
	if bus, ok := t.OnBus(); ok {
		if err := writeU8(w, teamKindParked); err != nil {
			return err
		}
		return writeU32(w, uint32(bus))
	}
	src, dst, elapsed, _ := t.EnRoute()
	if err := writeU8(w, teamKindEnRoute); err != nil {
		return err
	}
	return writeU32s(w, uint32(src), uint32(dst), uint32(elapsed))
}

func readTeam(r io.Reader) (state.Team, error) {
	kind, err := readU8(r)
	if err != nil {
		return state.Team{}, err
	}
	switch kind {
	case teamKindParked:
		bus, err := readU32(r)
		if err != nil {
			return state.Team{}, err
		}
		return state.Parked(int(bus)), nil
	case teamKindEnRoute:
		src, err := readU32(r)
		if err != nil {
			return state.Team{}, err
		}
		dst, err := readU32(r)
		if err != nil {
			return state.Team{}, err
		}
		elapsed, err := readU32(r)
		if err != nil {
			return state.Team{}, err
		}
		return state.Moving(int(src), int(dst), int(elapsed)), nil
	default:
		return state.Team{}, fmt.Errorf("persist: team kind %d: %w", kind, ErrBadTag)
	}
}

func writeRecord(w io.Writer, r transition.Record, timed bool) error {
	if err := writeU32(w, uint32(r.Successor)); err != nil {
		return err
	}
	if err := writeF64(w, r.Prob); err != nil {
		return err
	}
	if err := writeF64(w, r.Cost); err != nil {
		return err
	}
	if timed {
		return writeU32(w, uint32(r.Time))
	}
	return nil
}

func readRecord(r io.Reader, timed bool) (transition.Record, error) {
	successor, err := readU32(r)
	if err != nil {
		return transition.Record{}, err
	}
	prob, err := readF64(r)
	if err != nil {
		return transition.Record{}, err
	}
	cost, err := readF64(r)
	if err != nil {
		return transition.Record{}, err
	}
	t := 1
	if timed {
		raw, err := readU32(r)
		if err != nil {
			return transition.Record{}, err
		}
		t = int(raw)
	}
	return transition.Record{Successor: int(successor), Prob: prob, Cost: cost, Time: t}, nil
}

func writeU8(w io.Writer, v uint8) error  { return binary.Write(w, binary.LittleEndian, v) }
func writeU32(w io.Writer, v uint32) error { return binary.Write(w, binary.LittleEndian, v) }
func writeU64(w io.Writer, v uint64) error { return binary.Write(w, binary.LittleEndian, v) }
func writeI64(w io.Writer, v int64) error  { return binary.Write(w, binary.LittleEndian, v) }
func writeF64(w io.Writer, v float64) error {
	return binary.Write(w, binary.LittleEndian, v)
}
func writeU32s(w io.Writer, vs ...uint32) error {
	for _, v := range vs {
		if err := writeU32(w, v); err != nil {
			return err
		}
	}
	return nil
}

func readU8(r io.Reader) (uint8, error) {
	var v uint8
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapRead(err)
	}
	return v, nil
}
func readU32(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapRead(err)
	}
	return v, nil
}
func readU64(r io.Reader) (uint64, error) {
	var v uint64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapRead(err)
	}
	return v, nil
}
func readI64(r io.Reader) (int64, error) {
	var v int64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapRead(err)
	}
	return v, nil
}
func readF64(r io.Reader) (float64, error) {
	var v float64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapRead(err)
	}
	return v, nil
}

func wrapRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
