package problem

import (
	"fmt"
	"math"

	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/state"
)

const transmissionResource = "transmission"

// Build validates in and resolves it into a graph.Graph plus starting
// team positions: teams given by coordinates become synthetic nodes
// appended after the bus nodes, the travel-time matrix is computed
// over every node (distances rounded up, minimum 1), and PfOverride,
// if set, replaces every bus's declared Pf before the graph is built.
func Build(in Input) (*Resolved, error) {
	if len(in.Partitions) > 0 {
		return nil, badInput(ErrPartitionsUnsupported, "partition-aware actions are not implemented; input declared %d partitions", len(in.Partitions))
	}
	for i, r := range in.Resources {
		if r.Kind != transmissionResource {
			return nil, badInput(ErrUnsupportedResource, "resource %d: unsupported kind %q (only %q is supported)", i, r.Kind, transmissionResource)
		}
	}

	busCount := len(in.Buses)
	pf := make([]float64, busCount)
	connected := make([]bool, busCount)
	coords := make([][2]float64, busCount)
	for i, b := range in.Buses {
		p := b.Pf
		if in.PfOverride != nil {
			p = *in.PfOverride
		}
		pf[i] = p
		connected[i] = b.Connected
		coords[i] = [2]float64{b.Lat, b.Lon}
	}

	teams := make([]state.Team, len(in.Teams))
	nodeCoords := append([][2]float64(nil), coords...)
	for i, t := range in.Teams {
		if t.BusIndex != nil {
			if *t.BusIndex < 0 || *t.BusIndex >= busCount {
				return nil, badInput(ErrTeamBusOutOfRange, "team %d: bus index %d out of range [0,%d)", i, *t.BusIndex, busCount)
			}
			teams[i] = state.Parked(*t.BusIndex)
			continue
		}
		if t.Lat == nil || t.Lon == nil {
			return nil, badInput(ErrTeamMissingPosition, "team %d has neither a bus index nor coordinates", i)
		}
		node := len(nodeCoords)
		nodeCoords = append(nodeCoords, [2]float64{*t.Lat, *t.Lon})
		teams[i] = state.Parked(node)
	}

	nodeCount := len(nodeCoords)
	travel := make([][]float64, nodeCount)
	for i := range travel {
		travel[i] = make([]float64, nodeCount)
	}
	for i := 0; i < nodeCount; i++ {
		for j := i + 1; j < nodeCount; j++ {
			tt := travelTime(in.TravelTime, nodeCoords[i], nodeCoords[j])
			travel[i][j] = tt
			travel[j][i] = tt
		}
	}

	g, err := graph.Build(pf, connected, in.Branches, travel)
	if err != nil {
		return nil, fmt.Errorf("problem: Build: %w", err)
	}
	return &Resolved{Graph: g, Teams: teams}, nil
}

// travelTime computes the rounded-up, minimum-1 travel time between
// two nodes under spec. An unset (zero) Multiplier or Divider means 1.
func travelTime(spec TravelTimeSpec, a, b [2]float64) float64 {
	var raw float64
	if spec.Kind == Constant {
		raw = spec.Value
	} else {
		mul := spec.Multiplier
		if mul == 0 {
			mul = 1
		}
		if spec.Divider != 0 {
			mul /= spec.Divider
		}
		raw = haversineKm(a[0], a[1], b[0], b[1]) * mul
	}
	return math.Max(1, math.Ceil(raw))
}

// earthRadiusKm is the Earth radius used by the haversine formula,
// accurate to within 0.5% for surface distances.
const earthRadiusKm = 6373.0

// haversineKm returns the great-circle distance in kilometers between
// two (lat, lon) points given in degrees.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	sinLat, sinLon := math.Sin(dLat/2), math.Sin(dLon/2)
	a := sinLat*sinLat + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
