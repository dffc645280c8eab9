package scheduling

import "sort"

// aircraftState tracks one fleet member's availability while assigning.
type aircraftState struct {
	airport   int // -1 = never used
	available int
	used      bool
}

// AssignAircraft greedily assigns a fleet to the active flights of one
// evaluation, earliest-free-aircraft first. Flights are sorted ascending
// by departure time (a copy is returned, the input slice is untouched);
// each flight's AircraftIdx is set in place on the returned slice, or left
// at -1 if no aircraft qualifies.
//
// Tie-break: among qualifying aircraft, the one with the lowest
// `available` wins; further ties go to the lowest aircraft index (the
// first one encountered in the scan). This is O(flights * fleet) and
// deterministic, not optimal.
func AssignAircraft(flights []FlightInstance, fleet Fleet) []FlightInstance {
	out := make([]FlightInstance, len(flights))
	copy(out, flights)
	sort.Slice(out, func(i, j int) bool { return out[i].DepMin < out[j].DepMin })

	ac := make([]aircraftState, fleet.NumAircraft)
	for i := range ac {
		ac[i] = aircraftState{airport: -1, available: DayStart}
	}

	for fi := range out {
		f := &out[fi]
		best := -1
		bestAvail := int(^uint(0) >> 1) // max int

		for i := range ac {
			if !ac[i].used {
				if f.DepMin >= ac[i].available && ac[i].available < bestAvail {
					best = i
					bestAvail = ac[i].available
				}
				continue
			}
			if ac[i].airport != f.Orig {
				continue
			}
			if ac[i].available+Turnaround > f.DepMin {
				continue
			}
			if f.DepMin >= ac[i].available && ac[i].available < bestAvail {
				best = i
				bestAvail = ac[i].available
			}
		}

		if best == -1 {
			continue
		}
		f.AircraftIdx = best
		ac[best].airport = f.Dest
		ac[best].available = f.ArrMin
		ac[best].used = true
	}

	return out
}
