package scheduling

import "sort"

// pathCandidate is one way of moving passengers from an OD's origin to
// its destination: either a single direct leg or two chained legs via an
// intermediate airport.
type pathCandidate struct {
	legs      []int // indices into the flights slice
	travelMin int
}

// odIndex maps an (orig, dest) pair to the indices (into a flights slice,
// already sorted by DepMin) of every flight on that pair. A map keyed on
// a comparable struct avoids a dense A*A adjacency matrix, which would
// waste space once the airport count grows past what's actually served.
type odIndex map[odKey][]int

func buildODIndex(flights []FlightInstance) odIndex {
	idx := make(odIndex)
	for i, f := range flights {
		k := odKey{f.Orig, f.Dest}
		idx[k] = append(idx[k], i)
	}
	for k, idxs := range idx {
		sort.Slice(idxs, func(a, b int) bool { return flights[idxs[a]].DepMin < flights[idxs[b]].DepMin })
		idx[k] = idxs
	}
	return idx
}

// reachability computes, for one-hop enumeration, the set of airports
// directly reachable from each origin and the set of airports with a
// direct flight into each destination. Intersecting these two sets for a
// given (o, d) bounds the mid-airport scan to airports that can actually
// participate in a connection.
type reachability struct {
	from map[int]map[int]struct{} // orig -> set of directly reachable dest
	to   map[int]map[int]struct{} // dest -> set of origins with a direct flight in
}

func buildReachability(idx odIndex) reachability {
	r := reachability{from: map[int]map[int]struct{}{}, to: map[int]map[int]struct{}{}}
	for k := range idx {
		if r.from[k.Orig] == nil {
			r.from[k.Orig] = map[int]struct{}{}
		}
		r.from[k.Orig][k.Dest] = struct{}{}
		if r.to[k.Dest] == nil {
			r.to[k.Dest] = map[int]struct{}{}
		}
		r.to[k.Dest][k.Orig] = struct{}{}
	}
	return r
}

// RouteDemand routes OD passenger demand over the active, aircraft-
// assigned flights (already sorted ascending by DepMin), honoring seat
// capacity. It mutates UsedSeats on the flights it allocates to directly
// (flights is a slice, so mutations are visible to the caller) and
// returns the pax assignment records plus the served/unserved stats.
//
// OD pairs are walked in input order; remaining demand for a pair
// persists across duplicate entries for the same pair rather than
// resetting, so repeated records for one pair share a single pool.
func RouteDemand(flights []FlightInstance, od []ODDemand) ([]PaxAssignment, EvalStats) {
	idx := buildODIndex(flights)
	reach := buildReachability(idx)

	remaining := make(map[odKey]int)
	for _, d := range od {
		remaining[odKey{d.Orig, d.Dest}] += d.Demand
	}

	var stats EvalStats
	var assignments []PaxAssignment

	for _, d := range od {
		k := odKey{d.Orig, d.Dest}
		left := remaining[k]
		if left <= 0 {
			continue
		}

		candidates := candidatesFor(flights, idx, reach, k.Orig, k.Dest)
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].travelMin != candidates[j].travelMin {
				return candidates[i].travelMin < candidates[j].travelMin
			}
			return len(candidates[i].legs) < len(candidates[j].legs)
		})

		for _, cand := range candidates {
			if left <= 0 {
				break
			}
			pathCap := int(^uint(0) >> 1)
			for _, li := range cand.legs {
				if c := flights[li].Capacity - flights[li].UsedSeats; c < pathCap {
					pathCap = c
				}
			}
			if pathCap <= 0 {
				continue
			}
			alloc := pathCap
			if left < alloc {
				alloc = left
			}
			for _, li := range cand.legs {
				flights[li].UsedSeats += alloc
			}
			left -= alloc
			stats.ServedTotal += alloc
			if len(cand.legs) == 1 {
				stats.ServedDirect += alloc
			} else {
				stats.ServedOneHop += alloc
			}
			stats.TotalTravelTime += int64(cand.travelMin) * int64(alloc)

			first := flights[cand.legs[0]]
			last := flights[cand.legs[len(cand.legs)-1]]
			rec := PaxAssignment{
				Orig:    k.Orig,
				Dest:    k.Dest,
				Pax:     alloc,
				NumLegs: len(cand.legs),
				DepMin:  first.DepMin,
				ArrMin:  last.ArrMin,
			}
			for _, li := range cand.legs {
				f := flights[li]
				rec.Legs = append(rec.Legs, PaxLeg{
					FlightIndex: li,
					RouteID:     f.RouteID,
					Orig:        f.Orig,
					Dest:        f.Dest,
					DepMin:      f.DepMin,
					ArrMin:      f.ArrMin,
					AircraftIdx: f.AircraftIdx,
				})
			}
			assignments = append(assignments, rec)
		}

		remaining[k] = left
	}

	for _, left := range remaining {
		if left > 0 {
			stats.Unserved += left
		}
	}

	return assignments, stats
}

func candidatesFor(flights []FlightInstance, idx odIndex, reach reachability, orig, dest int) []pathCandidate {
	var candidates []pathCandidate

	for _, fi := range idx[odKey{orig, dest}] {
		f := flights[fi]
		candidates = append(candidates, pathCandidate{
			legs:      []int{fi},
			travelMin: f.ArrMin - f.DepMin,
		})
	}

	for mid := range intersect(reach.from[orig], reach.to[dest]) {
		if mid == orig || mid == dest {
			continue
		}
		for _, i1 := range idx[odKey{orig, mid}] {
			f1 := flights[i1]
			for _, i2 := range idx[odKey{mid, dest}] {
				f2 := flights[i2]
				if f1.ArrMin+Turnaround > f2.DepMin {
					continue
				}
				candidates = append(candidates, pathCandidate{
					legs:      []int{i1, i2},
					travelMin: f2.ArrMin - f1.DepMin,
				})
			}
		}
	}

	return candidates
}

func intersect(a, b map[int]struct{}) map[int]struct{} {
	out := map[int]struct{}{}
	if len(a) == 0 || len(b) == 0 {
		return out
	}
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	for k := range small {
		if _, ok := big[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}
