package scheduling

// EvalOptions carries the evaluator's tunable policy flags. Most
// behavior is compiled-in; a flag exists only where an operator needs to
// opt into a stricter variant without that becoming the silent default.
type EvalOptions struct {
	// DropInteriorEmpty additionally removes interior (non-prefix/suffix)
	// empty flights after pruning. By default the pruner keeps them and
	// the scorer penalizes them lightly; this flag removes them outright.
	// Defaults to false.
	DropInteriorEmpty bool
}

// floorResult is returned whenever an evaluation degenerates to an empty
// flight set at any stage — not an error, just a guaranteed loser.
func floorResult() EvalResult {
	return EvalResult{Score: ScoreFloor}
}

// Evaluate runs the full per-chromosome pipeline: build active flight
// instances, assign aircraft, route OD demand, prune idle prefix/suffix
// legs, and score the result.
func Evaluate(chrom Chromosome, universe []FlightTemplate, fleet Fleet, od []ODDemand, opts EvalOptions) EvalResult {
	if len(chrom) != len(universe) {
		return floorResult()
	}

	active := make([]FlightInstance, 0, len(universe))
	for g, on := range chrom {
		if !on {
			continue
		}
		t := universe[g]
		active = append(active, FlightInstance{
			TmplID:      t.TmplID,
			RouteID:     t.RouteID,
			Orig:        t.Orig,
			Dest:        t.Dest,
			DepMin:      t.DepMin,
			ArrMin:      t.ArrMin,
			AircraftIdx: -1,
			Capacity:    fleet.SeatsPerAircraft,
			UsedSeats:   0,
		})
	}
	if len(active) == 0 {
		return floorResult()
	}

	assigned := AssignAircraft(active, fleet)

	used := assigned[:0:0]
	for _, f := range assigned {
		if f.AircraftIdx >= 0 {
			used = append(used, f)
		}
	}
	if len(used) == 0 {
		return floorResult()
	}

	pax, stats := RouteDemand(used, od)

	pruned, pax := Prune(used, pax)
	if len(pruned) == 0 {
		return floorResult()
	}

	if opts.DropInteriorEmpty {
		pruned, pax = dropEmpty(pruned, pax)
		if len(pruned) == 0 {
			return floorResult()
		}
	}

	stats.NumFlights = len(pruned)
	stats.UsedAircraft = countUsedAircraft(pruned)

	score := Score(stats, pruned, fleet)

	return EvalResult{Score: score, Stats: stats, Flights: pruned, Pax: pax}
}

func countUsedAircraft(flights []FlightInstance) int {
	seen := make(map[int]struct{})
	for _, f := range flights {
		if f.AircraftIdx >= 0 {
			seen[f.AircraftIdx] = struct{}{}
		}
	}
	return len(seen)
}

// dropEmpty removes every remaining zero-UsedSeats flight (not just
// prefix/suffix ones) and remaps pax assignment leg indices accordingly.
// Only reachable when EvalOptions.DropInteriorEmpty is set.
func dropEmpty(flights []FlightInstance, pax []PaxAssignment) ([]FlightInstance, []PaxAssignment) {
	mapOldToNew := make([]int, len(flights))
	out := make([]FlightInstance, 0, len(flights))
	for i, f := range flights {
		if f.UsedSeats == 0 {
			mapOldToNew[i] = -1
			continue
		}
		mapOldToNew[i] = len(out)
		out = append(out, f)
	}

	remapped := make([]PaxAssignment, len(pax))
	for i, rec := range pax {
		rec.Legs = append([]PaxLeg(nil), rec.Legs...)
		for li := range rec.Legs {
			old := rec.Legs[li].FlightIndex
			if old >= 0 && old < len(mapOldToNew) {
				rec.Legs[li].FlightIndex = mapOldToNew[old]
			}
		}
		remapped[i] = rec
	}
	return out, remapped
}
