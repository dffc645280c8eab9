package scheduling

// ScoreFloor is the fitness assigned to evaluations that degenerate to an
// empty flight set at any stage (no active genes, no aircraft-assignable
// flights, empty after pruning). Not an error — just a guaranteed loser
// under tournament selection.
const ScoreFloor = -1e9

// Score computes the fitness of one evaluation's post-pruning state: a
// weighted sum of served demand against penalties for travel time,
// unserved demand, an oversized flight count, an oversized fleet
// (unreachable by construction — the assigner never uses more aircraft
// than fleet.NumAircraft, but the penalty stays as a defensive term),
// and interior empty flights left by the pruner.
func Score(stats EvalStats, flights []FlightInstance, fleet Fleet) float64 {
	score := 100_000.0 * float64(stats.ServedTotal)
	score -= 10.0 * float64(stats.TotalTravelTime)
	score -= 50_000.0 * float64(stats.Unserved)

	if stats.NumFlights > 1000 {
		score -= 100_000.0 * float64(stats.NumFlights-1000)
	}
	if stats.UsedAircraft > fleet.NumAircraft {
		score -= 100_000.0 * float64(stats.UsedAircraft-fleet.NumAircraft)
	}

	empty := 0
	for _, f := range flights {
		if f.UsedSeats == 0 {
			empty++
		}
	}
	score -= 1000.0 * float64(empty)

	return score
}
