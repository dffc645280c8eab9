// Package scheduling implements the daily flight-scheduling core: the
// flight-universe builder, the greedy aircraft assigner, the OD demand
// router, the schedule pruner, the fitness scorer, and the genetic
// algorithm that drives them. It has no knowledge of how its inputs were
// loaded or how its outputs get to a caller — that's the job of the
// loader and api packages.
package scheduling

// Time-of-day constants, all in minutes from 00:00 local. Multiples of
// SLOT_MIN = 60 per spec; routes durations are multiples of 60 too.
const (
	DayStart   = 360  // 06:00
	DayEnd     = 1320 // 22:00
	SlotMin    = 60
	Turnaround = 60 // minimum ground time before an aircraft can depart again
)

// Airport is a dense-indexed node in the route graph.
type Airport struct {
	ID   int
	Code string
	Name string
	Lat  float64
	Lon  float64
}

// Route is a candidate city pair with a fixed flight duration.
type Route struct {
	ID      int
	Orig    int
	Dest    int
	TimeMin int
}

// ODDemand is the passenger demand for one origin-destination pair.
type ODDemand struct {
	Orig   int
	Dest   int
	Demand int
}

// Fleet describes the homogeneous aircraft fleet available for the day.
type Fleet struct {
	NumAircraft      int
	SeatsPerAircraft int
	AircraftIDs      []string
}

// odKey identifies an ordered origin-destination pair.
type odKey struct {
	Orig int
	Dest int
}

// Forbidden is the set of OD pairs excluded entirely from the flight
// universe, keyed on a comparable struct rather than a packed integer —
// Go doesn't need bit-packing to get a hashable key.
type Forbidden map[odKey]struct{}

// NewForbidden builds a Forbidden set from orig/dest pairs.
func NewForbidden(pairs [][2]int) Forbidden {
	f := make(Forbidden, len(pairs))
	for _, p := range pairs {
		f[odKey{p[0], p[1]}] = struct{}{}
	}
	return f
}

// Contains reports whether orig->dest is forbidden.
func (f Forbidden) Contains(orig, dest int) bool {
	_, ok := f[odKey{orig, dest}]
	return ok
}

// FlightTemplate is a candidate flight: a route at a specific departure
// slot. TmplID is its stable position in the universe.
type FlightTemplate struct {
	TmplID  int
	RouteID int
	Orig    int
	Dest    int
	DepMin  int
	ArrMin  int
}

// Chromosome is a bit-vector over the flight-template universe; a true
// bit enables that flight for one evaluation.
type Chromosome []bool

// Clone returns an independent copy of the chromosome.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// FlightInstance is a realized flight within one evaluation: a copy of its
// template plus aircraft assignment and seat usage.
type FlightInstance struct {
	TmplID      int
	RouteID     int
	Orig        int
	Dest        int
	DepMin      int
	ArrMin      int
	AircraftIdx int // -1 if unassigned
	Capacity    int
	UsedSeats   int
}

// EvalStats summarizes one chromosome's evaluation.
type EvalStats struct {
	ServedTotal      int
	ServedDirect     int
	ServedOneHop     int
	Unserved         int
	NumFlights       int
	UsedAircraft     int
	TotalTravelTime  int64 // sum over served pax of (arr-dep)*pax
}

// PaxLeg is one leg of a routed OD assignment.
type PaxLeg struct {
	FlightIndex int // position within the evaluation's (pruned) flight slice
	RouteID     int
	Orig        int
	Dest        int
	DepMin      int
	ArrMin      int
	AircraftIdx int
}

// PaxAssignment records how a chunk of OD demand was routed.
type PaxAssignment struct {
	Orig    int
	Dest    int
	Pax     int
	NumLegs int
	DepMin  int
	ArrMin  int
	Legs    []PaxLeg
}

// EvalResult is the full output of evaluating one chromosome: its
// fitness score plus the post-pruning flights and pax assignments that
// produced it.
type EvalResult struct {
	Score   float64
	Stats   EvalStats
	Flights []FlightInstance
	Pax     []PaxAssignment
}

// GenerationStat is one row of the GA's per-generation history.
type GenerationStat struct {
	Generation int
	BestScore  float64
	AvgScore   float64
	WorstScore float64
	Stats      EvalStats
	DurationMs int64
}

// GAResult is the final output of a full run: the best chromosome found,
// its evaluation, and the generation-by-generation history.
type GAResult struct {
	BestScore      float64
	BestChromosome Chromosome
	Stats          EvalStats
	Flights        []FlightInstance
	Pax            []PaxAssignment
	History        []GenerationStat
}
