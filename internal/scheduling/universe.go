package scheduling

// BuildUniverse enumerates every (route, departure-slot) pair that isn't
// forbidden, producing the flight-template universe the GA's chromosomes
// index into. Routes are walked in input order; within a route,
// departure slots ascend from DayStart in SlotMin steps up to 21:00
// (inclusive), so every template's arrival fits inside the operating day.
//
// Returns ErrNoFeasibleFlights if the resulting universe is empty.
func BuildUniverse(routes []Route, forbidden Forbidden) ([]FlightTemplate, error) {
	var universe []FlightTemplate
	id := 0
	for _, r := range routes {
		if forbidden.Contains(r.Orig, r.Dest) {
			continue
		}
		for dep := DayStart; dep <= DayEnd-SlotMin; dep += SlotMin {
			arr := dep + r.TimeMin
			if arr > DayEnd {
				continue
			}
			universe = append(universe, FlightTemplate{
				TmplID:  id,
				RouteID: r.ID,
				Orig:    r.Orig,
				Dest:    r.Dest,
				DepMin:  dep,
				ArrMin:  arr,
			})
			id++
		}
	}
	if len(universe) == 0 {
		return nil, ErrNoFeasibleFlights()
	}
	return universe, nil
}
