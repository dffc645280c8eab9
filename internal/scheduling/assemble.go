package scheduling

import "fmt"

// The three output document shapes. Field names and nesting are part of
// the wire contract and must not drift, even where the Go-side naming
// differs from the JSON keys.

type FlightsDocument struct {
	Summary  FlightsSummary   `json:"summary"`
	Airports []AirportSummary `json:"airports"`
	Flights  []FlightRecord   `json:"flights"`
}

type FlightsSummary struct {
	ServedTotal     int   `json:"served_total"`
	ServedDirect    int   `json:"served_direct"`
	ServedOneHop    int   `json:"served_1hop"`
	Unserved        int   `json:"unserved"`
	NumFlights      int   `json:"num_flights"`
	UsedAircraft    int   `json:"used_aircraft"`
	TotalTravelTime int64 `json:"total_travel_time_min"`
}

type AirportSummary struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type FlightRecord struct {
	TmplID      int    `json:"tmpl_id"`
	RouteID     int    `json:"route_id"`
	OrigID      int    `json:"orig_id"`
	DestID      int    `json:"dest_id"`
	DepMin      int    `json:"dep_min"`
	ArrMin      int    `json:"arr_min"`
	DepHHMM     string `json:"dep_hhmm"`
	ArrHHMM     string `json:"arr_hhmm"`
	AircraftIdx int    `json:"aircraft_idx"`
	AircraftID  string `json:"aircraft_id,omitempty"`
	Capacity    int    `json:"capacity"`
	UsedSeats   int    `json:"used_seats"`
}

type PassengersDocument struct {
	Assignments []AssignmentRecord `json:"assignments"`
}

type AssignmentRecord struct {
	OrigID  int         `json:"orig_id"`
	DestID  int         `json:"dest_id"`
	Pax     int         `json:"pax"`
	NumLegs int         `json:"num_legs"`
	DepMin  int         `json:"dep_min"`
	ArrMin  int         `json:"arr_min"`
	DepHHMM string      `json:"dep_hhmm"`
	ArrHHMM string      `json:"arr_hhmm"`
	Legs    []LegRecord `json:"legs"`
}

type LegRecord struct {
	FlightIndex int    `json:"flight_index"`
	RouteID     int    `json:"route_id"`
	OrigID      int    `json:"orig_id"`
	DestID      int    `json:"dest_id"`
	DepMin      int    `json:"dep_min"`
	ArrMin      int    `json:"arr_min"`
	DepHHMM     string `json:"dep_hhmm"`
	ArrHHMM     string `json:"arr_hhmm"`
	AircraftIdx int    `json:"aircraft_idx"`
}

type EvolutionDocument struct {
	Evolution []EvolutionRecord `json:"evolution"`
}

type EvolutionRecord struct {
	Generation   int     `json:"generation"`
	BestScore    float64 `json:"best_score"`
	AvgScore     float64 `json:"avg_score"`
	WorstScore   float64 `json:"worst_score"`
	ServedTotal  int     `json:"served_total"`
	ServedDirect int     `json:"served_direct"`
	ServedOneHop int     `json:"served_1hop"`
	Unserved     int     `json:"unserved"`
	NumFlights   int     `json:"num_flights"`
	UsedAircraft int     `json:"used_aircraft"`
	DurationMs   int64   `json:"duration_ms"`
}

// formatHHMM renders a minutes-since-midnight offset as zero-padded 24h
// HH:MM.
func formatHHMM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// AssembleFlightsDocument builds output document #1 from a completed GA
// run. airports supplies the code/name lookup; fleet supplies the
// aircraft_id lookup for flights that carry a valid aircraft_idx.
func AssembleFlightsDocument(result GAResult, airports []Airport, fleet Fleet) FlightsDocument {
	doc := FlightsDocument{
		Summary: FlightsSummary{
			ServedTotal:     result.Stats.ServedTotal,
			ServedDirect:    result.Stats.ServedDirect,
			ServedOneHop:    result.Stats.ServedOneHop,
			Unserved:        result.Stats.Unserved,
			NumFlights:      result.Stats.NumFlights,
			UsedAircraft:    result.Stats.UsedAircraft,
			TotalTravelTime: result.Stats.TotalTravelTime,
		},
		Airports: make([]AirportSummary, 0, len(airports)),
		Flights:  make([]FlightRecord, 0, len(result.Flights)),
	}

	for _, a := range airports {
		doc.Airports = append(doc.Airports, AirportSummary{ID: a.ID, Code: a.Code, Name: a.Name})
	}

	for _, f := range result.Flights {
		rec := FlightRecord{
			TmplID:      f.TmplID,
			RouteID:     f.RouteID,
			OrigID:      f.Orig,
			DestID:      f.Dest,
			DepMin:      f.DepMin,
			ArrMin:      f.ArrMin,
			DepHHMM:     formatHHMM(f.DepMin),
			ArrHHMM:     formatHHMM(f.ArrMin),
			AircraftIdx: f.AircraftIdx,
			Capacity:    f.Capacity,
			UsedSeats:   f.UsedSeats,
		}
		if f.AircraftIdx >= 0 && f.AircraftIdx < len(fleet.AircraftIDs) {
			rec.AircraftID = fleet.AircraftIDs[f.AircraftIdx]
		}
		doc.Flights = append(doc.Flights, rec)
	}

	return doc
}

// AssemblePassengersDocument builds output document #2. flight_index
// values in result.Pax already refer to positions in result.Flights,
// which is exactly the array AssembleFlightsDocument emits as "flights".
func AssemblePassengersDocument(result GAResult) PassengersDocument {
	doc := PassengersDocument{Assignments: make([]AssignmentRecord, 0, len(result.Pax))}

	for _, p := range result.Pax {
		rec := AssignmentRecord{
			OrigID:  p.Orig,
			DestID:  p.Dest,
			Pax:     p.Pax,
			NumLegs: p.NumLegs,
			DepMin:  p.DepMin,
			ArrMin:  p.ArrMin,
			DepHHMM: formatHHMM(p.DepMin),
			ArrHHMM: formatHHMM(p.ArrMin),
			Legs:    make([]LegRecord, 0, len(p.Legs)),
		}
		for _, l := range p.Legs {
			rec.Legs = append(rec.Legs, LegRecord{
				FlightIndex: l.FlightIndex,
				RouteID:     l.RouteID,
				OrigID:      l.Orig,
				DestID:      l.Dest,
				DepMin:      l.DepMin,
				ArrMin:      l.ArrMin,
				DepHHMM:     formatHHMM(l.DepMin),
				ArrHHMM:     formatHHMM(l.ArrMin),
				AircraftIdx: l.AircraftIdx,
			})
		}
		doc.Assignments = append(doc.Assignments, rec)
	}

	return doc
}

// AssembleEvolutionDocument builds output document #3 from the GA's
// per-generation history, generations 0..N inclusive.
func AssembleEvolutionDocument(result GAResult) EvolutionDocument {
	doc := EvolutionDocument{Evolution: make([]EvolutionRecord, 0, len(result.History))}
	for _, h := range result.History {
		doc.Evolution = append(doc.Evolution, EvolutionRecord{
			Generation:   h.Generation,
			BestScore:    h.BestScore,
			AvgScore:     h.AvgScore,
			WorstScore:   h.WorstScore,
			ServedTotal:  h.Stats.ServedTotal,
			ServedDirect: h.Stats.ServedDirect,
			ServedOneHop: h.Stats.ServedOneHop,
			Unserved:     h.Stats.Unserved,
			NumFlights:   h.Stats.NumFlights,
			UsedAircraft: h.Stats.UsedAircraft,
			DurationMs:   h.DurationMs,
		})
	}
	return doc
}
