// Package loader parses the five JSON input documents into the core
// scheduling types. Each loader takes an io.Reader so the same function
// serves file-based CLI fixtures and HTTP request bodies alike.
package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"gaflight/internal/scheduling"
)

type airportsDoc struct {
	Airports []airportRecord `json:"airports"`
}

type airportRecord struct {
	ID   int     `json:"id"`
	Code string  `json:"code"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type routesDoc struct {
	Routes []routeRecord `json:"routes"`
}

type routeRecord struct {
	ID      int `json:"id"`
	OrigID  int `json:"orig_id"`
	DestID  int `json:"dest_id"`
	TimeMin int `json:"time_min"`
}

type odDoc struct {
	ODPairs []odRecord `json:"od_pairs"`
}

type odRecord struct {
	OrigID int `json:"orig_id"`
	DestID int `json:"dest_id"`
	Demand int `json:"demand"`
}

type fleetDoc struct {
	NumAircraft      int      `json:"num_aircraft"`
	SeatsPerAircraft int      `json:"seats_per_aircraft"`
	AircraftIDs      []string `json:"aircraft_ids"`
}

type forbiddenDoc struct {
	ForbiddenOD []forbiddenRecord `json:"forbidden_od"`
}

type forbiddenRecord struct {
	OrigID int `json:"orig_id"`
	DestID int `json:"dest_id"`
}

func parseErr(msg string, err error) error {
	return scheduling.ErrParseError(msg, err)
}

// LoadAirports parses the {"airports": [...]} document. An empty or
// absent array is a ParseError.
func LoadAirports(r io.Reader) ([]scheduling.Airport, error) {
	var doc airportsDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, parseErr("decode airports document", err)
	}
	if len(doc.Airports) == 0 {
		return nil, parseErr("airports array is empty", nil)
	}

	out := make([]scheduling.Airport, len(doc.Airports))
	for i, a := range doc.Airports {
		out[i] = scheduling.Airport{ID: a.ID, Code: a.Code, Name: a.Name, Lat: a.Lat, Lon: a.Lon}
	}
	return out, nil
}

// LoadRoutes parses the {"routes": [...]} document. An empty or absent
// array is a ParseError.
func LoadRoutes(r io.Reader) ([]scheduling.Route, error) {
	var doc routesDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, parseErr("decode routes document", err)
	}
	if len(doc.Routes) == 0 {
		return nil, parseErr("routes array is empty", nil)
	}

	out := make([]scheduling.Route, len(doc.Routes))
	for i, r := range doc.Routes {
		out[i] = scheduling.Route{ID: r.ID, Orig: r.OrigID, Dest: r.DestID, TimeMin: r.TimeMin}
	}
	return out, nil
}

// LoadODDemand parses the {"od_pairs": [...]} document. An empty or
// absent array is a ParseError.
func LoadODDemand(r io.Reader) ([]scheduling.ODDemand, error) {
	var doc odDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, parseErr("decode passengers_od document", err)
	}
	if len(doc.ODPairs) == 0 {
		return nil, parseErr("od_pairs array is empty", nil)
	}

	out := make([]scheduling.ODDemand, len(doc.ODPairs))
	for i, d := range doc.ODPairs {
		out[i] = scheduling.ODDemand{Orig: d.OrigID, Dest: d.DestID, Demand: d.Demand}
	}
	return out, nil
}

// LoadFleet parses the flat fleet document. Short aircraft_ids arrays are
// auto-filled with zero-padded placeholders (AC_000, AC_001, ...) up to
// num_aircraft.
func LoadFleet(r io.Reader) (scheduling.Fleet, error) {
	var doc fleetDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return scheduling.Fleet{}, parseErr("decode fleet document", err)
	}

	ids := doc.AircraftIDs
	for i := len(ids); i < doc.NumAircraft; i++ {
		ids = append(ids, fmt.Sprintf("AC_%03d", i))
	}

	return scheduling.Fleet{
		NumAircraft:      doc.NumAircraft,
		SeatsPerAircraft: doc.SeatsPerAircraft,
		AircraftIDs:      ids,
	}, nil
}

// LoadForbidden parses the {"forbidden_od": [...]} document. An absent
// or empty array is valid here — it just means nothing is forbidden.
func LoadForbidden(r io.Reader) (scheduling.Forbidden, error) {
	var doc forbiddenDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, parseErr("decode forbidden document", err)
	}

	pairs := make([][2]int, len(doc.ForbiddenOD))
	for i, f := range doc.ForbiddenOD {
		pairs[i] = [2]int{f.OrigID, f.DestID}
	}
	return scheduling.NewForbidden(pairs), nil
}
