package scheduling

import "testing"

func TestPruneDropsEmptyPrefixAndSuffixKeepsInterior(t *testing.T) {
	flights := []FlightInstance{
		{TmplID: 0, AircraftIdx: 0, DepMin: 360, UsedSeats: 0},
		{TmplID: 1, AircraftIdx: 0, DepMin: 420, UsedSeats: 50},
		{TmplID: 2, AircraftIdx: 0, DepMin: 480, UsedSeats: 0},
		{TmplID: 3, AircraftIdx: 0, DepMin: 540, UsedSeats: 30},
		{TmplID: 4, AircraftIdx: 0, DepMin: 600, UsedSeats: 0},
	}
	pax := []PaxAssignment{{Legs: []PaxLeg{{FlightIndex: 1}, {FlightIndex: 3}}}}

	pruned, remapped := Prune(flights, pax)
	if len(pruned) != 3 {
		t.Fatalf("expected prefix+suffix dropped (3 remain), got %d: %+v", len(pruned), pruned)
	}
	if pruned[0].TmplID != 1 || pruned[len(pruned)-1].TmplID != 3 {
		t.Fatalf("expected range [tmpl 1, tmpl 3] kept, got %+v", pruned)
	}

	// interior empty (TmplID 2) must still be present between them
	var sawInterior bool
	for _, f := range pruned {
		if f.TmplID == 2 {
			sawInterior = true
		}
	}
	if !sawInterior {
		t.Fatalf("expected interior empty flight kept, got %+v", pruned)
	}

	if remapped[0].Legs[0].FlightIndex != 0 {
		t.Fatalf("expected leg pointing at old index 1 remapped to new index 0, got %d", remapped[0].Legs[0].FlightIndex)
	}
	if remapped[0].Legs[1].FlightIndex != 2 {
		t.Fatalf("expected leg pointing at old index 3 remapped to new index 2, got %d", remapped[0].Legs[1].FlightIndex)
	}
}

func TestPruneAllEmptyYieldsNothing(t *testing.T) {
	flights := []FlightInstance{
		{TmplID: 0, AircraftIdx: 0, DepMin: 360, UsedSeats: 0},
		{TmplID: 1, AircraftIdx: 0, DepMin: 420, UsedSeats: 0},
	}
	pruned, _ := Prune(flights, nil)
	if len(pruned) != 0 {
		t.Fatalf("expected all-empty aircraft schedule pruned to nothing, got %+v", pruned)
	}
}

func TestPruneHandlesMultipleAircraftIndependently(t *testing.T) {
	flights := []FlightInstance{
		{TmplID: 0, AircraftIdx: 0, DepMin: 360, UsedSeats: 0},
		{TmplID: 1, AircraftIdx: 0, DepMin: 420, UsedSeats: 10},
		{TmplID: 2, AircraftIdx: 1, DepMin: 360, UsedSeats: 20},
		{TmplID: 3, AircraftIdx: 1, DepMin: 420, UsedSeats: 0},
	}
	pruned, _ := Prune(flights, nil)
	if len(pruned) != 2 {
		t.Fatalf("expected one kept flight per aircraft, got %d: %+v", len(pruned), pruned)
	}
}
