package scheduling

import "testing"

func TestEvaluateFloorsOnGeneLengthMismatch(t *testing.T) {
	universe := []FlightTemplate{{TmplID: 0, Orig: 0, Dest: 1, DepMin: 360, ArrMin: 420}}
	chrom := Chromosome{true, true}

	result := Evaluate(chrom, universe, Fleet{NumAircraft: 1, SeatsPerAircraft: 10}, nil, EvalOptions{})
	if result.Score != ScoreFloor {
		t.Fatalf("expected floor score on length mismatch, got %.1f", result.Score)
	}
}

func TestEvaluateFloorsOnAllGenesOff(t *testing.T) {
	universe := []FlightTemplate{{TmplID: 0, Orig: 0, Dest: 1, DepMin: 360, ArrMin: 420}}
	chrom := Chromosome{false}

	result := Evaluate(chrom, universe, Fleet{NumAircraft: 1, SeatsPerAircraft: 10}, nil, EvalOptions{})
	if result.Score != ScoreFloor {
		t.Fatalf("expected floor score with no active genes, got %.1f", result.Score)
	}
}

func TestEvaluateServesDirectDemandEndToEnd(t *testing.T) {
	universe := []FlightTemplate{
		{TmplID: 0, RouteID: 0, Orig: 0, Dest: 1, DepMin: 360, ArrMin: 420},
	}
	chrom := Chromosome{true}
	fleet := Fleet{NumAircraft: 1, SeatsPerAircraft: 100}
	od := []ODDemand{{Orig: 0, Dest: 1, Demand: 100}}

	result := Evaluate(chrom, universe, fleet, od, EvalOptions{})
	if result.Stats.ServedTotal != 100 || result.Stats.Unserved != 0 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	if len(result.Flights) != 1 || result.Flights[0].UsedSeats != 100 {
		t.Fatalf("unexpected flights: %+v", result.Flights)
	}
	if result.Score == ScoreFloor {
		t.Fatalf("expected a real score for a fully served demand, got floor")
	}
}

func TestEvaluateDropInteriorEmptyRemovesIdleLegs(t *testing.T) {
	// Single-aircraft chain 0->1->2->3; demand only on the first and last
	// legs, so the middle leg (1->2) is flown with zero passengers and
	// survives ordinary pruning as a kept interior-empty flight.
	universe := []FlightTemplate{
		{TmplID: 0, RouteID: 0, Orig: 0, Dest: 1, DepMin: 360, ArrMin: 420},
		{TmplID: 1, RouteID: 1, Orig: 1, Dest: 2, DepMin: 480, ArrMin: 540},
		{TmplID: 2, RouteID: 2, Orig: 2, Dest: 3, DepMin: 600, ArrMin: 660},
	}
	chrom := Chromosome{true, true, true}
	fleet := Fleet{NumAircraft: 1, SeatsPerAircraft: 100}
	od := []ODDemand{{Orig: 0, Dest: 1, Demand: 10}, {Orig: 2, Dest: 3, Demand: 10}}

	withInterior := Evaluate(chrom, universe, fleet, od, EvalOptions{DropInteriorEmpty: false})
	withoutInterior := Evaluate(chrom, universe, fleet, od, EvalOptions{DropInteriorEmpty: true})

	if len(withInterior.Flights) != 3 {
		t.Fatalf("expected the interior empty leg kept by default, got %+v", withInterior.Flights)
	}
	if len(withoutInterior.Flights) != 2 {
		t.Fatalf("expected DropInteriorEmpty to remove the idle middle leg, got %+v", withoutInterior.Flights)
	}
}
