package scheduling

import "testing"

func TestBuildUniverseSkipsForbiddenRoutes(t *testing.T) {
	routes := []Route{
		{ID: 0, Orig: 0, Dest: 1, TimeMin: 60},
		{ID: 1, Orig: 1, Dest: 0, TimeMin: 60},
	}
	forbidden := NewForbidden([][2]int{{0, 1}})

	universe, err := BuildUniverse(routes, forbidden)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tmpl := range universe {
		if tmpl.Orig == 0 && tmpl.Dest == 1 {
			t.Fatalf("forbidden pair (0,1) produced a template: %+v", tmpl)
		}
	}
	wantSlots := (DayEnd - SlotMin - DayStart) / SlotMin + 1
	if len(universe) != wantSlots {
		t.Fatalf("expected %d templates from route 1, got %d", wantSlots, len(universe))
	}
}

func TestBuildUniverseEmptyWhenAllForbidden(t *testing.T) {
	routes := []Route{{ID: 0, Orig: 0, Dest: 1, TimeMin: 60}}
	forbidden := NewForbidden([][2]int{{0, 1}})

	_, err := BuildUniverse(routes, forbidden)
	if err == nil {
		t.Fatalf("expected NoFeasibleFlights error, got nil")
	}
	var se *Error
	if !asError(err, &se) || se.Kind != KindNoFeasibleFlights {
		t.Fatalf("expected KindNoFeasibleFlights, got %v", err)
	}
}

func TestBuildUniverseDropsLateArrivals(t *testing.T) {
	routes := []Route{{ID: 0, Orig: 0, Dest: 1, TimeMin: 1000}}
	universe, err := BuildUniverse(routes, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tmpl := range universe {
		if tmpl.ArrMin > DayEnd {
			t.Fatalf("template arrives after DayEnd: %+v", tmpl)
		}
	}
}

func asError(err error, target **Error) bool {
	se, ok := err.(*Error)
	if ok {
		*target = se
	}
	return ok
}
