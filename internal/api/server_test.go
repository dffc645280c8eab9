package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	srv := New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateRunAndFetchByID(t *testing.T) {
	srv := New()

	body := map[string]any{
		"airports": []map[string]any{
			{"id": 0, "code": "AAA", "name": "A"},
			{"id": 1, "code": "BBB", "name": "B"},
		},
		"routes": []map[string]any{
			{"id": 0, "orig_id": 0, "dest_id": 1, "time_min": 60},
		},
		"od_pairs": []map[string]any{
			{"orig_id": 0, "dest_id": 1, "demand": 50},
		},
		"fleet":        map[string]any{"num_aircraft": 1, "seats_per_aircraft": 50},
		"forbidden_od": []map[string]any{},
		"population":   8,
		"generations":  3,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/runs", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.RunID == "" {
		t.Fatalf("expected a non-empty run_id")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/runs/"+created.RunID, nil)
	getRec := httptest.NewRecorder()
	srv.ServeHTTP(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching run, got %d: %s", getRec.Code, getRec.Body.String())
	}
}

func TestGetUnknownRunReturns404(t *testing.T) {
	srv := New()
	req := httptest.NewRequest(http.MethodGet, "/runs/does_not_exist", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateRunRejectsMalformedBody(t *testing.T) {
	srv := New()
	req := httptest.NewRequest(http.MethodPost, "/runs", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
