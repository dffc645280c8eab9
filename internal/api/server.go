// Package api exposes the scheduling engine over HTTP: a chi router
// closed over a shared backing store, JSON in, JSON out, a uniform
// JSON error envelope, and a permissive CORS middleware for a
// browser-based front end.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"gaflight/internal/loader"
	"gaflight/internal/scheduling"
)

// Server holds the in-memory run store. Runs are never persisted to
// disk by the HTTP surface — cmd/scheduler is the disk-writing path.
type Server struct {
	mu      sync.RWMutex
	runs    map[string]*runRecord
	counter uint64
}

type runRecord struct {
	Flights    scheduling.FlightsDocument    `json:"flights"`
	Passengers scheduling.PassengersDocument `json:"passengers"`
	Evolution  scheduling.EvolutionDocument  `json:"evolution"`
}

// New constructs the HTTP router.
func New() http.Handler {
	s := &Server{runs: make(map[string]*runRecord)}
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/runs", s.handleCreateRun)
	r.Get("/runs/{id}", s.handleGetRun)

	return r
}

// runRequest is the combined request body for POST /runs: the five
// input documents inlined plus the GA's configuration surface.
type runRequest struct {
	Airports    json.RawMessage `json:"airports"`
	Routes      json.RawMessage `json:"routes"`
	ODPairs     json.RawMessage `json:"od_pairs"`
	Fleet       json.RawMessage `json:"fleet"`
	ForbiddenOD json.RawMessage `json:"forbidden_od"`
	Population  int             `json:"population"`
	Generations int             `json:"generations"`
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	airports, err := loader.LoadAirports(wrap("airports", req.Airports))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	routes, err := loader.LoadRoutes(wrap("routes", req.Routes))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	od, err := loader.LoadODDemand(wrap("od_pairs", req.ODPairs))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	fleet, err := loader.LoadFleet(bytes.NewReader(req.Fleet))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	forbidden, err := loader.LoadForbidden(wrap("forbidden_od", req.ForbiddenOD))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	universe, err := scheduling.BuildUniverse(routes, forbidden)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	result, err := scheduling.RunGA(ctx, universe, fleet, routes, od, scheduling.Config{
		Population:  req.Population,
		Generations: req.Generations,
	}, nil)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec := &runRecord{
		Flights:    scheduling.AssembleFlightsDocument(result, airports, fleet),
		Passengers: scheduling.AssemblePassengersDocument(result),
		Evolution:  scheduling.AssembleEvolutionDocument(result),
	}

	id := s.store(rec)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"run_id":     id,
		"flights":    rec.Flights,
		"passengers": rec.Passengers,
		"evolution":  rec.Evolution,
	})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.RLock()
	rec, ok := s.runs[id]
	s.mu.RUnlock()
	if !ok {
		writeJSONError(w, http.StatusNotFound, "run not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"run_id":     id,
		"flights":    rec.Flights,
		"passengers": rec.Passengers,
		"evolution":  rec.Evolution,
	})
}

func (s *Server) store(rec *runRecord) string {
	n := atomic.AddUint64(&s.counter, 1)
	id := formatRunID(n)

	s.mu.Lock()
	s.runs[id] = rec
	s.mu.Unlock()

	return id
}

func formatRunID(n uint64) string {
	const digits = "0123456789"
	buf := []byte("run_000000")
	for i := len(buf) - 1; n > 0 && i >= 4; i-- {
		buf[i] = digits[n%10]
		n /= 10
	}
	return string(buf)
}

// wrap re-nests a raw inline array under its document key so it can be
// fed through the loader package's document-shaped parsers unchanged.
func wrap(key string, raw json.RawMessage) *bytes.Reader {
	if raw == nil {
		raw = json.RawMessage("[]")
	}
	doc, _ := json.Marshal(map[string]json.RawMessage{key: raw})
	return bytes.NewReader(doc)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
