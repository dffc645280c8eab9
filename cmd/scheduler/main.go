// Command scheduler runs the GA scheduling engine against disk-based
// fixtures and writes the three output documents, as a standalone
// alternative to standing up the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"gaflight/internal/loader"
	"gaflight/internal/scheduling"
)

func main() {
	var (
		airportsPath   = flag.String("airports", "data/airports.json", "airports document path")
		routesPath     = flag.String("routes", "data/routes.json", "routes document path")
		odPath         = flag.String("od", "data/passengers_od.json", "passengers_od document path")
		fleetPath      = flag.String("fleet", "data/fleet.json", "fleet document path")
		forbiddenPath  = flag.String("forbidden", "", "forbidden_od document path (optional)")
		population     = flag.Int("population", 200, "GA population size")
		generations    = flag.Int("generations", 100, "GA generation count")
		outDir         = flag.String("out-dir", "data", "directory to write output documents into")
	)
	flag.Parse()

	airports, err := loadFrom(*airportsPath, loader.LoadAirports)
	if err != nil {
		log.Fatalf("failed to load airports: %v", err)
	}
	routes, err := loadFrom(*routesPath, loader.LoadRoutes)
	if err != nil {
		log.Fatalf("failed to load routes: %v", err)
	}
	od, err := loadFrom(*odPath, loader.LoadODDemand)
	if err != nil {
		log.Fatalf("failed to load passengers_od: %v", err)
	}
	fleet, err := loadFrom(*fleetPath, loader.LoadFleet)
	if err != nil {
		log.Fatalf("failed to load fleet: %v", err)
	}

	forbidden := scheduling.NewForbidden(nil)
	if *forbiddenPath != "" {
		forbidden, err = loadFrom(*forbiddenPath, loader.LoadForbidden)
		if err != nil {
			log.Fatalf("failed to load forbidden_od: %v", err)
		}
	}

	universe, err := scheduling.BuildUniverse(routes, forbidden)
	if err != nil {
		log.Fatalf("failed to build flight universe: %v", err)
	}
	log.Printf("built %d flight templates from %d routes", len(universe), len(routes))

	cfg := scheduling.Config{Population: *population, Generations: *generations}
	progress := func(gen int, best float64) {
		log.Printf("generation %d: best score %.1f", gen, best)
	}

	result, err := scheduling.RunGA(context.Background(), universe, fleet, routes, od, cfg, progress)
	if err != nil {
		log.Fatalf("GA run failed: %v", err)
	}

	flightsDoc := scheduling.AssembleFlightsDocument(result, airports, fleet)
	passengersDoc := scheduling.AssemblePassengersDocument(result)
	evolutionDoc := scheduling.AssembleEvolutionDocument(result)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	if err := writeJSON(filepath.Join(*outDir, "flights_ga.json"), flightsDoc); err != nil {
		log.Fatalf("failed to write flights_ga.json: %v", err)
	}
	if err := writeJSON(filepath.Join(*outDir, "passengers_flights.json"), passengersDoc); err != nil {
		log.Fatalf("failed to write passengers_flights.json: %v", err)
	}
	if err := writeJSON(filepath.Join(*outDir, "ga_stats.json"), evolutionDoc); err != nil {
		log.Fatalf("failed to write ga_stats.json: %v", err)
	}

	log.Printf("done: best score %.1f, served %d/%d pax", result.BestScore,
		result.Stats.ServedTotal, result.Stats.ServedTotal+result.Stats.Unserved)
}

func loadFrom[T any](path string, parse func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return parse(f)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
