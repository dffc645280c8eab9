package scheduling

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// GA operator parameters. Compiled-in — Config exposes population size,
// generation count, initial density, evaluator options, and the PRNG, but
// not these.
const (
	crossoverProb  = 0.8
	mutationProb   = 0.01
	eliteFraction  = 0.1
	defaultDensity = 0.02 // sparse-start: P(gene on) in the initial population
)

// Config is the GA's external configuration surface.
type Config struct {
	Population  int
	Generations int

	// InitialDensity overrides the sparse-start probability (default
	// 0.02). Raising it, or seeding a few higher-density individuals, is
	// a legitimate tunable when a small universe makes every
	// early-generation individual degenerate.
	InitialDensity float64

	// Eval threads through to Evaluate for every chromosome in the run.
	Eval EvalOptions

	// Rand is the PRNG the GA draws from. If nil, a time-seeded source
	// is created so runs vary between invocations by default; supplying
	// a seeded *rand.Rand makes a run's operator sequence reproducible,
	// which is useful for tests. Not safe for concurrent use; the GA
	// only ever calls it from the single generation-stepping goroutine.
	Rand *rand.Rand
}

// Progress is invoked once per generation (0 through Generations) with
// the generation number and the running global-best score. It must not
// block or mutate GA state.
type Progress func(generation int, bestScore float64)

// RunGA drives the genetic algorithm: population init, tournament
// selection, single-point crossover, bit-flip mutation, and elitism, for
// Generations subsequent to an evaluation-only generation 0. Returns
// ErrMissingData if routes, universe, or od are empty.
func RunGA(ctx context.Context, universe []FlightTemplate, fleet Fleet, routes []Route, od []ODDemand, cfg Config, progress Progress) (GAResult, error) {
	if len(routes) == 0 || len(universe) == 0 || len(od) == 0 {
		return GAResult{}, ErrMissingData("run_ga invoked with empty routes, universe, or OD demand")
	}

	population := cfg.Population
	if population < 2 {
		population = 2
	}
	generations := cfg.Generations
	if generations < 1 {
		generations = 1
	}
	density := cfg.InitialDensity
	if density <= 0 {
		density = defaultDensity
	}
	eliteCount := int(float64(population) * eliteFraction)
	if eliteCount < 1 {
		eliteCount = 1
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	numGenes := len(universe)
	pop := initPopulation(rng, population, numGenes, density)

	var (
		bestScore  = ScoreFloor
		bestChrom  Chromosome
		bestResult EvalResult
		history    []GenerationStat
	)

	updateBest := func(results []EvalResult, pop []Chromosome) {
		for i, r := range results {
			if r.Score > bestScore {
				bestScore = r.Score
				bestChrom = pop[i].Clone()
				bestResult = r
			}
		}
	}

	recordGeneration := func(gen int, results []EvalResult, elapsed time.Duration) GenerationStat {
		sum := 0.0
		genBest := ScoreFloor
		genWorst := math.Inf(1) // sentinel larger than any real score
		var genBestStats EvalStats
		for _, r := range results {
			sum += r.Score
			if r.Score > genBest {
				genBest = r.Score
				genBestStats = r.Stats
			}
			if r.Score < genWorst {
				genWorst = r.Score
			}
		}
		avg := 0.0
		if len(results) > 0 {
			avg = sum / float64(len(results))
		}
		return GenerationStat{
			Generation: gen,
			BestScore:  genBest,
			AvgScore:   avg,
			WorstScore: genWorst,
			Stats:      genBestStats,
			DurationMs: elapsed.Milliseconds(),
		}
	}

	start := time.Now()
	results, err := evaluatePopulation(ctx, pop, universe, fleet, od, cfg.Eval)
	if err != nil {
		return GAResult{}, err
	}
	updateBest(results, pop)
	history = append(history, recordGeneration(0, results, time.Since(start)))
	if progress != nil {
		progress(0, bestScore)
	}

	for gen := 1; gen <= generations; gen++ {
		if ctx.Err() != nil {
			break
		}

		order := make([]int, population)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return results[order[i]].Score > results[order[j]].Score
		})

		newPop := make([]Chromosome, 0, population)
		for i := 0; i < eliteCount && i < population; i++ {
			newPop = append(newPop, pop[order[i]].Clone())
		}

		scores := make([]float64, population)
		for i, r := range results {
			scores[i] = r.Score
		}

		for len(newPop) < population {
			i1 := tournament(rng, scores)
			i2 := tournament(rng, scores)
			c1, c2 := crossover(rng, pop[i1], pop[i2], crossoverProb)
			mutate(rng, c1, mutationProb)
			mutate(rng, c2, mutationProb)
			newPop = append(newPop, c1)
			if len(newPop) < population {
				newPop = append(newPop, c2)
			}
		}

		pop = newPop

		genStart := time.Now()
		results, err = evaluatePopulation(ctx, pop, universe, fleet, od, cfg.Eval)
		if err != nil {
			return GAResult{}, err
		}
		updateBest(results, pop)
		history = append(history, recordGeneration(gen, results, time.Since(genStart)))
		if progress != nil {
			progress(gen, bestScore)
		}
	}

	return GAResult{
		BestScore:      bestScore,
		BestChromosome: bestChrom,
		Stats:          bestResult.Stats,
		Flights:        bestResult.Flights,
		Pax:            bestResult.Pax,
		History:        history,
	}, nil
}

// initPopulation seeds popSize chromosomes, each gene independently on
// with probability density (sparse-start).
func initPopulation(rng *rand.Rand, popSize, numGenes int, density float64) []Chromosome {
	pop := make([]Chromosome, popSize)
	for i := range pop {
		ind := make(Chromosome, numGenes)
		for g := range ind {
			ind[g] = rng.Float64() < density
		}
		pop[i] = ind
	}
	return pop
}

// tournament draws two population indices uniformly and returns the one
// with the higher score; ties go to the first-drawn index.
func tournament(rng *rand.Rand, scores []float64) int {
	a := rng.Intn(len(scores))
	b := rng.Intn(len(scores))
	if scores[a] >= scores[b] {
		return a
	}
	return b
}

// crossover performs single-point crossover with probability pCross;
// otherwise the children are copies of their parents.
func crossover(rng *rand.Rand, p1, p2 Chromosome, pCross float64) (Chromosome, Chromosome) {
	c1, c2 := p1.Clone(), p2.Clone()
	n := len(p1)
	if n < 2 || rng.Float64() >= pCross {
		return c1, c2
	}
	point := 1
	if n > 2 {
		point = 1 + rng.Intn(n-2)
	}
	for i := point; i < n; i++ {
		c1[i], c2[i] = c2[i], c1[i]
	}
	return c1, c2
}

// mutate flips each gene independently with probability pMut.
func mutate(rng *rand.Rand, ind Chromosome, pMut float64) {
	for i := range ind {
		if rng.Float64() < pMut {
			ind[i] = !ind[i]
		}
	}
}

// evaluatePopulation fans each chromosome's evaluation out across an
// errgroup bounded by GOMAXPROCS: evaluation is embarrassingly parallel
// within a generation, results merge back by index, and no evaluation
// mutates shared state.
func evaluatePopulation(ctx context.Context, pop []Chromosome, universe []FlightTemplate, fleet Fleet, od []ODDemand, opts EvalOptions) ([]EvalResult, error) {
	results := make([]EvalResult, len(pop))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range pop {
		i := i
		g.Go(func() error {
			results[i] = Evaluate(pop[i], universe, fleet, od, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
