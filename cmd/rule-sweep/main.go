package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"nd-ca/pkg/ca"
	pcore "nd-ca/pkg/core"

	"gonum.org/v1/gonum/stat"
)

type ruleSet struct {
	birth   []int
	survive []int
}

type scenarioResult struct {
	rule       string
	final      int
	mean       float64
	stddev     float64
	extinctAt  int
	err        error
	population []float64
}

type sweepConfig struct {
	width, height int
	boundary      ca.Boundary
	seed          int64
	density       float64
	steps         int
	boardWorkers  int
}

func main() {
	steps := flag.Int("steps", 200, "generations to simulate per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of rules evaluated concurrently")
	boardWorkers := flag.Int("board-workers", 1, "goroutines sharing each board step")
	width := flag.Int("width", 64, "board width")
	height := flag.Int("height", 64, "board height")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	density := flag.Float64("density", 0.35, "initial live cell density")
	boundary := flag.String("boundary", "wrap", "boundary: wrap, wrap:<offsets>, reflect or constant:<v>")
	top := flag.Int("top", 10, "rows of the ranking to print")
	flag.Parse()

	if err := checkSteps(*steps); err != nil {
		log.Fatal(err)
	}
	b, err := ca.ParseBoundary(*boundary)
	if err != nil {
		log.Fatal(err)
	}
	cfg := sweepConfig{
		width:        *width,
		height:       *height,
		boundary:     b,
		seed:         *seed,
		density:      *density,
		steps:        *steps,
		boardWorkers: *boardWorkers,
	}

	birthOptions := [][]int{{3}, {2}, {3, 6}, {3, 4}, {3, 6, 8}, {3, 5, 7}, {3, 6, 7, 8}, {1, 3, 5, 7}}
	surviveOptions := [][]int{{2, 3}, {2, 3, 4}, {1, 2, 3, 4, 5}, {2, 3, 8}, {3, 4, 6, 7, 8}, {}, {0, 2, 4, 6, 8}, {4, 5, 6, 7, 8}}

	var sets []ruleSet
	for _, birth := range birthOptions {
		for _, survive := range surviveOptions {
			sets = append(sets, ruleSet{birth: birth, survive: survive})
		}
	}

	fmt.Printf("Sweeping %d rules (%d workers, %d steps, %dx%d)\n", len(sets), *workers, *steps, *width, *height)

	jobs := make(chan ruleSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rs := range jobs {
				results <- runScenario(cfg, rs)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, rs := range sets {
			jobs <- rs
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.rule, res.err)
			continue
		}
		all = append(all, res)
	}

	// Surviving rules with the most fluctuating population first.
	sort.Slice(all, func(i, j int) bool {
		if (all[i].extinctAt == 0) != (all[j].extinctAt == 0) {
			return all[i].extinctAt == 0
		}
		return all[i].stddev > all[j].stddev
	})
	elapsed := time.Since(start)

	fmt.Printf("Completed %d rules in %v\n", len(all), elapsed.Round(time.Millisecond))
	fmt.Printf("%-22s %8s %10s %10s %8s\n", "rule", "final", "mean", "stddev", "extinct")
	for i, res := range all {
		if i >= *top {
			break
		}
		extinct := "-"
		if res.extinctAt > 0 {
			extinct = fmt.Sprint(res.extinctAt)
		}
		fmt.Printf("%-22s %8d %10.1f %10.1f %8s\n", res.rule, res.final, res.mean, res.stddev, extinct)
	}
}

// minSteps leaves at least two samples in the second half of a run.
const minSteps = 3

// checkSteps rejects runs too short for the population spread to be defined.
func checkSteps(steps int) error {
	if steps < minSteps {
		return fmt.Errorf("-steps must be at least %d, got %d", minSteps, steps)
	}
	return nil
}

// runScenario seeds a board, runs the rule and summarizes the population over
// the second half of the run.
func runScenario(cfg sweepConfig, rs ruleSet) scenarioResult {
	if err := checkSteps(cfg.steps); err != nil {
		return scenarioResult{err: err}
	}
	hood, err := ca.Moore(2, 1)
	if err != nil {
		return scenarioResult{err: err}
	}
	rule, err := ca.NewTotalistic(hood, rs.birth, rs.survive)
	if err != nil {
		return scenarioResult{rule: fmt.Sprintf("B%v/S%v", rs.birth, rs.survive), err: err}
	}
	res := scenarioResult{rule: rule.Notation()}

	board, err := ca.NewBoard([]int{cfg.height, cfg.width}, cfg.boundary)
	if err != nil {
		res.err = err
		return res
	}
	board.SetWorkers(cfg.boardWorkers)
	rng := pcore.NewRNG(cfg.seed)
	board.Fill(func([]int) int32 { return rng.Binary(cfg.density) })

	res.population = make([]float64, 0, cfg.steps)
	for step := 1; step <= cfg.steps; step++ {
		if err := board.Step(rule); err != nil {
			res.err = err
			return res
		}
		pop := board.Population()
		res.population = append(res.population, float64(pop))
		if pop == 0 && res.extinctAt == 0 {
			res.extinctAt = step
		}
	}
	res.final = board.Population()
	res.mean, res.stddev = stat.MeanStdDev(res.population[len(res.population)/2:], nil)
	return res
}
