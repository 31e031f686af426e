package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"nd-ca/internal/app"
	"nd-ca/internal/core"
	"nd-ca/internal/render"
	_ "nd-ca/internal/sims/briansbrain"
	_ "nd-ca/internal/sims/elementary"
	_ "nd-ca/internal/sims/life3d"
	_ "nd-ca/pkg/sims/life"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 0
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to run")
	every := flag.Int("every", 0, "print the plane every N generations (0 prints only the final plane)")
	cols := flag.Int("cols", 80, "maximum columns to print")
	rows := flag.Int("rows", 40, "maximum rows to print")
	animate := flag.Bool("animate", false, "clear the terminal before each printed frame")
	dump := flag.Bool("dump", false, "print the full board and rule instead of the block view")
	list := flag.Bool("list", false, "list registered sims and exit")
	flag.Parse()

	if *list {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}
	if *steps < 1 {
		log.Fatalf("steps must be at least 1, got %d", *steps)
	}

	sim, err := core.Build(cfg.Sim, cfg.Set)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	var pacer *core.FixedStep
	if cfg.TPS > 0 {
		pacer = core.NewFixedStep(cfg.TPS)
	}

	population := make([]float64, 0, *steps)
	var calc time.Duration
	for gen := 1; gen <= *steps; gen++ {
		if pacer != nil {
			pacer.Wait()
		}
		start := time.Now()
		if err := sim.Step(); err != nil {
			log.Fatal(err)
		}
		calc += time.Since(start)
		population = append(population, float64(livePopulation(sim)))

		if *every > 0 && gen%*every == 0 && gen != *steps {
			show(sim, *cols, *rows, *animate)
		}
	}

	if *dump {
		if bs, ok := sim.(*core.BoardSim); ok {
			fmt.Println(bs.Automaton())
		}
	} else {
		show(sim, *cols, *rows, *animate)
	}

	mean, std := stat.MeanStdDev(population, nil)
	fmt.Printf("%s: %d generations in %v (%.3fms/gen)\n", sim.Name(), sim.Generation(), calc, float64(calc.Microseconds())/1000/float64(*steps))
	fmt.Printf("population: final %.0f, mean %.1f, stddev %.1f, min %.0f, max %.0f\n",
		population[len(population)-1], mean, std, floats.Min(population), floats.Max(population))
}

func show(sim core.Sim, cols, rows int, animate bool) {
	if animate {
		fmt.Print(render.ClearScreen)
	}
	if err := render.WriteBlocks(os.Stdout, sim.Cells(), sim.Size().W, cols, rows, nil); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("generation %d\n", sim.Generation())
}

// livePopulation counts every non-zero cell of the whole board when the sim
// exposes one, and of the rendered plane otherwise.
func livePopulation(sim core.Sim) int {
	if bs, ok := sim.(*core.BoardSim); ok {
		return bs.Automaton().Board().Population()
	}
	n := 0
	for _, c := range sim.Cells() {
		if c != 0 {
			n++
		}
	}
	return n
}
