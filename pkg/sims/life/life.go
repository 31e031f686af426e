package life

import (
	"strconv"

	"nd-ca/internal/core"
	"nd-ca/pkg/ca"
	pcore "nd-ca/pkg/core"
)

// Config holds parameters for a Life-like automaton on a 2D board.
type Config struct {
	Width    int
	Height   int
	Rule     string
	Boundary string
	Density  float64
	Workers  int
}

// DefaultConfig returns Conway's Game of Life on a torus.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Rule: "B3/S23", Boundary: "wrap", Density: 0.5, Workers: 1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["boundary"]; ok && v != "" {
		c.Boundary = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// New builds the simulation described by c.
func New(c Config) (*core.BoardSim, error) {
	hood, err := ca.Moore(2, 1)
	if err != nil {
		return nil, err
	}
	rule, err := ca.ParseLifeLike(hood, c.Rule)
	if err != nil {
		return nil, err
	}
	boundary, err := ca.ParseBoundary(c.Boundary)
	if err != nil {
		return nil, err
	}
	density := c.Density
	return core.NewBoardSim(core.BoardSpec{
		Name:     "life",
		Shape:    []int{c.Height, c.Width},
		Boundary: boundary,
		Rule:     rule,
		Workers:  c.Workers,
		Seed: func(rng *pcore.RNG, _ []int) int32 {
			return rng.Binary(density)
		},
		Params: []core.ParameterGroup{{
			Name: "Life",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.StringParam("rule", "Rule", rule.Notation()),
				core.StringParam("boundary", "Boundary", boundary.String()),
				core.FloatParam("density", "Seed density", c.Density),
				core.IntParam("workers", "Workers", c.Workers),
			},
		}},
	})
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
