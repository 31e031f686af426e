package elementary

import (
	"strconv"

	"nd-ca/internal/core"
	"nd-ca/pkg/ca"
	pcore "nd-ca/pkg/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width    int
	Height   int
	Rule     uint8
	Boundary string
	Random   bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110, Boundary: "reflect"}
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["boundary"]; ok && v != "" {
		c.Boundary = v
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

// New builds a one-dimensional Wolfram code automaton whose history scrolls
// down the rendered plane. The first row starts with a single live center
// cell unless Random is set.
func New(c Config) (*core.BoardSim, error) {
	boundary, err := ca.ParseBoundary(c.Boundary)
	if err != nil {
		return nil, err
	}
	center := c.Width / 2
	seed := func(_ *pcore.RNG, addr []int) int32 {
		if addr[0] == center {
			return 1
		}
		return 0
	}
	if c.Random {
		seed = func(rng *pcore.RNG, _ []int) int32 {
			if rng.Bool() {
				return 1
			}
			return 0
		}
	}
	return core.NewBoardSim(core.BoardSpec{
		Name:     "elementary",
		Shape:    []int{c.Width},
		Boundary: boundary,
		Rule:     ca.NewElementary(c.Rule),
		Seed:     seed,
		History:  c.Height,
		Params: []core.ParameterGroup{{
			Name: "Elementary",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "History", c.Height),
				core.IntParam("rule", "Wolfram code", int(c.Rule)),
				core.StringParam("boundary", "Boundary", boundary.String()),
			},
		}},
	})
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
