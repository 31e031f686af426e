package briansbrain

import (
	"strconv"

	"nd-ca/internal/core"
	"nd-ca/pkg/ca"
	pcore "nd-ca/pkg/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width    int
	Height   int
	Boundary string
	// FireOneIn seeds roughly one firing cell per FireOneIn cells.
	FireOneIn int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Boundary: "wrap", FireOneIn: 8}
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
	if v, ok := cfg["boundary"]; ok && v != "" {
		c.Boundary = v
	}
	if v, ok := cfg["fire_one_in"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FireOneIn = parsed
		}
	}
	return c
}

// Rule returns Brian's Brain over the given Moore neighborhood: firing cells
// start dying, dying cells die, and dead cells fire when exactly two
// neighbors are firing.
func Rule(hood *ca.Neighborhood) *ca.FuncRule {
	return ca.NewRule(hood, func(s []int32) int32 {
		switch s[0] {
		case stateOn:
			return stateDying
		case stateDying:
			return stateDead
		}
		firing := 0
		for _, n := range s[1:] {
			if n == stateOn {
				firing++
			}
		}
		if firing == 2 {
			return stateOn
		}
		return stateDead
	})
}

// New builds the simulation described by c.
func New(c Config) (*core.BoardSim, error) {
	hood, err := ca.Moore(2, 1)
	if err != nil {
		return nil, err
	}
	boundary, err := ca.ParseBoundary(c.Boundary)
	if err != nil {
		return nil, err
	}
	oneIn := int32(c.FireOneIn)
	return core.NewBoardSim(core.BoardSpec{
		Name:     "briansbrain",
		Shape:    []int{c.Height, c.Width},
		Boundary: boundary,
		Rule:     Rule(hood),
		Seed: func(rng *pcore.RNG, _ []int) int32 {
			if rng.State(oneIn) == 0 {
				return stateOn
			}
			return stateDead
		},
		Params: []core.ParameterGroup{{
			Name: "Brian's Brain",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.StringParam("boundary", "Boundary", boundary.String()),
				core.IntParam("fire_one_in", "Fire one in", c.FireOneIn),
			},
		}},
	})
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
