package life3d

import (
	"strconv"

	"nd-ca/internal/core"
	"nd-ca/pkg/ca"
	pcore "nd-ca/pkg/core"
)

// Config holds parameters for a Life-like automaton on a 3D board.
type Config struct {
	Width    int
	Height   int
	Depth    int
	Rule     string
	Radius   int
	Boundary string
	Density  float64
	Workers  int
}

// DefaultConfig returns Bays' 3D Life 4555 (B5/S4,5) on a 3D torus.
func DefaultConfig() Config {
	return Config{
		Width:    64,
		Height:   64,
		Depth:    16,
		Rule:     "B5/S45",
		Radius:   1,
		Boundary: "wrap",
		Density:  0.15,
		Workers:  4,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	for key, dst := range map[string]*int{"w": &c.Width, "h": &c.Height, "d": &c.Depth, "workers": &c.Workers} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = parsed
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
	return c
}

// New builds the simulation described by c. The rendered plane is the
// middle layer along the depth axis.
func New(c Config) (*core.BoardSim, error) {
	hood, err := ca.Moore(3, c.Radius)
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
		Name:     "life3d",
		Shape:    []int{c.Depth, c.Height, c.Width},
		Boundary: boundary,
		Rule:     rule,
		Workers:  c.Workers,
		Seed: func(rng *pcore.RNG, _ []int) int32 {
			return rng.Binary(density)
		},
		Params: []core.ParameterGroup{{
			Name: "3D Life",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.IntParam("d", "Depth", c.Depth),
				core.IntParam("radius", "Moore radius", c.Radius),
				core.StringParam("rule", "Rule", rule.Notation()),
				core.StringParam("boundary", "Boundary", boundary.String()),
				core.FloatParam("density", "Seed density", c.Density),
				core.IntParam("workers", "Workers", c.Workers),
			},
		}},
	})
}

func init() {
	core.Register("life3d", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
