package core

import (
	"fmt"
	"slices"
	"strings"

	"nd-ca/pkg/ca"
	pcore "nd-ca/pkg/core"
)

// SeedFunc picks the initial state of the cell at address.
type SeedFunc func(rng *pcore.RNG, address []int) int32

// BoardSpec describes a simulation backed by a ca.Automaton.
type BoardSpec struct {
	Name     string
	Shape    []int
	Boundary ca.Boundary
	Rule     ca.Rule
	Workers  int
	Seed     SeedFunc

	// History is the number of rows kept for 1D boards. Ignored otherwise.
	History int

	// Params lists the configuration shown next to the live counters.
	Params []ParameterGroup
}

// BoardSim adapts a ca.Automaton to the Sim interface. Boards with more than
// two axes are shown through the middle slice of every leading axis.
type BoardSim struct {
	spec  BoardSpec
	auto  *ca.Automaton
	plane *Plane
	lead  []int
}

// NewBoardSim validates spec and builds an empty board.
func NewBoardSim(spec BoardSpec) (*BoardSim, error) {
	if spec.Rule == nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, ca.ErrUnconfigured)
	}
	if spec.Seed == nil {
		spec.Seed = func(*pcore.RNG, []int) int32 { return 0 }
	}
	s := &BoardSim{spec: spec}
	if err := s.rebuild(); err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}
	d := len(spec.Shape)
	if d == 1 {
		s.plane = NewPlane(spec.Shape[0], max(spec.History, 1))
	} else {
		s.plane = NewPlane(spec.Shape[d-1], spec.Shape[d-2])
		s.lead = make([]int, d-2)
		for a := range s.lead {
			s.lead[a] = spec.Shape[a] / 2
		}
	}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BoardSim) rebuild() error {
	board, err := ca.NewBoard(s.spec.Shape, s.spec.Boundary)
	if err != nil {
		return err
	}
	board.SetWorkers(s.spec.Workers)
	auto, err := ca.NewAutomaton(board, s.spec.Rule)
	if err != nil {
		return err
	}
	s.auto = auto
	return nil
}

func (s *BoardSim) refresh() error {
	if s.auto.Board().Dim() == 1 {
		return s.plane.Scroll(s.auto.Board())
	}
	return s.plane.Project(s.auto.Board(), s.lead)
}

// Name returns the simulation identifier.
func (s *BoardSim) Name() string { return s.spec.Name }

// Size returns the rendered plane dimensions.
func (s *BoardSim) Size() Size { return Size{W: s.plane.W, H: s.plane.H} }

// Cells exposes the rendered plane.
func (s *BoardSim) Cells() []uint8 { return s.plane.Cells() }

// Generation counts steps since the last reset.
func (s *BoardSim) Generation() int { return s.auto.Board().Generation() }

// Automaton exposes the underlying automaton.
func (s *BoardSim) Automaton() *ca.Automaton { return s.auto }

// Reset rebuilds the board and seeds every cell deterministically.
func (s *BoardSim) Reset(seed int64) {
	if err := s.rebuild(); err != nil {
		// NewBoardSim already built a board from the same BoardSpec
		panic(err)
	}
	rng := pcore.NewRNG(seed)
	s.auto.Board().Fill(func(addr []int) int32 { return s.spec.Seed(rng, addr) })
	s.plane.Clear()
	if err := s.refresh(); err != nil {
		panic(err)
	}
}

// Step advances one generation and updates the rendered plane.
func (s *BoardSim) Step() error {
	if err := s.auto.Step(); err != nil {
		return fmt.Errorf("%s generation %d: %w", s.spec.Name, s.Generation(), err)
	}
	return s.refresh()
}

// Parameters reports the configuration plus live counters.
func (s *BoardSim) Parameters() ParameterSnapshot {
	b := s.auto.Board()
	groups := slices.Clone(s.spec.Params)
	groups = append(groups, ParameterGroup{
		Name: "State",
		Params: []Parameter{
			StringParam("shape", "Shape", joinShape(b.Shape())),
			IntParam("generation", "Generation", b.Generation()),
			IntParam("population", "Population", b.Population()),
		},
	})
	return ParameterSnapshot{Groups: groups}
}

func joinShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, "x")
}
