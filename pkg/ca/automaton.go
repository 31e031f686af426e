package ca

import "fmt"

// Automaton binds a Board to a default Rule.
type Automaton struct {
	board *Board
	rule  Rule
}

// NewAutomaton pairs board with its default rule.
func NewAutomaton(board *Board, rule Rule) (*Automaton, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: nil board", ErrUnconfigured)
	}
	if rule == nil {
		return nil, ErrUnconfigured
	}
	return &Automaton{board: board, rule: rule}, nil
}

// Board returns the underlying board.
func (a *Automaton) Board() *Board { return a.board }

// Rule returns the default rule.
func (a *Automaton) Rule() Rule { return a.rule }

// Step advances one generation with the default rule.
func (a *Automaton) Step() error { return a.board.Step(a.rule) }

// StepWith advances one generation with r, or the default rule when r is nil.
// r is not stored.
func (a *Automaton) StepWith(r Rule) error { return a.board.Step(a.pick(r)) }

// Advance runs steps generations with the default rule.
func (a *Automaton) Advance(steps int) error { return a.board.Advance(a.rule, steps) }

// AdvanceWith runs steps generations with r, or the default rule when r is nil.
func (a *Automaton) AdvanceWith(r Rule, steps int) error {
	return a.board.Advance(a.pick(r), steps)
}

func (a *Automaton) pick(r Rule) Rule {
	if r == nil {
		return a.rule
	}
	return r
}

func (a *Automaton) String() string {
	return fmt.Sprintf("%v\n%v\n%v", a.rule, a.board.boundary, a.board.grid)
}
