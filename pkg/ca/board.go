package ca

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Board owns a grid and the boundary used to read past its edges. A Board is
// not safe for concurrent use; one caller steps it at a time.
type Board struct {
	grid       *Grid
	boundary   Boundary
	workers    int
	generation int
}

// NewBoard returns a board of the given shape with every cell 0.
func NewBoard(shape []int, boundary Boundary) (*Board, error) {
	g, err := NewGrid(shape...)
	if err != nil {
		return nil, err
	}
	if err := boundary.Validate(len(shape)); err != nil {
		return nil, err
	}
	return &Board{grid: g, boundary: boundary}, nil
}

// NewBoardFrom returns a board holding a copy of g.
func NewBoardFrom(g *Grid, boundary Boundary) (*Board, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidShape)
	}
	if err := boundary.Validate(g.Dim()); err != nil {
		return nil, err
	}
	return &Board{grid: g.Clone(), boundary: boundary}, nil
}

// Shape returns a copy of the grid's axis sizes.
func (b *Board) Shape() []int { return b.grid.Shape() }

// Dim returns the number of axes.
func (b *Board) Dim() int { return b.grid.Dim() }

// Boundary returns the boundary policy.
func (b *Board) Boundary() Boundary { return b.boundary }

// Generation counts completed steps.
func (b *Board) Generation() int { return b.generation }

// SetWorkers sets how many goroutines share one step. Values below 2 keep
// the sweep on the calling goroutine.
func (b *Board) SetWorkers(n int) { b.workers = n }

// Workers returns the configured worker count.
func (b *Board) Workers() int { return b.workers }

// Get returns the state at address.
func (b *Board) Get(address []int) (int32, error) {
	i, err := b.grid.Index(address)
	if err != nil {
		return 0, err
	}
	return b.grid.cells[i], nil
}

// Set overwrites the state at address.
func (b *Board) Set(address []int, v int32) error {
	i, err := b.grid.Index(address)
	if err != nil {
		return err
	}
	b.grid.cells[i] = v
	return nil
}

// Cells exposes the current generation in row-major order. The slice is
// replaced, not reused, by the next Step.
func (b *Board) Cells() []int32 { return b.grid.cells }

// Snapshot returns a copy of the current grid.
func (b *Board) Snapshot() *Grid { return b.grid.Clone() }

// Population counts non-zero cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.grid.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Fill sets every cell to fn(address). fn must not keep address.
func (b *Board) Fill(fn func(address []int) int32) {
	addr := make([]int, b.grid.Dim())
	for i := range b.grid.cells {
		b.grid.cells[i] = fn(addr)
		b.grid.increment(addr)
	}
}

// Step computes one generation with rule. Every cell reads the frozen current
// grid and writes a fresh one, which replaces the current grid only when the
// whole sweep succeeded.
func (b *Board) Step(rule Rule) error {
	if rule == nil {
		return ErrUnconfigured
	}
	hood := rule.Neighborhood()
	if hood == nil {
		return fmt.Errorf("%w: no neighborhood", ErrUnconfigured)
	}
	if hood.Dim() != b.grid.Dim() {
		return fmt.Errorf("%w: neighborhood has %d axes, board has %d", ErrDimensionMismatch, hood.Dim(), b.grid.Dim())
	}

	next := b.grid.blank()
	n := b.grid.Len()
	workers := min(b.workers, n)
	if workers <= 1 {
		if err := b.sweep(rule, hood.offsets, next, 0, n); err != nil {
			return err
		}
	} else {
		var g errgroup.Group
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			g.Go(func() error { return b.sweep(rule, hood.offsets, next, lo, hi) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	b.grid = next
	b.generation++
	return nil
}

// sweep fills next[lo:hi] from the current grid.
func (b *Board) sweep(rule Rule, offsets [][]int, next *Grid, lo, hi int) error {
	cur := b.grid
	dim := cur.Dim()
	addr := cur.Address(lo, nil)
	abs := make([]int, dim)
	at := make([]int, dim)
	states := make([]int32, len(offsets))
	for i := lo; i < hi; i++ {
		for k, off := range offsets {
			for a := range abs {
				abs[a] = addr[a] + off[a]
			}
			v, isValue, err := b.boundary.resolve(abs, cur.shape, at)
			if err != nil {
				return err
			}
			if !isValue {
				v = cur.cells[cur.index(at)]
			}
			states[k] = v
		}
		v, err := rule.Apply(states)
		if err != nil {
			return fmt.Errorf("cell %v: %w", addr, err)
		}
		next.cells[i] = v
		cur.increment(addr)
	}
	return nil
}

// Advance runs steps generations with rule. It stops at the first failing
// step; generations completed before it are kept.
func (b *Board) Advance(rule Rule, steps int) error {
	if steps < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	for i := 0; i < steps; i++ {
		if err := b.Step(rule); err != nil {
			return err
		}
	}
	return nil
}

// String dumps the grid.
func (b *Board) String() string { return b.grid.String() }
