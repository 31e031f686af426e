package ca

import (
	"fmt"
	"math"
	"slices"
)

// Grid stores a dense N-dimensional array of int32 states in row-major order:
// the last axis varies fastest.
type Grid struct {
	shape   []int
	strides []int
	cells   []int32
}

// NewGrid allocates a zeroed grid. Every axis must have a positive size and
// the cell count must fit in an int.
func NewGrid(shape ...int) (*Grid, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	g := &Grid{shape: slices.Clone(shape), strides: make([]int, len(shape))}
	total := 1
	for a := len(shape) - 1; a >= 0; a-- {
		if total > math.MaxInt/shape[a] {
			return nil, fmt.Errorf("%w: %v has more cells than an int can index", ErrInvalidShape, shape)
		}
		g.strides[a] = total
		total *= shape[a]
	}
	g.cells = make([]int32, total)
	return g, nil
}

// Shape returns a copy of the axis sizes.
func (g *Grid) Shape() []int { return slices.Clone(g.shape) }

// Dim returns the number of axes.
func (g *Grid) Dim() int { return len(g.shape) }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []int32 { return g.cells }

// Index returns the linear index of an in-range address.
func (g *Grid) Index(address []int) (int, error) {
	if len(address) != len(g.shape) {
		return 0, fmt.Errorf("%w: address has %d axes, grid has %d", ErrDimensionMismatch, len(address), len(g.shape))
	}
	for a, x := range address {
		if x < 0 || x >= g.shape[a] {
			return 0, fmt.Errorf("%w: %v not within %v", ErrOutOfBounds, address, g.shape)
		}
	}
	return g.index(address), nil
}

func (g *Grid) index(address []int) int {
	i := 0
	for a, x := range address {
		i += x * g.strides[a]
	}
	return i
}

// Address writes the address of linear index i into dst and returns it. dst
// is allocated when it is too short.
func (g *Grid) Address(i int, dst []int) []int {
	if len(dst) < len(g.shape) {
		dst = make([]int, len(g.shape))
	}
	dst = dst[:len(g.shape)]
	for a := len(g.shape) - 1; a >= 0; a-- {
		dst[a] = i % g.shape[a]
		i /= g.shape[a]
	}
	return dst
}

// increment advances address to the next cell in row-major order.
func (g *Grid) increment(address []int) {
	for a := len(address) - 1; a >= 0; a-- {
		address[a]++
		if address[a] < g.shape[a] {
			return
		}
		address[a] = 0
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{shape: slices.Clone(g.shape), strides: slices.Clone(g.strides), cells: slices.Clone(g.cells)}
}

// blank returns a zeroed grid of the same shape.
func (g *Grid) blank() *Grid {
	return &Grid{shape: g.shape, strides: g.strides, cells: make([]int32, len(g.cells))}
}
