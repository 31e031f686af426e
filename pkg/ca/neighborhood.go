package ca

import (
	"fmt"
	"strings"
)

// Neighborhood is an ordered list of relative offsets, all with the same
// dimension. Index 0 is treated as the cell itself by totalistic rules.
type Neighborhood struct {
	dim     int
	offsets [][]int
}

// NewNeighborhood builds a neighborhood from explicit offsets. The offsets are
// copied.
func NewNeighborhood(offsets ...[]int) (*Neighborhood, error) {
	if len(offsets) == 0 {
		return nil, ErrEmptyNeighborhood
	}
	dim := len(offsets[0])
	if dim < 1 {
		return nil, fmt.Errorf("%w: offset 0 is empty", ErrDimensionMismatch)
	}
	n := &Neighborhood{dim: dim, offsets: make([][]int, len(offsets))}
	for i, off := range offsets {
		if len(off) != dim {
			return nil, fmt.Errorf("%w: offset %d has length %d, want %d", ErrDimensionMismatch, i, len(off), dim)
		}
		n.offsets[i] = append([]int(nil), off...)
	}
	return n, nil
}

// Size returns the number of offsets.
func (n *Neighborhood) Size() int { return len(n.offsets) }

// Dim returns the length of every offset vector.
func (n *Neighborhood) Dim() int { return n.dim }

// Get returns a copy of offset i.
func (n *Neighborhood) Get(i int) ([]int, error) {
	if i < 0 || i >= len(n.offsets) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(n.offsets))
	}
	return append([]int(nil), n.offsets[i]...), nil
}

// Set replaces offset i. The replacement must have the neighborhood's dimension.
func (n *Neighborhood) Set(i int, offset []int) error {
	if i < 0 || i >= len(n.offsets) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(n.offsets))
	}
	if len(offset) != n.dim {
		return fmt.Errorf("%w: offset has length %d, want %d", ErrDimensionMismatch, len(offset), n.dim)
	}
	n.offsets[i] = append([]int(nil), offset...)
	return nil
}

// Offsets returns a copy of all offsets in stored order.
func (n *Neighborhood) Offsets() [][]int {
	out := make([][]int, len(n.offsets))
	for i, off := range n.offsets {
		out[i] = append([]int(nil), off...)
	}
	return out
}

// String lists the offsets, e.g. "[[0] [1] [-1]]".
func (n *Neighborhood) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, off := range n.offsets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, off)
	}
	sb.WriteByte(']')
	return sb.String()
}
