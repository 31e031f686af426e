package core

import (
	"fmt"

	"nd-ca/pkg/ca"
)

// Plane stores a 2D byte image of a board in row-major order.
type Plane struct {
	W, H int
	data []uint8
}

// NewPlane allocates a plane with the given dimensions.
func NewPlane(w, h int) *Plane {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Plane{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (p *Plane) Cells() []uint8 { return p.data }

// Index returns the linear slice index for coordinates (x, y).
func (p *Plane) Index(x, y int) int { return y*p.W + x }

// Clear fills the plane with zeros.
func (p *Plane) Clear() {
	for i := range p.data {
		p.data[i] = 0
	}
}

// Project copies the 2D slice of b selected by lead, the coordinates of every
// axis except the last two. The last two axes map to y and x.
func (p *Plane) Project(b *ca.Board, lead []int) error {
	shape := b.Shape()
	d := len(shape)
	if d < 2 {
		return fmt.Errorf("project needs at least 2 axes, board has %d", d)
	}
	if shape[d-2] != p.H || shape[d-1] != p.W {
		return fmt.Errorf("board slice %dx%d does not fit plane %dx%d", shape[d-1], shape[d-2], p.W, p.H)
	}
	if len(lead) != d-2 {
		return fmt.Errorf("project needs %d leading coordinates, got %d", d-2, len(lead))
	}
	base := 0
	for a, x := range lead {
		if x < 0 || x >= shape[a] {
			return fmt.Errorf("leading coordinate %d on axis %d outside [0, %d)", x, a, shape[a])
		}
		base = base*shape[a] + x
	}
	base *= p.W * p.H
	copyClamped(p.data, b.Cells()[base:base+len(p.data)])
	return nil
}

// Scroll moves every row down by one and writes the 1D board into the top
// row, so the plane shows the board's recent history.
func (p *Plane) Scroll(b *ca.Board) error {
	cells := b.Cells()
	if b.Dim() != 1 || len(cells) != p.W {
		return fmt.Errorf("scroll needs a 1D board of width %d, got shape %v", p.W, b.Shape())
	}
	copy(p.data[p.W:], p.data[:p.W*(p.H-1)])
	copyClamped(p.data[:p.W], cells)
	return nil
}

func copyClamped(dst []uint8, src []int32) {
	for i, v := range src {
		switch {
		case v < 0:
			dst[i] = 0
		case v > 255:
			dst[i] = 255
		default:
			dst[i] = uint8(v)
		}
	}
}
