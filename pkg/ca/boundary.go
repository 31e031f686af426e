package ca

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundaryKind selects how out-of-range neighbor addresses are handled.
type BoundaryKind uint8

const (
	// Wrap re-enters the grid periodically, optionally with a shear offset.
	Wrap BoundaryKind = iota
	// Reflect clamps each axis to the nearest in-range coordinate.
	Reflect
	// Constant reports a fixed value for any out-of-range address.
	Constant
)

func (k BoundaryKind) String() string {
	switch k {
	case Wrap:
		return "wrap"
	case Reflect:
		return "reflect"
	case Constant:
		return "constant"
	}
	return "BoundaryKind(" + strconv.Itoa(int(k)) + ")"
}

// Boundary resolves neighbor addresses that fall outside the grid. The zero
// value is a plain periodic wrap.
type Boundary struct {
	kind   BoundaryKind
	offset []int
	value  int32
}

// WrapBoundary returns a periodic boundary. A non-zero offset component shears
// the torus: crossing the pivot axis (the first axis with a zero offset) k
// times shifts every other axis by k*offset. No offset means a plain torus.
func WrapBoundary(offset ...int) Boundary {
	return Boundary{kind: Wrap, offset: append([]int(nil), offset...)}
}

// ReflectBoundary returns a boundary that clamps out-of-range coordinates.
func ReflectBoundary() Boundary { return Boundary{kind: Reflect} }

// ConstantBoundary returns a boundary that reads every out-of-range cell as v.
func ConstantBoundary(v int32) Boundary { return Boundary{kind: Constant, value: v} }

// Kind reports the boundary variant.
func (b Boundary) Kind() BoundaryKind { return b.kind }

// Offset returns a copy of the wrap offset.
func (b Boundary) Offset() []int { return append([]int(nil), b.offset...) }

// Value returns the constant reported by a Constant boundary.
func (b Boundary) Value() int32 { return b.value }

// Resolved is the outcome of a boundary lookup: either a constant state or an
// in-range address to read.
type Resolved struct {
	IsValue bool
	Value   int32
	Address []int
}

// Resolve maps address onto the grid described by shape.
func (b Boundary) Resolve(address, shape []int) (Resolved, error) {
	if len(address) != len(shape) {
		return Resolved{}, fmt.Errorf("%w: address has %d axes, shape has %d", ErrDimensionMismatch, len(address), len(shape))
	}
	if err := checkShape(shape); err != nil {
		return Resolved{}, err
	}
	out := make([]int, len(address))
	v, isValue, err := b.resolve(address, shape, out)
	if err != nil {
		return Resolved{}, err
	}
	if isValue {
		return Resolved{IsValue: true, Value: v}, nil
	}
	return Resolved{Address: out}, nil
}

// Validate reports whether the boundary can resolve addresses of dim axes.
func (b Boundary) Validate(dim int) error {
	if b.kind != Wrap {
		return nil
	}
	if _, err := b.pivot(dim); err != nil {
		return err
	}
	return nil
}

// resolve writes the resolved address into out unless a constant is returned.
// address and shape must already be validated.
func (b Boundary) resolve(address, shape, out []int) (int32, bool, error) {
	inside := true
	for i, a := range address {
		if a < 0 || a >= shape[i] {
			inside = false
			break
		}
	}
	if inside {
		copy(out, address)
		return 0, false, nil
	}
	switch b.kind {
	case Constant:
		return b.value, true, nil
	case Reflect:
		for i, a := range address {
			switch {
			case a < 0:
				out[i] = 0
			case a >= shape[i]:
				out[i] = shape[i] - 1
			default:
				out[i] = a
			}
		}
		return 0, false, nil
	default:
		zero, err := b.pivot(len(address))
		if err != nil {
			return 0, false, err
		}
		k := floorDiv(address[zero], shape[zero])
		for i, a := range address {
			out[i] = floorMod(a+b.offsetAt(i)*k, shape[i])
		}
		return 0, false, nil
	}
}

// pivot returns the first axis below dim whose offset is zero. Offsets shorter
// than dim are zero-padded.
func (b Boundary) pivot(dim int) (int, error) {
	for i := 0; i < dim; i++ {
		if b.offsetAt(i) == 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no zero among the first %d components of %v", ErrInvalidOffset, dim, b.offset)
}

func (b Boundary) offsetAt(i int) int {
	if i < len(b.offset) {
		return b.offset[i]
	}
	return 0
}

// String describes the boundary for diagnostics.
func (b Boundary) String() string {
	switch b.kind {
	case Reflect:
		return "reflecting boundary"
	case Constant:
		return fmt.Sprintf("constant boundary, value = %d", b.value)
	}
	if len(b.offset) == 0 {
		return "wrapping boundary"
	}
	return fmt.Sprintf("wrapping boundary, offsets are %v", b.offset)
}

// ParseBoundary reads "wrap", "wrap:0,1", "reflect" or "constant:3".
func ParseBoundary(s string) (Boundary, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(name) {
	case "wrap", "torus", "":
		if !hasArg {
			return WrapBoundary(), nil
		}
		offset, err := parseInts(arg)
		if err != nil {
			return Boundary{}, fmt.Errorf("%w: boundary %q: %v", ErrSyntax, s, err)
		}
		return WrapBoundary(offset...), nil
	case "reflect", "clamp":
		if hasArg {
			return Boundary{}, fmt.Errorf("%w: boundary %q takes no argument", ErrSyntax, s)
		}
		return ReflectBoundary(), nil
	case "constant", "const":
		if !hasArg {
			return ConstantBoundary(0), nil
		}
		v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
		if err != nil {
			return Boundary{}, fmt.Errorf("%w: boundary %q: %v", ErrSyntax, s, err)
		}
		return ConstantBoundary(int32(v)), nil
	}
	return Boundary{}, fmt.Errorf("%w: unknown boundary %q", ErrSyntax, s)
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func checkShape(shape []int) error {
	if len(shape) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidShape)
	}
	for i, s := range shape {
		if s <= 0 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidShape, i, s)
		}
	}
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
