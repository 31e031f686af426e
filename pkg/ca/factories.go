package ca

import "fmt"

// Moore returns every offset whose components all lie in [-radius, radius].
// The zero offset is always first.
func Moore(dim, radius int) (*Neighborhood, error) {
	if err := checkFactoryArgs(dim, radius); err != nil {
		return nil, err
	}
	return &Neighborhood{dim: dim, offsets: expand(dim, radius, false)}, nil
}

// Neumann returns every offset whose Manhattan norm is at most radius. The
// zero offset is always first.
func Neumann(dim, radius int) (*Neighborhood, error) {
	if err := checkFactoryArgs(dim, radius); err != nil {
		return nil, err
	}
	return &Neighborhood{dim: dim, offsets: expand(dim, radius, true)}, nil
}

func checkFactoryArgs(dim, radius int) error {
	if dim < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	if radius < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	return nil
}

// expand grows the offsets one axis at a time. Each partial vector is extended
// in place with 0 and the +d/-d variants are appended after it, so the
// all-zero vector stays at index 0. With manhattan set, the per-axis range
// shrinks by the distance the partial vector already covers.
func expand(dim, radius int, manhattan bool) [][]int {
	hood := [][]int{{}}
	for axis := 0; axis < dim; axis++ {
		n := len(hood)
		for i := 0; i < n; i++ {
			cur := hood[i]
			limit := radius
			if manhattan {
				limit -= l1(cur)
			}
			hood[i] = extend(cur, 0)
			for d := 1; d <= limit; d++ {
				hood = append(hood, extend(cur, d), extend(cur, -d))
			}
		}
	}
	return hood
}

func extend(v []int, x int) []int {
	out := make([]int, len(v)+1)
	copy(out, v)
	out[len(v)] = x
	return out
}

func l1(v []int) int {
	sum := 0
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		sum += x
	}
	return sum
}
