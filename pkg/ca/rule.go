package ca

import (
	"fmt"
	"reflect"
	"runtime"
)

// Rule computes the next state of a cell from the states of its neighbors,
// given in the order of Neighborhood. Apply may be called concurrently by a
// parallel Board and must not retain the states slice.
type Rule interface {
	Neighborhood() *Neighborhood
	Apply(states []int32) (int32, error)
}

// TransitionFunc maps neighbor states to the next cell state.
type TransitionFunc func(states []int32) int32

// FuncRule is a Rule backed by an arbitrary transition function.
type FuncRule struct {
	hood *Neighborhood
	fn   TransitionFunc
}

// NewRule pairs a neighborhood with a transition function. A nil fn yields a
// rule whose Apply reports ErrUnconfigured.
func NewRule(hood *Neighborhood, fn TransitionFunc) *FuncRule {
	return &FuncRule{hood: hood, fn: fn}
}

// Neighborhood returns the offsets the rule expects, or nil for a nil rule.
func (r *FuncRule) Neighborhood() *Neighborhood {
	if r == nil {
		return nil
	}
	return r.hood
}

// Apply validates the state count and runs the transition function.
func (r *FuncRule) Apply(states []int32) (int32, error) {
	if r == nil || r.hood == nil {
		return 0, fmt.Errorf("%w: no neighborhood", ErrUnconfigured)
	}
	if len(states) != r.hood.Size() {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(states), r.hood.Size())
	}
	if r.fn == nil {
		return 0, ErrUnconfigured
	}
	return r.fn(states), nil
}

func (r *FuncRule) String() string {
	name := "<nil>"
	if r.fn != nil {
		if f := runtime.FuncForPC(reflect.ValueOf(r.fn).Pointer()); f != nil {
			name = f.Name()
		}
	}
	return fmt.Sprintf("rule using function %s and neighborhood %v", name, r.hood)
}

// NewElementary returns Wolfram's elementary rule code over the 1-D
// neighborhood {-1, 0, 1}. Any non-zero state counts as 1.
func NewElementary(code uint8) *FuncRule {
	hood := &Neighborhood{dim: 1, offsets: [][]int{{-1}, {0}, {1}}}
	return NewRule(hood, func(s []int32) int32 {
		idx := bit(s[0])<<2 | bit(s[1])<<1 | bit(s[2])
		return int32((code >> idx) & 1)
	})
}

func bit(v int32) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
