package ca

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Totalistic is a binary rule driven by the number of live neighbors. The
// first neighborhood entry is the cell itself and is excluded from the count.
type Totalistic struct {
	hood    *Neighborhood
	birth   []int
	survive []int
	born    []bool
	stays   []bool
}

// NewTotalistic builds a rule that turns a dead cell live when its live
// neighbor count is in birth and keeps a live cell live when the count is in
// survive. Counts must lie in [0, hood.Size()-1].
func NewTotalistic(hood *Neighborhood, birth, survive []int) (*Totalistic, error) {
	if hood == nil {
		return nil, fmt.Errorf("%w: no neighborhood", ErrUnconfigured)
	}
	if hood.Size() == 0 {
		return nil, ErrEmptyNeighborhood
	}
	maxCount := hood.Size() - 1
	t := &Totalistic{
		hood:  hood,
		born:  make([]bool, maxCount+1),
		stays: make([]bool, maxCount+1),
	}
	var err error
	if t.birth, err = countSet("birth", birth, maxCount, t.born); err != nil {
		return nil, err
	}
	if t.survive, err = countSet("survive", survive, maxCount, t.stays); err != nil {
		return nil, err
	}
	return t, nil
}

func countSet(name string, counts []int, maxCount int, mask []bool) ([]int, error) {
	for _, c := range counts {
		if c < 0 || c > maxCount {
			return nil, fmt.Errorf("%w: %s count %d not in [0, %d]", ErrRange, name, c, maxCount)
		}
		mask[c] = true
	}
	out := slices.Clone(counts)
	slices.Sort(out)
	return slices.Compact(out), nil
}

// Neighborhood returns the offsets the rule expects, or nil for a nil rule.
func (t *Totalistic) Neighborhood() *Neighborhood {
	if t == nil {
		return nil
	}
	return t.hood
}

// Birth returns the sorted birth counts.
func (t *Totalistic) Birth() []int { return slices.Clone(t.birth) }

// Survive returns the sorted survive counts.
func (t *Totalistic) Survive() []int { return slices.Clone(t.survive) }

// Apply returns 1 for a birth or survival and 0 otherwise.
func (t *Totalistic) Apply(states []int32) (int32, error) {
	if t == nil || t.hood == nil {
		return 0, fmt.Errorf("%w: no neighborhood", ErrUnconfigured)
	}
	if len(states) != t.hood.Size() {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(states), t.hood.Size())
	}
	total := 0
	for i, s := range states {
		if s != 0 && s != 1 {
			return 0, fmt.Errorf("%w: neighbor %d has state %d", ErrInvalidState, i, s)
		}
		total += int(s)
	}
	self := states[0]
	total -= int(self)
	if self == 0 && t.born[total] || self == 1 && t.stays[total] {
		return 1, nil
	}
	return 0, nil
}

// Notation returns the rule in B/S form, e.g. "B3/S2,3".
func (t *Totalistic) Notation() string {
	return "B" + joinInts(t.birth) + "/S" + joinInts(t.survive)
}

func (t *Totalistic) String() string {
	return fmt.Sprintf("totalistic rule %s with neighborhood %v", t.Notation(), t.hood)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// ParseLifeLike builds a Totalistic rule from B/S notation. Counts are either
// comma separated ("B3/S2,3") or single digits ("B3/S23"). The parts may come
// in either order and are case-insensitive.
func ParseLifeLike(hood *Neighborhood, notation string) (*Totalistic, error) {
	parts := strings.Split(strings.TrimSpace(notation), "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: rule %q is not of the form B../S..", ErrSyntax, notation)
	}
	var birth, survive []int
	var seenB, seenS bool
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: rule %q has an empty part", ErrSyntax, notation)
		}
		counts, err := parseCounts(p[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", ErrSyntax, notation, err)
		}
		switch p[0] {
		case 'B', 'b':
			birth, seenB = counts, true
		case 'S', 's':
			survive, seenS = counts, true
		default:
			return nil, fmt.Errorf("%w: rule %q: unexpected prefix %q", ErrSyntax, notation, p[0])
		}
	}
	if !seenB || !seenS {
		return nil, fmt.Errorf("%w: rule %q needs both B and S parts", ErrSyntax, notation)
	}
	return NewTotalistic(hood, birth, survive)
}

func parseCounts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	if strings.Contains(s, ",") {
		return parseInts(s)
	}
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid count %q", r)
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}
