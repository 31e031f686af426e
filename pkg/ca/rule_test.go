package ca

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestFuncRuleValidation(t *testing.T) {
	hood, _ := Moore(1, 1)
	r := NewRule(hood, func(s []int32) int32 { return s[0] + 1 })
	if _, err := r.Apply([]int32{0, 1}); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	got, err := r.Apply([]int32{4, 0, 0})
	if err != nil || got != 5 {
		t.Fatalf("Apply = %d, %v; want 5", got, err)
	}

	empty := NewRule(hood, nil)
	if _, err := empty.Apply([]int32{0, 0, 0}); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("expected ErrUnconfigured, got %v", err)
	}
	if !strings.Contains(empty.String(), "<nil>") {
		t.Fatalf("unconfigured rule String: %q", empty.String())
	}
}

func TestTotalisticConstructionBounds(t *testing.T) {
	hood, _ := Moore(2, 1)
	if _, err := NewTotalistic(hood, []int{9}, nil); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange for birth 9, got %v", err)
	}
	if _, err := NewTotalistic(hood, nil, []int{-1}); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange for survive -1, got %v", err)
	}
	if _, err := NewTotalistic(hood, []int{8}, []int{0}); err != nil {
		t.Fatalf("bounds 0 and 8 are valid for 9 cells: %v", err)
	}
}

func TestTotalisticRejectsNonBinary(t *testing.T) {
	hood, _ := Moore(1, 1)
	r, err := NewTotalistic(hood, []int{1}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Apply([]int32{0, 2, 0}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if _, err := r.Apply([]int32{0, 1}); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestTotalisticEmptySetsAlwaysDie(t *testing.T) {
	hood, _ := Moore(2, 1)
	r, err := NewTotalistic(hood, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	states := make([]int32, hood.Size())
	for mask := 0; mask < 1<<hood.Size(); mask++ {
		for i := range states {
			states[i] = int32(mask >> i & 1)
		}
		got, err := r.Apply(states)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0 {
			t.Fatalf("empty rule produced %d for %v", got, states)
		}
	}
}

func TestTotalisticLife(t *testing.T) {
	hood, _ := Moore(2, 1)
	life, err := NewTotalistic(hood, []int{3}, []int{3, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		self, live int
		want       int32
	}{
		{0, 2, 0}, {0, 3, 1}, {0, 4, 0},
		{1, 1, 0}, {1, 2, 1}, {1, 3, 1}, {1, 4, 0},
	}
	for _, c := range cases {
		states := make([]int32, 9)
		states[0] = int32(c.self)
		for i := 1; i <= c.live; i++ {
			states[i] = 1
		}
		got, err := life.Apply(states)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("self=%d live=%d: got %d, want %d", c.self, c.live, got, c.want)
		}
	}
	if life.Notation() != "B3/S2,3" {
		t.Fatalf("Notation = %q", life.Notation())
	}
	if !strings.HasPrefix(life.String(), "totalistic rule B3/S2,3 with neighborhood [[0 0] ") {
		t.Fatalf("String = %q", life.String())
	}
}

func TestParseLifeLike(t *testing.T) {
	hood, _ := Moore(2, 1)
	for in, want := range map[string]string{
		"B3/S23":    "B3/S2,3",
		"s23/b36":   "B3,6/S2,3",
		"B3/S":      "B3/S",
		"B3/S2,3":   "B3/S2,3",
		" B36/S23 ": "B3,6/S2,3",
	} {
		r, err := ParseLifeLike(hood, in)
		if err != nil {
			t.Fatalf("ParseLifeLike(%q): %v", in, err)
		}
		if r.Notation() != want {
			t.Fatalf("ParseLifeLike(%q) = %q, want %q", in, r.Notation(), want)
		}
	}
	for _, in := range []string{"B3S23", "B3/X2", "B3/B2", "Bx/S2", "/S2"} {
		if _, err := ParseLifeLike(hood, in); !errors.Is(err, ErrSyntax) {
			t.Fatalf("ParseLifeLike(%q) expected ErrSyntax, got %v", in, err)
		}
	}

	r, err := ParseLifeLike(hood, "S32/B63")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(r.Birth(), []int{3, 6}) || !slices.Equal(r.Survive(), []int{2, 3}) {
		t.Fatalf("counts not sorted: birth %v survive %v", r.Birth(), r.Survive())
	}

	if _, err := ParseLifeLike(hood, "B9/S2"); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
}

func TestElementaryMatchesRule30Table(t *testing.T) {
	table := map[[3]int32]int32{
		{0, 0, 0}: 0, {0, 0, 1}: 1, {0, 1, 0}: 1, {0, 1, 1}: 1,
		{1, 0, 0}: 1, {1, 0, 1}: 0, {1, 1, 0}: 0, {1, 1, 1}: 0,
	}
	r := NewElementary(30)
	for in, want := range table {
		got, err := r.Apply(in[:])
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("rule 30 %v -> %d, want %d", in, got, want)
		}
	}
}

func TestNilRulesReportUnconfigured(t *testing.T) {
	var fr *FuncRule
	var tr *Totalistic
	for _, r := range []Rule{fr, tr, &Totalistic{}} {
		if r.Neighborhood() != nil {
			t.Fatalf("%T: expected nil neighborhood", r)
		}
		if _, err := r.Apply([]int32{0}); !errors.Is(err, ErrUnconfigured) {
			t.Fatalf("%T: expected ErrUnconfigured, got %v", r, err)
		}
	}

	b, err := NewBoard([]int{3, 3}, WrapBoundary())
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Step(fr); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("Step(nil *FuncRule): expected ErrUnconfigured, got %v", err)
	}
	if err := b.Step(tr); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("Step(nil *Totalistic): expected ErrUnconfigured, got %v", err)
	}
	if b.Generation() != 0 {
		t.Fatalf("generation advanced to %d", b.Generation())
	}
}
