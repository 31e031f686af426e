package core

import (
	"errors"
	"slices"
	"testing"

	"nd-ca/pkg/ca"
	pcore "nd-ca/pkg/core"
)

func TestBoardSimThreeDimensionalView(t *testing.T) {
	hood, _ := ca.Moore(3, 1)
	rule, err := ca.NewTotalistic(hood, []int{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := NewBoardSim(BoardSpec{
		Name:     "test3d",
		Shape:    []int{3, 4, 5},
		Boundary: ca.ConstantBoundary(0),
		Rule:     rule,
		Seed: func(_ *pcore.RNG, addr []int) int32 {
			if slices.Equal(addr, []int{0, 2, 2}) {
				return 1
			}
			return 0
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(1)
	if sim.Size() != (Size{W: 5, H: 4}) {
		t.Fatalf("size %+v", sim.Size())
	}
	for _, c := range sim.Cells() {
		if c != 0 {
			t.Fatal("middle slice should start empty")
		}
	}
	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	// the seed in slice 0 gives birth to its 3x3 footprint in slice 1
	live := 0
	for _, c := range sim.Cells() {
		live += int(c)
	}
	if live != 9 || sim.Generation() != 1 {
		t.Fatalf("live=%d generation=%d, want 9 and 1", live, sim.Generation())
	}

	snap := sim.Parameters()
	state := snap.Groups[len(snap.Groups)-1]
	if state.Params[0].Value != "3x4x5" || state.Params[1].Value != "1" {
		t.Fatalf("state group %+v", state)
	}

	sim.Reset(1)
	if sim.Generation() != 0 {
		t.Fatal("Reset should restart the generation count")
	}
}

func TestBoardSimRequiresRule(t *testing.T) {
	if _, err := NewBoardSim(BoardSpec{Name: "x", Shape: []int{4}}); !errors.Is(err, ca.ErrUnconfigured) {
		t.Fatalf("expected ErrUnconfigured, got %v", err)
	}
}

func TestBuildUnknownSim(t *testing.T) {
	if _, err := Build("no-such-sim", nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}
