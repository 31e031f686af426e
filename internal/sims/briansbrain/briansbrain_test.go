package briansbrain

import (
	"testing"

	"nd-ca/pkg/ca"
)

func TestRuleCycle(t *testing.T) {
	hood, _ := ca.Moore(2, 1)
	r := Rule(hood)
	cases := []struct {
		states []int32
		want   int32
	}{
		{[]int32{stateOn, 0, 0, 0, 0, 0, 0, 0, 0}, stateDying},
		{[]int32{stateDying, 1, 1, 0, 0, 0, 0, 0, 0}, stateDead},
		{[]int32{stateDead, 1, 1, 0, 0, 0, 0, 0, 0}, stateOn},
		{[]int32{stateDead, 1, 1, 1, 0, 0, 0, 0, 0}, stateDead},
		{[]int32{stateDead, 1, 2, 2, 0, 0, 0, 0, 0}, stateDead},
	}
	for _, c := range cases {
		got, err := r.Apply(c.states)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("Apply(%v) = %d, want %d", c.states, got, c.want)
		}
	}
}

func TestPairFiresNeighbors(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height = 6, 6
	sim, err := New(c)
	if err != nil {
		t.Fatal(err)
	}
	b := sim.Automaton().Board()
	b.Set([]int{2, 2}, stateOn)
	b.Set([]int{2, 3}, stateOn)
	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	counts := map[uint8]int{}
	for _, v := range sim.Cells() {
		counts[v]++
	}
	// the pair dies off and the four cells above and below it fire
	if counts[stateDying] != 2 || counts[stateOn] != 4 {
		t.Fatalf("state counts %v", counts)
	}
}
