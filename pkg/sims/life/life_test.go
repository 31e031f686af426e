package life

import (
	"testing"
)

func TestBlinkerOscillation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	life, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	board := life.Automaton().Board()
	board.Set([]int{1, 2}, 1)
	board.Set([]int{2, 2}, 1)
	board.Set([]int{3, 2}, 1)

	if err := life.Step(); err != nil {
		t.Fatal(err)
	}
	cells := life.Cells()
	w := life.Size().W

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	if err := life.Step(); err != nil {
		t.Fatal(err)
	}
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "h": "40", "density": "2", "rule": "B36/S23", "workers": "x"})
	if c.Width != 128 || c.Height != 40 || c.Density != 0.5 || c.Rule != "B36/S23" || c.Workers != 1 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestNewRejectsBadRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = "B9/S23"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for out-of-range birth count")
	}
	cfg = DefaultConfig()
	cfg.Boundary = "mirror"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown boundary")
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 12
	cfg.Workers = 3
	a, _ := New(cfg)
	b, _ := New(cfg)
	a.Reset(42)
	b.Reset(42)
	for i := 0; i < 5; i++ {
		if err := a.Step(); err != nil {
			t.Fatal(err)
		}
		if err := b.Step(); err != nil {
			t.Fatal(err)
		}
	}
	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("cell %d differs between identically seeded runs", i)
		}
	}
}
