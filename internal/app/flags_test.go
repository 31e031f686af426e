package app

import (
	"flag"
	"testing"
)

func TestBindParsesOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "life3d", "-set", "w=32", "-set", "rule = B36/S23", "-seed", "7"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "life3d" || cfg.Seed != 7 || cfg.Scale != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Set["w"] != "32" || cfg.Set["rule"] != "B36/S23" {
		t.Fatalf("overrides %v", cfg.Set)
	}
}

func TestOverridesRejectMissingKey(t *testing.T) {
	o := Overrides{}
	for _, bad := range []string{"w", "=3"} {
		if err := o.Set(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
