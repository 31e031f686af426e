package main

import (
	"errors"
	"math"
	"testing"

	"nd-ca/pkg/ca"
)

func TestRunScenarioEmptyRuleDiesImmediately(t *testing.T) {
	cfg := sweepConfig{width: 8, height: 8, boundary: ca.WrapBoundary(), seed: 1, density: 0.5, steps: 4, boardWorkers: 2}
	res := runScenario(cfg, ruleSet{})
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.rule != "B/S" || res.final != 0 || res.extinctAt != 1 || res.mean != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunScenarioReportsRangeErrors(t *testing.T) {
	cfg := sweepConfig{width: 4, height: 4, boundary: ca.WrapBoundary(), steps: 3}
	if res := runScenario(cfg, ruleSet{birth: []int{9}}); !errors.Is(res.err, ca.ErrRange) {
		t.Fatalf("expected ErrRange for birth count 9, got %v", res.err)
	}
}

func TestRunScenarioNeedsThreeSteps(t *testing.T) {
	for _, steps := range []int{-1, 0, 1, 2} {
		if err := checkSteps(steps); err == nil {
			t.Fatalf("checkSteps(%d) accepted a run without a defined spread", steps)
		}
		cfg := sweepConfig{width: 4, height: 4, boundary: ca.WrapBoundary(), density: 0.5, steps: steps}
		if res := runScenario(cfg, ruleSet{birth: []int{3}, survive: []int{2, 3}}); res.err == nil {
			t.Fatalf("runScenario with %d steps returned %+v", steps, res)
		}
	}

	cfg := sweepConfig{width: 8, height: 8, boundary: ca.WrapBoundary(), seed: 3, density: 0.5, steps: 3}
	res := runScenario(cfg, ruleSet{birth: []int{3}, survive: []int{2, 3}})
	if res.err != nil {
		t.Fatal(res.err)
	}
	if math.IsNaN(res.mean) || math.IsNaN(res.stddev) {
		t.Fatalf("three steps gave mean %v stddev %v", res.mean, res.stddev)
	}
}
