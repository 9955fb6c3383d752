package engine

import (
	"strings"
	"testing"
)

func TestRecommendExcessOverTarget(t *testing.T) {
	// Operating 80000 against a 60000 target recommends a 20000 sweep.
	l := NewLedger(map[Account]float64{Operating: 80000})
	p := Policy{OperatingTarget: 60000}

	r := Recommend(l, p)
	if r.SweepAmount != 20000 {
		t.Fatalf("SweepAmount = %v, want 20000", r.SweepAmount)
	}
	if !r.HasSweep() {
		t.Fatal("HasSweep = false, want true")
	}
	if !strings.Contains(r.Rationale, "exceeds") {
		t.Fatalf("Rationale = %q, want the exceeds-target template", r.Rationale)
	}
}

func TestRecommendBelowTarget(t *testing.T) {
	// Operating 50000 against a 60000 target recommends nothing.
	l := NewLedger(map[Account]float64{Operating: 50000})
	p := Policy{OperatingTarget: 60000}

	r := Recommend(l, p)
	if r.SweepAmount != 0 {
		t.Fatalf("SweepAmount = %v, want 0", r.SweepAmount)
	}
	if !strings.Contains(r.Rationale, "No sweep") {
		t.Fatalf("Rationale = %q, want the no-sweep template", r.Rationale)
	}
}

func TestRecommendExactlyAtTarget(t *testing.T) {
	l := NewLedger(map[Account]float64{Operating: 60000})
	p := Policy{OperatingTarget: 60000}

	r := Recommend(l, p)
	if r.SweepAmount != 0 {
		t.Fatalf("SweepAmount = %v, want 0 when Operating == target", r.SweepAmount)
	}
	if r.HasSweep() {
		t.Fatal("HasSweep = true at exact target")
	}
}

func TestRecommendNoMinimumThreshold(t *testing.T) {
	l := NewLedger(map[Account]float64{Operating: 60001})
	p := Policy{OperatingTarget: 60000}

	if r := Recommend(l, p); r.SweepAmount != 1 {
		t.Fatalf("SweepAmount = %v, want 1 (no minimum threshold)", r.SweepAmount)
	}
}

func TestRecommendNeverNegative(t *testing.T) {
	balances := []float64{0, 100, 59999.99, 60000, 1e9}
	targets := []float64{0, 60000, 1e12}

	for _, b := range balances {
		for _, target := range targets {
			l := NewLedger(map[Account]float64{Operating: b})
			r := Recommend(l, Policy{OperatingTarget: target})
			if r.SweepAmount < 0 {
				t.Fatalf("SweepAmount = %v for balance %v target %v, want >= 0",
					r.SweepAmount, b, target)
			}
		}
	}
}
