package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coords", V(-1, -1), V(2, 3), 5},
		{"horizontal", V(10, 0), V(60, 0), 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dist(tc.a, tc.b)
			if math.Abs(got-tc.expected) > eps {
				t.Errorf("Dist() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if rev := Dist(tc.b, tc.a); math.Abs(rev-got) > eps {
				t.Errorf("Dist() (reversed) = %v, expected %v", rev, got)
			}
		})
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec
		distance float64
		expected Vec
	}{
		{"right", V(0, 0), V(100, 0), 10, V(10, 0)},
		{"down", V(5, 5), V(5, 50), 3, V(5, 8)},
		{"left", V(50, 0), V(0, 0), 25, V(25, 0)},
		{"overshoot allowed", V(0, 0), V(1, 0), 4, V(4, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Step(tc.from, tc.to, tc.distance)
			if math.Abs(got.X-tc.expected.X) > 1e-6 || math.Abs(got.Y-tc.expected.Y) > 1e-6 {
				t.Errorf("Step() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDistToRay(t *testing.T) {
	origin := V(0, 0)
	through := V(10, 0)

	perp, along := DistToRay(origin, through, V(30, 4))
	if math.Abs(perp-4) > eps {
		t.Errorf("perp = %v, expected 4", perp)
	}
	if math.Abs(along-30) > eps {
		t.Errorf("along = %v, expected 30", along)
	}

	_, along = DistToRay(origin, through, V(-5, 0))
	if along >= 0 {
		t.Errorf("point behind origin should have negative projection, got %v", along)
	}

	perp, _ = DistToRay(origin, origin, V(3, 4))
	if math.Abs(perp-5) > eps {
		t.Errorf("degenerate ray should fall back to distance, got %v", perp)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(2.5, 0, 2); got != 2 {
		t.Errorf("ClampF(2.5, 0, 2) = %v, expected 2", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %v, expected 0", got)
	}
}

func TestRuntimeConfigStepMs(t *testing.T) {
	cfg := DefaultConfig()
	if math.Abs(cfg.StepMs()-1000.0/60.0) > eps {
		t.Errorf("StepMs() = %v, expected %v", cfg.StepMs(), 1000.0/60.0)
	}

	cfg.TickRate = 20
	if cfg.StepMs() != 50 {
		t.Errorf("StepMs() = %v, expected 50", cfg.StepMs())
	}

	cfg.TickRate = 0
	if math.Abs(cfg.StepMs()-1000.0/60.0) > eps {
		t.Errorf("StepMs() with zero rate = %v, expected fallback", cfg.StepMs())
	}
}
