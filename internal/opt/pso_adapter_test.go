package opt

import (
	"math"
	"testing"
)

// Quadratic with its minimum at x = 1, y = 0.
func quadratic(x float64) float64 {
	return (x - 1) * (x - 1)
}

func TestPSOAdapterOnQuadratic(t *testing.T) {
	optimizer := NewPSO(100, 20, 42) // maxIters, popSize, seed

	best, cost := optimizer.Run(quadratic, -10, 10)

	// Should converge close to the minimum
	if cost > 0.01 {
		t.Errorf("Expected cost near 0, got %f", cost)
	}
	if math.Abs(best-1) > 0.5 {
		t.Errorf("Expected best near 1, got %f", best)
	}
}

func TestPSOAdapterDeterministic(t *testing.T) {
	// Run twice with same seed
	optimizer1 := NewPSO(50, 20, 123)
	best1, cost1 := optimizer1.Run(quadratic, -5, 5)

	optimizer2 := NewPSO(50, 20, 123)
	best2, cost2 := optimizer2.Run(quadratic, -5, 5)

	if cost1 != cost2 || best1 != best2 {
		t.Errorf("Non-deterministic: (%f, %f) vs (%f, %f)", best1, cost1, best2, cost2)
	}
}

func TestPSOAdapterZeroIterations(t *testing.T) {
	optimizer := NewPSO(0, 10, 7)

	best, cost := optimizer.Run(quadratic, -10, 10)

	// Zero iterations still reports the best of the initial samples.
	if cost != quadratic(best) {
		t.Errorf("Reported cost %f does not match objective at %f", cost, best)
	}
	if best < -10 || best > 10 {
		t.Errorf("Best position %f outside the search range", best)
	}
}
