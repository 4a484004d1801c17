package pso

import (
	"math"
	"math/rand"
	"testing"
)

func TestRunToThresholdReachesTarget(t *testing.T) {
	s := newTestSwarm(t, 12, 1, DefaultConfig())

	tc := ThresholdConfig{Target: 0.01}
	result, err := s.RunToThreshold(tc, nil)
	if err != nil {
		t.Fatalf("RunToThreshold failed: %v", err)
	}

	if !result.Reached {
		t.Fatal("expected the threshold to be reached")
	}
	if result.BestVal > tc.Target {
		t.Errorf("best value %v exceeds target %v", result.BestVal, tc.Target)
	}
	if result.Iterations < 1 {
		t.Errorf("expected at least one iteration, got %d", result.Iterations)
	}
}

func TestRunToThresholdAlreadyMet(t *testing.T) {
	// A particle sitting on the exact minimum satisfies the default
	// target without a single step.
	rng := rand.New(rand.NewSource(1))
	s, err := NewFromState([]float64{1}, nil, quad, DefaultConfig(), rng)
	if err != nil {
		t.Fatalf("NewFromState failed: %v", err)
	}

	result, err := s.RunToThreshold(DefaultThresholdConfig(), nil)
	if err != nil {
		t.Fatalf("RunToThreshold failed: %v", err)
	}

	if !result.Reached {
		t.Fatal("expected the threshold to be reached")
	}
	if result.Iterations != 0 {
		t.Errorf("expected 0 iterations, got %d", result.Iterations)
	}
}

func TestPatienceStopsStaleRun(t *testing.T) {
	// Inertia 2 makes velocities explode, so the unreachable target
	// would spin forever without the patience guard.
	cfg := DefaultConfig()
	cfg.Inertia = 2.0

	rng := rand.New(rand.NewSource(4))
	s, err := New(5, quad, cfg, rng)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tc := ThresholdConfig{Target: 0, Patience: 20, MinImprovement: 0.001}
	result, err := s.RunToThreshold(tc, nil)
	if err != nil {
		t.Fatalf("RunToThreshold failed: %v", err)
	}

	if result.Reached {
		t.Error("expected the run to stop without reaching the target")
	}
	if result.Iterations < tc.Patience {
		t.Errorf("stopped after %d iterations, before patience %d could elapse", result.Iterations, tc.Patience)
	}
	if math.IsNaN(result.BestVal) {
		t.Error("stale run reported NaN as its best value")
	}
}

func TestThresholdConfigValidate(t *testing.T) {
	if err := (ThresholdConfig{Target: math.NaN()}).Validate(); err == nil {
		t.Error("expected error for NaN target")
	}
	if err := (ThresholdConfig{Patience: -1}).Validate(); err == nil {
		t.Error("expected error for negative patience")
	}
	if err := (ThresholdConfig{MinImprovement: -0.1}).Validate(); err == nil {
		t.Error("expected error for negative improvement margin")
	}
	if err := DefaultThresholdConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestThresholdTrackerStaleness(t *testing.T) {
	tr := newThresholdTracker(ThresholdConfig{Patience: 2, MinImprovement: 0.1}, Minimize)

	// First observation primes the tracker.
	if tr.Stale(100) {
		t.Fatal("tracker stale on first observation")
	}
	// 1% improvement is below the 10% margin.
	if tr.Stale(99) {
		t.Fatal("tracker stale after one insignificant iteration")
	}
	if !tr.Stale(98.9) {
		t.Fatal("tracker not stale after exhausting patience")
	}

	// A significant improvement resets the counter.
	tr = newThresholdTracker(ThresholdConfig{Patience: 2, MinImprovement: 0.1}, Minimize)
	tr.Stale(100)
	tr.Stale(99)
	if tr.Stale(50) {
		t.Fatal("significant improvement should reset staleness")
	}
	if tr.Stale(49.9) {
		t.Fatal("counter should restart after a reset")
	}
	if !tr.Stale(49.8) {
		t.Fatal("tracker not stale after patience elapsed again")
	}
}
