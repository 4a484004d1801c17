package pso

import "math"

// ThresholdConfig controls threshold-terminated runs.
type ThresholdConfig struct {
	// Target is the fitness at which the run stops successfully.
	Target float64

	// Patience, when positive, stops the run after this many
	// consecutive iterations without significant improvement of the
	// global best. Zero disables the guard, matching the bare
	// run-until-threshold behavior.
	Patience int

	// MinImprovement is the relative improvement of the global best
	// that counts as progress, e.g. 0.001 for 0.1%. Only consulted
	// when Patience is positive.
	MinImprovement float64
}

// DefaultThresholdConfig targets a near-exact optimum with the patience
// guard disabled.
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{Target: 1e-4}
}

// Validate checks the threshold configuration.
func (tc ThresholdConfig) Validate() error {
	if math.IsNaN(tc.Target) {
		return &ConfigError{Field: "threshold target", Reason: "cannot be NaN"}
	}
	if tc.Patience < 0 {
		return &ConfigError{Field: "patience", Reason: "cannot be negative"}
	}
	if tc.MinImprovement < 0 {
		return &ConfigError{Field: "min improvement", Reason: "cannot be negative"}
	}
	return nil
}

// thresholdTracker watches the global-best fitness across iterations
// and flags runs that have stopped making progress.
type thresholdTracker struct {
	cfg    ThresholdConfig
	policy Policy

	lastSignificant float64
	staleCount      int
	primed          bool
}

func newThresholdTracker(cfg ThresholdConfig, policy Policy) *thresholdTracker {
	return &thresholdTracker{cfg: cfg, policy: policy}
}

// Stale records the global best after an iteration and reports whether
// the run has exceeded its patience without significant improvement.
func (t *thresholdTracker) Stale(best float64) bool {
	if t.cfg.Patience <= 0 {
		return false
	}

	if !t.primed {
		t.lastSignificant = best
		t.primed = true
		return false
	}

	if t.significant(best) {
		t.lastSignificant = best
		t.staleCount = 0
		return false
	}

	t.staleCount++
	return t.staleCount >= t.cfg.Patience
}

// significant reports whether best improves on the last significant
// value by at least the configured relative margin.
func (t *thresholdTracker) significant(best float64) bool {
	if !t.policy.Better(best, t.lastSignificant) {
		return false
	}
	denom := math.Abs(t.lastSignificant)
	if denom == 0 {
		return true
	}
	return math.Abs(best-t.lastSignificant)/denom >= t.cfg.MinImprovement
}
