package pso

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

// Swarm is a fixed-size population of particles optimizing a single
// objective. It is not safe for concurrent use; a run owns its swarm.
type Swarm struct {
	cfg Config
	fn  Func
	rng *rand.Rand
	pop Population

	bestPos float64
	bestVal float64

	initialVal float64
	iterations int
}

// Result is the outcome of an optimization run.
type Result struct {
	// BestPos and BestVal are the swarm's global best at termination.
	BestPos float64
	BestVal float64

	// InitialVal is the best fitness among the initial samples, kept
	// for improvement tracking.
	InitialVal float64

	// Iterations is the number of completed update steps.
	Iterations int

	// Reached reports, for threshold runs, whether the target fitness
	// was met. Fixed-iteration runs always leave it false.
	Reached bool
}

// New creates a swarm of n particles with positions and velocities
// drawn uniformly from the configured ranges. Each particle draws its
// position and then its velocity from rng, in particle order, so a
// seeded rng gives a reproducible swarm.
//
// The personal best of each particle starts at its initial position;
// the global best is the best of those.
func New(n int, fn Func, cfg Config, rng *rand.Rand) (*Swarm, error) {
	if n < 1 {
		return nil, &ConfigError{Field: "particle count", Reason: fmt.Sprintf("must be at least 1, got %d", n)}
	}
	if fn == nil {
		return nil, &ConfigError{Field: "objective", Reason: "cannot be nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pop := make(Population, n)
	for i := range pop {
		pos := cfg.PosMin + rng.Float64()*(cfg.PosMax-cfg.PosMin)
		vel := cfg.VelMin + rng.Float64()*(cfg.VelMax-cfg.VelMin)
		pop[i] = &Particle{
			Pos:     pos,
			Vel:     vel,
			BestPos: pos,
			BestVal: fn(pos),
		}
	}

	return newSwarm(pop, fn, cfg, rng), nil
}

// NewFromState creates a swarm from explicit initial positions and,
// optionally, velocities. A nil velocities slice starts every particle
// at rest. Slice lengths must agree.
func NewFromState(positions, velocities []float64, fn Func, cfg Config, rng *rand.Rand) (*Swarm, error) {
	if len(positions) < 1 {
		return nil, &ConfigError{Field: "initial positions", Reason: "must contain at least 1 entry"}
	}
	if velocities != nil && len(velocities) != len(positions) {
		return nil, &ConfigError{
			Field:  "initial velocities",
			Reason: fmt.Sprintf("length %d does not match %d positions", len(velocities), len(positions)),
		}
	}
	if fn == nil {
		return nil, &ConfigError{Field: "objective", Reason: "cannot be nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pop := make(Population, len(positions))
	for i, pos := range positions {
		var vel float64
		if velocities != nil {
			vel = velocities[i]
		}
		pop[i] = &Particle{
			Pos:     pos,
			Vel:     vel,
			BestPos: pos,
			BestVal: fn(pos),
		}
	}

	return newSwarm(pop, fn, cfg, rng), nil
}

func newSwarm(pop Population, fn Func, cfg Config, rng *rand.Rand) *Swarm {
	s := &Swarm{cfg: cfg, fn: fn, rng: rng, pop: pop}
	s.bestPos, s.bestVal = pop.Best(cfg.Policy)
	s.initialVal = s.bestVal
	return s
}

// Best returns the swarm's current global-best position and fitness.
func (s *Swarm) Best() (pos, val float64) {
	return s.bestPos, s.bestVal
}

// Particles exposes the population for inspection. Callers must not
// mutate it.
func (s *Swarm) Particles() Population {
	return s.pop
}

// Iterations returns the number of completed update steps.
func (s *Swarm) Iterations() int {
	return s.iterations
}

// Step advances the swarm by one iteration. For each particle, in
// order, two uniform scalars r1 and r2 are drawn from rng, the velocity
// is updated as
//
//	v <- w*v + c1*r1*(pbest - x) + c2*r2*(gbest - x)
//
// the position moves by the new velocity, and the personal best is
// updated on strict improvement. In the default asynchronous mode an
// improved personal best is published to the global best immediately;
// in synchronous mode the global best is reduced once at the end of the
// step, so every particle saw the previous step's value.
func (s *Swarm) Step() {
	for _, p := range s.pop {
		r1 := s.rng.Float64()
		r2 := s.rng.Float64()

		p.Vel = s.cfg.Inertia*p.Vel +
			s.cfg.Cognitive*r1*(p.BestPos-p.Pos) +
			s.cfg.Social*r2*(s.bestPos-p.Pos)
		if s.cfg.MaxVelocity > 0 {
			p.Vel = clamp(p.Vel, s.cfg.MaxVelocity)
		}
		p.Pos += p.Vel

		p.record(s.fn(p.Pos), s.cfg.Policy)

		if !s.cfg.Synchronous && s.cfg.Policy.Better(p.BestVal, s.bestVal) {
			s.bestVal = p.BestVal
			s.bestPos = p.BestPos
		}
	}

	if s.cfg.Synchronous {
		pos, val := s.pop.Best(s.cfg.Policy)
		if s.cfg.Policy.Better(val, s.bestVal) {
			s.bestVal = val
			s.bestPos = pos
		}
	}

	s.iterations++
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// Run advances the swarm by exactly iters steps and reports the global
// best. With iters = 0 the result is the best of the initial samples.
// The observer, when non-nil, is called after each completed step with
// the 1-based iteration number.
func (s *Swarm) Run(iters int, observe func(iteration int)) (*Result, error) {
	if iters < 0 {
		return nil, &ConfigError{Field: "iteration count", Reason: fmt.Sprintf("cannot be negative, got %d", iters)}
	}

	for i := 1; i <= iters; i++ {
		s.Step()
		if observe != nil {
			observe(i)
		}
	}

	slog.Debug("run complete",
		"iterations", s.iterations,
		"initial", s.initialVal,
		"best", s.bestVal,
	)

	return s.result(false), nil
}

// RunToThreshold steps the swarm until the global-best fitness reaches
// the threshold target, the swarm goes stale past the configured
// patience, or the swarm diverges to a non-finite global best. The
// observer behaves as in Run.
func (s *Swarm) RunToThreshold(tc ThresholdConfig, observe func(iteration int)) (*Result, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}

	tracker := newThresholdTracker(tc, s.cfg.Policy)
	for !s.cfg.Policy.Reached(s.bestVal, tc.Target) {
		s.Step()
		if observe != nil {
			observe(s.iterations)
		}
		if tracker.Stale(s.bestVal) {
			slog.Warn("stopping stale run",
				"iterations", s.iterations,
				"best", s.bestVal,
				"target", tc.Target,
			)
			return s.result(false), nil
		}
		if math.IsInf(s.bestVal, 0) || math.IsNaN(s.bestVal) {
			slog.Warn("swarm diverged", "iterations", s.iterations, "best", s.bestVal)
			return s.result(false), nil
		}
	}

	slog.Debug("threshold reached",
		"iterations", s.iterations,
		"best", s.bestVal,
		"target", tc.Target,
	)

	return s.result(true), nil
}

func (s *Swarm) result(reached bool) *Result {
	return &Result{
		BestPos:    s.bestPos,
		BestVal:    s.bestVal,
		InitialVal: s.initialVal,
		Iterations: s.iterations,
		Reached:    reached,
	}
}
