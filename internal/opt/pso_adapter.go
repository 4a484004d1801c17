package opt

import (
	"math/rand"

	"github.com/kwalther/psodemo/internal/pso"
)

// PSOAdapter wraps the swarm core to conform to the Optimizer interface
type PSOAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewPSO creates a new particle swarm optimizer adapter
func NewPSO(maxIters, popSize int, seed int64) Optimizer {
	return &PSOAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes a seeded particle swarm minimization over [lower, upper]
func (a *PSOAdapter) Run(eval func(float64) float64, lower, upper float64) (float64, float64) {
	cfg := pso.DefaultConfig()
	cfg.PosMin = lower
	cfg.PosMax = upper

	// Scale initial velocities to a tenth of the search range.
	span := (upper - lower) / 10
	cfg.VelMin = -span / 2
	cfg.VelMax = span / 2

	rng := rand.New(rand.NewSource(a.seed))

	swarm, err := pso.New(a.popSize, eval, cfg, rng)
	if err != nil {
		// Fall back to the range midpoint if the configuration is unusable
		mid := (lower + upper) / 2
		return mid, eval(mid)
	}

	result, err := swarm.Run(a.maxIters, nil)
	if err != nil {
		mid := (lower + upper) / 2
		return mid, eval(mid)
	}

	return result.BestPos, result.BestVal
}
