// Package pso implements particle swarm optimization over a scalar
// search space. A swarm of candidate solutions moves through the space,
// each particle attracted toward the best position it has personally
// visited and the best position any particle has found.
package pso

import "math"

// Func is a pure objective function mapping a position to a fitness
// value. It must be side-effect free; the swarm may evaluate it in any
// order.
type Func func(x float64) float64

// Policy selects the optimization direction.
type Policy int

const (
	// Minimize treats lower fitness values as better.
	Minimize Policy = iota
	// Maximize treats higher fitness values as better.
	Maximize
)

// Better reports whether fitness a is strictly better than b under the
// policy. NaN never compares better, so a diverged evaluation cannot
// displace a recorded best.
func (pl Policy) Better(a, b float64) bool {
	if pl == Maximize {
		return a > b
	}
	return a < b
}

// Reached reports whether fitness val meets the target threshold.
func (pl Policy) Reached(val, target float64) bool {
	if math.IsNaN(val) {
		return false
	}
	if pl == Maximize {
		return val >= target
	}
	return val <= target
}

func (pl Policy) String() string {
	if pl == Maximize {
		return "maximize"
	}
	return "minimize"
}
