package pso

// Particle is a single candidate solution: a position, a velocity, and
// the best position this particle has visited so far.
type Particle struct {
	Pos     float64
	Vel     float64
	BestPos float64
	BestVal float64
}

// record stores a freshly evaluated position, updating the personal
// best only on strict improvement.
func (p *Particle) record(val float64, policy Policy) {
	if policy.Better(val, p.BestVal) {
		p.BestVal = val
		p.BestPos = p.Pos
	}
}

// Population is the ordered set of particles in a swarm.
type Population []*Particle

// Best reduces the population to the best personal-best seen so far.
func (pop Population) Best(policy Policy) (pos, val float64) {
	pos = pop[0].BestPos
	val = pop[0].BestVal
	for _, p := range pop[1:] {
		if policy.Better(p.BestVal, val) {
			val = p.BestVal
			pos = p.BestPos
		}
	}
	return pos, val
}

// Positions returns a snapshot of the current particle positions.
func (pop Population) Positions() []float64 {
	out := make([]float64, len(pop))
	for i, p := range pop {
		out[i] = p.Pos
	}
	return out
}

// Velocities returns a snapshot of the current particle velocities.
func (pop Population) Velocities() []float64 {
	out := make([]float64, len(pop))
	for i, p := range pop {
		out[i] = p.Vel
	}
	return out
}
