package opt

// Optimizer defines a scalar optimization algorithm interface
type Optimizer interface {
	// Run executes the optimization
	// eval: objective function to minimize
	// lower, upper: search range for the position
	// Returns: best position and best value
	Run(eval func(float64) float64, lower, upper float64) (float64, float64)
}
