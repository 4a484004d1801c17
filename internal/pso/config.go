package pso

import "fmt"

// Default coefficient values. Conventional choices that converge well on
// smooth low-dimensional objectives.
const (
	DefaultInertia   = 0.7
	DefaultCognitive = 1.5
	DefaultSocial    = 1.5
)

// Config holds the tunable parameters of a swarm. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Inertia weight w: how much prior velocity persists each step.
	Inertia float64

	// Cognitive coefficient c1: attraction toward a particle's own best.
	Cognitive float64

	// Social coefficient c2: attraction toward the swarm's best.
	Social float64

	// PosMin, PosMax bound the uniform random initial positions.
	PosMin, PosMax float64

	// VelMin, VelMax bound the uniform random initial velocities.
	VelMin, VelMax float64

	// MaxVelocity clamps |velocity| after each update when positive.
	// Zero disables clamping. Reduces divergence risk with aggressive
	// coefficients; no correctness guarantee either way.
	MaxVelocity float64

	// Synchronous makes global-best updates visible only at the end of
	// each step, so every particle in a step sees the previous step's
	// global best. The default (false) publishes improvements
	// immediately to later particles in the same step, which converges
	// faster.
	Synchronous bool

	// Policy selects minimization (default) or maximization.
	Policy Policy
}

// DefaultConfig returns conventional coefficients over the [-10, 10]
// search range with initial velocities in [-1, 1].
func DefaultConfig() Config {
	return Config{
		Inertia:   DefaultInertia,
		Cognitive: DefaultCognitive,
		Social:    DefaultSocial,
		PosMin:    -10,
		PosMax:    10,
		VelMin:    -1,
		VelMax:    1,
	}
}

// Validate checks the configuration for values that would make a run
// meaningless. Out-of-convention coefficients are allowed; incoherent
// ranges are not.
func (c Config) Validate() error {
	if c.PosMin >= c.PosMax {
		return &ConfigError{Field: "position range", Reason: fmt.Sprintf("min %v must be below max %v", c.PosMin, c.PosMax)}
	}
	if c.VelMin > c.VelMax {
		return &ConfigError{Field: "velocity range", Reason: fmt.Sprintf("min %v must not exceed max %v", c.VelMin, c.VelMax)}
	}
	if c.MaxVelocity < 0 {
		return &ConfigError{Field: "max velocity", Reason: "cannot be negative"}
	}
	if c.Inertia < 0 {
		return &ConfigError{Field: "inertia", Reason: "cannot be negative"}
	}
	if c.Cognitive < 0 {
		return &ConfigError{Field: "cognitive coefficient", Reason: "cannot be negative"}
	}
	if c.Social < 0 {
		return &ConfigError{Field: "social coefficient", Reason: "cannot be negative"}
	}
	return nil
}

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Field + " " + e.Reason
}
