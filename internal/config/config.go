// Package config loads swarm tuning parameters from a YAML file.
// Values absent from the file keep their defaults, so a config file
// only needs to name the knobs it changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kwalther/psodemo/internal/pso"
)

// Config mirrors the tunable swarm settings accepted from a YAML file.
type Config struct {
	// Inertia weight w (default 0.7).
	Inertia float64 `yaml:"inertia"`

	// Cognitive coefficient c1, attraction toward the personal best
	// (default 1.5).
	Cognitive float64 `yaml:"cognitive"`

	// Social coefficient c2, attraction toward the global best
	// (default 1.5).
	Social float64 `yaml:"social"`

	// PositionMin/PositionMax bound the random initial positions
	// (default [-10, 10]).
	PositionMin float64 `yaml:"position_min"`
	PositionMax float64 `yaml:"position_max"`

	// VelocityMin/VelocityMax bound the random initial velocities
	// (default [-1, 1]).
	VelocityMin float64 `yaml:"velocity_min"`
	VelocityMax float64 `yaml:"velocity_max"`

	// MaxVelocity clamps |velocity| when positive (default 0, disabled).
	MaxVelocity float64 `yaml:"max_velocity"`

	// Synchronous defers global-best updates to the end of each step
	// (default false).
	Synchronous bool `yaml:"synchronous"`
}

// Default returns the built-in swarm tuning.
func Default() Config {
	d := pso.DefaultConfig()
	return Config{
		Inertia:     d.Inertia,
		Cognitive:   d.Cognitive,
		Social:      d.Social,
		PositionMin: d.PosMin,
		PositionMax: d.PosMax,
		VelocityMin: d.VelMin,
		VelocityMax: d.VelMax,
	}
}

// Load reads a YAML config file, applying file values over defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Swarm converts the file settings into a swarm configuration.
func (c Config) Swarm(policy pso.Policy) pso.Config {
	return pso.Config{
		Inertia:     c.Inertia,
		Cognitive:   c.Cognitive,
		Social:      c.Social,
		PosMin:      c.PositionMin,
		PosMax:      c.PositionMax,
		VelMin:      c.VelocityMin,
		VelMax:      c.VelocityMax,
		MaxVelocity: c.MaxVelocity,
		Synchronous: c.Synchronous,
		Policy:      policy,
	}
}
