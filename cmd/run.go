package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kwalther/psodemo/internal/config"
	"github.com/kwalther/psodemo/internal/pso"
	"github.com/kwalther/psodemo/internal/ui"
)

var (
	cfgPath   string
	seed      int64
	threshold float64
	patience  int
	verbose   bool
	maximize  bool
	initArg   string
	vinitArg  string
	inertia   float64
	cognitive float64
	social    float64
)

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "YAML file with swarm tuning parameters")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Fixed random seed (time-seeded when omitted)")
	rootCmd.Flags().Float64VarP(&threshold, "threshold", "e", 1e-4, "Error threshold for runs without an iteration count")
	rootCmd.Flags().IntVar(&patience, "patience", 0, "Stop threshold runs after N stale iterations (0 = run until reached)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print swarm state every iteration")
	rootCmd.Flags().BoolVar(&maximize, "maximize", false, "Maximize the objective instead of minimizing")
	rootCmd.Flags().StringVar(&initArg, "init", "", "Comma-separated initial positions, one per particle")
	rootCmd.Flags().StringVar(&vinitArg, "vinit", "", "Comma-separated initial velocities, requires --init")
	rootCmd.Flags().Float64VarP(&inertia, "inertia", "w", pso.DefaultInertia, "Inertia weight")
	rootCmd.Flags().Float64Var(&cognitive, "cognitive", pso.DefaultCognitive, "Cognitive coefficient (personal-best pull)")
	rootCmd.Flags().Float64Var(&social, "social", pso.DefaultSocial, "Social coefficient (global-best pull)")
}

// quadratic is the demo objective. True minimum at x = 1, y = 0.
func quadratic(x float64) float64 {
	return (x - 1) * (x - 1)
}

func runDemo(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid particle count %q", args[0])
	}
	if n < 1 {
		return fmt.Errorf("particle count must be at least 1, got %d", n)
	}

	// Without an iteration count the run terminates on the threshold.
	iters := -1
	if len(args) == 2 {
		iters, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid iteration count %q", args[1])
		}
		if iters < 0 {
			return fmt.Errorf("iteration count cannot be negative, got %d", iters)
		}
	}

	fileCfg := config.Default()
	if cfgPath != "" {
		fileCfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("inertia") {
		fileCfg.Inertia = inertia
	}
	if cmd.Flags().Changed("cognitive") {
		fileCfg.Cognitive = cognitive
	}
	if cmd.Flags().Changed("social") {
		fileCfg.Social = social
	}
	policy := pso.Minimize
	if maximize {
		policy = pso.Maximize
	}
	cfg := fileCfg.Swarm(policy)

	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
		slog.Info("using time-based seed", "seed", seed)
	} else {
		slog.Info("using fixed seed", "seed", seed)
	}
	rng := rand.New(rand.NewSource(seed))

	runID := uuid.New().String()
	slog.Info("starting run",
		"run_id", runID,
		"particles", n,
		"iterations", iters,
		"inertia", cfg.Inertia,
		"cognitive", cfg.Cognitive,
		"social", cfg.Social,
		"policy", cfg.Policy.String(),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Particle Swarm Optimization Demo")
	fmt.Fprintln(out, "Function to optimize: y = (x - 1)^2")

	var swarm *pso.Swarm
	switch {
	case initArg != "":
		positions, err := parseVector(initArg, n)
		if err != nil {
			return fmt.Errorf("invalid --init: %w", err)
		}
		var velocities []float64
		if vinitArg != "" {
			velocities, err = parseVector(vinitArg, n)
			if err != nil {
				return fmt.Errorf("invalid --vinit: %w", err)
			}
		}
		swarm, err = pso.NewFromState(positions, velocities, quadratic, cfg, rng)
		if err != nil {
			return err
		}
	case vinitArg != "":
		return fmt.Errorf("--vinit requires --init")
	default:
		swarm, err = pso.New(n, quadratic, cfg, rng)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Initialized %d particles:\n", n)
	if verbose {
		printSwarm(out, swarm)
	}

	var observe func(iteration int)
	if verbose {
		observe = func(iteration int) {
			fmt.Fprintf(out, "Iteration %d\n", iteration)
			printSwarm(out, swarm)
		}
	}

	start := time.Now()
	var result *pso.Result
	if iters >= 0 {
		result, err = swarm.Run(iters, observe)
	} else {
		tc := pso.DefaultThresholdConfig()
		tc.Target = threshold
		tc.Patience = patience
		result, err = swarm.RunToThreshold(tc, observe)
	}
	if err != nil {
		return err
	}

	if iters < 0 {
		if result.Reached {
			fmt.Fprintf(out, "Finished in %d iterations\n", result.Iterations)
		} else {
			styles := ui.DefaultStyles()
			notice := fmt.Sprintf("Stopped after %d iterations without reaching the threshold", result.Iterations)
			fmt.Fprintln(cmd.ErrOrStderr(), styles.Warning.Render(notice))
		}
	}

	slog.Info("run complete",
		"run_id", runID,
		"iterations", result.Iterations,
		"initial", result.InitialVal,
		"best", result.BestVal,
		"elapsed", time.Since(start),
	)

	fmt.Fprintf(out, "Best value of x: %v\n", result.BestPos)
	fmt.Fprintf(out, "Best value of y: %v\n", result.BestVal)

	return nil
}

func printSwarm(w io.Writer, s *pso.Swarm) {
	pop := s.Particles()
	fmt.Fprintf(w, "Positions: %v\n", pop.Positions())
	fmt.Fprintf(w, "Velocities: %v\n\n", pop.Velocities())
}

// parseVector parses a comma-separated float list of exactly n entries.
func parseVector(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", part)
		}
		out[i] = v
	}
	return out, nil
}
