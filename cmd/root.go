package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/robobench/robobench/sim"
	"github.com/robobench/robobench/sim/batch"
	"github.com/robobench/robobench/sim/scene"
	"github.com/robobench/robobench/sim/trace"
)

var (
	// CLI flags shared by run and batch
	logLevel     string  // Log verbosity level
	sampleStep   float64 // Move sub-sampling resolution in cm
	envPath      string  // Path to environment.txt
	scenePath    string  // Path to a YAML scene (alternative to --env)
	instructions string  // Path to instructions.txt

	// batch-only flags
	batchCases string        // Comma-separated env:instructions pairs
	workers    int           // Parallel workers
	budget     time.Duration // Wall-clock budget per run (0 = unlimited)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "robobench",
	Short: "Geometric simulation and scoring engine for robot path benchmarks",
}

// setupLogging applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadScene reads the scene from --scene (YAML) or --env (key=value text).
func loadScene() (scene.Scene, error) {
	if scenePath != "" && envPath != "" {
		return scene.Scene{}, fmt.Errorf("--scene and --env are mutually exclusive")
	}
	if scenePath != "" {
		return scene.LoadSceneYAML(scenePath)
	}
	return scene.LoadEnvironment(envPath)
}

// runCmd evaluates a single (scene, instructions) pair and prints the
// metrics record as JSON on stdout.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate one instruction list against one scene",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sc, err := loadScene()
		if err != nil {
			logrus.Fatalf("loading scene: %v", err)
		}
		ops, err := scene.LoadInstructions(instructions)
		if err != nil {
			logrus.Fatalf("loading instructions: %v", err)
		}

		cfg := sim.EngineConfig{SampleStepCM: sampleStep}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("engine config: %v", err)
		}

		circum, err := sim.Circumradius(sc.Robot)
		if err != nil {
			logrus.Fatalf("robot footprint: %v", err)
		}
		obstacles, err := sim.InflateObstacles(sc.Obstacles, circum, sc.ClearanceCM)
		if err != nil {
			logrus.Fatalf("obstacles: %v", err)
		}
		logrus.Infof("Evaluating %d instructions against %d obstacles (circumradius %.2f cm, clearance %.2f cm)",
			len(ops), len(obstacles), circum, sc.ClearanceCM)

		simulator := sim.NewSimulator(sc.Start, sc.TurnConvention, cfg)
		path, err := simulator.Run(ops)
		if err != nil {
			logrus.Fatalf("simulation: %v", err)
		}

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			clearances, cerr := sim.ClearanceSeries(path, obstacles)
			if cerr == nil {
				s := trace.Summarize(path, clearances)
				logrus.Debugf("trajectory: %d samples, %.2f cm, bounds x[%.1f,%.1f] y[%.1f,%.1f]",
					s.Samples, s.PathLengthCM, s.MinX, s.MaxX, s.MinY, s.MaxY)
				if s.HasClearance {
					logrus.Debugf("clearance: min %.2f cm, mean %.2f cm", s.MinClearance, s.MeanClearance)
				}
			}
		}

		rec, err := sim.Score(path, obstacles, sc, simulator.FinalPose)
		if err != nil {
			logrus.Fatalf("scoring: %v", err)
		}
		printJSON(rec)
	},
}

// batchCmd evaluates several cases in parallel and prints a JSON array of
// per-case outcomes on stdout.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate multiple env:instructions cases in parallel",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sim.EngineConfig{SampleStepCM: sampleStep}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("engine config: %v", err)
		}

		var cases []batch.Case
		for _, spec := range strings.Split(batchCases, ",") {
			envFile, instrFile, found := strings.Cut(strings.TrimSpace(spec), ":")
			if !found {
				logrus.Fatalf("invalid case %q (want env:instructions)", spec)
			}
			sc, err := scene.LoadEnvironment(envFile)
			if err != nil {
				logrus.Fatalf("case %q: %v", spec, err)
			}
			ops, err := scene.LoadInstructions(instrFile)
			if err != nil {
				logrus.Fatalf("case %q: %v", spec, err)
			}
			cases = append(cases, batch.Case{Scene: sc, Instructions: ops})
		}
		if len(cases) == 0 {
			logrus.Fatalf("no cases given (use --cases env:instructions[,...])")
		}

		runner := batch.NewRunner(cfg)
		if workers > 0 {
			runner.Workers = workers
		}
		runner.PerRunBudget = budget

		results := runner.Evaluate(cmd.Context(), cases)
		out := make([]batchOutcome, len(results))
		for i, res := range results {
			if res.Err != nil {
				out[i] = batchOutcome{Error: res.Err.Error()}
				continue
			}
			rec := res.Metrics
			out[i] = batchOutcome{Metrics: &rec}
		}
		printJSON(out)
	},
}

// batchOutcome is the serialized form of one batch result.
type batchOutcome struct {
	Metrics *sim.MetricsRecord `json:"metrics,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logrus.Fatalf("encoding output: %v", err)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&envPath, "env", "environment.txt", "Path to environment.txt")
	runCmd.Flags().StringVar(&scenePath, "scene", "", "Path to a YAML scene file (overrides --env)")
	runCmd.Flags().StringVar(&instructions, "instructions", "instructions.txt", "Path to instructions.txt")
	runCmd.Flags().Float64Var(&sampleStep, "sample-step", sim.DefaultSampleStepCM, "Move sub-sampling resolution in cm")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	batchCmd.Flags().StringVar(&batchCases, "cases", "", "Comma-separated env:instructions file pairs")
	batchCmd.Flags().Float64Var(&sampleStep, "sample-step", sim.DefaultSampleStepCM, "Move sub-sampling resolution in cm")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (0 = one per CPU)")
	batchCmd.Flags().DurationVar(&budget, "budget", 0, "Wall-clock budget per run (0 = unlimited)")
	batchCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
}
