package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boarding-sim/boarding-sim/sim"
	"github.com/boarding-sim/boarding-sim/sim/experiment"
	"github.com/boarding-sim/boarding-sim/sim/trace"
)

var (
	// CLI flags for the cabin and the queueing policy
	rows          int    // Number of seat rows in the cabin
	seatsPerRow   int    // Seats per row, split evenly by the aisle
	policyName    string // Queueing policy name
	groups        int    // Boarding group count (0 = one group per row)
	shuffleGroups bool   // Shuffle passenger order within each group

	// CLI flags for the run itself
	seed         int64  // Seed for queue shuffling
	maxSteps     int    // Step cap for a single run (0 = engine default)
	replications int    // Number of replicated runs
	scenarioPath string // Scenario YAML file, overrides the flags above

	// CLI flags for output
	logLevel   string // Log verbosity level
	jsonOut    bool   // Print the report as JSON
	traceLevel string // Trace level (none, steps)

	// CLI flags for compare
	policyList []string // Policies to compare
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "boarding-sim",
	Short: "Discrete-event simulator for airplane boarding strategies",
}

// buildScenario assembles the scenario from a YAML file when --scenario is
// given, or from the individual flags otherwise.
func buildScenario() (*sim.Scenario, error) {
	if scenarioPath != "" {
		return sim.LoadScenario(scenarioPath)
	}
	sc := &sim.Scenario{
		Layout:       sim.LayoutSpec{Rows: rows, SeatsPerRow: seatsPerRow},
		Policy:       sim.PolicySpec{Name: policyName, Groups: groups, ShuffleGroups: &shuffleGroups},
		Seed:         seed,
		MaxSteps:     maxSteps,
		Replications: replications,
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// setUpLogging parses and applies the --log flag
func setUpLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes one boarding simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the boarding simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		sc, err := buildScenario()
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		// Replicated runs go through the experiment runner and report
		// aggregate statistics instead of a single-run report.
		if sc.ReplicationCount() > 1 {
			result, err := experiment.Run(sc)
			if err != nil {
				logrus.Fatalf("Experiment failed: %v", err)
			}
			fmt.Printf("=== Replicated Boarding Report (n=%d) ===\n", len(result.Runs))
			fmt.Printf("Steps    : %v\n", result.Steps)
			fmt.Printf("Stops    : %v\n", result.Stops)
			fmt.Printf("Shuffles : %v\n", result.Shuffles)
			fmt.Printf("Seated   : %v\n", result.Seated)
			return
		}

		var tr *trace.BoardingTrace
		if trace.TraceLevel(traceLevel) == trace.TraceLevelSteps {
			tr = trace.NewBoardingTrace()
		}

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(sc.Seed)).ForSubsystem(sim.SubsystemQueue)
		s, err := sc.Assemble(rng, sim.Config{Trace: tr})
		if err != nil {
			logrus.Fatalf("Could not assemble simulation: %v", err)
		}
		report, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if jsonOut {
			out, err := report.JSON()
			if err != nil {
				logrus.Fatalf("Could not render report: %v", err)
			}
			fmt.Println(out)
		} else {
			report.Print()
		}

		if tr != nil {
			summary := trace.Summarize(tr)
			fmt.Println("=== Trace Summary ===")
			fmt.Printf("Peak walking       : %d\n", summary.PeakWalking)
			fmt.Printf("Idle steps         : %d\n", summary.IdleSteps)
			fmt.Printf("Shuffled seatings  : %d\n", summary.ShuffledSeatings)
			fmt.Printf("Mean shuffles      : %.2f\n", summary.MeanShuffles)
		}
	},
}

// compareCmd runs every requested policy on the same cabin and seed
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare queueing policies on the same cabin",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()

		sc, err := buildScenario()
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		comparison, err := experiment.Compare(sc, policyList)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		fmt.Print(comparison)
		if best := comparison.Best(); best != nil {
			fmt.Printf("best policy by mean steps: %s\n", best.Policy)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	// flags shared by run and compare
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().IntVar(&rows, "rows", 30, "Number of seat rows")
		c.Flags().IntVar(&seatsPerRow, "seats-per-row", 6, "Seats per row (must be even)")
		c.Flags().IntVar(&groups, "groups", 0, "Boarding group count (0 = one group per row)")
		c.Flags().BoolVar(&shuffleGroups, "shuffle-groups", true, "Shuffle passenger order within each group")
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for queue shuffling")
		c.Flags().IntVar(&maxSteps, "max-steps", 0, "Step cap per run (0 = engine default)")
		c.Flags().IntVar(&replications, "replications", 1, "Number of replicated runs")
		c.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file (overrides layout and policy flags)")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	}

	// run-only flags
	runCmd.Flags().StringVar(&policyName, "policy", "random", "Queueing policy: "+strings.Join(sim.PolicyNames(), ", "))
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the final report as JSON")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, steps)")

	// compare-only flags
	compareCmd.Flags().StringSliceVar(&policyList, "policies", sim.PolicyNames(), "Comma-separated list of policies to compare")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
