// Package experiment runs replicated boarding simulations and aggregates
// their reports, so queueing policies can be compared on equal footing.
package experiment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/boarding-sim/boarding-sim/sim"
)

// RunResult bundles all outputs from one boarding replication.
type RunResult struct {
	RunID       uuid.UUID
	Replication int
	Report      sim.Report
	WallTime    time.Duration // wall-clock duration of Run()
}

// Result aggregates every replication of one scenario plus summary
// statistics over the per-run reports.
type Result struct {
	Policy   string
	Runs     []RunResult
	Steps    Stats
	Stops    Stats
	Shuffles Stats
	Seated   Stats
}

// Run executes the scenario's replications and aggregates their reports.
// Replication i draws from an RNG stream derived from the scenario seed and
// the replication index, so it sees the same stream no matter how many
// replications run alongside it.
func Run(sc *sim.Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	reps := sc.ReplicationCount()
	prng := sim.NewPartitionedRNG(sim.NewSimulationKey(sc.Seed))

	runs := make([]RunResult, 0, reps)
	for i := 0; i < reps; i++ {
		rng := prng.ForSubsystem(sim.SubsystemReplication(i))
		simulator, err := sc.Assemble(rng, sim.Config{})
		if err != nil {
			return nil, fmt.Errorf("replication %d: %w", i, err)
		}
		start := time.Now()
		report, err := simulator.Run()
		if err != nil {
			return nil, fmt.Errorf("replication %d: %w", i, err)
		}
		runs = append(runs, RunResult{
			RunID:       uuid.New(),
			Replication: i,
			Report:      report,
			WallTime:    time.Since(start),
		})
		logrus.Debugf("replication %d (%s): %d steps, %d stops, %d shuffles",
			i, sc.Policy.Name, report.Steps, report.Stops, report.Shuffles)
	}

	return &Result{
		Policy:   sc.Policy.Name,
		Runs:     runs,
		Steps:    Aggregate(runs, func(r RunResult) float64 { return float64(r.Report.Steps) }),
		Stops:    Aggregate(runs, func(r RunResult) float64 { return float64(r.Report.Stops) }),
		Shuffles: Aggregate(runs, func(r RunResult) float64 { return float64(r.Report.Shuffles) }),
		Seated:   Aggregate(runs, func(r RunResult) float64 { return float64(r.Report.PassengersSeated) }),
	}, nil
}
