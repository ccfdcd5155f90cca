package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boarding-sim/boarding-sim/sim"
)

func runsWithSteps(steps ...int) []RunResult {
	runs := make([]RunResult, len(steps))
	for i, s := range steps {
		runs[i] = RunResult{Replication: i, Report: sim.Report{Steps: s}}
	}
	return runs
}

func stepsField(r RunResult) float64 { return float64(r.Report.Steps) }

func TestAggregate_KnownValues(t *testing.T) {
	// unsorted on purpose; Aggregate sorts internally
	stats := Aggregate(runsWithSteps(30, 10, 20), stepsField)

	assert.Equal(t, 20.0, stats.Mean)
	assert.Equal(t, 10.0, stats.StdDev)
	assert.Equal(t, 10.0, stats.Min)
	assert.Equal(t, 30.0, stats.Max)
	assert.Equal(t, 20.0, stats.Median)
}

func TestAggregate_SingleRunStdDevIsZero(t *testing.T) {
	stats := Aggregate(runsWithSteps(42), stepsField)

	assert.Equal(t, 42.0, stats.Mean)
	assert.Equal(t, 0.0, stats.StdDev)
	assert.Equal(t, 42.0, stats.Min)
	assert.Equal(t, 42.0, stats.Max)
	assert.Equal(t, 42.0, stats.Median)
}

func TestAggregate_NoRuns(t *testing.T) {
	stats := Aggregate(nil, stepsField)
	assert.Equal(t, Stats{}, stats)
}

func TestStats_String(t *testing.T) {
	stats := Stats{Mean: 20, StdDev: 10, Min: 10, Max: 30, Median: 20}
	want := "mean=20.00 std=10.00 min=10 median=20 max=30"
	assert.Equal(t, want, stats.String())
}
