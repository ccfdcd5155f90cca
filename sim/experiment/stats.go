package experiment

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one report field across replications.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Aggregate computes summary statistics of one report field across runs.
func Aggregate(runs []RunResult, field func(RunResult) float64) Stats {
	if len(runs) == 0 {
		return Stats{}
	}
	xs := make([]float64, len(runs))
	for i, r := range runs {
		xs[i] = field(r)
	}
	sort.Float64s(xs)

	// The sample standard deviation of a single run is undefined; report 0.
	stddev := 0.0
	if len(xs) > 1 {
		stddev = stat.StdDev(xs, nil)
	}

	return Stats{
		Mean:   stat.Mean(xs, nil),
		StdDev: stddev,
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
	}
}

// String renders the stats on one line for report tables.
func (s Stats) String() string {
	return fmt.Sprintf("mean=%.2f std=%.2f min=%.0f median=%.0f max=%.0f",
		s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}
