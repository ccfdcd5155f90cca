package experiment

import (
	"fmt"
	"strings"

	"github.com/boarding-sim/boarding-sim/sim"
)

// Comparison holds the results of running several queueing policies against
// the same layout, seed, and replication count.
type Comparison struct {
	Results []*Result
}

// Compare runs the base scenario once per policy name, keeping everything
// else fixed so that differences come from the queue order alone.
func Compare(base *sim.Scenario, policies []string) (*Comparison, error) {
	results := make([]*Result, 0, len(policies))
	for _, name := range policies {
		sc := *base
		sc.Policy.Name = name
		result, err := Run(&sc)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		results = append(results, result)
	}
	return &Comparison{Results: results}, nil
}

// Best returns the result with the lowest mean step count, or nil for an
// empty comparison.
func (c *Comparison) Best() *Result {
	var best *Result
	for _, r := range c.Results {
		if best == nil || r.Steps.Mean < best.Steps.Mean {
			best = r
		}
	}
	return best
}

// String renders the comparison as a table, one policy per row.
func (c *Comparison) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %12s %12s %12s %12s\n", "policy", "steps(mean)", "stops(mean)", "shuffles", "seated")
	for _, r := range c.Results {
		fmt.Fprintf(&b, "%-20s %12.1f %12.1f %12.1f %12.0f\n",
			r.Policy, r.Steps.Mean, r.Stops.Mean, r.Shuffles.Mean, r.Seated.Mean)
	}
	return b.String()
}
