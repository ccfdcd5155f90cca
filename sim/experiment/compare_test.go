package experiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boarding-sim/boarding-sim/sim"
)

func TestCompare_RunsEveryPolicy(t *testing.T) {
	base := testScenario("random", 3)

	comparison, err := Compare(base, sim.PolicyNames())
	require.NoError(t, err)

	require.Len(t, comparison.Results, len(sim.PolicyNames()))
	for i, name := range sim.PolicyNames() {
		assert.Equal(t, name, comparison.Results[i].Policy)
		// every policy fills the same 2x4 cabin
		assert.Equal(t, 8.0, comparison.Results[i].Seated.Mean)
	}
}

func TestCompare_DoesNotMutateBaseScenario(t *testing.T) {
	base := testScenario("random", 2)

	_, err := Compare(base, []string{"front-to-back", "back-to-front"})
	require.NoError(t, err)

	assert.Equal(t, "random", base.Policy.Name)
}

func TestCompare_UnknownPolicyFails(t *testing.T) {
	_, err := Compare(testScenario("random", 1), []string{"front-to-back", "gate-lice"})
	assert.Error(t, err)
}

func TestComparison_BestPicksLowestMeanSteps(t *testing.T) {
	c := &Comparison{Results: []*Result{
		{Policy: "slow", Steps: Stats{Mean: 120}},
		{Policy: "fast", Steps: Stats{Mean: 80}},
		{Policy: "middling", Steps: Stats{Mean: 100}},
	}}

	best := c.Best()
	require.NotNil(t, best)
	assert.Equal(t, "fast", best.Policy)
}

func TestComparison_BestOnEmptyIsNil(t *testing.T) {
	c := &Comparison{}
	assert.Nil(t, c.Best())
}

func TestComparison_StringRendersTable(t *testing.T) {
	c := &Comparison{Results: []*Result{
		{Policy: "steffen-perfect", Steps: Stats{Mean: 80.5}, Seated: Stats{Mean: 180}},
	}}

	table := c.String()
	assert.True(t, strings.Contains(table, "policy"), "missing header: %q", table)
	assert.True(t, strings.Contains(table, "steffen-perfect"), "missing policy row: %q", table)
	assert.True(t, strings.Contains(table, "80.5"), "missing steps mean: %q", table)
}
