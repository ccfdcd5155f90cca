package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordSeatingCapsShuffleEvents(t *testing.T) {
	// a seating with N>0 stand-ups counts as one shuffle event, not N
	m := NewMetrics()

	m.RecordSeating(0)
	m.RecordSeating(3)
	m.RecordSeating(1)

	if m.PassengersSeated != 3 {
		t.Errorf("PassengersSeated: got %d, want 3", m.PassengersSeated)
	}
	if m.ShuffleEvents != 2 {
		t.Errorf("ShuffleEvents: got %d, want 2", m.ShuffleEvents)
	}
}

func TestMetrics_StopsCountsSeatingSteps(t *testing.T) {
	// a stop is a step where at least one passenger sat down
	m := NewMetrics()
	for _, seated := range []int{0, 1, 0, 2, 0} {
		m.RecordStep(seated)
	}

	if got := m.Stops(); got != 2 {
		t.Errorf("Stops: got %d, want 2", got)
	}
}

func TestMetrics_ReportSnapshotsCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordStep(0)
	m.RecordSeating(2)
	m.RecordStep(1)
	m.RecordSeating(0)
	m.RecordStep(1)

	report := m.Report()
	want := Report{Steps: 3, Stops: 2, Shuffles: 1, PassengersSeated: 2}
	assert.Equal(t, want, report)
}

func TestReport_JSONUsesSnakeCaseKeys(t *testing.T) {
	report := Report{Steps: 10, Stops: 8, Shuffles: 0, PassengersSeated: 8}

	out, err := report.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	want := `{"steps":10,"stops":8,"shuffles":0,"passengers_seated":8}`
	if out != want {
		t.Errorf("JSON:\ngot  %s\nwant %s", out, want)
	}
}
