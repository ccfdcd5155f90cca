// Tracks boarding-wide counters for final reporting.

package sim

import (
	"encoding/json"
	"fmt"
)

// Metrics aggregates statistics about a boarding run
// for final reporting. Useful for comparing queueing policies
// and debugging behavior over time.
type Metrics struct {
	SeatedPerStep    []int // Number of passengers seated at each step
	ShuffleEvents    int   // Seatings that forced at least one seated passenger to stand
	PassengersSeated int   // Total number of passengers seated so far
	Boarded          int   // Total number of passengers admitted from the queue
}

// NewMetrics returns an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		SeatedPerStep: make([]int, 0),
	}
}

// RecordSeating accounts for one passenger sitting down. A seating that
// forced any positive number of already-seated passengers to stand counts as
// a single shuffle event.
func (m *Metrics) RecordSeating(shuffles int) {
	m.PassengersSeated++
	m.ShuffleEvents += min(1, shuffles)
}

// RecordStep closes out a step, recording how many passengers sat down
// during it.
func (m *Metrics) RecordStep(seated int) {
	m.SeatedPerStep = append(m.SeatedPerStep, seated)
}

// Stops counts the steps during which at least one passenger sat down: each
// one is a step where the line in the aisle held while somebody stowed their
// bag and took their seat.
func (m *Metrics) Stops() int {
	stops := 0
	for _, seated := range m.SeatedPerStep {
		if seated > 0 {
			stops++
		}
	}
	return stops
}

// Report freezes the counters into the final run summary.
func (m *Metrics) Report() Report {
	return Report{
		Steps:            len(m.SeatedPerStep),
		Stops:            m.Stops(),
		Shuffles:         m.ShuffleEvents,
		PassengersSeated: m.PassengersSeated,
	}
}

// Report is the outcome of one boarding run.
type Report struct {
	// Steps is the number of ticks the boarding took.
	Steps int `json:"steps" yaml:"steps"`
	// Stops is the number of steps during which at least one passenger
	// sat down.
	Stops int `json:"stops" yaml:"stops"`
	// Shuffles is the number of seating events that forced seated
	// passengers back into the aisle.
	Shuffles int `json:"shuffles" yaml:"shuffles"`
	// PassengersSeated is how many passengers ended up in their seats.
	PassengersSeated int `json:"passengers_seated" yaml:"passengers_seated"`
}

// Print displays the report at the end of a run.
func (r Report) Print() {
	fmt.Println("=== Boarding Report ===")
	fmt.Printf("Steps              : %d\n", r.Steps)
	fmt.Printf("Stops              : %d\n", r.Stops)
	fmt.Printf("Shuffles           : %d\n", r.Shuffles)
	fmt.Printf("Passengers Seated  : %d\n", r.PassengersSeated)
}

// JSON renders the report as a single JSON object.
func (r Report) JSON() (string, error) {
	out, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return string(out), nil
}
