package sim

import (
	"fmt"
	"testing"
)

// mustLayout builds a layout or fails the test. Most tests want the geometry
// as a given, not as a thing under test.
func mustLayout(t *testing.T, rows, seatsPerRow int) *SeatLayout {
	t.Helper()
	layout, err := NewSeatLayout(rows, seatsPerRow)
	if err != nil {
		t.Fatalf("NewSeatLayout(%d, %d): %v", rows, seatsPerRow, err)
	}
	return layout
}

// seatKey renders a passenger's assigned seat as "row/col" for compact
// order comparisons.
func seatKey(p *Passenger) string {
	return fmt.Sprintf("%d/%d", p.Row, p.Col)
}

// seatKeys maps seatKey over a boarding order.
func seatKeys(order []*Passenger) []string {
	keys := make([]string, len(order))
	for i, p := range order {
		keys[i] = seatKey(p)
	}
	return keys
}

// seatMultiset counts each assigned seat in the order, for permutation checks
// that do not care about position.
func seatMultiset(order []*Passenger) map[string]int {
	set := make(map[string]int, len(order))
	for _, p := range order {
		set[seatKey(p)]++
	}
	return set
}
