// Implements the SeatMap, the mutable occupancy grid the engine seats
// passengers into. Owns the seat-shuffle accounting: when a passenger heads
// for a seat, everyone already seated between the aisle and that seat has to
// stand up to let them pass.

package sim

import (
	"fmt"
	"strings"
)

// SeatMap tracks which cells of the cabin are occupied. Cells start empty
// and flip to occupied exactly once; the map never un-seats a passenger for
// the lifetime of the simulation.
type SeatMap struct {
	layout   *SeatLayout
	occupied [][]bool
	seated   int
}

// NewSeatMap creates an all-empty occupancy grid for the given layout.
func NewSeatMap(layout *SeatLayout) *SeatMap {
	grid := make([][]bool, layout.Rows)
	for row := range grid {
		grid[row] = make([]bool, layout.SeatsPerRow)
	}
	return &SeatMap{layout: layout, occupied: grid}
}

// Layout returns the geometry this map was built for.
func (m *SeatMap) Layout() *SeatLayout {
	return m.layout
}

// IsFull reports whether every cell is occupied.
func (m *SeatMap) IsFull() bool {
	return m.seated == m.layout.SeatCount()
}

// SeatedCount returns the number of occupied cells.
func (m *SeatMap) SeatedCount() int {
	return m.seated
}

// Occupied reports whether the given cell is occupied.
func (m *SeatMap) Occupied(row, col int) bool {
	m.checkBounds(row, col)
	return m.occupied[row][col]
}

// RequiredShuffles counts the passengers already seated strictly between the
// aisle gap and the target seat on the target's side of the row: everyone
// who has to stand up for the incoming passenger to slide past. The target
// cell itself never counts; an aisle-adjacent seat always needs 0.
//
// Columns within a row fill in arbitrary order, so this is computed fresh
// per seating instead of assuming a window-to-aisle fill direction.
func (m *SeatMap) RequiredShuffles(row, col int) int {
	m.checkBounds(row, col)
	aisle := m.layout.Aisle()
	blockers := 0
	if col < aisle {
		// left side: the passenger walks in from the aisle gap leftward
		for c := col + 1; c < aisle; c++ {
			if m.occupied[row][c] {
				blockers++
			}
		}
	} else {
		// right side: symmetric, walking rightward from the gap
		for c := aisle; c < col; c++ {
			if m.occupied[row][c] {
				blockers++
			}
		}
	}
	return blockers
}

// Seat marks the cell occupied and returns the shuffle count computed before
// the mutation. Seating an occupied cell returns ErrDoubleSeating and leaves
// the map unchanged.
func (m *SeatMap) Seat(row, col int) (int, error) {
	m.checkBounds(row, col)
	if m.occupied[row][col] {
		return 0, fmt.Errorf("%w: row %d col %d", ErrDoubleSeating, row, col)
	}
	shuffles := m.RequiredShuffles(row, col)
	m.occupied[row][col] = true
	m.seated++
	return shuffles, nil
}

// String renders the occupancy grid one row per line, 'X' for occupied,
// '.' for empty, with a '|' marking the aisle gap.
func (m *SeatMap) String() string {
	aisle := m.layout.Aisle()
	var sb strings.Builder
	for row := 0; row < m.layout.Rows; row++ {
		for col := 0; col < m.layout.SeatsPerRow; col++ {
			if col == aisle {
				sb.WriteByte('|')
			}
			if m.occupied[row][col] {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		if row < m.layout.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m *SeatMap) checkBounds(row, col int) {
	if row < 0 || row >= m.layout.Rows || col < 0 || col >= m.layout.SeatsPerRow {
		panic(fmt.Sprintf("seat map: cell (%d,%d) out of range for %v", row, col, m.layout))
	}
}
