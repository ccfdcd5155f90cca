// Defines the cabin geometry: rows, seat columns, the aisle split, and the
// window/middle/aisle classification every queue policy keys off.

package sim

import (
	"fmt"
)

// SeatClass labels a seat column by its position relative to the aisle.
type SeatClass string

const (
	ClassWindow SeatClass = "window"
	ClassMiddle SeatClass = "middle"
	ClassAisle  SeatClass = "aisle"
)

// Rank orders seat classes window < middle < aisle, the order in which
// sort-based queue policies prefer to board them.
func (c SeatClass) Rank() int {
	switch c {
	case ClassWindow:
		return 0
	case ClassMiddle:
		return 1
	case ClassAisle:
		return 2
	default:
		panic(fmt.Sprintf("unknown seat class %q", string(c)))
	}
}

// Seat is one cell of the cabin: a row, a physical column index
// (0 = leftmost window, SeatsPerRow-1 = rightmost window), and the
// column's class.
type Seat struct {
	Row   int
	Col   int
	Class SeatClass
}

// SeatLayout describes the cabin geometry. Columns are numbered physically,
// left to right; the aisle gap sits between columns Aisle()-1 and Aisle().
//
// Classification over physical columns:
//   - window: columns 0 and SeatsPerRow-1
//   - aisle:  the two columns adjacent to the aisle gap
//   - middle: everything else
//
// Window takes precedence over aisle so the classes stay pairwise disjoint
// even in the degenerate 2-seats-per-row cabin, where the only seat on each
// side is both at the window and next to the aisle.
type SeatLayout struct {
	Rows        int
	SeatsPerRow int

	// cached enumeration, built once by NewSeatLayout
	seats []Seat
}

// NewSeatLayout validates the geometry and precomputes the seat enumeration.
// Rows must be positive; SeatsPerRow must be even and at least 2.
func NewSeatLayout(rows, seatsPerRow int) (*SeatLayout, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidLayout, rows)
	}
	if seatsPerRow < 2 {
		return nil, fmt.Errorf("%w: seats per row must be at least 2, got %d", ErrInvalidLayout, seatsPerRow)
	}
	if seatsPerRow%2 != 0 {
		return nil, fmt.Errorf("%w: seats per row must be even, got %d", ErrInvalidLayout, seatsPerRow)
	}

	l := &SeatLayout{Rows: rows, SeatsPerRow: seatsPerRow}
	l.seats = make([]Seat, 0, rows*seatsPerRow)
	for row := 0; row < rows; row++ {
		for col := 0; col < seatsPerRow; col++ {
			l.seats = append(l.seats, Seat{Row: row, Col: col, Class: l.Classify(col)})
		}
	}
	return l, nil
}

// Aisle returns the aisle index: the first column on the right side of the
// aisle gap.
func (l *SeatLayout) Aisle() int {
	return l.SeatsPerRow / 2
}

// Classify returns the class of a physical column index.
func (l *SeatLayout) Classify(col int) SeatClass {
	if col < 0 || col >= l.SeatsPerRow {
		panic(fmt.Sprintf("Classify: column %d out of range [0,%d)", col, l.SeatsPerRow))
	}
	aisle := l.Aisle()
	switch {
	case col == 0 || col == l.SeatsPerRow-1:
		return ClassWindow
	case col == aisle-1 || col == aisle:
		return ClassAisle
	default:
		return ClassMiddle
	}
}

// Seats returns every seat in boarding-chart order: row-major, ascending row,
// ascending column within a row. The slice is computed once at construction;
// callers must not modify it.
func (l *SeatLayout) Seats() []Seat {
	return l.seats
}

// SeatCount returns the total number of seats in the cabin.
func (l *SeatLayout) SeatCount() int {
	return l.Rows * l.SeatsPerRow
}

// WindowCols returns the window column indices in ascending order.
func (l *SeatLayout) WindowCols() []int {
	return l.colsOfClass(ClassWindow)
}

// MiddleCols returns the middle column indices in ascending order.
func (l *SeatLayout) MiddleCols() []int {
	return l.colsOfClass(ClassMiddle)
}

// AisleCols returns the aisle column indices in ascending order.
func (l *SeatLayout) AisleCols() []int {
	return l.colsOfClass(ClassAisle)
}

func (l *SeatLayout) colsOfClass(class SeatClass) []int {
	cols := []int{}
	for col := 0; col < l.SeatsPerRow; col++ {
		if l.Classify(col) == class {
			cols = append(cols, col)
		}
	}
	return cols
}

func (l *SeatLayout) String() string {
	return fmt.Sprintf("SeatLayout(rows=%d, seats_per_row=%d, aisle=%d)", l.Rows, l.SeatsPerRow, l.Aisle())
}

// NewRoster creates one Passenger per seat, in Seats() order. This is the
// full passenger list queue policies reorder into a boarding order.
func NewRoster(layout *SeatLayout) []*Passenger {
	roster := make([]*Passenger, 0, layout.SeatCount())
	for _, seat := range layout.Seats() {
		roster = append(roster, NewPassenger(seat.Row, seat.Col, seat.Class))
	}
	return roster
}
