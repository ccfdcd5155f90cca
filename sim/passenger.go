// Defines the Passenger struct that models an individual traveler in the
// simulation. Tracks the assigned seat, the walk down the aisle, and the
// unboarded -> walking -> seated lifecycle.

package sim

import (
	"fmt"
)

// BoardingState represents the lifecycle state of a passenger.
type BoardingState string

const (
	StateUnboarded BoardingState = "unboarded"
	StateWalking   BoardingState = "walking"
	StateSeated    BoardingState = "seated"
)

// Passenger models a single traveler. Identity is the assigned (Row, Col)
// seat and never changes; the mutable part is the position in the aisle,
// which only the simulation engine advances.
type Passenger struct {
	Row   int       // assigned row
	Col   int       // assigned physical column
	Class SeatClass // class of the assigned column

	state      BoardingState
	currentRow int // aisle position; meaningful only while walking or seated
}

// NewPassenger creates an unboarded passenger for the given seat.
func NewPassenger(row, col int, class SeatClass) *Passenger {
	return &Passenger{
		Row:   row,
		Col:   col,
		Class: class,
		state: StateUnboarded,
	}
}

// State returns the passenger's lifecycle state.
func (p *Passenger) State() BoardingState {
	return p.state
}

// CurrentRow returns the passenger's position in the aisle. It is -1 right
// after boarding (about to enter row 0) and undefined before boarding.
func (p *Passenger) CurrentRow() int {
	return p.currentRow
}

// Board puts the passenger at the front of the aisle, one move short of
// row 0. Boarding a passenger that is already walking or seated is a no-op.
func (p *Passenger) Board() {
	if p.state != StateUnboarded {
		return
	}
	p.state = StateWalking
	p.currentRow = -1
}

// Advance moves the passenger forward one row. Only walking passengers move;
// calling Advance on an unboarded or seated passenger is a silent no-op.
func (p *Passenger) Advance() {
	if p.state != StateWalking {
		return
	}
	p.currentRow++
}

// HasArrived reports whether the passenger is standing at the assigned row
// and should be seated this step.
func (p *Passenger) HasArrived() bool {
	return p.state == StateWalking && p.currentRow == p.Row
}

// sit transitions walking -> seated. Terminal; only the engine calls this,
// right after the seat map accepts the passenger.
func (p *Passenger) sit() {
	if p.state != StateWalking {
		panic(fmt.Sprintf("sit: passenger %v is %s, not walking", p, p.state))
	}
	p.state = StateSeated
}

// Less orders passengers by (row, seat class rank, column): the canonical
// key the sort-based queue policies feed to a stable sort. Window seats sort
// before middle seats, middle before aisle.
func (p *Passenger) Less(q *Passenger) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	if p.Class.Rank() != q.Class.Rank() {
		return p.Class.Rank() < q.Class.Rank()
	}
	return p.Col < q.Col
}

// String returns a human-readable representation of the passenger.
func (p *Passenger) String() string {
	switch p.state {
	case StateWalking:
		return fmt.Sprintf("Passenger(seat=%d/%d %s, walking at row %d)", p.Row, p.Col, p.Class, p.currentRow)
	default:
		return fmt.Sprintf("Passenger(seat=%d/%d %s, %s)", p.Row, p.Col, p.Class, p.state)
	}
}
