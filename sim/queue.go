// Implements the BoardingQueue, which holds the policy-ordered passengers
// who have not yet stepped onto the plane. The engine consumes it strictly
// front to back, one passenger per step.

package sim

import (
	"fmt"
	"strings"
)

// BoardingQueue is the ordered sequence of not-yet-boarded passengers.
// It is built once from a policy-ordered roster and never rebuilt; the only
// mutation is popping the front.
type BoardingQueue struct {
	passengers []*Passenger
}

// NewBoardingQueue wraps an already-ordered passenger list. The queue takes
// ownership of the slice.
func NewBoardingQueue(ordered []*Passenger) *BoardingQueue {
	return &BoardingQueue{passengers: ordered}
}

// Pop removes and returns the passenger at the front of the queue.
// An empty queue returns ErrExhausted, the normal no-more-passengers signal.
func (q *BoardingQueue) Pop() (*Passenger, error) {
	if len(q.passengers) == 0 {
		return nil, ErrExhausted
	}
	next := q.passengers[0]
	q.passengers = q.passengers[1:]
	return next, nil
}

// Peek returns the front passenger without removing it, or nil when empty.
func (q *BoardingQueue) Peek() *Passenger {
	if len(q.passengers) == 0 {
		return nil
	}
	return q.passengers[0]
}

// Len returns the number of passengers still waiting to board.
func (q *BoardingQueue) Len() int {
	return len(q.passengers)
}

func (q *BoardingQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.passengers {
		sb.WriteString(fmt.Sprintf("%d/%d", p.Row, p.Col))
		if i < len(q.passengers)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
