// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/boarding-sim/boarding-sim/sim/trace"
)

// DefaultMaxSteps caps a run when the caller does not supply a limit. It is
// a guard against non-terminating configurations (e.g. a queue built from a
// different layout than the seat map), not a tuning knob.
const DefaultMaxSteps = 1000

// Config carries the engine parameters that are not the layout or the queue.
type Config struct {
	// MaxSteps is the iteration cap; 0 means DefaultMaxSteps.
	MaxSteps int
	// Trace, when non-nil, receives a per-step record stream.
	Trace *trace.BoardingTrace
}

// Simulator is the core object that holds the seat map, the boarding queue,
// and the step loop. One step: every walking passenger advances one row
// (arrivals sit down and the shuffle accounting runs), then exactly one new
// passenger boards from the queue, then the step counter increments.
//
// A Simulator owns its seat map and roster exclusively and is not safe for
// concurrent use; run one simulation per Simulator.
type Simulator struct {
	Layout  *SeatLayout
	SeatMap *SeatMap
	Queue   *BoardingQueue
	// Onboard holds the passengers walking the aisle: boarded, not yet
	// seated. Seated passengers are filtered out at the end of each step.
	Onboard   []*Passenger
	Metrics   *Metrics
	MaxSteps  int
	StepCount int

	traceSink *trace.BoardingTrace
}

// NewSimulator wires a simulation run together. The queue must have been
// built from the same layout's roster; the seat map starts empty.
func NewSimulator(layout *SeatLayout, queue *BoardingQueue, cfg Config) *Simulator {
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Simulator{
		Layout:    layout,
		SeatMap:   NewSeatMap(layout),
		Queue:     queue,
		Onboard:   make([]*Passenger, 0),
		Metrics:   NewMetrics(),
		MaxSteps:  maxSteps,
		traceSink: cfg.Trace,
	}
}

// Step advances simulated time by one tick:
//  1. every walking passenger moves one row; a passenger standing at its row
//     is seated, contributing min(1, required shuffles) to the shuffle-event
//     counter (one disruption event per seating, however many people stood)
//  2. at most one passenger boards from the queue; an exhausted queue is
//     skipped, the walkers already in the aisle keep going
//  3. the step counter increments
//
// The only error is ErrDoubleSeating, which aborts the run.
func (s *Simulator) Step() error {
	seatedThisStep := 0

	remaining := make([]*Passenger, 0, len(s.Onboard))
	for _, p := range s.Onboard {
		p.Advance()
		if !p.HasArrived() {
			remaining = append(remaining, p)
			continue
		}
		shuffles, err := s.SeatMap.Seat(p.Row, p.Col)
		if err != nil {
			return fmt.Errorf("step %d: seating %v: %w", s.StepCount, p, err)
		}
		p.sit()
		s.Metrics.RecordSeating(shuffles)
		seatedThisStep++
		logrus.Debugf("[step %04d] seated %d/%d (%s) after %d shuffles", s.StepCount, p.Row, p.Col, p.Class, shuffles)
		if s.traceSink != nil {
			s.traceSink.RecordSeating(trace.SeatingRecord{
				Step:     s.StepCount,
				Row:      p.Row,
				Col:      p.Col,
				Shuffles: shuffles,
			})
		}
	}
	s.Onboard = remaining

	// board a new passenger until the queue runs out
	next, err := s.Queue.Pop()
	if err == nil {
		next.Board()
		s.Onboard = append(s.Onboard, next)
		s.Metrics.Boarded++
		logrus.Debugf("[step %04d] boarded %d/%d (%s)", s.StepCount, next.Row, next.Col, next.Class)
	}

	s.StepCount++
	s.Metrics.RecordStep(seatedThisStep)
	if s.traceSink != nil {
		s.traceSink.RecordStep(trace.StepRecord{
			Step:        s.StepCount - 1,
			Boarded:     err == nil,
			SeatedCount: seatedThisStep,
			Walking:     len(s.Onboard),
		})
	}
	return nil
}

// Run steps the simulation until the seat map is full or MaxSteps is
// reached, then returns the final report. Stopping at MaxSteps is a normal
// termination; the report reflects the partial boarding. The only error is
// ErrDoubleSeating bubbling up from a buggy queue.
func (s *Simulator) Run() (Report, error) {
	logrus.Infof("Starting boarding simulation: %v, %d queued, max %d steps", s.Layout, s.Queue.Len(), s.MaxSteps)
	for !s.SeatMap.IsFull() && s.StepCount < s.MaxSteps {
		if err := s.Step(); err != nil {
			return Report{}, err
		}
	}
	report := s.Metrics.Report()
	logrus.Infof("[step %04d] boarding ended: %d seated, %d stops, %d shuffle events",
		s.StepCount, report.PassengersSeated, report.Stops, report.Shuffles)
	return report, nil
}
