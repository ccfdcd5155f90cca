// Package sim provides the core step-driven simulation engine for
// boarding-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - passenger.go: Passenger lifecycle (unboarded → walking → seated) and state machine
//   - seatmap.go: Seat occupancy and the shuffle count for a blocked seat
//   - simulator.go: The step loop, arrival seating, and queue admission
//
// # Architecture
//
// The sim package holds the cabin model, the queueing policies, and the
// engine; supporting concerns live in sub-packages:
//   - sim/trace/: per-step and per-seating record streams
//   - sim/experiment/: replicated runs and policy comparison statistics
//
// A run is assembled in three stages: a SeatLayout yields the full roster of
// passengers via NewRoster, a QueuePolicy orders that roster into a
// BoardingQueue, and the Simulator consumes the queue one passenger per step
// until the SeatMap is full.
//
// # Key Interfaces
//
// The extension point is a single small interface:
//   - QueuePolicy: order a roster of passengers into a boarding sequence
//
// Implementations register themselves in ValidQueuePolicies and are built by
// name through NewQueuePolicy.
package sim
