package sim

import "errors"

// Sentinel errors for the three failure kinds the boarding model can surface.
// Callers distinguish them with errors.Is; everything else in the engine is
// either a normal termination or a programmer error (which panics).
var (
	// ErrInvalidLayout reports an unusable cabin geometry (non-positive row
	// count, or a seats-per-row value that is odd or below 2).
	ErrInvalidLayout = errors.New("invalid seat layout")

	// ErrDoubleSeating reports an attempt to seat a passenger in an occupied
	// cell. The seat map never un-seats, so this always indicates a queue or
	// engine bug, and the simulation run that hits it is aborted.
	ErrDoubleSeating = errors.New("seat already occupied")

	// ErrExhausted signals that the boarding queue is empty. It is a normal
	// end-of-input marker, not a failure: the engine keeps stepping with the
	// passengers already in the aisle.
	ErrExhausted = errors.New("boarding queue exhausted")
)
