// Package trace provides step-by-step recording for boarding run analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// SeatingRecord captures a single passenger sitting down.
type SeatingRecord struct {
	Step     int
	Row      int
	Col      int
	Shuffles int // seated passengers that had to stand up for this one
}

// StepRecord captures the state of the aisle after one simulation step.
type StepRecord struct {
	Step        int
	Boarded     bool // whether a passenger was admitted from the queue
	SeatedCount int  // passengers that sat down during this step
	Walking     int  // passengers still in the aisle after this step
}
