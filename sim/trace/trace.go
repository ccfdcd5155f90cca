package trace

// TraceLevel controls the verbosity of run tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps captures every step and every seating event.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSteps: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// BoardingTrace collects step and seating records during a boarding run.
type BoardingTrace struct {
	Steps    []StepRecord
	Seatings []SeatingRecord
}

// NewBoardingTrace creates a BoardingTrace ready for recording.
func NewBoardingTrace() *BoardingTrace {
	return &BoardingTrace{
		Steps:    make([]StepRecord, 0),
		Seatings: make([]SeatingRecord, 0),
	}
}

// RecordStep appends a step record.
func (bt *BoardingTrace) RecordStep(record StepRecord) {
	bt.Steps = append(bt.Steps, record)
}

// RecordSeating appends a seating record.
func (bt *BoardingTrace) RecordSeating(record SeatingRecord) {
	bt.Seatings = append(bt.Seatings, record)
}
