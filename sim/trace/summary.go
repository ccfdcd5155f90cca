package trace

// TraceSummary aggregates statistics from a BoardingTrace.
type TraceSummary struct {
	TotalSteps       int
	IdleSteps        int // steps during which nobody sat down
	PeakWalking      int // most passengers simultaneously in the aisle
	TotalSeatings    int
	ShuffledSeatings int         // seatings that forced seated passengers to stand
	MeanShuffles     float64     // average stand-ups per seating
	RowDistribution  map[int]int // row → count of seatings in that row
}

// Summarize computes aggregate statistics from a BoardingTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(bt *BoardingTrace) *TraceSummary {
	summary := &TraceSummary{
		RowDistribution: make(map[int]int),
	}
	if bt == nil {
		return summary
	}

	summary.TotalSteps = len(bt.Steps)
	for _, s := range bt.Steps {
		if s.SeatedCount == 0 {
			summary.IdleSteps++
		}
		if s.Walking > summary.PeakWalking {
			summary.PeakWalking = s.Walking
		}
	}

	if len(bt.Seatings) > 0 {
		totalShuffles := 0
		for _, s := range bt.Seatings {
			summary.RowDistribution[s.Row]++
			totalShuffles += s.Shuffles
			if s.Shuffles > 0 {
				summary.ShuffledSeatings++
			}
		}
		summary.MeanShuffles = float64(totalShuffles) / float64(len(bt.Seatings))
	}

	summary.TotalSeatings = len(bt.Seatings)

	return summary
}
