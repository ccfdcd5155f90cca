// QueuePolicy is the strategy family that turns the seat-layout roster into
// a boarding order. Policies only decide selection order; once the engine
// boards a passenger, the policy is out of the picture.

package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// QueuePolicy produces a boarding order from the full passenger roster.
// Order must return a fresh slice (a permutation of roster) and leave the
// input untouched; rng drives any intra-group shuffling the policy does.
// Implementations must be deterministic given the same roster and rng state.
type QueuePolicy interface {
	Name() string
	Order(roster []*Passenger, rng *rand.Rand) []*Passenger
}

// PolicyOptions carries the knobs shared by the grouped policies. Policies
// that the boarding method fully determines (random, steffen-perfect) ignore
// them.
type PolicyOptions struct {
	// Groups is the number of boarding groups for front-to-back and
	// back-to-front; 0 means one group per row.
	Groups int
	// ShuffleGroups randomizes the order within each boarding group.
	ShuffleGroups bool
}

// DefaultPolicyOptions matches the airline-realistic default: one boarding
// group per row, passengers within a group in no particular order.
func DefaultPolicyOptions() PolicyOptions {
	return PolicyOptions{Groups: 0, ShuffleGroups: true}
}

// ValidQueuePolicies is the set of recognized queue policy names.
// Shared by NewQueuePolicy and scenario validation to avoid duplication.
var ValidQueuePolicies = map[string]bool{
	"front-to-back":       true,
	"back-to-front":       true,
	"random":              true,
	"window-middle-aisle": true,
	"steffen-perfect":     true,
	"steffen-modified":    true,
}

// IsValidQueuePolicy returns true if name is a recognized queue policy.
func IsValidQueuePolicy(name string) bool {
	return ValidQueuePolicies[name]
}

// PolicyNames returns the recognized policy names in sorted order,
// for CLI help text and policy comparisons.
func PolicyNames() []string {
	names := make([]string, 0, len(ValidQueuePolicies))
	for name := range ValidQueuePolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewQueuePolicy creates a queue policy by name.
// Valid names are defined in ValidQueuePolicies.
// Panics on unrecognized names; validate scenario input first.
func NewQueuePolicy(name string, opts PolicyOptions) QueuePolicy {
	if !IsValidQueuePolicy(name) {
		panic(fmt.Sprintf("unknown queue policy %q", name))
	}
	switch name {
	case "front-to-back":
		return &FrontToBack{opts: opts}
	case "back-to-front":
		return &BackToFront{opts: opts}
	case "random":
		return &RandomOrder{}
	case "window-middle-aisle":
		return &WindowMiddleAisle{shuffleGroups: opts.ShuffleGroups}
	case "steffen-perfect":
		return &Steffen{Mode: SteffenPerfect}
	case "steffen-modified":
		return &Steffen{Mode: SteffenModified, shuffleGroups: opts.ShuffleGroups}
	default:
		panic(fmt.Sprintf("unhandled queue policy %q", name))
	}
}

// sortedBySeat returns a copy of roster in ascending (row, class rank, col)
// order. ascendingRows=false flips the row comparison only; class and column
// tie-breaking stay ascending so the order is deterministic either way.
func sortedBySeat(roster []*Passenger, ascendingRows bool) []*Passenger {
	ordered := append([]*Passenger(nil), roster...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Row != ordered[j].Row {
			if ascendingRows {
				return ordered[i].Row < ordered[j].Row
			}
			return ordered[i].Row > ordered[j].Row
		}
		if ordered[i].Class.Rank() != ordered[j].Class.Rank() {
			return ordered[i].Class.Rank() < ordered[j].Class.Rank()
		}
		return ordered[i].Col < ordered[j].Col
	})
	return ordered
}

// distinctRows counts the distinct row indices present in the roster.
func distinctRows(roster []*Passenger) int {
	rows := map[int]bool{}
	for _, p := range roster {
		rows[p.Row] = true
	}
	return len(rows)
}

// distinctCols returns the distinct column indices present in the roster,
// ascending.
func distinctCols(roster []*Passenger) []int {
	seen := map[int]bool{}
	for _, p := range roster {
		seen[p.Col] = true
	}
	cols := make([]int, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	return cols
}

// filterByCol returns the roster members assigned to column col, in roster
// order.
func filterByCol(roster []*Passenger, col int) []*Passenger {
	var group []*Passenger
	for _, p := range roster {
		if p.Col == col {
			group = append(group, p)
		}
	}
	return group
}
