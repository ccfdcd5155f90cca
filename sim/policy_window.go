// Window-middle-aisle boarding (airlines call it WILMA): all window seats
// board first, then middles, then aisles, so nobody seated ever has to stand
// up for a rowmate.

package sim

import (
	"math/rand"
)

// WindowMiddleAisle forms one boarding group per seat column, ordered
// outside-in: both window columns, then both middle columns, working inward
// to the aisle columns. Within a column the order is randomized when
// shuffleGroups is set, roster order otherwise.
type WindowMiddleAisle struct {
	shuffleGroups bool
}

func (p *WindowMiddleAisle) Name() string { return "window-middle-aisle" }

func (p *WindowMiddleAisle) Order(roster []*Passenger, rng *rand.Rand) []*Passenger {
	groups := make([][]*Passenger, 0)
	for _, col := range outsideInCols(distinctCols(roster)) {
		groups = append(groups, filterByCol(roster, col))
	}
	if p.shuffleGroups {
		shuffleEachGroup(groups, rng)
	}
	return flattenGroups(groups)
}

// outsideInCols reorders ascending column indices by alternating between the
// two ends: leftmost, rightmost, second-left, second-right, ... For an even
// cabin this walks the classes window, middle, aisle exactly.
func outsideInCols(cols []int) []int {
	ordered := make([]int, 0, len(cols))
	lo, hi := 0, len(cols)-1
	for lo <= hi {
		ordered = append(ordered, cols[lo])
		if lo != hi {
			ordered = append(ordered, cols[hi])
		}
		lo++
		hi--
	}
	return ordered
}
