// Row-ordered queue policies: front-to-back and back-to-front, the two
// group-boarding schemes most airlines actually announce at the gate.

package sim

import (
	"math/rand"
)

// FrontToBack sorts the roster by ascending row, slices it into contiguous
// boarding groups, and optionally shuffles within each group. With the
// default of one group per row, it models "rows 1-5 may now board".
type FrontToBack struct {
	opts PolicyOptions
}

func (p *FrontToBack) Name() string { return "front-to-back" }

func (p *FrontToBack) Order(roster []*Passenger, rng *rand.Rand) []*Passenger {
	return orderByRows(roster, rng, p.opts, true)
}

// BackToFront is FrontToBack with the row sort reversed: rear rows board
// first so nobody walks past an already-busy row.
type BackToFront struct {
	opts PolicyOptions
}

func (p *BackToFront) Name() string { return "back-to-front" }

func (p *BackToFront) Order(roster []*Passenger, rng *rand.Rand) []*Passenger {
	return orderByRows(roster, rng, p.opts, false)
}

func orderByRows(roster []*Passenger, rng *rand.Rand, opts PolicyOptions, ascending bool) []*Passenger {
	ordered := sortedBySeat(roster, ascending)
	n := opts.Groups
	if n <= 0 {
		n = distinctRows(roster)
	}
	groups := chunkGroups(ordered, n)
	if opts.ShuffleGroups {
		shuffleEachGroup(groups, rng)
	}
	return flattenGroups(groups)
}
