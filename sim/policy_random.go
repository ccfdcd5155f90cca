// The unmanaged boarding policy: no groups, no announcements, everyone in
// one uniformly shuffled line.

package sim

import (
	"math/rand"
)

// RandomOrder boards the full roster in a uniformly random order.
type RandomOrder struct{}

func (p *RandomOrder) Name() string { return "random" }

func (p *RandomOrder) Order(roster []*Passenger, rng *rand.Rand) []*Passenger {
	ordered := append([]*Passenger(nil), roster...)
	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}
