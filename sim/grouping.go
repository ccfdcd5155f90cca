// Boarding-group helpers shared by the grouped queue policies: split an
// ordered roster into contiguous chunks, shuffle within each chunk, flatten.
// Grouping caps how far intra-group randomness can displace a passenger
// while preserving the group-level ordering the policy chose.

package sim

import (
	"math/rand"
)

// chunkGroups splits ordered into n contiguous boarding groups of
// ceil(len/n) passengers each; the last group may be smaller and trailing
// groups may be empty (they are dropped). n below 1 is treated as 1.
func chunkGroups(ordered []*Passenger, n int) [][]*Passenger {
	if n < 1 {
		n = 1
	}
	perGroup := (len(ordered) + n - 1) / n
	if perGroup == 0 {
		return nil
	}
	groups := make([][]*Passenger, 0, n)
	for start := 0; start < len(ordered); start += perGroup {
		end := min(start+perGroup, len(ordered))
		groups = append(groups, ordered[start:end])
	}
	return groups
}

// shuffleEachGroup randomizes the order within each group in place.
// Group-to-group order is untouched.
func shuffleEachGroup(groups [][]*Passenger, rng *rand.Rand) {
	for _, group := range groups {
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
	}
}

// flattenGroups concatenates the groups back into one boarding order.
func flattenGroups(groups [][]*Passenger) []*Passenger {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	flat := make([]*Passenger, 0, total)
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat
}
