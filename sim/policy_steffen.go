// Steffen boarding methods. The perfect variant is the theoretical optimum:
// strict per-passenger ordering by column and descending row. The modified
// variant is the gate-practical approximation: four announced groups split
// by cabin half and row parity, unordered inside.

package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// SteffenMode selects between the two published variants.
type SteffenMode string

const (
	SteffenPerfect  SteffenMode = "perfect"
	SteffenModified SteffenMode = "modified"
)

// Steffen implements both Steffen boarding variants.
//
// Perfect: one group per seat column, columns outside-in (windows first,
// aisles last), each group ordered back row to front row. Fully
// deterministic; shuffling never applies.
//
// Modified: the sorted column indices split into a far half and a near half;
// four groups board in the fixed order far-odd, far-even, near-odd,
// near-even (rows by parity). Order within a group is randomized when
// shuffleGroups is set.
type Steffen struct {
	Mode          SteffenMode
	shuffleGroups bool
}

func (p *Steffen) Name() string {
	return fmt.Sprintf("steffen-%s", string(p.Mode))
}

func (p *Steffen) Order(roster []*Passenger, rng *rand.Rand) []*Passenger {
	switch p.Mode {
	case SteffenPerfect:
		return p.orderPerfect(roster)
	case SteffenModified:
		return p.orderModified(roster, rng)
	default:
		panic(fmt.Sprintf("unknown steffen mode %q", string(p.Mode)))
	}
}

func (p *Steffen) orderPerfect(roster []*Passenger) []*Passenger {
	groups := make([][]*Passenger, 0)
	for _, col := range outsideInCols(distinctCols(roster)) {
		group := filterByCol(roster, col)
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Row > group[j].Row
		})
		groups = append(groups, group)
	}
	return flattenGroups(groups)
}

func (p *Steffen) orderModified(roster []*Passenger, rng *rand.Rand) []*Passenger {
	cols := distinctCols(roster)
	far := colSet(cols[:len(cols)/2])
	near := colSet(cols[len(cols)/2:])

	groups := [][]*Passenger{
		filterByHalfParity(roster, far, 1),
		filterByHalfParity(roster, far, 0),
		filterByHalfParity(roster, near, 1),
		filterByHalfParity(roster, near, 0),
	}
	if p.shuffleGroups {
		shuffleEachGroup(groups, rng)
	}
	return flattenGroups(groups)
}

func colSet(cols []int) map[int]bool {
	set := make(map[int]bool, len(cols))
	for _, col := range cols {
		set[col] = true
	}
	return set
}

// filterByHalfParity returns roster members whose column is in half and
// whose row parity matches (1 = odd rows, 0 = even rows), in roster order.
func filterByHalfParity(roster []*Passenger, half map[int]bool, parity int) []*Passenger {
	var group []*Passenger
	for _, p := range roster {
		if half[p.Col] && p.Row%2 == parity {
			group = append(group, p)
		}
	}
	return group
}
