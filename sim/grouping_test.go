package sim

import (
	"math/rand"
	"testing"
)

func TestChunkGroups_CeilSizedChunks(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		n         int
		wantSizes []int
	}{
		{"even split", 6, 2, []int{3, 3}},
		{"remainder shrinks last group", 8, 3, []int{3, 3, 2}},
		{"one group per passenger", 5, 5, []int{1, 1, 1, 1, 1}},
		{"more groups than passengers", 4, 8, []int{1, 1, 1, 1}},
		{"single group", 4, 1, []int{4}},
		{"non-positive n treated as one group", 4, 0, []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := make([]*Passenger, tt.total)
			for i := range roster {
				roster[i] = NewPassenger(i, 0, ClassWindow)
			}

			groups := chunkGroups(roster, tt.n)
			if len(groups) != len(tt.wantSizes) {
				t.Fatalf("got %d groups, want %d", len(groups), len(tt.wantSizes))
			}
			for i, want := range tt.wantSizes {
				if len(groups[i]) != want {
					t.Errorf("group %d: got %d passengers, want %d", i, len(groups[i]), want)
				}
			}

			// chunks are contiguous slices of the input
			idx := 0
			for gi, group := range groups {
				for pi, p := range group {
					if p != roster[idx] {
						t.Errorf("group %d[%d]: got %v, want roster[%d]", gi, pi, p, idx)
					}
					idx++
				}
			}
		})
	}
}

func TestChunkGroups_EmptyRoster(t *testing.T) {
	if groups := chunkGroups(nil, 3); len(groups) != 0 {
		t.Errorf("chunkGroups(nil, 3): got %d groups, want 0", len(groups))
	}
}

func TestShuffleEachGroup_KeepsGroupMembership(t *testing.T) {
	// GIVEN two groups with known membership
	roster := make([]*Passenger, 8)
	for i := range roster {
		roster[i] = NewPassenger(i, 0, ClassWindow)
	}
	groups := chunkGroups(roster, 2)
	wantFirst := seatMultiset(groups[0])
	wantSecond := seatMultiset(groups[1])

	// WHEN each group is shuffled
	shuffleEachGroup(groups, rand.New(rand.NewSource(7)))

	// THEN no passenger crossed a group boundary
	if got := seatMultiset(groups[0]); len(got) != len(wantFirst) {
		t.Errorf("first group membership changed: got %v, want %v", got, wantFirst)
	} else {
		for key := range wantFirst {
			if got[key] != wantFirst[key] {
				t.Errorf("first group lost %s", key)
			}
		}
	}
	if got := seatMultiset(groups[1]); len(got) != len(wantSecond) {
		t.Errorf("second group membership changed: got %v, want %v", got, wantSecond)
	}
}

func TestShuffleEachGroup_Deterministic(t *testing.T) {
	build := func() [][]*Passenger {
		roster := make([]*Passenger, 10)
		for i := range roster {
			roster[i] = NewPassenger(i, 0, ClassWindow)
		}
		return chunkGroups(roster, 2)
	}

	groupsA := build()
	groupsB := build()
	shuffleEachGroup(groupsA, rand.New(rand.NewSource(42)))
	shuffleEachGroup(groupsB, rand.New(rand.NewSource(42)))

	flatA := seatKeys(flattenGroups(groupsA))
	flatB := seatKeys(flattenGroups(groupsB))
	for i := range flatA {
		if flatA[i] != flatB[i] {
			t.Fatalf("same seed, different order at %d: %s vs %s", i, flatA[i], flatB[i])
		}
	}
}

func TestFlattenGroups_Concatenates(t *testing.T) {
	a := NewPassenger(0, 0, ClassWindow)
	b := NewPassenger(1, 0, ClassWindow)
	c := NewPassenger(2, 0, ClassWindow)
	flat := flattenGroups([][]*Passenger{{a}, {b, c}, {}})

	want := []*Passenger{a, b, c}
	if len(flat) != len(want) {
		t.Fatalf("got %d passengers, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("flat[%d]: got %v, want %v", i, flat[i], want[i])
		}
	}
}
