package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontToBack_DeterministicOrderWithoutShuffle(t *testing.T) {
	// GIVEN a 2x4 cabin and shuffling disabled
	roster := NewRoster(mustLayout(t, 2, 4))
	policy := NewQueuePolicy("front-to-back", PolicyOptions{Groups: 0, ShuffleGroups: false})

	// WHEN the boarding order is computed
	order := policy.Order(roster, rand.New(rand.NewSource(1)))

	// THEN rows ascend and within a row windows precede aisles
	want := []string{"0/0", "0/3", "0/1", "0/2", "1/0", "1/3", "1/1", "1/2"}
	assert.Equal(t, want, seatKeys(order))
}

func TestBackToFront_DeterministicOrderWithoutShuffle(t *testing.T) {
	roster := NewRoster(mustLayout(t, 2, 4))
	policy := NewQueuePolicy("back-to-front", PolicyOptions{Groups: 0, ShuffleGroups: false})

	order := policy.Order(roster, rand.New(rand.NewSource(1)))

	want := []string{"1/0", "1/3", "1/1", "1/2", "0/0", "0/3", "0/1", "0/2"}
	assert.Equal(t, want, seatKeys(order))
}

func TestFrontToBack_RowsNonDecreasingWithShuffle(t *testing.T) {
	// With the default one-group-per-row, intra-group shuffling can never
	// move a passenger across a row boundary.
	roster := NewRoster(mustLayout(t, 6, 4))
	policy := NewQueuePolicy("front-to-back", DefaultPolicyOptions())

	order := policy.Order(roster, rand.New(rand.NewSource(3)))
	for i := 1; i < len(order); i++ {
		if order[i].Row < order[i-1].Row {
			t.Fatalf("row decreased at %d: %v after %v", i, order[i], order[i-1])
		}
	}
}

func TestBackToFront_RowsNonIncreasingWithShuffle(t *testing.T) {
	roster := NewRoster(mustLayout(t, 6, 4))
	policy := NewQueuePolicy("back-to-front", DefaultPolicyOptions())

	order := policy.Order(roster, rand.New(rand.NewSource(3)))
	for i := 1; i < len(order); i++ {
		if order[i].Row > order[i-1].Row {
			t.Fatalf("row increased at %d: %v after %v", i, order[i], order[i-1])
		}
	}
}

func TestFrontToBack_GroupsOverride(t *testing.T) {
	// GIVEN 4 rows split into 2 boarding groups
	roster := NewRoster(mustLayout(t, 4, 2))
	policy := NewQueuePolicy("front-to-back", PolicyOptions{Groups: 2, ShuffleGroups: true})

	order := policy.Order(roster, rand.New(rand.NewSource(5)))

	// THEN the first half of the queue holds rows 0-1, the second rows 2-3
	for i, p := range order {
		if i < 4 && p.Row > 1 {
			t.Errorf("first group position %d holds row %d, want <= 1", i, p.Row)
		}
		if i >= 4 && p.Row < 2 {
			t.Errorf("second group position %d holds row %d, want >= 2", i, p.Row)
		}
	}
}

func TestFrontToBack_SingleGroupIsFreeForAll(t *testing.T) {
	// Groups=1 collapses the policy into one shuffled line over all rows.
	roster := NewRoster(mustLayout(t, 3, 2))
	policy := NewQueuePolicy("front-to-back", PolicyOptions{Groups: 1, ShuffleGroups: true})

	order := policy.Order(roster, rand.New(rand.NewSource(11)))
	if len(order) != len(roster) {
		t.Fatalf("order length: got %d, want %d", len(order), len(roster))
	}
	assert.Equal(t, seatMultiset(roster), seatMultiset(order))
}
