// Package testutil provides shared test infrastructure for the boarding
// simulator. It consolidates the golden dataset types and loader used by
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is a single pinned boarding run.
//
// Note: only deterministic orderings appear in the dataset. Shuffled
// policies order the queue from the rand stream, so their reports are
// covered by invariant tests instead of pinned values.
type GoldenTestCase struct {
	Name          string       `json:"name"`
	Rows          int          `json:"rows"`
	SeatsPerRow   int          `json:"seats_per_row"`
	Policy        string       `json:"policy"`
	Groups        int          `json:"groups"`
	ShuffleGroups bool         `json:"shuffle_groups"`
	Seed          int64        `json:"seed"`
	MaxSteps      int          `json:"max_steps"`
	Report        GoldenReport `json:"report"`
}

// GoldenReport is the expected final report for a golden test case.
type GoldenReport struct {
	Steps            int `json:"steps"`
	Stops            int `json:"stops"`
	Shuffles         int `json:"shuffles"`
	PassengersSeated int `json:"passengers_seated"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}
