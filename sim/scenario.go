package sim

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// LayoutSpec is the cabin geometry section of a scenario file.
type LayoutSpec struct {
	Rows        int `yaml:"rows"`
	SeatsPerRow int `yaml:"seats_per_row"`
}

// PolicySpec is the queueing policy section of a scenario file.
// ShuffleGroups is a pointer so that an absent key keeps the default (true)
// while an explicit `shuffle_groups: false` switches to deterministic order.
type PolicySpec struct {
	Name          string `yaml:"name"`
	Groups        int    `yaml:"groups,omitempty"`
	ShuffleGroups *bool  `yaml:"shuffle_groups,omitempty"`
}

// Scenario ties together everything one boarding experiment needs: the cabin
// layout, the queueing policy and its knobs, the RNG seed, and the run
// limits. It is the unit loaded from a YAML file and passed around between
// the CLI and the experiment runner.
type Scenario struct {
	Layout       LayoutSpec `yaml:"layout"`
	Policy       PolicySpec `yaml:"policy"`
	Seed         int64      `yaml:"seed,omitempty"`
	MaxSteps     int        `yaml:"max_steps,omitempty"`
	Replications int        `yaml:"replications,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the scenario for configuration errors before anything is
// built from it. The policy factory panics on unknown names, so user input
// must pass through here first.
func (s *Scenario) Validate() error {
	if _, err := NewSeatLayout(s.Layout.Rows, s.Layout.SeatsPerRow); err != nil {
		return err
	}
	if !IsValidQueuePolicy(s.Policy.Name) {
		return fmt.Errorf("unknown queue policy %q, valid policies: %v", s.Policy.Name, PolicyNames())
	}
	if s.Policy.Groups < 0 {
		return fmt.Errorf("policy groups must be non-negative, got %d", s.Policy.Groups)
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative, got %d", s.MaxSteps)
	}
	if s.Replications < 0 {
		return fmt.Errorf("replications must be non-negative, got %d", s.Replications)
	}
	return nil
}

// Options translates the policy section into engine-level policy options.
func (s *Scenario) Options() PolicyOptions {
	opts := DefaultPolicyOptions()
	opts.Groups = s.Policy.Groups
	if s.Policy.ShuffleGroups != nil {
		opts.ShuffleGroups = *s.Policy.ShuffleGroups
	}
	return opts
}

// ReplicationCount returns how many independent runs the scenario asks for,
// defaulting to a single run.
func (s *Scenario) ReplicationCount() int {
	if s.Replications <= 0 {
		return 1
	}
	return s.Replications
}

// Assemble builds a ready-to-run simulator from the scenario: the layout,
// its full roster, the boarding queue ordered by the configured policy, and
// the engine itself. The caller supplies the RNG so that replications can
// derive isolated streams from one scenario seed. A zero cfg.MaxSteps falls
// back to the scenario's max_steps.
func (s *Scenario) Assemble(rng *rand.Rand, cfg Config) (*Simulator, error) {
	layout, err := NewSeatLayout(s.Layout.Rows, s.Layout.SeatsPerRow)
	if err != nil {
		return nil, err
	}
	if !IsValidQueuePolicy(s.Policy.Name) {
		return nil, fmt.Errorf("unknown queue policy %q, valid policies: %v", s.Policy.Name, PolicyNames())
	}
	policy := NewQueuePolicy(s.Policy.Name, s.Options())
	queue := NewBoardingQueue(policy.Order(NewRoster(layout), rng))
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = s.MaxSteps
	}
	return NewSimulator(layout, queue, cfg), nil
}
