package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Plan is the path of the plan description to serialize.
	// LoadScenario resolves it relative to the scenario file.
	Plan string `yaml:"plan"`

	// Labels are handed out, in order, to nodes declared without an id.
	Labels []string `yaml:"labels,omitempty"`

	// Expect holds the checks applied to the result.
	Expect Expectation `yaml:"expect"`
}

// Expectation describes the expected outcome of serializing a plan.
// Zero-valued fields are not checked.
type Expectation struct {
	// Nodes is the expected length of relsNode.
	Nodes int `yaml:"nodes,omitempty"`

	// Order lists node labels in expected emission order. Exact match.
	Order []string `yaml:"order,omitempty"`

	// Contains lists substrings the document must contain.
	Contains []string `yaml:"contains,omitempty"`

	// Error is a substring of the expected failure. When set, the plan must
	// fail to load, build or serialize.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Plan != "" && !filepath.IsAbs(scenario.Plan) {
		scenario.Plan = filepath.Join(filepath.Dir(path), scenario.Plan)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Plan == "" {
		return fmt.Errorf("plan is required")
	}

	if s.Expect.Nodes < 0 {
		return fmt.Errorf("expect.nodes must be non-negative")
	}

	if s.Expect.Error != "" && (s.Expect.Nodes > 0 || len(s.Expect.Order) > 0 || len(s.Expect.Contains) > 0) {
		return fmt.Errorf("expect.error cannot be combined with document expectations")
	}

	return nil
}
