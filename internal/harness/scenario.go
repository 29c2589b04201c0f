package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario describes what one identifier variant must accept, reject,
// and compute.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden report.
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description"`

	// Variant selects the kind table runtime checks resolve against:
	// unidirectional, bidirectional or phantom.
	Variant string `yaml:"variant"`

	// Checks run in order. Every check runs even after a failure.
	Checks []Check `yaml:"checks"`
}

// Check is one statement about the variant. Which fields apply depends
// on Type.
type Check struct {
	Type string `yaml:"type"`

	// Source is a complete Go file (static).
	Source string `yaml:"source,omitempty"`

	// Expect is "accept" or "reject" (static).
	Expect string `yaml:"expect,omitempty"`

	// Contains must appear in one of the mismatch messages (static, reject).
	Contains string `yaml:"contains,omitempty"`

	// Kind names the entity kind whose identifier is built (runtime checks).
	Kind string `yaml:"kind,omitempty"`

	// OtherKind is the right-hand kind of an equality check. Defaults to Kind.
	OtherKind string `yaml:"other_kind,omitempty"`

	// Insert, Present and Absent are raw payloads (lookup).
	Insert  []int64 `yaml:"insert,omitempty"`
	Present []int64 `yaml:"present,omitempty"`
	Absent  []int64 `yaml:"absent,omitempty"`

	// Left, Right and Equal describe an equality check.
	Left  int64 `yaml:"left,omitempty"`
	Right int64 `yaml:"right,omitempty"`
	Equal bool  `yaml:"equal,omitempty"`

	// Raw is the payload for format and accessor checks.
	Raw int64 `yaml:"raw,omitempty"`

	// String and GoString are the expected formatted forms (format).
	String   string `yaml:"string,omitempty"`
	GoString string `yaml:"go_string,omitempty"`
}

// Check type constants.
const (
	CheckStatic   = "static"
	CheckLookup   = "lookup"
	CheckEquality = "equality"
	CheckFormat   = "format"
	CheckAccessor = "accessor"
)

// Static expectations.
const (
	ExpectAccept = "accept"
	ExpectReject = "reject"
)

// LoadScenario reads a scenario YAML file, validates it against the CUE
// schema, decodes it strictly and checks that every kind it names exists
// for its variant.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	if err := validateSchema(path, data); err != nil {
		return nil, err
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
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

// validateScenario covers what the schema cannot: kind names depend on
// the variant.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	table, ok := variants[s.Variant]
	if !ok {
		return fmt.Errorf("unknown variant %q", s.Variant)
	}

	for i, c := range s.Checks {
		if err := validateCheck(i, &c, table); err != nil {
			return err
		}
	}
	return nil
}

func validateCheck(index int, c *Check, table map[string]kind) error {
	switch c.Type {
	case CheckStatic:
		if c.Source == "" {
			return fmt.Errorf("checks[%d]: source is required for static", index)
		}
		if c.Expect != ExpectAccept && c.Expect != ExpectReject {
			return fmt.Errorf("checks[%d]: expect must be %q or %q", index, ExpectAccept, ExpectReject)
		}
		if c.Contains != "" && c.Expect != ExpectReject {
			return fmt.Errorf("checks[%d]: contains only applies to expect: reject", index)
		}
		return nil
	case CheckLookup, CheckEquality, CheckFormat, CheckAccessor:
	default:
		return fmt.Errorf("checks[%d]: unknown check type %q", index, c.Type)
	}

	if _, ok := table[c.Kind]; !ok {
		return fmt.Errorf("checks[%d]: unknown kind %q", index, c.Kind)
	}
	if c.OtherKind != "" {
		if c.Type != CheckEquality {
			return fmt.Errorf("checks[%d]: other_kind only applies to equality", index)
		}
		if _, ok := table[c.OtherKind]; !ok {
			return fmt.Errorf("checks[%d]: unknown kind %q", index, c.OtherKind)
		}
	}
	return nil
}
