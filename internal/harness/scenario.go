package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a table conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Tables lists CUE or YAML table files, unified in order.
	// Paths are relative to the scenario file location.
	Tables []string `yaml:"tables"`

	// Package overrides the table's pkg for generated source.
	Package string `yaml:"package,omitempty"`

	// Expect maps unit names to their expected compiled form.
	Expect map[string]UnitExpect `yaml:"expect,omitempty"`

	// Helpers lists helper functions the generated source must declare.
	Helpers []string `yaml:"helpers,omitempty"`

	// Errors lists the compile errors a broken table must produce.
	// Every actual error must be listed, and every listed error must occur.
	Errors []ErrorExpect `yaml:"errors,omitempty"`

	// Golden compares the generated source against a golden file.
	Golden bool `yaml:"golden,omitempty"`
}

// UnitExpect is the expected compiled form of one unit.
// Only the fields that are set are checked.
type UnitExpect struct {
	// Unit is the rendered unit, e.g. "m * kg * s^-2".
	Unit string `yaml:"unit,omitempty"`

	// Exponents maps base symbols to exponents; omitted bases must be zero.
	Exponents map[string]int `yaml:"exponents,omitempty"`

	Symbol    string `yaml:"symbol,omitempty"`
	Dimension string `yaml:"dimension,omitempty"`
	Base      *bool  `yaml:"base,omitempty"`
}

// ErrorExpect matches one compile error by field and message substring.
type ErrorExpect struct {
	Field    string `yaml:"field"`
	Contains string `yaml:"contains,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file, resolving table
// paths relative to the scenario file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving table paths relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "expects:" vs "expect:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve table paths relative to base path BEFORE validation
	for i, tablePath := range scenario.Tables {
		if !filepath.IsAbs(tablePath) && basePath != "" {
			scenario.Tables[i] = filepath.Join(basePath, tablePath)
		}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Tables) == 0 {
		return fmt.Errorf("tables list is required and must be non-empty")
	}

	for _, tablePath := range s.Tables {
		if _, err := os.Stat(tablePath); os.IsNotExist(err) {
			return fmt.Errorf("table file not found: %s", tablePath)
		}
	}

	if len(s.Expect) == 0 && len(s.Helpers) == 0 && len(s.Errors) == 0 && !s.Golden {
		return fmt.Errorf("at least one of expect, helpers, errors or golden is required")
	}

	// A table that fails to compile has no units, helpers or source.
	if len(s.Errors) > 0 && (len(s.Expect) > 0 || len(s.Helpers) > 0 || s.Golden) {
		return fmt.Errorf("errors cannot be combined with expect, helpers or golden")
	}

	for i, e := range s.Errors {
		if e.Field == "" {
			return fmt.Errorf("errors[%d]: field is required", i)
		}
	}

	for name, e := range s.Expect {
		if e.Unit == "" && e.Exponents == nil && e.Symbol == "" && e.Dimension == "" && e.Base == nil {
			return fmt.Errorf("expect[%s]: at least one expectation is required", name)
		}
		if _, err := normalizeExponents(e.Exponents); err != nil {
			return fmt.Errorf("expect[%s]: exponents: %w", name, err)
		}
	}

	return nil
}
