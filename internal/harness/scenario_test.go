package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/kinematics.yaml")
	require.NoError(t, err)

	assert.Equal(t, "kinematics", s.Name)
	assert.Equal(t, []string{filepath.Join("testdata", "tables", "kinematics.cue")}, s.Tables)
	assert.True(t, s.Golden)
	assert.Equal(t, []string{"DivLengthTime", "MulTimeVelocity", "RecipFrequency"}, s.Helpers)

	velocity := s.Expect["metre_per_second"]
	assert.Equal(t, "m * s^-1", velocity.Unit)
	assert.Equal(t, map[string]int{"m": 1, "s": -1}, velocity.Exponents)
	require.NotNil(t, velocity.Base)
	assert.False(t, *velocity.Base)
}

func TestLoadScenarioWithBasePath(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, `
name: based
description: tables resolve against the given base path
tables: [tables/kinematics.cue]
golden: true
`)

	s, err := LoadScenarioWithBasePath(path, "testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("testdata", "tables", "kinematics.cue")}, s.Tables)
}

func TestLoadScenarioErrors(t *testing.T) {
	abs, err := filepath.Abs("testdata/tables/kinematics.cue")
	require.NoError(t, err)

	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "unknown field",
			content: "name: x\ndescription: y\ntables: [" + abs + "]\nexpects: {}\n",
			message: "field expects not found",
		},
		{
			name:    "missing name",
			content: "description: y\ntables: [" + abs + "]\ngolden: true\n",
			message: "name is required",
		},
		{
			name:    "missing description",
			content: "name: x\ntables: [" + abs + "]\ngolden: true\n",
			message: "description is required",
		},
		{
			name:    "no tables",
			content: "name: x\ndescription: y\ngolden: true\n",
			message: "tables list is required",
		},
		{
			name:    "missing table file",
			content: "name: x\ndescription: y\ntables: [nowhere.cue]\ngolden: true\n",
			message: "table file not found",
		},
		{
			name:    "nothing to check",
			content: "name: x\ndescription: y\ntables: [" + abs + "]\n",
			message: "at least one of expect",
		},
		{
			name:    "errors with golden",
			content: "name: x\ndescription: y\ntables: [" + abs + "]\ngolden: true\nerrors: [{field: cycle}]\n",
			message: "errors cannot be combined",
		},
		{
			name:    "error without field",
			content: "name: x\ndescription: y\ntables: [" + abs + "]\nerrors: [{contains: cycle}]\n",
			message: "errors[0]: field is required",
		},
		{
			name:    "empty unit expectation",
			content: "name: x\ndescription: y\ntables: [" + abs + "]\nexpect: {metre: {}}\n",
			message: "expect[metre]",
		},
		{
			name:    "unknown exponent base",
			content: "name: x\ndescription: y\ntables: [" + abs + "]\nexpect: {metre: {exponents: {ft: 1}}}\n",
			message: `expect[metre]: exponents: unknown base "ft"`,
		},
		{
			name:    "malformed yaml",
			content: "name: [unclosed\n",
			message: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, t.TempDir(), tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
