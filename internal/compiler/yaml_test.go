package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uom/unit"
)

func TestYAMLToCUE(t *testing.T) {
	expr, err := YAMLToCUE([]byte(`
pkg: mech
unit:
  metre: {symbol: m, dimension: Length, base: length}
  second: {symbol: s, dimension: Time, base: time}
  hertz:
    dimension: Frequency
    inv: second
  odd:
    dimension: Odd
    exponents: {m: -3, s: 2}
`))
	require.NoError(t, err)

	v := cuecontext.New().BuildExpr(expr)
	require.NoError(t, v.Err())

	table, errs := CompileTable(v, true)
	require.Empty(t, errs)
	assert.Equal(t, "mech", table.Package)
	require.Len(t, table.Units, 4)

	hertz, _ := table.Lookup("hertz")
	assert.Equal(t, unit.Of(unit.Time).Inv(), hertz.Unit)

	odd, _ := table.Lookup("odd")
	assert.Equal(t, unit.New(-3, 0, 2, 0, 0, 0, 0), odd.Unit)
}

func TestYAMLToCUEScalars(t *testing.T) {
	expr, err := YAMLToCUE([]byte("a: true\nb: ~\nc: 1.5\nd: -2\ne: 0x10\nf: '3'\ng: [1, x]\n"))
	require.NoError(t, err)

	v := cuecontext.New().BuildExpr(expr)
	require.NoError(t, v.Err())

	b, err := v.LookupPath(cue.ParsePath("a")).Bool()
	require.NoError(t, err)
	assert.True(t, b)

	assert.True(t, v.LookupPath(cue.ParsePath("b")).IsNull())

	f, err := v.LookupPath(cue.ParsePath("c")).Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	d, err := v.LookupPath(cue.ParsePath("d")).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-2), d)

	e, err := v.LookupPath(cue.ParsePath("e")).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(16), e)

	s, err := v.LookupPath(cue.ParsePath("f")).String()
	require.NoError(t, err)
	assert.Equal(t, "3", s)

	n, err := v.LookupPath(cue.ParsePath("g")).Len().Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestYAMLToCUEErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{"not a mapping", "- a\n- b\n", "table must be a mapping"},
		{"bad syntax", "a: [1, 2\n", "parsing YAML"},
		{"merge key", "base: &b {x: 1}\nunit:\n  <<: *b\n", "merge keys are not supported"},
		{"infinite float", "a: .inf\n", "not a finite number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := YAMLToCUE([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestYAMLToCUEEmpty(t *testing.T) {
	expr, err := YAMLToCUE(nil)
	require.NoError(t, err)
	assert.NoError(t, cuecontext.New().BuildExpr(expr).Err())
}

func TestBuildFiles(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "base.cue")
	yamlPath := filepath.Join(dir, "derived.yaml")
	require.NoError(t, os.WriteFile(cuePath, []byte(`
pkg: "mech"
unit: metre: {dimension: "Length", base: "m"}
unit: second: {dimension: "Time", base: "s"}
`), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
unit:
  metre_per_second: {dimension: Velocity, div: [metre, second]}
`), 0644))

	v, err := BuildFiles(cuecontext.New(), []string{cuePath, yamlPath})
	require.NoError(t, err)

	table, errs := CompileTable(v, true)
	require.Empty(t, errs)
	var names []string
	for _, d := range table.Units {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"metre", "second", "metre_per_second"}, names)

	_, err = BuildFiles(cuecontext.New(), []string{filepath.Join(dir, "units.toml")})
	assert.Error(t, err)
}
