package compiler

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uom/unit"
)

func compile(t *testing.T, src string, collectAll bool) ([]error, func() []string) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())

	table, errs := CompileTable(v, collectAll)
	names := func() []string {
		var out []string
		for _, d := range table.Units {
			out = append(out, d.Name)
		}
		return out
	}
	return errs, names
}

func TestCompileTableBasic(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		pkg: "si"
		unit: metre: {symbol: "m", dimension: "Length", base: "length", doc: "Length in metre"}
		unit: second: {symbol: "s", dimension: "Time", base: "s"}
		unit: kilogram: {symbol: "kg", dimension: "Mass", base: "kilogram"}
		unit: metre_per_second: {dimension: "Velocity", div: ["metre", "second"]}
		unit: newton: {symbol: "N", dimension: "Force", mul: ["kilogram", "metre"], div: ["second", "second"]}
		unit: hertz: {symbol: "Hz", dimension: "Frequency", inv: "second"}
		unit: square_metre: {dimension: "Area", exponents: {m: 2}}
	`)
	require.NoError(t, v.Err())

	table, errs := CompileTable(v, false)
	require.Empty(t, errs)

	assert.Equal(t, "si", table.Package)
	require.Len(t, table.Units, 7)

	metre := table.Units[0]
	assert.Equal(t, "metre", metre.Name)
	assert.Equal(t, "Length", metre.Dimension)
	assert.Equal(t, "Length in metre", metre.Doc)
	assert.True(t, metre.Base)
	assert.Equal(t, unit.Of(unit.Length), metre.Unit)

	velocity, ok := table.Lookup("metre_per_second")
	require.True(t, ok)
	assert.False(t, velocity.Base)
	assert.Equal(t, "m * s^-1", velocity.Symbol, "symbol defaults to the rendered unit")
	assert.Equal(t, map[string]int{"m": 1, "s": -1}, velocity.Exponents)

	newton, _ := table.Lookup("newton")
	assert.Equal(t, unit.New(1, 1, -2, 0, 0, 0, 0), newton.Unit)

	hertz, _ := table.Lookup("hertz")
	assert.Equal(t, unit.Of(unit.Time).Inv(), hertz.Unit)

	area, _ := table.Lookup("square_metre")
	assert.Equal(t, unit.New(2, 0, 0, 0, 0, 0, 0), area.Unit)
}

func TestCompileTableForwardReference(t *testing.T) {
	errs, names := compile(t, `
		unit: joule: {dimension: "Energy", mul: ["newton", "metre"]}
		unit: newton: {dimension: "Force", mul: ["kilogram", "metre"], div: ["second", "second"]}
		unit: metre: {dimension: "Length", base: "m"}
		unit: kilogram: {dimension: "Mass", base: "kg"}
		unit: second: {dimension: "Time", base: "s"}
	`, false)
	require.Empty(t, errs)

	assert.Equal(t, []string{"joule", "newton", "metre", "kilogram", "second"}, names(), "declaration order is kept")
}

func TestCompileTableSingleDivIsReciprocal(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		unit: second: {dimension: "Time", base: "s"}
		unit: hertz: {dimension: "Frequency", div: ["second"]}
	`)
	table, errs := CompileTable(v, false)
	require.Empty(t, errs)

	hertz, _ := table.Lookup("hertz")
	assert.Equal(t, -1, hertz.Unit.Exp(unit.Time))
}

func TestCompileTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		field   string
		message string
	}{
		{
			name:    "no units",
			src:     `pkg: "si"`,
			field:   FieldDefinition,
			message: "at least one unit is required",
		},
		{
			name:    "missing dimension",
			src:     `unit: metre: {base: "m"}`,
			field:   FieldDimension,
			message: "dimension is required",
		},
		{
			name:    "bad package",
			src:     `pkg: "not-a-pkg", unit: metre: {dimension: "Length", base: "m"}`,
			field:   FieldPackage,
			message: "not a valid Go package name",
		},
		{
			name:    "bad unit name",
			src:     `unit: Metre: {dimension: "Length", base: "m"}`,
			field:   FieldName,
			message: "lower_snake_case",
		},
		{
			name:    "unknown base",
			src:     `unit: furlong: {dimension: "Length", base: "furlong"}`,
			field:   FieldBase,
			message: "unknown base",
		},
		{
			name:    "unknown exponent base",
			src:     `unit: odd: {dimension: "Odd", exponents: {ft: 1}}`,
			field:   FieldExponents,
			message: "unknown base",
		},
		{
			name:    "float exponent",
			src:     `unit: odd: {dimension: "Odd", exponents: {m: 1.5}}`,
			field:   FieldExponents,
			message: "must be an integer",
		},
		{
			name:    "exponent out of range",
			src:     `unit: odd: {dimension: "Odd", exponents: {m: 40000}}`,
			field:   FieldExponents,
			message: "out of range",
		},
		{
			name:    "no definition",
			src:     `unit: metre: {dimension: "Length"}`,
			field:   FieldDefinition,
			message: "is required",
		},
		{
			name:    "two definitions",
			src:     `unit: metre: {dimension: "Length", base: "m", exponents: {m: 1}}`,
			field:   FieldDefinition,
			message: "mutually exclusive",
		},
		{
			name:    "empty inv",
			src:     `unit: hertz: {dimension: "Frequency", inv: ""}`,
			field:   FieldReference,
			message: "inv must name a unit",
		},
		{
			name:    "unknown reference",
			src:     `unit: hertz: {dimension: "Frequency", inv: "second"}`,
			field:   FieldReference,
			message: `unknown unit "second"`,
		},
		{
			name: "cycle",
			src: `
				unit: a: {dimension: "A", mul: ["b"]}
				unit: b: {dimension: "B", inv: "a"}
			`,
			field:   FieldCycle,
			message: "a → b → a",
		},
		{
			name: "overflow while resolving",
			src: `
				unit: big: {dimension: "Big", exponents: {m: 30000}}
				unit: bigger: {dimension: "Bigger", mul: ["big", "big"]}
			`,
			field:   FieldExponents,
			message: "exponent out of range for m",
		},
		{
			name: "duplicate dimension",
			src: `
				unit: metre: {dimension: "Length", base: "m"}
				unit: foot: {dimension: "Length", exponents: {m: 1}}
			`,
			field:   FieldDimension,
			message: `already used by metre`,
		},
		{
			name: "duplicate symbol",
			src: `
				unit: metre: {symbol: "m", dimension: "Length", base: "m"}
				unit: minute: {symbol: "m", dimension: "Minute", base: "s"}
			`,
			field:   FieldSymbol,
			message: `symbol "m" already used`,
		},
		{
			name:    "unexported dimension",
			src:     `unit: metre: {dimension: "length", base: "m"}`,
			field:   FieldDimension,
			message: "exported Go identifier",
		},
		{
			name: "dimensionless",
			src: `
				unit: metre: {dimension: "Length", base: "m"}
				unit: ratio: {dimension: "Ratio", div: ["metre", "metre"]}
			`,
			field:   FieldExponents,
			message: "dimensionless",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, _ := compile(t, tt.src, false)
			require.Len(t, errs, 1)

			var compileErr *CompileError
			require.ErrorAs(t, errs[0], &compileErr)
			assert.Equal(t, tt.field, compileErr.Field)
			assert.Contains(t, compileErr.Message, tt.message)
		})
	}
}

func TestCompileTableCollectAll(t *testing.T) {
	errs, _ := compile(t, `
		unit: metre: {dimension: "Length"}
		unit: second: {dimension: "Time", base: "lightyear"}
		unit: hertz: {dimension: "Frequency", inv: "second"}
		unit: kilogram: {dimension: "Mass", base: "kg"}
	`, true)

	// hertz depends on the broken second and is not reported again.
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "dimension is required")
	assert.Contains(t, errs[1].Error(), "unknown base")
}

func TestCompileTableFailFast(t *testing.T) {
	errs, _ := compile(t, `
		unit: metre: {dimension: "Length"}
		unit: second: {dimension: "Time", base: "lightyear"}
	`, false)

	require.Len(t, errs, 1)
}

func TestCompileErrorIncludesPosition(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString("unit: metre: {\n\tdimension: \"Length\"\n\tbase: \"parsec\"\n}\n", cue.Filename("units.cue"))
	_, errs := CompileTable(v, false)
	require.Len(t, errs, 1)

	assert.Contains(t, errs[0].Error(), "units.cue:3:")
}

func TestValidateCodes(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		unit: metre: {symbol: "m", dimension: "Length", base: "m"}
		unit: second: {symbol: "s", dimension: "Time", base: "s"}
	`)
	table, errs := CompileTable(v, false)
	require.Empty(t, errs)

	table.Units[1].Dimension = "Length"
	table.Units[1].Symbol = "m"

	verrs := Validate(table)
	require.Len(t, verrs, 2)
	assert.Equal(t, ErrDuplicateDimension, verrs[0].Code)
	assert.Equal(t, ErrDuplicateSymbol, verrs[1].Code)
	assert.Equal(t, "second", verrs[0].Unit)
	assert.Contains(t, verrs[0].Error(), "[E121]")
}
