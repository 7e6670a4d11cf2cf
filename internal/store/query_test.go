package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uom/internal/queryir"
	"github.com/roach88/uom/internal/querysql"
	"github.com/roach88/uom/unit"
)

func exps(u unit.Unit) *unit.Unit { return &u }

func TestFindUnits(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, _, err := s.SaveTable(ctx, createTestTable("a"))
	require.NoError(t, err)
	second, _, err := s.SaveTable(ctx, createTestTable("b"))
	require.NoError(t, err)

	matches, err := s.FindUnits(ctx, UnitFilter{Exponents: exps(unit.New(1, 0, -1, 0, 0, 0, 0))})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, UnitMatch{
		TableHash: first,
		Package:   "a",
		Name:      "metre_per_second",
		Symbol:    "m/s",
		Dimension: "Velocity",
	}, matches[0])
	assert.Equal(t, second, matches[1].TableHash)

	base, err := s.FindUnits(ctx, UnitFilter{Exponents: exps(unit.Of(unit.Time))})
	require.NoError(t, err)
	require.Len(t, base, 2)
	assert.True(t, base[0].Base)
	assert.Equal(t, "second", base[0].Name)

	none, err := s.FindUnits(ctx, UnitFilter{Exponents: exps(unit.Of(unit.Mass))})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFindUnitsFilters(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, _, err := s.SaveTable(ctx, createTestTable("a"))
	require.NoError(t, err)
	_, _, err = s.SaveTable(ctx, createTestTable("b"))
	require.NoError(t, err)

	names := func(f UnitFilter) []string {
		matches, err := s.FindUnits(ctx, f)
		require.NoError(t, err)
		var out []string
		for _, m := range matches {
			out = append(out, m.Package+"."+m.Name)
		}
		return out
	}

	assert.Equal(t, []string{"b.metre", "b.second", "b.metre_per_second", "b.hertz"},
		names(UnitFilter{Package: "b"}), "declaration order within a table")
	assert.Equal(t, []string{"a.hertz", "b.hertz"}, names(UnitFilter{Dimension: "Frequency"}))
	assert.Equal(t, []string{"a.second"}, names(UnitFilter{Package: "a", Symbol: "s"}))
	assert.Equal(t, []string{"b.metre_per_second"},
		names(UnitFilter{Package: "b", Dimension: "Velocity", Exponents: exps(unit.New(1, 0, -1, 0, 0, 0, 0))}))
	assert.Nil(t, names(UnitFilter{Package: "a", Dimension: "Length", Symbol: "ft"}))
}

func TestFindUnitsEmptyFilter(t *testing.T) {
	s := createTestStore(t)

	_, err := s.FindUnits(context.Background(), UnitFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty filter")
}

func TestUnitFilterString(t *testing.T) {
	f := UnitFilter{Package: "si", Symbol: "N", Exponents: exps(unit.New(1, 1, -2, 0, 0, 0, 0))}
	assert.Equal(t, "m * kg * s^-2 package=si symbol=N", f.String())
	assert.True(t, UnitFilter{}.IsEmpty())
	assert.False(t, f.IsEmpty())
}

func TestUnitQueryCompiles(t *testing.T) {
	q := unitQuery(UnitFilter{Package: "si", Dimension: "Force"})
	require.NoError(t, queryir.Validate(q, catalogSchema))

	compiled, err := querysql.Compile(q)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT units.base AS base, units.dimension AS dimension, units.name AS name, "+
			"units.symbol AS symbol, units.table_hash AS table_hash, tables.package AS package "+
			"FROM units INNER JOIN tables ON units.table_hash = tables.hash "+
			"WHERE units.dimension = ? AND tables.package = ? "+
			"ORDER BY tables.seq ASC, units.ord ASC",
		compiled.SQL)
	assert.Equal(t, []any{"Force", "si"}, compiled.Params)
	assert.Equal(t, []string{"base", "dimension", "name", "symbol", "table_hash", "package"}, compiled.Columns)
}
