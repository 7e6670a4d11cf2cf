package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/uom/internal/queryir"
	"github.com/roach88/uom/internal/querysql"
	"github.com/roach88/uom/unit"
)

// catalogSchema lists the columns queries may reference. It mirrors
// schema.sql.
var catalogSchema = queryir.Schema{
	"tables": {"hash", "seq", "package", "ir_version", "canonical"},
	"units": {
		"table_hash", "ord", "name", "symbol", "dimension", "base",
		"exp_m", "exp_kg", "exp_s", "exp_a", "exp_k", "exp_mol", "exp_cd",
	},
	"runs": {
		"id", "seq", "table_hash", "package", "source", "output",
		"unit_count", "helpers", "generator_version", "ir_version",
	},
}

// exponentColumns maps each base, in base order, to its units column.
var exponentColumns = [unit.NumBases]string{
	"exp_m", "exp_kg", "exp_s", "exp_a", "exp_k", "exp_mol", "exp_cd",
}

// UnitFilter selects catalogued units. Empty fields match anything; at
// least one field must be set.
type UnitFilter struct {
	Package   string
	Dimension string
	Symbol    string
	Exponents *unit.Unit // exact match on all seven exponents
}

// IsEmpty reports whether f matches every unit.
func (f UnitFilter) IsEmpty() bool {
	return f.Package == "" && f.Dimension == "" && f.Symbol == "" && f.Exponents == nil
}

// String renders the set fields, e.g. "m * s^-1 package=si".
func (f UnitFilter) String() string {
	var parts []string
	if f.Exponents != nil {
		parts = append(parts, f.Exponents.String())
	}
	if f.Package != "" {
		parts = append(parts, "package="+f.Package)
	}
	if f.Dimension != "" {
		parts = append(parts, "dimension="+f.Dimension)
	}
	if f.Symbol != "" {
		parts = append(parts, "symbol="+f.Symbol)
	}
	return strings.Join(parts, " ")
}

// unitQuery builds the catalog query for f: units joined with their
// table, ordered by table seq and then declaration order.
func unitQuery(f UnitFilter) queryir.Query {
	var unitPreds []queryir.Predicate
	if f.Exponents != nil {
		e := f.Exponents.Exponents()
		for i, col := range exponentColumns {
			unitPreds = append(unitPreds, queryir.Equals{Field: col, Value: queryir.Int(e[i])})
		}
	}
	if f.Dimension != "" {
		unitPreds = append(unitPreds, queryir.Equals{Field: "dimension", Value: queryir.String(f.Dimension)})
	}
	if f.Symbol != "" {
		unitPreds = append(unitPreds, queryir.Equals{Field: "symbol", Value: queryir.String(f.Symbol)})
	}

	var tablePred queryir.Predicate
	if f.Package != "" {
		tablePred = queryir.Equals{Field: "package", Value: queryir.String(f.Package)}
	}

	return queryir.Join{
		Left: queryir.Select{
			From:   "units",
			Filter: queryir.And{Predicates: unitPreds},
			Bindings: map[string]string{
				"table_hash": "table_hash",
				"name":       "name",
				"symbol":     "symbol",
				"dimension":  "dimension",
				"base":       "base",
			},
		},
		Right: queryir.Select{
			From:     "tables",
			Filter:   tablePred,
			Bindings: map[string]string{"package": "package"},
		},
		On:      queryir.ColumnEquals{Left: "units.table_hash", Right: "tables.hash"},
		OrderBy: []string{"tables.seq", "units.ord"},
	}
}

// FindUnits returns every catalogued unit matching f, ordered by table seq
// and then declaration order.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) FindUnits(ctx context.Context, f UnitFilter) ([]UnitMatch, error) {
	if f.IsEmpty() {
		return nil, fmt.Errorf("find units: empty filter")
	}

	q := unitQuery(f)
	if err := queryir.Validate(q, catalogSchema); err != nil {
		return nil, fmt.Errorf("find units: %w", err)
	}
	compiled, err := querysql.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("find units: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, compiled.SQL, compiled.Params...)
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}
	defer rows.Close()

	matches := []UnitMatch{}
	for rows.Next() {
		var m UnitMatch
		var base int
		dest := map[string]any{
			"table_hash": &m.TableHash,
			"package":    &m.Package,
			"name":       &m.Name,
			"symbol":     &m.Symbol,
			"dimension":  &m.Dimension,
			"base":       &base,
		}
		ptrs := make([]any, len(compiled.Columns))
		for i, col := range compiled.Columns {
			ptrs[i] = dest[col]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		m.Base = base != 0
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units: %w", err)
	}
	return matches, nil
}
