package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	"units":  {"table_id", "ord", "name", "dimension", "exp_m", "exp_s"},
	"tables": {"id", "seq", "package"},
}

func TestValidate_Select(t *testing.T) {
	query := Select{
		From:     "units",
		Bindings: map[string]string{"name": "name", "exp_m": "m"},
		Filter:   Equals{Field: "dimension", Value: String("Velocity")},
		OrderBy:  []string{"ord"},
	}

	assert.NoError(t, Validate(query, testSchema))
	assert.NoError(t, Validate(&query, testSchema), "pointer queries validate the same way")
}

func TestValidate_Join(t *testing.T) {
	query := Join{
		Left: Select{
			From:     "units",
			Bindings: map[string]string{"name": "name"},
			Filter: And{Predicates: []Predicate{
				Equals{Field: "exp_m", Value: Int(1)},
				Equals{Field: "exp_s", Value: Int(-1)},
			}},
		},
		Right: Select{
			From:     "tables",
			Bindings: map[string]string{"package": "package"},
		},
		On:      ColumnEquals{Left: "units.table_id", Right: "tables.id"},
		OrderBy: []string{"tables.seq", "units.ord"},
	}

	assert.NoError(t, Validate(query, testSchema), "sides of a join need no order of their own")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		message string
	}{
		{
			name:    "nil query",
			query:   nil,
			message: "nil query",
		},
		{
			name:    "unknown relation",
			query:   Select{From: "runs", Bindings: map[string]string{"id": "id"}, OrderBy: []string{"id"}},
			message: `unknown relation "runs"`,
		},
		{
			name:    "unknown column",
			query:   Select{From: "units", Bindings: map[string]string{"exp_x": "x"}, OrderBy: []string{"ord"}},
			message: "unknown column units.exp_x",
		},
		{
			name:    "no bindings",
			query:   Select{From: "units", OrderBy: []string{"ord"}},
			message: "explicit bindings are required",
		},
		{
			name:    "no order",
			query:   Select{From: "units", Bindings: map[string]string{"name": "name"}},
			message: "an order is required",
		},
		{
			name:    "bad result name",
			query:   Select{From: "units", Bindings: map[string]string{"name": "name; DROP"}, OrderBy: []string{"ord"}},
			message: "is not an identifier",
		},
		{
			name: "nil value",
			query: Select{
				From:     "units",
				Bindings: map[string]string{"name": "name"},
				Filter:   Equals{Field: "dimension"},
				OrderBy:  []string{"ord"},
			},
			message: "compared to nil",
		},
		{
			name: "unqualified join column",
			query: Join{
				Left:    Select{From: "units", Bindings: map[string]string{"name": "name"}},
				Right:   Select{From: "tables", Bindings: map[string]string{"package": "package"}},
				On:      ColumnEquals{Left: "table_id", Right: "tables.id"},
				OrderBy: []string{"units.ord"},
			},
			message: `"table_id" must be qualified`,
		},
		{
			name: "result bound twice",
			query: Join{
				Left:    Select{From: "units", Bindings: map[string]string{"name": "name"}},
				Right:   Select{From: "tables", Bindings: map[string]string{"package": "name"}},
				On:      ColumnEquals{Left: "units.table_id", Right: "tables.id"},
				OrderBy: []string{"units.ord"},
			},
			message: `result name "name" is bound twice`,
		},
		{
			name: "join without condition",
			query: Join{
				Left:    Select{From: "units", Bindings: map[string]string{"name": "name"}},
				Right:   Select{From: "tables", Bindings: map[string]string{"package": "package"}},
				OrderBy: []string{"units.ord"},
			},
			message: "a join condition is required",
		},
		{
			name: "self join",
			query: Join{
				Left:    Select{From: "units", Bindings: map[string]string{"name": "a"}},
				Right:   Select{From: "units", Bindings: map[string]string{"dimension": "b"}},
				On:      ColumnEquals{Left: "units.ord", Right: "units.ord"},
				OrderBy: []string{"units.ord"},
			},
			message: "with itself is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.query, testSchema)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	query := Select{
		From:     "units",
		Bindings: map[string]string{"exp_x": "x"},
		Filter:   Equals{Field: "symbol", Value: String("N")},
	}

	err := Validate(query, testSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown column units.exp_x")
	assert.Contains(t, err.Error(), "unknown column units.symbol")
	assert.Contains(t, err.Error(), "an order is required")
}
