// Package querysql compiles catalog queries to parameterized SQLite SQL.
package querysql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/uom/internal/queryir"
)

// Compiled is a compiled query. Columns lists the result names in the
// order of the SELECT list.
type Compiled struct {
	SQL     string
	Params  []any
	Columns []string
}

// Compile converts a query to parameterized SQL.
//
// Values are never interpolated; relation and column names are, so the
// query must pass queryir.Validate first. Compile does not repeat those
// checks beyond what it needs to produce SQL.
func Compile(q queryir.Query) (Compiled, error) {
	switch query := q.(type) {
	case queryir.Select:
		return compileSelect(query)
	case *queryir.Select:
		return compileSelect(*query)
	case queryir.Join:
		return compileJoin(query)
	case *queryir.Join:
		return compileJoin(*query)
	case nil:
		return Compiled{}, fmt.Errorf("cannot compile nil query")
	default:
		return Compiled{}, fmt.Errorf("unsupported query type: %T", q)
	}
}

// compileSelect compiles a standalone Select.
func compileSelect(q queryir.Select) (Compiled, error) {
	if len(q.OrderBy) == 0 {
		return Compiled{}, fmt.Errorf("select from %s has no order", q.From)
	}

	cols, names := compileBindings("", q.Bindings)

	var sql strings.Builder
	fmt.Fprintf(&sql, "SELECT %s FROM %s", strings.Join(cols, ", "), q.From)

	where, params, err := compilePredicate("", q.Filter)
	if err != nil {
		return Compiled{}, fmt.Errorf("compile filter: %w", err)
	}
	if where != "" {
		sql.WriteString(" WHERE " + where)
	}

	sql.WriteString(" ORDER BY " + orderBy(q.OrderBy))
	return Compiled{SQL: sql.String(), Params: params, Columns: names}, nil
}

// compileJoin compiles an inner join of two Selects. Columns of each side
// are qualified with that side's relation.
func compileJoin(j queryir.Join) (Compiled, error) {
	left, ok := selectOf(j.Left)
	if !ok {
		return Compiled{}, fmt.Errorf("join left must be a select")
	}
	right, ok := selectOf(j.Right)
	if !ok {
		return Compiled{}, fmt.Errorf("join right must be a select")
	}
	if j.On == nil {
		return Compiled{}, fmt.Errorf("join %s with %s has no condition", left.From, right.From)
	}
	if len(j.OrderBy) == 0 {
		return Compiled{}, fmt.Errorf("join %s with %s has no order", left.From, right.From)
	}

	lcols, lnames := compileBindings(left.From, left.Bindings)
	rcols, rnames := compileBindings(right.From, right.Bindings)

	on, params, err := compilePredicate("", j.On)
	if err != nil {
		return Compiled{}, fmt.Errorf("compile join condition: %w", err)
	}

	var where []string
	for _, sel := range []queryir.Select{left, right} {
		sql, p, err := compilePredicate(sel.From, sel.Filter)
		if err != nil {
			return Compiled{}, fmt.Errorf("compile %s filter: %w", sel.From, err)
		}
		if sql != "" {
			where = append(where, sql)
			params = append(params, p...)
		}
	}

	var sql strings.Builder
	fmt.Fprintf(&sql, "SELECT %s FROM %s INNER JOIN %s ON %s",
		strings.Join(append(lcols, rcols...), ", "), left.From, right.From, on)
	if len(where) > 0 {
		sql.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sql.WriteString(" ORDER BY " + orderBy(j.OrderBy))

	return Compiled{SQL: sql.String(), Params: params, Columns: append(lnames, rnames...)}, nil
}

// compileBindings converts bindings to a SELECT list, sorted by column for
// deterministic output. Example: {"exp_m": "m"} → "exp_m AS m".
func compileBindings(qualifier string, bindings map[string]string) (cols, names []string) {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, col := range keys {
		name := bindings[col]
		ref := qualify(qualifier, col)
		if col == name && qualifier == "" {
			cols = append(cols, ref)
		} else {
			cols = append(cols, ref+" AS "+name)
		}
		names = append(names, name)
	}
	return cols, names
}

// compilePredicate compiles p to a WHERE fragment. A nil predicate
// compiles to "". Values are always ? placeholders.
func compilePredicate(qualifier string, p queryir.Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case nil:
		return "", nil, nil
	case queryir.Equals:
		return compileEquals(qualifier, pred)
	case *queryir.Equals:
		return compileEquals(qualifier, *pred)
	case queryir.ColumnEquals:
		return pred.Left + " = " + pred.Right, nil, nil
	case *queryir.ColumnEquals:
		return pred.Left + " = " + pred.Right, nil, nil
	case queryir.And:
		return compileAnd(qualifier, pred)
	case *queryir.And:
		return compileAnd(qualifier, *pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileEquals(qualifier string, eq queryir.Equals) (string, []any, error) {
	param, err := valueToParam(eq.Value)
	if err != nil {
		return "", nil, fmt.Errorf("column %s: %w", eq.Field, err)
	}
	return qualify(qualifier, eq.Field) + " = ?", []any{param}, nil
}

// compileAnd joins the non-empty fragments of and with AND. An empty And
// compiles to "".
func compileAnd(qualifier string, and queryir.And) (string, []any, error) {
	var parts []string
	var params []any
	for _, pred := range and.Predicates {
		sql, p, err := compilePredicate(qualifier, pred)
		if err != nil {
			return "", nil, err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		params = append(params, p...)
	}
	return strings.Join(parts, " AND "), params, nil
}

func orderBy(cols []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = col + " ASC"
	}
	return strings.Join(parts, ", ")
}

func qualify(qualifier, col string) string {
	if qualifier == "" {
		return col
	}
	return qualifier + "." + col
}

// valueToParam converts a literal to a database/sql parameter.
func valueToParam(v queryir.Value) (any, error) {
	switch val := v.(type) {
	case queryir.String:
		return string(val), nil
	case queryir.Int:
		return int64(val), nil
	case queryir.Bool:
		if val {
			return int64(1), nil
		}
		return int64(0), nil
	case nil:
		return nil, fmt.Errorf("nil value")
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}

func selectOf(q queryir.Query) (queryir.Select, bool) {
	switch query := q.(type) {
	case queryir.Select:
		return query, true
	case *queryir.Select:
		return *query, true
	default:
		return queryir.Select{}, false
	}
}
