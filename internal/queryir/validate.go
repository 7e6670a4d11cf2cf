package queryir

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// validIdentifier matches SQL identifiers (relation and column names).
// Only allows alphanumeric and underscore, must start with letter or underscore.
var validIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that q only references relations and columns of schema,
// that every result name is an identifier, and that the query is ordered.
// All problems are returned, joined.
func Validate(q Query, schema Schema) error {
	v := &validator{schema: schema}
	v.query(q, true)
	return errors.Join(v.errs...)
}

type validator struct {
	schema Schema
	errs   []error
}

func (v *validator) addf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) query(q Query, top bool) {
	switch query := q.(type) {
	case Select:
		v.selectNode(query, top)
	case *Select:
		v.selectNode(*query, top)
	case Join:
		v.join(query)
	case *Join:
		v.join(*query)
	case nil:
		v.addf("nil query")
	default:
		v.addf("unsupported query type %T", q)
	}
}

func (v *validator) selectNode(sel Select, top bool) {
	cols, ok := v.schema[sel.From]
	if !ok {
		v.addf("unknown relation %q", sel.From)
		return
	}
	if len(sel.Bindings) == 0 {
		v.addf("select from %s: explicit bindings are required", sel.From)
	}
	for col, name := range sel.Bindings {
		v.column(sel.From, cols, col)
		if !validIdentifier.MatchString(name) {
			v.addf("select from %s: result name %q is not an identifier", sel.From, name)
		}
	}
	for _, col := range sel.OrderBy {
		v.column(sel.From, cols, col)
	}
	if top && len(sel.OrderBy) == 0 {
		v.addf("select from %s: an order is required", sel.From)
	}
	v.predicate(sel.Filter, func(col string) { v.column(sel.From, cols, col) })
}

func (v *validator) join(j Join) {
	left, lok := selectOf(j.Left)
	right, rok := selectOf(j.Right)
	if !lok || !rok {
		v.addf("join sides must be selects")
		return
	}
	if left.From == right.From {
		v.addf("join of %s with itself is not supported", left.From)
	}
	v.query(left, false)
	v.query(right, false)

	if j.On == nil {
		v.addf("join %s with %s: a join condition is required", left.From, right.From)
	}
	v.predicate(j.On, v.qualified)
	if len(j.OrderBy) == 0 {
		v.addf("join %s with %s: an order is required", left.From, right.From)
	}
	for _, col := range j.OrderBy {
		v.qualified(col)
	}

	seen := make(map[string]bool)
	for _, sel := range []Select{left, right} {
		for _, name := range sel.Bindings {
			if seen[name] {
				v.addf("join %s with %s: result name %q is bound twice", left.From, right.From, name)
			}
			seen[name] = true
		}
	}
}

func (v *validator) predicate(p Predicate, column func(string)) {
	switch pred := p.(type) {
	case nil:
	case Equals:
		column(pred.Field)
		v.value(pred.Field, pred.Value)
	case *Equals:
		column(pred.Field)
		v.value(pred.Field, pred.Value)
	case ColumnEquals:
		v.qualified(pred.Left)
		v.qualified(pred.Right)
	case *ColumnEquals:
		v.qualified(pred.Left)
		v.qualified(pred.Right)
	case And:
		for _, sub := range pred.Predicates {
			v.predicate(sub, column)
		}
	case *And:
		for _, sub := range pred.Predicates {
			v.predicate(sub, column)
		}
	default:
		v.addf("unsupported predicate type %T", p)
	}
}

func (v *validator) value(field string, val Value) {
	switch val.(type) {
	case String, Int, Bool:
	case nil:
		v.addf("column %s compared to nil; catalog columns are never NULL", field)
	default:
		v.addf("column %s: unsupported value type %T", field, val)
	}
}

func (v *validator) column(relation string, cols []string, col string) {
	if !slices.Contains(cols, col) {
		v.addf("unknown column %s.%s", relation, col)
	}
}

// qualified checks a relation.column reference.
func (v *validator) qualified(ref string) {
	relation, col, ok := strings.Cut(ref, ".")
	if !ok {
		v.addf("column %q must be qualified as relation.column", ref)
		return
	}
	cols, known := v.schema[relation]
	if !known {
		v.addf("unknown relation %q", relation)
		return
	}
	v.column(relation, cols, col)
}

// selectOf unwraps a Select or *Select.
func selectOf(q Query) (Select, bool) {
	switch query := q.(type) {
	case Select:
		return query, true
	case *Select:
		return *query, true
	default:
		return Select{}, false
	}
}
