package harness

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/roach88/uom/internal/compiler"
	"github.com/roach88/uom/internal/ir"
	"github.com/roach88/uom/unit"
)

// matchErrors pairs actual compile errors with expected ones, in order.
// Each actual error satisfies at most one expectation. Returns one message
// per unmatched expectation and per unexpected error.
func matchErrors(expected []ErrorExpect, actual []error) []string {
	var msgs []string
	used := make([]bool, len(actual))

	for _, want := range expected {
		found := false
		for i, err := range actual {
			if used[i] {
				continue
			}
			if errorField(err) == want.Field && strings.Contains(err.Error(), want.Contains) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			msgs = append(msgs, fmt.Sprintf("expected %s error containing %q, not reported", want.Field, want.Contains))
		}
	}

	for i, err := range actual {
		if !used[i] {
			msgs = append(msgs, "unexpected compile error: "+err.Error())
		}
	}
	return msgs
}

// errorField returns the CompileError field of err, or "" for other errors.
func errorField(err error) string {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return compileErr.Field
	}
	return ""
}

// checkUnits compares compiled units against expectations, in name order.
func checkUnits(table *ir.Table, expect map[string]UnitExpect) []string {
	var msgs []string
	for _, name := range slices.Sorted(maps.Keys(expect)) {
		want := expect[name]
		d, ok := table.Lookup(name)
		if !ok {
			msgs = append(msgs, fmt.Sprintf("unit %s: not in table", name))
			continue
		}

		if want.Unit != "" && d.Unit.String() != want.Unit {
			msgs = append(msgs, fmt.Sprintf("unit %s: expected unit %q, got %q", name, want.Unit, d.Unit.String()))
		}
		if want.Exponents != nil {
			exp, err := normalizeExponents(want.Exponents)
			if err != nil {
				msgs = append(msgs, fmt.Sprintf("unit %s: %v", name, err))
			} else if !maps.Equal(exp, d.Exponents) {
				msgs = append(msgs, fmt.Sprintf("unit %s: expected exponents %s, got %s", name, formatExponents(exp), formatExponents(d.Exponents)))
			}
		}
		if want.Symbol != "" && d.Symbol != want.Symbol {
			msgs = append(msgs, fmt.Sprintf("unit %s: expected symbol %q, got %q", name, want.Symbol, d.Symbol))
		}
		if want.Dimension != "" && d.Dimension != want.Dimension {
			msgs = append(msgs, fmt.Sprintf("unit %s: expected dimension %s, got %s", name, want.Dimension, d.Dimension))
		}
		if want.Base != nil && d.Base != *want.Base {
			msgs = append(msgs, fmt.Sprintf("unit %s: expected base=%t, got base=%t", name, *want.Base, d.Base))
		}
	}
	return msgs
}

// checkHelpers reports expected helpers missing from the generated set.
func checkHelpers(generated, expected []string) []string {
	var msgs []string
	for _, name := range expected {
		if !slices.Contains(generated, name) {
			msgs = append(msgs, fmt.Sprintf("helper %s: not generated", name))
		}
	}
	return msgs
}

// normalizeExponents keys m by base symbol, the way ir.ExponentMap does.
// Bases may be named by symbol, unit name or quantity name; exponents of
// the same base add up and zero exponents are dropped.
func normalizeExponents(m map[string]int) (map[string]int, error) {
	sums := make(map[unit.Base]int, len(m))
	for k, v := range m {
		b, ok := unit.ParseBase(k)
		if !ok {
			return nil, fmt.Errorf("unknown base %q", k)
		}
		sums[b] += v
	}

	out := make(map[string]int, len(sums))
	for b, v := range sums {
		if v != 0 {
			out[b.String()] = v
		}
	}
	return out, nil
}

// formatExponents renders m as {k: v, ...} with sorted keys.
func formatExponents(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %d", k, m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
