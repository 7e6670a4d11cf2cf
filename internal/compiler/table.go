package compiler

import (
	"fmt"
	"go/token"
	"math"
	"regexp"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	cuetoken "cuelang.org/go/cue/token"

	"github.com/roach88/uom/internal/ir"
	"github.com/roach88/uom/unit"
)

// Field names reported in CompileError.Field.
const (
	FieldCUE        = "cue"
	FieldPackage    = "package"
	FieldName       = "name"
	FieldDimension  = "dimension"
	FieldSymbol     = "symbol"
	FieldBase       = "base"
	FieldExponents  = "exponents"
	FieldReference  = "reference"
	FieldCycle      = "cycle"
	FieldDefinition = "definition"
)

var unitNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// rawUnit is a unit as written in the source, before references resolve.
type rawUnit struct {
	name      string
	symbol    string
	dimension string
	doc       string
	base      *unit.Base
	exponents *unit.Unit
	mul       []string
	div       []string
	inv       string
	pos       cuetoken.Pos
}

// CompileTable parses a CUE value into a unit Table.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The value is the table root, e.g.:
//
//	pkg: "si"
//	unit: metre: {symbol: "m", dimension: "Length", base: "length"}
//	unit: metre_per_second: {dimension: "Velocity", div: ["metre", "second"]}
//
// mul multiplies the named units together and div divides the result by
// each named unit. When mul is absent and div names several units, the
// first div entry is the dividend: div: ["metre", "second"] is metre per
// second, while div: ["second"] alone is per second. References may point
// forward.
//
// With collectAll false, CompileTable stops at the first error.
func CompileTable(v cue.Value, collectAll bool) (*ir.Table, []error) {
	if err := v.Err(); err != nil {
		return nil, []error{formatCUEError(err)}
	}

	var errs []error
	fail := func(err error) bool {
		errs = append(errs, err)
		return !collectAll
	}

	table := &ir.Table{}

	pkgVal := v.LookupPath(cue.ParsePath("pkg"))
	if pkgVal.Exists() {
		pkg, err := pkgVal.String()
		if err != nil {
			if fail(formatCUEError(err)) {
				return nil, errs
			}
		} else if !token.IsIdentifier(pkg) {
			if fail(&CompileError{Field: FieldPackage, Message: fmt.Sprintf("%q is not a valid Go package name", pkg), Pos: pkgVal.Pos()}) {
				return nil, errs
			}
		}
		table.Package = pkg
	}

	unitsVal := v.LookupPath(cue.ParsePath("unit"))
	if !unitsVal.Exists() {
		return nil, append(errs, &CompileError{
			Field:   FieldDefinition,
			Message: "at least one unit is required",
			Pos:     v.Pos(),
		})
	}

	iter, err := unitsVal.Fields()
	if err != nil {
		return nil, append(errs, formatCUEError(err))
	}

	var order []string
	raws := make(map[string]*rawUnit)
	broken := make(map[string]bool)

	for iter.Next() {
		name := iter.Label()
		raw, err := parseUnit(name, iter.Value())
		if err != nil {
			broken[name] = true
			if fail(err) {
				return nil, errs
			}
			continue
		}
		order = append(order, name)
		raws[name] = raw
	}

	if len(order) == 0 && len(errs) == 0 {
		return nil, []error{&CompileError{
			Field:   FieldDefinition,
			Message: "at least one unit is required",
			Pos:     unitsVal.Pos(),
		}}
	}

	r := newResolver(raws, broken)
	for _, name := range order {
		u, err := r.resolve(name)
		if err != nil {
			if fail(err) {
				return nil, errs
			}
			continue
		}
		if u == nil {
			// Depends on a unit that already failed; that failure is reported.
			continue
		}

		raw := raws[name]
		symbol := raw.symbol
		if symbol == "" {
			symbol = u.String()
		}
		def := ir.NewUnitDef(name, symbol, raw.dimension, *u)
		def.Doc = raw.doc
		def.Base = raw.base != nil
		table.Units = append(table.Units, def)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	for _, verr := range Validate(table) {
		pos := cuetoken.NoPos
		if raw, ok := raws[verr.Unit]; ok {
			pos = raw.pos
		}
		if fail(&CompileError{Field: verr.Field, Message: verr.Message, Pos: pos}) {
			return nil, errs
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return table, nil
}

// parseUnit extracts one unit definition without resolving references.
func parseUnit(name string, v cue.Value) (*rawUnit, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	raw := &rawUnit{name: name, pos: v.Pos()}

	if !unitNamePattern.MatchString(name) {
		return nil, &CompileError{
			Field:   FieldName,
			Message: fmt.Sprintf("unit name %q must be lower_snake_case", name),
			Pos:     v.Pos(),
		}
	}

	// Parse dimension (required)
	dimVal := v.LookupPath(cue.ParsePath("dimension"))
	if !dimVal.Exists() {
		return nil, &CompileError{
			Field:   FieldDimension,
			Message: fmt.Sprintf("unit %s: dimension is required", name),
			Pos:     v.Pos(),
		}
	}
	dim, err := dimVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	raw.dimension = dim

	if raw.symbol, err = optionalString(v, "symbol"); err != nil {
		return nil, err
	}
	if raw.doc, err = optionalString(v, "doc"); err != nil {
		return nil, err
	}

	definitions := 0

	// base: a base quantity by symbol, unit name or quantity name
	if baseVal := v.LookupPath(cue.ParsePath("base")); baseVal.Exists() {
		definitions++
		s, err := baseVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		b, ok := unit.ParseBase(s)
		if !ok {
			return nil, &CompileError{
				Field:   FieldBase,
				Message: fmt.Sprintf("unit %s: unknown base %q", name, s),
				Pos:     baseVal.Pos(),
			}
		}
		raw.base = &b
	}

	// exponents: {m: 1, s: -2}
	if expVal := v.LookupPath(cue.ParsePath("exponents")); expVal.Exists() {
		definitions++
		u, err := parseExponents(name, expVal)
		if err != nil {
			return nil, err
		}
		raw.exponents = &u
	}

	mulVal := v.LookupPath(cue.ParsePath("mul"))
	divVal := v.LookupPath(cue.ParsePath("div"))
	if mulVal.Exists() || divVal.Exists() {
		definitions++
		if raw.mul, err = stringList(mulVal); err != nil {
			return nil, err
		}
		if raw.div, err = stringList(divVal); err != nil {
			return nil, err
		}
		if len(raw.mul) == 0 && len(raw.div) == 0 {
			return nil, &CompileError{
				Field:   FieldDefinition,
				Message: fmt.Sprintf("unit %s: mul/div must name at least one unit", name),
				Pos:     v.Pos(),
			}
		}
	}

	if invVal := v.LookupPath(cue.ParsePath("inv")); invVal.Exists() {
		definitions++
		if raw.inv, err = invVal.String(); err != nil {
			return nil, formatCUEError(err)
		}
		if raw.inv == "" {
			return nil, &CompileError{
				Field:   FieldReference,
				Message: fmt.Sprintf("unit %s: inv must name a unit", name),
				Pos:     invVal.Pos(),
			}
		}
	}

	switch {
	case definitions == 0:
		return nil, &CompileError{
			Field:   FieldDefinition,
			Message: fmt.Sprintf("unit %s: one of base, exponents, mul/div or inv is required", name),
			Pos:     v.Pos(),
		}
	case definitions > 1:
		return nil, &CompileError{
			Field:   FieldDefinition,
			Message: fmt.Sprintf("unit %s: base, exponents, mul/div and inv are mutually exclusive", name),
			Pos:     v.Pos(),
		}
	}

	return raw, nil
}

// parseExponents reads a struct of base symbol -> integer exponent.
func parseExponents(name string, v cue.Value) (unit.Unit, error) {
	iter, err := v.Fields()
	if err != nil {
		return unit.None, formatCUEError(err)
	}

	u := unit.None
	for iter.Next() {
		label := iter.Label()
		b, ok := unit.ParseBase(label)
		if !ok {
			return unit.None, &CompileError{
				Field:   FieldExponents,
				Message: fmt.Sprintf("unit %s: unknown base %q", name, label),
				Pos:     iter.Value().Pos(),
			}
		}
		if iter.Value().IncompleteKind() != cue.IntKind {
			return unit.None, &CompileError{
				Field:   FieldExponents,
				Message: fmt.Sprintf("unit %s: exponent for %s must be an integer", name, label),
				Pos:     iter.Value().Pos(),
			}
		}
		e, err := iter.Value().Int64()
		if err != nil {
			return unit.None, formatCUEError(err)
		}
		if e < math.MinInt16 || e > math.MaxInt16 {
			return unit.None, &CompileError{
				Field:   FieldExponents,
				Message: fmt.Sprintf("unit %s: exponent %d for %s is out of range", name, e, label),
				Pos:     iter.Value().Pos(),
			}
		}
		u = u.With(b, int(e))
	}
	return u, nil
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func stringList(v cue.Value) ([]string, error) {
	if !v.Exists() {
		return nil, nil
	}
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     cuetoken.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   FieldCUE,
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
