package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/uom/unit"
)

// resolver turns raw unit definitions into exponent vectors, following
// mul/div/inv references depth-first.
type resolver struct {
	raws     map[string]*rawUnit
	broken   map[string]bool // units that failed to parse or resolve
	resolved map[string]unit.Unit
	stack    []string // current reference path, for cycle reports
}

func newResolver(raws map[string]*rawUnit, broken map[string]bool) *resolver {
	return &resolver{
		raws:     raws,
		broken:   broken,
		resolved: make(map[string]unit.Unit),
	}
}

// resolve returns the unit for name. A nil unit with a nil error means name
// depends on a unit whose failure has already been reported.
func (r *resolver) resolve(name string) (*unit.Unit, error) {
	if u, ok := r.resolved[name]; ok {
		return &u, nil
	}
	if r.broken[name] {
		return nil, nil
	}

	for i, onStack := range r.stack {
		if onStack == name {
			path := append(append([]string{}, r.stack[i:]...), name)
			raw := r.raws[name]
			return nil, &CompileError{
				Field:   FieldCycle,
				Message: fmt.Sprintf("unit %s: reference cycle: %s", name, strings.Join(path, " → ")),
				Pos:     raw.pos,
			}
		}
	}

	raw := r.raws[name]
	r.stack = append(r.stack, name)
	u, err := r.compute(raw)
	r.stack = r.stack[:len(r.stack)-1]

	if err != nil || u == nil {
		r.broken[name] = true
		return nil, err
	}
	r.resolved[name] = *u
	return u, nil
}

// compute evaluates the definition of raw. Exponent overflow during the
// algebra is reported as an exponents error instead of a panic.
func (r *resolver) compute(raw *rawUnit) (result *unit.Unit, err error) {
	defer func() {
		if p := recover(); p != nil {
			var overflow *unit.OverflowError
			perr, ok := p.(error)
			if !ok || !errors.As(perr, &overflow) {
				panic(p)
			}
			result, err = nil, &CompileError{
				Field:   FieldExponents,
				Message: fmt.Sprintf("unit %s: exponent out of range for %s", raw.name, overflow.Base),
				Pos:     raw.pos,
			}
		}
	}()

	switch {
	case raw.base != nil:
		u := unit.Of(*raw.base)
		return &u, nil

	case raw.exponents != nil:
		u := *raw.exponents
		return &u, nil

	case raw.inv != "":
		ref, err := r.ref(raw, raw.inv)
		if err != nil || ref == nil {
			return nil, err
		}
		u := ref.Inv()
		return &u, nil
	}

	u := unit.None
	divs := raw.div
	if len(raw.mul) == 0 && len(divs) > 1 {
		// div: ["metre", "second"] reads as metre / second.
		first, err := r.ref(raw, divs[0])
		if err != nil || first == nil {
			return nil, err
		}
		u = *first
		divs = divs[1:]
	}
	for _, name := range raw.mul {
		ref, err := r.ref(raw, name)
		if err != nil || ref == nil {
			return nil, err
		}
		u = u.Mul(*ref)
	}
	for _, name := range divs {
		ref, err := r.ref(raw, name)
		if err != nil || ref == nil {
			return nil, err
		}
		u = u.Div(*ref)
	}
	return &u, nil
}

// ref resolves a reference from raw to another unit.
func (r *resolver) ref(raw *rawUnit, name string) (*unit.Unit, error) {
	if _, ok := r.raws[name]; !ok && !r.broken[name] {
		return nil, &CompileError{
			Field:   FieldReference,
			Message: fmt.Sprintf("unit %s: unknown unit %q", raw.name, name),
			Pos:     raw.pos,
		}
	}
	return r.resolve(name)
}
