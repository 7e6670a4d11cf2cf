package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Base identifies one of the seven SI base quantities.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Substance
	Luminosity

	// NumBases is the number of exponents carried by a Unit.
	NumBases = 7
)

var baseSymbols = [NumBases]string{"m", "kg", "s", "A", "K", "mol", "cd"}

var baseNames = [NumBases]string{"metre", "kilogram", "second", "ampere", "kelvin", "mole", "candela"}

var baseQuantities = [NumBases]string{"length", "mass", "time", "current", "temperature", "substance", "luminosity"}

// Bases lists every Base in rendering order.
var Bases = [NumBases]Base{Length, Mass, Time, Current, Temperature, Substance, Luminosity}

// String returns the SI symbol of the base unit ("m", "kg", ...).
func (b Base) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseSymbols[b]
}

// Name returns the SI name of the base unit ("metre", "kilogram", ...).
func (b Base) Name() string {
	if !b.Valid() {
		return ""
	}
	return baseNames[b]
}

// Quantity returns the name of the base quantity ("length", "mass", ...).
func (b Base) Quantity() string {
	if !b.Valid() {
		return ""
	}
	return baseQuantities[b]
}

// Valid reports whether b is one of the seven SI bases.
func (b Base) Valid() bool {
	return b >= 0 && b < NumBases
}

// ParseBase resolves a base by symbol ("m"), unit name ("metre") or
// quantity name ("length").
func ParseBase(s string) (Base, bool) {
	for _, b := range Bases {
		if s == baseSymbols[b] || s == baseNames[b] || s == baseQuantities[b] {
			return b, true
		}
	}
	return 0, false
}

// Unit is a physical dimension expressed as one exponent per base.
type Unit struct {
	exp [NumBases]int16
}

// None is the dimensionless unit and the identity of Mul.
var None = Unit{}

// New builds a unit from seven exponents in base order.
func New(m, kg, s, a, k, mol, cd int) Unit {
	var u Unit
	for i, e := range [NumBases]int{m, kg, s, a, k, mol, cd} {
		u.exp[i] = checked(Base(i), e)
	}
	return u
}

// Of returns the base unit for b (exponent 1 at b, zero elsewhere).
func Of(b Base) Unit {
	return None.With(b, 1)
}

// With returns a copy of u with the exponent at b replaced by exp.
func (u Unit) With(b Base, exp int) Unit {
	if !b.Valid() {
		panic(fmt.Sprintf("unit: invalid base %d", int(b)))
	}
	u.exp[b] = checked(b, exp)
	return u
}

// Exp returns the exponent at b.
func (u Unit) Exp(b Base) int {
	return int(u.exp[b])
}

// Exponents returns a copy of all seven exponents in base order.
func (u Unit) Exponents() [NumBases]int {
	var out [NumBases]int
	for i, e := range u.exp {
		out[i] = int(e)
	}
	return out
}

// Inv negates every exponent.
func (u Unit) Inv() Unit {
	var out Unit
	for i, e := range u.exp {
		out.exp[i] = checked(Base(i), -int(e))
	}
	return out
}

// Mul adds exponents element-wise.
func (u Unit) Mul(rhs Unit) Unit {
	var out Unit
	for i := range u.exp {
		out.exp[i] = checked(Base(i), int(u.exp[i])+int(rhs.exp[i]))
	}
	return out
}

// Div subtracts the exponents of rhs from u.
func (u Unit) Div(rhs Unit) Unit {
	var out Unit
	for i := range u.exp {
		out.exp[i] = checked(Base(i), int(u.exp[i])-int(rhs.exp[i]))
	}
	return out
}

// Pow raises u to the integer power n. Pow(0) is None.
func (u Unit) Pow(n int) Unit {
	var out Unit
	for i, e := range u.exp {
		if e == 0 {
			continue
		}
		// |e| <= 1<<15, so once |n| fits in int16 the product fits in int.
		if n > math.MaxInt16 || n < math.MinInt16 {
			panic(&OverflowError{Base: Base(i), Value: saturate(int(e), n)})
		}
		out.exp[i] = checked(Base(i), int(e)*n)
	}
	return out
}

// Equal reports whether all exponents of u and rhs match.
func (u Unit) Equal(rhs Unit) bool {
	return u == rhs
}

// IsDimensionless reports whether u is None.
func (u Unit) IsDimensionless() bool {
	return u == None
}

// String renders u as e.g. "m * kg * s^-2" in fixed base order.
// The dimensionless unit renders as "".
func (u Unit) String() string {
	var b strings.Builder
	for i, e := range u.exp {
		if e == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" * ")
		}
		b.WriteString(baseSymbols[i])
		if e != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(int(e)))
		}
	}
	return b.String()
}

// GoString renders u as a New call, used by generated code and %#v.
func (u Unit) GoString() string {
	parts := make([]string, NumBases)
	for i, e := range u.exp {
		parts[i] = strconv.Itoa(int(e))
	}
	return "unit.New(" + strings.Join(parts, ", ") + ")"
}

// OverflowError reports an exponent that left the int16 range.
type OverflowError struct {
	Base  Base
	Value int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("unit: exponent %d for %s overflows int16", e.Value, e.Base)
}

// Try evaluates f and returns the *OverflowError it panics with as an
// error. Other panics propagate.
func Try(f func() Unit) (u Unit, err error) {
	defer func() {
		if r := recover(); r != nil {
			overflow, ok := r.(*OverflowError)
			if !ok {
				panic(r)
			}
			u, err = None, overflow
		}
	}()
	return f(), nil
}

// saturate reports the sign of e*n at the int limits, for products too
// large to compute.
func saturate(e, n int) int {
	if (e < 0) != (n < 0) {
		return math.MinInt
	}
	return math.MaxInt
}

// checked narrows v to int16, panicking with *OverflowError when it does not fit.
func checked(b Base, v int) int16 {
	if v < math.MinInt16 || v > math.MaxInt16 {
		panic(&OverflowError{Base: b, Value: v})
	}
	return int16(v)
}
