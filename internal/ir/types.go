package ir

import "github.com/roach88/uom/unit"

// Table is a compiled unit table.
type Table struct {
	Package string    `json:"package"`
	Source  string    `json:"source,omitempty"` // file or directory the table was loaded from
	Units   []UnitDef `json:"units"`
}

// UnitDef is one named unit with its resolved exponents.
type UnitDef struct {
	Name      string         `json:"name"`      // "metre", "metre_per_second"
	Symbol    string         `json:"symbol"`    // "m", "N"
	Dimension string         `json:"dimension"` // Go marker type name, e.g. "Length"
	Doc       string         `json:"doc,omitempty"`
	Base      bool           `json:"base"`
	Exponents map[string]int `json:"exponents"` // base symbol -> exponent, nonzero only
	Unit      unit.Unit      `json:"-"`
}

// NewUnitDef builds a UnitDef whose Exponents mirror u.
func NewUnitDef(name, symbol, dimension string, u unit.Unit) UnitDef {
	return UnitDef{
		Name:      name,
		Symbol:    symbol,
		Dimension: dimension,
		Exponents: ExponentMap(u),
		Unit:      u,
	}
}

// ExponentMap returns the nonzero exponents of u keyed by base symbol.
func ExponentMap(u unit.Unit) map[string]int {
	m := make(map[string]int)
	for _, b := range unit.Bases {
		if e := u.Exp(b); e != 0 {
			m[b.String()] = e
		}
	}
	return m
}

// Lookup returns the unit named name.
func (t *Table) Lookup(name string) (UnitDef, bool) {
	for _, d := range t.Units {
		if d.Name == name {
			return d, true
		}
	}
	return UnitDef{}, false
}

// FindByUnit returns the first unit, in declaration order, equal to u.
func (t *Table) FindByUnit(u unit.Unit) (UnitDef, bool) {
	for _, d := range t.Units {
		if d.Unit == u {
			return d, true
		}
	}
	return UnitDef{}, false
}

// BaseCount returns the number of base units in the table.
func (t *Table) BaseCount() int {
	n := 0
	for _, d := range t.Units {
		if d.Base {
			n++
		}
	}
	return n
}
