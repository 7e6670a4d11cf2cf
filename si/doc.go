// Package si defines the SI base units and a set of coherent derived units
// as typed quantities.
//
// Each unit has a dimension marker type (Length), a unit.Unit (MetreUnit)
// and a quantity of one (Metre), so literals read naturally:
//
//	d := quantity.Scale(100, si.Metre)
//	t := quantity.Scale(9.58, si.Second)
//	v := si.DivLengthTime(d, t) // quantity.Quantity[si.Velocity]
//
// The contents of si_gen.go are generated from si.cue.
package si

//go:generate go run ../cmd/unitgen generate . -o si_gen.go
