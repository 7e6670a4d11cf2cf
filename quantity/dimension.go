package quantity

import "github.com/roach88/uom/unit"

// Dimension is implemented by zero-size marker types that name a unit.
// Unit must depend only on the type, never on the receiver's value.
type Dimension interface {
	Unit() unit.Unit
}

// One is the dimensionless marker.
type One struct{}

func (One) Unit() unit.Unit { return unit.None }

// Prod is the dimension of the product of an A and a B.
type Prod[A, B Dimension] struct{}

func (Prod[A, B]) Unit() unit.Unit {
	var a A
	var b B
	return a.Unit().Mul(b.Unit())
}

// Quot is the dimension of an A divided by a B.
type Quot[A, B Dimension] struct{}

func (Quot[A, B]) Unit() unit.Unit {
	var a A
	var b B
	return a.Unit().Div(b.Unit())
}

// Inv is the reciprocal of D.
type Inv[D Dimension] struct{}

func (Inv[D]) Unit() unit.Unit {
	var d D
	return d.Unit().Inv()
}

// UnitOf returns the unit named by D.
func UnitOf[D Dimension]() unit.Unit {
	var d D
	return d.Unit()
}
