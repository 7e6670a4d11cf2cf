package quantity

import (
	"math"
	"strconv"

	"github.com/roach88/uom/unit"
)

// Quantity is a float64 value whose unit is fixed by the type parameter D.
type Quantity[D Dimension] struct {
	value float64
}

// New wraps v as a quantity of dimension D.
func New[D Dimension](v float64) Quantity[D] {
	return Quantity[D]{value: v}
}

// Value returns the raw payload.
func (q Quantity[D]) Value() float64 {
	return q.value
}

// Unit returns the unit named by D.
func (q Quantity[D]) Unit() unit.Unit {
	return UnitOf[D]()
}

// Add returns q + rhs.
func (q Quantity[D]) Add(rhs Quantity[D]) Quantity[D] {
	return Quantity[D]{value: q.value + rhs.value}
}

// Sub returns q - rhs.
func (q Quantity[D]) Sub(rhs Quantity[D]) Quantity[D] {
	return Quantity[D]{value: q.value - rhs.value}
}

// MulScalar scales the payload by k.
func (q Quantity[D]) MulScalar(k float64) Quantity[D] {
	return Quantity[D]{value: q.value * k}
}

// DivScalar divides the payload by k.
func (q Quantity[D]) DivScalar(k float64) Quantity[D] {
	return Quantity[D]{value: q.value / k}
}

// Neg returns -q.
func (q Quantity[D]) Neg() Quantity[D] {
	return Quantity[D]{value: -q.value}
}

// Abs returns |q|.
func (q Quantity[D]) Abs() Quantity[D] {
	return Quantity[D]{value: math.Abs(q.value)}
}

// Equal compares payloads with ordinary float64 equality; NaN is never equal.
func (q Quantity[D]) Equal(rhs Quantity[D]) bool {
	return q.value == rhs.value
}

// Less reports whether q < rhs.
func (q Quantity[D]) Less(rhs Quantity[D]) bool {
	return q.value < rhs.value
}

// AddAssign adds rhs to q in place.
func (q *Quantity[D]) AddAssign(rhs Quantity[D]) {
	q.value += rhs.value
}

// SubAssign subtracts rhs from q in place.
func (q *Quantity[D]) SubAssign(rhs Quantity[D]) {
	q.value -= rhs.value
}

// MulAssign scales q by k in place.
func (q *Quantity[D]) MulAssign(k float64) {
	q.value *= k
}

// DivAssign divides q by k in place.
func (q *Quantity[D]) DivAssign(k float64) {
	q.value /= k
}

// String renders the payload followed by the unit, e.g. "5 * m * s^-2".
// Dimensionless quantities render as the bare number.
func (q Quantity[D]) String() string {
	num := strconv.FormatFloat(q.value, 'g', -1, 64)
	u := q.Unit()
	if u.IsDimensionless() {
		return num
	}
	return num + " * " + u.String()
}

// Scale returns k * q. It is the number-first form of q.MulScalar(k).
func Scale[D Dimension](k float64, q Quantity[D]) Quantity[D] {
	return Quantity[D]{value: k * q.value}
}

// Mul multiplies two quantities of any dimensions.
func Mul[A, B Dimension](a Quantity[A], b Quantity[B]) Quantity[Prod[A, B]] {
	return Quantity[Prod[A, B]]{value: a.value * b.value}
}

// Div divides two quantities of any dimensions. Division by a zero
// payload follows float64 semantics.
func Div[A, B Dimension](a Quantity[A], b Quantity[B]) Quantity[Quot[A, B]] {
	return Quantity[Quot[A, B]]{value: a.value / b.value}
}

// Recip returns k / q, a quantity of the inverted dimension.
func Recip[D Dimension](k float64, q Quantity[D]) Quantity[Inv[D]] {
	return Quantity[Inv[D]]{value: k / q.value}
}

// Sum adds qs together; the sum of no quantities is zero.
func Sum[D Dimension](qs ...Quantity[D]) Quantity[D] {
	var total Quantity[D]
	for _, q := range qs {
		total.value += q.value
	}
	return total
}
