// Package quantity provides Quantity, a float64 tagged at compile time with
// a physical dimension.
//
// The dimension is a type parameter satisfying Dimension. Dimension types
// are empty structs, so a Quantity occupies exactly the bytes of its
// float64 payload. Operations that keep the dimension (Add, Sub, Equal,
// scalar scaling, the in-place variants) require both operands to share
// the same type parameter, so mixing a length with a mass is a type error.
//
// Mul, Div and Recip compute the result dimension from the operand types:
//
//	v := quantity.Div(d, t) // Quantity[Quot[Length, Time]]
//	a := quantity.Div(v, t) // Quantity[Quot[Quot[Length, Time], Time]]
//
// Structurally different dimension types may denote the same unit. As and
// Convert retag a quantity to an equivalent dimension; As panics with a
// *MismatchError when the units differ.
package quantity
