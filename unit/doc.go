// Package unit provides the exponent-vector algebra behind uom's typed
// quantities.
//
// A Unit records one signed exponent per SI base quantity. Units combine
// by adding (Mul) or subtracting (Div) exponents, and two units are equal
// iff every exponent is equal, so Go's == works directly on Unit values.
//
// Key design constraints:
//   - Unit is immutable; every operation returns a new value
//   - Exponents are int16; leaving that range panics with *OverflowError
//   - Rendering order is fixed: m, kg, s, A, K, mol, cd
//   - Zero exponents never render; exponent 1 renders as the bare symbol
package unit
