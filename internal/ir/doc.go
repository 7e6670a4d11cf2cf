// Package ir provides the intermediate representation of a compiled unit table.
//
// The compiler produces a Table from CUE or YAML sources; codegen and store
// consume it. ir imports only the public unit package, never another
// internal package.
//
// Key design constraints:
//   - Units keep declaration order; codegen output depends on it
//   - Every UnitDef carries a fully resolved unit.Unit
//   - Canonical JSON has no floats; exponents are integers
//   - All JSON tags use snake_case
package ir
