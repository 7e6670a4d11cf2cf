// Package testutil holds helpers shared by tests across the module:
// deterministic ID generation for catalog runs and a go/types checker
// that imports this module's packages from source, used to prove that
// dimension mismatches are rejected at compile time.
package testutil
