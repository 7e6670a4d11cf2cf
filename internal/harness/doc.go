// Package harness runs table conformance scenarios.
//
// A scenario is a YAML file naming one or more table files and stating
// what they must compile to:
//
//	name: mechanics
//	description: force and energy resolve through references
//	tables: [tables/mechanics.cue]
//	expect:
//	  newton: {unit: "m * kg * s^-2", symbol: N}
//	  joule: {exponents: {m: 2, kg: 1, s: -2}}
//	helpers: [MulMassAcceleration]
//	golden: true
//
// A scenario may instead list the errors a broken table must produce:
//
//	errors:
//	  - {field: cycle, contains: "a → b → a"}
//
// Run compiles the tables in collect-all mode, checks every expectation
// and renders the generated Go source. With golden set, the source is
// also compared against a golden file (see RunWithGolden).
package harness
