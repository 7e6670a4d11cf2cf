package ir

// Version constants for the IR schema and the generator.
const (
	// IRVersion is the unit table IR schema version.
	IRVersion = "1"

	// GeneratorVersion is the unitgen version recorded with each run.
	GeneratorVersion = "0.1.0"
)
