package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/uom/internal/ir"
	"github.com/roach88/uom/internal/testutil"
	"github.com/roach88/uom/unit"
)

// createTestStore creates a new store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	s.SetIDGenerator(testutil.NewFixedIDGenerator(""))
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestTable builds a small mechanics table.
func createTestTable(pkg string) *ir.Table {
	metre := ir.NewUnitDef("metre", "m", "Length", unit.Of(unit.Length))
	metre.Base = true
	second := ir.NewUnitDef("second", "s", "Time", unit.Of(unit.Time))
	second.Base = true
	return &ir.Table{
		Package: pkg,
		Source:  "units.cue",
		Units: []ir.UnitDef{
			metre,
			second,
			ir.NewUnitDef("metre_per_second", "m/s", "Velocity", unit.New(1, 0, -1, 0, 0, 0, 0)),
			ir.NewUnitDef("hertz", "Hz", "Frequency", unit.Of(unit.Time).Inv()),
		},
	}
}
