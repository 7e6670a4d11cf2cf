package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/uom/internal/ir"
	"github.com/roach88/uom/unit"
)

// Run records one generation of Go source from a catalogued table.
type Run struct {
	ID               string `json:"id"`
	Seq              int64  `json:"seq"`
	TableHash        string `json:"table_hash"`
	Package          string `json:"package"`
	Source           string `json:"source"`
	Output           string `json:"output"`
	UnitCount        int    `json:"unit_count"`
	Helpers          bool   `json:"helpers"`
	GeneratorVersion string `json:"generator_version"`
	IRVersion        string `json:"ir_version"`
}

// SaveTable stores t and its units, keyed by ir.TableHash.
// Saving a table that is already catalogued is a no-op; created reports
// whether a new row was written.
func (s *Store) SaveTable(ctx context.Context, t *ir.Table) (hash string, created bool, err error) {
	hash, err = ir.TableHash(t)
	if err != nil {
		return "", false, fmt.Errorf("save table: %w", err)
	}
	canonical, err := ir.MarshalCanonical(t)
	if err != nil {
		return "", false, fmt.Errorf("save table: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("save table: begin: %w", err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT hash FROM tables WHERE hash = ?`, hash).Scan(&existing)
	switch {
	case err == nil:
		return hash, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", false, fmt.Errorf("save table: %w", err)
	}

	seq, err := nextSeq(ctx, tx, "tables")
	if err != nil {
		return "", false, fmt.Errorf("save table: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tables (hash, seq, package, ir_version, canonical)
		VALUES (?, ?, ?, ?, ?)
	`, hash, seq, t.Package, ir.IRVersion, string(canonical))
	if err != nil {
		return "", false, fmt.Errorf("save table: %w", err)
	}

	for i, d := range t.Units {
		e := d.Unit.Exponents()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO units
			(table_hash, ord, name, symbol, dimension, base, exp_m, exp_kg, exp_s, exp_a, exp_k, exp_mol, exp_cd)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			hash, i, d.Name, d.Symbol, d.Dimension, boolToInt(d.Base),
			e[unit.Length], e[unit.Mass], e[unit.Time], e[unit.Current],
			e[unit.Temperature], e[unit.Substance], e[unit.Luminosity],
		)
		if err != nil {
			return "", false, fmt.Errorf("save table: unit %s: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("save table: commit: %w", err)
	}
	return hash, true, nil
}

// RecordRun appends a generation run. The store assigns Seq, and ID when
// r.ID is empty. The referenced table must already be saved.
func (s *Store) RecordRun(ctx context.Context, r Run) (Run, error) {
	if r.TableHash == "" {
		return Run{}, fmt.Errorf("record run: table hash is required")
	}
	if r.ID == "" {
		r.ID = s.ids.Generate()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("record run: begin: %w", err)
	}
	defer tx.Rollback()

	if r.Seq, err = nextSeq(ctx, tx, "runs"); err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, table_hash, package, source, output, unit_count, helpers, generator_version, ir_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.Seq, r.TableHash, r.Package, r.Source, r.Output,
		r.UnitCount, boolToInt(r.Helpers), r.GeneratorVersion, r.IRVersion,
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("record run: commit: %w", err)
	}
	return r, nil
}

// nextSeq returns the next logical clock value for table.
// table is one of the fixed catalog table names, never user input.
func nextSeq(ctx context.Context, tx *sql.Tx, table string) (int64, error) {
	var seq int64
	err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) + 1 FROM "+table).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next seq for %s: %w", table, err)
	}
	return seq, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
