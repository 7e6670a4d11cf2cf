package store

import (
	"context"
	"fmt"
)

// UnitMatch is a catalogued unit returned by FindUnits.
type UnitMatch struct {
	TableHash string `json:"table_hash"`
	Package   string `json:"package"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Dimension string `json:"dimension"`
	Base      bool   `json:"base"`
}

// TableInfo summarises a catalogued table.
type TableInfo struct {
	Hash      string `json:"hash"`
	Seq       int64  `json:"seq"`
	Package   string `json:"package"`
	IRVersion string `json:"ir_version"`
	UnitCount int    `json:"unit_count"`
}

// Runs returns every generation run.
// Results are ordered deterministically: ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, table_hash, package, source, output, unit_count, helpers, generator_version, ir_version
		FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		var helpers int
		if err := rows.Scan(&r.ID, &r.Seq, &r.TableHash, &r.Package, &r.Source, &r.Output,
			&r.UnitCount, &helpers, &r.GeneratorVersion, &r.IRVersion); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Helpers = helpers != 0
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Tables returns every catalogued table in seq order.
func (s *Store) Tables(ctx context.Context) ([]TableInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.hash, t.seq, t.package, t.ir_version, COUNT(u.name)
		FROM tables t
		LEFT JOIN units u ON u.table_hash = t.hash
		GROUP BY t.hash
		ORDER BY t.seq ASC, t.hash COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	tables := []TableInfo{}
	for rows.Next() {
		var info TableInfo
		if err := rows.Scan(&info.Hash, &info.Seq, &info.Package, &info.IRVersion, &info.UnitCount); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}
	return tables, nil
}
