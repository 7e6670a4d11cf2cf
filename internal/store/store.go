package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// catalogPragmas are passed to go-sqlite3 in the DSN so every pooled
// connection gets them, not just the first.
var catalogPragmas = url.Values{
	"_journal_mode": {"WAL"},
	"_synchronous":  {"NORMAL"},
	"_busy_timeout": {"5000"},
	"_foreign_keys": {"on"},
}

// migration upgrades a catalog created by an older unitgen to version.
type migration struct {
	version int
	stmt    string
}

// migrations run in order on catalogs whose user_version is below theirs.
var migrations = []migration{
	// Exponent lookups from `unitgen lookup --exp`.
	{version: 1, stmt: `CREATE INDEX IF NOT EXISTS idx_units_exponents
		ON units(exp_m, exp_kg, exp_s, exp_a, exp_k, exp_mol, exp_cd)`},
}

var currentSchemaVersion = migrations[len(migrations)-1].version

// IDGenerator generates run IDs.
// Implemented by UUIDv7Generator and testutil.FixedIDGenerator.
type IDGenerator interface {
	Generate() string
}

// Store is the catalog of generated unit tables: every table unitgen
// generated from, its units, and the runs that wrote Go source from it.
type Store struct {
	db  *sql.DB
	ids IDGenerator
}

// Open opens the catalog at path, creating it and upgrading its schema as
// needed. Opening an up-to-date catalog changes nothing.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("open catalog: path is required")
	}

	db, err := sql.Open("sqlite3", path+"?"+catalogPragmas.Encode())
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	// One writer at a time; generate records a table and a run per call.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}

	return &Store{db: db, ids: UUIDv7Generator{}}, nil
}

// SetIDGenerator replaces the generator used for run IDs.
func (s *Store) SetIDGenerator(g IDGenerator) {
	s.ids = g
}

// Close closes the catalog. Closing a zero Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// migrate creates missing relations and applies pending migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		if _, err := db.Exec(m.stmt); err != nil {
			return fmt.Errorf("migrate to v%d: %w", m.version, err)
		}
	}

	// PRAGMA takes no placeholders.
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// pragma reads the current value of a pragma.
func (s *Store) pragma(name string) (string, error) {
	var value string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		return "", fmt.Errorf("read pragma %s: %w", name, err)
	}
	return value, nil
}
