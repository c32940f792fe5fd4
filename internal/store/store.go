// Package store provides the SQLite storage layer for extracted
// mobile-money transaction records.
//
// Each transaction category has its own table, one column per schema field,
// with the category's natural identifier declared as the key. Insertion is
// idempotent on that identifier: re-loading the same export is safe and
// reports duplicates instead of failing.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DefaultDBPath is the default database location.
const DefaultDBPath = "momo_data.db"

// Config holds configuration for Open.
type Config struct {
	Path string
}

// Store is a SQLite-backed record store. Open it once per run and close it
// on every exit path; it replaces any ad hoc shared connection handling.
type Store struct {
	db     *sql.DB
	path   string
	logger zerolog.Logger
}

// Open opens (creating if necessary) the database at cfg.Path and runs the
// bootstrap DDL. Pass ":memory:" for in-memory databases (testing).
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultDBPath
	}

	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating db directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	s := &Store{
		db:     db,
		path:   cfg.Path,
		logger: logger.With().Str("component", "store").Logger(),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// migrate creates all category tables if they don't exist. The DDL is
// idempotent; there is no schema versioning beyond CREATE IF NOT EXISTS.
func (s *Store) migrate() error {
	for _, spec := range tables {
		if _, err := s.db.Exec(spec.ddl); err != nil {
			return fmt.Errorf("creating table %s: %w", spec.name, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
