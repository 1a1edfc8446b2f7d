// Package storage provides SQLite persistence for practice sessions and
// their move logs.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// connPragmas are applied to the single pooled connection on open.
var connPragmas = []struct {
	name string
	stmt string
}{
	{"foreign keys", "PRAGMA foreign_keys = ON"},
	{"WAL mode", "PRAGMA journal_mode = WAL"},
	{"busy timeout", "PRAGMA busy_timeout = 5000"},
}

// DB is a migrated session database.
type DB struct {
	*sql.DB
	path string
}

// Open opens the session database at path, creating the file and its
// directory if needed, and brings the schema up to date.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// PRAGMAs are per connection, so the pool is pinned to one.
	sqlDB.SetMaxOpenConns(1)

	for _, p := range connPragmas {
		if _, err := sqlDB.Exec(p.stmt); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to set %s: %w", p.name, err)
		}
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.MigrateUp(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", path, err)
	}
	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// MigrateUp applies pending migrations. Open already calls it; running it
// again is a no-op.
func (db *DB) MigrateUp() error {
	return applyMigrations(db.DB)
}

// CurrentVersion returns the schema version.
func (db *DB) CurrentVersion() (int, error) {
	return currentVersion(db.DB)
}

// Transaction runs fn in a transaction, committing when fn returns nil
// and rolling back otherwise. fn must only use tx: the pool holds a single
// connection, so queries on db would block.
func (db *DB) Transaction(fn func(*sql.Tx) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
