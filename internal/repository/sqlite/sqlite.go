// Package sqlite implements the story catalog over a SQLite database.
//
// The default deployment reads the catalog from a flat stories.json, but a
// larger catalog is better served from a real database file. This backend is
// selected with STORIES_DRIVER=sqlite and reads the `stories` table. The
// catalog stays read-only from the service's point of view — rows are loaded
// by whatever editorial tooling maintains the catalog.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C compiler and makes
// cross-compilation painful. modernc.org/sqlite is a pure Go translation of
// SQLite — works everywhere Go works.
package sqlite

import (
	"database/sql"
	"fmt"

	// Blank import: the driver registers itself with database/sql under the
	// name "sqlite" in its init().
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides the catalog methods.
type DB struct {
	conn *sql.DB
}

// New opens the SQLite database at dbPath and ensures the stories table
// exists.
//
// dbPath examples:
//   - "data/stories.db" → file-based database
//   - ":memory:"        → in-memory database (tests; lost on close)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Ping forces an immediate connection so a bad path or permissions
	// problem surfaces now instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// migrate creates the stories table if it's absent. Idempotent, so it runs
// unconditionally on startup.
func (db *DB) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS stories (
		id        TEXT PRIMARY KEY,
		title     TEXT NOT NULL,
		region    TEXT NOT NULL DEFAULT '',
		synopsis  TEXT NOT NULL DEFAULT '',
		content   TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT ''
	);`

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: creating stories table: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
