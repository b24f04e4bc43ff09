// Package assets caches downloaded image bytes in a local SQLite
// database keyed by image ref, so repeated generation runs against the
// same document do not re-fetch.
package assets

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Cache is the on-disk image store.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path.
//
// The database is configured with WAL mode for concurrent reads, NORMAL
// synchronous mode and a 5-second busy timeout. Safe to call on an
// existing cache.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to cache: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent puts.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Put stores or replaces the bytes for one image ref.
func (c *Cache) Put(ctx context.Context, ref, contentType string, data []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO images (ref, content_type, data) VALUES (?, ?, ?)`,
		ref, contentType, data)
	if err != nil {
		return fmt.Errorf("put %s: %w", ref, err)
	}
	return nil
}

// Get returns the cached bytes for ref. The second result is false on a
// cache miss.
func (c *Cache) Get(ctx context.Context, ref string) ([]byte, bool, error) {
	var data []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT data FROM images WHERE ref = ?`, ref).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", ref, err)
	}
	return data, true, nil
}

// Has reports whether ref is cached.
func (c *Cache) Has(ctx context.Context, ref string) (bool, error) {
	var one int
	err := c.db.QueryRowContext(ctx,
		`SELECT 1 FROM images WHERE ref = ?`, ref).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("has %s: %w", ref, err)
	}
	return true, nil
}

// Refs lists every cached ref in insertion-independent sorted order.
func (c *Cache) Refs(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT ref FROM images ORDER BY ref`)
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scan ref: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}
