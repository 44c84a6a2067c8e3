// Package cache keeps the records of tokens the CLI has seen in a local
// SQLite database, so they can be listed without a server round trip.
package cache

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Entry is a cached token record.
type Entry struct {
	ID     registry.TokenID
	Record registry.Record
	SeenAt time.Time
}

type Cache struct {
	db     dbx.DBTX
	closer func() error
}

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Open opens the SQLite database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// :memory: databases live per connection.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db, closer: db.Close}, nil
}

// New wraps an already migrated database.
func New(db dbx.DBTX) *Cache {
	return &Cache{db: db}
}

func (c *Cache) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// Put stores or replaces the record of token id.
func (c *Cache) Put(ctx context.Context, id registry.TokenID, rec registry.Record, seenAt time.Time) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO tokens (id, username, item, seen_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET username = excluded.username, item = excluded.item, seen_at = excluded.seen_at
	`, int64(id), rec.Username, rec.Item, seenAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to cache token %d: %w", id, err)
	}
	return nil
}

// Get returns the cached record of token id, if any.
func (c *Cache) Get(ctx context.Context, id registry.TokenID) (Entry, bool, error) {
	var (
		e   Entry
		raw int64
	)
	err := c.db.QueryRowContext(ctx, `SELECT id, username, item, seen_at FROM tokens WHERE id = ?`, int64(id)).
		Scan(&raw, &e.Record.Username, &e.Record.Item, &e.SeenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to get cached token %d: %w", id, err)
	}
	e.ID = registry.TokenID(raw)
	return e, true, nil
}

// Delete forgets token id. Deleting an absent token is not an error.
func (c *Cache) Delete(ctx context.Context, id registry.TokenID) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM tokens WHERE id = ?`, int64(id)); err != nil {
		return fmt.Errorf("failed to delete cached token %d: %w", id, err)
	}
	return nil
}

// List returns every cached token ordered by id.
func (c *Cache) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, username, item, seen_at FROM tokens ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached tokens: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e   Entry
			raw int64
		)
		if err := rows.Scan(&raw, &e.Record.Username, &e.Record.Item, &e.SeenAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached token: %w", err)
		}
		e.ID = registry.TokenID(raw)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached tokens: %w", err)
	}
	return out, nil
}

// Clear removes every cached token.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM tokens`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
