// Package cache keeps the last successfully fetched list per resource in a
// local sqlite database, so pages can show the most recent known data when
// the backend is unreachable. Snapshots are advisory: the backend record is
// always the source of truth.
package cache

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNoSnapshot is returned by Load when no snapshot exists for the resource.
var ErrNoSnapshot = errors.New("no snapshot")

// Snapshots is the sqlite-backed snapshot store.
type Snapshots struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database at dsn and applies pending
// migrations.
func Open(ctx context.Context, dsn string) (*Snapshots, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate snapshot db: %w", err)
	}
	return &Snapshots{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

// Save stores v as the current snapshot for resource, replacing any previous
// one.
func (s *Snapshots) Save(ctx context.Context, resource string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot[%s]: %w", resource, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (resource, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(resource) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, resource, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot[%s]: %w", resource, err)
	}
	return nil
}

// Load decodes the snapshot for resource into out and reports when it was
// fetched. Returns ErrNoSnapshot when the resource was never cached.
func (s *Snapshots) Load(ctx context.Context, resource string, out any) (time.Time, error) {
	var payload []byte
	var fetchedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM snapshots WHERE resource = ?`, resource).
		Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load snapshot[%s]: %w", resource, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode snapshot[%s]: %w", resource, err)
	}
	return fetchedAt, nil
}

// Clear drops every stored snapshot (e.g. on logout).
func (s *Snapshots) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}

func (s *Snapshots) Close() error {
	return s.db.Close()
}
