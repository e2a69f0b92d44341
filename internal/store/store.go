// Package store wraps the embedded SQLite database that stands in for
// the browser-local storage of the original product: durable, file-local,
// single writer. Access goes through typed methods per entity; raw keys
// never leak to callers.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps database access.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database file at path. Use ":memory:" for
// an ephemeral store in tests.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store: database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Single connection: one user, one writer, no locking discipline.
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		var out string
		_ = db.QueryRow(pragma).Scan(&out)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema sets up tables.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS diagnostic_results (
	role text primary key,
	payload text not null,
	submitted_at timestamp not null
);

CREATE TABLE IF NOT EXISTS actions (
	action_id text primary key,
	payload text not null,
	updated_at timestamp not null
);

CREATE TABLE IF NOT EXISTS pulses (
	id text primary key,
	action_id text not null,
	answer text not null,
	submitted_at timestamp not null
);

CREATE TABLE IF NOT EXISTS checkins (
	id text primary key,
	week_id text not null,
	clarity text not null,
	blockage text not null,
	created_at timestamp not null
);

CREATE TABLE IF NOT EXISTS blockage_reports (
	id text primary key,
	week_id text not null,
	report text not null,
	created_at timestamp not null
);

CREATE TABLE IF NOT EXISTS drafts (
	key text primary key,
	payload text not null,
	updated_at timestamp not null
);

CREATE TABLE IF NOT EXISTS plans (
	id integer primary key check (id = 1),
	payload text not null,
	generated_at timestamp not null
);

CREATE INDEX IF NOT EXISTS pulses_action_id_idx ON pulses(action_id);
`)
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// Timestamps are stored as RFC 3339 text so rows stay readable and the
// driver never has to guess a time encoding.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Reset drops all stored data. Schema stays in place.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{
		"diagnostic_results", "actions", "pulses", "checkins", "blockage_reports", "drafts", "plans",
	} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
