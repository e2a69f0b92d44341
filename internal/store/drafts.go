package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talentlab/internal/navigator"
)

// SaveDraft stores any JSON-serializable document under a draft key,
// overwriting the previous value. Intake forms autosave through this on
// every change.
func (s *Store) SaveDraft(ctx context.Context, key string, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal draft %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO drafts (key, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (key)
DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at;`,
		key, string(payload), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("save draft %s: %w", key, err)
	}
	return nil
}

// LoadDraft reads a draft into doc. Absent keys and payloads that no
// longer parse both report ok=false with doc untouched.
func (s *Store) LoadDraft(ctx context.Context, key string, doc any) (bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM drafts WHERE key=?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load draft %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), doc); err != nil {
		return false, nil
	}
	return true, nil
}

// ClearDraft removes a draft; clearing an absent key is not an error.
func (s *Store) ClearDraft(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE key=?`, key); err != nil {
		return fmt.Errorf("clear draft %s: %w", key, err)
	}
	return nil
}

// RawDraft returns the stored JSON payload for a key, for surfaces that
// pass drafts through without interpreting them.
func (s *Store) RawDraft(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM drafts WHERE key=?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load draft %s: %w", key, err)
	}
	if !json.Valid([]byte(payload)) {
		return nil, false, nil
	}
	return json.RawMessage(payload), true, nil
}

// NavigatorDrafts adapts the draft table to the navigator's store seam.
func (s *Store) NavigatorDrafts() navigator.DraftStore {
	return navDrafts{s: s}
}

type navDrafts struct {
	s *Store
}

func (d navDrafts) SaveDraft(key string, draft navigator.Draft) error {
	return d.s.SaveDraft(context.Background(), key, draft)
}

func (d navDrafts) LoadDraft(key string) (navigator.Draft, bool, error) {
	var draft navigator.Draft
	ok, err := d.s.LoadDraft(context.Background(), key, &draft)
	return draft, ok, err
}

func (d navDrafts) ClearDraft(key string) error {
	return d.s.ClearDraft(context.Background(), key)
}
