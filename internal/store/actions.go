package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talentlab/internal/models"
)

// UpsertAction stores an action whole; resubmitting the same action id
// overwrites the prior record.
func (s *Store) UpsertAction(ctx context.Context, a models.Action) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal action: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO actions (action_id, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (action_id)
DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at;`,
		a.ActionID, string(payload), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("save action %s: %w", a.ActionID, err)
	}
	return nil
}

// GetAction loads one action. Absent and unparsable rows both report ok=false.
func (s *Store) GetAction(ctx context.Context, actionID string) (models.Action, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM actions WHERE action_id=?`, actionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Action{}, false, nil
	}
	if err != nil {
		return models.Action{}, false, fmt.Errorf("load action %s: %w", actionID, err)
	}
	var a models.Action
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return models.Action{}, false, nil
	}
	return a, true, nil
}

// ListActions returns all actions, oldest update first. Rows that no
// longer parse are skipped.
func (s *Store) ListActions(ctx context.Context) ([]models.Action, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM actions ORDER BY updated_at asc`)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()
	var out []models.Action
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var a models.Action
		if err := json.Unmarshal([]byte(payload), &a); err != nil {
			continue
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
