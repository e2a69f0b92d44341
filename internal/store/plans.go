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

// SavePlan stores the latest generated plan, replacing any prior one.
// There is exactly one plan at a time; no history is kept.
func (s *Store) SavePlan(ctx context.Context, p models.Plan) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO plans (id, payload, generated_at)
VALUES (1, ?, ?)
ON CONFLICT (id)
DO UPDATE SET payload=excluded.payload, generated_at=excluded.generated_at;`,
		string(payload), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// LatestPlan loads the current plan; absent or unparsable reads as none.
func (s *Store) LatestPlan(ctx context.Context) (models.Plan, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM plans WHERE id=1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plan{}, false, nil
	}
	if err != nil {
		return models.Plan{}, false, fmt.Errorf("load plan: %w", err)
	}
	var p models.Plan
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return models.Plan{}, false, nil
	}
	return p, true, nil
}
