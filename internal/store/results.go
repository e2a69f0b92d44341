package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"talentlab/internal/catalog"
	"talentlab/internal/diagnostic"
)

// SaveResults stores a diagnostic snapshot for a role, fully overwriting
// any prior snapshot for that role. Snapshots for the other role are
// untouched.
func (s *Store) SaveResults(ctx context.Context, role catalog.Role, res diagnostic.Results) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO diagnostic_results (role, payload, submitted_at)
VALUES (?, ?, ?)
ON CONFLICT (role)
DO UPDATE SET payload=excluded.payload, submitted_at=excluded.submitted_at;`,
		string(role), string(payload), formatTime(res.SubmittedAt))
	if err != nil {
		return fmt.Errorf("save results for %s: %w", role, err)
	}
	return nil
}

// LatestResults loads the most recent snapshot for a role. A missing row
// and a row whose payload no longer parses both read as absent.
func (s *Store) LatestResults(ctx context.Context, role catalog.Role) (diagnostic.Results, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM diagnostic_results WHERE role=?`, string(role)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return diagnostic.Results{}, false, nil
	}
	if err != nil {
		return diagnostic.Results{}, false, fmt.Errorf("load results for %s: %w", role, err)
	}
	var res diagnostic.Results
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return diagnostic.Results{}, false, nil
	}
	return res, true, nil
}
