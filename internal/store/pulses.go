package store

import (
	"context"
	"fmt"

	"talentlab/internal/models"
)

// AppendPulse records one anonymous pulse. The log is append-only: no
// update or delete path exists.
func (s *Store) AppendPulse(ctx context.Context, p models.Pulse) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO pulses (id, action_id, answer, submitted_at)
VALUES (?, ?, ?, ?);`,
		p.ID, p.ActionID, string(p.Answer), formatTime(p.SubmittedAt))
	if err != nil {
		return fmt.Errorf("append pulse: %w", err)
	}
	return nil
}

// PulseAggregate counts the answers recorded for one action. Individual
// records are never exposed to the leader-facing surface.
func (s *Store) PulseAggregate(ctx context.Context, actionID string) (models.PulseAggregate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT answer, count(*) FROM pulses WHERE action_id=? GROUP BY answer`, actionID)
	if err != nil {
		return models.PulseAggregate{}, fmt.Errorf("aggregate pulses: %w", err)
	}
	defer rows.Close()
	var agg models.PulseAggregate
	for rows.Next() {
		var answer string
		var n int
		if err := rows.Scan(&answer, &n); err != nil {
			return models.PulseAggregate{}, err
		}
		switch models.PulseAnswer(answer) {
		case models.PulseYes:
			agg.Yes = n
		case models.PulseNo:
			agg.No = n
		case models.PulseNA:
			agg.NA = n
		}
	}
	return agg, rows.Err()
}

// ListPulses returns the full log in submission order (export only).
func (s *Store) ListPulses(ctx context.Context) ([]models.Pulse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, action_id, answer, submitted_at FROM pulses ORDER BY submitted_at asc`)
	if err != nil {
		return nil, fmt.Errorf("list pulses: %w", err)
	}
	defer rows.Close()
	var out []models.Pulse
	for rows.Next() {
		var p models.Pulse
		var answer, submitted string
		if err := rows.Scan(&p.ID, &p.ActionID, &answer, &submitted); err != nil {
			return nil, err
		}
		p.Answer = models.PulseAnswer(answer)
		p.SubmittedAt = parseTime(submitted)
		out = append(out, p)
	}
	return out, rows.Err()
}
