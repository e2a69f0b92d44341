package store

import (
	"context"
	"fmt"

	"talentlab/internal/models"
)

// AppendCheckIn records one weekly check-in.
func (s *Store) AppendCheckIn(ctx context.Context, c models.CheckIn) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO checkins (id, week_id, clarity, blockage, created_at)
VALUES (?, ?, ?, ?, ?);`,
		c.ID, c.WeekID, c.Clarity, c.Blockage, formatTime(c.Created))
	if err != nil {
		return fmt.Errorf("append check-in: %w", err)
	}
	return nil
}

// ListCheckIns returns all check-ins, oldest first.
func (s *Store) ListCheckIns(ctx context.Context) ([]models.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, week_id, clarity, blockage, created_at FROM checkins ORDER BY created_at asc`)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()
	var out []models.CheckIn
	for rows.Next() {
		var c models.CheckIn
		var created string
		if err := rows.Scan(&c.ID, &c.WeekID, &c.Clarity, &c.Blockage, &created); err != nil {
			return nil, err
		}
		c.Created = parseTime(created)
		out = append(out, c)
	}
	return out, rows.Err()
}

// AppendBlockageReport records one free-text blockage report.
func (s *Store) AppendBlockageReport(ctx context.Context, r models.BlockageReport) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO blockage_reports (id, week_id, report, created_at)
VALUES (?, ?, ?, ?);`,
		r.ID, r.WeekID, r.Text, formatTime(r.Created))
	if err != nil {
		return fmt.Errorf("append blockage report: %w", err)
	}
	return nil
}

// ListBlockageReports returns all blockage reports, oldest first.
func (s *Store) ListBlockageReports(ctx context.Context) ([]models.BlockageReport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, week_id, report, created_at FROM blockage_reports ORDER BY created_at asc`)
	if err != nil {
		return nil, fmt.Errorf("list blockage reports: %w", err)
	}
	defer rows.Close()
	var out []models.BlockageReport
	for rows.Next() {
		var r models.BlockageReport
		var created string
		if err := rows.Scan(&r.ID, &r.WeekID, &r.Text, &created); err != nil {
			return nil, err
		}
		r.Created = parseTime(created)
		out = append(out, r)
	}
	return out, rows.Err()
}
