package store

import (
	"context"
	"time"

	"talentlab/internal/catalog"
	"talentlab/internal/diagnostic"
	"talentlab/internal/models"
)

// Export is the full data dump served to the leader and written by the
// export command.
type Export struct {
	ExportedAt      time.Time                           `json:"exportedAt"`
	Results         map[catalog.Role]diagnostic.Results `json:"results"`
	Actions         []models.Action                     `json:"actions"`
	Pulses          []models.Pulse                      `json:"pulses"`
	CheckIns        []models.CheckIn                    `json:"checkins"`
	BlockageReports []models.BlockageReport             `json:"blockageReports"`
	Plan            *models.Plan                        `json:"plan,omitempty"`
}

// Snapshot assembles everything stored into one export document.
func (s *Store) Snapshot(ctx context.Context) (Export, error) {
	out := Export{
		ExportedAt: time.Now().UTC(),
		Results:    map[catalog.Role]diagnostic.Results{},
	}
	for _, role := range []catalog.Role{catalog.RoleLeader, catalog.RoleCollaborator} {
		res, ok, err := s.LatestResults(ctx, role)
		if err != nil {
			return Export{}, err
		}
		if ok {
			out.Results[role] = res
		}
	}
	var err error
	if out.Actions, err = s.ListActions(ctx); err != nil {
		return Export{}, err
	}
	if out.Pulses, err = s.ListPulses(ctx); err != nil {
		return Export{}, err
	}
	if out.CheckIns, err = s.ListCheckIns(ctx); err != nil {
		return Export{}, err
	}
	if out.BlockageReports, err = s.ListBlockageReports(ctx); err != nil {
		return Export{}, err
	}
	if plan, ok, err := s.LatestPlan(ctx); err != nil {
		return Export{}, err
	} else if ok {
		out.Plan = &plan
	}
	return out, nil
}
