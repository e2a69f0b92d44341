// Package actions implements the recommended-action workflow a leader
// works through after the diagnostic, plus the anonymous pulse loop that
// lets collaborators confirm whether an action actually happened.
package actions

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"talentlab/internal/models"
)

const snoozeWindow = 48 * time.Hour

// DefaultActionID is the seeded 1:1 calibration action every team starts
// with.
const DefaultActionID = "one_on_one_calibration"

// Store is the persistence the service needs.
type Store interface {
	UpsertAction(ctx context.Context, a models.Action) error
	GetAction(ctx context.Context, actionID string) (models.Action, bool, error)
	ListActions(ctx context.Context) ([]models.Action, error)
	AppendPulse(ctx context.Context, p models.Pulse) error
	PulseAggregate(ctx context.Context, actionID string) (models.PulseAggregate, error)
}

// Service owns action state transitions. now is injectable for tests.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// DefaultAction is the pending 1:1 calibration template used whenever an
// unknown action id is accepted or snoozed.
func DefaultAction() models.Action {
	return models.Action{
		ActionID: DefaultActionID,
		Title:    "Reunión 1:1 — Revisión del plan de trabajo",
		Status:   models.ActionPending,
		Checklist: []models.ChecklistItem{
			{ID: "review_roles", Label: "Revisar plan por rol"},
			{ID: "adjust_dates", Label: "Ajustar fechas y dependencias"},
			{ID: "confirm_kpis", Label: "Confirmar KPIs"},
			{ID: "align_done", Label: "Alinear definición de \"hecho\""},
		},
	}
}

// List returns all known actions.
func (s *Service) List(ctx context.Context) ([]models.Action, error) {
	return s.store.ListActions(ctx)
}

// Get returns one action.
func (s *Service) Get(ctx context.Context, actionID string) (models.Action, bool, error) {
	return s.store.GetAction(ctx, actionID)
}

// Accept marks an action accepted. Accepting an id that was never stored
// materializes it from the default template first.
func (s *Service) Accept(ctx context.Context, actionID string) (models.Action, error) {
	a, err := s.getOrDefault(ctx, actionID)
	if err != nil {
		return models.Action{}, err
	}
	now := s.now().UTC()
	a.Status = models.ActionAccepted
	a.AcceptedAt = &now
	a.SnoozeUntil = nil
	return a, s.store.UpsertAction(ctx, a)
}

// Snooze defers an action for 48 hours.
func (s *Service) Snooze(ctx context.Context, actionID string) (models.Action, error) {
	a, err := s.getOrDefault(ctx, actionID)
	if err != nil {
		return models.Action{}, err
	}
	until := s.now().UTC().Add(snoozeWindow)
	a.Status = models.ActionSnoozed
	a.SnoozeUntil = &until
	return a, s.store.UpsertAction(ctx, a)
}

// Activate wakes a snoozed action back to accepted.
func (s *Service) Activate(ctx context.Context, actionID string) (models.Action, error) {
	a, ok, err := s.store.GetAction(ctx, actionID)
	if err != nil {
		return models.Action{}, err
	}
	if !ok {
		return models.Action{}, fmt.Errorf("unknown action %s", actionID)
	}
	now := s.now().UTC()
	a.Status = models.ActionAccepted
	a.AcceptedAt = &now
	a.SnoozeUntil = nil
	return a, s.store.UpsertAction(ctx, a)
}

// Complete closes an action.
func (s *Service) Complete(ctx context.Context, actionID string) (models.Action, error) {
	a, ok, err := s.store.GetAction(ctx, actionID)
	if err != nil {
		return models.Action{}, err
	}
	if !ok {
		return models.Action{}, fmt.Errorf("unknown action %s", actionID)
	}
	now := s.now().UTC()
	a.Status = models.ActionCompleted
	a.CompletedAt = &now
	return a, s.store.UpsertAction(ctx, a)
}

// UpdateChecklist replaces an action's checklist and evidence fields.
func (s *Service) UpdateChecklist(ctx context.Context, actionID string, checklist []models.ChecklistItem, evidenceNote, planLink string) (models.Action, error) {
	a, ok, err := s.store.GetAction(ctx, actionID)
	if err != nil {
		return models.Action{}, err
	}
	if !ok {
		return models.Action{}, fmt.Errorf("unknown action %s", actionID)
	}
	a.Checklist = checklist
	a.EvidenceNote = evidenceNote
	a.UpdatedPlanLink = planLink
	return a, s.store.UpsertAction(ctx, a)
}

// SubmitPulse appends one anonymous confirmation for an action.
func (s *Service) SubmitPulse(ctx context.Context, actionID string, answer models.PulseAnswer) error {
	if !answer.Valid() {
		return fmt.Errorf("invalid pulse answer %q", answer)
	}
	now := s.now().UTC()
	return s.store.AppendPulse(ctx, models.Pulse{
		ID:          ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		ActionID:    actionID,
		Answer:      answer,
		SubmittedAt: now,
	})
}

// PulseAggregates returns the yes/no/na counts for an action.
func (s *Service) PulseAggregates(ctx context.Context, actionID string) (models.PulseAggregate, error) {
	return s.store.PulseAggregate(ctx, actionID)
}

func (s *Service) getOrDefault(ctx context.Context, actionID string) (models.Action, error) {
	a, ok, err := s.store.GetAction(ctx, actionID)
	if err != nil {
		return models.Action{}, err
	}
	if !ok {
		a = DefaultAction()
		a.ActionID = actionID
	}
	return a, nil
}
