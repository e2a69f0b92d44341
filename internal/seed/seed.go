// Package seed loads demonstration data so a fresh install has
// something to look at: one diagnostic snapshot per role, the default
// action mid-lifecycle, and a handful of pulses and weekly records.
package seed

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"talentlab/internal/actions"
	"talentlab/internal/catalog"
	"talentlab/internal/diagnostic"
	"talentlab/internal/models"
	"talentlab/internal/plan"
	"talentlab/internal/store"
)

// Demo writes the sample records. Existing data for the same keys is
// overwritten; the pulse and weekly logs grow on repeat runs.
func Demo(ctx context.Context, st *store.Store) error {
	factors := catalog.Factors(catalog.MatchLocale("en"))

	leader := diagnostic.Calculate(factors,
		map[string]string{
			"area":         "Operations",
			"role":         "Logistics Manager",
			"teamSize":     "12",
			"dependencies": "Warehouse, Carriers",
		},
		demoAnswers([]int{4, 4, 3, 5, 4, 3}))
	if err := st.SaveResults(ctx, catalog.RoleLeader, leader); err != nil {
		return err
	}

	collaborator := diagnostic.Calculate(factors,
		map[string]string{
			"role": "Warehouse Associate",
			"team": "Night Shift",
		},
		demoAnswers([]int{3, 4, 3, 4, 3, 2}))
	if err := st.SaveResults(ctx, catalog.RoleCollaborator, collaborator); err != nil {
		return err
	}

	now := time.Now().UTC()
	accepted := now.Add(-72 * time.Hour)
	action := actions.DefaultAction()
	action.Status = models.ActionAccepted
	action.AcceptedAt = &accepted
	action.Checklist[0].Done = true
	action.Checklist[1].Done = true
	if err := st.UpsertAction(ctx, action); err != nil {
		return err
	}

	for _, answer := range []models.PulseAnswer{models.PulseYes, models.PulseYes, models.PulseNo, models.PulseNA} {
		if err := st.AppendPulse(ctx, models.Pulse{
			ID:          newULID(now),
			ActionID:    action.ActionID,
			Answer:      answer,
			SubmittedAt: now,
		}); err != nil {
			return err
		}
	}

	weekID := now.Format("2006-01-02")
	if err := st.AppendCheckIn(ctx, models.CheckIn{
		ID:       newULID(now),
		WeekID:   weekID,
		Clarity:  "Priorities are clear except the returns backlog",
		Blockage: "Waiting on the carrier portal credentials",
		Created:  now,
	}); err != nil {
		return err
	}
	if err := st.AppendBlockageReport(ctx, models.BlockageReport{
		ID:      newULID(now),
		WeekID:  weekID,
		Text:    "Label printer in zone B has been down since Monday",
		Created: now,
	}); err != nil {
		return err
	}

	return st.SavePlan(ctx, plan.FallbackPlan())
}

// demoAnswers fills every question of a factor with the same value, one
// value per factor.
func demoAnswers(perFactor []int) map[string]int {
	answers := map[string]int{}
	ids := catalog.QuestionIDs()
	for i, id := range ids {
		answers[id] = perFactor[i/catalog.QuestionsPerFactor]
	}
	return answers
}

func newULID(at time.Time) string {
	return ulid.MustNew(ulid.Timestamp(at), rand.Reader).String()
}
