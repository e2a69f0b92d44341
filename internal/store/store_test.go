package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"talentlab/internal/catalog"
	"talentlab/internal/diagnostic"
	"talentlab/internal/models"
	"talentlab/internal/navigator"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "talentlab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

func sampleResults(t *testing.T, answer int) diagnostic.Results {
	t.Helper()
	answers := map[string]int{}
	for _, id := range catalog.QuestionIDs() {
		answers[id] = answer
	}
	return diagnostic.Calculate(catalog.Factors(language.English),
		map[string]string{"area": "Logistics"}, answers)
}

func TestResultsRoleIsolationAndOverwrite(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	leaderRes := sampleResults(t, 4)
	collabRes := sampleResults(t, 2)
	require.NoError(t, s.SaveResults(ctx, catalog.RoleLeader, leaderRes))
	require.NoError(t, s.SaveResults(ctx, catalog.RoleCollaborator, collabRes))

	got, ok, err := s.LatestResults(ctx, catalog.RoleLeader)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 75, got.OverallScore)

	got, ok, err = s.LatestResults(ctx, catalog.RoleCollaborator)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 25, got.OverallScore)

	// Second submission for the same role fully replaces the first.
	require.NoError(t, s.SaveResults(ctx, catalog.RoleLeader, sampleResults(t, 5)))
	got, ok, err = s.LatestResults(ctx, catalog.RoleLeader)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 100, got.OverallScore)

	// The collaborator snapshot is unaffected.
	got, ok, err = s.LatestResults(ctx, catalog.RoleCollaborator)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 25, got.OverallScore)
}

func TestLatestResultsAbsent(t *testing.T) {
	s := testStore(t)
	_, ok, err := s.LatestResults(context.Background(), catalog.RoleLeader)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMalformedPayloadReadsAsAbsent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO diagnostic_results (role, payload, submitted_at) VALUES (?, ?, ?)`,
		"leader", "{not json", time.Now())
	require.NoError(t, err)

	_, ok, err := s.LatestResults(ctx, catalog.RoleLeader)
	require.NoError(t, err, "malformed data must not surface an error")
	assert.False(t, ok)
}

func TestActionUpsertAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	a := models.Action{
		ActionID: "one_on_one_calibration",
		Title:    "1:1 — work plan review",
		Status:   models.ActionPending,
		Checklist: []models.ChecklistItem{
			{ID: "review_roles", Label: "Review plan by role"},
		},
	}
	require.NoError(t, s.UpsertAction(ctx, a))

	a.Status = models.ActionAccepted
	now := time.Now().UTC()
	a.AcceptedAt = &now
	require.NoError(t, s.UpsertAction(ctx, a))

	got, ok, err := s.GetAction(ctx, "one_on_one_calibration")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.ActionAccepted, got.Status)
	require.NotNil(t, got.AcceptedAt)

	list, err := s.ListActions(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, ok, err = s.GetAction(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPulsesAppendOnlyAggregate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i, answer := range []models.PulseAnswer{
		models.PulseYes, models.PulseYes, models.PulseNo, models.PulseNA,
	} {
		require.NoError(t, s.AppendPulse(ctx, models.Pulse{
			ID:          string(rune('a' + i)),
			ActionID:    "one_on_one_calibration",
			Answer:      answer,
			SubmittedAt: time.Now().UTC(),
		}))
	}
	require.NoError(t, s.AppendPulse(ctx, models.Pulse{
		ID: "other", ActionID: "other_action", Answer: models.PulseYes, SubmittedAt: time.Now().UTC(),
	}))

	agg, err := s.PulseAggregate(ctx, "one_on_one_calibration")
	require.NoError(t, err)
	assert.Equal(t, models.PulseAggregate{Yes: 2, No: 1, NA: 1}, agg)

	all, err := s.ListPulses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestWeeklyRecords(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendCheckIn(ctx, models.CheckIn{
		ID: "c1", WeekID: "2026-08-31", Clarity: "yes", Blockage: "no", Created: time.Now().UTC(),
	}))
	require.NoError(t, s.AppendBlockageReport(ctx, models.BlockageReport{
		ID: "b1", WeekID: "2026-08-31", Text: "waiting on vendor data", Created: time.Now().UTC(),
	}))

	checkins, err := s.ListCheckIns(ctx)
	require.NoError(t, err)
	require.Len(t, checkins, 1)
	assert.Equal(t, "yes", checkins[0].Clarity)

	reports, err := s.ListBlockageReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "waiting on vendor data", reports[0].Text)
}

func TestDraftRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	type form struct {
		Description string   `json:"description"`
		Problems    []string `json:"problems"`
	}
	in := form{Description: "order intake", Problems: []string{"rework", "delays"}}
	require.NoError(t, s.SaveDraft(ctx, "process_intake", in))

	var out form
	ok, err := s.LoadDraft(ctx, "process_intake", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)

	require.NoError(t, s.ClearDraft(ctx, "process_intake"))
	ok, err = s.LoadDraft(ctx, "process_intake", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing again is fine.
	require.NoError(t, s.ClearDraft(ctx, "process_intake"))
}

func TestNavigatorDraftsAdapter(t *testing.T) {
	s := testStore(t)
	drafts := s.NavigatorDrafts()

	d := navigator.Draft{
		Context: map[string]string{"area": "Ops"},
		Answers: map[string]int{"ps1": 4},
	}
	require.NoError(t, drafts.SaveDraft("diagnostic_leader", d))

	got, ok, err := drafts.LoadDraft("diagnostic_leader")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, d, got)

	require.NoError(t, drafts.ClearDraft("diagnostic_leader"))
	_, ok, err = drafts.LoadDraft("diagnostic_leader")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlanOverwrite(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first := models.Plan{Objectives: []models.Objective{{Title: "Cut rework 30%"}}}
	require.NoError(t, s.SavePlan(ctx, first))
	second := models.Plan{Objectives: []models.Objective{{Title: "Improve delivery times"}}}
	require.NoError(t, s.SavePlan(ctx, second))

	got, ok, err := s.LatestPlan(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Objectives, 1)
	assert.Equal(t, "Improve delivery times", got.Objectives[0].Title)
}

func TestSnapshotAndReset(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveResults(ctx, catalog.RoleLeader, sampleResults(t, 3)))
	require.NoError(t, s.UpsertAction(ctx, models.Action{ActionID: "a1", Status: models.ActionPending}))
	require.NoError(t, s.SavePlan(ctx, models.Plan{}))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Contains(t, snap.Results, catalog.RoleLeader)
	assert.NotContains(t, snap.Results, catalog.RoleCollaborator)
	assert.Len(t, snap.Actions, 1)
	assert.NotNil(t, snap.Plan)
	assert.False(t, snap.ExportedAt.IsZero())

	require.NoError(t, s.Reset(ctx))
	snap, err = s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Results)
	assert.Empty(t, snap.Actions)
	assert.Nil(t, snap.Plan)
}
