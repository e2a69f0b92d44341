package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"talentlab/internal/actions"
	"talentlab/internal/auth"
	"talentlab/internal/catalog"
	"talentlab/internal/metrics"
	"talentlab/internal/models"
	"talentlab/internal/plan"
	"talentlab/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testEnv struct {
	srv    *httptest.Server
	client *http.Client
	store  *store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.EnsureSchema(context.Background()))
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(
		st,
		auth.NewManager("test-secret"),
		actions.NewService(st),
		plan.NewGenerator("", time.Second),
		metrics.NewStaticProvider(),
		logger,
		"en",
	)
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}
	t.Cleanup(client.CloseIdleConnections)
	return &testEnv{srv: srv, client: client, store: st}
}

func (e *testEnv) login(t *testing.T, role catalog.Role) {
	t.Helper()
	resp := e.post(t, "/api/login", map[string]string{"role": string(role)})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (e *testEnv) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := e.client.Post(e.srv.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func (e *testEnv) put(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, e.srv.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := e.client.Get(e.srv.URL + path)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func fullSubmission(role catalog.Role, answer int) map[string]any {
	ctx := map[string]string{}
	for _, f := range catalog.ContextFields(role, catalog.MatchLocale("en")) {
		ctx[f.ID] = "sample"
	}
	answers := map[string]int{}
	for _, id := range catalog.QuestionIDs() {
		answers[id] = answer
	}
	return map[string]any{"context": ctx, "answers": answers}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	e := newTestEnv(t)
	resp := e.post(t, "/api/login", map[string]string{"role": "manager"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	e := newTestEnv(t)
	resp := e.get(t, "/api/catalog")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleGuards(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleCollaborator)

	resp := e.get(t, "/api/export")
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = e.get(t, "/api/metrics/week")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCatalogLocalization(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)

	en := decode[map[string]json.RawMessage](t, e.get(t, "/api/catalog"))
	var enLocale string
	require.NoError(t, json.Unmarshal(en["locale"], &enLocale))
	assert.Equal(t, "en", enLocale)

	es := decode[map[string]json.RawMessage](t, e.get(t, "/api/catalog?locale=es"))
	var esLocale string
	require.NoError(t, json.Unmarshal(es["locale"], &esLocale))
	assert.Equal(t, "es", esLocale)
	assert.NotEqual(t, string(en["factors"]), string(es["factors"]))
}

func TestDiagnosticSubmitAndFetch(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)

	resp := e.get(t, "/api/diagnostic")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = e.post(t, "/api/diagnostic", fullSubmission(catalog.RoleLeader, 4))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	submitted := decode[map[string]json.RawMessage](t, resp)
	var overall int
	require.NoError(t, json.Unmarshal(submitted["overallScore"], &overall))
	assert.Equal(t, 75, overall)

	fetched := decode[map[string]json.RawMessage](t, e.get(t, "/api/diagnostic"))
	require.NoError(t, json.Unmarshal(fetched["overallScore"], &overall))
	assert.Equal(t, 75, overall)
}

func TestDiagnosticRejectsIncompleteSubmission(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)

	body := fullSubmission(catalog.RoleLeader, 4)
	body["context"] = map[string]string{"area": "   "}
	resp := e.post(t, "/api/diagnostic", body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body = fullSubmission(catalog.RoleLeader, 9)
	resp = e.post(t, "/api/diagnostic", body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDiagnosticResultsAreRoleScoped(t *testing.T) {
	leader := newTestEnv(t)
	leader.login(t, catalog.RoleLeader)
	resp := leader.post(t, "/api/diagnostic", fullSubmission(catalog.RoleLeader, 5))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A fresh session with the other role sees nothing.
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}
	t.Cleanup(client.CloseIdleConnections)
	collab := &testEnv{srv: leader.srv, client: client, store: leader.store}
	collab.login(t, catalog.RoleCollaborator)
	resp = collab.get(t, "/api/diagnostic")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestActionLifecycleOverHTTP(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)

	list := decode[[]models.Action](t, e.get(t, "/api/actions"))
	require.Len(t, list, 1)
	assert.Equal(t, actions.DefaultActionID, list[0].ActionID)
	assert.Equal(t, models.ActionPending, list[0].Status)

	path := fmt.Sprintf("/api/actions/%s/accept", actions.DefaultActionID)
	a := decode[models.Action](t, e.post(t, path, nil))
	assert.Equal(t, models.ActionAccepted, a.Status)

	checked := a.Checklist
	checked[0].Done = true
	a = decode[models.Action](t, e.put(t, fmt.Sprintf("/api/actions/%s/checklist", actions.DefaultActionID), map[string]any{
		"checklist":    checked,
		"evidenceNote": "done in the Tuesday 1:1",
	}))
	assert.True(t, a.Checklist[0].Done)
	assert.Equal(t, "done in the Tuesday 1:1", a.EvidenceNote)

	a = decode[models.Action](t, e.post(t, fmt.Sprintf("/api/actions/%s/complete", actions.DefaultActionID), nil))
	assert.Equal(t, models.ActionCompleted, a.Status)
}

func TestPulseFlow(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleCollaborator)

	for _, answer := range []string{"yes", "yes", "no"} {
		resp := e.post(t, "/api/pulses", map[string]string{
			"actionId": actions.DefaultActionID,
			"answer":   answer,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := e.post(t, "/api/pulses", map[string]string{"actionId": actions.DefaultActionID, "answer": "maybe"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Aggregates are leader-only.
	resp = e.get(t, "/api/pulses/"+actions.DefaultActionID)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	e.login(t, catalog.RoleLeader)
	agg := decode[models.PulseAggregate](t, e.get(t, "/api/pulses/"+actions.DefaultActionID))
	assert.Equal(t, models.PulseAggregate{Yes: 2, No: 1}, agg)
}

func TestCheckInAndBlockage(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleCollaborator)

	c := decode[models.CheckIn](t, e.post(t, "/api/checkins", map[string]string{
		"clarityResponse":  "mostly clear",
		"blockageResponse": "waiting on inventory data",
	}))
	assert.NotEmpty(t, c.ID)
	assert.NotEmpty(t, c.WeekID)

	resp := e.post(t, "/api/blockages", map[string]string{"text": ""})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	b := decode[models.BlockageReport](t, e.post(t, "/api/blockages", map[string]string{"text": "carrier portal is down"}))
	assert.Equal(t, "carrier portal is down", b.Text)
}

func TestIntakeDraftRoundTripAndSubmit(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)

	resp := e.get(t, "/api/intake/order_fulfillment")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	draft := map[string]string{"proceso_context": "three intake channels"}
	resp = e.put(t, "/api/intake/order_fulfillment", draft)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[map[string]string](t, e.get(t, "/api/intake/order_fulfillment"))
	assert.Equal(t, draft, got)

	// No webhook configured, so submit serves the fallback plan.
	p := decode[models.Plan](t, e.post(t, "/api/intake/submit", map[string]any{
		"draftKey":    "order_fulfillment",
		"companyName": "Acme Logística",
		"area":        "operations",
		"process":     "order_fulfillment",
		"intake":      plan.Intake{ProcessContext: "three intake channels"},
	}))
	assert.Equal(t, plan.FallbackPlan(), p)

	resp = e.get(t, "/api/intake/order_fulfillment")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	stored := decode[models.Plan](t, e.get(t, "/api/plan"))
	assert.Equal(t, plan.FallbackPlan(), stored)
}

func TestMetricsEndpoints(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)
	d := decode[metrics.LeaderDashboard](t, e.get(t, "/api/metrics/dashboard"))
	assert.Len(t, d.Metrics, 4)

	e.login(t, catalog.RoleCollaborator)
	w := decode[metrics.CollaboratorWeek](t, e.get(t, "/api/metrics/week"))
	assert.Len(t, w.Tasks, 5)
}

func TestInvite(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)
	inv := decode[map[string]string](t, e.post(t, "/api/invites", nil))
	assert.NotEmpty(t, inv["token"])
	assert.Equal(t, "/join?team="+inv["token"], inv["joinLink"])
}

func TestExportAndReset(t *testing.T) {
	e := newTestEnv(t)
	e.login(t, catalog.RoleLeader)

	resp := e.post(t, "/api/diagnostic", fullSubmission(catalog.RoleLeader, 3))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decode[store.Export](t, e.get(t, "/api/export"))
	assert.Contains(t, snap.Results, catalog.RoleLeader)

	resp = e.post(t, "/api/reset", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.get(t, "/api/diagnostic")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
