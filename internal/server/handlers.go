package server

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"

	"talentlab/internal/actions"
	"talentlab/internal/auth"
	"talentlab/internal/catalog"
	"talentlab/internal/diagnostic"
	"talentlab/internal/models"
	"talentlab/internal/plan"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	role, err := catalog.ParseRole(payload.Role)
	if err != nil {
		http.Error(w, "unknown role", http.StatusBadRequest)
		return
	}
	token, err := s.auth.Issue(role)
	if err != nil {
		http.Error(w, "cannot issue session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(auth.TTL()),
	})
	writeJSON(w, map[string]any{"role": role})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"role": sessionRole(r)})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	loc := s.locale(r)
	role := sessionRole(r)
	writeJSON(w, map[string]any{
		"locale":        loc.String(),
		"factors":       catalog.Factors(loc),
		"contextFields": catalog.ContextFields(role, loc),
		"likertLabels":  catalog.LikertLabels(loc),
	})
}

func (s *Server) handleSubmitDiagnostic(w http.ResponseWriter, r *http.Request) {
	role := sessionRole(r)
	var payload struct {
		Context map[string]string `json:"context"`
		Answers map[string]int    `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if msg := validateSubmission(role, payload.Context, payload.Answers); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	results := diagnostic.Calculate(catalog.Factors(language.English), payload.Context, payload.Answers)
	if err := s.store.SaveResults(r.Context(), role, results); err != nil {
		s.logger.Error("save results", "role", role, "err", err)
		http.Error(w, "cannot save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, results)
}

// validateSubmission enforces the same gates the survey UI applies:
// every context field answered, every question answered on the scale.
func validateSubmission(role catalog.Role, ctx map[string]string, answers map[string]int) string {
	for _, f := range catalog.ContextFields(role, language.English) {
		if strings.TrimSpace(ctx[f.ID]) == "" {
			return "missing context field " + f.ID
		}
	}
	for _, id := range catalog.QuestionIDs() {
		v, ok := answers[id]
		if !ok {
			return "missing answer " + id
		}
		if v < catalog.LikertMin || v > catalog.LikertMax {
			return "answer out of range " + id
		}
	}
	return ""
}

func (s *Server) handleLatestDiagnostic(w http.ResponseWriter, r *http.Request) {
	role := sessionRole(r)
	res, ok, err := s.store.LatestResults(r.Context(), role)
	if err != nil {
		s.logger.Error("load results", "role", role, "err", err)
		http.Error(w, "cannot load", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no results", http.StatusNotFound)
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleListActions(w http.ResponseWriter, r *http.Request) {
	list, err := s.actions.List(r.Context())
	if err != nil {
		s.logger.Error("list actions", "err", err)
		http.Error(w, "cannot load", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Action{actions.DefaultAction()}
	}
	writeJSON(w, list)
}

func (s *Server) handleActionTransition(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var (
		a   models.Action
		err error
	)
	switch {
	case strings.HasSuffix(r.URL.Path, "/accept"):
		a, err = s.actions.Accept(r.Context(), id)
	case strings.HasSuffix(r.URL.Path, "/snooze"):
		a, err = s.actions.Snooze(r.Context(), id)
	case strings.HasSuffix(r.URL.Path, "/activate"):
		a, err = s.actions.Activate(r.Context(), id)
	case strings.HasSuffix(r.URL.Path, "/complete"):
		a, err = s.actions.Complete(r.Context(), id)
	default:
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("action transition", "action", id, "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, a)
}

func (s *Server) handleUpdateChecklist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload struct {
		Checklist       []models.ChecklistItem `json:"checklist"`
		EvidenceNote    string                 `json:"evidenceNote"`
		UpdatedPlanLink string                 `json:"updatedPlanLink"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	a, err := s.actions.UpdateChecklist(r.Context(), id, payload.Checklist, payload.EvidenceNote, payload.UpdatedPlanLink)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, a)
}

func (s *Server) handleSubmitPulse(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ActionID string             `json:"actionId"`
		Answer   models.PulseAnswer `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if payload.ActionID == "" {
		http.Error(w, "actionId required", http.StatusBadRequest)
		return
	}
	if err := s.actions.SubmitPulse(r.Context(), payload.ActionID, payload.Answer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"status": "recorded"})
}

func (s *Server) handlePulseAggregate(w http.ResponseWriter, r *http.Request) {
	agg, err := s.actions.PulseAggregates(r.Context(), r.PathValue("actionID"))
	if err != nil {
		s.logger.Error("pulse aggregate", "err", err)
		http.Error(w, "cannot load", http.StatusInternalServerError)
		return
	}
	writeJSON(w, agg)
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Clarity  string `json:"clarityResponse"`
		Blockage string `json:"blockageResponse"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	now := time.Now().UTC()
	c := models.CheckIn{
		ID:       newULID(now),
		WeekID:   now.Format("2006-01-02"),
		Clarity:  payload.Clarity,
		Blockage: payload.Blockage,
		Created:  now,
	}
	if err := s.store.AppendCheckIn(r.Context(), c); err != nil {
		s.logger.Error("append check-in", "err", err)
		http.Error(w, "cannot save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, c)
}

func (s *Server) handleBlockage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		http.Error(w, "text required", http.StatusBadRequest)
		return
	}
	now := time.Now().UTC()
	rep := models.BlockageReport{
		ID:      newULID(now),
		WeekID:  now.Format("2006-01-02"),
		Text:    payload.Text,
		Created: now,
	}
	if err := s.store.AppendBlockageReport(r.Context(), rep); err != nil {
		s.logger.Error("append blockage report", "err", err)
		http.Error(w, "cannot save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, rep)
}

func (s *Server) handleLoadIntake(w http.ResponseWriter, r *http.Request) {
	raw, ok, err := s.store.RawDraft(r.Context(), intakeDraftKey(r.PathValue("key")))
	if err != nil {
		s.logger.Error("load intake draft", "err", err)
		http.Error(w, "cannot load", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no draft", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

func (s *Server) handleSaveIntake(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		http.Error(w, "body must be JSON", http.StatusBadRequest)
		return
	}
	if err := s.store.SaveDraft(r.Context(), intakeDraftKey(r.PathValue("key")), json.RawMessage(body)); err != nil {
		s.logger.Error("save intake draft", "err", err)
		http.Error(w, "cannot save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "saved"})
}

func (s *Server) handleSubmitIntake(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DraftKey    string      `json:"draftKey"`
		CompanyName string      `json:"companyName"`
		Industry    string      `json:"industry"`
		Area        string      `json:"area"`
		Process     string      `json:"process"`
		Intake      plan.Intake `json:"intake"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	p, err := s.plans.Generate(r.Context(), plan.Request{
		CompanyName: payload.CompanyName,
		Industry:    payload.Industry,
		Area:        payload.Area,
		Process:     payload.Process,
		Intake:      payload.Intake,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("generate plan", "err", err)
		http.Error(w, "cannot generate plan", http.StatusInternalServerError)
		return
	}
	if err := s.store.SavePlan(r.Context(), p); err != nil {
		s.logger.Error("save plan", "err", err)
		http.Error(w, "cannot save plan", http.StatusInternalServerError)
		return
	}
	if payload.DraftKey != "" {
		if err := s.store.ClearDraft(r.Context(), intakeDraftKey(payload.DraftKey)); err != nil {
			s.logger.Warn("clear intake draft", "err", err)
		}
	}
	writeJSON(w, p)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	p, ok, err := s.store.LatestPlan(r.Context())
	if err != nil {
		s.logger.Error("load plan", "err", err)
		http.Error(w, "cannot load", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no plan", http.StatusNotFound)
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleLeaderDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.metrics.LeaderDashboard())
}

func (s *Server) handleCollaboratorWeek(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.metrics.CollaboratorWeek())
}

func (s *Server) handleInvite(w http.ResponseWriter, r *http.Request) {
	token := uuid.NewString()
	writeJSON(w, map[string]string{
		"token":    token,
		"joinLink": "/join?team=" + token,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.logger.Error("export", "err", err)
		http.Error(w, "cannot load export", http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(r.Context()); err != nil {
		s.logger.Error("reset", "err", err)
		http.Error(w, "cannot reset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "cleared"})
}

func intakeDraftKey(key string) string { return "intake:" + key }

func newULID(at time.Time) string {
	return ulid.MustNew(ulid.Timestamp(at), rand.Reader).String()
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
