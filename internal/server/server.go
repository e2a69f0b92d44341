// Package server exposes the HTTP API: role sessions, the diagnostic
// survey, the action/pulse loop, intake drafts and plan generation, and
// the dashboard metrics.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	"talentlab/internal/actions"
	"talentlab/internal/auth"
	"talentlab/internal/catalog"
	"talentlab/internal/config"
	"talentlab/internal/metrics"
	"talentlab/internal/plan"
	"talentlab/internal/store"
)

type Server struct {
	store   *store.Store
	auth    *auth.Manager
	actions *actions.Service
	plans   *plan.Generator
	metrics metrics.Provider
	logger  *slog.Logger

	defaultLocale string
}

type ctxKey string

const roleCtxKey ctxKey = "role"

func New(st *store.Store, am *auth.Manager, acts *actions.Service, plans *plan.Generator, mp metrics.Provider, logger *slog.Logger, defaultLocale string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	return &Server{
		store:         st,
		auth:          am,
		actions:       acts,
		plans:         plans,
		metrics:       mp,
		logger:        logger,
		defaultLocale: defaultLocale,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.Handle("POST /api/logout", s.withRole(s.handleLogout))
	mux.Handle("GET /api/me", s.withRole(s.handleMe))
	mux.Handle("GET /api/catalog", s.withRole(s.handleCatalog))

	mux.Handle("POST /api/diagnostic", s.withRole(s.handleSubmitDiagnostic))
	mux.Handle("GET /api/diagnostic", s.withRole(s.handleLatestDiagnostic))

	// Leader surface
	mux.Handle("GET /api/actions", s.leaderOnly(s.handleListActions))
	mux.Handle("POST /api/actions/{id}/accept", s.leaderOnly(s.handleActionTransition))
	mux.Handle("POST /api/actions/{id}/snooze", s.leaderOnly(s.handleActionTransition))
	mux.Handle("POST /api/actions/{id}/activate", s.leaderOnly(s.handleActionTransition))
	mux.Handle("POST /api/actions/{id}/complete", s.leaderOnly(s.handleActionTransition))
	mux.Handle("PUT /api/actions/{id}/checklist", s.leaderOnly(s.handleUpdateChecklist))
	mux.Handle("GET /api/pulses/{actionID}", s.leaderOnly(s.handlePulseAggregate))
	mux.Handle("GET /api/intake/{key}", s.leaderOnly(s.handleLoadIntake))
	mux.Handle("PUT /api/intake/{key}", s.leaderOnly(s.handleSaveIntake))
	mux.Handle("POST /api/intake/submit", s.leaderOnly(s.handleSubmitIntake))
	mux.Handle("GET /api/plan", s.leaderOnly(s.handlePlan))
	mux.Handle("GET /api/metrics/dashboard", s.leaderOnly(s.handleLeaderDashboard))
	mux.Handle("POST /api/invites", s.leaderOnly(s.handleInvite))
	mux.Handle("GET /api/export", s.leaderOnly(s.handleExport))
	mux.Handle("POST /api/reset", s.leaderOnly(s.handleReset))

	// Collaborator surface
	mux.Handle("POST /api/pulses", s.collaboratorOnly(s.handleSubmitPulse))
	mux.Handle("POST /api/checkins", s.collaboratorOnly(s.handleCheckIn))
	mux.Handle("POST /api/blockages", s.collaboratorOnly(s.handleBlockage))
	mux.Handle("GET /api/metrics/week", s.collaboratorOnly(s.handleCollaboratorWeek))

	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

func (s *Server) withRole(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := s.roleFromRequest(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), roleCtxKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) leaderOnly(next http.HandlerFunc) http.Handler {
	return s.requireRole(catalog.RoleLeader, next)
}

func (s *Server) collaboratorOnly(next http.HandlerFunc) http.Handler {
	return s.requireRole(catalog.RoleCollaborator, next)
}

func (s *Server) requireRole(want catalog.Role, next http.HandlerFunc) http.Handler {
	return s.withRole(func(w http.ResponseWriter, r *http.Request) {
		if sessionRole(r) != want {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	})
}

func (s *Server) roleFromRequest(r *http.Request) (catalog.Role, error) {
	cookie, err := r.Cookie("session")
	if err != nil {
		return "", err
	}
	return s.auth.Parse(cookie.Value)
}

func sessionRole(r *http.Request) catalog.Role {
	role, _ := r.Context().Value(roleCtxKey).(catalog.Role)
	return role
}

// locale resolves the response language: explicit ?locale= first, then
// Accept-Language, then the configured default.
func (s *Server) locale(r *http.Request) language.Tag {
	if q := r.URL.Query().Get("locale"); q != "" {
		return catalog.MatchLocale(q)
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return catalog.MatchLocale(h)
	}
	return catalog.MatchLocale(s.defaultLocale)
}

// Start runs the HTTP server until the process receives SIGINT or
// SIGTERM, then drains in-flight requests within the shutdown grace.
func Start(cfg config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	srv := New(
		st,
		auth.NewManager(cfg.SessionSecret),
		actions.NewService(st),
		plan.NewGenerator(cfg.Plan.WebhookURL, cfg.Plan.Timeout.Std()),
		metrics.NewStaticProvider(),
		logger,
		cfg.DefaultLocale,
	)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace.Std())
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logger.Info("shut down")
	return nil
}
