// Package plan generates a work plan from a process intake. Generation
// is delegated to an external webhook; when the webhook is unreachable
// or returns garbage the built-in fallback plan is served so the flow
// never dead-ends.
package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"talentlab/internal/models"
)

// Intake is the three-step process questionnaire a leader fills in
// before requesting a plan.
type Intake struct {
	ProcessContext    string `json:"proceso_context"`
	Problems          string `json:"problems"`
	RolesAndFrictions string `json:"roles_and_frictions"`
}

// Request is the full webhook payload: who is asking, which process, and
// what they said about it.
type Request struct {
	CompanyName string    `json:"companyName"`
	Industry    string    `json:"industry"`
	Area        string    `json:"area"`
	Process     string    `json:"process"`
	Intake      Intake    `json:"intake"`
	RequestedAt time.Time `json:"requestedAt"`
}

// Generator calls the plan webhook.
type Generator struct {
	url      string
	client   *http.Client
	fallback models.Plan
}

// NewGenerator builds a Generator for the given webhook URL. An empty
// URL disables the remote call entirely and every request gets the
// fallback plan.
func NewGenerator(url string, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Generator{
		url:      url,
		client:   &http.Client{Timeout: timeout},
		fallback: FallbackPlan(),
	}
}

// Generate posts the intake to the webhook and returns the plan it
// produced. Any failure (no URL, network error, non-2xx status, or an
// unparsable body) degrades to the fallback plan and a nil error: the
// caller always gets a usable plan.
func (g *Generator) Generate(ctx context.Context, req Request) (models.Plan, error) {
	if g.url == "" {
		return g.fallback, nil
	}
	body, err := json.Marshal(req)
	if err != nil {
		return models.Plan{}, fmt.Errorf("marshal plan request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return models.Plan{}, fmt.Errorf("build plan request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return g.fallback, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return g.fallback, nil
	}
	var p models.Plan
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return g.fallback, nil
	}
	if len(p.Objectives) == 0 {
		return g.fallback, nil
	}
	return p, nil
}

// FallbackPlan is the plan served when generation is unavailable.
func FallbackPlan() models.Plan {
	return models.Plan{
		Objectives: []models.Objective{
			{Title: "Reducir reprocesos en un 30%", Description: "Estandarizar el proceso y definir puntos de control de calidad."},
			{Title: "Mejorar tiempos de entrega", Description: "Eliminar cuellos de botella en las transferencias entre roles."},
		},
		Roadmap: []models.RoadmapItem{
			{Phase: "Semana 1-2", Action: "Mapear el proceso actual y documentar acuerdos de servicio."},
			{Phase: "Semana 3-4", Action: "Implementar puntos de control y tablero de seguimiento."},
			{Phase: "Semana 5-6", Action: "Revisar resultados y ajustar responsables por etapa."},
		},
		Tasks: []models.RoleTasks{
			{Role: "Líder", Tasks: []string{"Definir responsables por etapa", "Revisar avances semanales"}},
			{Role: "Coordinador", Tasks: []string{"Documentar el proceso", "Levantar bloqueos del equipo"}},
		},
		KPIs: []models.KPI{
			{Name: "Tasa de reproceso", Target: "< 10%", Current: "—"},
			{Name: "Tiempo de ciclo", Target: "-20%", Current: "—"},
			{Name: "Cumplimiento de entregas", Target: "95%", Current: "—"},
		},
	}
}
