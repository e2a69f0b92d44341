// Package navigator drives the multi-step diagnostic flow: an intro
// screen, one context page, one page per factor, and a completion state.
// It owns step/phase bookkeeping and the completion gates; rendering and
// persistence stay outside.
package navigator

import (
	"fmt"
	"strings"

	"talentlab/internal/catalog"
	"talentlab/internal/diagnostic"
)

// Phase is the coarse position in the flow.
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhaseSurvey   Phase = "survey"
	PhaseComplete Phase = "complete"
)

// Draft is the resumable in-progress state persisted when autosave is on.
type Draft struct {
	Context map[string]string `json:"context"`
	Answers map[string]int    `json:"answers"`
}

// DraftStore persists in-progress survey state. Implementations treat
// malformed stored data as absent.
type DraftStore interface {
	SaveDraft(key string, d Draft) error
	LoadDraft(key string) (Draft, bool, error)
	ClearDraft(key string) error
}

// Config wires a navigator to its catalog slice and collaborators.
type Config struct {
	Factors       []catalog.Factor
	ContextFields []catalog.ContextField

	// Autosave persists every recorded value to Drafts under DraftKey so
	// an interrupted survey can resume. Off by default: a diagnostic
	// answered halfway leaves no trace.
	Autosave bool
	Drafts   DraftStore
	DraftKey string

	// OnComplete receives the computed results exactly once, as a side
	// effect of the final forward transition. A nil sink discards them.
	OnComplete func(diagnostic.Results) error
}

// Navigator is a synchronous, single-user state machine. The zero value
// is not usable; construct with New.
type Navigator struct {
	cfg     Config
	phase   Phase
	step    int // 0 = context page, 1..N = factor pages
	context map[string]string
	answers map[string]int
	results *diagnostic.Results
}

// New builds a navigator positioned at the intro screen. With autosave
// enabled, a previously saved draft is loaded so the answers survive a
// restart (the position does not; the flow always re-enters at intro).
func New(cfg Config) (*Navigator, error) {
	if len(cfg.Factors) == 0 {
		return nil, fmt.Errorf("navigator: at least one factor is required")
	}
	if cfg.Autosave && cfg.Drafts == nil {
		return nil, fmt.Errorf("navigator: autosave requires a draft store")
	}
	n := &Navigator{
		cfg:     cfg,
		phase:   PhaseIntro,
		context: map[string]string{},
		answers: map[string]int{},
	}
	if cfg.Autosave {
		if d, ok, err := cfg.Drafts.LoadDraft(cfg.DraftKey); err == nil && ok {
			for k, v := range d.Context {
				n.context[k] = v
			}
			for k, v := range d.Answers {
				n.answers[k] = v
			}
		}
	}
	return n, nil
}

// Phase reports the coarse flow position.
func (n *Navigator) Phase() Phase { return n.phase }

// Step reports the survey step: 0 for the context page, i for factor i.
// Only meaningful while in the survey phase.
func (n *Navigator) Step() int { return n.step }

// TotalSteps is the context page plus one page per factor. Intro and
// completion are not steps.
func (n *Navigator) TotalSteps() int { return 1 + len(n.cfg.Factors) }

// Progress is the percentage shown on the survey header. Intro reports 0
// and completion 100.
func (n *Navigator) Progress() float64 {
	switch n.phase {
	case PhaseIntro:
		return 0
	case PhaseComplete:
		return 100
	}
	return float64(n.step+1) / float64(n.TotalSteps()) * 100
}

// CurrentFactor returns the factor for the current step, if any.
func (n *Navigator) CurrentFactor() (catalog.Factor, bool) {
	if n.phase != PhaseSurvey || n.step == 0 {
		return catalog.Factor{}, false
	}
	return n.cfg.Factors[n.step-1], true
}

// ContextValue reads a recorded context answer.
func (n *Navigator) ContextValue(id string) string { return n.context[id] }

// Answer reads a recorded Likert answer; ok is false when unanswered.
func (n *Navigator) Answer(id string) (int, bool) {
	v, ok := n.answers[id]
	return v, ok
}

// SetContextValue records a context field value. Values are taken as-is;
// completeness is judged on the trimmed value at transition time.
func (n *Navigator) SetContextValue(id, value string) {
	n.context[id] = value
	n.autosave()
}

// SetAnswer records a Likert answer. Values outside the 1..5 domain are
// ignored; the UI never offers them.
func (n *Navigator) SetAnswer(id string, value int) {
	if value < catalog.LikertMin || value > catalog.LikertMax {
		return
	}
	n.answers[id] = value
	n.autosave()
}

// Start moves from the intro screen into the survey. A no-op elsewhere.
func (n *Navigator) Start() bool {
	if n.phase != PhaseIntro {
		return false
	}
	n.phase = PhaseSurvey
	n.step = 0
	return true
}

// CanProceed is the completion gate for the current step: every context
// field trimmed non-empty on the context page, every one of the factor's
// questions answered on a factor page. Callers disable their forward
// control while this is false.
func (n *Navigator) CanProceed() bool {
	if n.phase != PhaseSurvey {
		return false
	}
	if n.step == 0 {
		return contextComplete(n.cfg.ContextFields, n.context)
	}
	return factorComplete(n.cfg.Factors[n.step-1], n.answers)
}

// Next advances one step. The transition out of the last factor page
// computes the results and hands them to the completion sink; a sink
// error leaves the navigator on the last page so the caller may retry.
// Next reports false, without error, when the gate blocks it.
func (n *Navigator) Next() (bool, error) {
	if n.phase != PhaseSurvey || !n.CanProceed() {
		return false, nil
	}
	if n.step < len(n.cfg.Factors) {
		n.step++
		return true, nil
	}
	res := diagnostic.Calculate(n.cfg.Factors, n.context, n.answers)
	if n.cfg.OnComplete != nil {
		if err := n.cfg.OnComplete(res); err != nil {
			return false, fmt.Errorf("complete diagnostic: %w", err)
		}
	}
	n.results = &res
	n.phase = PhaseComplete
	if n.cfg.Autosave {
		_ = n.cfg.Drafts.ClearDraft(n.cfg.DraftKey)
	}
	return true, nil
}

// Back steps backwards: factor i to i-1, the context page to intro.
// A no-op at intro and after completion.
func (n *Navigator) Back() bool {
	if n.phase != PhaseSurvey {
		return false
	}
	if n.step > 0 {
		n.step--
		return true
	}
	n.phase = PhaseIntro
	return true
}

// Results returns the computed snapshot once the flow has completed.
func (n *Navigator) Results() (diagnostic.Results, bool) {
	if n.results == nil {
		return diagnostic.Results{}, false
	}
	return *n.results, true
}

func (n *Navigator) autosave() {
	if !n.cfg.Autosave {
		return
	}
	// Best effort: a failed draft write never interrupts the flow.
	_ = n.cfg.Drafts.SaveDraft(n.cfg.DraftKey, Draft{Context: n.context, Answers: n.answers})
}

func contextComplete(fields []catalog.ContextField, values map[string]string) bool {
	for _, f := range fields {
		if strings.TrimSpace(values[f.ID]) == "" {
			return false
		}
	}
	return true
}

func factorComplete(f catalog.Factor, answers map[string]int) bool {
	for _, q := range f.Questions {
		if _, ok := answers[q.ID]; !ok {
			return false
		}
	}
	return true
}
