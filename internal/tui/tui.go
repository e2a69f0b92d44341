// Package tui is the terminal survey client: the same intro → context →
// factors → results flow the web survey has, rendered with bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"talentlab/internal/catalog"
	"talentlab/internal/navigator"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model for one survey session.
type Model struct {
	nav          *navigator.Navigator
	role         catalog.Role
	factors      []catalog.Factor
	likertLabels []string

	contextFields []catalog.ContextField
	inputs        []textinput.Model
	focusedInput  int

	cursor int // question index within the current factor

	bar     progress.Model
	lastErr error
	done    bool
}

// New builds the survey model. The navigator carries the flow state;
// the model only renders and translates keys.
func New(nav *navigator.Navigator, role catalog.Role, factors []catalog.Factor, fields []catalog.ContextField, likertLabels []string) Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.Prompt = "> "
		in.CharLimit = 120
		in.SetValue(nav.ContextValue(f.ID))
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return Model{
		nav:           nav,
		role:          role,
		factors:       factors,
		likertLabels:  likertLabels,
		contextFields: fields,
		inputs:        inputs,
		bar:           progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		switch m.nav.Phase() {
		case navigator.PhaseIntro:
			return m.updateIntro(msg)
		case navigator.PhaseSurvey:
			if m.nav.Step() == 0 {
				return m.updateContext(msg)
			}
			return m.updateFactor(msg)
		case navigator.PhaseComplete:
			if msg.String() == "q" || msg.String() == "enter" {
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.nav.Start()
	case "q":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateContext(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.syncContext()
		m.nav.Back()
		return m, nil
	case "tab", "down":
		return m.focusInput(m.focusedInput + 1), nil
	case "shift+tab", "up":
		return m.focusInput(m.focusedInput - 1), nil
	case "enter":
		m.syncContext()
		if m.focusedInput < len(m.inputs)-1 {
			return m.focusInput(m.focusedInput + 1), nil
		}
		ok, err := m.nav.Next()
		m.lastErr = err
		if !ok && err == nil {
			m.lastErr = fmt.Errorf("answer every field to continue")
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	m.syncContext()
	return m, cmd
}

func (m Model) updateFactor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	factor, ok := m.nav.CurrentFactor()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.cursor = 0
		m.nav.Back()
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(factor.Questions)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4", "5":
		value := int(msg.String()[0] - '0')
		m.nav.SetAnswer(factor.Questions[m.cursor].ID, value)
		if m.cursor < len(factor.Questions)-1 {
			m.cursor++
		}
	case "enter":
		wasLast := m.nav.Step() == m.nav.TotalSteps()-1
		ok, err := m.nav.Next()
		m.lastErr = err
		switch {
		case !ok && err == nil:
			m.lastErr = fmt.Errorf("answer all five questions to continue")
		case ok:
			m.cursor = 0
			if wasLast && m.nav.Phase() == navigator.PhaseComplete {
				return m, nil
			}
		}
	}
	return m, nil
}

func (m Model) focusInput(idx int) Model {
	if idx < 0 || idx >= len(m.inputs) {
		return m
	}
	m.inputs[m.focusedInput].Blur()
	m.focusedInput = idx
	m.inputs[idx].Focus()
	return m
}

// syncContext copies the text inputs into the navigator so gating and
// autosave see the latest values.
func (m *Model) syncContext() {
	for i, f := range m.contextFields {
		m.nav.SetContextValue(f.ID, m.inputs[i].Value())
	}
}

// Done reports whether the session asked to exit.
func (m Model) Done() bool { return m.done }

func (m Model) View() string {
	var b strings.Builder
	switch m.nav.Phase() {
	case navigator.PhaseIntro:
		b.WriteString(titleStyle.Render("Team Diagnostic") + "\n\n")
		b.WriteString(fmt.Sprintf("Role: %s\n\n", m.role))
		b.WriteString("A short survey about how your team works: six factors,\nfive questions each, answered on a 1-5 scale.\n\n")
		b.WriteString(subtleStyle.Render("enter to begin · q to quit"))
	case navigator.PhaseSurvey:
		b.WriteString(m.bar.ViewAs(m.nav.Progress()/100) + "\n\n")
		if m.nav.Step() == 0 {
			m.viewContext(&b)
		} else {
			m.viewFactor(&b)
		}
		if m.lastErr != nil {
			b.WriteString("\n" + errorStyle.Render(m.lastErr.Error()))
		}
	case navigator.PhaseComplete:
		m.viewResults(&b)
	}
	return b.String() + "\n"
}

func (m Model) viewContext(b *strings.Builder) {
	b.WriteString(titleStyle.Render("About you") + "\n\n")
	for i, f := range m.contextFields {
		label := f.Label
		if i == m.focusedInput {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label + "\n" + m.inputs[i].View() + "\n\n")
	}
	b.WriteString(subtleStyle.Render("tab to move · enter to continue · esc to go back"))
}

func (m Model) viewFactor(b *strings.Builder) {
	factor, ok := m.nav.CurrentFactor()
	if !ok {
		return
	}
	b.WriteString(titleStyle.Render(factor.Name) + "\n")
	b.WriteString(subtleStyle.Render(factor.Description) + "\n\n")
	for i, q := range factor.Questions {
		marker := "  "
		text := q.Text
		if i == m.cursor {
			marker = "> "
			text = selectedStyle.Render(text)
		}
		b.WriteString(marker + text + "\n")
		if v, answered := m.nav.Answer(q.ID); answered {
			b.WriteString("    " + answerStyle.Render(fmt.Sprintf("%d — %s", v, m.likertLabels[v-1])) + "\n")
		}
	}
	b.WriteString("\n" + subtleStyle.Render("1-5 to answer · ↑/↓ to move · enter to continue · esc to go back"))
}

func (m Model) viewResults(b *strings.Builder) {
	res, ok := m.nav.Results()
	if !ok {
		return
	}
	b.WriteString(titleStyle.Render("Your results") + "\n\n")
	for _, f := range m.factors {
		b.WriteString(fmt.Sprintf("  %-22s %3d\n", f.Name, res.Scores[f.ID]))
	}
	b.WriteString(fmt.Sprintf("\n  %-22s %3d\n\n", "overall", res.OverallScore))
	b.WriteString(subtleStyle.Render("enter or q to exit"))
}

// Run starts the interactive program and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
