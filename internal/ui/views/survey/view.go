package survey

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "carbontrack/internal/modules/session/dto"
	"carbontrack/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

type AnswerMsg struct {
	Category string
	Severity string
}

type AdvanceMsg struct{}

type RetreatMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	state  sessiondto.SurveyOutput
	cursor int
	bar    progress.Model
	width  int
}

func New() Model {
	return Model{
		bar: progress.New(
			progress.WithSolidFill(string(theme.Primary)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
	}
}

// SetSurvey replaces the rendered step. The cursor follows the recorded
// answer when the step changes or one is already selected.
func (m *Model) SetSurvey(state sessiondto.SurveyOutput) {
	stepChanged := state.Index != m.state.Index || state.Category != m.state.Category
	m.state = state
	if stepChanged {
		m.cursor = 0
	}
	for i, opt := range state.Options {
		if opt.Severity == state.Selected {
			m.cursor = i
		}
	}
}

func (m Model) State() sessiondto.SurveyOutput { return m.state }

func (m Model) Cursor() int { return m.cursor }

func (m *Model) SetWidth(w int) {
	m.width = w
	m.bar.Width = max(20, min(w-12, 60))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.state.Options) == 0 {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Options)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(keyMsg.Runes[0] - '1')
		if i < len(m.state.Options) {
			m.cursor = i
			return m, m.answer()
		}
	case "enter", " ":
		return m, m.answer()
	case "right", "l", "n":
		if m.state.CanAdvance {
			return m, func() tea.Msg { return AdvanceMsg{} }
		}
	case "left", "h", "b":
		if m.state.CanRetreat {
			return m, func() tea.Msg { return RetreatMsg{} }
		}
	}
	return m, nil
}

func (m Model) answer() tea.Cmd {
	out := AnswerMsg{Category: m.state.Category, Severity: m.state.Options[m.cursor].Severity}
	return func() tea.Msg { return out }
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.state.Total == 0 {
		return theme.Muted.Render("Carregando questionário…")
	}
	var sb strings.Builder
	header := fmt.Sprintf("Passo %d de %d", m.state.Index+1, m.state.Total)
	pct := fmt.Sprintf("%.0f%%", m.state.ProgressPercent)
	sb.WriteString(theme.Muted.Render(header) + "  " + theme.Accent.Render(pct) + "\n")
	sb.WriteString(m.bar.ViewAs(m.state.ProgressPercent/100) + "\n\n")

	sb.WriteString(theme.Title.Render(m.state.Title) + "\n")
	sb.WriteString(theme.Muted.Render(m.state.Subtitle) + "\n\n")

	for i, opt := range m.state.Options {
		marker := "○"
		style := theme.Outline
		if opt.Severity == m.state.Selected {
			marker = "●"
			style = style.BorderForeground(theme.Primary)
		}
		pointer := "  "
		if i == m.cursor {
			pointer = theme.Accent.Render("› ")
		}
		sb.WriteString(pointer + style.Render(fmt.Sprintf("%s %d. %s", marker, i+1, opt.Label)) + "\n")
	}
	sb.WriteString("\n" + m.renderButtons())

	return theme.Card.Render(sb.String())
}

func (m Model) renderButtons() string {
	back := theme.Dimmed.Render("← Anterior")
	if m.state.CanRetreat {
		back = theme.Outline.Render("← Anterior")
	}
	label := "Próximo →"
	if m.state.IsLastStep {
		label = "Finalizar ✓"
	}
	next := theme.Dimmed.Render(label)
	if m.state.CanAdvance {
		next = theme.Button.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, back, "   ", next)
}
