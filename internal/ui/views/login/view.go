package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carbontrack/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// SubmitMsg carries validated credentials up to the root model.
type SubmitMsg struct {
	Identifier string
	Secret     string
}

// ToggleModeMsg asks the root model to flip between login and registration.
type ToggleModeMsg struct{}

const missingFieldsText = "Preencha todos os campos"

// ─── model ───────────────────────────────────────────────────────────────────

type field int

const (
	fieldEmail field = iota
	fieldPassword
	fieldConfirm
)

type Model struct {
	inputs       [3]textinput.Model
	focused      field
	registration bool
	err          string
	width        int
}

func New() Model {
	email := newInput("seu@email.com", "E-mail  ")
	password := newInput("••••••••", "Senha   ")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	confirm := newInput("••••••••", "Confirmar senha ")
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	m := Model{inputs: [3]textinput.Model{email, password, confirm}}
	m.inputs[fieldEmail].Focus()
	return m
}

func newInput(placeholder, prompt string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = prompt
	ti.CharLimit = 128
	ti.Width = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// SetRegistrationMode syncs the view with the session flag. Leaving
// registration mode moves focus off the hidden confirmation field.
func (m *Model) SetRegistrationMode(on bool) {
	m.registration = on
	if !on && m.focused == fieldConfirm {
		m.focus(fieldEmail)
	}
}

func (m Model) RegistrationMode() bool { return m.registration }

func (m *Model) SetWidth(w int) { m.width = w }

// Err returns the presentation-layer validation message, if any.
func (m Model) Err() string { return m.err }

func (m Model) visibleFields() int {
	if m.registration {
		return 3
	}
	return 2
}

func (m *Model) focus(f field) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focused = f
	m.inputs[f].Focus()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := field(m.visibleFields())
	switch keyMsg.String() {
	case "tab", "down":
		m.focus((m.focused + 1) % n)
		return m, nil
	case "shift+tab", "up":
		m.focus((m.focused + n - 1) % n)
		return m, nil
	case "ctrl+r":
		m.err = ""
		return m, func() tea.Msg { return ToggleModeMsg{} }
	case "enter":
		return m.submit()
	}

	m.err = ""
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	for i := 0; i < m.visibleFields(); i++ {
		if strings.TrimSpace(m.inputs[i].Value()) == "" {
			m.err = missingFieldsText
			m.focus(field(i))
			return m, nil
		}
	}
	out := SubmitMsg{
		Identifier: strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Secret:     m.inputs[fieldPassword].Value(),
	}
	return m, func() tea.Msg { return out }
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Accent.Render("🌱 Carbon Tracker") + "\n")
	if m.registration {
		sb.WriteString(theme.Title.Render("Criar conta") + "\n")
		sb.WriteString(theme.Muted.Render("Comece a acompanhar sua pegada de carbono") + "\n\n")
	} else {
		sb.WriteString(theme.Title.Render("Entrar") + "\n")
		sb.WriteString(theme.Muted.Render("Acompanhe sua pegada de carbono") + "\n\n")
	}

	for i := 0; i < m.visibleFields(); i++ {
		sb.WriteString(m.inputs[i].View() + "\n")
	}
	sb.WriteString("\n")

	if m.registration {
		sb.WriteString(theme.Button.Render("Criar conta") + "\n\n")
		sb.WriteString(theme.Muted.Render("Já tem uma conta? ") + theme.Accent.Render("Entrar (ctrl+r)"))
	} else {
		sb.WriteString(theme.Button.Render("Entrar") + "\n\n")
		sb.WriteString(theme.Muted.Render("Não tem uma conta? ") + theme.Accent.Render("Criar conta (ctrl+r)"))
	}
	if m.err != "" {
		sb.WriteString("\n\n" + theme.Error.Render(m.err))
	}

	w := m.width
	if w < 64 {
		w = 64
	}
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).
		Render(theme.CardActive.Render(sb.String()))
}
