package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	footprintdto "carbontrack/internal/modules/footprint/dto"
	sessiondto "carbontrack/internal/modules/session/dto"
	"carbontrack/internal/ui/components"
	"carbontrack/internal/ui/theme"
	dashboardview "carbontrack/internal/ui/views/dashboard"
	loginview "carbontrack/internal/ui/views/login"
	surveyview "carbontrack/internal/ui/views/survey"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Start(ctx context.Context) (sessiondto.SessionOutput, error)
	SubmitCredentials(ctx context.Context, sessionID, identifier, secret string) (sessiondto.TransitionOutput, error)
	ToggleRegistrationMode(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error)
	Answer(ctx context.Context, sessionID, category, severity string) (sessiondto.TransitionOutput, error)
	Advance(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error)
	Retreat(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error)
	Dashboard(ctx context.Context, sessionID string) (footprintdto.DashboardOutput, error)
}

const (
	screenLogin     = "login"
	screenSurvey    = "survey"
	screenDashboard = "dashboard"
)

// ─── async messages ───────────────────────────────────────────────────────────

type sessionStartedMsg struct {
	out sessiondto.SessionOutput
	err error
}

type transitionMsg struct {
	out sessiondto.TransitionOutput
	err error
}

type dashboardLoadedMsg struct {
	out footprintdto.DashboardOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Toggle   key.Binding
	Fields   key.Binding
	Select   key.Binding
	Navigate key.Binding
	Tabs     key.Binding
	Flip     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:     key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?/f1", "ajuda")),
		Palette:  key.NewBinding(key.WithKeys(":", "ctrl+p"), key.WithHelp(":/ctrl+p", "comandos")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "sair")),
		Toggle:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "entrar/criar conta")),
		Fields:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "próximo campo")),
		Select:   key.NewBinding(key.WithKeys("enter", "1", "2", "3"), key.WithHelp("enter/1-3", "escolher")),
		Navigate: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "anterior/próximo")),
		Tabs:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "abas")),
		Flip:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "virar dica")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fields, k.Toggle},
		{k.Select, k.Navigate},
		{k.Tabs, k.Flip},
		{k.Help, k.Palette, k.Quit},
	}
}

// paletteCommands must stay in sync with the switch in executePalette.
var paletteCommands = []components.PaletteCommand{
	{Name: "login", Help: "modo entrar"},
	{Name: "register", Help: "modo criar conta"},
	{Name: "answer", Args: "<low|medium|high>", Help: "responde o passo atual"},
	{Name: "next", Help: "próximo passo"},
	{Name: "back", Help: "passo anterior"},
	{Name: "tab", Args: "<home|habits|ranking|profile>", Help: "troca a aba do painel"},
	{Name: "flip", Args: "<dica>", Help: "vira uma dica"},
	{Name: "quit", Help: "sai do aplicativo"},
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes input to the screen the
// session is on and turns view intents into session usecase calls.
type Model struct {
	session sessionPort

	loginView     loginview.Model
	surveyView    surveyview.Model
	dashboardView dashboardview.Model

	state    sessiondto.SessionOutput
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	toast    string
	status   string
	width    int
	height   int
}

func NewModel(session sessionPort, target int) Model {
	return Model{
		session:       session,
		loginView:     loginview.New(),
		surveyView:    surveyview.New(),
		dashboardView: dashboardview.New(target),
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(paletteCommands),
		status:        "pronto",
	}
}

func (m Model) Init() tea.Cmd {
	return m.startSessionCmd()
}

// Screen reports the screen of the current session.
func (m Model) Screen() string { return m.state.Screen }

func (m Model) SessionID() string { return m.state.SessionID }

func (m Model) Toast() string { return m.toast }

func (m Model) Status() string { return m.status }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.loginView.SetWidth(m.width)
		m.surveyView.SetWidth(m.width)
		m.dashboardView.SetWidth(m.width)
		return m, nil

	case sessionStartedMsg:
		if msg.err != nil {
			m.status = "falha ao iniciar sessão: " + msg.err.Error()
			return m, nil
		}
		m.applySession(msg.out)
		return m, nil

	case transitionMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		prev := m.state.Screen
		m.applySession(msg.out.Session)
		for _, ev := range msg.out.Events {
			if ev.Title != "" {
				m.toast = ev.Title + " · " + ev.Message
			}
		}
		if prev != screenDashboard && m.state.Screen == screenDashboard {
			return m, m.loadDashboardCmd()
		}
		return m, nil

	case dashboardLoadedMsg:
		if msg.err != nil {
			m.status = "painel: " + msg.err.Error()
			return m, nil
		}
		m.dashboardView.SetData(msg.out)
		return m, nil

	case loginview.SubmitMsg:
		return m, m.transitionCmd(func(ctx context.Context, id string) (sessiondto.TransitionOutput, error) {
			return m.session.SubmitCredentials(ctx, id, msg.Identifier, msg.Secret)
		})

	case loginview.ToggleModeMsg:
		return m, m.toggleCmd()

	case surveyview.AnswerMsg:
		return m, m.answerCmd(msg.Category, msg.Severity)

	case surveyview.AdvanceMsg:
		return m, m.transitionCmd(m.session.Advance)

	case surveyview.RetreatMsg:
		return m, m.transitionCmd(m.session.Retreat)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "pronto"
		return m, nil

	case tea.KeyMsg:
		m.toast = ""
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		typing := m.state.Screen == screenLogin
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+p":
			return m, m.palette.Open()
		case "f1":
			m.showHelp = true
			return m, nil
		}
		if !typing {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				return m, m.palette.Open()
			}
		}
	}

	var cmd tea.Cmd
	switch m.state.Screen {
	case screenLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case screenSurvey:
		m.surveyView, cmd = m.surveyView.Update(msg)
	case screenDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	}
	return m, cmd
}

func (m *Model) applySession(out sessiondto.SessionOutput) {
	m.state = out
	m.status = "pronto"
	m.loginView.SetRegistrationMode(out.RegistrationMode)
	if out.Survey != nil {
		m.surveyView.SetSurvey(*out.Survey)
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	parts := []string{header}
	if m.toast != "" {
		parts = append(parts, theme.Toast.Render("🔔 "+m.toast))
	}
	parts = append(parts, content, statusBar)
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) activeView() string {
	switch m.state.Screen {
	case screenLogin:
		return m.loginView.View()
	case screenSurvey:
		return m.surveyView.View()
	case screenDashboard:
		return m.dashboardView.View()
	}
	return theme.Muted.Render("Iniciando…")
}

func (m Model) renderHeader() string {
	title := theme.Accent.Render("🌱 Carbon Tracker")
	if m.state.Identifier != "" && m.state.Screen != screenLogin {
		title += theme.Muted.Render("  " + m.state.Identifier)
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(title) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:ajuda  ::comandos  q:sair")
	if m.state.Screen == screenLogin {
		right = theme.Muted.Render("f1:ajuda  ctrl+p:comandos  ctrl+c:sair")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "login", "register":
		if m.state.Screen != screenLogin {
			m.status = "disponível apenas na tela de login"
			return m, nil
		}
		if m.state.RegistrationMode == (parts[0] == "register") {
			return m, nil
		}
		return m, m.toggleCmd()

	case "answer":
		if m.state.Screen != screenSurvey || len(parts) < 2 {
			m.status = "uso: answer <low|medium|high>"
			return m, nil
		}
		return m, m.answerCmd(m.surveyView.State().Category, parts[1])

	case "next":
		return m, m.transitionCmd(m.session.Advance)

	case "back":
		return m, m.transitionCmd(m.session.Retreat)

	case "tab":
		tab, ok := dashboardview.Tab(0), false
		if len(parts) >= 2 {
			tab, ok = dashboardview.ParseTab(parts[1])
		}
		if m.state.Screen != screenDashboard || !ok {
			m.status = "uso: tab <home|habits|ranking|profile>"
			return m, nil
		}
		m.dashboardView.SetTab(tab)
		return m, nil

	case "flip":
		n := 0
		if len(parts) >= 2 {
			n, _ = strconv.Atoi(parts[1])
		}
		if m.state.Screen != screenDashboard || !m.dashboardView.FlipTip(n-1) {
			m.status = "uso: flip <dica>"
		}
		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		m.status = "comando desconhecido: " + parts[0]
	}
	return m, nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) startSessionCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Start(context.Background())
		return sessionStartedMsg{out: out, err: err}
	}
}

func (m Model) transitionCmd(fn func(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error)) tea.Cmd {
	id := m.state.SessionID
	return func() tea.Msg {
		out, err := fn(context.Background(), id)
		return transitionMsg{out: out, err: err}
	}
}

func (m Model) toggleCmd() tea.Cmd {
	return m.transitionCmd(m.session.ToggleRegistrationMode)
}

func (m Model) answerCmd(category, severity string) tea.Cmd {
	return m.transitionCmd(func(ctx context.Context, id string) (sessiondto.TransitionOutput, error) {
		return m.session.Answer(ctx, id, category, severity)
	})
}

func (m Model) loadDashboardCmd() tea.Cmd {
	id := m.state.SessionID
	return func() tea.Msg {
		out, err := m.session.Dashboard(context.Background(), id)
		return dashboardLoadedMsg{out: out, err: err}
	}
}
