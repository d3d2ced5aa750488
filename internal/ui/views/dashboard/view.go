package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	footprintdto "carbontrack/internal/modules/footprint/dto"
	"carbontrack/internal/ui/theme"
)

const (
	UnderConstructionText = "Esta seção está em desenvolvimento"
	GoalReachedText       = "Meta atingida!"
	InProgressText        = "Em progresso"
)

// Tab is one of the bottom navigation entries.
type Tab int

const (
	TabHome Tab = iota
	TabHabits
	TabRanking
	TabProfile
	tabCount
)

var tabNames = [tabCount]string{"home", "habits", "ranking", "profile"}

var tabLabels = [tabCount]string{"Home", "Hábitos", "Ranking", "Perfil"}

var tabIcons = [tabCount]string{"🏠", "🎯", "🏆", "👤"}

func (t Tab) String() string { return tabNames[t] }

// ParseTab accepts the English tab name used by the command palette.
func ParseTab(name string) (Tab, bool) {
	for i, n := range tabNames {
		if strings.EqualFold(n, name) {
			return Tab(i), true
		}
	}
	return TabHome, false
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	data      footprintdto.DashboardOutput
	loaded    bool
	target    int
	tab       Tab
	tipCursor int
	flippedID int // tip id showing its back, 0 when none
	gauge     progress.Model
	goal      progress.Model
	width     int
}

func New(target int) Model {
	return Model{
		target: target,
		gauge: progress.New(
			progress.WithGradient(string(theme.Glow), string(theme.Warning)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
		goal: progress.New(
			progress.WithSolidFill(string(theme.Primary)),
			progress.WithWidth(30),
		),
	}
}

func (m *Model) SetData(data footprintdto.DashboardOutput) {
	m.data = data
	m.loaded = true
	m.flippedID = 0
	m.tipCursor = 0
}

func (m Model) Data() footprintdto.DashboardOutput { return m.data }

func (m Model) Loaded() bool { return m.loaded }

func (m Model) Tab() Tab { return m.tab }

func (m *Model) SetTab(t Tab) {
	if t >= 0 && t < tabCount {
		m.tab = t
	}
}

// FlipTip turns the card at index i to its description, or back when it is
// already turned. At most one card shows its back at a time.
func (m *Model) FlipTip(i int) bool {
	if i < 0 || i >= len(m.data.Tips) {
		return false
	}
	id := m.data.Tips[i].ID
	if m.flippedID == id {
		m.flippedID = 0
	} else {
		m.flippedID = id
	}
	return true
}

func (m Model) TipFlipped(i int) bool {
	if i < 0 || i >= len(m.data.Tips) {
		return false
	}
	return m.flippedID != 0 && m.flippedID == m.data.Tips[i].ID
}

func (m *Model) SetWidth(w int) {
	m.width = w
	bar := max(20, min(w/2-8, 40))
	m.gauge.Width = bar
	m.goal.Width = bar
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		m.tab = (m.tab + tabCount - 1) % tabCount
	case "right", "l", "tab":
		m.tab = (m.tab + 1) % tabCount
	case "1", "2", "3", "4":
		m.tab = Tab(keyMsg.Runes[0] - '1')
	case "up", "k":
		if m.tipCursor > 0 {
			m.tipCursor--
		}
	case "down", "j":
		if m.tipCursor < len(m.data.Tips)-1 {
			m.tipCursor++
		}
	case "enter", " ", "f":
		if m.tab == TabHome {
			m.FlipTip(m.tipCursor)
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var body string
	switch {
	case !m.loaded:
		body = theme.Muted.Render("Calculando sua pegada…")
	case m.tab == TabHome:
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render("Dashboard"),
			theme.Muted.Render("Sua pegada de carbono hoje"),
			"",
			m.renderHome(),
		)
	default:
		body = theme.Card.Render(theme.Title.Render(tabLabels[m.tab]) + "\n\n" + theme.Muted.Render(UnderConstructionText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.renderTabs())
}

func (m Model) renderHome() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderScore(),
		m.renderWeek(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTips(),
		m.renderRanking(),
	)
	if m.width > 0 && m.width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m Model) renderScore() string {
	metrics := m.data.Metrics
	target := metrics.Target
	if target <= 0 {
		target = m.target
	}
	status := theme.Warn.Render("⏳ " + InProgressText)
	if metrics.GoalReached {
		status = theme.Accent.Render("✅ " + GoalReachedText)
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Pegada Atual") + "\n\n")
	sb.WriteString(m.gauge.ViewAs(metrics.GaugeFraction) + "\n")
	sb.WriteString(theme.Accent.Render(fmt.Sprintf("%d", metrics.Score)) + " " + theme.Muted.Render("kg CO2/mês") + "\n\n")
	sb.WriteString(fmt.Sprintf("Meta: %dkg", target) + "  " + status + "\n")
	sb.WriteString(m.goal.ViewAs(metrics.ProgressPercent / 100))
	return theme.Card.Render(sb.String())
}

const barHeight = 5

func (m Model) renderWeek() string {
	if len(m.data.Week) == 0 {
		return ""
	}
	cols := make([]string, 0, len(m.data.Week))
	for _, day := range m.data.Week {
		filled := int(day.Percent/100*barHeight + 0.5)
		var col strings.Builder
		for row := barHeight; row > 0; row-- {
			if row <= filled {
				col.WriteString("██\n")
			} else {
				col.WriteString("  \n")
			}
		}
		style := theme.Dimmed
		if day.IsToday {
			style = theme.Accent
		}
		label := fmt.Sprintf("%-3s", day.Label)
		cols = append(cols, style.Render(col.String()+label))
	}
	chart := lipgloss.JoinHorizontal(lipgloss.Bottom, joinWithGap(cols, " ")...)
	return theme.Card.Render(theme.Title.Render("Histórico Semanal") + "\n\n" + chart)
}

func (m Model) renderTips() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Dicas Personalizadas") + "\n")
	for i, tip := range m.data.Tips {
		style := theme.Outline
		if i == m.tipCursor {
			style = style.BorderForeground(theme.Primary)
		}
		var card string
		if m.TipFlipped(i) {
			card = tip.Description
		} else {
			card = theme.Title.Render(tip.Title) + "\n" + theme.Accent.Render(tip.Impact)
		}
		sb.WriteString("\n" + style.Width(36).Render(card))
	}
	return theme.Card.Render(sb.String())
}

func (m Model) renderRanking() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Ranking Eco") + "\n")
	for _, entry := range m.data.Ranking {
		line := RankLine(entry)
		if entry.CurrentUser {
			line = theme.Accent.Render(line)
		}
		sb.WriteString("\n" + line)
	}
	return theme.Card.Render(sb.String())
}

func (m Model) renderTabs() string {
	parts := make([]string, tabCount)
	for i := Tab(0); i < tabCount; i++ {
		if i == m.tab {
			parts[i] = theme.Accent.Render(" " + tabIcons[i] + " " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabIcons[i] + " " + tabLabels[i] + " ")
		}
	}
	return strings.Join(parts, theme.Muted.Render(" │ "))
}

// RankLine formats one leaderboard row; unmedalled positions read "4º".
func RankLine(entry footprintdto.RankOutput) string {
	badge := entry.Medal
	if badge == "" {
		badge = fmt.Sprintf("%dº", entry.Position)
	}
	return fmt.Sprintf("%-3s %s %-12s %d pts", badge, entry.Avatar, entry.Name, entry.Score)
}

func joinWithGap(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, item)
	}
	return out
}
