package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#10201a")
	Mantle   = lipgloss.Color("#0b1813")
	Surface0 = lipgloss.Color("#1d3a2e")
	Surface1 = lipgloss.Color("#2f5a47")
	Text     = lipgloss.Color("#e3f2ea")
	Subtext0 = lipgloss.Color("#9cbcae")
	Primary  = lipgloss.Color("#4ade80")
	Glow     = lipgloss.Color("#86efac")
	Warning  = lipgloss.Color("#eab308")
	Danger   = lipgloss.Color("#f87171")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text)

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(1, 2)

	CardActive = Card.BorderForeground(Primary)

	Title   = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Accent  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	Warn    = lipgloss.NewStyle().Foreground(Warning)
	Error   = lipgloss.NewStyle().Foreground(Danger)
	Dimmed  = lipgloss.NewStyle().Foreground(Surface1)
	Toast   = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(Primary).Background(Surface0).Padding(0, 1)
	Button  = lipgloss.NewStyle().Foreground(Base).Background(Primary).Padding(0, 2).Bold(true)
	Outline = lipgloss.NewStyle().Foreground(Text).BorderStyle(lipgloss.NormalBorder()).BorderForeground(Surface1).Padding(0, 1)
)
