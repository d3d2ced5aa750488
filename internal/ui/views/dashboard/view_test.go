package dashboard_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	footprintdto "carbontrack/internal/modules/footprint/dto"
	dashboardview "carbontrack/internal/ui/views/dashboard"
)

func loadedModel() dashboardview.Model {
	m := dashboardview.New(50)
	m.SetData(footprintdto.DashboardOutput{
		Metrics: footprintdto.MetricsOutput{Score: 40, Target: 50, ProgressPercent: 100, GaugeFraction: 0.4, GoalReached: true},
		Tips: []footprintdto.TipOutput{
			{ID: 1, Title: "Use transporte público", Description: "frente um", Impact: "-2kg CO2/dia"},
			{ID: 2, Title: "Desligue aparelhos", Description: "frente dois", Impact: "-0.5kg CO2/dia"},
		},
		Ranking: []footprintdto.RankOutput{
			{Position: 1, Name: "Maria", Score: 950, Avatar: "👩", Medal: "🥇"},
			{Position: 4, Name: "Você", Score: 720, Avatar: "🙂", CurrentUser: true},
		},
		Week: []footprintdto.DayOutput{{Label: "Seg", Percent: 40}, {Label: "Ter", Percent: 80, IsToday: true}},
	})
	return m
}

func TestOnlyOneTipShowsItsBack(t *testing.T) {
	t.Parallel()
	m := loadedModel()
	if !m.FlipTip(0) || !m.TipFlipped(0) {
		t.Fatalf("first tip should be flipped")
	}
	m.FlipTip(1)
	if m.TipFlipped(0) {
		t.Fatalf("flipping the second tip must turn the first one back")
	}
	if !m.TipFlipped(1) {
		t.Fatalf("second tip should be flipped")
	}
	m.FlipTip(1)
	if m.TipFlipped(0) || m.TipFlipped(1) {
		t.Fatalf("flipping the same tip twice should leave none flipped")
	}
	if m.FlipTip(5) {
		t.Fatalf("out of range tip must be rejected")
	}
}

func TestFlipKeyTogglesSelectedTip(t *testing.T) {
	t.Parallel()
	m := loadedModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	if !m.TipFlipped(0) || !strings.Contains(m.View(), "frente um") {
		t.Fatalf("expected first tip description after flip")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	if m.TipFlipped(0) || !m.TipFlipped(1) {
		t.Fatalf("expected only the second tip flipped")
	}
	if strings.Contains(m.View(), "frente um") {
		t.Fatalf("first tip should show its front again")
	}
}

func TestHomeCopy(t *testing.T) {
	t.Parallel()
	view := loadedModel().View()
	for _, want := range []string{
		"Dashboard",
		"Sua pegada de carbono hoje",
		"Pegada Atual",
		"Meta: 50kg",
		dashboardview.GoalReachedText,
		"Histórico Semanal",
		"Dicas Personalizadas",
		"Ranking Eco",
		"720 pts",
		"4º",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("home view missing %q", want)
		}
	}
}

func TestRankLine(t *testing.T) {
	t.Parallel()
	got := dashboardview.RankLine(footprintdto.RankOutput{Position: 4, Name: "Você", Score: 720, Avatar: "🙂"})
	if !strings.HasPrefix(got, "4º") || !strings.HasSuffix(got, "720 pts") {
		t.Fatalf("unexpected rank line %q", got)
	}
	medal := dashboardview.RankLine(footprintdto.RankOutput{Position: 1, Name: "Maria", Score: 950, Medal: "🥇"})
	if !strings.HasPrefix(medal, "🥇") {
		t.Fatalf("medal should replace the position, got %q", medal)
	}
}

func TestPlaceholderTabsShowTheirHeading(t *testing.T) {
	t.Parallel()
	for name, heading := range map[string]string{"habits": "Hábitos", "ranking": "Ranking", "profile": "Perfil"} {
		m := loadedModel()
		tab, ok := dashboardview.ParseTab(name)
		if !ok {
			t.Fatalf("parse tab %q", name)
		}
		m.SetTab(tab)
		view := m.View()
		if !strings.Contains(view, heading) || !strings.Contains(view, dashboardview.UnderConstructionText) {
			t.Fatalf("tab %s missing heading or placeholder", name)
		}
		if strings.Contains(view, "Pegada Atual") {
			t.Fatalf("tab %s should not render the home content", name)
		}
	}
}
