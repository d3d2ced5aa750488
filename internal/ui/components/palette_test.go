package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"carbontrack/internal/ui/components"
)

var commands = []components.PaletteCommand{
	{Name: "next", Help: "próximo"},
	{Name: "tab", Args: "<name>"},
	{Name: "teste"},
}

func typeInto(p components.Palette, text string) components.Palette {
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return p
}

func TestPaletteFiltersByFirstWord(t *testing.T) {
	t.Parallel()
	p := components.NewPalette(commands)
	p.Open()
	if got := len(p.Matches()); got != 3 {
		t.Fatalf("empty input should match all commands, got %d", got)
	}
	p = typeInto(p, "te")
	matches := p.Matches()
	if len(matches) != 1 || matches[0].Name != "teste" {
		t.Fatalf("unexpected matches %+v", matches)
	}
	p = typeInto(p, "ste ranking")
	if len(p.Matches()) != 1 {
		t.Fatalf("arguments must not affect matching")
	}
}

func TestPaletteTabCompletesName(t *testing.T) {
	t.Parallel()
	p := components.NewPalette(commands)
	p.Open()
	p = typeInto(p, "ne")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if p.Value() != "next " {
		t.Fatalf("expected completion, got %q", p.Value())
	}
}

func TestPaletteSubmitAndCancel(t *testing.T) {
	t.Parallel()
	p := components.NewPalette(commands)
	p.Open()
	p = typeInto(p, "  tab ranking ")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() || cmd == nil {
		t.Fatalf("enter should close the palette and emit a command")
	}
	if msg, ok := cmd().(components.PaletteSubmitMsg); !ok || msg.Input != "tab ranking" {
		t.Fatalf("unexpected submit message %#v", msg)
	}

	p.Open()
	p, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("esc should close the palette")
	}
	if _, ok := cmd().(components.PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel message")
	}
}
