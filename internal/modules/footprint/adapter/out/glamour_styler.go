package out

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"carbontrack/internal/platform/markdown"
)

// GlamourStyler renders markdown documents for the terminal.
type GlamourStyler struct {
	style string
}

// NewGlamourStyler uses the named glamour standard style, or detects one from
// the terminal background when style is empty.
func NewGlamourStyler(style string) *GlamourStyler {
	return &GlamourStyler{style: style}
}

func (g *GlamourStyler) Style(document string, width int) (string, error) {
	// Frontmatter is machine metadata; only the body is styled.
	body, err := markdown.Body(document)
	if err != nil {
		return "", err
	}
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if g.style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(g.style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("new term renderer: %w", err)
	}
	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}
