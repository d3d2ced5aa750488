package out

import (
	"context"
	"fmt"
	"strings"

	"carbontrack/internal/modules/footprint/domain"
	footprintout "carbontrack/internal/modules/footprint/port/out"
	"carbontrack/internal/platform/markdown"
)

const reportSchemaVersion = 1

// ReportFrontmatter is the machine-readable header of a footprint report.
type ReportFrontmatter struct {
	SchemaVersion   int               `yaml:"schema_version"`
	Score           int               `yaml:"score"`
	Target          int               `yaml:"target"`
	ProgressPercent float64           `yaml:"progress_percent"`
	GoalReached     bool              `yaml:"goal_reached"`
	Answers         map[string]string `yaml:"answers"`
}

type MarkdownReportRenderer struct{}

func NewMarkdownReportRenderer() footprintout.ReportRenderer {
	return MarkdownReportRenderer{}
}

func (MarkdownReportRenderer) Render(_ context.Context, report domain.Report) (string, error) {
	m := report.Metrics
	meta := ReportFrontmatter{
		SchemaVersion:   reportSchemaVersion,
		Score:           m.Score,
		Target:          m.Target,
		ProgressPercent: round1(m.ProgressPercent),
		GoalReached:     m.GoalReached,
		Answers:         report.Answers.Strings(),
	}

	status := "Em progresso"
	if m.GoalReached {
		status = "Meta atingida!"
	}

	var sb strings.Builder
	sb.WriteString("# Relatório de pegada de carbono\n\n")
	fmt.Fprintf(&sb, "- Pegada atual: %d kg CO2/mês\n", m.Score)
	fmt.Fprintf(&sb, "- Meta: %dkg\n", m.Target)
	fmt.Fprintf(&sb, "- Progresso: %.0f%%\n", m.ProgressPercent)
	fmt.Fprintf(&sb, "- Situação: %s\n", status)

	sb.WriteString("\n## Hábitos\n\n| Categoria | Nível | Pontos |\n|---|---|---|\n")
	for _, c := range domain.Categories {
		s, ok := report.Answers[c]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s | %d |\n", c.Label(), s, s.Weight())
	}

	if len(report.Tips) > 0 {
		sb.WriteString("\n## Dicas Personalizadas\n")
		for _, tip := range report.Tips {
			fmt.Fprintf(&sb, "\n### %s (%s)\n\n%s\n", tip.Title, tip.Impact, tip.Description)
		}
	}
	return markdown.Document{Meta: meta, Body: sb.String()}.Encode()
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
