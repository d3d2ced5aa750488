package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	surveyout "carbontrack/internal/modules/survey/adapter/out"
	"carbontrack/internal/modules/survey/service"
	"carbontrack/internal/modules/survey/usecase"
	apperrors "carbontrack/internal/platform/errors"
)

func TestBuiltInCatalog(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSurveyService(surveyout.NewYAMLCatalogSource(""), nil))
	out, err := uc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var categories, titles []string
	for _, s := range out.Steps {
		categories = append(categories, s.Category)
		titles = append(titles, s.Title)
		if len(s.Options) != 3 {
			t.Fatalf("step %s should have 3 options, got %d", s.Category, len(s.Options))
		}
	}
	if diff := cmp.Diff([]string{"transport", "energy", "diet", "consumption"}, categories); diff != "" {
		t.Fatalf("category order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Transporte", "Energia", "Alimentação", "Consumo"}, titles); diff != "" {
		t.Fatalf("title mismatch (-want +got):\n%s", diff)
	}
	first := out.Steps[0]
	if first.Subtitle != "Como você se locomove no dia a dia?" || first.Options[0].Label != "Carro próprio" || first.Options[0].Severity != "high" {
		t.Fatalf("unexpected first step: %+v", first)
	}
	if out.Steps[1].Options[2].Label != "Uso consciente (LED, economia)" {
		t.Fatalf("unexpected energy option label: %q", out.Steps[1].Options[2].Label)
	}
}

func TestCatalogFromFileIsValidated(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := "steps:\n  - category: diet\n    title: Dieta\n    options:\n      - {id: x, label: X, severity: extreme}\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	uc := usecase.NewInteractor(service.NewSurveyService(surveyout.NewYAMLCatalogSource(path), nil))
	if _, err := uc.Catalog(context.Background()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid catalog, got %v", err)
	}

	missing := usecase.NewInteractor(service.NewSurveyService(surveyout.NewYAMLCatalogSource(filepath.Join(t.TempDir(), "nope.yaml")), nil))
	if _, err := missing.Catalog(context.Background()); err == nil {
		t.Fatalf("missing catalog file should fail")
	}
}
