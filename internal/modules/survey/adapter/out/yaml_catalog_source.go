package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"carbontrack/internal/modules/survey/domain"
	surveyout "carbontrack/internal/modules/survey/port/out"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type YAMLCatalogSource struct {
	path string
}

// NewYAMLCatalogSource reads the catalog at path on every load, falling back
// to the built-in questions when path is empty.
func NewYAMLCatalogSource(path string) surveyout.CatalogSource {
	return &YAMLCatalogSource{path: strings.TrimSpace(path)}
}

func (s *YAMLCatalogSource) LoadCatalog(_ context.Context) (domain.Catalog, error) {
	payload := defaultCatalog
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
		}
		payload = b
	}
	catalog := domain.Catalog{}
	if err := yaml.Unmarshal(payload, &catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}
