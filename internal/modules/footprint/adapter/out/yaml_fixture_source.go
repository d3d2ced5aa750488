package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"carbontrack/internal/modules/footprint/domain"
	footprintout "carbontrack/internal/modules/footprint/port/out"
	apperrors "carbontrack/internal/platform/errors"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type fixtureDocument struct {
	Tips        []domain.Tip       `yaml:"tips"`
	Leaderboard []domain.RankEntry `yaml:"leaderboard"`
}

type YAMLFixtureSource struct {
	doc fixtureDocument
}

// NewYAMLFixtureSource decodes the fixture document at path, or the built-in
// one when path is empty.
func NewYAMLFixtureSource(path string) (footprintout.FixtureSource, error) {
	payload := defaultFixtures
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		payload = b
	}
	doc := fixtureDocument{}
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	seen := make(map[int]bool, len(doc.Tips))
	for _, tip := range doc.Tips {
		if tip.ID <= 0 || seen[tip.ID] {
			return nil, fmt.Errorf("%w: tip ids must be positive and unique, got %d", apperrors.ErrInvalidInput, tip.ID)
		}
		seen[tip.ID] = true
		if strings.TrimSpace(tip.Title) == "" {
			return nil, fmt.Errorf("%w: tip %d has no title", apperrors.ErrInvalidInput, tip.ID)
		}
		if tip.Category != "" {
			if err := tip.Category.Validate(); err != nil {
				return nil, fmt.Errorf("tip %d: %w", tip.ID, err)
			}
		}
	}
	return &YAMLFixtureSource{doc: doc}, nil
}

func (s *YAMLFixtureSource) Tips(_ context.Context) ([]domain.Tip, error) {
	return append([]domain.Tip(nil), s.doc.Tips...), nil
}

func (s *YAMLFixtureSource) Leaderboard(_ context.Context) ([]domain.RankEntry, error) {
	return append([]domain.RankEntry(nil), s.doc.Leaderboard...), nil
}
