package out

import (
	"context"
	"math/rand/v2"

	"carbontrack/internal/modules/footprint/domain"
	footprintout "carbontrack/internal/modules/footprint/port/out"
	"carbontrack/internal/platform/clock"
)

type RandomHistorySource struct {
	clock clock.Clock
	seed  uint64
}

// NewRandomHistorySource generates decorative weekly bars. A zero seed draws
// fresh values on every call; any other seed repeats the same week.
func NewRandomHistorySource(clk clock.Clock, seed uint64) footprintout.HistorySource {
	return &RandomHistorySource{clock: clk, seed: seed}
}

func (s *RandomHistorySource) WeeklyHistory(_ context.Context) ([]domain.DayBar, error) {
	now := s.clock.Now()
	seed := s.seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	// Monday-first index of today.
	today := (int(now.Weekday()) + 6) % 7

	bars := make([]domain.DayBar, len(domain.WeekLabels))
	for i, label := range domain.WeekLabels {
		bars[i] = domain.DayBar{
			Label:   label,
			Percent: rng.Float64() * 100,
			IsToday: i == today,
		}
	}
	return bars, nil
}
