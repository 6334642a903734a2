package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
)

type FixtureService struct {
	source fixture.Source
}

func NewFixtureService(source fixture.Source) *FixtureService {
	return &FixtureService{source: source}
}

// Live lists fixtures of the league currently in play.
func (s *FixtureService) Live(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Live")
	defer span.End()

	items, err := s.source.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list live fixtures: %w", err)
	}
	return items, nil
}
