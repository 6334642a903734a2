package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/pl-dashboard/internal/domain/playerstats"
)

type StatsService struct {
	source playerstats.Source
}

func NewStatsService(source playerstats.Source) *StatsService {
	return &StatsService{source: source}
}

func (s *StatsService) TopScorers(ctx context.Context) ([]playerstats.Ranked, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopScorers")
	defer span.End()

	leaders, err := s.source.TopScorers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list top scorers: %w", err)
	}
	return playerstats.Top(leaders, playerstats.LeaderboardSize), nil
}

func (s *StatsService) TopAssists(ctx context.Context) ([]playerstats.Ranked, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopAssists")
	defer span.End()

	leaders, err := s.source.TopAssists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list top assists: %w", err)
	}
	return playerstats.Top(leaders, playerstats.LeaderboardSize), nil
}
