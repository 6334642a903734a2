package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
)

type StandingsService struct {
	source standing.Source
}

func NewStandingsService(source standing.Source) *StandingsService {
	return &StandingsService{source: source}
}

func (s *StandingsService) List(ctx context.Context) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.List")
	defer span.End()

	rows, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	return rows, nil
}
