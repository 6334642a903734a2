package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/pl-dashboard/internal/domain/coach"
)

type StaffService struct {
	source coach.Source
}

func NewStaffService(source coach.Source) *StaffService {
	return &StaffService{source: source}
}

// Current returns the club's coaches with an open stint there.
func (s *StaffService) Current(ctx context.Context, teamID int) ([]coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Current", attribute.Int("team.id", teamID))
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	coaches, err := s.source.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list coaches team_id=%d: %w", teamID, err)
	}
	return coach.Current(coaches, teamID), nil
}
