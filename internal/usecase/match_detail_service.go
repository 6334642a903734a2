package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/pl-dashboard/internal/domain/matchdetail"
)

type MatchDetailService struct {
	source matchdetail.Source
}

func NewMatchDetailService(source matchdetail.Source) *MatchDetailService {
	return &MatchDetailService{source: source}
}

// Get fetches lineups and events concurrently; either failing fails the call.
func (s *MatchDetailService) Get(ctx context.Context, fixtureID int) (matchdetail.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDetailService.Get", attribute.Int("fixture.id", fixtureID))
	defer span.End()

	if fixtureID <= 0 {
		return matchdetail.Detail{}, fmt.Errorf("%w: fixture id must be positive", ErrInvalidInput)
	}

	var detail matchdetail.Detail
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		lineups, err := s.source.Lineups(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("list lineups fixture_id=%d: %w", fixtureID, err)
		}
		detail.Lineups = lineups
		return nil
	})
	p.Go(func(ctx context.Context) error {
		events, err := s.source.Events(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("list events fixture_id=%d: %w", fixtureID, err)
		}
		detail.Events = events
		return nil
	})
	if err := p.Wait(); err != nil {
		return matchdetail.Detail{}, err
	}

	matchdetail.SortTimeline(detail.Events)
	return detail, nil
}
