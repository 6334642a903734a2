package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
)

const homeUpcomingLimit = 5

// Home is the landing page: the table, the next scheduled matches and the
// instant the page was assembled at.
type Home struct {
	Standings []standing.Row
	Upcoming  []fixture.Fixture
	Now       time.Time
}

type HomeService struct {
	standings standing.Source
	fixtures  fixture.Source
	now       func() time.Time
}

func NewHomeService(standings standing.Source, fixtures fixture.Source) *HomeService {
	return &HomeService{
		standings: standings,
		fixtures:  fixtures,
		now:       time.Now,
	}
}

// Get fetches standings and league fixtures concurrently. Either failing
// fails the page.
func (s *HomeService) Get(ctx context.Context) (Home, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.Get")
	defer span.End()

	var (
		rows  []standing.Row
		items []fixture.Fixture
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		rows, err = s.standings.List(ctx)
		if err != nil {
			return fmt.Errorf("list standings: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		items, err = s.fixtures.ListByLeague(ctx)
		if err != nil {
			return fmt.Errorf("list league fixtures: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return Home{}, err
	}

	now := s.now()
	return Home{
		Standings: rows,
		Upcoming:  fixture.NextScheduled(items, now, homeUpcomingLimit),
		Now:       now,
	}, nil
}
