package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
	"github.com/riskibarqy/pl-dashboard/internal/domain/squad"
	"github.com/riskibarqy/pl-dashboard/internal/domain/stadium"
	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

const teamFormLength = 10

// TeamPage aggregates everything shown for one club.
type TeamPage struct {
	Standing   standing.Row
	Form       string
	Info       team.Info
	HasInfo    bool
	Fixtures   fixture.Windows
	Squad      []squad.Section
	Injuries   []injury.Entry
	Stadium    stadium.Stadium
	HasStadium bool
}

type TeamService struct {
	standings standing.Source
	squads    squad.Source
	fixtures  fixture.Source
	injuries  injury.Source
	teams     team.Source
	logger    *logging.Logger
	now       func() time.Time
}

func NewTeamService(
	standings standing.Source,
	squads squad.Source,
	fixtures fixture.Source,
	injuries injury.Source,
	teams team.Source,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		standings: standings,
		squads:    squads,
		fixtures:  fixtures,
		injuries:  injuries,
		teams:     teams,
		logger:    logger,
		now:       time.Now,
	}
}

// Get joins standings, squad and team fixtures, which must all succeed.
// Injuries and club info degrade to empty when their fetch fails.
func (s *TeamService) Get(ctx context.Context, teamID int) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get", attribute.Int("team.id", teamID))
	defer span.End()

	if teamID <= 0 {
		return TeamPage{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	var (
		rows     []standing.Row
		players  []squad.Player
		items    []fixture.Fixture
		injuries []injury.Entry
		info     team.Info
		hasInfo  bool
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		if rows, err = s.standings.List(ctx); err != nil {
			return fmt.Errorf("list standings: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if players, err = s.squads.ListByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("list squad team_id=%d: %w", teamID, err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if items, err = s.fixtures.ListByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("list fixtures team_id=%d: %w", teamID, err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if injuries, err = s.injuries.ListByTeam(ctx, teamID); err != nil {
			s.logger.WarnContext(ctx, "team injuries unavailable", "team_id", teamID, "error", err)
			injuries = nil
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if info, hasInfo, err = s.teams.GetInfo(ctx, teamID); err != nil {
			s.logger.WarnContext(ctx, "team info unavailable", "team_id", teamID, "error", err)
			info, hasInfo = team.Info{}, false
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamPage{}, err
	}

	row, ok := standing.Find(rows, teamID)
	if !ok {
		return TeamPage{}, fmt.Errorf("%w: team_id=%d is not in the league table", ErrNotFound, teamID)
	}

	// Fitness reflects the newest report per player.
	latest := injury.Latest(injuries)
	page := TeamPage{
		Standing: row,
		Form:     standing.FormTail(row.Form, teamFormLength),
		Info:     info,
		HasInfo:  hasInfo,
		Fixtures: fixture.Window(items, s.now(), fixture.DefaultWindowLimit),
		Squad:    squad.Group(players, latest),
		Injuries: latest,
	}
	page.Stadium, page.HasStadium = stadium.Lookup(teamID)
	return page, nil
}
