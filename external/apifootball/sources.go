package apifootball

import (
	"context"

	"github.com/riskibarqy/pl-dashboard/internal/domain/coach"
	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
	"github.com/riskibarqy/pl-dashboard/internal/domain/matchdetail"
	"github.com/riskibarqy/pl-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/pl-dashboard/internal/domain/squad"
	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
	"github.com/riskibarqy/pl-dashboard/internal/domain/transfer"
)

// Sources exposes the client through the domain source interfaces.
type Sources struct {
	Standings   standing.Source
	Fixtures    fixture.Source
	Squads      squad.Source
	Injuries    injury.Source
	Transfers   transfer.Source
	Coaches     coach.Source
	Stats       playerstats.Source
	Teams       team.Source
	MatchDetail matchdetail.Source
}

func (c *Client) Sources() Sources {
	return Sources{
		Standings:   standingSource{c},
		Fixtures:    fixtureSource{c},
		Squads:      squadSource{c},
		Injuries:    injurySource{c},
		Transfers:   transferSource{c},
		Coaches:     coachSource{c},
		Stats:       statsSource{c},
		Teams:       teamSource{c},
		MatchDetail: matchDetailSource{c},
	}
}

type standingSource struct{ c *Client }

func (s standingSource) List(ctx context.Context) ([]standing.Row, error) {
	return s.c.FetchStandings(ctx)
}

type fixtureSource struct{ c *Client }

func (s fixtureSource) ListByLeague(ctx context.Context) ([]fixture.Fixture, error) {
	return s.c.FetchLeagueFixtures(ctx)
}

func (s fixtureSource) ListByTeam(ctx context.Context, teamID int) ([]fixture.Fixture, error) {
	return s.c.FetchTeamFixtures(ctx, teamID)
}

func (s fixtureSource) ListLive(ctx context.Context) ([]fixture.Fixture, error) {
	return s.c.FetchLiveFixtures(ctx)
}

type squadSource struct{ c *Client }

func (s squadSource) ListByTeam(ctx context.Context, teamID int) ([]squad.Player, error) {
	return s.c.FetchSquad(ctx, teamID)
}

type injurySource struct{ c *Client }

func (s injurySource) ListByLeague(ctx context.Context) ([]injury.Entry, error) {
	return s.c.FetchLeagueInjuries(ctx)
}

func (s injurySource) ListByTeam(ctx context.Context, teamID int) ([]injury.Entry, error) {
	return s.c.FetchTeamInjuries(ctx, teamID)
}

type transferSource struct{ c *Client }

func (s transferSource) ListByTeam(ctx context.Context, teamID int) ([]transfer.History, error) {
	return s.c.FetchTransfers(ctx, teamID)
}

type coachSource struct{ c *Client }

func (s coachSource) ListByTeam(ctx context.Context, teamID int) ([]coach.Coach, error) {
	return s.c.FetchCoaches(ctx, teamID)
}

type statsSource struct{ c *Client }

func (s statsSource) TopScorers(ctx context.Context) ([]playerstats.Leader, error) {
	return s.c.FetchTopScorers(ctx)
}

func (s statsSource) TopAssists(ctx context.Context) ([]playerstats.Leader, error) {
	return s.c.FetchTopAssists(ctx)
}

type teamSource struct{ c *Client }

func (s teamSource) GetInfo(ctx context.Context, teamID int) (team.Info, bool, error) {
	return s.c.FetchTeamInfo(ctx, teamID)
}

type matchDetailSource struct{ c *Client }

func (s matchDetailSource) Lineups(ctx context.Context, fixtureID int) ([]matchdetail.Lineup, error) {
	return s.c.FetchLineups(ctx, fixtureID)
}

func (s matchDetailSource) Events(ctx context.Context, fixtureID int) ([]matchdetail.Event, error) {
	return s.c.FetchEvents(ctx, fixtureID)
}
