package apifootball

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

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

func (c *Client) leagueParams() url.Values {
	params := url.Values{}
	params.Set("league", strconv.Itoa(c.leagueID))
	if c.season != "" {
		params.Set("season", c.season)
	}
	return params
}

func (c *Client) FetchStandings(ctx context.Context) ([]standing.Row, error) {
	items, err := get[[]standingsResponse](ctx, c, "standings", c.leagueParams())
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	if len(items) == 0 || len(items[0].League.Standings) == 0 {
		return []standing.Row{}, nil
	}

	table := items[0].League.Standings[0]
	out := make([]standing.Row, 0, len(table))
	for _, row := range table {
		out = append(out, standing.Row{
			Rank:         row.Rank,
			Team:         teamRef(row.Team),
			Points:       row.Points,
			Played:       row.All.Played,
			Won:          row.All.Win,
			Draw:         row.All.Draw,
			Lost:         row.All.Lose,
			GoalsFor:     row.All.Goals.For,
			GoalsAgainst: row.All.Goals.Against,
			GoalDiff:     row.GoalsDiff,
			Form:         row.Form,
			Description:  row.Description,
		})
	}
	return out, nil
}

func (c *Client) FetchLeagueFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	items, err := get[[]fixtureItem](ctx, c, "fixtures", c.leagueParams())
	if err != nil {
		return nil, fmt.Errorf("fetch league fixtures: %w", err)
	}
	return mapFixtures(items), nil
}

func (c *Client) FetchTeamFixtures(ctx context.Context, teamID int) ([]fixture.Fixture, error) {
	params := c.leagueParams()
	params.Set("team", strconv.Itoa(teamID))
	items, err := get[[]fixtureItem](ctx, c, "fixtures", params)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures team_id=%d: %w", teamID, err)
	}
	return mapFixtures(items), nil
}

func (c *Client) FetchLiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	params := url.Values{}
	params.Set("live", "all")
	params.Set("league", strconv.Itoa(c.leagueID))
	items, err := get[[]fixtureItem](ctx, c, "fixtures", params)
	if err != nil {
		return nil, fmt.Errorf("fetch live fixtures: %w", err)
	}
	return mapFixtures(items), nil
}

func (c *Client) FetchSquad(ctx context.Context, teamID int) ([]squad.Player, error) {
	params := url.Values{}
	params.Set("team", strconv.Itoa(teamID))
	items, err := get[[]squadResponse](ctx, c, "players/squads", params)
	if err != nil {
		return nil, fmt.Errorf("fetch squad team_id=%d: %w", teamID, err)
	}
	if len(items) == 0 {
		return []squad.Player{}, nil
	}

	out := make([]squad.Player, 0, len(items[0].Players))
	for _, p := range items[0].Players {
		out = append(out, squad.Player{
			ID:       p.ID,
			Name:     p.Name,
			Number:   p.Number,
			Position: p.Position,
			Age:      p.Age,
			Photo:    p.Photo,
		})
	}
	return out, nil
}

func (c *Client) FetchLeagueInjuries(ctx context.Context) ([]injury.Entry, error) {
	items, err := get[[]injuryItem](ctx, c, "injuries", c.leagueParams())
	if err != nil {
		return nil, fmt.Errorf("fetch league injuries: %w", err)
	}
	return mapInjuries(items), nil
}

func (c *Client) FetchTeamInjuries(ctx context.Context, teamID int) ([]injury.Entry, error) {
	params := c.leagueParams()
	params.Set("team", strconv.Itoa(teamID))
	items, err := get[[]injuryItem](ctx, c, "injuries", params)
	if err != nil {
		return nil, fmt.Errorf("fetch injuries team_id=%d: %w", teamID, err)
	}
	return mapInjuries(items), nil
}

func (c *Client) FetchTopScorers(ctx context.Context) ([]playerstats.Leader, error) {
	items, err := get[[]playerStatItem](ctx, c, "players/topscorers", c.leagueParams())
	if err != nil {
		return nil, fmt.Errorf("fetch top scorers: %w", err)
	}
	return mapLeaders(items), nil
}

func (c *Client) FetchTopAssists(ctx context.Context) ([]playerstats.Leader, error) {
	items, err := get[[]playerStatItem](ctx, c, "players/topassists", c.leagueParams())
	if err != nil {
		return nil, fmt.Errorf("fetch top assists: %w", err)
	}
	return mapLeaders(items), nil
}

func (c *Client) FetchTeamInfo(ctx context.Context, teamID int) (team.Info, bool, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(teamID))
	items, err := get[[]teamInfoItem](ctx, c, "teams", params)
	if err != nil {
		return team.Info{}, false, fmt.Errorf("fetch team team_id=%d: %w", teamID, err)
	}
	if len(items) == 0 {
		return team.Info{}, false, nil
	}

	item := items[0]
	return team.Info{
		Team:    team.Ref{ID: item.Team.ID, Name: item.Team.Name, Logo: item.Team.Logo},
		Code:    item.Team.Code,
		Country: item.Team.Country,
		Founded: item.Team.Founded,
		Venue:   team.Venue{Name: item.Venue.Name, City: item.Venue.City, Capacity: item.Venue.Capacity},
	}, true, nil
}

func (c *Client) FetchCoaches(ctx context.Context, teamID int) ([]coach.Coach, error) {
	params := url.Values{}
	params.Set("team", strconv.Itoa(teamID))
	items, err := get[[]coachItem](ctx, c, "coachs", params)
	if err != nil {
		return nil, fmt.Errorf("fetch coaches team_id=%d: %w", teamID, err)
	}

	out := make([]coach.Coach, 0, len(items))
	for _, item := range items {
		career := make([]coach.Span, 0, len(item.Career))
		for _, span := range item.Career {
			career = append(career, coach.Span{
				Team:  teamRef(span.Team),
				Start: parseOptionalDate(span.Start),
				End:   parseOptionalDate(span.End),
			})
		}
		out = append(out, coach.Coach{
			ID:          item.ID,
			Name:        item.Name,
			FirstName:   item.FirstName,
			LastName:    item.LastName,
			Age:         item.Age,
			Nationality: item.Nationality,
			Photo:       item.Photo,
			Career:      career,
		})
	}
	return out, nil
}

func (c *Client) FetchTransfers(ctx context.Context, teamID int) ([]transfer.History, error) {
	params := url.Values{}
	params.Set("team", strconv.Itoa(teamID))
	items, err := get[[]transferItem](ctx, c, "transfers", params)
	if err != nil {
		return nil, fmt.Errorf("fetch transfers team_id=%d: %w", teamID, err)
	}

	out := make([]transfer.History, 0, len(items))
	for _, item := range items {
		events := make([]transfer.Event, 0, len(item.Transfers))
		for _, ev := range item.Transfers {
			kind := "N/A"
			if ev.Type != nil && strings.TrimSpace(*ev.Type) != "" {
				kind = *ev.Type
			}
			date, _ := parseDate(ev.Date)
			events = append(events, transfer.Event{
				Date: date,
				Type: kind,
				In:   teamRef(ev.Teams.In),
				Out:  teamRef(ev.Teams.Out),
			})
		}
		updated, _ := parseDate(item.Update)
		out = append(out, transfer.History{
			Player:  transfer.Player{ID: item.Player.ID, Name: item.Player.Name},
			Updated: updated,
			Events:  events,
		})
	}
	return out, nil
}

func (c *Client) FetchLineups(ctx context.Context, fixtureID int) ([]matchdetail.Lineup, error) {
	params := url.Values{}
	params.Set("fixture", strconv.Itoa(fixtureID))
	items, err := get[[]lineupItem](ctx, c, "fixtures/lineups", params)
	if err != nil {
		return nil, fmt.Errorf("fetch lineups fixture_id=%d: %w", fixtureID, err)
	}

	out := make([]matchdetail.Lineup, 0, len(items))
	for _, item := range items {
		out = append(out, matchdetail.Lineup{
			Team:        teamRef(item.Team),
			Formation:   item.Formation,
			Coach:       item.Coach.Name,
			StartXI:     mapLineupPlayers(item.StartXI),
			Substitutes: mapLineupPlayers(item.Substitutes),
		})
	}
	return out, nil
}

func (c *Client) FetchEvents(ctx context.Context, fixtureID int) ([]matchdetail.Event, error) {
	params := url.Values{}
	params.Set("fixture", strconv.Itoa(fixtureID))
	items, err := get[[]eventItem](ctx, c, "fixtures/events", params)
	if err != nil {
		return nil, fmt.Errorf("fetch events fixture_id=%d: %w", fixtureID, err)
	}

	out := make([]matchdetail.Event, 0, len(items))
	for _, item := range items {
		out = append(out, matchdetail.Event{
			Elapsed: item.Time.Elapsed,
			Extra:   item.Time.Extra,
			Team:    teamRef(item.Team),
			Player:  matchdetail.Person{ID: item.Player.ID, Name: item.Player.Name},
			Assist:  matchdetail.Person{ID: item.Assist.ID, Name: item.Assist.Name},
			Type:    item.Type,
			Detail:  item.Detail,
		})
	}
	return out, nil
}

func mapFixtures(items []fixtureItem) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		kickoff, ok := parseDate(item.Fixture.Date)
		if !ok {
			continue
		}
		out = append(out, fixture.Fixture{
			ID:          item.Fixture.ID,
			Kickoff:     kickoff,
			StatusShort: item.Fixture.Status.Short,
			StatusLong:  item.Fixture.Status.Long,
			Elapsed:     item.Fixture.Status.Elapsed,
			Round:       item.League.Round,
			Venue:       item.Fixture.Venue.Name,
			Home:        fixture.Side{Team: teamRef(item.Teams.Home), Winner: item.Teams.Home.Winner, Goals: item.Goals.Home},
			Away:        fixture.Side{Team: teamRef(item.Teams.Away), Winner: item.Teams.Away.Winner, Goals: item.Goals.Away},
		})
	}
	return out
}

func mapInjuries(items []injuryItem) []injury.Entry {
	out := make([]injury.Entry, 0, len(items))
	for _, item := range items {
		date, _ := parseDate(item.Fixture.Date)
		out = append(out, injury.Entry{
			Player:      injury.Player{ID: item.Player.ID, Name: item.Player.Name, Photo: item.Player.Photo},
			Reason:      item.Player.Reason,
			Type:        item.Player.Type,
			Team:        teamRef(item.Team),
			FixtureID:   item.Fixture.ID,
			FixtureDate: date,
		})
	}
	return out
}

func mapLeaders(items []playerStatItem) []playerstats.Leader {
	out := make([]playerstats.Leader, 0, len(items))
	for _, item := range items {
		leader := playerstats.Leader{
			Player: playerstats.Player{
				ID:          item.Player.ID,
				Name:        item.Player.Name,
				Photo:       item.Player.Photo,
				Nationality: item.Player.Nationality,
			},
		}
		if len(item.Statistics) > 0 {
			stat := item.Statistics[0]
			leader.Team = teamRef(stat.Team)
			leader.Appearances = deref(stat.Games.Appearences)
			leader.Minutes = deref(stat.Games.Minutes)
			leader.Goals = deref(stat.Goals.Total)
			leader.Assists = deref(stat.Goals.Assists)
		}
		out = append(out, leader)
	}
	return out
}

func mapLineupPlayers(items []lineupPlayerJSON) []matchdetail.LineupPlayer {
	out := make([]matchdetail.LineupPlayer, 0, len(items))
	for _, item := range items {
		out = append(out, matchdetail.LineupPlayer{
			ID:       item.Player.ID,
			Name:     item.Player.Name,
			Number:   item.Player.Number,
			Position: item.Player.Pos,
			Grid:     item.Player.Grid,
		})
	}
	return out
}

func teamRef(t teamJSON) team.Ref {
	return team.Ref{ID: t.ID, Name: t.Name, Logo: t.Logo}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01"}

// parseDate accepts RFC 3339 instants and bare dates (taken as UTC).
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseOptionalDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, ok := parseDate(*raw)
	if !ok {
		return nil
	}
	return &t
}
