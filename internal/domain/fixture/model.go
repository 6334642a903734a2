package fixture

import (
	"context"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

const (
	StatusNotStarted = "NS"
	StatusFinished   = "FT"
)

// Side is one participant of a fixture. Winner is nil until decided and for draws.
type Side struct {
	Team   team.Ref
	Winner *bool
	Goals  *int
}

// Fixture is one match. Kickoff is an absolute instant; it is rendered in
// the viewer's timezone only at the edge.
type Fixture struct {
	ID          int
	Kickoff     time.Time
	StatusShort string
	StatusLong  string
	Elapsed     *int
	Round       string
	Venue       string
	Home        Side
	Away        Side
}

func (f Fixture) Finished() bool {
	return f.StatusShort == StatusFinished
}

func (f Fixture) NotStarted() bool {
	return f.StatusShort == StatusNotStarted
}

// Involves reports whether teamID plays in f.
func (f Fixture) Involves(teamID int) bool {
	return f.Home.Team.ID == teamID || f.Away.Team.ID == teamID
}

// Source reads fixtures from the upstream statistics provider.
type Source interface {
	ListByLeague(ctx context.Context) ([]Fixture, error)
	ListByTeam(ctx context.Context, teamID int) ([]Fixture, error)
	ListLive(ctx context.Context) ([]Fixture, error)
}
