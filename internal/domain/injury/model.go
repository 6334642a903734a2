package injury

import (
	"context"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

// Player is the injured player as embedded in an injury report.
type Player struct {
	ID    int
	Name  string
	Photo string
}

// Entry is one injury report. FixtureDate only orders reports of the same player.
type Entry struct {
	Player      Player
	Reason      string
	Type        string
	Team        team.Ref
	FixtureID   int
	FixtureDate time.Time
}

// TeamGroup buckets entries of one club.
type TeamGroup struct {
	Team    team.Ref
	Entries []Entry
}

// Source reads injury reports for the configured league and season.
type Source interface {
	ListByLeague(ctx context.Context) ([]Entry, error)
	ListByTeam(ctx context.Context, teamID int) ([]Entry, error)
}
