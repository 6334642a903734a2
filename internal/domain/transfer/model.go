package transfer

import (
	"context"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

type Player struct {
	ID   int
	Name string
}

// Event is one move in a player's transfer history. Date is zero when the
// upstream value could not be parsed.
type Event struct {
	Date time.Time
	Type string
	In   team.Ref
	Out  team.Ref
}

// History is the upstream transfer list of one player.
type History struct {
	Player  Player
	Updated time.Time
	Events  []Event
}

// Record is one event seen from a reference team. One event can produce
// two records when both clubs are reference teams.
type Record struct {
	Player    Player
	Date      time.Time
	Type      string
	From      team.Ref
	To        team.Ref
	Direction Direction
	Team      team.Ref
}

// Source reads transfer histories involving one club.
type Source interface {
	ListByTeam(ctx context.Context, teamID int) ([]History, error)
}
