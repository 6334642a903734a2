package playerstats

import (
	"context"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

const LeaderboardSize = 20

type Player struct {
	ID          int
	Name        string
	Photo       string
	Nationality string
}

// Leader is one row of a scorer or assist leaderboard. Stat fields take
// the player's first statistics block for the league.
type Leader struct {
	Player      Player
	Team        team.Ref
	Appearances int
	Minutes     int
	Goals       int
	Assists     int
}

// Ranked is a leaderboard row with its 1-based position.
type Ranked struct {
	Rank int
	Leader
}

// Top ranks the first n leaders in the order given upstream.
func Top(leaders []Leader, n int) []Ranked {
	if n <= 0 || n > len(leaders) {
		n = len(leaders)
	}
	out := make([]Ranked, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Ranked{Rank: i + 1, Leader: leaders[i]})
	}
	return out
}

// Source reads league leaderboards.
type Source interface {
	TopScorers(ctx context.Context) ([]Leader, error)
	TopAssists(ctx context.Context) ([]Leader, error)
}
