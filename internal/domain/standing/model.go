package standing

import (
	"context"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

// Row is one line of the league table. Rank is dense 1..N within a snapshot.
type Row struct {
	Rank         int
	Team         team.Ref
	Points       int
	Played       int
	Won          int
	Draw         int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	// Form is chronological, most recent result last.
	Form        string
	Description string
}

type Zone string

const (
	ZoneNone            Zone = ""
	ZoneChampionsLeague Zone = "champions_league"
	ZoneEuropaLeague    Zone = "europa_league"
	ZoneRelegation      Zone = "relegation"
)

func ZoneFor(rank int) Zone {
	switch {
	case rank >= 1 && rank <= 4:
		return ZoneChampionsLeague
	case rank == 5:
		return ZoneEuropaLeague
	case rank >= 18:
		return ZoneRelegation
	default:
		return ZoneNone
	}
}

// FormTail returns the last n results of form.
func FormTail(form string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(form)
	if len(runes) <= n {
		return form
	}
	return string(runes[len(runes)-n:])
}

func Find(rows []Row, teamID int) (Row, bool) {
	for _, row := range rows {
		if row.Team.ID == teamID {
			return row, true
		}
	}
	return Row{}, false
}

// Teams lists the clubs of a table in rank order.
func Teams(rows []Row) []team.Ref {
	out := make([]team.Ref, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Team)
	}
	return out
}

// Source reads the current league table.
type Source interface {
	List(ctx context.Context) ([]Row, error)
}
