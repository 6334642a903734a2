package matchdetail

import (
	"context"
	"sort"
	"strconv"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

type LineupPlayer struct {
	ID       int
	Name     string
	Number   *int
	Position string
	Grid     string
}

type Lineup struct {
	Team        team.Ref
	Formation   string
	Coach       string
	StartXI     []LineupPlayer
	Substitutes []LineupPlayer
}

type Person struct {
	ID   *int
	Name string
}

// Event is a timeline entry: goal, card, substitution or VAR decision.
type Event struct {
	Elapsed int
	Extra   *int
	Team    team.Ref
	Player  Person
	Assist  Person
	Type    string
	Detail  string
}

// Minute renders the event clock, e.g. "45+2'".
func (e Event) Minute() string {
	if e.Extra != nil && *e.Extra > 0 {
		return strconv.Itoa(e.Elapsed) + "+" + strconv.Itoa(*e.Extra) + "'"
	}
	return strconv.Itoa(e.Elapsed) + "'"
}

// SortTimeline orders events by elapsed then stoppage minute, stable.
func SortTimeline(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Elapsed != events[j].Elapsed {
			return events[i].Elapsed < events[j].Elapsed
		}
		return extra(events[i]) < extra(events[j])
	})
}

func extra(e Event) int {
	if e.Extra == nil {
		return 0
	}
	return *e.Extra
}

type Detail struct {
	Lineups []Lineup
	Events  []Event
}

// Source reads per-fixture enrichments.
type Source interface {
	Lineups(ctx context.Context, fixtureID int) ([]Lineup, error)
	Events(ctx context.Context, fixtureID int) ([]Event, error)
}
