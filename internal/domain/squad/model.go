package squad

import (
	"context"
	"sort"

	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
)

const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionAttacker   = "Attacker"

	unknownPositionRank = 9

	LabelFit     = "fit"
	LabelInjured = "injured"
)

var positionRank = map[string]int{
	PositionGoalkeeper: 0,
	PositionDefender:   1,
	PositionMidfielder: 2,
	PositionAttacker:   3,
}

type Player struct {
	ID          int
	Name        string
	Number      *int
	Position    string
	Age         int
	Photo       string
	Nationality string
}

// Fitness is a player's availability derived from injury reports.
type Fitness struct {
	Injured bool
	Label   string
}

type Member struct {
	Player  Player
	Fitness Fitness
}

// Section is a run of consecutive members sharing a position.
type Section struct {
	Position string
	Members  []Member
}

func PositionRank(position string) int {
	if rank, ok := positionRank[position]; ok {
		return rank
	}
	return unknownPositionRank
}

// Group orders players by position (unknown positions last, input order
// kept within a rank) and opens a new section whenever the position
// changes. Fitness comes from injuries matched by player id.
func Group(players []Player, injuries []injury.Entry) []Section {
	sorted := append([]Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return PositionRank(sorted[i].Position) < PositionRank(sorted[j].Position)
	})

	injured := injury.ByPlayer(injuries)
	out := make([]Section, 0, len(positionRank)+1)
	for i, p := range sorted {
		if i == 0 || p.Position != sorted[i-1].Position {
			out = append(out, Section{Position: p.Position})
		}
		current := &out[len(out)-1]
		current.Members = append(current.Members, Member{Player: p, Fitness: fitnessOf(injured, p.ID)})
	}
	return out
}

func fitnessOf(injured map[int]injury.Entry, playerID int) Fitness {
	e, ok := injured[playerID]
	if !ok {
		return Fitness{Label: LabelFit}
	}
	if e.Reason == "" {
		return Fitness{Injured: true, Label: LabelInjured}
	}
	return Fitness{Injured: true, Label: e.Reason}
}

// Source reads a club's current squad.
type Source interface {
	ListByTeam(ctx context.Context, teamID int) ([]Player, error)
}
