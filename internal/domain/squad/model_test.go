package squad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
)

func TestGroupOrdersByPositionAndOpensSections(t *testing.T) {
	players := []Player{
		{ID: 1, Name: "Saka", Position: PositionAttacker},
		{ID: 2, Name: "Raya", Position: PositionGoalkeeper},
		{ID: 3, Name: "Coach X", Position: "Manager"},
		{ID: 4, Name: "Saliba", Position: PositionDefender},
		{ID: 5, Name: "Rice", Position: PositionMidfielder},
		{ID: 6, Name: "Gabriel", Position: PositionDefender},
		{ID: 7, Name: "Mystery", Position: ""},
	}

	sections := Group(players, nil)

	require.Len(t, sections, 6)
	assert.Equal(t, []string{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionAttacker, "Manager", ""}, positions(sections))
	assert.Equal(t, "Saliba", sections[1].Members[0].Player.Name)
	assert.Equal(t, "Gabriel", sections[1].Members[1].Player.Name)
	assert.Equal(t, 3, sections[4].Members[0].Player.ID, "unknown ranks keep input order")
	assert.Equal(t, 7, sections[5].Members[0].Player.ID)
}

func TestGroupMarksFitness(t *testing.T) {
	players := []Player{
		{ID: 1, Position: PositionAttacker},
		{ID: 2, Position: PositionAttacker},
		{ID: 3, Position: PositionAttacker},
	}
	injuries := []injury.Entry{
		{Player: injury.Player{ID: 1}, Reason: "Hamstring Injury"},
		{Player: injury.Player{ID: 2}},
	}

	members := Group(players, injuries)[0].Members

	assert.Equal(t, Fitness{Injured: true, Label: "Hamstring Injury"}, members[0].Fitness)
	assert.Equal(t, Fitness{Injured: true, Label: LabelInjured}, members[1].Fitness)
	assert.Equal(t, Fitness{Label: LabelFit}, members[2].Fitness)
}

func TestGroupEmptyRoster(t *testing.T) {
	assert.Empty(t, Group(nil, nil))
}

func positions(sections []Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Position)
	}
	return out
}
