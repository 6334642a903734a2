package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

var (
	arsenal   = team.Ref{ID: 42, Name: "Arsenal"}
	liverpool = team.Ref{ID: 40, Name: "Liverpool"}
	benfica   = team.Ref{ID: 211, Name: "Benfica"}
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func history(playerID int, events ...Event) History {
	return History{Player: Player{ID: playerID, Name: "p"}, Events: events}
}

func TestWindowOf(t *testing.T) {
	season := DefaultSeason()
	cases := []struct {
		date time.Time
		want Window
	}{
		{day(2025, time.July, 15), WindowSummer},
		{day(2025, time.June, 1), WindowSummer},
		{day(2025, time.September, 30), WindowSummer},
		{day(2026, time.January, 10), WindowWinter},
		{day(2025, time.December, 20), WindowWinter},
		{day(2026, time.December, 1), WindowWinter},
		{day(2025, time.October, 2), WindowOther},
		{day(2026, time.February, 3), WindowOther},
		{day(2026, time.July, 1), WindowOther},
		{day(2025, time.January, 5), WindowOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, season.WindowOf(tc.date), tc.date.Format("2006-01-02"))
	}
}

func TestNewSeasonIsConfigurable(t *testing.T) {
	season := NewSeason(2026)
	assert.Equal(t, day(2026, time.June, 1), season.Cutoff)
	assert.Equal(t, WindowWinter, season.WindowOf(day(2027, time.January, 3)))
	assert.Equal(t, WindowSummer, season.WindowOf(day(2026, time.August, 3)))
}

func TestExpandDropsEventsBeforeCutoff(t *testing.T) {
	got := Expand(arsenal, []History{
		history(1, Event{Date: day(2025, time.March, 1), In: arsenal, Out: benfica}),
	}, DefaultSeason())
	assert.Empty(t, got)
}

func TestExpandSetsDirection(t *testing.T) {
	got := Expand(arsenal, []History{
		history(1, Event{Date: day(2025, time.July, 15), Type: "€ 50M", In: arsenal, Out: benfica}),
		history(2, Event{Date: day(2026, time.January, 10), Type: "Loan", In: benfica, Out: arsenal}),
		history(3, Event{Type: "N/A", In: arsenal, Out: benfica}),
	}, DefaultSeason())

	require.Len(t, got, 2)
	assert.Equal(t, DirectionIn, got[0].Direction)
	assert.Equal(t, benfica, got[0].From)
	assert.Equal(t, arsenal, got[0].To)
	assert.Equal(t, DirectionOut, got[1].Direction)
	assert.Equal(t, arsenal, got[1].Team)
}

func TestOneEventYieldsTwoRecordsWhenBothClubsTracked(t *testing.T) {
	move := Event{Date: day(2025, time.August, 1), Type: "Transfer", In: arsenal, Out: liverpool}
	histories := []History{history(9, move)}

	records := append(Expand(arsenal, histories, DefaultSeason()), Expand(liverpool, histories, DefaultSeason())...)

	require.Len(t, records, 2)
	assert.Equal(t, DirectionIn, records[0].Direction)
	assert.Equal(t, arsenal, records[0].Team)
	assert.Equal(t, DirectionOut, records[1].Direction)
	assert.Equal(t, liverpool, records[1].Team)
}

func TestFilterAndPartition(t *testing.T) {
	records := []Record{
		{Date: day(2025, time.July, 15), Direction: DirectionIn, Team: arsenal},
		{Date: day(2026, time.January, 10), Direction: DirectionOut, Team: arsenal},
		{Date: day(2026, time.January, 20), Direction: DirectionIn, Team: liverpool},
		{Date: day(2025, time.November, 2), Direction: DirectionIn, Team: arsenal},
	}
	SortNewestFirst(records)
	assert.Equal(t, day(2026, time.January, 20), records[0].Date)

	ins := Filter{Direction: "in", Team: "all"}.Apply(records)
	p := PartitionByWindow(ins, DefaultSeason())
	assert.Len(t, p.Winter, 1)
	assert.Len(t, p.Summer, 1)
	assert.Len(t, p.Other, 1)

	arsenalOnly := Filter{Direction: "all", Team: "42"}.Apply(records)
	assert.Len(t, arsenalOnly, 3)

	assert.Empty(t, Filter{Team: "gunners"}.Apply(records))
	assert.Len(t, Filter{}.Apply(records), 4)
}
