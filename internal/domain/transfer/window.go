package transfer

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

type Window string

const (
	WindowWinter Window = "winter"
	WindowSummer Window = "summer"
	WindowOther  Window = "other"

	FilterAll = "all"
)

// Season anchors windowing. FirstYear is the calendar year the season
// starts in; Cutoff drops older events.
type Season struct {
	FirstYear int
	Cutoff    time.Time
}

func DefaultSeason() Season {
	return NewSeason(2025)
}

// NewSeason builds a season whose cutoff is 1 June of firstYear, UTC.
func NewSeason(firstYear int) Season {
	return Season{
		FirstYear: firstYear,
		Cutoff:    time.Date(firstYear, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WindowOf classifies a date. Winter is December of the first year or
// January/December of the second year; summer is June to September of the
// first year.
func (s Season) WindowOf(date time.Time) Window {
	date = date.UTC()
	year, month := date.Year(), date.Month()

	if (month == time.January || month == time.December) &&
		(year == s.FirstYear+1 || (year == s.FirstYear && month == time.December)) {
		return WindowWinter
	}
	if year == s.FirstYear && month >= time.June && month <= time.September {
		return WindowSummer
	}
	return WindowOther
}

// Expand flattens histories fetched for ref into records, dropping events
// before the season cutoff or with no date.
func Expand(ref team.Ref, histories []History, season Season) []Record {
	out := make([]Record, 0, len(histories))
	for _, h := range histories {
		for _, ev := range h.Events {
			if ev.Date.IsZero() || ev.Date.Before(season.Cutoff) {
				continue
			}
			direction := DirectionOut
			if ev.In.ID == ref.ID {
				direction = DirectionIn
			}
			out = append(out, Record{
				Player:    h.Player,
				Date:      ev.Date,
				Type:      ev.Type,
				From:      ev.Out,
				To:        ev.In,
				Direction: direction,
				Team:      ref,
			})
		}
	}
	return out
}

// SortNewestFirst orders records by date descending, stable on ties.
func SortNewestFirst(records []Record) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
}

type Filter struct {
	Direction string
	Team      string
}

// Apply keeps records matching both the direction (all/in/out) and the
// reference team (all/id) filters.
func (f Filter) Apply(records []Record) []Record {
	direction := strings.ToLower(strings.TrimSpace(f.Direction))
	teamFilter := strings.TrimSpace(f.Team)

	teamID := 0
	if teamFilter != "" && !strings.EqualFold(teamFilter, FilterAll) {
		id, err := strconv.Atoi(teamFilter)
		if err != nil {
			return []Record{}
		}
		teamID = id
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if direction != "" && direction != FilterAll && string(r.Direction) != direction {
			continue
		}
		if teamID != 0 && r.Team.ID != teamID {
			continue
		}
		out = append(out, r)
	}
	return out
}

type Partition struct {
	Winter []Record
	Summer []Record
	Other  []Record
}

// PartitionByWindow splits records into windows, keeping input order.
func PartitionByWindow(records []Record, season Season) Partition {
	p := Partition{Winter: []Record{}, Summer: []Record{}, Other: []Record{}}
	for _, r := range records {
		switch season.WindowOf(r.Date) {
		case WindowWinter:
			p.Winter = append(p.Winter, r)
		case WindowSummer:
			p.Summer = append(p.Summer, r)
		default:
			p.Other = append(p.Other, r)
		}
	}
	return p
}
