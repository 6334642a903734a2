package fixture

import (
	"sort"
	"time"
)

const DefaultWindowLimit = 10

// Windows holds the two fixture lists shown on a team page.
type Windows struct {
	Past     []Fixture
	Upcoming []Fixture
}

// Window splits items around now. Past holds finished fixtures that kicked
// off before now, newest first. Upcoming holds fixtures kicking off at or
// after now plus any not-started fixture, soonest first. A fixture with a
// past kickoff and any other status (postponed, abandoned) is in neither.
// Both lists are capped at limit; limit <= 0 uses DefaultWindowLimit.
func Window(items []Fixture, now time.Time, limit int) Windows {
	if limit <= 0 {
		limit = DefaultWindowLimit
	}

	out := Windows{
		Past:     make([]Fixture, 0, min(limit, len(items))),
		Upcoming: make([]Fixture, 0, min(limit, len(items))),
	}
	var past, upcoming []Fixture
	for _, f := range items {
		if f.Kickoff.Before(now) && f.Finished() {
			past = append(past, f)
		}
		if !f.Kickoff.Before(now) || f.NotStarted() {
			upcoming = append(upcoming, f)
		}
	}

	sort.SliceStable(past, func(i, j int) bool { return past[i].Kickoff.After(past[j].Kickoff) })
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Kickoff.Before(upcoming[j].Kickoff) })

	out.Past = append(out.Past, past[:min(limit, len(past))]...)
	out.Upcoming = append(out.Upcoming, upcoming[:min(limit, len(upcoming))]...)
	return out
}

// NextScheduled returns not-started fixtures kicking off strictly after
// now, soonest first, capped at limit.
func NextScheduled(items []Fixture, now time.Time, limit int) []Fixture {
	out := make([]Fixture, 0, len(items))
	for _, f := range items {
		if f.Kickoff.After(now) && f.NotStarted() {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kickoff.Before(out[j].Kickoff) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// OutcomeFor returns the result of a finished fixture from teamID's side.
func (f Fixture) OutcomeFor(teamID int) (Outcome, bool) {
	if !f.Finished() || !f.Involves(teamID) || f.Home.Goals == nil || f.Away.Goals == nil {
		return "", false
	}

	own, other := *f.Home.Goals, *f.Away.Goals
	if f.Away.Team.ID == teamID {
		own, other = other, own
	}
	switch {
	case own > other:
		return OutcomeWin, true
	case own < other:
		return OutcomeLoss, true
	default:
		return OutcomeDraw, true
	}
}
