package injury

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	RecencyWindow = 30 * 24 * time.Hour
	FilterAll     = "all"
)

// Latest keeps one entry per player id: the one with the latest fixture
// date. On an exact tie the entry appearing later in items wins. Output
// order follows the first appearance of each player.
func Latest(items []Entry) []Entry {
	index := make(map[int]int, len(items))
	out := make([]Entry, 0, len(items))
	for _, e := range items {
		pos, seen := index[e.Player.ID]
		if !seen {
			index[e.Player.ID] = len(out)
			out = append(out, e)
			continue
		}
		if !e.FixtureDate.Before(out[pos].FixtureDate) {
			out[pos] = e
		}
	}
	return out
}

// Recent deduplicates items, drops reports whose fixture date is before
// now-30d and sorts the rest by team name (case sensitive, stable).
func Recent(items []Entry, now time.Time) []Entry {
	cutoff := now.Add(-RecencyWindow)
	latest := Latest(items)

	out := make([]Entry, 0, len(latest))
	for _, e := range latest {
		if !e.FixtureDate.Before(cutoff) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Team.Name < out[j].Team.Name })
	return out
}

// FilterTeam projects entries onto one club. "all" or an empty filter
// keeps everything; an unparsable filter keeps nothing.
func FilterTeam(items []Entry, filter string) []Entry {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, FilterAll) {
		return items
	}
	teamID, err := strconv.Atoi(filter)
	if err != nil {
		return []Entry{}
	}

	out := make([]Entry, 0, len(items))
	for _, e := range items {
		if e.Team.ID == teamID {
			out = append(out, e)
		}
	}
	return out
}

// GroupByTeam buckets items by team id in order of first appearance.
func GroupByTeam(items []Entry) []TeamGroup {
	index := make(map[int]int)
	out := make([]TeamGroup, 0)
	for _, e := range items {
		pos, ok := index[e.Team.ID]
		if !ok {
			pos = len(out)
			index[e.Team.ID] = pos
			out = append(out, TeamGroup{Team: e.Team})
		}
		out[pos].Entries = append(out[pos].Entries, e)
	}
	return out
}

// ByPlayer indexes items by player id; later entries win.
func ByPlayer(items []Entry) map[int]Entry {
	out := make(map[int]Entry, len(items))
	for _, e := range items {
		out[e.Player.ID] = e
	}
	return out
}
