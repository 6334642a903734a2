package locale

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const DefaultZone = "UTC"

// ZoneOption is one entry of the timezone selector.
type ZoneOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var zoneOptions = []ZoneOption{
	{ID: "UTC", Label: "GMT"},
	{ID: "Europe/Berlin", Label: "CET"},
	{ID: "Asia/Seoul", Label: "KST"},
	{ID: "America/Los_Angeles", Label: "PT"},
	{ID: "America/New_York", Label: "ET"},
}

func ZoneOptions() []ZoneOption {
	return append([]ZoneOption(nil), zoneOptions...)
}

var locations sync.Map

// LoadZone resolves an IANA zone id. "Local" is rejected so output never
// depends on the host configuration.
func LoadZone(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = DefaultZone
	}
	if strings.EqualFold(id, "local") {
		return nil, fmt.Errorf("timezone %q is not allowed", id)
	}
	if cached, ok := locations.Load(id); ok {
		return cached.(*time.Location), nil
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", id, err)
	}
	locations.Store(id, loc)
	return loc, nil
}

// Abbreviation returns the zone abbreviation in effect at t, so DST zones
// report their summer name in summer (CEST, PDT, EDT). Zones whose tzdata
// only has a numeric offset ("+09") fall back to their selector label.
func Abbreviation(loc *time.Location, t time.Time) string {
	if loc == nil {
		loc = time.UTC
	}
	return abbreviationOrLabel(loc.String(), t.In(loc).Format("MST"))
}

func abbreviationOrLabel(id, abbr string) string {
	if !strings.HasPrefix(abbr, "+") && !strings.HasPrefix(abbr, "-") {
		return abbr
	}
	if label, ok := labelFor(id); ok {
		return label
	}
	return abbr
}

// ZoneLabel returns the selector label for a zone id, or the id itself.
func ZoneLabel(id string) string {
	if label, ok := labelFor(id); ok {
		return label
	}
	return id
}

func labelFor(id string) (string, bool) {
	for _, opt := range zoneOptions {
		if opt.ID == id {
			return opt.Label, true
		}
	}
	return "", false
}
