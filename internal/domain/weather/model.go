package weather

import (
	"context"
	"math"
	"time"
)

type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRain   Condition = "rain"
	ConditionSnow   Condition = "snow"
	ConditionFog    Condition = "fog"
	ConditionStorm  Condition = "storm"
)

var conditions = map[string]Condition{
	"Clear":        ConditionSunny,
	"Clouds":       ConditionCloudy,
	"Rain":         ConditionRain,
	"Drizzle":      ConditionRain,
	"Snow":         ConditionSnow,
	"Fog":          ConditionFog,
	"Mist":         ConditionFog,
	"Haze":         ConditionFog,
	"Thunderstorm": ConditionStorm,
}

// ConditionOf maps an upstream weather group to a display condition;
// unrecognised groups render as cloudy.
func ConditionOf(group string) Condition {
	if c, ok := conditions[group]; ok {
		return c
	}
	return ConditionCloudy
}

type Snapshot struct {
	Temperature float64
	Humidity    int
	WindSpeed   float64
	Group       string
	Description string
	ObservedAt  time.Time
}

func (s Snapshot) Condition() Condition {
	return ConditionOf(s.Group)
}

// RoundedTemperature is the whole-degree value shown on the widget.
func (s Snapshot) RoundedTemperature() int {
	return int(math.Round(s.Temperature))
}

// Slot is one forecast sample.
type Slot struct {
	At time.Time
	Snapshot
}

// Daily picks at most days slots, one per UTC date, each the sample
// closest to 12:00 UTC. slots must be in chronological order.
func Daily(slots []Slot, days int) []Slot {
	out := make([]Slot, 0, days)
	var (
		current  string
		best     Slot
		bestDist time.Duration
	)
	flush := func() {
		if current != "" && len(out) < days {
			out = append(out, best)
		}
	}
	for _, s := range slots {
		at := s.At.UTC()
		key := at.Format("2006-01-02")
		noon := time.Date(at.Year(), at.Month(), at.Day(), 12, 0, 0, 0, time.UTC)
		dist := at.Sub(noon)
		if dist < 0 {
			dist = -dist
		}
		if key != current {
			flush()
			current, best, bestDist = key, s, dist
			continue
		}
		if dist < bestDist {
			best, bestDist = s, dist
		}
	}
	flush()
	return out
}

// Source reads weather at a coordinate. ok is false when the provider
// reports no data; that is not an error.
type Source interface {
	Current(ctx context.Context, lat, lon float64) (snap Snapshot, ok bool, err error)
	Forecast(ctx context.Context, lat, lon float64) (slots []Slot, ok bool, err error)
}
