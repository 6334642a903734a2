package openweather

import (
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
)

// responseCode accepts cod as a number (current weather) or a numeric
// string (forecast and errors).
type responseCode int

func (c *responseCode) UnmarshalJSON(data []byte) error {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*c = responseCode(int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			*c = 0
			return nil
		}
		*c = responseCode(n)
	default:
		*c = 0
	}
	return nil
}

type conditionJSON struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type mainJSON struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

type windJSON struct {
	Speed float64 `json:"speed"`
}

type currentPayload struct {
	Dt      int64           `json:"dt"`
	Weather []conditionJSON `json:"weather"`
	Main    mainJSON        `json:"main"`
	Wind    windJSON        `json:"wind"`
}

func (p currentPayload) snapshot() weather.Snapshot {
	return buildSnapshot(p.Dt, p.Weather, p.Main, p.Wind)
}

type forecastPayload struct {
	List []currentPayload `json:"list"`
}

func buildSnapshot(dt int64, conditions []conditionJSON, main mainJSON, wind windJSON) weather.Snapshot {
	snap := weather.Snapshot{
		Temperature: main.Temp,
		Humidity:    main.Humidity,
		WindSpeed:   wind.Speed,
	}
	if dt > 0 {
		snap.ObservedAt = time.Unix(dt, 0).UTC()
	}
	if len(conditions) > 0 {
		snap.Group = conditions[0].Main
		snap.Description = conditions[0].Description
	}
	return snap
}
