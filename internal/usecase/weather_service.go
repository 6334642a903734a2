package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/pl-dashboard/internal/domain/stadium"
	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

const forecastDays = 5

// StadiumWeather is the weather widget for a club's ground. Available is
// false when the provider had no data or could not be reached.
type StadiumWeather struct {
	Stadium   stadium.Stadium
	Current   weather.Snapshot
	Available bool
}

type StadiumForecast struct {
	Stadium   stadium.Stadium
	Days      []weather.Slot
	Available bool
}

type WeatherService struct {
	source weather.Source
	logger *logging.Logger
}

func NewWeatherService(source weather.Source, logger *logging.Logger) *WeatherService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WeatherService{source: source, logger: logger}
}

// Current never fails on provider errors; only an unknown ground is an error.
func (s *WeatherService) Current(ctx context.Context, teamID int) (StadiumWeather, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.Current", attribute.Int("team.id", teamID))
	defer span.End()

	ground, err := lookupStadium(teamID)
	if err != nil {
		return StadiumWeather{}, err
	}

	out := StadiumWeather{Stadium: ground}
	snap, ok, err := s.source.Current(ctx, ground.Lat, ground.Lon)
	if err != nil {
		s.logger.WarnContext(ctx, "stadium weather unavailable", "team_id", teamID, "error", err)
		return out, nil
	}
	out.Current, out.Available = snap, ok
	return out, nil
}

// Forecast returns one midday sample per day for up to five days.
func (s *WeatherService) Forecast(ctx context.Context, teamID int) (StadiumForecast, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.Forecast", attribute.Int("team.id", teamID))
	defer span.End()

	ground, err := lookupStadium(teamID)
	if err != nil {
		return StadiumForecast{}, err
	}

	out := StadiumForecast{Stadium: ground, Days: []weather.Slot{}}
	slots, ok, err := s.source.Forecast(ctx, ground.Lat, ground.Lon)
	if err != nil {
		s.logger.WarnContext(ctx, "stadium forecast unavailable", "team_id", teamID, "error", err)
		return out, nil
	}
	if !ok {
		return out, nil
	}
	out.Days = weather.Daily(slots, forecastDays)
	out.Available = len(out.Days) > 0
	return out, nil
}

func lookupStadium(teamID int) (stadium.Stadium, error) {
	if teamID <= 0 {
		return stadium.Stadium{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	ground, ok := stadium.Lookup(teamID)
	if !ok {
		return stadium.Stadium{}, fmt.Errorf("%w: no stadium for team_id=%d", ErrNotFound, teamID)
	}
	return ground, nil
}
