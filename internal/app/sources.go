package app

import (
	"net/http"

	"github.com/riskibarqy/pl-dashboard/external/apifootball"
	"github.com/riskibarqy/pl-dashboard/external/openweather"
	"github.com/riskibarqy/pl-dashboard/internal/config"
	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
	"github.com/riskibarqy/pl-dashboard/internal/infrastructure/repository/cache"
	basecache "github.com/riskibarqy/pl-dashboard/internal/platform/cache"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/pl-dashboard/internal/platform/resilience"
)

type dataSources struct {
	football apifootball.Sources
	weather  weather.Source
	stores   map[string]*basecache.Store
}

// logCacheStats reports hit ratios per store; called once at shutdown.
func (d dataSources) logCacheStats(logger *logging.Logger) {
	for _, name := range []string{"upstream", "live", "weather"} {
		store, ok := d.stores[name]
		if !ok {
			continue
		}
		stats := store.Stats()
		logger.Info("cache stats",
			"store", name,
			"hits", stats.Hits,
			"misses", stats.Misses,
			"size", stats.Size,
		)
	}
}

func newDataSources(cfg config.Config, logger *logging.Logger) dataSources {
	football := apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient:        &http.Client{Timeout: cfg.APIFootballTimeout},
		BaseURL:           cfg.APIFootballBaseURL,
		APIKey:            cfg.APIFootballKey,
		LeagueID:          cfg.APIFootballLeagueID,
		Season:            cfg.APIFootballSeason,
		Timeout:           cfg.APIFootballTimeout,
		MaxRetries:        cfg.APIFootballMaxRetries,
		RequestsPerMinute: cfg.APIFootballRPM,
		Logger:            logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailures,
			OpenTimeout:      cfg.APIFootballCircuitOpen,
			HalfOpenProbes:   cfg.APIFootballCircuitHalfOpen,
		},
	}).Sources()

	var forecast weather.Source = openweather.NewClient(openweather.ClientConfig{
		BaseURL:        cfg.OpenWeatherBaseURL,
		APIKey:         cfg.OpenWeatherKey,
		Timeout:        cfg.OpenWeatherTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.DefaultBreakerConfig(),
	})

	if !cfg.CacheEnabled {
		logger.Info("upstream cache disabled", "reason", "CACHE_ENABLED=false")
		return dataSources{football: football, weather: forecast}
	}

	store := basecache.NewStore(cfg.CacheTTL)
	live := basecache.NewStore(cfg.LiveCacheTTL)
	weatherStore := basecache.NewStore(cfg.WeatherCacheTTL)
	logger.Info("upstream cache enabled",
		"ttl", cfg.CacheTTL.String(),
		"live_ttl", cfg.LiveCacheTTL.String(),
		"weather_ttl", cfg.WeatherCacheTTL.String(),
	)

	return dataSources{
		football: apifootball.Sources{
			Standings:   cache.NewStandingSource(football.Standings, store),
			Fixtures:    cache.NewFixtureSource(football.Fixtures, store, live),
			Squads:      cache.NewSquadSource(football.Squads, store),
			Injuries:    cache.NewInjurySource(football.Injuries, store),
			Transfers:   cache.NewTransferSource(football.Transfers, store),
			Coaches:     cache.NewCoachSource(football.Coaches, store),
			Stats:       cache.NewStatsSource(football.Stats, store),
			Teams:       cache.NewTeamSource(football.Teams, store),
			MatchDetail: cache.NewMatchDetailSource(football.MatchDetail, live),
		},
		weather: cache.NewWeatherSource(forecast, weatherStore),
		stores: map[string]*basecache.Store{
			"upstream": store,
			"live":     live,
			"weather":  weatherStore,
		},
	}
}
