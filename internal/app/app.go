package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/pl-dashboard/internal/config"
	"github.com/riskibarqy/pl-dashboard/internal/domain/transfer"
	"github.com/riskibarqy/pl-dashboard/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/pl-dashboard/internal/platform/id"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

// NewHTTPServer wires upstream sources, the preference store and the HTTP
// router. The returned close func must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	sources := newDataSources(cfg, logger)
	football := sources.football

	prefRepo, closePrefs, err := newPreferenceRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Home:      usecase.NewHomeService(football.Standings, football.Fixtures),
		Standings: usecase.NewStandingsService(football.Standings),
		Fixtures:  usecase.NewFixtureService(football.Fixtures),
		Teams: usecase.NewTeamService(
			football.Standings,
			football.Squads,
			football.Fixtures,
			football.Injuries,
			football.Teams,
			logger,
		),
		Staff:    usecase.NewStaffService(football.Coaches),
		Injuries: usecase.NewInjuryService(football.Injuries),
		Transfers: usecase.NewTransferService(football.Standings, football.Transfers, usecase.TransferServiceConfig{
			Season:     transfer.NewSeason(cfg.TransferSeasonYear),
			MaxWorkers: cfg.TransferMaxWorkers,
		}, logger),
		Stats:       usecase.NewStatsService(football.Stats),
		Weather:     usecase.NewWeatherService(sources.weather, logger),
		MatchDetail: usecase.NewMatchDetailService(football.MatchDetail),
		Preferences: usecase.NewPreferenceService(prefRepo, logger),
	}, logger)

	bodyMaxBytes := 0
	if cfg.UptraceEnabled && cfg.UptraceCaptureRequestBody {
		bodyMaxBytes = cfg.UptraceRequestBodyMaxBytes
	}
	router := httpapi.NewRouter(handler, idgen.NewUUIDGenerator(), logger, httpapi.RouterConfig{
		SwaggerEnabled:      cfg.SwaggerEnabled,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		SecureCookie:        cfg.AppEnv != config.EnvDev,
		RequestBodyMaxBytes: bodyMaxBytes,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	closeApp := func(ctx context.Context) error {
		sources.logCacheStats(logger)
		return closePrefs(ctx)
	}
	return server, closeApp, nil
}
