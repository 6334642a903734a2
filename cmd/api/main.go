package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/pl-dashboard/internal/app"
	"github.com/riskibarqy/pl-dashboard/internal/config"
	"github.com/riskibarqy/pl-dashboard/internal/observability"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.Options{}).Error("load config", "error", err)
		os.Exit(1)
	}

	format := logging.FormatJSON
	if cfg.AppEnv == config.EnvDev {
		format = logging.FormatConsole
	}
	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  format,
		Service: cfg.ServiceName,
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()
	logger.Debug("config loaded",
		"env", cfg.AppEnv,
		"league_id", cfg.APIFootballLeagueID,
		"season", cfg.APIFootballSeason,
		"preference_store", cfg.PreferenceStore,
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("api exited", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return err
	}
	stopPprof, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return err
	}

	srv, closeApp, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.Error("http server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := closeApp(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := stopPprof(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := stopProfiler(); err != nil {
		errs = append(errs, err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	logger.Info("http server stopped")
	return errors.Join(errs...)
}
