package app

import (
	"context"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/pl-dashboard/internal/config"
	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
	"github.com/riskibarqy/pl-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pl-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/pl-dashboard/internal/infrastructure/repository/redis"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

type closeFunc func(context.Context) error

func noopClose(context.Context) error { return nil }

// newPreferenceRepository opens the store selected by PREFERENCE_STORE. The
// returned close func releases its connections.
func newPreferenceRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (preference.Repository, closeFunc, error) {
	switch cfg.PreferenceStore {
	case config.PreferenceStoreRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis preference store: %w", err)
		}
		logger.Info("preference store ready", "store", cfg.PreferenceStore, "ttl", cfg.PreferenceTTL.String())
		return redis.NewPreferenceRepository(client, cfg.PreferenceTTL), func(context.Context) error {
			return client.Close()
		}, nil

	case config.PreferenceStorePostgres:
		dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := otelsqlx.Open("postgres", dbURL,
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(dbURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres preference store: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres preference store: %w", err)
		}
		logger.Info("preference store ready", "store", cfg.PreferenceStore, "db", redactDBURL(dbURL))
		return postgres.NewPreferenceRepository(db), func(context.Context) error {
			return db.Close()
		}, nil

	default:
		logger.Info("preference store ready", "store", config.PreferenceStoreMemory)
		return memory.NewPreferenceRepository(), noopClose, nil
	}
}
