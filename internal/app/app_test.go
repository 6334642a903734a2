package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pl-dashboard/internal/config"
	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
	"github.com/riskibarqy/pl-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pl-dashboard/internal/infrastructure/repository/redis"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		APIFootballTimeout: time.Second,
		OpenWeatherTimeout: time.Second,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		LiveCacheTTL:       time.Second,
		WeatherCacheTTL:    time.Minute,
		TransferSeasonYear: 2025,
		TransferMaxWorkers: 2,
		PreferenceStore:    config.PreferenceStoreMemory,
	}
}

func TestNewPreferenceRepository_DefaultsToMemory(t *testing.T) {
	repo, closeRepo, err := newPreferenceRepository(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeRepo(context.Background()) })

	assert.IsType(t, &memory.PreferenceRepository{}, repo)
}

func TestNewPreferenceRepository_Redis(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := testConfig()
	cfg.PreferenceStore = config.PreferenceStoreRedis
	cfg.RedisURL = "redis://" + srv.Addr()
	cfg.PreferenceTTL = time.Hour

	repo, closeRepo, err := newPreferenceRepository(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeRepo(context.Background()) })
	require.IsType(t, &redis.PreferenceRepository{}, repo)

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, "client-1", preference.Values{preference.KeyLanguage: "ko"}))
	got, err := repo.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "ko", got[preference.KeyLanguage])
}

func TestNewPreferenceRepository_RedisUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.PreferenceStore = config.PreferenceStoreRedis
	cfg.RedisURL = "redis://127.0.0.1:1"

	_, _, err := newPreferenceRepository(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestNewHTTPServer_ServesHealth(t *testing.T) {
	srv, closeFn, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn(context.Background()) })

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Client-ID"))
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestNewDataSources_CacheStores(t *testing.T) {
	cfg := testConfig()
	sources := newDataSources(cfg, logging.NewNop())
	assert.Len(t, sources.stores, 3)
	sources.logCacheStats(logging.NewNop())

	cfg.CacheEnabled = false
	sources = newDataSources(cfg, logging.NewNop())
	assert.Empty(t, sources.stores)
	assert.NotPanics(t, func() { sources.logCacheStats(logging.NewNop()) })
}
