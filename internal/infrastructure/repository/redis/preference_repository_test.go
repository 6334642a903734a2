package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
)

func newTestRepository(t *testing.T, ttl time.Duration) (*PreferenceRepository, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client, err := NewClient(context.Background(), "redis://"+server.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewPreferenceRepository(client, ttl), server
}

func TestPreferenceRepositoryRoundTrip(t *testing.T) {
	repo, server := newTestRepository(t, 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "client-1", preference.Values{preference.KeyTimezone: "America/Los_Angeles"}))
	require.NoError(t, repo.Put(ctx, "client-1", preference.Values{preference.KeyLanguage: "ko"}))

	got, err := repo.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, preference.Values{
		preference.KeyTimezone: "America/Los_Angeles",
		preference.KeyLanguage: "ko",
	}, got)
	assert.Equal(t, 24*time.Hour, server.TTL("pl:preferences:client-1"))
}

func TestPreferenceRepositoryIgnoresForeignFields(t *testing.T) {
	repo, server := newTestRepository(t, 0)
	server.HSet("pl:preferences:client-2", "pl-language", "es", "legacy-theme", "dark")

	got, err := repo.Get(context.Background(), "client-2")
	require.NoError(t, err)
	assert.Equal(t, preference.Values{preference.KeyLanguage: "es"}, got)
}

func TestPreferenceRepositoryMissingClient(t *testing.T) {
	repo, _ := newTestRepository(t, 0)

	got, err := repo.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
