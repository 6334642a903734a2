package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
)

func TestPreferenceRepositoryRoundTrip(t *testing.T) {
	repo := NewPreferenceRepository()
	ctx := context.Background()

	empty, err := repo.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Put(ctx, "client-1", preference.Values{preference.KeyTimezone: "Europe/Berlin"}))
	require.NoError(t, repo.Put(ctx, "client-1", preference.Values{preference.KeyLanguage: "es"}))

	got, err := repo.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, preference.Values{
		preference.KeyTimezone: "Europe/Berlin",
		preference.KeyLanguage: "es",
	}, got)

	got[preference.KeyTimezone] = "UTC"
	again, err := repo.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", again[preference.KeyTimezone])

	other, err := repo.Get(ctx, "client-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
