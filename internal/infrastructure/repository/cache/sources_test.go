package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
	basecache "github.com/riskibarqy/pl-dashboard/internal/platform/cache"
)

type countingStandings struct {
	calls int
	err   error
}

func (s *countingStandings) List(context.Context) ([]standing.Row, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []standing.Row{{Rank: 1, Team: team.Ref{ID: 42, Name: "Arsenal"}}}, nil
}

func TestStandingSourceCachesAndCopies(t *testing.T) {
	next := &countingStandings{}
	source := NewStandingSource(next, basecache.NewStore(time.Minute))

	first, err := source.List(context.Background())
	require.NoError(t, err)
	first[0].Rank = 99

	second, err := source.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, second[0].Rank)
}

func TestStandingSourceDoesNotCacheErrors(t *testing.T) {
	next := &countingStandings{err: errors.New("upstream down")}
	source := NewStandingSource(next, basecache.NewStore(time.Minute))

	_, err := source.List(context.Background())
	require.Error(t, err)
	_, err = source.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, next.calls)
}

type countingFixtures struct {
	league, live int
	byTeam       map[int]int
}

func (f *countingFixtures) ListByLeague(context.Context) ([]fixture.Fixture, error) {
	f.league++
	return []fixture.Fixture{{ID: 1}}, nil
}

func (f *countingFixtures) ListByTeam(_ context.Context, teamID int) ([]fixture.Fixture, error) {
	f.byTeam[teamID]++
	return []fixture.Fixture{{ID: teamID}}, nil
}

func (f *countingFixtures) ListLive(context.Context) ([]fixture.Fixture, error) {
	f.live++
	return []fixture.Fixture{}, nil
}

func TestFixtureSourceKeysPerTeamAndSeparatesLive(t *testing.T) {
	next := &countingFixtures{byTeam: map[int]int{}}
	data := basecache.NewStore(time.Minute)
	live := basecache.NewStore(time.Minute)
	source := NewFixtureSource(next, data, live)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = source.ListByTeam(ctx, 42)
		_, _ = source.ListByTeam(ctx, 40)
		_, _ = source.ListLive(ctx)
	}
	got, err := source.ListByTeam(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, got[0].ID)
	assert.Equal(t, 1, next.byTeam[42])
	assert.Equal(t, 1, next.byTeam[40])
	assert.Equal(t, 1, next.live)
	assert.Equal(t, 1, live.Stats().Size)
	assert.Equal(t, 2, data.Stats().Size)
}

type noDataWeather struct{ calls int }

func (w *noDataWeather) Current(context.Context, float64, float64) (weather.Snapshot, bool, error) {
	w.calls++
	return weather.Snapshot{}, false, nil
}

func (w *noDataWeather) Forecast(context.Context, float64, float64) ([]weather.Slot, bool, error) {
	w.calls++
	return nil, false, nil
}

func TestWeatherSourceCachesNoData(t *testing.T) {
	next := &noDataWeather{}
	source := NewWeatherSource(next, basecache.NewStore(time.Minute))

	for i := 0; i < 2; i++ {
		_, ok, err := source.Current(context.Background(), 51.5549, -0.1084)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, 1, next.calls)
}
