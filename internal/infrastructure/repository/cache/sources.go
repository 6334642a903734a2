package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/pl-dashboard/internal/domain/coach"
	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
	"github.com/riskibarqy/pl-dashboard/internal/domain/matchdetail"
	"github.com/riskibarqy/pl-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/pl-dashboard/internal/domain/squad"
	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
	"github.com/riskibarqy/pl-dashboard/internal/domain/transfer"
	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
	basecache "github.com/riskibarqy/pl-dashboard/internal/platform/cache"
)

// Cached slices are shared between callers; every read hands out a copy.

func fetchSlice[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Fetch(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

func teamKey(prefix string, teamID int) string {
	return prefix + ":team:" + strconv.Itoa(teamID)
}

type StandingSource struct {
	next  standing.Source
	cache *basecache.Store
}

func NewStandingSource(next standing.Source, cache *basecache.Store) *StandingSource {
	return &StandingSource{next: next, cache: cache}
}

func (s *StandingSource) List(ctx context.Context) ([]standing.Row, error) {
	return fetchSlice(ctx, s.cache, "standings:list", s.next.List)
}

// FixtureSource caches league and team fixtures in store and live fixtures
// in the short-lived live store.
type FixtureSource struct {
	next  fixture.Source
	cache *basecache.Store
	live  *basecache.Store
}

func NewFixtureSource(next fixture.Source, cache, live *basecache.Store) *FixtureSource {
	return &FixtureSource{next: next, cache: cache, live: live}
}

func (s *FixtureSource) ListByLeague(ctx context.Context) ([]fixture.Fixture, error) {
	return fetchSlice(ctx, s.cache, "fixtures:league", s.next.ListByLeague)
}

func (s *FixtureSource) ListByTeam(ctx context.Context, teamID int) ([]fixture.Fixture, error) {
	return fetchSlice(ctx, s.cache, teamKey("fixtures", teamID), func(ctx context.Context) ([]fixture.Fixture, error) {
		return s.next.ListByTeam(ctx, teamID)
	})
}

func (s *FixtureSource) ListLive(ctx context.Context) ([]fixture.Fixture, error) {
	return fetchSlice(ctx, s.live, "fixtures:live", s.next.ListLive)
}

type SquadSource struct {
	next  squad.Source
	cache *basecache.Store
}

func NewSquadSource(next squad.Source, cache *basecache.Store) *SquadSource {
	return &SquadSource{next: next, cache: cache}
}

func (s *SquadSource) ListByTeam(ctx context.Context, teamID int) ([]squad.Player, error) {
	return fetchSlice(ctx, s.cache, teamKey("squad", teamID), func(ctx context.Context) ([]squad.Player, error) {
		return s.next.ListByTeam(ctx, teamID)
	})
}

type InjurySource struct {
	next  injury.Source
	cache *basecache.Store
}

func NewInjurySource(next injury.Source, cache *basecache.Store) *InjurySource {
	return &InjurySource{next: next, cache: cache}
}

func (s *InjurySource) ListByLeague(ctx context.Context) ([]injury.Entry, error) {
	return fetchSlice(ctx, s.cache, "injuries:league", s.next.ListByLeague)
}

func (s *InjurySource) ListByTeam(ctx context.Context, teamID int) ([]injury.Entry, error) {
	return fetchSlice(ctx, s.cache, teamKey("injuries", teamID), func(ctx context.Context) ([]injury.Entry, error) {
		return s.next.ListByTeam(ctx, teamID)
	})
}

type TransferSource struct {
	next  transfer.Source
	cache *basecache.Store
}

func NewTransferSource(next transfer.Source, cache *basecache.Store) *TransferSource {
	return &TransferSource{next: next, cache: cache}
}

func (s *TransferSource) ListByTeam(ctx context.Context, teamID int) ([]transfer.History, error) {
	return fetchSlice(ctx, s.cache, teamKey("transfers", teamID), func(ctx context.Context) ([]transfer.History, error) {
		return s.next.ListByTeam(ctx, teamID)
	})
}

type CoachSource struct {
	next  coach.Source
	cache *basecache.Store
}

func NewCoachSource(next coach.Source, cache *basecache.Store) *CoachSource {
	return &CoachSource{next: next, cache: cache}
}

func (s *CoachSource) ListByTeam(ctx context.Context, teamID int) ([]coach.Coach, error) {
	return fetchSlice(ctx, s.cache, teamKey("coaches", teamID), func(ctx context.Context) ([]coach.Coach, error) {
		return s.next.ListByTeam(ctx, teamID)
	})
}

type StatsSource struct {
	next  playerstats.Source
	cache *basecache.Store
}

func NewStatsSource(next playerstats.Source, cache *basecache.Store) *StatsSource {
	return &StatsSource{next: next, cache: cache}
}

func (s *StatsSource) TopScorers(ctx context.Context) ([]playerstats.Leader, error) {
	return fetchSlice(ctx, s.cache, "stats:topscorers", s.next.TopScorers)
}

func (s *StatsSource) TopAssists(ctx context.Context) ([]playerstats.Leader, error) {
	return fetchSlice(ctx, s.cache, "stats:topassists", s.next.TopAssists)
}

type TeamSource struct {
	next  team.Source
	cache *basecache.Store
}

func NewTeamSource(next team.Source, cache *basecache.Store) *TeamSource {
	return &TeamSource{next: next, cache: cache}
}

type cachedTeamInfo struct {
	value  team.Info
	exists bool
}

func (s *TeamSource) GetInfo(ctx context.Context, teamID int) (team.Info, bool, error) {
	cached, err := basecache.Fetch(ctx, s.cache, teamKey("info", teamID), func(ctx context.Context) (cachedTeamInfo, error) {
		info, exists, err := s.next.GetInfo(ctx, teamID)
		if err != nil {
			return cachedTeamInfo{}, err
		}
		return cachedTeamInfo{value: info, exists: exists}, nil
	})
	if err != nil {
		return team.Info{}, false, err
	}
	return cached.value, cached.exists, nil
}

type MatchDetailSource struct {
	next  matchdetail.Source
	cache *basecache.Store
}

func NewMatchDetailSource(next matchdetail.Source, cache *basecache.Store) *MatchDetailSource {
	return &MatchDetailSource{next: next, cache: cache}
}

func (s *MatchDetailSource) Lineups(ctx context.Context, fixtureID int) ([]matchdetail.Lineup, error) {
	key := "lineups:fixture:" + strconv.Itoa(fixtureID)
	return fetchSlice(ctx, s.cache, key, func(ctx context.Context) ([]matchdetail.Lineup, error) {
		return s.next.Lineups(ctx, fixtureID)
	})
}

func (s *MatchDetailSource) Events(ctx context.Context, fixtureID int) ([]matchdetail.Event, error) {
	key := "events:fixture:" + strconv.Itoa(fixtureID)
	return fetchSlice(ctx, s.cache, key, func(ctx context.Context) ([]matchdetail.Event, error) {
		return s.next.Events(ctx, fixtureID)
	})
}

// WeatherSource caches by coordinate. A "no data" answer is cached too.
type WeatherSource struct {
	next  weather.Source
	cache *basecache.Store
}

func NewWeatherSource(next weather.Source, cache *basecache.Store) *WeatherSource {
	return &WeatherSource{next: next, cache: cache}
}

type cachedSnapshot struct {
	value weather.Snapshot
	ok    bool
}

type cachedSlots struct {
	value []weather.Slot
	ok    bool
}

func coordinateKey(prefix string, lat, lon float64) string {
	return prefix + ":" + strconv.FormatFloat(lat, 'f', 4, 64) + "," + strconv.FormatFloat(lon, 'f', 4, 64)
}

func (s *WeatherSource) Current(ctx context.Context, lat, lon float64) (weather.Snapshot, bool, error) {
	cached, err := basecache.Fetch(ctx, s.cache, coordinateKey("weather:current", lat, lon), func(ctx context.Context) (cachedSnapshot, error) {
		snap, ok, err := s.next.Current(ctx, lat, lon)
		if err != nil {
			return cachedSnapshot{}, err
		}
		return cachedSnapshot{value: snap, ok: ok}, nil
	})
	if err != nil {
		return weather.Snapshot{}, false, err
	}
	return cached.value, cached.ok, nil
}

func (s *WeatherSource) Forecast(ctx context.Context, lat, lon float64) ([]weather.Slot, bool, error) {
	cached, err := basecache.Fetch(ctx, s.cache, coordinateKey("weather:forecast", lat, lon), func(ctx context.Context) (cachedSlots, error) {
		slots, ok, err := s.next.Forecast(ctx, lat, lon)
		if err != nil {
			return cachedSlots{}, err
		}
		return cachedSlots{value: append([]weather.Slot(nil), slots...), ok: ok}, nil
	})
	if err != nil {
		return nil, false, err
	}
	return append([]weather.Slot(nil), cached.value...), cached.ok, nil
}
