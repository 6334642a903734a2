package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/pl-dashboard/internal/domain/coach"
	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
	"github.com/riskibarqy/pl-dashboard/internal/domain/matchdetail"
	"github.com/riskibarqy/pl-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
	"github.com/riskibarqy/pl-dashboard/internal/domain/squad"
	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
	"github.com/riskibarqy/pl-dashboard/internal/domain/transfer"
	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
)

type standingSourceMock struct{ mock.Mock }

func (m *standingSourceMock) List(ctx context.Context) ([]standing.Row, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]standing.Row)
	return rows, args.Error(1)
}

type fixtureSourceMock struct{ mock.Mock }

func (m *fixtureSourceMock) ListByLeague(ctx context.Context) ([]fixture.Fixture, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]fixture.Fixture)
	return items, args.Error(1)
}

func (m *fixtureSourceMock) ListByTeam(ctx context.Context, teamID int) ([]fixture.Fixture, error) {
	args := m.Called(ctx, teamID)
	items, _ := args.Get(0).([]fixture.Fixture)
	return items, args.Error(1)
}

func (m *fixtureSourceMock) ListLive(ctx context.Context) ([]fixture.Fixture, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]fixture.Fixture)
	return items, args.Error(1)
}

type squadSourceMock struct{ mock.Mock }

func (m *squadSourceMock) ListByTeam(ctx context.Context, teamID int) ([]squad.Player, error) {
	args := m.Called(ctx, teamID)
	items, _ := args.Get(0).([]squad.Player)
	return items, args.Error(1)
}

type injurySourceMock struct{ mock.Mock }

func (m *injurySourceMock) ListByLeague(ctx context.Context) ([]injury.Entry, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]injury.Entry)
	return items, args.Error(1)
}

func (m *injurySourceMock) ListByTeam(ctx context.Context, teamID int) ([]injury.Entry, error) {
	args := m.Called(ctx, teamID)
	items, _ := args.Get(0).([]injury.Entry)
	return items, args.Error(1)
}

type teamSourceMock struct{ mock.Mock }

func (m *teamSourceMock) GetInfo(ctx context.Context, teamID int) (team.Info, bool, error) {
	args := m.Called(ctx, teamID)
	info, _ := args.Get(0).(team.Info)
	return info, args.Bool(1), args.Error(2)
}

type transferSourceMock struct{ mock.Mock }

func (m *transferSourceMock) ListByTeam(ctx context.Context, teamID int) ([]transfer.History, error) {
	args := m.Called(ctx, teamID)
	items, _ := args.Get(0).([]transfer.History)
	return items, args.Error(1)
}

type coachSourceMock struct{ mock.Mock }

func (m *coachSourceMock) ListByTeam(ctx context.Context, teamID int) ([]coach.Coach, error) {
	args := m.Called(ctx, teamID)
	items, _ := args.Get(0).([]coach.Coach)
	return items, args.Error(1)
}

type statsSourceMock struct{ mock.Mock }

func (m *statsSourceMock) TopScorers(ctx context.Context) ([]playerstats.Leader, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]playerstats.Leader)
	return items, args.Error(1)
}

func (m *statsSourceMock) TopAssists(ctx context.Context) ([]playerstats.Leader, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]playerstats.Leader)
	return items, args.Error(1)
}

type matchDetailSourceMock struct{ mock.Mock }

func (m *matchDetailSourceMock) Lineups(ctx context.Context, fixtureID int) ([]matchdetail.Lineup, error) {
	args := m.Called(ctx, fixtureID)
	items, _ := args.Get(0).([]matchdetail.Lineup)
	return items, args.Error(1)
}

func (m *matchDetailSourceMock) Events(ctx context.Context, fixtureID int) ([]matchdetail.Event, error) {
	args := m.Called(ctx, fixtureID)
	items, _ := args.Get(0).([]matchdetail.Event)
	return items, args.Error(1)
}

type weatherSourceMock struct{ mock.Mock }

func (m *weatherSourceMock) Current(ctx context.Context, lat, lon float64) (weather.Snapshot, bool, error) {
	args := m.Called(ctx, lat, lon)
	snap, _ := args.Get(0).(weather.Snapshot)
	return snap, args.Bool(1), args.Error(2)
}

func (m *weatherSourceMock) Forecast(ctx context.Context, lat, lon float64) ([]weather.Slot, bool, error) {
	args := m.Called(ctx, lat, lon)
	slots, _ := args.Get(0).([]weather.Slot)
	return slots, args.Bool(1), args.Error(2)
}

type preferenceRepoMock struct{ mock.Mock }

func (m *preferenceRepoMock) Get(ctx context.Context, clientID string) (preference.Values, error) {
	args := m.Called(ctx, clientID)
	values, _ := args.Get(0).(preference.Values)
	return values, args.Error(1)
}

func (m *preferenceRepoMock) Put(ctx context.Context, clientID string, values preference.Values) error {
	args := m.Called(ctx, clientID, values)
	return args.Error(0)
}
