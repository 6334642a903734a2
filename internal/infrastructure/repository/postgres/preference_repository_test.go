package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
)

func newMockRepository(t *testing.T) (*PreferenceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPreferenceRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestPreferenceRepositoryGet(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"client_id", "pref_key", "value", "updated_at"}).
		AddRow("client-1", "pl-timezone", "Asia/Seoul", time.Now()).
		AddRow("client-1", "legacy-key", "x", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(selectPreferencesQuery)).WithArgs("client-1").WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, preference.Values{preference.KeyTimezone: "Asia/Seoul"}, got)
}

func TestPreferenceRepositoryPutUpsertsInOneTransaction(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertPreferenceQuery)).
		WithArgs("client-1", "pl-language", "es").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(upsertPreferenceQuery)).
		WithArgs("client-1", "pl-timezone", "Europe/Berlin").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Put(context.Background(), "client-1", preference.Values{
		preference.KeyTimezone: "Europe/Berlin",
		preference.KeyLanguage: "es",
	})
	require.NoError(t, err)
}

func TestPreferenceRepositoryPutRollsBackOnError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertPreferenceQuery)).
		WithArgs("client-1", "pl-language", "ko").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Put(context.Background(), "client-1", preference.Values{preference.KeyLanguage: "ko"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert preference pl-language")
}
