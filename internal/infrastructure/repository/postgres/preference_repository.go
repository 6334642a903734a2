package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
)

const (
	selectPreferencesQuery = `SELECT client_id, pref_key, value, updated_at FROM client_preferences WHERE client_id = $1`
	upsertPreferenceQuery  = `INSERT INTO client_preferences (client_id, pref_key, value, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (client_id, pref_key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

type PreferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) Get(ctx context.Context, clientID string) (preference.Values, error) {
	var rows []preferenceTableModel
	if err := r.db.SelectContext(ctx, &rows, selectPreferencesQuery, clientID); err != nil {
		return nil, fmt.Errorf("select client preferences: %w", err)
	}

	out := make(preference.Values, len(rows))
	for _, row := range rows {
		key := preference.Key(row.Key)
		if !key.Valid() {
			continue
		}
		out[key] = row.Value
	}
	return out, nil
}

// Put upserts every given key in one transaction.
func (r *PreferenceRepository) Put(ctx context.Context, clientID string, values preference.Values) (err error) {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin preferences tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, key := range keys {
		if _, err = tx.ExecContext(ctx, upsertPreferenceQuery, clientID, key, values[preference.Key(key)]); err != nil {
			return fmt.Errorf("upsert preference %s: %w", key, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit preferences tx: %w", err)
	}
	return nil
}
