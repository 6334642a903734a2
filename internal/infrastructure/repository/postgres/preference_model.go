package postgres

import "time"

type preferenceTableModel struct {
	ClientID  string    `db:"client_id"`
	Key       string    `db:"pref_key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
