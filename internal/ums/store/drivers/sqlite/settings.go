package sqlite

import (
	"context"
	"time"
)

type settingsRepo struct {
	db  dbtx
	now func() time.Time
}

func (r *settingsRepo) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", mapNotFound(err)
	}
	return value, nil
}

func (r *settingsRepo) PutSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE
		    SET value = excluded.value,
		        updated_at = excluded.updated_at`,
		key, value, toMillis(r.now()),
	)
	return err
}
