package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
)

type sessionsRepo struct {
	db  dbtx
	now func() time.Time
}

func (r *sessionsRepo) GetSession(ctx context.Context, slot string) (domain.Session, error) {
	var (
		s                    domain.Session
		createdAt, updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT slot, user_id, created_at, updated_at FROM sessions WHERE slot = ?`, slot,
	).Scan(&s.Slot, &s.UserID, &createdAt, &updatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.CreatedAt = fromMillis(createdAt)
	s.UpdatedAt = fromMillis(updatedAt)
	return s, nil
}

func (r *sessionsRepo) PutSession(ctx context.Context, slot, userID string) error {
	now := toMillis(r.now())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (slot, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (slot) DO UPDATE
		    SET user_id = excluded.user_id,
		        created_at = excluded.created_at,
		        updated_at = excluded.updated_at`,
		slot, userID, now, now,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, slot string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE slot = ?`, slot)
	return err
}

func (r *sessionsRepo) DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE updated_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
