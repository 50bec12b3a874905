package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories so a transaction-scoped Store can hand out the
// same repos without allowing nested transactions.
type Store interface {
	Users() Users
	Sessions() Sessions
	Settings() Settings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction is rolled back
	// if fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the email exactly, case included.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the caller via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile writes email, names and phone of u and bumps updated_at.
	// Returns ErrAlreadyExists when the new email belongs to another user
	// and ErrNotFound when no user has u.ID.
	UpdateProfile(ctx context.Context, u domain.User) error
}

type Sessions interface {
	// GetSession returns the session bound to slot.
	GetSession(ctx context.Context, slot string) (domain.Session, error)

	// PutSession binds slot to userID, replacing any previous binding.
	PutSession(ctx context.Context, slot, userID string) error

	// DeleteSession clears slot. Clearing an empty slot is not an error.
	DeleteSession(ctx context.Context, slot string) error

	// DeleteSessionsBefore removes sessions bound (by PutSession) before
	// cutoff and returns how many were removed. Reads do not extend a session.
	DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Settings is a small key/value table for local preferences such as the
// terminal UI theme.
type Settings interface {
	// GetSetting returns ErrNotFound when key was never written.
	GetSetting(ctx context.Context, key string) (string, error)

	// PutSetting writes value under key, replacing any previous value.
	PutSetting(ctx context.Context, key, value string) error
}
