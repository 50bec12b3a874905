// Package session owns the user logged in on one session slot. A Store is
// the in-memory view of that slot; every change goes through durable
// storage first so reopening the slot rehydrates the same user.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
	"github.com/aussiebroadwan/ums/internal/ums/store"
	"github.com/aussiebroadwan/ums/pkg/cryptox"
	"github.com/aussiebroadwan/ums/pkg/idx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
)

// ErrEmailTaken is returned by UpdateUser when the patch would move the
// current user onto an email another account already uses.
var ErrEmailTaken = errors.New("session: email already registered")

// PasswordHasher is satisfied by *cryptox.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// Store is the session of a single slot. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	store   store.Store
	hasher  PasswordHasher
	slot    string
	current *domain.User
}

// Open loads the session bound to slot. A slot without a session, or whose
// user no longer exists, opens empty; the dangling binding is cleared.
func Open(ctx context.Context, st store.Store, hasher PasswordHasher, slot string) (*Store, error) {
	s := &Store{store: st, hasher: hasher, slot: slot}

	sess, err := st.Sessions().GetSession(ctx, slot)
	if errors.Is(err, store.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	u, err := st.Users().GetUserByID(ctx, sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Warn("session references missing user, clearing",
			"slot", slot, "user_id", sess.UserID)
		if err := st.Sessions().DeleteSession(ctx, slot); err != nil {
			return nil, fmt.Errorf("clear dangling session: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}

	s.current = &u
	return s, nil
}

// Slot names the session slot this store is bound to.
func (s *Store) Slot() string { return s.slot }

// Current returns the logged in user, if any.
func (s *Store) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

// Register creates an account and logs it in. It reports false, leaving the
// session untouched, when the email is already registered.
func (s *Store) Register(ctx context.Context, reg domain.Registration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        reg.Email,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Phone:        reg.Phone,
	}

	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return tx.Sessions().PutSession(ctx, s.slot, u.ID)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		slogx.FromContext(ctx).Info("registration rejected, email taken")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("register: %w", err)
	}

	created, err := s.store.Users().GetUserByID(ctx, u.ID)
	if err != nil {
		return false, fmt.Errorf("reload user: %w", err)
	}
	s.current = &created

	slogx.FromContext(ctx).Info("user registered", "user_id", created.ID)
	return true, nil
}

// Login binds the slot to the user with exactly this email when the password
// verifies. Any other outcome reports false and leaves the session as it was.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Info("login rejected", "reason", "unknown_email")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}

	if err := s.hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Info("login rejected", "reason", "bad_password", "user_id", u.ID)
			return false, nil
		}
		return false, fmt.Errorf("verify password: %w", err)
	}

	if err := s.store.Sessions().PutSession(ctx, s.slot, u.ID); err != nil {
		return false, fmt.Errorf("bind session: %w", err)
	}
	s.current = &u

	slogx.FromContext(ctx).Info("user logged in", "user_id", u.ID)
	return true, nil
}

// Logout clears the session. The in-memory session is cleared even when the
// storage delete fails; the error is still returned.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.Sessions().DeleteSession(ctx, s.slot); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// UpdateUser merges patch into the current user, in memory and in storage.
// It is a no-op reporting false when nobody is logged in.
func (s *Store) UpdateUser(ctx context.Context, patch domain.UserPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false, nil
	}
	if patch.IsEmpty() {
		return true, nil
	}

	merged := patch.Apply(*s.current)
	err := s.store.Users().UpdateProfile(ctx, merged)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return false, ErrEmailTaken
	case errors.Is(err, store.ErrNotFound):
		// The account is gone; the session cannot refer to it any more.
		s.current = nil
		if err := s.store.Sessions().DeleteSession(ctx, s.slot); err != nil {
			slogx.FromContext(ctx).Warn("failed to clear session of missing user",
				"slot", s.slot, "user_id", merged.ID, "err", err)
		}
		return false, nil
	case err != nil:
		return false, fmt.Errorf("update user: %w", err)
	}

	updated, err := s.store.Users().GetUserByID(ctx, merged.ID)
	if err != nil {
		return false, fmt.Errorf("reload user: %w", err)
	}
	s.current = &updated
	return true, nil
}
