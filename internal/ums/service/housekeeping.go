package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/ums/internal/ums/store"
)

// HousekeepingService periodically deletes sessions that have outlived the
// session TTL so the sessions table does not grow without bound.
type HousekeepingService struct {
	Store      store.Store
	Logger     *slog.Logger
	Interval   time.Duration
	SessionTTL time.Duration

	now func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service.
// A non-positive interval defaults to 1 hour.
func NewHousekeepingService(
	store store.Store,
	logger *slog.Logger,
	interval time.Duration,
	sessionTTL time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:      store,
		Logger:     logger,
		Interval:   interval,
		SessionTTL: sessionTTL,
		now:        time.Now,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start begins the background worker. It is non-blocking and should be
// called after migrations have run. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "session_ttl", s.SessionTTL)
}

// Stop shuts down the worker and blocks until any in-progress cleanup ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes sessions bound more than SessionTTL ago and returns how
// many were removed. The lifetime is absolute: it counts from the login or
// registration that bound the slot, like the cookie token's expiry. A non-positive TTL disables expiry.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	if s.SessionTTL <= 0 {
		return 0
	}

	cutoff := s.now().Add(-s.SessionTTL)
	n, err := s.Store.Sessions().DeleteSessionsBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed", "expired_sessions", n)
	return n
}
