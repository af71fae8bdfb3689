package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/store"
)

// HousekeepingService periodically deletes refresh tokens that have expired
// or been revoked, so rotation does not grow the table without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the cleanup loop in the background. Call Stop to end it.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop ends the loop and waits for an in-progress cleanup to finish.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.Interval)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.Logger.Error("failed to delete stale refresh tokens", "error", err)
	}
}

// RunOnce performs a single cleanup pass and returns the number of rows
// deleted.
func (s *HousekeepingService) RunOnce(ctx context.Context) (int64, error) {
	n, err := s.Store.RefreshTokens().DeleteStaleRefreshTokens(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	s.Logger.Info("housekeeping cleanup completed", "deleted_refresh_tokens", n)
	return n, nil
}
