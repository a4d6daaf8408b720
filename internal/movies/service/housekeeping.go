package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

const (
	DefaultHousekeepingInterval = time.Hour
	DefaultPurgeAfter           = 30 * 24 * time.Hour
)

// HousekeepingService periodically removes movies that were soft-deleted
// longer than PurgeAfter ago. Favorites are never purged.
type HousekeepingService struct {
	Store      store.Store
	Logger     *slog.Logger
	Interval   time.Duration
	PurgeAfter time.Duration

	// Now is used to compute the purge cutoff. Defaults to time.Now.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService applies the defaults for non-positive durations.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, purgeAfter time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	if purgeAfter <= 0 {
		purgeAfter = DefaultPurgeAfter
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:      st,
		Logger:     logger,
		Interval:   interval,
		PurgeAfter: purgeAfter,
		Now:        time.Now,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to end it.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		slog.Duration("interval", s.Interval),
		slog.Duration("purge_after", s.PurgeAfter))
}

// Stop blocks until an in-progress purge has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single purge pass and returns the number of movies
// removed.
func (s *HousekeepingService) RunOnce(ctx context.Context) int64 {
	cutoff := s.Now().UTC().Add(-s.PurgeAfter)

	n, err := s.Store.Movies().PurgeDeleted(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to purge deleted movies", slogx.Err(err))
		return 0
	}

	metrics.MoviesPurgedTotal.Add(float64(n))
	s.Logger.Info("housekeeping cleanup completed",
		slog.Int64("purged", n), slog.Time("cutoff", cutoff))
	return n
}
