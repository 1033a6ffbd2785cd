package storage

import (
	"context"
	"log/slog"
	"time"

	"scout/internal/server/database"
)

// CleanupService periodically removes scans older than the retention TTL
// from both the database and the archive cache.
type CleanupService struct {
	repo     *database.Repository
	store    Store
	ttl      time.Duration
	interval time.Duration
	done     chan struct{}
}

// NewCleanupService creates a new cleanup service.
func NewCleanupService(repo *database.Repository, store Store, ttl, interval time.Duration) *CleanupService {
	return &CleanupService{
		repo:     repo,
		store:    store,
		ttl:      ttl,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the cleanup loop in a background goroutine.
func (cs *CleanupService) Start(ctx context.Context) {
	slog.Info("cleanup service started", "ttl", cs.ttl, "interval", cs.interval)

	go func() {
		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		// Run once immediately on start
		cs.runCleanup(ctx)

		for {
			select {
			case <-ticker.C:
				cs.runCleanup(ctx)
			case <-ctx.Done():
				slog.Info("cleanup service stopping")
				close(cs.done)
				return
			}
		}
	}()
}

// Wait blocks until the cleanup service has fully stopped.
func (cs *CleanupService) Wait() {
	<-cs.done
}

func (cs *CleanupService) runCleanup(ctx context.Context) {
	cutoff := time.Now().Add(-cs.ttl)

	stale, err := cs.repo.GetStale(ctx, cutoff)
	if err != nil {
		slog.Error("failed to get stale scans", "error", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	var cleaned, failed int
	for _, scan := range stale {
		if err := cs.store.Delete(scan.ID); err != nil {
			slog.Error("failed to delete archive",
				"scan_id", scan.ID,
				"error", err,
			)
			failed++
			continue
		}

		if err := cs.repo.Delete(ctx, scan.ID); err != nil {
			slog.Error("failed to delete scan record",
				"scan_id", scan.ID,
				"error", err,
			)
			failed++
			continue
		}

		cleaned++
	}

	slog.Info("cleanup cycle complete",
		"cleaned", cleaned,
		"failed", failed,
		"total_stale", len(stale),
	)
}
