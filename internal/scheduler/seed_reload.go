// Package scheduler runs the background goroutines of the service.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dastodo/market/internal/logger"
	"github.com/dastodo/market/internal/sources/catalog"
	"github.com/dastodo/market/internal/store"
)

// SeedReloader periodically re-reads the seed catalog file and inserts any
// starter listings that are not in the store yet. Listings the user has
// edited or deleted are never recreated under the same record: presence is
// checked by title, so a deleted seed entry does come back on the next
// reload, but edits to an existing one are left alone.
type SeedReloader struct {
	loader        *catalog.Loader
	mapper        *catalog.Mapper
	store         *store.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSeedReloader creates a new seed reloader.
func NewSeedReloader(
	seedFile string,
	st *store.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        catalog.NewLoader(seedFile),
		mapper:        catalog.NewMapper(),
		store:         st,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start seeds immediately, then keeps reloading on the interval and on
// manual triggers until Stop or context cancellation.
func (sr *SeedReloader) Start(ctx context.Context) error {
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed failed: %w", err)
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed catalog",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed catalog",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (sr *SeedReloader) Stop() {
	close(sr.stopCh)
}

// Reload loads the seed file and inserts the missing starter listings.
func (sr *SeedReloader) Reload(ctx context.Context) error {
	sr.logger.Info("reloading seed catalog")

	seed, err := sr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed catalog: %w", err)
	}

	drafts := sr.mapper.MapDrafts(seed)
	sr.logger.Info("loaded seed catalog",
		logger.Int("count", len(drafts)))

	existing, err := sr.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list existing listings: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, l := range existing {
		present[l.Title] = true
	}

	inserted := 0
	for _, draft := range drafts {
		if present[draft.Title] {
			continue
		}
		if _, err := sr.store.Insert(ctx, draft); err != nil {
			return fmt.Errorf("failed to insert seed listing %q: %w", draft.Title, err)
		}
		present[draft.Title] = true
		inserted++
	}

	if inserted > 0 {
		sr.logger.Info("seeded starter listings",
			logger.Int("inserted", inserted))
	}
	return nil
}
