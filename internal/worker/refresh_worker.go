package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/VeloraJewelry/storefront_api/internal/service"
)

// RefreshWorker periodically refreshes the catalog snapshot from the
// commerce platform.
type RefreshWorker struct {
	catalogService *service.CatalogService
	interval       time.Duration
}

// NewRefreshWorker constructs a RefreshWorker.
func NewRefreshWorker(catalogService *service.CatalogService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		catalogService: catalogService,
		interval:       interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *RefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog refresh worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Catalog refresh worker stopped")
			return
		}
	}
}

func (w *RefreshWorker) run(ctx context.Context) {
	log.Info().Msg("Refreshing catalog snapshot...")

	start := time.Now()
	if err := w.catalogService.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh catalog, keeping previous snapshot")
		return
	}

	log.Info().Dur("duration", time.Since(start)).Msg("Catalog refresh completed")
}
