package services

import (
	"context"
	"log"
	"time"

	"github.com/linknest/linknest/backend/internal/metrics"
	"github.com/linknest/linknest/backend/internal/store"
)

const defaultRefreshInterval = 5 * time.Minute

// RefreshWorker periodically re-fetches the full market list and
// refreshes the stale snapshots embedded in watchlist entries.
type RefreshWorker struct {
	market    *MarketService
	watchlist *store.WatchlistStore
	interval  time.Duration
}

// NewRefreshWorker creates the worker. A non-positive interval uses the
// default.
func NewRefreshWorker(market *MarketService, watchlist *store.WatchlistStore, interval time.Duration) *RefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &RefreshWorker{
		market:    market,
		watchlist: watchlist,
		interval:  interval,
	}
}

// Start begins the background refresh loop and blocks until ctx is
// cancelled.
func (w *RefreshWorker) Start(ctx context.Context) {
	log.Printf("Watchlist refresh worker started (interval %s)", w.interval)

	w.refresh()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Watchlist refresh worker stopping...")
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *RefreshWorker) refresh() {
	if len(w.watchlist.Items()) == 0 {
		return
	}

	coins := w.market.ListAssets(1, maxPerPage, "market_cap_desc")
	updated := w.watchlist.RefreshSnapshots(coins)

	metrics.WatchlistRefreshTotal.Inc()
	if updated > 0 {
		metrics.WatchlistRefreshUpdated.Add(float64(updated))
		log.Printf("Refreshed market snapshots for %d watchlist entries", updated)
	}
}
