package models

import (
	"time"
)

// WatchlistItem flags one asset the user follows. ID equals the
// underlying Cryptocurrency ID, so at most one entry exists per asset.
// The embedded snapshot may go stale; the refresh worker updates it
// opportunistically from the full market list.
type WatchlistItem struct {
	ID             string         `json:"id"`
	Cryptocurrency Cryptocurrency `json:"cryptocurrency"`
	AddedAt        time.Time      `json:"addedAt"`
	AlertPrice     *float64       `json:"alertPrice,omitempty"`
}

type UpdateAlertPriceRequest struct {
	AlertPrice float64 `json:"alertPrice" binding:"required"`
}

// WatchlistStatus is the membership-check response.
type WatchlistStatus struct {
	InWatchlist bool `json:"in_watchlist"`
}
