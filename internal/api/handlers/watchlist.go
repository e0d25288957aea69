package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linknest/linknest/backend/internal/models"
	"github.com/linknest/linknest/backend/internal/store"
)

// WatchlistHandler serves the watchlist store.
type WatchlistHandler struct {
	store *store.WatchlistStore
}

func NewWatchlistHandler(watchlist *store.WatchlistStore) *WatchlistHandler {
	return &WatchlistHandler{store: watchlist}
}

func (h *WatchlistHandler) GetWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Items())
}

// AddToWatchlist takes the full market snapshot of the asset being
// flagged. Adding an asset that is already flagged is a no-op.
func (h *WatchlistHandler) AddToWatchlist(c *gin.Context) {
	var crypto models.Cryptocurrency
	if err := c.ShouldBindJSON(&crypto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if crypto.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset id is required"})
		return
	}

	h.store.Add(crypto)
	c.JSON(http.StatusOK, h.store.Items())
}

func (h *WatchlistHandler) RemoveFromWatchlist(c *gin.Context) {
	h.store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, h.store.Items())
}

func (h *WatchlistHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, models.WatchlistStatus{
		InWatchlist: h.store.Contains(c.Param("id")),
	})
}

func (h *WatchlistHandler) UpdateAlertPrice(c *gin.Context) {
	var req models.UpdateAlertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateAlertPrice(c.Param("id"), req.AlertPrice)
	c.JSON(http.StatusOK, h.store.Items())
}
