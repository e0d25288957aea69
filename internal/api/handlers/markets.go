package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linknest/linknest/backend/internal/services"
)

// MarketHandler serves the read-only market data gateway. Every route
// answers 200 with data: upstream failures are absorbed by the facade
// and replaced with fallback payloads.
type MarketHandler struct {
	market *services.MarketService
}

func NewMarketHandler(market *services.MarketService) *MarketHandler {
	return &MarketHandler{market: market}
}

func (h *MarketHandler) ListAssets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	order := c.DefaultQuery("order", "market_cap_desc")

	c.JSON(http.StatusOK, h.market.ListAssets(page, perPage, order))
}

func (h *MarketHandler) GetAssetDetail(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.GetAssetDetail(c.Param("id")))
}

func (h *MarketHandler) GetChart(c *gin.Context) {
	id := c.Param("id")
	days := c.DefaultQuery("days", "7")

	c.JSON(http.StatusOK, h.market.GetChart(id, days))
}

func (h *MarketHandler) GetGlobalStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.GetGlobalStats())
}

func (h *MarketHandler) GetTrending(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.GetTrending())
}

func (h *MarketHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.Search(c.Query("query")))
}

func (h *MarketHandler) GetNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.GetNews())
}
