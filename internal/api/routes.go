package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/linknest/linknest/backend/internal/api/handlers"
	"github.com/linknest/linknest/backend/internal/config"
	"github.com/linknest/linknest/backend/internal/services"
	"github.com/linknest/linknest/backend/internal/store"
)

func SetupRouter(cfg *config.Config, market *services.MarketService, linkStore *store.LinkStore, watchlistStore *store.WatchlistStore) *gin.Engine {
	router := gin.Default()
	router.Use(metricsMiddleware())

	frontendPath := cfg.FrontendDistPath
	serveFrontend := frontendPath != "" && dirExists(frontendPath)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = false // Explicitly set
	router.Use(cors.New(corsConfig))

	// Initialize handlers
	marketHandler := handlers.NewMarketHandler(market)
	linksHandler := handlers.NewLinksHandler(linkStore)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistStore)

	// API routes
	api := router.Group("/api")
	{
		// Market data gateway (read-only, always answers 200)
		crypto := api.Group("/crypto")
		{
			crypto.GET("/list", marketHandler.ListAssets)
			crypto.GET("/coin/:id", marketHandler.GetAssetDetail)
			crypto.GET("/chart/:id", marketHandler.GetChart)
			crypto.GET("/global", marketHandler.GetGlobalStats)
			crypto.GET("/trending", marketHandler.GetTrending)
			crypto.GET("/search", marketHandler.Search)
			crypto.GET("/news", marketHandler.GetNews)
		}

		// Link page routes
		links := api.Group("/links")
		{
			links.GET("", linksHandler.GetLinks)
			links.POST("", linksHandler.AddLink)
			links.PUT("/reorder", linksHandler.ReorderLinks)
			links.PUT("/:id", linksHandler.UpdateLink)
			links.DELETE("/:id", linksHandler.DeleteLink)
			links.POST("/:id/toggle", linksHandler.ToggleLinkActive)
			links.POST("/:id/click", linksHandler.IncrementLinkClicks)
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", linksHandler.GetProfile)
			profile.PUT("", linksHandler.UpdateProfile)
			profile.POST("/social", linksHandler.AddSocialLink)
			profile.PUT("/social/:id", linksHandler.UpdateSocialLink)
			profile.DELETE("/social/:id", linksHandler.DeleteSocialLink)
			profile.POST("/social/:id/toggle", linksHandler.ToggleSocialActive)
		}

		// Watchlist routes
		watchlist := api.Group("/watchlist")
		{
			watchlist.GET("", watchlistHandler.GetWatchlist)
			watchlist.POST("", watchlistHandler.AddToWatchlist)
			watchlist.GET("/:id", watchlistHandler.GetStatus)
			watchlist.DELETE("/:id", watchlistHandler.RemoveFromWatchlist)
			watchlist.PUT("/:id/alert", watchlistHandler.UpdateAlertPrice)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve frontend static files
	if serveFrontend {
		indexPath := filepath.Join(frontendPath, "index.html")

		// Serve static assets
		router.Static("/assets", filepath.Join(frontendPath, "assets"))

		// Serve other static files (favicon, etc.)
		router.StaticFile("/vite.svg", filepath.Join(frontendPath, "vite.svg"))

		// Serve root index.html
		router.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})

		// SPA fallback - serve index.html for all non-API routes
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path

			// Don't serve index.html for API routes
			if strings.HasPrefix(path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}

			// Serve index.html for SPA routing
			c.File(indexPath)
		})
	}

	return router
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
