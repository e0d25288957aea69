package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linknest/linknest/backend/internal/api"
	"github.com/linknest/linknest/backend/internal/config"
	"github.com/linknest/linknest/backend/internal/database"
	"github.com/linknest/linknest/backend/internal/services"
	"github.com/linknest/linknest/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := database.Initialize(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Rehydrate the persisted stores
	persister := store.NewSnapshotDB(database.GetDB())
	linkStore := store.NewLinkStore(persister)
	watchlistStore := store.NewWatchlistStore(persister)
	log.Printf("Loaded %d links and %d watchlist entries", len(linkStore.Links()), len(watchlistStore.Items()))

	// Initialize upstream clients and the gateway facade
	coinGecko := services.NewCoinGeckoClient(cfg.CoinGeckoURL)
	newsClient := services.NewCryptoCompareClient(cfg.NewsURL)
	marketService := services.NewMarketService(coinGecko, newsClient)

	// Initialize the watchlist snapshot refresher
	refreshWorker := services.NewRefreshWorker(marketService, watchlistStore, cfg.RefreshInterval)

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the refresh worker in background
	go refreshWorker.Start(ctx)

	// Setup router
	router := api.SetupRouter(cfg, marketService, linkStore, watchlistStore)

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel the context to stop the refresh worker
	cancel()

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
