package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/etfview/etf-analyzer-backend/internal/api"
	"github.com/etfview/etf-analyzer-backend/internal/config"
	"github.com/etfview/etf-analyzer-backend/internal/database"
	"github.com/etfview/etf-analyzer-backend/internal/repository"
	"github.com/etfview/etf-analyzer-backend/internal/service"
	"github.com/etfview/etf-analyzer-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Storage.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Storage.DatabasePath)

	priceFile, err := store.NewPriceFile(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	// Create store, repositories and services
	snapshots := store.NewSnapshots()
	uploadRepo := repository.NewUploadRepository(db)

	systemService := service.NewSystemService(db)
	uploadService := service.NewUploadService(snapshots, priceFile, uploadRepo)
	portfolioService := service.NewPortfolioService(snapshots)

	// Restore the persisted price panel, if any
	if err := uploadService.RestorePrices(); err != nil {
		log.Printf("Failed to restore prices from disk: %v", err)
	}

	// Create router
	router := api.NewRouter(systemService, uploadService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Daily prune of old upload-audit rows
	retention := time.Duration(cfg.Upload.RetentionDays) * 24 * time.Hour
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		deleted, err := uploadService.PruneAudit(retention)
		if err != nil {
			log.Printf("Upload audit prune failed: %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("Pruned %d upload audit rows", deleted)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule audit prune: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		scheduler.Start()
		<-ctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	log.Println("Server exited")
}
