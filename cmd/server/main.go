package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codyseavey/tcg-roi/internal/api"
	"github.com/codyseavey/tcg-roi/internal/catalog"
	"github.com/codyseavey/tcg-roi/internal/config"
	"github.com/codyseavey/tcg-roi/internal/database"
	"github.com/codyseavey/tcg-roi/internal/services"
)

func main() {
	cfg := config.Load()

	if cfg.RapidAPIKey == "" {
		log.Println("WARNING: RAPIDAPI_KEY is not set, catalog requests will fail")
	}

	// Initialize database
	if err := database.Initialize(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize services
	client := catalog.NewClient(cfg.RapidAPIKey)
	resolver := services.NewSetResolver(client)
	cardService := services.NewCardService(client, resolver, services.CardStrategy(cfg.CardStrategy))
	productService := services.NewProductService(client)
	analyzer := services.NewAnalyzer()
	analysisService := services.NewAnalysisService(cardService, productService, analyzer)
	snapshotService := services.NewSnapshotService(database.GetDB())

	reportWorker := services.NewReportWorker(analysisService, snapshotService,
		cfg.Watchlist, cfg.TopCardLimit, cfg.ReportInterval)

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start report worker in background with panic recovery
	go func() {
		for {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("PANIC in report worker: %v - restarting in 30 seconds", r)
					}
				}()
				reportWorker.Start(ctx)
			}()

			select {
			case <-ctx.Done():
				return // Graceful shutdown
			case <-time.After(30 * time.Second):
				log.Println("Report worker restarting after panic recovery...")
			}
		}
	}()

	// Setup router
	router := api.SetupRouter(api.RouterDeps{
		Analysis:     analysisService,
		Resolver:     resolver,
		Cards:        cardService,
		Products:     productService,
		Worker:       reportWorker,
		Snapshots:    snapshotService,
		TopCardLimit: cfg.TopCardLimit,
		CORSOrigins:  cfg.CORSOrigins,
	})

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

	// Cancel the context to stop the report worker
	cancel()

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
