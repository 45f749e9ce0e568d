package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"cuebox/src/features/analyze"
	"cuebox/src/features/collection"
	"cuebox/src/features/config"
	"cuebox/src/features/export"
	"cuebox/src/features/hosting"
	"cuebox/src/features/logging"
	"cuebox/src/features/metrics"
	"cuebox/src/features/resolver"
	"cuebox/src/features/timeline"
	"cuebox/src/infra/database"
	"cuebox/src/infra/tag"
	"cuebox/src/infra/watcher"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment overrides before the config file
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	metrics.InitializeMetrics()

	// Load the collection export
	collectionService, err := collection.NewService(cfgManager.Get().CollectionPath)
	if err != nil {
		log.Fatalf("failed to load collection: %v", err)
	}

	// Create the resolver service
	resolverService := resolver.NewService(collectionService)

	// Create the analyze service
	tagReader := tag.NewTagReader()
	analyzeService := analyze.NewService(collectionService, tagReader)

	// Create the export service
	snapshotWriter := database.NewSqliteSnapshotWriter()
	exportService := export.NewService(collectionService, snapshotWriter, cfgManager)

	// Create the metrics service
	metricsService := metrics.NewService(collectionService)

	// Load the timeline adapter if configured
	var timelineService *timeline.Service
	if cfgManager.Get().Timeline.Enabled {
		timelineService, err = timeline.NewService(cfgManager.Get().Timeline.Path)
		if err != nil {
			slog.Error("Failed to load timeline, continuing without it", "error", err)
		}
	}

	// Watch the export file and reload on change
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var collectionWatcher *watcher.CollectionWatcher
	if cfgManager.Get().Watcher.Enabled {
		collectionWatcher, err = watcher.NewCollectionWatcher(cfgManager.Get().CollectionPath, func() {
			if err := collectionService.Reload(); err != nil {
				slog.Error("Watcher-triggered reload failed", "error", err)
			}
		})
		if err != nil {
			slog.Error("Failed to initialize collection watcher", "error", err)
		} else if err := collectionWatcher.Start(ctx); err != nil {
			slog.Error("Failed to start collection watcher", "error", err)
		}
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, collectionService, resolverService, analyzeService, exportService, timelineService, metricsService)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	if collectionWatcher != nil {
		collectionWatcher.Stop()
		slog.Info("Collection watcher stopped")
	}

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
