package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scout/internal/fspath"
	"scout/internal/server/api"
	"scout/internal/server/config"
	"scout/internal/server/database"
	"scout/internal/server/service"
	"scout/internal/server/storage"
)

func main() {
	// Structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg := config.Load()
	slog.Info("configuration loaded",
		"port", cfg.Port,
		"root_path", cfg.RootPath,
		"archive_path", cfg.ArchivePath,
		"max_archive_size", cfg.MaxArchiveSize,
		"archive_ttl", cfg.ArchiveTTL,
	)

	// Connect to database
	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := db.RunMigrations(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations complete")

	// Initialize the archive cache
	archiveDir, err := fspath.QualifyDir(cfg.ArchivePath)
	if err != nil {
		slog.Error("invalid archive path", "path", cfg.ArchivePath, "error", err)
		os.Exit(1)
	}
	cache := storage.NewArchiveCache(archiveDir)
	if err := cache.EnsureDir(); err != nil {
		slog.Error("failed to initialize archive cache", "error", err)
		os.Exit(1)
	}
	slog.Info("archive cache initialized", "path", archiveDir.AsAbsoluteString())

	// Initialize repository and service
	repo := database.NewRepository(db)
	svc, err := service.NewScanService(repo, cache, cfg)
	if err != nil {
		slog.Error("failed to initialize scan service", "error", err)
		os.Exit(1)
	}
	slog.Info("serving root", "root", svc.Root().AsAbsoluteString())

	// Start cleanup service
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	cleanup := storage.NewCleanupService(repo, cache, cfg.ArchiveTTL, cfg.CleanupInterval)
	cleanup.Start(cleanupCtx)

	// Setup HTTP router
	handler := api.NewHandler(svc, db)
	e := api.SetupRouter(handler, cfg)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		slog.Info("starting server", "addr", addr, "base_url", cfg.BaseURL)
		if err := e.Start(addr); err != nil {
			slog.Info("server stopped", "reason", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutting down", "signal", sig)

	// Stop accepting new requests, finish in-flight with 30s timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	// Stop cleanup service
	cleanupCancel()
	cleanup.Wait()

	slog.Info("server exited cleanly")
}
