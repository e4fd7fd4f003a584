package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pedrororo/jobs-explorer/internal/config"
	"github.com/pedrororo/jobs-explorer/internal/jobs"
	"github.com/pedrororo/jobs-explorer/internal/platform/sqlite"
	snaprepo "github.com/pedrororo/jobs-explorer/internal/repository/snapshot"
	"github.com/pedrororo/jobs-explorer/internal/server"
	"github.com/pedrororo/jobs-explorer/internal/snapshot"
)

func main() {
	cfg := config.Load()

	// Root context: cancelled on SIGINT/SIGTERM so the refresher and in-flight
	// requests wind down promptly during graceful shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Open database (snapshot load history)
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	historyRepo := snaprepo.NewRepository(db.DB)

	// Snapshot source, cache, and engine service
	source := snapshot.NewSource(cfg.DataPath, cfg.Delimiter)
	cache := jobs.NewCache(source, historyRepo)
	jobSvc := jobs.NewService(cache, historyRepo, cfg.Delimiter)

	// Periodic cache warm so file replacements are picked up between requests.
	refresher := jobs.NewRefresher(cache, cfg.RefreshSpec)
	if err := refresher.Start(rootCtx); err != nil {
		slog.Error("failed to start refresher", "error", err)
		os.Exit(1)
	}

	// HTTP server — rootCtx is used as BaseContext so every request context
	// inherits from it and is cancelled on shutdown.
	srv := server.New(rootCtx, cfg.Port, jobSvc)

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("server started", "port", cfg.Port, "data", cfg.DataPath)
	<-done

	// Cancel root context first so in-flight requests begin winding down,
	// then stop the refresher and drain connections with a deadline.
	rootCancel()
	refresher.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
