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

	"github.com/jonboulle/clockwork"
	"github.com/yislamovic/scheduler-v2/internal/config"
	"github.com/yislamovic/scheduler-v2/internal/logging"
	"github.com/yislamovic/scheduler-v2/internal/seed"
	"github.com/yislamovic/scheduler-v2/internal/server"
	"github.com/yislamovic/scheduler-v2/internal/session"
	"github.com/yislamovic/scheduler-v2/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Starting interview scheduler", "version", version.Get().Version, "env", cfg.AppEnv)

	limits := session.NewLimits(cfg.MaxSessions, cfg.SessionsPerSecond, cfg.SessionBurst)
	store := session.NewStore(clockwork.NewRealClock(), seed.Schedule, limits)

	stopSweeper := store.StartSweeper(cfg.SessionSweepInterval, cfg.SessionMaxAge)
	defer stopSweeper()
	slog.Info("Session eviction sweep scheduled", "interval", cfg.SessionSweepInterval, "max_age", cfg.SessionMaxAge)

	srv := server.NewServer(cfg, store)

	done := make(chan struct{})
	go func() {
		defer close(done)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("Shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Server stopped")
}
