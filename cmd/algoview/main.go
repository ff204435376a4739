package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/algoview/algoview/config"
	"github.com/algoview/algoview/scene"
	"github.com/algoview/algoview/server"
)

func main() {
	cfgPath := flag.String("config", "configs/algoview.yaml", "Path to YAML config")
	flag.Parse()

	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	scn := scene.New(
		scene.WithDebounceWindow(cfg.Window()),
		scene.WithDefaultSpeed(cfg.Speed()),
	)
	defer scn.Close()

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	if loader, err := config.NewLoader(*cfgPath); err == nil {
		loader.OnChange(func(newCfg *config.Config) {
			scn.SetDefaultSpeed(newCfg.Speed())
			slog.Info("config hot-reloaded", "playback_speed_ms", newCfg.PlaybackSpeedMs)
		})
		if stopWatch, err := loader.Watch(); err != nil {
			slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	} else {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.New(scn),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	slog.Info("goodbye")
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
