package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/LevelInfo_Go/internal/bootstrap"
	"github.com/osse101/LevelInfo_Go/internal/config"
	"github.com/osse101/LevelInfo_Go/internal/playerinfo"
	"github.com/osse101/LevelInfo_Go/internal/server"
)

// @title Level Info API
// @version 1.0
// @description Level progression statistics for game characters.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	warnings, _ := cfg.ValidateWithWarnings()
	bootstrap.LogStartup(cfg.Environment, cfg.Version, cfg.Addr(), cfg.PlayerInfoURL, warnings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := playerinfo.NewClient(cfg.PlayerInfoURL, cfg.PlayerInfoRegion, cfg.PlayerInfoTimeout)
	srv := server.NewServer(cfg, client)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info(bootstrap.LogMsgShutdownSignal)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv})
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
