package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kapu/creator-insight-go/internal/app"
	"github.com/kapu/creator-insight-go/internal/config"
	"github.com/kapu/creator-insight-go/internal/util"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Creator Insight starting...",
		zap.String("version", "1.0.0"),
		zap.String("log_level", cfg.Logging.Level),
		zap.Int("channels", len(cfg.YouTube.ChannelIDs)),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	container.Scheduler.Start(ctx)

	logger.Info("Collection scheduler running, waiting for signals...")

	sig := <-sigCh
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("Shutting down gracefully...")
	container.Scheduler.Stop()
	cancel()

	logger.Info("Shutdown complete")
}
