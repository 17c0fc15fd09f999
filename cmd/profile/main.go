package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/yashx/asha/internal/messenger"
	"github.com/yashx/asha/pkg/config"
	"github.com/yashx/asha/pkg/logger"
)

// One-shot tool that registers the bot's greeting, get-started button and
// persistent menu with the platform. Run it once after deploying a page token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, _, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(*cfg)
	slog.SetDefault(log)

	client := messenger.NewClient(cfg.Messenger, log)
	if err := client.SetupProfile(ctx); err != nil {
		log.Error("failed to set up messenger profile", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("messenger profile configured")
}
