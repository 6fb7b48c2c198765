package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/crypsidex/digest-bot/internal/adapters/config"
	"github.com/crypsidex/digest-bot/internal/adapters/feeds"
	"github.com/crypsidex/digest-bot/internal/adapters/markets"
	"github.com/crypsidex/digest-bot/internal/adapters/telegram"
	"github.com/crypsidex/digest-bot/internal/adapters/translate"
	"github.com/crypsidex/digest-bot/internal/cache"
	"github.com/crypsidex/digest-bot/internal/health"
	"github.com/crypsidex/digest-bot/internal/workers"
	"github.com/crypsidex/digest-bot/pkg/logger"
	"github.com/crypsidex/digest-bot/pkg/worker"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Run application
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("CrypSideX digest bot starting...")

	// Load feed list and keyword sets
	sources, err := config.LoadSources(cfg.News.SourcesFile)
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}

	logger.Info("sources loaded",
		zap.Int("feeds", len(sources.Feeds)),
		zap.Int("market_terms", len(sources.Keywords.Market)),
		zap.Int("entity_terms", len(sources.Keywords.Entities)),
	)

	// Shared refresh cache and the pipeline around it
	store := cache.NewStore()

	fetcher := feeds.NewFetcher(sources.Feeds, cfg.News.PerSourceLimit, cfg.News.RequestTimeout)

	translator := translate.NewChain(
		cfg.Translate.SourceLang,
		cfg.Translate.TargetLang,
		translate.NewLibreTranslate(cfg.Translate.RequestTimeout),
		translate.NewMyMemory(cfg.Translate.RequestTimeout),
	)

	refresh := workers.NewRefreshWorker(
		store,
		fetcher,
		translator,
		markets.NewCBRProvider(cfg.Markets.RequestTimeout),
		markets.NewBinanceProvider(cfg.Markets.BTCSymbol, cfg.Markets.RequestTimeout),
		markets.NewGoldChain(cfg.Markets.RequestTimeout),
		cfg.News.MaxItems,
	)

	// Initial synchronous refresh so data is available before serving begins
	logger.Info("running initial refresh...")
	if err := refresh.Run(ctx); err != nil {
		return fmt.Errorf("initial refresh failed: %w", err)
	}

	// Background refresh loop
	periodic := worker.RunBackground(ctx, refresh, cfg.Refresh.Interval)
	defer periodic.Stop(10 * time.Second)

	// Health check server
	if cfg.Health.Enabled {
		healthServer := health.NewServer(cfg.Health.Port, store)
		go func() {
			if err := healthServer.Start(); err != nil {
				logger.Error("health server error", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = healthServer.Stop(shutdownCtx)
		}()
	}

	// Telegram bot
	bot, err := telegram.NewBot(&cfg.Telegram, store, sources.Keywords, sources.Forecast, cfg.News.TopN)
	if err != nil {
		return fmt.Errorf("failed to create telegram bot: %w", err)
	}
	defer bot.Close()

	go func() {
		if err := bot.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("telegram bot error", zap.Error(err))
		}
	}()

	logger.Info("bot is up, waiting for messages")

	// Keep service running
	<-ctx.Done()
	logger.Info("shutting down gracefully...")

	return nil
}
