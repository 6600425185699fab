package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/bridge"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/discord"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/notification"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/ratelimit"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/scheduler"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadNotifierConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "notifier",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Notifier")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	ioAdapter := adapter.NewIO()
	httpClient := adapter.NewHTTPClient(cfg.Discord.HTTPTimeout)
	natsJS := adapter.NewNatsJetStream()

	// Connect to Redis for the distributed rate limiter
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}()

	// Initialize Discord webhook client
	discordClient := discord.NewClient(cfg.Discord, httpClient, jsonAdapter, ioAdapter, clock)

	// Initialize the rate-limiting proxy with one bucket per webhook
	webhookNames := notification.WebhookNames(cfg.Discord)
	proxy, err := ratelimit.NewProxy(cfg.RateLimit, webhookNames, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	defer func() {
		if err := proxy.Close(); err != nil {
			logger.Warn("Failed to close rate limiter", zap.Error(err))
		}
	}()
	logger.InfoCtx(ctx, "Initialized rate limiter",
		zap.Strings("webhooks", webhookNames),
		zap.Int("rate", cfg.RateLimit.Rate),
		zap.Duration("period", cfg.RateLimit.Period),
	)

	// Initialize the outbox dispatcher
	dispatcher := notification.NewDispatcher(dataStore, discordClient, proxy, clock, cfg.Discord, cfg.Outbox)

	// Create the broker bridge
	notificationBridge, err := bridge.NewBridge(cfg.NATS, natsJS, dispatcher, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create notification bridge", zap.Error(err))
	}
	defer notificationBridge.Close()
	logger.InfoCtx(ctx, "Notification bridge created",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName),
	)

	// The sweeper redelivers retry-due and stale outbox rows the broker
	// path missed
	outboxSweeper := scheduler.NewOutboxSweeper(cfg.Outbox.SweepInterval, dispatcher, clock)

	errCh := make(chan error, 2)
	go func() {
		if err := notificationBridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("bridge: %w", err)
		}
	}()
	go func() {
		if err := outboxSweeper.Start(ctx); err != nil {
			errCh <- fmt.Errorf("%s: %w", outboxSweeper.Name(), err)
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the bridge and sweeper
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := outboxSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", outboxSweeper.Name()))
	}

	logger.InfoCtx(shutdownCtx, "Notifier stopped")
}
