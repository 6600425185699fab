package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/middleware"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/rest"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/server"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/attendance"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/ledger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/loot"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/providers/jetstream"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/raids"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/roster"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Kromrif Planning API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Route reads through the replica when one is configured
	if cfg.Database.ReadHost != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.Database.ReadDSN())},
		}))
		if err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err), zap.String("read_host", cfg.Database.ReadHost))
		}
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
	natsJS := adapter.NewNatsJetStream()

	// Connect to NATS JetStream for notification publishing
	publisher, err := jetstream.NewPublisher(cfg.NATS, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize domain services
	attendanceService := attendance.NewService(dataStore, clock, attendance.Config{
		EligibilityThreshold: decimal.NewFromFloat(cfg.Voting.EligibilityThreshold),
	})
	services := rest.Services{
		Ledger:     ledger.NewService(dataStore, clock),
		Attendance: attendanceService,
		Raids:      raids.NewService(dataStore, clock),
		Loot:       loot.NewService(dataStore, publisher),
		Roster:     roster.NewService(dataStore, publisher),
		Recruitment: recruitment.NewService(dataStore, attendanceService, publisher, clock, recruitment.Config{
			VotingPeriod:      cfg.Voting.Period,
			MinimumVotes:      cfg.Voting.MinimumVotes,
			ApprovalThreshold: decimal.NewFromFloat(cfg.Voting.ApprovalThreshold),
			ReminderTiers:     cfg.Voting.ReminderTiers,
			StartingPoints:    decimal.NewFromFloat(cfg.Recruitment.StartingPoints),
			DefaultRank:       cfg.Recruitment.DefaultRank,
			DefaultGroups:     cfg.Recruitment.DefaultGroups,
			BatchSize:         cfg.Recruitment.BatchSize,
		}),
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	authConfig := middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, services, authConfig)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
