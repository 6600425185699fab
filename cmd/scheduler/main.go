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
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/attendance"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/providers/jetstream"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
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
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
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
			"service": "scheduler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Scheduler")

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
		WorkerPoolSize:       cfg.Worker.WorkerPoolSize,
		QueueSize:            cfg.Worker.WorkerQueueSize,
	})
	recruitmentService := recruitment.NewService(dataStore, attendanceService, publisher, clock, recruitment.Config{
		VotingPeriod:      cfg.Voting.Period,
		MinimumVotes:      cfg.Voting.MinimumVotes,
		ApprovalThreshold: decimal.NewFromFloat(cfg.Voting.ApprovalThreshold),
		ReminderTiers:     cfg.Voting.ReminderTiers,
		StartingPoints:    decimal.NewFromFloat(cfg.Recruitment.StartingPoints),
		DefaultRank:       cfg.Recruitment.DefaultRank,
		DefaultGroups:     cfg.Recruitment.DefaultGroups,
		BatchSize:         cfg.Recruitment.BatchSize,
	})

	// Initialize sweepers
	sweepers := []scheduler.Sweeper{
		scheduler.NewAttendanceSweeper(cfg.AttendanceInterval, attendanceService, clock),
		scheduler.NewVotingSweeper(cfg.VotingInterval, recruitmentService, clock),
		scheduler.NewProvisioningSweeper(cfg.RecruitmentInterval, recruitmentService, clock, cfg.Recruitment.BatchSize),
		scheduler.NewDailySummarySweeper(cfg.DailySummaryHour, dataStore, publisher, clock),
	}
	logger.InfoCtx(ctx, "Initialized sweepers",
		zap.Int("count", len(sweepers)),
		zap.Duration("attendance_interval", cfg.AttendanceInterval),
		zap.Duration("voting_interval", cfg.VotingInterval),
		zap.Duration("recruitment_interval", cfg.RecruitmentInterval),
		zap.Int("daily_summary_hour", cfg.DailySummaryHour),
	)

	// Start each sweeper in its own goroutine
	errCh := make(chan error, len(sweepers))
	for _, sw := range sweepers {
		go func(sw scheduler.Sweeper) {
			if err := sw.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%s: %w", sw.Name(), err)
			}
		}(sw)
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	for _, sw := range sweepers {
		if err := sw.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", sw.Name()))
		}
	}

	logger.InfoCtx(shutdownCtx, "Scheduler stopped")
}
