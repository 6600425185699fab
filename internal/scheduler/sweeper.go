package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that perform periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start begins the sweeper's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// periodic drives a sweep function on a fixed cadence and owns the
// start/stop lifecycle shared by every sweeper in this package
type periodic struct {
	name     string
	interval time.Duration
	clock    adapter.Clock
	sweep    func(ctx context.Context) error

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

func newPeriodic(name string, interval time.Duration, clock adapter.Clock, sweep func(context.Context) error) *periodic {
	return &periodic{
		name:      name,
		interval:  interval,
		clock:     clock,
		sweep:     sweep,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (p *periodic) Name() string {
	return p.name
}

// Start begins the sweeper's main loop - runs a sweep cycle, sleeps for the
// configured interval, and repeats until the context is canceled or a stop
// is requested
func (p *periodic) Start(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		p.running.Store(false)
		close(p.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting sweeper",
		zap.String("sweeper", p.name),
		zap.Duration("interval", p.interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sweeper stopping due to context cancellation",
				zap.String("sweeper", p.name),
				zap.Error(ctx.Err()),
			)
			return nil
		case <-p.stopChan:
			logger.InfoCtx(ctx, "Sweeper stop requested", zap.String("sweeper", p.name))
			return nil
		default:
			startTime := p.clock.Now()
			if err := p.sweep(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err, zap.String("sweeper", p.name))
				}
			} else {
				logger.InfoCtx(ctx, "Sweep cycle completed",
					zap.String("sweeper", p.name),
					zap.Duration("duration", p.clock.Since(startTime)),
				)
			}
			// Interrupted sleeps fall through to the select above, which
			// observes the closed channel and exits
			p.sleep(ctx, p.interval)
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (p *periodic) Stop(ctx context.Context) error {
	if !p.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping sweeper", zap.String("sweeper", p.name))

	// Signal stop to the main loop
	close(p.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-p.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", p.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout", zap.String("sweeper", p.name))
		return ctx.Err()
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if the sleep completed.
func (p *periodic) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-p.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-p.stopChan:
		return false
	}
}
