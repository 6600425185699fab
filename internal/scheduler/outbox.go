package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/notification"
)

// outboxSweeper redelivers outbox rows the live broker path missed: rows
// whose publish nudge was lost, whose consumer crashed mid-delivery, or
// whose retry backoff has elapsed. It runs inside the notifier next to the
// stream consumer.
type outboxSweeper struct {
	*periodic
	dispatcher notification.Dispatcher
}

// NewOutboxSweeper creates a sweeper that dispatches pending and stale
// outbox rows on the given interval
func NewOutboxSweeper(interval time.Duration, d notification.Dispatcher, clock adapter.Clock) Sweeper {
	s := &outboxSweeper{
		dispatcher: d,
	}
	s.periodic = newPeriodic("outbox-sweeper", interval, clock, s.runSweepCycle)
	return s
}

func (s *outboxSweeper) runSweepCycle(ctx context.Context) error {
	claimed, err := s.dispatcher.Sweep(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep outbox: %w", err)
	}
	if claimed > 0 {
		logger.InfoCtx(ctx, "Outbox rows redispatched", zap.Int("claimed", claimed))
	}
	return nil
}
