package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
)

// votingSweeper closes voting periods whose deadline has passed and then
// sends any due deadline reminders for the periods still open. Closing
// runs first so a period that just expired is decided rather than
// reminded about.
type votingSweeper struct {
	*periodic
	recruitment recruitment.Service
}

// NewVotingSweeper creates a sweeper that processes expired voting periods
// and deadline reminders on the given interval
func NewVotingSweeper(interval time.Duration, svc recruitment.Service, clock adapter.Clock) Sweeper {
	s := &votingSweeper{
		recruitment: svc,
	}
	s.periodic = newPeriodic("voting-sweeper", interval, clock, s.runSweepCycle)
	return s
}

func (s *votingSweeper) runSweepCycle(ctx context.Context) error {
	// Expired periods are decided by the system, not a member
	expired, err := s.recruitment.ProcessExpiredVotingPeriods(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to process expired voting periods: %w", err)
	}
	if expired.Closed > 0 || len(expired.Failed) > 0 {
		logger.InfoCtx(ctx, "Expired voting periods processed",
			zap.Int("closed", expired.Closed),
			zap.Int("approved", expired.Approved),
			zap.Int("rejected", expired.Rejected),
			zap.Int("failed", len(expired.Failed)),
		)
	}

	reminders, err := s.recruitment.SendDeadlineReminders(ctx)
	if err != nil {
		return fmt.Errorf("failed to send deadline reminders: %w", err)
	}
	if reminders.Sent > 0 || len(reminders.Failed) > 0 {
		logger.InfoCtx(ctx, "Deadline reminders sent",
			zap.Int("sent", reminders.Sent),
			zap.Int("failed", len(reminders.Failed)),
		)
	}
	return nil
}
