package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/attendance"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
)

// attendanceSweeper refreshes the per-member attendance summary snapshots
// that feed voting eligibility and the roster views. The fan-out across
// members happens inside the attendance service's worker pool.
type attendanceSweeper struct {
	*periodic
	attendance attendance.Service
	clock      adapter.Clock
}

// NewAttendanceSweeper creates a sweeper that recomputes attendance
// summaries for every member with raid history on the given interval
func NewAttendanceSweeper(interval time.Duration, svc attendance.Service, clock adapter.Clock) Sweeper {
	s := &attendanceSweeper{
		attendance: svc,
		clock:      clock,
	}
	s.periodic = newPeriodic("attendance-sweeper", interval, clock, s.runSweepCycle)
	return s
}

func (s *attendanceSweeper) runSweepCycle(ctx context.Context) error {
	// nil member list means every member with attendance history
	result, err := s.attendance.BulkUpdateSummaries(ctx, s.clock.Now().UTC(), nil)
	if err != nil {
		return fmt.Errorf("failed to update attendance summaries: %w", err)
	}

	if len(result.Failed) > 0 {
		logger.WarnCtx(ctx, "Some attendance summaries failed to update",
			zap.Int("updated", result.Updated),
			zap.Int("failed", len(result.Failed)),
		)
	}
	return nil
}
