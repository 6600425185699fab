package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/messaging"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
)

// DAILY_SUMMARY_CHECK_INTERVAL is how often the sweeper checks whether the
// summary hour has arrived
const DAILY_SUMMARY_CHECK_INTERVAL = 10 * time.Minute

// dailySummarySweeper posts one digest of the day's recruitment and roster
// activity to the officers channel at a fixed UTC hour. The last posted
// date is kept in memory only; a restart during the summary hour may post
// a second digest for the day.
type dailySummarySweeper struct {
	*periodic
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	hour      int
	lastSent  string
}

// NewDailySummarySweeper creates a sweeper that enqueues the daily activity
// summary once per day at the given UTC hour
func NewDailySummarySweeper(hour int, st store.Store, pub messaging.Publisher, clock adapter.Clock) Sweeper {
	s := &dailySummarySweeper{
		store:     st,
		publisher: pub,
		clock:     clock,
		hour:      hour,
	}
	s.periodic = newPeriodic("daily-summary-sweeper", DAILY_SUMMARY_CHECK_INTERVAL, clock, s.runSweepCycle)
	return s
}

func (s *dailySummarySweeper) runSweepCycle(ctx context.Context) error {
	now := s.clock.Now().UTC()
	if now.Hour() != s.hour {
		return nil
	}
	day := now.Format(time.DateOnly)
	if s.lastSent == day {
		return nil
	}

	counts, err := s.store.GetDailySummaryCounts(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to aggregate daily summary counts: %w", err)
	}

	event, err := domain.NewNotificationEvent(domain.NotificationDailySummary, domain.ChannelOfficers, domain.DailySummaryPayload{
		Date:              day,
		NewApplications:   counts.NewApplications,
		VotingOpened:      counts.VotingOpened,
		VotingClosed:      counts.VotingClosed,
		Approved:          counts.Approved,
		Rejected:          counts.Rejected,
		CharactersCreated: counts.CharactersCreated,
	})
	if err != nil {
		return fmt.Errorf("failed to build daily summary event: %w", err)
	}

	if err := s.store.EnqueueNotification(ctx, event); err != nil {
		return fmt.Errorf("failed to enqueue daily summary: %w", err)
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	s.lastSent = day
	logger.InfoCtx(ctx, "Daily summary queued",
		zap.String("date", day),
		zap.Int64("newApplications", counts.NewApplications),
		zap.Int64("votingClosed", counts.VotingClosed),
		zap.Int64("charactersCreated", counts.CharactersCreated),
	)
	return nil
}
