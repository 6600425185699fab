package attendance

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

const (
	defaultWorkerPoolSize = 8
	defaultQueueSize      = 256
	defaultTrendDays      = 7
)

// summaryPeriods are the rolling windows a summary snapshot carries, in
// days; 0 is lifetime
var summaryPeriods = map[string]int{
	"7d":       7,
	"30d":      30,
	"60d":      60,
	"90d":      90,
	"lifetime": 0,
}

// Config holds attendance computation settings
type Config struct {
	// EligibilityThreshold is the minimum 30-day rate, in percent, for
	// voting eligibility; zero falls back to the domain default
	EligibilityThreshold decimal.Decimal
	// WorkerPoolSize and QueueSize bound the bulk-update fan-out
	WorkerPoolSize int
	QueueSize      int
}

// PeriodAttendance is one window's attendance figures
type PeriodAttendance struct {
	Attended int             `json:"attended"`
	Total    int             `json:"total"`
	Rate     decimal.Decimal `json:"rate"`
}

// TrendPoint is one day's 30-day rate in a trend series
type TrendPoint struct {
	Date time.Time       `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// BulkUpdateFailure records one member's failed summary update in a bulk run
type BulkUpdateFailure struct {
	UserID int64
	Err    error
}

// BulkUpdateResult reports the outcome of a bulk summary update
type BulkUpdateResult struct {
	Updated int
	Failed  []BulkUpdateFailure
}

// Service computes attendance rates, streaks, and voting eligibility over
// completed raids, and maintains the per-day summary snapshots that reads
// and the voting service consume.
//
//go:generate mockgen -source=service.go -destination=../mocks/attendance.go -package=mocks -mock_names=Service=MockAttendanceService
type Service interface {
	// CalculatePeriodAttendance returns a member's attendance over completed
	// raids in [baseDate-periodDays, baseDate]; periodDays 0 means lifetime,
	// measured from the member's first recorded attendance
	CalculatePeriodAttendance(ctx context.Context, userID int64, periodDays int, baseDate time.Time) (*PeriodAttendance, error)

	// CalculateAllPeriods returns the standard windows keyed "7d", "30d",
	// "60d", "90d", "lifetime"
	CalculateAllPeriods(ctx context.Context, userID int64, baseDate time.Time) (map[string]*PeriodAttendance, error)

	// CalculateStreaks returns the member's current and longest attendance
	// streaks over completed raids
	CalculateStreaks(ctx context.Context, userID int64) (current, longest int, err error)

	// IsVotingEligible reports whether the member's live 30-day rate meets
	// the eligibility threshold, returning the rate alongside
	IsVotingEligible(ctx context.Context, userID int64) (bool, decimal.Decimal, error)

	// UpdateUserSummary recomputes and upserts the member's snapshot for the day
	UpdateUserSummary(ctx context.Context, userID int64, date time.Time) (*schema.MemberAttendanceSummary, error)

	// BulkUpdateSummaries updates snapshots for the listed members, or for
	// every member with attendance history when userIDs is nil. Per-member
	// failures are collected, not fatal.
	BulkUpdateSummaries(ctx context.Context, date time.Time, userIDs []int64) (*BulkUpdateResult, error)

	// Trends returns the member's 30-day rate for each of the last N days,
	// oldest first
	Trends(ctx context.Context, userID int64, days int) ([]TrendPoint, error)

	// GuildStats aggregates the latest snapshots across the roster
	GuildStats(ctx context.Context) (*store.GuildAttendanceStats, error)
}

type service struct {
	store          store.Store
	clock          adapter.Clock
	threshold      decimal.Decimal
	workerPoolSize int
	queueSize      int
}

// NewService creates an attendance service over the store
func NewService(st store.Store, clock adapter.Clock, cfg Config) Service {
	threshold := cfg.EligibilityThreshold
	if threshold.IsZero() {
		threshold = domain.VotingEligibilityRate
	}
	workers := cfg.WorkerPoolSize
	if workers <= 0 {
		workers = defaultWorkerPoolSize
	}
	queue := cfg.QueueSize
	if queue <= 0 {
		queue = defaultQueueSize
	}

	return &service{
		store:          st,
		clock:          clock,
		threshold:      threshold,
		workerPoolSize: workers,
		queueSize:      queue,
	}
}

// dateOnly truncates a timestamp to its UTC calendar day
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// rateOf returns attended/total as a percentage rounded to two decimals,
// zero when no raids completed in the window
func rateOf(attended, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(attended)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// ComputeStreaks walks attendance marks newest first. The current streak is
// the unbroken run from the most recent completed raid; the longest streak
// is the longest run anywhere in the history.
func ComputeStreaks(history []store.AttendanceMark) (current, longest int) {
	run := 0
	unbroken := true
	for _, mark := range history {
		if mark.Attended {
			run++
			if run > longest {
				longest = run
			}
			if unbroken {
				current = run
			}
		} else {
			run = 0
			unbroken = false
		}
	}
	return current, longest
}

// CalculatePeriodAttendance returns a member's attendance over completed
// raids in the window ending at baseDate
func (s *service) CalculatePeriodAttendance(ctx context.Context, userID int64, periodDays int, baseDate time.Time) (*PeriodAttendance, error) {
	var from time.Time
	if periodDays == 0 {
		first, err := s.store.GetFirstAttendanceDate(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get first attendance: %w", err)
		}
		if first == nil {
			return &PeriodAttendance{Rate: decimal.Zero}, nil
		}
		from = dateOnly(*first)
	} else {
		from = baseDate.AddDate(0, 0, -periodDays)
	}

	total, err := s.store.CountCompletedRaids(ctx, &from, &baseDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed raids: %w", err)
	}
	attended, err := s.store.CountUserAttendance(ctx, userID, &from, &baseDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}

	return &PeriodAttendance{
		Attended: attended,
		Total:    total,
		Rate:     rateOf(attended, total),
	}, nil
}

// CalculateAllPeriods returns every standard window for a member
func (s *service) CalculateAllPeriods(ctx context.Context, userID int64, baseDate time.Time) (map[string]*PeriodAttendance, error) {
	results := make(map[string]*PeriodAttendance, len(summaryPeriods))
	for name, days := range summaryPeriods {
		period, err := s.CalculatePeriodAttendance(ctx, userID, days, baseDate)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate %s attendance: %w", name, err)
		}
		results[name] = period
	}
	return results, nil
}

// CalculateStreaks returns the member's current and longest attendance
// streaks
func (s *service) CalculateStreaks(ctx context.Context, userID int64) (int, int, error) {
	history, err := s.store.GetUserAttendanceHistory(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get attendance history: %w", err)
	}
	current, longest := ComputeStreaks(history)
	return current, longest, nil
}

// IsVotingEligible reports whether the member's live 30-day rate meets the
// eligibility threshold
func (s *service) IsVotingEligible(ctx context.Context, userID int64) (bool, decimal.Decimal, error) {
	period, err := s.CalculatePeriodAttendance(ctx, userID, 30, s.clock.Now())
	if err != nil {
		return false, decimal.Zero, err
	}
	return period.Rate.GreaterThanOrEqual(s.threshold), period.Rate, nil
}

// UpdateUserSummary recomputes and upserts the member's snapshot for the day
func (s *service) UpdateUserSummary(ctx context.Context, userID int64, date time.Time) (*schema.MemberAttendanceSummary, error) {
	day := dateOnly(date)

	periods, err := s.CalculateAllPeriods(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	current, longest, err := s.CalculateStreaks(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &schema.MemberAttendanceSummary{
		UserID:           userID,
		SummaryDate:      day,
		Attended7d:       periods["7d"].Attended,
		Total7d:          periods["7d"].Total,
		Rate7d:           periods["7d"].Rate,
		Attended30d:      periods["30d"].Attended,
		Total30d:         periods["30d"].Total,
		Rate30d:          periods["30d"].Rate,
		Attended60d:      periods["60d"].Attended,
		Total60d:         periods["60d"].Total,
		Rate60d:          periods["60d"].Rate,
		Attended90d:      periods["90d"].Attended,
		Total90d:         periods["90d"].Total,
		Rate90d:          periods["90d"].Rate,
		AttendedLifetime: periods["lifetime"].Attended,
		TotalLifetime:    periods["lifetime"].Total,
		RateLifetime:     periods["lifetime"].Rate,
		IsVotingEligible: periods["30d"].Rate.GreaterThanOrEqual(s.threshold),
		CurrentStreak:    current,
		LongestStreak:    longest,
	}

	if err := s.store.UpsertMemberAttendanceSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to upsert attendance summary: %w", err)
	}
	return summary, nil
}

// BulkUpdateSummaries updates snapshots for the listed members, fanning out
// over a worker pool
func (s *service) BulkUpdateSummaries(ctx context.Context, date time.Time, userIDs []int64) (*BulkUpdateResult, error) {
	if userIDs == nil {
		var err error
		userIDs, err = s.store.ListUserIDsWithAttendance(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users with attendance: %w", err)
		}
	}

	pool := pond.NewPool(
		s.workerPoolSize,
		pond.WithQueueSize(s.queueSize),
		pond.WithContext(ctx),
	)

	var updated atomic.Int32
	var mu sync.Mutex
	var failed []BulkUpdateFailure

	for _, id := range userIDs {
		pool.Submit(func() {
			if _, err := s.UpdateUserSummary(ctx, id, date); err != nil {
				logger.WarnCtx(ctx, "Attendance summary update failed",
					zap.Int64("userID", id),
					zap.Error(err))
				mu.Lock()
				failed = append(failed, BulkUpdateFailure{UserID: id, Err: err})
				mu.Unlock()
				return
			}
			updated.Add(1)
		})
	}
	pool.StopAndWait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BulkUpdateResult{
		Updated: int(updated.Load()),
		Failed:  failed,
	}
	logger.InfoCtx(ctx, "Attendance summaries updated",
		zap.Int("updated", result.Updated),
		zap.Int("failed", len(result.Failed)),
		zap.Time("date", dateOnly(date)))
	return result, nil
}

// Trends returns the member's 30-day rate for each of the last N days
func (s *service) Trends(ctx context.Context, userID int64, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = defaultTrendDays
	}

	base := dateOnly(s.clock.Now())
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		day := base.AddDate(0, 0, -i)
		period, err := s.CalculatePeriodAttendance(ctx, userID, 30, day)
		if err != nil {
			return nil, err
		}
		points = append(points, TrendPoint{Date: day, Rate: period.Rate})
	}
	return points, nil
}

// GuildStats aggregates the latest snapshots across the roster
func (s *service) GuildStats(ctx context.Context) (*store.GuildAttendanceStats, error) {
	return s.store.GetGuildAttendanceStats(ctx)
}
