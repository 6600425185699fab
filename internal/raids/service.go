package raids

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// CreateEventInput defines a raid event template
type CreateEventInput struct {
	Name        string
	Description string
	// BasePoints is awarded to every attendee when the raid pays out
	BasePoints decimal.Decimal
	// OnTimeBonus is awarded on top of BasePoints to on-time attendees
	OnTimeBonus decimal.Decimal
}

// CreateRaidInput schedules a raid from an event template
type CreateRaidInput struct {
	EventID int64
	// Name overrides the template name when set
	Name        string
	ScheduledAt time.Time
	Notes       string
	CreatedBy   *int64
}

// RecordAttendanceInput marks one member present at a raid
type RecordAttendanceInput struct {
	RaidID        int64
	UserID        int64
	CharacterName string
	OnTime        bool
	RecordedBy    *int64
}

// Service manages raid event templates, scheduled raids, per-raid attendance
// rolls, and the one-shot DKP payout for completed raids.
//
//go:generate mockgen -source=service.go -destination=../mocks/raids.go -package=mocks -mock_names=Service=MockRaidsService
type Service interface {
	// CreateEvent creates a raid event template
	CreateEvent(ctx context.Context, input CreateEventInput) (*schema.Event, error)

	// GetEvent retrieves an event template by ID
	GetEvent(ctx context.Context, eventID int64) (*schema.Event, error)

	// ListEvents lists event templates, optionally only active ones
	ListEvents(ctx context.Context, activeOnly bool) ([]*schema.Event, error)

	// CreateRaid schedules a raid from an event template, defaulting the
	// name to the template's and the time to now
	CreateRaid(ctx context.Context, input CreateRaidInput) (*schema.Raid, error)

	// GetRaid retrieves a raid with its event template
	GetRaid(ctx context.Context, raidID int64) (*schema.Raid, error)

	// RecordAttendance marks a member present at a raid, once per member
	RecordAttendance(ctx context.Context, input RecordAttendanceInput) (*schema.RaidAttendance, error)

	// ListAttendance lists the attendance roll for a raid
	ListAttendance(ctx context.Context, raidID int64) ([]*schema.RaidAttendance, error)

	// CompleteRaid marks a raid completed
	CompleteRaid(ctx context.Context, raidID int64) (*schema.Raid, error)

	// CancelRaid marks a raid cancelled
	CancelRaid(ctx context.Context, raidID int64) (*schema.Raid, error)

	// AwardPoints pays out a completed raid exactly once: base points per
	// attendee plus the on-time bonus where earned
	AwardPoints(ctx context.Context, raidID int64, performedBy *int64) (*store.RaidAwardResult, error)
}

type service struct {
	store store.Store
	clock adapter.Clock
}

// NewService creates a raids service over the store
func NewService(st store.Store, clock adapter.Clock) Service {
	return &service{
		store: st,
		clock: clock,
	}
}

// CreateEvent creates a raid event template
func (s *service) CreateEvent(ctx context.Context, input CreateEventInput) (*schema.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("event name is required")
	}
	if input.BasePoints.IsNegative() {
		return nil, fmt.Errorf("base points cannot be negative")
	}
	if input.OnTimeBonus.IsNegative() {
		return nil, fmt.Errorf("on-time bonus cannot be negative")
	}

	event, err := s.store.CreateEvent(ctx, store.CreateEventInput{
		Name:        name,
		Description: input.Description,
		BasePoints:  input.BasePoints,
		OnTimeBonus: input.OnTimeBonus,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Event template created",
		zap.Int64("eventID", event.ID),
		zap.String("name", event.Name),
		zap.String("basePoints", event.BasePoints.String()))
	return event, nil
}

// GetEvent retrieves an event template by ID
func (s *service) GetEvent(ctx context.Context, eventID int64) (*schema.Event, error) {
	event, err := s.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrEventNotFound, eventID)
	}
	return event, nil
}

// ListEvents lists event templates, optionally only active ones
func (s *service) ListEvents(ctx context.Context, activeOnly bool) ([]*schema.Event, error) {
	return s.store.ListEvents(ctx, activeOnly)
}

// CreateRaid schedules a raid from an event template
func (s *service) CreateRaid(ctx context.Context, input CreateRaidInput) (*schema.Raid, error) {
	scheduledAt := input.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = s.clock.Now().UTC()
	}

	raid, err := s.store.CreateRaid(ctx, store.CreateRaidInput{
		EventID:     input.EventID,
		Name:        strings.TrimSpace(input.Name),
		ScheduledAt: scheduledAt,
		Notes:       input.Notes,
		CreatedBy:   input.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Raid scheduled",
		zap.Int64("raidID", raid.ID),
		zap.String("name", raid.Name),
		zap.Time("scheduledAt", raid.ScheduledAt))
	return raid, nil
}

// GetRaid retrieves a raid with its event template
func (s *service) GetRaid(ctx context.Context, raidID int64) (*schema.Raid, error) {
	raid, err := s.store.GetRaidByID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if raid == nil {
		return nil, domain.ErrRaidNotFound
	}
	return raid, nil
}

// RecordAttendance marks a member present at a raid
func (s *service) RecordAttendance(ctx context.Context, input RecordAttendanceInput) (*schema.RaidAttendance, error) {
	attendance, err := s.store.RecordRaidAttendance(ctx, store.RecordAttendanceInput{
		RaidID:        input.RaidID,
		UserID:        input.UserID,
		CharacterName: domain.NormalizeCharacterName(input.CharacterName),
		OnTime:        input.OnTime,
		RecordedBy:    input.RecordedBy,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Raid attendance recorded",
		zap.Int64("raidID", input.RaidID),
		zap.Int64("userID", input.UserID),
		zap.String("characterName", attendance.CharacterName),
		zap.Bool("onTime", input.OnTime))
	return attendance, nil
}

// ListAttendance lists the attendance roll for a raid
func (s *service) ListAttendance(ctx context.Context, raidID int64) ([]*schema.RaidAttendance, error) {
	raid, err := s.store.GetRaidByID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if raid == nil {
		return nil, domain.ErrRaidNotFound
	}
	return s.store.ListRaidAttendance(ctx, raidID)
}

// CompleteRaid marks a raid completed
func (s *service) CompleteRaid(ctx context.Context, raidID int64) (*schema.Raid, error) {
	raid, err := s.store.UpdateRaidStatus(ctx, raidID, schema.RaidStatusCompleted)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Raid completed", zap.Int64("raidID", raid.ID), zap.String("name", raid.Name))
	return raid, nil
}

// CancelRaid marks a raid cancelled
func (s *service) CancelRaid(ctx context.Context, raidID int64) (*schema.Raid, error) {
	raid, err := s.store.UpdateRaidStatus(ctx, raidID, schema.RaidStatusCancelled)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Raid cancelled", zap.Int64("raidID", raid.ID), zap.String("name", raid.Name))
	return raid, nil
}

// AwardPoints pays out a completed raid exactly once
func (s *service) AwardPoints(ctx context.Context, raidID int64, performedBy *int64) (*store.RaidAwardResult, error) {
	result, err := s.store.AwardRaidPoints(ctx, store.AwardRaidPointsInput{
		RaidID:      raidID,
		PerformedBy: performedBy,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Raid points awarded",
		zap.Int64("raidID", result.Raid.ID),
		zap.String("name", result.Raid.Name),
		zap.Int("attendeesPaid", result.AttendeesPaid),
		zap.Int("onTimeBonuses", result.OnTimeBonuses),
		zap.String("totalAwarded", result.TotalAwarded.String()))
	return result, nil
}
