package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apierrors "github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/shared/errors"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// CreateEventRequest represents the request body for POST /events
type CreateEventRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePoints  decimal.Decimal `json:"base_points"`
	OnTimeBonus decimal.Decimal `json:"on_time_bonus"`
}

// Validate validates the request body
func (r *CreateEventRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required")
	}
	if r.BasePoints.IsNegative() {
		return apierrors.NewValidationError("base_points cannot be negative")
	}
	if r.OnTimeBonus.IsNegative() {
		return apierrors.NewValidationError("on_time_bonus cannot be negative")
	}
	return nil
}

// CreateRaidRequest represents the request body for POST /raids.
// The name defaults to the event template's and the time to now.
type CreateRaidRequest struct {
	EventID     int64      `json:"event_id"`
	Name        string     `json:"name,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	PerformedBy *int64     `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *CreateRaidRequest) Validate() error {
	if r.EventID <= 0 {
		return apierrors.NewValidationError("event_id is required")
	}
	return nil
}

// RecordAttendanceRequest represents the request body for POST /raids/:id/attendance
type RecordAttendanceRequest struct {
	UserID        int64  `json:"user_id"`
	CharacterName string `json:"character_name"`
	OnTime        bool   `json:"on_time"`
	PerformedBy   *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *RecordAttendanceRequest) Validate() error {
	if r.UserID <= 0 {
		return apierrors.NewValidationError("user_id is required")
	}
	if strings.TrimSpace(r.CharacterName) == "" {
		return apierrors.NewValidationError("character_name is required")
	}
	return nil
}

// PerformedByRequest represents a request body carrying only actor attribution
type PerformedByRequest struct {
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *PerformedByRequest) Validate() error {
	if r.PerformedBy != nil && *r.PerformedBy <= 0 {
		return apierrors.NewValidationError("performed_by must be positive")
	}
	return nil
}

// EventResponse represents a raid event template
type EventResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePoints  decimal.Decimal `json:"base_points"`
	OnTimeBonus decimal.Decimal `json:"on_time_bonus"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RaidResponse represents a scheduled raid
type RaidResponse struct {
	ID            int64          `json:"id"`
	EventID       int64          `json:"event_id"`
	Name          string         `json:"name"`
	ScheduledAt   time.Time      `json:"scheduled_at"`
	Status        string         `json:"status"`
	PointsAwarded bool           `json:"points_awarded"`
	Notes         string         `json:"notes,omitempty"`
	CreatedBy     *int64         `json:"created_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Event         *EventResponse `json:"event,omitempty"`
}

// RaidAttendanceResponse represents one attendance record
type RaidAttendanceResponse struct {
	ID            int64     `json:"id"`
	RaidID        int64     `json:"raid_id"`
	UserID        int64     `json:"user_id"`
	CharacterName string    `json:"character_name"`
	OnTime        bool      `json:"on_time"`
	RecordedBy    *int64    `json:"recorded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventListResponse represents a list of event templates
type EventListResponse struct {
	Events []EventResponse `json:"items"`
	Total  int             `json:"total"`
}

// RaidAttendanceListResponse represents a raid's attendance roll
type RaidAttendanceListResponse struct {
	Attendances []RaidAttendanceResponse `json:"items"`
	Total       int                      `json:"total"`
}

// RaidAwardResponse reports a completed raid payout
type RaidAwardResponse struct {
	Raid          RaidResponse    `json:"raid"`
	AttendeesPaid int             `json:"attendees_paid"`
	OnTimeBonuses int             `json:"on_time_bonuses"`
	PointsPerHead decimal.Decimal `json:"points_per_head"`
	BonusPerHead  decimal.Decimal `json:"bonus_per_head"`
	TotalAwarded  decimal.Decimal `json:"total_awarded"`
}

// MapEventToDTO maps a schema.Event to EventResponse
func MapEventToDTO(event *schema.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		BasePoints:  event.BasePoints,
		OnTimeBonus: event.OnTimeBonus,
		IsActive:    event.IsActive,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

// MapEventsToDTO maps event templates to EventListResponse
func MapEventsToDTO(events []*schema.Event) *EventListResponse {
	items := make([]EventResponse, 0, len(events))
	for _, event := range events {
		items = append(items, MapEventToDTO(event))
	}
	return &EventListResponse{Events: items, Total: len(items)}
}

// MapRaidToDTO maps a schema.Raid to RaidResponse, including the event
// template when it was preloaded
func MapRaidToDTO(raid *schema.Raid) *RaidResponse {
	response := &RaidResponse{
		ID:            raid.ID,
		EventID:       raid.EventID,
		Name:          raid.Name,
		ScheduledAt:   raid.ScheduledAt,
		Status:        string(raid.Status),
		PointsAwarded: raid.PointsAwarded,
		Notes:         raid.Notes,
		CreatedBy:     raid.CreatedByID,
		CreatedAt:     raid.CreatedAt,
		UpdatedAt:     raid.UpdatedAt,
	}
	if raid.Event.ID != 0 {
		event := MapEventToDTO(&raid.Event)
		response.Event = &event
	}
	return response
}

// MapRaidAttendanceToDTO maps a schema.RaidAttendance to RaidAttendanceResponse
func MapRaidAttendanceToDTO(attendance *schema.RaidAttendance) RaidAttendanceResponse {
	return RaidAttendanceResponse{
		ID:            attendance.ID,
		RaidID:        attendance.RaidID,
		UserID:        attendance.UserID,
		CharacterName: attendance.CharacterName,
		OnTime:        attendance.OnTime,
		RecordedBy:    attendance.RecordedByID,
		CreatedAt:     attendance.CreatedAt,
	}
}

// MapRaidAttendancesToDTO maps an attendance roll to RaidAttendanceListResponse
func MapRaidAttendancesToDTO(attendances []*schema.RaidAttendance) *RaidAttendanceListResponse {
	items := make([]RaidAttendanceResponse, 0, len(attendances))
	for _, attendance := range attendances {
		items = append(items, MapRaidAttendanceToDTO(attendance))
	}
	return &RaidAttendanceListResponse{Attendances: items, Total: len(items)}
}

// MapRaidAwardToDTO maps a store.RaidAwardResult to RaidAwardResponse
func MapRaidAwardToDTO(result *store.RaidAwardResult) *RaidAwardResponse {
	return &RaidAwardResponse{
		Raid:          *MapRaidToDTO(result.Raid),
		AttendeesPaid: result.AttendeesPaid,
		OnTimeBonuses: result.OnTimeBonuses,
		PointsPerHead: result.PointsPerHead,
		BonusPerHead:  result.BonusPerHead,
		TotalAwarded:  result.TotalAwarded,
	}
}
