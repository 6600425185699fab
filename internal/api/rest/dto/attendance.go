package dto

import (
	"time"

	"github.com/shopspring/decimal"

	apierrors "github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/shared/errors"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/attendance"
)

// RefreshAttendanceRequest represents the request body for POST /attendance/refresh.
// Empty user_ids refreshes every member with attendance history. The date
// defaults to today.
type RefreshAttendanceRequest struct {
	UserIDs     []int64 `json:"user_ids,omitempty"`
	Date        string  `json:"date,omitempty"`
	PerformedBy *int64  `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *RefreshAttendanceRequest) Validate() error {
	for _, id := range r.UserIDs {
		if id <= 0 {
			return apierrors.NewValidationError("user_ids must be positive")
		}
	}
	if r.Date != "" {
		if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
			return apierrors.NewValidationError("date must be formatted YYYY-MM-DD")
		}
	}
	return nil
}

// SnapshotDate returns the bound date, falling back to the given default
func (r *RefreshAttendanceRequest) SnapshotDate(fallback time.Time) time.Time {
	if r.Date == "" {
		return fallback
	}
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return fallback
	}
	return date
}

// UserAttendanceResponse represents a member's attendance figures across
// the standard windows
type UserAttendanceResponse struct {
	UserID         int64                                   `json:"user_id"`
	Periods        map[string]*attendance.PeriodAttendance `json:"periods"`
	CurrentStreak  int                                     `json:"current_streak"`
	LongestStreak  int                                     `json:"longest_streak"`
	VotingEligible bool                                    `json:"voting_eligible"`
	Rate30d        decimal.Decimal                         `json:"rate_30d"`
}

// TrendsResponse represents a member's attendance trend series
type TrendsResponse struct {
	UserID int64                   `json:"user_id"`
	Days   int                     `json:"days"`
	Points []attendance.TrendPoint `json:"points"`
}

// RefreshAttendanceResponse reports a summary refresh run
type RefreshAttendanceResponse struct {
	Updated int                   `json:"updated"`
	Failed  []BulkFailureResponse `json:"failed,omitempty"`
}

// MapRefreshToDTO maps an attendance.BulkUpdateResult to RefreshAttendanceResponse
func MapRefreshToDTO(result *attendance.BulkUpdateResult) *RefreshAttendanceResponse {
	response := &RefreshAttendanceResponse{Updated: result.Updated}
	for _, failure := range result.Failed {
		response.Failed = append(response.Failed, BulkFailureResponse{
			UserID: failure.UserID,
			Error:  failure.Err.Error(),
		})
	}
	return response
}
