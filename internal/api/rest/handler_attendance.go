package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/rest/dto"
)

// GetUserAttendance returns a member's attendance figures across the
// standard windows, with streaks and voting eligibility
func (h *handler) GetUserAttendance(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	periods, err := h.services.Attendance.CalculateAllPeriods(ctx, userID, time.Now().UTC())
	if err != nil {
		respondServiceError(c, err, "Failed to calculate attendance")
		return
	}
	current, longest, err := h.services.Attendance.CalculateStreaks(ctx, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to calculate streaks")
		return
	}
	eligible, rate, err := h.services.Attendance.IsVotingEligible(ctx, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to check voting eligibility")
		return
	}

	c.JSON(http.StatusOK, dto.UserAttendanceResponse{
		UserID:         userID,
		Periods:        periods,
		CurrentStreak:  current,
		LongestStreak:  longest,
		VotingEligible: eligible,
		Rate30d:        rate,
	})
}

// GetAttendanceTrends returns a member's daily 30-day rate series
func (h *handler) GetAttendanceTrends(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params, err := ParseTrendsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	points, err := h.services.Attendance.Trends(c.Request.Context(), userID, params.Days)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch attendance trends")
		return
	}

	c.JSON(http.StatusOK, dto.TrendsResponse{
		UserID: userID,
		Days:   params.Days,
		Points: points,
	})
}

// GetGuildAttendanceStats aggregates the latest snapshots across the roster
func (h *handler) GetGuildAttendanceStats(c *gin.Context) {
	stats, err := h.services.Attendance.GuildStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch attendance stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RefreshAttendance recomputes summary snapshots for the listed members, or
// for every member with history
func (h *handler) RefreshAttendance(c *gin.Context) {
	var req dto.RefreshAttendanceRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.services.Attendance.BulkUpdateSummaries(c.Request.Context(), req.SnapshotDate(time.Now().UTC()), req.UserIDs)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh attendance summaries")
		return
	}

	c.JSON(http.StatusOK, dto.MapRefreshToDTO(result))
}
