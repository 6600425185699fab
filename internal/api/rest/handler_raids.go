package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/rest/dto"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/raids"
)

// CreateEvent creates a raid event template
func (h *handler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	event, err := h.services.Raids.CreateEvent(c.Request.Context(), raids.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		BasePoints:  req.BasePoints,
		OnTimeBonus: req.OnTimeBonus,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.MapEventToDTO(event))
}

// ListEvents lists event templates
func (h *handler) ListEvents(c *gin.Context) {
	params, err := ParseActiveOnlyQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	events, err := h.services.Raids.ListEvents(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, dto.MapEventsToDTO(events))
}

// GetEvent retrieves an event template
func (h *handler) GetEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.services.Raids.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch event")
		return
	}

	c.JSON(http.StatusOK, dto.MapEventToDTO(event))
}

// CreateRaid schedules a raid from an event template
func (h *handler) CreateRaid(c *gin.Context) {
	var req dto.CreateRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	var scheduledAt time.Time
	if req.ScheduledAt != nil {
		scheduledAt = *req.ScheduledAt
	}

	raid, err := h.services.Raids.CreateRaid(c.Request.Context(), raids.CreateRaidInput{
		EventID:     req.EventID,
		Name:        req.Name,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
		CreatedBy:   actorID(c, req.PerformedBy),
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create raid")
		return
	}

	c.JSON(http.StatusCreated, dto.MapRaidToDTO(raid))
}

// GetRaid retrieves a raid with its event template
func (h *handler) GetRaid(c *gin.Context) {
	raidID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	raid, err := h.services.Raids.GetRaid(c.Request.Context(), raidID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch raid")
		return
	}

	c.JSON(http.StatusOK, dto.MapRaidToDTO(raid))
}

// RecordRaidAttendance marks a member present at a raid
func (h *handler) RecordRaidAttendance(c *gin.Context) {
	raidID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	record, err := h.services.Raids.RecordAttendance(c.Request.Context(), raids.RecordAttendanceInput{
		RaidID:        raidID,
		UserID:        req.UserID,
		CharacterName: req.CharacterName,
		OnTime:        req.OnTime,
		RecordedBy:    actorID(c, req.PerformedBy),
	})
	if err != nil {
		respondServiceError(c, err, "Failed to record attendance")
		return
	}

	c.JSON(http.StatusCreated, dto.MapRaidAttendanceToDTO(record))
}

// ListRaidAttendance lists the attendance roll for a raid
func (h *handler) ListRaidAttendance(c *gin.Context) {
	raidID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attendances, err := h.services.Raids.ListAttendance(c.Request.Context(), raidID)
	if err != nil {
		respondServiceError(c, err, "Failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, dto.MapRaidAttendancesToDTO(attendances))
}

// CompleteRaid marks a raid completed
func (h *handler) CompleteRaid(c *gin.Context) {
	raidID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	raid, err := h.services.Raids.CompleteRaid(c.Request.Context(), raidID)
	if err != nil {
		respondServiceError(c, err, "Failed to complete raid")
		return
	}

	c.JSON(http.StatusOK, dto.MapRaidToDTO(raid))
}

// CancelRaid marks a raid cancelled
func (h *handler) CancelRaid(c *gin.Context) {
	raidID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	raid, err := h.services.Raids.CancelRaid(c.Request.Context(), raidID)
	if err != nil {
		respondServiceError(c, err, "Failed to cancel raid")
		return
	}

	c.JSON(http.StatusOK, dto.MapRaidToDTO(raid))
}

// AwardRaidPoints pays out a completed raid exactly once
func (h *handler) AwardRaidPoints(c *gin.Context) {
	raidID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PerformedByRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.services.Raids.AwardPoints(c.Request.Context(), raidID, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to award raid points")
		return
	}

	c.JSON(http.StatusOK, dto.MapRaidAwardToDTO(result))
}
