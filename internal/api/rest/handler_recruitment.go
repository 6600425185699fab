package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/rest/dto"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
)

// SubmitApplication files a recruitment application
func (h *handler) SubmitApplication(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	application, err := h.services.Recruitment.SubmitApplication(c.Request.Context(), recruitment.SubmitApplicationInput{
		CharacterName:   req.CharacterName,
		CharacterClass:  req.CharacterClass,
		CharacterLevel:  req.CharacterLevel,
		ApplicantName:   req.ApplicantName,
		Email:           req.Email,
		DiscordUsername: req.DiscordUsername,
		GuildExperience: req.GuildExperience,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, dto.MapApplicationToDTO(application))
}

// ListApplications pages applications, optionally by status
func (h *handler) ListApplications(c *gin.Context) {
	params, err := ParseListApplicationsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	applications, total, err := h.services.Recruitment.ListApplications(c.Request.Context(), params.StatusFilter(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list applications")
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationsToDTO(applications, &params.Offset, total))
}

// GetApplication retrieves an application
func (h *handler) GetApplication(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.services.Recruitment.GetApplication(c.Request.Context(), applicationID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch application")
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToDTO(application))
}

// GetVotingStatistics returns the live voting statistics for an application
func (h *handler) GetVotingStatistics(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	statistics, err := h.services.Recruitment.GetVotingStatistics(c.Request.Context(), applicationID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch voting statistics")
		return
	}

	c.JSON(http.StatusOK, statistics)
}

// ListReadyForProcessing lists approved applications awaiting provisioning
func (h *handler) ListReadyForProcessing(c *gin.Context) {
	params, err := ParseReadyForProcessingQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	applications, err := h.services.Recruitment.ApplicationsReadyForProcessing(c.Request.Context(), params.Limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list applications")
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationsToDTO(applications, nil, int64(len(applications))))
}

// OfficerApprove moves a submitted application past officer review
func (h *handler) OfficerApprove(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
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

	application, err := h.services.Recruitment.OfficerApprove(c.Request.Context(), applicationID, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to approve application")
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToDTO(application))
}

// OpenVoting opens an application's voting period
func (h *handler) OpenVoting(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
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

	application, err := h.services.Recruitment.OpenVotingPeriod(c.Request.Context(), applicationID, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to open voting period")
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToDTO(application))
}

// CastVote records or revises one member's vote
func (h *handler) CastVote(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	vote, err := h.services.Recruitment.CastVote(c.Request.Context(), applicationID, req.VoterID, req.VoteChoice(), req.Comment)
	if err != nil {
		respondServiceError(c, err, "Failed to cast vote")
		return
	}

	c.JSON(http.StatusOK, dto.MapVoteToDTO(vote))
}

// CloseVoting closes an application's voting period and applies the
// decision rule
func (h *handler) CloseVoting(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
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

	result, err := h.services.Recruitment.CloseVotingPeriod(c.Request.Context(), applicationID, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to close voting period")
		return
	}

	c.JSON(http.StatusOK, dto.MapCloseVotingToDTO(result))
}

// WithdrawApplication marks a pre-decision application withdrawn
func (h *handler) WithdrawApplication(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.services.Recruitment.WithdrawApplication(c.Request.Context(), applicationID)
	if err != nil {
		respondServiceError(c, err, "Failed to withdraw application")
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToDTO(application))
}

// ProcessApplication provisions an approved application
func (h *handler) ProcessApplication(c *gin.Context) {
	applicationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ProcessApplicationRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.services.Recruitment.ProcessApprovedApplication(c.Request.Context(), applicationID, req.ProcessedBy, actorID(c, req.PerformedBy), forceQuery(c))
	if err != nil {
		respondServiceError(c, err, "Failed to process application")
		return
	}

	c.JSON(http.StatusOK, dto.MapProvisionToDTO(result))
}

// ProcessBatch provisions several approved applications
func (h *handler) ProcessBatch(c *gin.Context) {
	var req dto.ProcessBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.services.Recruitment.ProcessMultipleApplications(c.Request.Context(), req.ApplicationIDs, req.ProcessedBy, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to process applications")
		return
	}

	c.JSON(http.StatusOK, dto.MapProvisionBatchToDTO(result))
}

// forceQuery reads the force flag on the provisioning endpoint
func forceQuery(c *gin.Context) bool {
	force, err := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err != nil {
		return false
	}
	return force
}
