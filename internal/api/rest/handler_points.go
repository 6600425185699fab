package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/rest/dto"
)

// AwardPoints writes one positive ledger entry for a member
func (h *handler) AwardPoints(c *gin.Context) {
	var req dto.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	adjustment, err := h.services.Ledger.AwardPoints(c.Request.Context(), req.UserID, req.Points, req.AdjustmentType(), req.Description, req.CharacterName, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to award points")
		return
	}

	c.JSON(http.StatusCreated, dto.MapAdjustmentToDTO(adjustment))
}

// BulkAwardPoints awards the same amount to every listed member
func (h *handler) BulkAwardPoints(c *gin.Context) {
	var req dto.BulkAwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.services.Ledger.BulkAwardPoints(c.Request.Context(), req.UserIDs, req.Points, req.AdjustmentType(), req.Description, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to award points in bulk")
		return
	}

	c.JSON(http.StatusCreated, dto.MapBulkAwardToDTO(result))
}

// DeductPoints writes one negative ledger entry for a member
func (h *handler) DeductPoints(c *gin.Context) {
	var req dto.DeductPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	adjustment, err := h.services.Ledger.DeductPoints(c.Request.Context(), req.UserID, req.Points, req.AdjustmentType(), req.Description, req.CharacterName, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to deduct points")
		return
	}

	c.JSON(http.StatusCreated, dto.MapAdjustmentToDTO(adjustment))
}

// TransferPoints moves points between two members
func (h *handler) TransferPoints(c *gin.Context) {
	var req dto.TransferPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.services.Ledger.TransferPoints(c.Request.Context(), req.FromUserID, req.ToUserID, req.Amount, req.Reason, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to transfer points")
		return
	}

	c.JSON(http.StatusCreated, dto.MapTransferToDTO(result))
}

// ProcessPurchase deducts an item's cost after an affordability check
func (h *handler) ProcessPurchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	adjustment, err := h.services.Ledger.ProcessItemPurchase(c.Request.Context(), req.UserID, req.ItemCost, req.ItemName, req.CharacterName, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to process purchase")
		return
	}

	c.JSON(http.StatusCreated, dto.MapAdjustmentToDTO(adjustment))
}

// RecalculatePoints re-derives summaries from the ledger, for one member or
// for everyone with history
func (h *handler) RecalculatePoints(c *gin.Context) {
	var req dto.RecalculateRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if req.UserID == nil {
		updated, err := h.services.Ledger.RecalculateAllSummaries(c.Request.Context())
		if err != nil {
			respondServiceError(c, err, "Failed to recalculate summaries")
			return
		}
		c.JSON(http.StatusOK, dto.RecalculateAllResponse{UsersUpdated: updated})
		return
	}

	summary, err := h.services.Ledger.RecalculateSummary(c.Request.Context(), *req.UserID)
	if err != nil {
		respondServiceError(c, err, "Failed to recalculate summary")
		return
	}

	c.JSON(http.StatusOK, dto.MapBalanceToDTO(summary))
}

// GetLeaderboard returns the top balances ordered by total descending
func (h *handler) GetLeaderboard(c *gin.Context) {
	params, err := ParseLeaderboardQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	entries, err := h.services.Ledger.Leaderboard(c.Request.Context(), params.Limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch leaderboard")
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// GetLedgerStats aggregates economy-wide ledger totals
func (h *handler) GetLedgerStats(c *gin.Context) {
	stats, err := h.services.Ledger.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch ledger stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteAdjustment removes an unlocked ledger entry and repairs the owner's
// summary
func (h *handler) DeleteAdjustment(c *gin.Context) {
	adjustmentID, ok := parseIDParam(c, "id")
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

	adjustment, err := h.services.Ledger.DeleteAdjustment(c.Request.Context(), adjustmentID, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to delete adjustment")
		return
	}

	c.JSON(http.StatusOK, dto.MapAdjustmentToDTO(adjustment))
}

// GetUserBalance returns a member's points summary
func (h *handler) GetUserBalance(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.services.Ledger.GetUserBalance(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch balance")
		return
	}

	c.JSON(http.StatusOK, dto.MapBalanceToDTO(summary))
}

// GetUserHistory pages a member's ledger entries newest first
func (h *handler) GetUserHistory(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	adjustments, total, err := h.services.Ledger.GetUserHistory(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch history")
		return
	}

	c.JSON(http.StatusOK, dto.MapAdjustmentsToDTO(adjustments, params.Offset, total))
}
