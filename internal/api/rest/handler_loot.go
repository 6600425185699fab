package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/rest/dto"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/loot"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
)

// CreateItem creates a loot catalog entry
func (h *handler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	item, err := h.services.Loot.CreateItem(c.Request.Context(), loot.CreateItemInput{
		Name:          req.Name,
		Description:   req.Description,
		SuggestedCost: req.SuggestedCost,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create item")
		return
	}

	c.JSON(http.StatusCreated, dto.MapItemToDTO(item))
}

// ListItems lists catalog items
func (h *handler) ListItems(c *gin.Context) {
	params, err := ParseActiveOnlyQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	items, err := h.services.Loot.ListItems(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		respondServiceError(c, err, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, dto.MapItemsToDTO(items))
}

// GetItem retrieves a catalog item
func (h *handler) GetItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.services.Loot.GetItem(c.Request.Context(), itemID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch item")
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToDTO(item))
}

// CreateDistribution awards an item to a member and charges their balance.
// An omitted point_cost falls back to the item's suggested cost.
func (h *handler) CreateDistribution(c *gin.Context) {
	var req dto.CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	input := loot.DistributionInput{
		ItemID:         req.ItemID,
		UserID:         req.UserID,
		CharacterName:  req.CharacterName,
		Quantity:       req.Quantity,
		RaidID:         req.RaidID,
		DistributedBy:  actorID(c, req.PerformedBy),
		DiscordContext: req.DiscordContext,
	}
	if req.PointCost != nil {
		input.PointCost = *req.PointCost
	} else {
		item, err := h.services.Loot.GetItem(ctx, req.ItemID)
		if err != nil {
			respondServiceError(c, err, "Failed to resolve item cost")
			return
		}
		input.PointCost = item.SuggestedCost
	}

	distribution, err := h.services.Loot.RecordDistribution(ctx, input)
	if err != nil {
		respondServiceError(c, err, "Failed to record distribution")
		return
	}

	c.JSON(http.StatusCreated, dto.MapDistributionToDTO(distribution))
}

// ListDistributions pages distribution history newest first
func (h *handler) ListDistributions(c *gin.Context) {
	params, err := ParseListDistributionsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	distributions, total, err := h.services.Loot.History(c.Request.Context(), store.DistributionFilter{
		UserID: params.UserID,
		ItemID: params.ItemID,
		RaidID: params.RaidID,
	}, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list distributions")
		return
	}

	c.JSON(http.StatusOK, dto.MapDistributionsToDTO(distributions, params.Offset, total))
}

// GetDistribution retrieves a distribution with its item and buyer
func (h *handler) GetDistribution(c *gin.Context) {
	distributionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	distribution, err := h.services.Loot.GetDistribution(c.Request.Context(), distributionID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch distribution")
		return
	}

	c.JSON(http.StatusOK, dto.MapDistributionToDTO(distribution))
}

// DeleteDistribution removes a distribution and refunds the charge
func (h *handler) DeleteDistribution(c *gin.Context) {
	distributionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DeleteDistributionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	distribution, err := h.services.Loot.DeleteDistribution(c.Request.Context(), distributionID, req.Reason, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to delete distribution")
		return
	}

	c.JSON(http.StatusOK, dto.MapDistributionToDTO(distribution))
}
