package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/rest/dto"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/roster"
)

// CreateCharacter creates a character for an existing member
func (h *handler) CreateCharacter(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	character, err := h.services.Roster.CreateCharacter(c.Request.Context(), roster.CreateCharacterInput{
		Name:            req.Name,
		Class:           req.Class,
		Level:           req.Level,
		UserID:          req.UserID,
		MainCharacterID: req.MainCharacterID,
		Description:     req.Description,
		PerformedBy:     actorID(c, req.PerformedBy),
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create character")
		return
	}

	c.JSON(http.StatusCreated, dto.MapCharacterToDTO(character))
}

// GetCharacter retrieves a character with its owner
func (h *handler) GetCharacter(c *gin.Context) {
	characterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	character, err := h.services.Roster.GetCharacter(c.Request.Context(), characterID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch character")
		return
	}

	c.JSON(http.StatusOK, dto.MapCharacterToDTO(character))
}

// GetCharacterFamily returns the main and all alts of a character's family
func (h *handler) GetCharacterFamily(c *gin.Context) {
	characterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	family, err := h.services.Roster.GetCharacterFamily(c.Request.Context(), characterID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch character family")
		return
	}

	c.JSON(http.StatusOK, dto.MapCharactersToDTO(family))
}

// GetOwnershipHistory lists a character's transfer records newest first
func (h *handler) GetOwnershipHistory(c *gin.Context) {
	characterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	history, err := h.services.Roster.GetOwnershipHistory(c.Request.Context(), characterID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch ownership history")
		return
	}

	c.JSON(http.StatusOK, dto.MapOwnershipsToDTO(history))
}

// TransferCharacter moves a character to a new owner
func (h *handler) TransferCharacter(c *gin.Context) {
	characterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.TransferCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	ownership, err := h.services.Roster.RecordTransfer(c.Request.Context(), roster.TransferInput{
		CharacterID: characterID,
		NewOwnerID:  req.NewOwnerID,
		Reason:      req.OwnershipReason(),
		Notes:       req.Notes,
		PerformedBy: actorID(c, req.PerformedBy),
	})
	if err != nil {
		respondServiceError(c, err, "Failed to transfer character")
		return
	}

	c.JSON(http.StatusOK, dto.MapOwnershipToDTO(ownership))
}

// ListUserCharacters lists all characters owned by a member
func (h *handler) ListUserCharacters(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	characters, err := h.services.Roster.ListCharactersByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list characters")
		return
	}

	c.JSON(http.StatusOK, dto.MapCharactersToDTO(characters))
}

// LinkDiscord attaches a Discord account to a member
func (h *handler) LinkDiscord(c *gin.Context) {
	var req dto.LinkDiscordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.services.Roster.LinkDiscord(c.Request.Context(), req.Username, req.DiscordID, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to link Discord account")
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToDTO(user))
}

// UnlinkDiscord detaches a member's Discord account
func (h *handler) UnlinkDiscord(c *gin.Context) {
	var req dto.UnlinkDiscordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.services.Roster.UnlinkDiscord(c.Request.Context(), req.Identifier, actorID(c, req.PerformedBy))
	if err != nil {
		respondServiceError(c, err, "Failed to unlink Discord account")
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToDTO(user))
}

// UpdateMemberStatus flips a member's active flag and cascades it to their
// characters
func (h *handler) UpdateMemberStatus(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.MemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.services.Roster.UpdateMemberStatus(c.Request.Context(), roster.MemberStatusInput{
		UserID:      userID,
		IsActive:    *req.IsActive,
		Reason:      req.Reason,
		PerformedBy: actorID(c, req.PerformedBy),
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update member status")
		return
	}

	c.JSON(http.StatusOK, dto.MapMemberStatusToDTO(result))
}

// ListRanks lists the rank catalog ordered by level
func (h *handler) ListRanks(c *gin.Context) {
	ranks, err := h.services.Roster.ListRanks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list ranks")
		return
	}

	c.JSON(http.StatusOK, dto.MapRanksToDTO(ranks))
}
