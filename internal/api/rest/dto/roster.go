package dto

import (
	"encoding/json"
	"strings"
	"time"

	apierrors "github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/shared/errors"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// CreateCharacterRequest represents the request body for POST /characters
type CreateCharacterRequest struct {
	Name            string `json:"name"`
	Class           string `json:"class"`
	Level           int    `json:"level,omitempty"`
	UserID          int64  `json:"user_id"`
	MainCharacterID *int64 `json:"main_character_id,omitempty"`
	Description     string `json:"description,omitempty"`
	PerformedBy     *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *CreateCharacterRequest) Validate() error {
	if len(strings.TrimSpace(r.Name)) < 2 {
		return apierrors.NewValidationError("name must be at least 2 characters")
	}
	if strings.TrimSpace(r.Class) == "" {
		return apierrors.NewValidationError("class is required")
	}
	if r.UserID <= 0 {
		return apierrors.NewValidationError("user_id is required")
	}
	if r.Level < 0 {
		return apierrors.NewValidationError("level cannot be negative")
	}
	if r.MainCharacterID != nil && *r.MainCharacterID <= 0 {
		return apierrors.NewValidationError("main_character_id must be positive")
	}
	return nil
}

// TransferCharacterRequest represents the request body for POST /characters/:id/transfer
type TransferCharacterRequest struct {
	NewOwnerID  int64  `json:"new_owner_id"`
	Reason      string `json:"reason,omitempty"`
	Notes       string `json:"notes,omitempty"`
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *TransferCharacterRequest) Validate() error {
	if r.NewOwnerID <= 0 {
		return apierrors.NewValidationError("new_owner_id is required")
	}
	if r.Reason != "" && !schema.OwnershipReason(r.Reason).Valid() {
		return apierrors.NewValidationError("unknown transfer reason: " + r.Reason)
	}
	return nil
}

// OwnershipReason returns the bound transfer reason, defaulting to manual
func (r *TransferCharacterRequest) OwnershipReason() schema.OwnershipReason {
	if r.Reason == "" {
		return schema.OwnershipReasonManual
	}
	return schema.OwnershipReason(r.Reason)
}

// LinkDiscordRequest represents the request body for POST /members/link-discord
type LinkDiscordRequest struct {
	Username    string `json:"username"`
	DiscordID   string `json:"discord_id"`
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *LinkDiscordRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return apierrors.NewValidationError("username is required")
	}
	if strings.TrimSpace(r.DiscordID) == "" {
		return apierrors.NewValidationError("discord_id is required")
	}
	return nil
}

// UnlinkDiscordRequest represents the request body for POST /members/unlink-discord.
// The identifier is a Discord ID or a username.
type UnlinkDiscordRequest struct {
	Identifier  string `json:"identifier"`
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *UnlinkDiscordRequest) Validate() error {
	if strings.TrimSpace(r.Identifier) == "" {
		return apierrors.NewValidationError("identifier is required")
	}
	return nil
}

// MemberStatusRequest represents the request body for PUT /members/:id/status
type MemberStatusRequest struct {
	IsActive    *bool  `json:"is_active"`
	Reason      string `json:"reason,omitempty"`
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *MemberStatusRequest) Validate() error {
	if r.IsActive == nil {
		return apierrors.NewValidationError("is_active is required")
	}
	return nil
}

// UserResponse represents a guild member account
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	DiscordID *string   `json:"discord_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CharacterResponse represents an in-game character
type CharacterResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Class           string    `json:"class"`
	Level           int       `json:"level"`
	Status          string    `json:"status"`
	UserID          int64     `json:"user_id"`
	Username        string    `json:"username,omitempty"`
	MainCharacterID *int64    `json:"main_character_id,omitempty"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CharacterListResponse represents a list of characters
type CharacterListResponse struct {
	Characters []CharacterResponse `json:"items"`
	Total      int                 `json:"total"`
}

// OwnershipResponse represents one character transfer record
type OwnershipResponse struct {
	ID              int64     `json:"id"`
	CharacterID     int64     `json:"character_id"`
	CharacterName   string    `json:"character_name,omitempty"`
	PreviousOwnerID *int64    `json:"previous_owner_id,omitempty"`
	NewOwnerID      int64     `json:"new_owner_id"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes,omitempty"`
	TransferredBy   *int64    `json:"transferred_by,omitempty"`
	TransferDate    time.Time `json:"transfer_date"`
}

// OwnershipListResponse represents a character's transfer history
type OwnershipListResponse struct {
	Ownerships []OwnershipResponse `json:"items"`
	Total      int                 `json:"total"`
}

// RankResponse represents one rank catalog entry
type RankResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Level       int             `json:"level"`
	Description string          `json:"description,omitempty"`
	Permissions json.RawMessage `json:"permissions,omitempty"`
	Color       string          `json:"color"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RankListResponse represents the rank catalog
type RankListResponse struct {
	Ranks []RankResponse `json:"items"`
	Total int            `json:"total"`
}

// MemberStatusResponse reports a member status change and its cascade
type MemberStatusResponse struct {
	User              UserResponse `json:"user"`
	CharactersUpdated int64        `json:"characters_updated"`
}

// MapUserToDTO maps a schema.User to UserResponse
func MapUserToDTO(user *schema.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		DiscordID: user.DiscordID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapCharacterToDTO maps a schema.Character to CharacterResponse, including
// the owner's username when it was preloaded
func MapCharacterToDTO(character *schema.Character) *CharacterResponse {
	response := &CharacterResponse{
		ID:              character.ID,
		Name:            character.Name,
		Class:           character.Class,
		Level:           character.Level,
		Status:          string(character.Status),
		UserID:          character.UserID,
		MainCharacterID: character.MainCharacterID,
		Description:     character.Description,
		IsActive:        character.IsActive,
		CreatedAt:       character.CreatedAt,
		UpdatedAt:       character.UpdatedAt,
	}
	if character.User.ID != 0 {
		response.Username = character.User.Username
	}
	return response
}

// MapCharactersToDTO maps characters to CharacterListResponse
func MapCharactersToDTO(characters []*schema.Character) *CharacterListResponse {
	items := make([]CharacterResponse, 0, len(characters))
	for _, character := range characters {
		items = append(items, *MapCharacterToDTO(character))
	}
	return &CharacterListResponse{Characters: items, Total: len(items)}
}

// MapOwnershipToDTO maps a schema.CharacterOwnership to OwnershipResponse,
// including the character name when it was preloaded
func MapOwnershipToDTO(ownership *schema.CharacterOwnership) OwnershipResponse {
	response := OwnershipResponse{
		ID:              ownership.ID,
		CharacterID:     ownership.CharacterID,
		PreviousOwnerID: ownership.PreviousOwnerID,
		NewOwnerID:      ownership.NewOwnerID,
		Reason:          string(ownership.Reason),
		Notes:           ownership.Notes,
		TransferredBy:   ownership.TransferredByID,
		TransferDate:    ownership.TransferDate,
	}
	if ownership.Character.ID != 0 {
		response.CharacterName = ownership.Character.Name
	}
	return response
}

// MapOwnershipsToDTO maps transfer records to OwnershipListResponse
func MapOwnershipsToDTO(ownerships []*schema.CharacterOwnership) *OwnershipListResponse {
	items := make([]OwnershipResponse, 0, len(ownerships))
	for _, ownership := range ownerships {
		items = append(items, MapOwnershipToDTO(ownership))
	}
	return &OwnershipListResponse{Ownerships: items, Total: len(items)}
}

// MapRankToDTO maps a schema.Rank to RankResponse
func MapRankToDTO(rank *schema.Rank) RankResponse {
	return RankResponse{
		ID:          rank.ID,
		Name:        rank.Name,
		Level:       rank.Level,
		Description: rank.Description,
		Permissions: json.RawMessage(rank.Permissions),
		Color:       rank.Color,
		CreatedAt:   rank.CreatedAt,
		UpdatedAt:   rank.UpdatedAt,
	}
}

// MapRanksToDTO maps the rank catalog to RankListResponse
func MapRanksToDTO(ranks []*schema.Rank) *RankListResponse {
	items := make([]RankResponse, 0, len(ranks))
	for _, rank := range ranks {
		items = append(items, MapRankToDTO(rank))
	}
	return &RankListResponse{Ranks: items, Total: len(items)}
}

// MapMemberStatusToDTO maps a store.MemberStatusResult to MemberStatusResponse
func MapMemberStatusToDTO(result *store.MemberStatusResult) *MemberStatusResponse {
	return &MemberStatusResponse{
		User:              *MapUserToDTO(result.User),
		CharactersUpdated: result.CharactersUpdated,
	}
}
