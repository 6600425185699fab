package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apierrors "github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/shared/errors"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// CreateItemRequest represents the request body for POST /items
type CreateItemRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SuggestedCost decimal.Decimal `json:"suggested_cost"`
}

// Validate validates the request body
func (r *CreateItemRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required")
	}
	if r.SuggestedCost.IsNegative() {
		return apierrors.NewValidationError("suggested_cost cannot be negative")
	}
	return nil
}

// CreateDistributionRequest represents the request body for POST /loot/distributions.
// A nil point_cost falls back to the item's suggested cost; quantity defaults
// to one.
type CreateDistributionRequest struct {
	ItemID         int64            `json:"item_id"`
	UserID         int64            `json:"user_id"`
	CharacterName  string           `json:"character_name"`
	PointCost      *decimal.Decimal `json:"point_cost,omitempty"`
	Quantity       int              `json:"quantity,omitempty"`
	RaidID         *int64           `json:"raid_id,omitempty"`
	PerformedBy    *int64           `json:"performed_by,omitempty"`
	DiscordContext map[string]any   `json:"discord_context,omitempty"`
}

// Validate validates the request body
func (r *CreateDistributionRequest) Validate() error {
	if r.ItemID <= 0 {
		return apierrors.NewValidationError("item_id is required")
	}
	if r.UserID <= 0 {
		return apierrors.NewValidationError("user_id is required")
	}
	if strings.TrimSpace(r.CharacterName) == "" {
		return apierrors.NewValidationError("character_name is required")
	}
	if r.PointCost != nil && r.PointCost.IsNegative() {
		return apierrors.NewValidationError("point_cost cannot be negative")
	}
	if r.Quantity < 0 {
		return apierrors.NewValidationError("quantity cannot be negative")
	}
	return nil
}

// DeleteDistributionRequest represents the optional request body for
// DELETE /loot/distributions/:id
type DeleteDistributionRequest struct {
	Reason      string `json:"reason,omitempty"`
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// ItemResponse represents a loot catalog entry
type ItemResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SuggestedCost decimal.Decimal `json:"suggested_cost"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse represents a list of catalog items
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// DistributionResponse represents one loot distribution
type DistributionResponse struct {
	ID            int64           `json:"id"`
	ItemID        int64           `json:"item_id"`
	ItemName      string          `json:"item_name,omitempty"`
	UserID        int64           `json:"user_id"`
	Username      string          `json:"username,omitempty"`
	CharacterName string          `json:"character_name"`
	PointCost     decimal.Decimal `json:"point_cost"`
	Quantity      int             `json:"quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	RaidID        *int64          `json:"raid_id,omitempty"`
	DistributedBy *int64          `json:"distributed_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DistributionListResponse represents a paginated distribution history page
type DistributionListResponse struct {
	Distributions []DistributionResponse `json:"items"`
	Offset        *int                   `json:"offset,omitempty"`
	Total         int64                  `json:"total"`
}

// MapItemToDTO maps a schema.Item to ItemResponse
func MapItemToDTO(item *schema.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		SuggestedCost: item.SuggestedCost,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// MapItemsToDTO maps catalog items to ItemListResponse
func MapItemsToDTO(items []*schema.Item) *ItemListResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, MapItemToDTO(item))
	}
	return &ItemListResponse{Items: responses, Total: len(responses)}
}

// MapDistributionToDTO maps a schema.LootDistribution to DistributionResponse,
// including the item and buyer names when they were preloaded
func MapDistributionToDTO(distribution *schema.LootDistribution) DistributionResponse {
	response := DistributionResponse{
		ID:            distribution.ID,
		ItemID:        distribution.ItemID,
		UserID:        distribution.UserID,
		CharacterName: distribution.CharacterName,
		PointCost:     distribution.PointCost,
		Quantity:      distribution.Quantity,
		TotalCost:     distribution.PointCost.Mul(decimal.NewFromInt(int64(distribution.Quantity))),
		RaidID:        distribution.RaidID,
		DistributedBy: distribution.DistributedByID,
		CreatedAt:     distribution.CreatedAt,
	}
	if distribution.Item.ID != 0 {
		response.ItemName = distribution.Item.Name
	}
	if distribution.User.ID != 0 {
		response.Username = distribution.User.Username
	}
	return response
}

// MapDistributionsToDTO maps a history page to DistributionListResponse
func MapDistributionsToDTO(distributions []*schema.LootDistribution, offset int, total int64) *DistributionListResponse {
	items := make([]DistributionResponse, 0, len(distributions))
	for _, distribution := range distributions {
		items = append(items, MapDistributionToDTO(distribution))
	}
	return &DistributionListResponse{
		Distributions: items,
		Offset:        &offset,
		Total:         total,
	}
}
