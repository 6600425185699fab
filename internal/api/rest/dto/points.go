package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apierrors "github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/shared/errors"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/ledger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// AwardPointsRequest represents the request body for POST /points/award
type AwardPointsRequest struct {
	UserID        int64           `json:"user_id"`
	Points        decimal.Decimal `json:"points"`
	Type          string          `json:"type,omitempty"`
	Description   string          `json:"description"`
	CharacterName string          `json:"character_name,omitempty"`
	PerformedBy   *int64          `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *AwardPointsRequest) Validate() error {
	if r.UserID <= 0 {
		return apierrors.NewValidationError("user_id is required")
	}
	if !r.Points.IsPositive() {
		return apierrors.NewValidationError("points must be positive")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apierrors.NewValidationError("description is required")
	}
	if r.Type != "" && !schema.AdjustmentType(r.Type).Valid() {
		return apierrors.NewValidationError("unknown adjustment type: " + r.Type)
	}
	return nil
}

// AdjustmentType returns the bound adjustment type, defaulting to a manual
// adjustment
func (r *AwardPointsRequest) AdjustmentType() schema.AdjustmentType {
	if r.Type == "" {
		return schema.AdjustmentTypeManual
	}
	return schema.AdjustmentType(r.Type)
}

// BulkAwardPointsRequest represents the request body for POST /points/award-bulk
type BulkAwardPointsRequest struct {
	UserIDs     []int64         `json:"user_ids"`
	Points      decimal.Decimal `json:"points"`
	Type        string          `json:"type,omitempty"`
	Description string          `json:"description"`
	PerformedBy *int64          `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *BulkAwardPointsRequest) Validate() error {
	if len(r.UserIDs) == 0 {
		return apierrors.NewValidationError("user_ids is required")
	}
	if !r.Points.IsPositive() {
		return apierrors.NewValidationError("points must be positive")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apierrors.NewValidationError("description is required")
	}
	if r.Type != "" && !schema.AdjustmentType(r.Type).Valid() {
		return apierrors.NewValidationError("unknown adjustment type: " + r.Type)
	}
	return nil
}

// AdjustmentType returns the bound adjustment type, defaulting to a manual
// adjustment
func (r *BulkAwardPointsRequest) AdjustmentType() schema.AdjustmentType {
	if r.Type == "" {
		return schema.AdjustmentTypeManual
	}
	return schema.AdjustmentType(r.Type)
}

// DeductPointsRequest represents the request body for POST /points/deduct.
// Points is the positive magnitude to deduct.
type DeductPointsRequest struct {
	UserID        int64           `json:"user_id"`
	Points        decimal.Decimal `json:"points"`
	Type          string          `json:"type,omitempty"`
	Description   string          `json:"description"`
	CharacterName string          `json:"character_name,omitempty"`
	PerformedBy   *int64          `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *DeductPointsRequest) Validate() error {
	if r.UserID <= 0 {
		return apierrors.NewValidationError("user_id is required")
	}
	if !r.Points.IsPositive() {
		return apierrors.NewValidationError("points must be positive")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apierrors.NewValidationError("description is required")
	}
	if r.Type != "" && !schema.AdjustmentType(r.Type).Valid() {
		return apierrors.NewValidationError("unknown adjustment type: " + r.Type)
	}
	return nil
}

// AdjustmentType returns the bound adjustment type, defaulting to a manual
// adjustment
func (r *DeductPointsRequest) AdjustmentType() schema.AdjustmentType {
	if r.Type == "" {
		return schema.AdjustmentTypeManual
	}
	return schema.AdjustmentType(r.Type)
}

// TransferPointsRequest represents the request body for POST /points/transfer
type TransferPointsRequest struct {
	FromUserID  int64           `json:"from_user_id"`
	ToUserID    int64           `json:"to_user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	PerformedBy *int64          `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *TransferPointsRequest) Validate() error {
	if r.FromUserID <= 0 {
		return apierrors.NewValidationError("from_user_id is required")
	}
	if r.ToUserID <= 0 {
		return apierrors.NewValidationError("to_user_id is required")
	}
	if r.FromUserID == r.ToUserID {
		return apierrors.NewValidationError("from_user_id and to_user_id must differ")
	}
	if !r.Amount.IsPositive() {
		return apierrors.NewValidationError("amount must be positive")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return apierrors.NewValidationError("reason is required")
	}
	return nil
}

// PurchaseRequest represents the request body for POST /points/purchase
type PurchaseRequest struct {
	UserID        int64           `json:"user_id"`
	ItemCost      decimal.Decimal `json:"item_cost"`
	ItemName      string          `json:"item_name"`
	CharacterName string          `json:"character_name,omitempty"`
	PerformedBy   *int64          `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *PurchaseRequest) Validate() error {
	if r.UserID <= 0 {
		return apierrors.NewValidationError("user_id is required")
	}
	if !r.ItemCost.IsPositive() {
		return apierrors.NewValidationError("item_cost must be positive")
	}
	if strings.TrimSpace(r.ItemName) == "" {
		return apierrors.NewValidationError("item_name is required")
	}
	return nil
}

// RecalculateRequest represents the request body for POST /points/recalculate.
// A user_id limits the repair to one member; absent, every member with
// ledger history is recalculated.
type RecalculateRequest struct {
	UserID      *int64 `json:"user_id,omitempty"`
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *RecalculateRequest) Validate() error {
	if r.UserID != nil && *r.UserID <= 0 {
		return apierrors.NewValidationError("user_id must be positive")
	}
	return nil
}

// PointAdjustmentResponse represents one ledger entry
type PointAdjustmentResponse struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Points         decimal.Decimal `json:"points"`
	AdjustmentType string          `json:"adjustment_type"`
	Description    string          `json:"description"`
	CharacterName  string          `json:"character_name,omitempty"`
	CreatedBy      *int64          `json:"created_by,omitempty"`
	IsLocked       bool            `json:"is_locked"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BalanceResponse represents a member's points summary
type BalanceResponse struct {
	UserID       int64           `json:"user_id"`
	TotalPoints  decimal.Decimal `json:"total_points"`
	EarnedPoints decimal.Decimal `json:"earned_points"`
	SpentPoints  decimal.Decimal `json:"spent_points"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AdjustmentListResponse represents a paginated ledger page
type AdjustmentListResponse struct {
	Adjustments []PointAdjustmentResponse `json:"items"`
	Offset      *int                      `json:"offset,omitempty"`
	Total       int64                     `json:"total"`
}

// TransferResponse carries both legs of a completed transfer
type TransferResponse struct {
	Debit  PointAdjustmentResponse `json:"debit"`
	Credit PointAdjustmentResponse `json:"credit"`
}

// BulkFailureResponse reports one member's failure in a bulk run
type BulkFailureResponse struct {
	UserID int64  `json:"user_id"`
	Error  string `json:"error"`
}

// BulkAwardResponse reports the outcome of a bulk award
type BulkAwardResponse struct {
	Awarded []PointAdjustmentResponse `json:"awarded"`
	Failed  []BulkFailureResponse     `json:"failed,omitempty"`
}

// RecalculateAllResponse reports a full-ledger summary repair
type RecalculateAllResponse struct {
	UsersUpdated int `json:"users_updated"`
}

// LeaderboardResponse wraps the ranked balance list
type LeaderboardResponse struct {
	Entries []*store.LeaderboardEntry `json:"items"`
	Total   int                       `json:"total"`
}

// MapAdjustmentToDTO maps a schema.PointAdjustment to PointAdjustmentResponse
func MapAdjustmentToDTO(adjustment *schema.PointAdjustment) PointAdjustmentResponse {
	return PointAdjustmentResponse{
		ID:             adjustment.ID,
		UserID:         adjustment.UserID,
		Points:         adjustment.Points,
		AdjustmentType: string(adjustment.AdjustmentType),
		Description:    adjustment.Description,
		CharacterName:  adjustment.CharacterName,
		CreatedBy:      adjustment.CreatedByID,
		IsLocked:       adjustment.IsLocked,
		CreatedAt:      adjustment.CreatedAt,
	}
}

// MapAdjustmentsToDTO maps a ledger page to AdjustmentListResponse
func MapAdjustmentsToDTO(adjustments []*schema.PointAdjustment, offset int, total int64) *AdjustmentListResponse {
	items := make([]PointAdjustmentResponse, 0, len(adjustments))
	for _, adjustment := range adjustments {
		items = append(items, MapAdjustmentToDTO(adjustment))
	}
	return &AdjustmentListResponse{
		Adjustments: items,
		Offset:      &offset,
		Total:       total,
	}
}

// MapBalanceToDTO maps a schema.UserPointsSummary to BalanceResponse
func MapBalanceToDTO(summary *schema.UserPointsSummary) *BalanceResponse {
	return &BalanceResponse{
		UserID:       summary.UserID,
		TotalPoints:  summary.TotalPoints,
		EarnedPoints: summary.EarnedPoints,
		SpentPoints:  summary.SpentPoints,
		UpdatedAt:    summary.UpdatedAt,
	}
}

// MapTransferToDTO maps a store.TransferResult to TransferResponse
func MapTransferToDTO(result *store.TransferResult) *TransferResponse {
	return &TransferResponse{
		Debit:  MapAdjustmentToDTO(result.Debit),
		Credit: MapAdjustmentToDTO(result.Credit),
	}
}

// MapBulkAwardToDTO maps a ledger.BulkAwardResult to BulkAwardResponse
func MapBulkAwardToDTO(result *ledger.BulkAwardResult) *BulkAwardResponse {
	response := &BulkAwardResponse{
		Awarded: make([]PointAdjustmentResponse, 0, len(result.Awarded)),
	}
	for _, adjustment := range result.Awarded {
		response.Awarded = append(response.Awarded, MapAdjustmentToDTO(adjustment))
	}
	for _, failure := range result.Failed {
		response.Failed = append(response.Failed, BulkFailureResponse{
			UserID: failure.UserID,
			Error:  failure.Err.Error(),
		})
	}
	return response
}
