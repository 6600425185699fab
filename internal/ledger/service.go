package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	recentStatsDays     = 7
)

// BulkAwardFailure records one member's failed award in a bulk run
type BulkAwardFailure struct {
	UserID int64
	Err    error
}

// BulkAwardResult reports the outcome of a bulk award. Failures do not
// abort the run; each award is its own transaction.
type BulkAwardResult struct {
	Awarded []*schema.PointAdjustment
	Failed  []BulkAwardFailure
}

// Service is the DKP ledger. All balance mutations go through the store's
// locked write path, so the non-negative floor holds under concurrency.
//
//go:generate mockgen -source=service.go -destination=../mocks/ledger.go -package=mocks -mock_names=Service=MockLedgerService
type Service interface {
	// AwardPoints writes one positive ledger entry for a member
	AwardPoints(ctx context.Context, userID int64, points decimal.Decimal, adjType schema.AdjustmentType, description, characterName string, createdBy *int64) (*schema.PointAdjustment, error)

	// DeductPoints writes one negative ledger entry; points is the positive magnitude to deduct
	DeductPoints(ctx context.Context, userID int64, points decimal.Decimal, adjType schema.AdjustmentType, description, characterName string, createdBy *int64) (*schema.PointAdjustment, error)

	// BulkAwardPoints awards the same amount to every listed member. All
	// members must exist; per-member failures are collected, not fatal.
	BulkAwardPoints(ctx context.Context, userIDs []int64, points decimal.Decimal, adjType schema.AdjustmentType, description string, createdBy *int64) (*BulkAwardResult, error)

	// ProcessItemPurchase deducts an item's cost after an affordability
	// check; on insufficient balance nothing is written
	ProcessItemPurchase(ctx context.Context, userID int64, itemCost decimal.Decimal, itemName, characterName string, createdBy *int64) (*schema.PointAdjustment, error)

	// TransferPoints moves points between members as paired transfer
	// entries in one transaction; the debit is floor-checked
	TransferPoints(ctx context.Context, fromUserID, toUserID int64, amount decimal.Decimal, reason string, createdBy *int64) (*store.TransferResult, error)

	// GetUserBalance returns the member's summary, creating a zero row when absent
	GetUserBalance(ctx context.Context, userID int64) (*schema.UserPointsSummary, error)

	// GetUserHistory pages the member's ledger entries newest first
	GetUserHistory(ctx context.Context, userID int64, limit, offset int) ([]*schema.PointAdjustment, int64, error)

	// RecalculateSummary re-derives one member's summary from the full ledger
	RecalculateSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error)

	// RecalculateAllSummaries re-derives every member with ledger history,
	// returning the number repaired
	RecalculateAllSummaries(ctx context.Context) (int, error)

	// DeleteAdjustment removes an unlocked entry and recalculates the owner's summary
	DeleteAdjustment(ctx context.Context, adjustmentID int64, performedBy *int64) (*schema.PointAdjustment, error)

	// Leaderboard returns the top balances ordered by total descending
	Leaderboard(ctx context.Context, limit int) ([]*store.LeaderboardEntry, error)

	// Stats aggregates economy-wide totals over the trailing week
	Stats(ctx context.Context) (*store.LedgerStats, error)
}

type service struct {
	store store.Store
	clock adapter.Clock
}

// NewService creates a ledger service over the store
func NewService(s store.Store, clock adapter.Clock) Service {
	return &service{store: s, clock: clock}
}

// AwardPoints writes one positive ledger entry for a member
func (s *service) AwardPoints(ctx context.Context, userID int64, points decimal.Decimal, adjType schema.AdjustmentType, description, characterName string, createdBy *int64) (*schema.PointAdjustment, error) {
	if !points.IsPositive() {
		return nil, fmt.Errorf("%w: points awarded must be positive, got %s", domain.ErrInvalidAdjustmentSign, points)
	}

	return s.store.CreateAdjustment(ctx, store.CreateAdjustmentInput{
		UserID:         userID,
		Points:         points,
		AdjustmentType: adjType,
		Description:    description,
		CharacterName:  characterName,
		CreatedBy:      createdBy,
	})
}

// DeductPoints writes one negative ledger entry; points is the positive
// magnitude to deduct
func (s *service) DeductPoints(ctx context.Context, userID int64, points decimal.Decimal, adjType schema.AdjustmentType, description, characterName string, createdBy *int64) (*schema.PointAdjustment, error) {
	if !points.IsPositive() {
		return nil, fmt.Errorf("%w: points to deduct must be positive, got %s", domain.ErrInvalidAdjustmentSign, points)
	}

	return s.store.CreateAdjustment(ctx, store.CreateAdjustmentInput{
		UserID:         userID,
		Points:         points.Neg(),
		AdjustmentType: adjType,
		Description:    description,
		CharacterName:  characterName,
		CreatedBy:      createdBy,
	})
}

// BulkAwardPoints awards the same amount to every listed member
func (s *service) BulkAwardPoints(ctx context.Context, userIDs []int64, points decimal.Decimal, adjType schema.AdjustmentType, description string, createdBy *int64) (*BulkAwardResult, error) {
	if !points.IsPositive() {
		return nil, fmt.Errorf("%w: points awarded must be positive, got %s", domain.ErrInvalidAdjustmentSign, points)
	}

	users, err := s.store.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	found := make(map[int64]bool, len(users))
	for _, u := range users {
		found[u.ID] = true
	}
	var missing []int64
	for _, id := range userIDs {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrUserNotFound, missing)
	}

	result := &BulkAwardResult{}
	for _, id := range userIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		adjustment, err := s.store.CreateAdjustment(ctx, store.CreateAdjustmentInput{
			UserID:         id,
			Points:         points,
			AdjustmentType: adjType,
			Description:    description,
			CreatedBy:      createdBy,
		})
		if err != nil {
			logger.WarnCtx(ctx, "Bulk award failed for user",
				zap.Int64("userID", id),
				zap.Error(err))
			result.Failed = append(result.Failed, BulkAwardFailure{UserID: id, Err: err})
			continue
		}
		result.Awarded = append(result.Awarded, adjustment)
	}

	return result, nil
}

// ProcessItemPurchase deducts an item's cost after an affordability check
func (s *service) ProcessItemPurchase(ctx context.Context, userID int64, itemCost decimal.Decimal, itemName, characterName string, createdBy *int64) (*schema.PointAdjustment, error) {
	if !itemCost.IsPositive() {
		return nil, fmt.Errorf("%w: item cost must be positive, got %s", domain.ErrInvalidAdjustmentSign, itemCost)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	summary, err := s.store.GetOrCreateUserPointsSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if summary.TotalPoints.LessThan(itemCost) {
		return nil, fmt.Errorf("User %s cannot afford this item. Current balance: %s, Item cost: %s: %w",
			user.Username, summary.TotalPoints, itemCost, domain.ErrInsufficientBalance)
	}

	// The store re-checks the floor under the summary row lock, so a
	// concurrent spend between this check and the write still cannot
	// overdraw.
	return s.store.CreateAdjustment(ctx, store.CreateAdjustmentInput{
		UserID:         userID,
		Points:         itemCost.Neg(),
		AdjustmentType: schema.AdjustmentTypeItemPurchase,
		Description:    fmt.Sprintf("Purchase: %s", itemName),
		CharacterName:  characterName,
		CreatedBy:      createdBy,
	})
}

// TransferPoints moves points between members as paired transfer entries
func (s *service) TransferPoints(ctx context.Context, fromUserID, toUserID int64, amount decimal.Decimal, reason string, createdBy *int64) (*store.TransferResult, error) {
	if fromUserID == toUserID {
		return nil, fmt.Errorf("cannot transfer points to the same user")
	}

	return s.store.CreateTransferAdjustments(ctx, store.TransferPointsInput{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Amount:     amount,
		Reason:     reason,
		CreatedBy:  createdBy,
	})
}

// GetUserBalance returns the member's summary, creating a zero row when absent
func (s *service) GetUserBalance(ctx context.Context, userID int64) (*schema.UserPointsSummary, error) {
	return s.store.GetOrCreateUserPointsSummary(ctx, userID)
}

// GetUserHistory pages the member's ledger entries newest first
func (s *service) GetUserHistory(ctx context.Context, userID int64, limit, offset int) ([]*schema.PointAdjustment, int64, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.store.ListAdjustmentsByUser(ctx, userID, limit, offset)
}

// RecalculateSummary re-derives one member's summary from the full ledger
func (s *service) RecalculateSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error) {
	return s.store.RecalculateUserSummary(ctx, userID)
}

// RecalculateAllSummaries re-derives every member with ledger history
func (s *service) RecalculateAllSummaries(ctx context.Context) (int, error) {
	userIDs, err := s.store.ListUserIDsWithAdjustments(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users with adjustments: %w", err)
	}

	recalculated := 0
	for _, id := range userIDs {
		if err := ctx.Err(); err != nil {
			return recalculated, err
		}

		if _, err := s.store.RecalculateUserSummary(ctx, id); err != nil {
			logger.ErrorCtx(ctx, err, zap.Int64("userID", id))
			continue
		}
		recalculated++
	}

	logger.InfoCtx(ctx, "Recalculated point summaries",
		zap.Int("recalculated", recalculated),
		zap.Int("total", len(userIDs)))
	return recalculated, nil
}

// DeleteAdjustment removes an unlocked entry and recalculates the owner's
// summary
func (s *service) DeleteAdjustment(ctx context.Context, adjustmentID int64, performedBy *int64) (*schema.PointAdjustment, error) {
	return s.store.DeleteAdjustment(ctx, store.DeleteAdjustmentInput{
		AdjustmentID: adjustmentID,
		PerformedBy:  performedBy,
	})
}

// Leaderboard returns the top balances ordered by total descending
func (s *service) Leaderboard(ctx context.Context, limit int) ([]*store.LeaderboardEntry, error) {
	return s.store.GetLeaderboard(ctx, limit)
}

// Stats aggregates economy-wide totals over the trailing week
func (s *service) Stats(ctx context.Context) (*store.LedgerStats, error) {
	recentSince := s.clock.Now().AddDate(0, 0, -recentStatsDays)
	return s.store.GetLedgerStats(ctx, recentSince)
}
