package loot

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/messaging"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreateItemInput creates a loot catalog entry
type CreateItemInput struct {
	Name        string
	Description string
	// SuggestedCost is the default DKP price offered at distribution time
	SuggestedCost decimal.Decimal
}

// DistributionInput awards an item to a member and charges their balance
type DistributionInput struct {
	ItemID        int64
	UserID        int64
	CharacterName string
	// PointCost is the per-unit price; the buyer is charged cost times quantity
	PointCost decimal.Decimal
	Quantity  int
	RaidID    *int64
	// DistributedBy is the officer who handed out the item
	DistributedBy *int64
	// DiscordContext carries the originating Discord command metadata, if any
	DiscordContext map[string]any
}

// Service manages the loot catalog and distributions. A distribution charges
// the buyer's DKP balance and records the award atomically; deleting one
// refunds the charge. The loot announcement rides the producing transaction
// through the outbox; the publish here is only the low-latency nudge.
//
//go:generate mockgen -source=service.go -destination=../mocks/loot.go -package=mocks -mock_names=Service=MockLootService
type Service interface {
	// CreateItem creates a loot catalog entry
	CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error)

	// GetItem retrieves an item by ID
	GetItem(ctx context.Context, itemID int64) (*schema.Item, error)

	// ListItems lists catalog items, optionally only active ones
	ListItems(ctx context.Context, activeOnly bool) ([]*schema.Item, error)

	// RecordDistribution awards an item to a member, charging cost times
	// quantity against their balance in the same transaction
	RecordDistribution(ctx context.Context, input DistributionInput) (*schema.LootDistribution, error)

	// GetDistribution retrieves a distribution with its item and buyer
	GetDistribution(ctx context.Context, distributionID int64) (*schema.LootDistribution, error)

	// History pages distributions matching the filter, newest first
	History(ctx context.Context, filter store.DistributionFilter, limit, offset int) ([]*schema.LootDistribution, int64, error)

	// DeleteDistribution removes a distribution and refunds the charge
	DeleteDistribution(ctx context.Context, distributionID int64, reason string, performedBy *int64) (*schema.LootDistribution, error)
}

type service struct {
	store     store.Store
	publisher messaging.Publisher
}

// NewService creates a loot service over the store and the publisher for
// post-commit nudges
func NewService(st store.Store, pub messaging.Publisher) Service {
	return &service{
		store:     st,
		publisher: pub,
	}
}

// CreateItem creates a loot catalog entry
func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if input.SuggestedCost.IsNegative() {
		return nil, fmt.Errorf("suggested cost cannot be negative")
	}

	item, err := s.store.CreateItem(ctx, store.CreateItemInput{
		Name:          name,
		Description:   input.Description,
		SuggestedCost: input.SuggestedCost,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Item created",
		zap.Int64("itemID", item.ID),
		zap.String("name", item.Name),
		zap.String("suggestedCost", item.SuggestedCost.String()))
	return item, nil
}

// GetItem retrieves an item by ID
func (s *service) GetItem(ctx context.Context, itemID int64) (*schema.Item, error) {
	item, err := s.store.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// ListItems lists catalog items, optionally only active ones
func (s *service) ListItems(ctx context.Context, activeOnly bool) ([]*schema.Item, error) {
	return s.store.ListItems(ctx, activeOnly)
}

// RecordDistribution awards an item to a member and charges their balance
func (s *service) RecordDistribution(ctx context.Context, input DistributionInput) (*schema.LootDistribution, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	distribution, event, err := s.store.CreateLootDistribution(ctx, store.CreateDistributionInput{
		ItemID:         input.ItemID,
		UserID:         input.UserID,
		CharacterName:  domain.NormalizeCharacterName(input.CharacterName),
		PointCost:      input.PointCost,
		Quantity:       quantity,
		RaidID:         input.RaidID,
		DistributedBy:  input.DistributedBy,
		DiscordContext: input.DiscordContext,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	logger.InfoCtx(ctx, "Loot distributed",
		zap.Int64("distributionID", distribution.ID),
		zap.String("item", distribution.Item.Name),
		zap.Int("quantity", distribution.Quantity),
		zap.Int64("userID", distribution.UserID),
		zap.String("characterName", distribution.CharacterName),
		zap.String("pointCost", distribution.PointCost.String()))
	return distribution, nil
}

// GetDistribution retrieves a distribution with its item and buyer
func (s *service) GetDistribution(ctx context.Context, distributionID int64) (*schema.LootDistribution, error) {
	distribution, err := s.store.GetLootDistributionByID(ctx, distributionID)
	if err != nil {
		return nil, err
	}
	if distribution == nil {
		return nil, domain.ErrDistributionNotFound
	}
	return distribution, nil
}

// History pages distributions matching the filter, newest first
func (s *service) History(ctx context.Context, filter store.DistributionFilter, limit, offset int) ([]*schema.LootDistribution, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListLootDistributions(ctx, filter, limit, offset)
}

// DeleteDistribution removes a distribution and refunds the charge
func (s *service) DeleteDistribution(ctx context.Context, distributionID int64, reason string, performedBy *int64) (*schema.LootDistribution, error) {
	distribution, err := s.store.DeleteLootDistribution(ctx, store.DeleteDistributionInput{
		DistributionID: distributionID,
		PerformedBy:    performedBy,
		Reason:         reason,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Loot distribution deleted",
		zap.Int64("distributionID", distribution.ID),
		zap.String("item", distribution.Item.Name),
		zap.Int("quantity", distribution.Quantity),
		zap.Int64("userID", distribution.UserID))
	return distribution, nil
}
