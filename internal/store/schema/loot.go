package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Item represents the items table - the loot catalog
type Item struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique item name
	Name string `gorm:"column:name;not null;uniqueIndex;type:varchar(150)"`
	// Description is free-form item notes
	Description string `gorm:"column:description;type:text"`
	// SuggestedCost is the default DKP price for the item
	SuggestedCost decimal.Decimal `gorm:"column:suggested_cost;not null;default:0;type:numeric(10,2)"`
	// IsActive indicates whether the item may still be distributed
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this item was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this item was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// LootDistribution represents the loot_distributions table - a purchase
// event. Creation writes the ledger deduction in the same transaction;
// deletion writes an offsetting refund adjustment.
type LootDistribution struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ItemID references the purchased item
	ItemID int64 `gorm:"column:item_id;not null;index"`
	// UserID references the buying member
	UserID int64 `gorm:"column:user_id;not null;index"`
	// CharacterName snapshots the character receiving the item
	CharacterName string `gorm:"column:character_name;not null;type:varchar(64)"`
	// PointCost is the per-unit price charged
	PointCost decimal.Decimal `gorm:"column:point_cost;not null;type:numeric(10,2)"`
	// Quantity is the number of units purchased
	Quantity int `gorm:"column:quantity;not null;default:1"`
	// RaidID references the raid the item dropped in, when known
	RaidID *int64 `gorm:"column:raid_id"`
	// DistributedByID is the member who handed out the loot
	DistributedByID *int64 `gorm:"column:distributed_by_id"`
	// CreatedAt is the timestamp of the distribution
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Item          Item  `gorm:"foreignKey:ItemID"`
	User          User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Raid          *Raid `gorm:"foreignKey:RaidID"`
	DistributedBy *User `gorm:"foreignKey:DistributedByID"`
}

// TableName specifies the table name for the LootDistribution model
func (LootDistribution) TableName() string {
	return "loot_distributions"
}

// AuditAction categorizes a loot audit log entry
type AuditAction string

const (
	// AuditActionDistribution records a loot hand-out
	AuditActionDistribution AuditAction = "distribution"
	// AuditActionDeletion records a distribution removal/refund
	AuditActionDeletion AuditAction = "deletion"
	// AuditActionAdjustment records a manual ledger correction
	AuditActionAdjustment AuditAction = "adjustment"
	// AuditActionAdmin records roster/admin actions (links, status changes)
	AuditActionAdmin AuditAction = "admin_action"
)

// LootAuditLog represents the loot_audit_logs table - an append-only side
// log of mutating actions, written in the same transaction as the mutation
// it records
type LootAuditLog struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ActionType categorizes the recorded action
	ActionType AuditAction `gorm:"column:action_type;not null;index"`
	// PerformedByID is the member who performed the action; nil for system actions
	PerformedByID *int64 `gorm:"column:performed_by_id"`
	// AffectedUserID is the member the action applied to
	AffectedUserID *int64 `gorm:"column:affected_user_id;index"`
	// Description is the human-readable account of the action
	Description string `gorm:"column:description;not null;type:text"`
	// OldValues is a JSON snapshot of the state before the action
	OldValues datatypes.JSON `gorm:"column:old_values;type:jsonb"`
	// NewValues is a JSON snapshot of the state after the action
	NewValues datatypes.JSON `gorm:"column:new_values;type:jsonb"`
	// DiscordContext carries the originating Discord interaction, when any
	DiscordContext datatypes.JSON `gorm:"column:discord_context;type:jsonb"`
	// CreatedAt is the timestamp when this entry was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index"`

	// Associations
	PerformedBy  *User `gorm:"foreignKey:PerformedByID"`
	AffectedUser *User `gorm:"foreignKey:AffectedUserID"`
}

// TableName specifies the table name for the LootAuditLog model
func (LootAuditLog) TableName() string {
	return "loot_audit_logs"
}
