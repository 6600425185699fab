package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentType categorizes a ledger entry
type AdjustmentType string

const (
	// AdjustmentTypeRaidAttendance is points earned by attending a raid
	AdjustmentTypeRaidAttendance AdjustmentType = "raid_attendance"
	// AdjustmentTypeRaidBonus is the on-time bonus for a raid
	AdjustmentTypeRaidBonus AdjustmentType = "raid_bonus"
	// AdjustmentTypeItemPurchase is a loot purchase deduction
	AdjustmentTypeItemPurchase AdjustmentType = "item_purchase"
	// AdjustmentTypeManual is an officer-entered correction
	AdjustmentTypeManual AdjustmentType = "manual_adjustment"
	// AdjustmentTypeDecay is a periodic balance decay
	AdjustmentTypeDecay AdjustmentType = "decay"
	// AdjustmentTypeBonus is a discretionary award
	AdjustmentTypeBonus AdjustmentType = "bonus"
	// AdjustmentTypePenalty is a discretionary deduction
	AdjustmentTypePenalty AdjustmentType = "penalty"
	// AdjustmentTypeTransfer is one leg of a member-to-member transfer
	AdjustmentTypeTransfer AdjustmentType = "transfer"
)

// Valid reports whether the type is one of the recognized categories
func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentTypeRaidAttendance, AdjustmentTypeRaidBonus,
		AdjustmentTypeItemPurchase, AdjustmentTypeManual,
		AdjustmentTypeDecay, AdjustmentTypeBonus,
		AdjustmentTypePenalty, AdjustmentTypeTransfer:
		return true
	}
	return false
}

// MustBeNegative reports whether entries of this type must carry negative points
func (t AdjustmentType) MustBeNegative() bool {
	return t == AdjustmentTypeItemPurchase
}

// MustBeNonNegative reports whether entries of this type must carry non-negative points
func (t AdjustmentType) MustBeNonNegative() bool {
	return t == AdjustmentTypeRaidAttendance || t == AdjustmentTypeRaidBonus || t == AdjustmentTypeBonus
}

// PointAdjustment represents the point_adjustments table - the append-only
// DKP ledger. Rows are immutable once written except for lock toggling;
// administrators may delete rows, which triggers a summary recalculation.
type PointAdjustment struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the member whose balance this entry affects
	UserID int64 `gorm:"column:user_id;not null;index:idx_point_adjustments_user_created,priority:1"`
	// Points is the signed amount; positive earns, negative spends
	Points decimal.Decimal `gorm:"column:points;not null;type:numeric(10,2)"`
	// AdjustmentType categorizes the entry and constrains its sign
	AdjustmentType AdjustmentType `gorm:"column:adjustment_type;not null;index"`
	// Description is the human-readable reason for the entry
	Description string `gorm:"column:description;not null;type:text"`
	// CharacterName snapshots the character credited at write time
	CharacterName string `gorm:"column:character_name;type:varchar(64)"`
	// CreatedByID is the member who recorded the entry; nil for system entries
	CreatedByID *int64 `gorm:"column:created_by_id"`
	// IsLocked prevents deletion of reconciled entries
	IsLocked bool `gorm:"column:is_locked;not null;default:false"`
	// CreatedAt is the timestamp when this entry was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_point_adjustments_user_created,priority:2,sort:desc"`

	// Associations
	User      User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedBy *User `gorm:"foreignKey:CreatedByID"`
}

// TableName specifies the table name for the PointAdjustment model
func (PointAdjustment) TableName() string {
	return "point_adjustments"
}

// UserPointsSummary represents the user_points_summaries table - the
// denormalized balance cache, one row per user. The summary is maintained
// incrementally under a row lock on the write path; RecalculateSummary
// re-derives it from the full ledger as a repair operation. The invariant
// total = earned - spent holds either way.
type UserPointsSummary struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the member this summary belongs to
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex"`
	// TotalPoints is the spendable balance (earned - spent)
	TotalPoints decimal.Decimal `gorm:"column:total_points;not null;default:0;type:numeric(12,2)"`
	// EarnedPoints is the sum of all positive ledger entries
	EarnedPoints decimal.Decimal `gorm:"column:earned_points;not null;default:0;type:numeric(12,2)"`
	// SpentPoints is the absolute sum of all negative ledger entries
	SpentPoints decimal.Decimal `gorm:"column:spent_points;not null;default:0;type:numeric(12,2)"`
	// CreatedAt is the timestamp when this summary row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last balance change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserPointsSummary model
func (UserPointsSummary) TableName() string {
	return "user_points_summaries"
}
