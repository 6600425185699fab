package schema

import (
	"time"
)

// CharacterStatus is the lifecycle status of a character
type CharacterStatus string

const (
	// CharacterStatusActive is a character in active raiding rotation
	CharacterStatusActive CharacterStatus = "active"
	// CharacterStatusInactive is a character whose player is on a break
	CharacterStatusInactive CharacterStatus = "inactive"
	// CharacterStatusRetired is a character permanently shelved
	CharacterStatusRetired CharacterStatus = "retired"
	// CharacterStatusAlt is a secondary character subordinate to a main
	CharacterStatusAlt CharacterStatus = "alt"
)

// Character represents the characters table - one row per in-game character
type Character struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique, title-cased character name (minimum 2 characters)
	Name string `gorm:"column:name;not null;uniqueIndex;type:varchar(64)"`
	// Class is the character's game class (e.g., "Cleric")
	Class string `gorm:"column:class;not null;type:varchar(50)"`
	// Level is the character's game level
	Level int `gorm:"column:level;not null;default:1"`
	// Status is the lifecycle status: active, inactive, retired, alt
	Status CharacterStatus `gorm:"column:status;not null;default:active"`
	// UserID references the owning member
	UserID int64 `gorm:"column:user_id;not null;index"`
	// MainCharacterID references the main character when this row is an alt.
	// Alts cannot themselves have alts; the roster service rejects chains.
	MainCharacterID *int64 `gorm:"column:main_character_id;index"`
	// Description is free-form notes about the character
	Description string `gorm:"column:description;type:text"`
	// IsActive mirrors the owning member's active flag for roster filtering
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this character was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this character was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	User          User       `gorm:"foreignKey:UserID"`
	MainCharacter *Character `gorm:"foreignKey:MainCharacterID"`
}

// TableName specifies the table name for the Character model
func (Character) TableName() string {
	return "characters"
}

// IsMain reports whether this character is a main (has no main reference)
func (c *Character) IsMain() bool {
	return c.MainCharacterID == nil
}

// IsAlt reports whether this character is an alt of another character
func (c *Character) IsAlt() bool {
	return c.MainCharacterID != nil
}

// OwnershipReason is the reason a character changed hands
type OwnershipReason string

const (
	// OwnershipReasonCreated marks the initial creation record
	OwnershipReasonCreated OwnershipReason = "created"
	// OwnershipReasonManual is an officer-initiated transfer
	OwnershipReasonManual OwnershipReason = "manual"
	// OwnershipReasonInactive is a transfer due to owner inactivity
	OwnershipReasonInactive OwnershipReason = "inactive"
	// OwnershipReasonLeftGuild is a transfer after the owner left the guild
	OwnershipReasonLeftGuild OwnershipReason = "left_guild"
	// OwnershipReasonReturned is a transfer back to a returning owner
	OwnershipReasonReturned OwnershipReason = "returned"
	// OwnershipReasonOther is any other documented reason
	OwnershipReasonOther OwnershipReason = "other"
)

// Valid reports whether the reason is one of the recognized categories
func (r OwnershipReason) Valid() bool {
	switch r {
	case OwnershipReasonCreated, OwnershipReasonManual,
		OwnershipReasonInactive, OwnershipReasonLeftGuild,
		OwnershipReasonReturned, OwnershipReasonOther:
		return true
	}
	return false
}

// CharacterOwnership represents the character_ownerships table - append-only
// transfer history. The first row for a character has no previous owner.
type CharacterOwnership struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CharacterID references the character that changed hands
	CharacterID int64 `gorm:"column:character_id;not null;index"`
	// PreviousOwnerID is the owner before the transfer; nil for the creation record
	PreviousOwnerID *int64 `gorm:"column:previous_owner_id"`
	// NewOwnerID is the owner after the transfer
	NewOwnerID int64 `gorm:"column:new_owner_id;not null"`
	// Reason categorizes the transfer
	Reason OwnershipReason `gorm:"column:reason;not null;default:manual"`
	// Notes is free-form context for the transfer
	Notes string `gorm:"column:notes;type:text"`
	// TransferredByID is the member who performed the transfer; nil for system actions
	TransferredByID *int64 `gorm:"column:transferred_by_id"`
	// TransferDate is the timestamp of the transfer
	TransferDate time.Time `gorm:"column:transfer_date;not null;default:now();type:timestamptz"`

	// Associations
	Character     Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	PreviousOwner *User     `gorm:"foreignKey:PreviousOwnerID"`
	NewOwner      User      `gorm:"foreignKey:NewOwnerID"`
	TransferredBy *User     `gorm:"foreignKey:TransferredByID"`
}

// TableName specifies the table name for the CharacterOwnership model
func (CharacterOwnership) TableName() string {
	return "character_ownerships"
}
