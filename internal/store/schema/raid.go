package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents the events table - a reusable raid template carrying the
// point values a raid instance pays out
type Event struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique template name (e.g., "Plane of Fear Clear")
	Name string `gorm:"column:name;not null;uniqueIndex;type:varchar(150)"`
	// Description explains the event
	Description string `gorm:"column:description;type:text"`
	// BasePoints is awarded to every attendee when the raid pays out
	BasePoints decimal.Decimal `gorm:"column:base_points;not null;default:0;type:numeric(10,2)"`
	// OnTimeBonus is additionally awarded to attendees flagged on time
	OnTimeBonus decimal.Decimal `gorm:"column:on_time_bonus;not null;default:0;type:numeric(10,2)"`
	// IsActive indicates whether new raids may use this template
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this template was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this template was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// RaidStatus is the lifecycle status of a raid instance
type RaidStatus string

const (
	// RaidStatusScheduled is a raid that has not started
	RaidStatusScheduled RaidStatus = "scheduled"
	// RaidStatusInProgress is a raid currently running
	RaidStatusInProgress RaidStatus = "in_progress"
	// RaidStatusCompleted is a finished raid; only completed raids count toward attendance
	RaidStatusCompleted RaidStatus = "completed"
	// RaidStatusCancelled is a raid that never happened
	RaidStatusCancelled RaidStatus = "cancelled"
)

// Raid represents the raids table - a dated instance of an event template
type Raid struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID references the template this raid instantiates
	EventID int64 `gorm:"column:event_id;not null;index"`
	// Name snapshots the event name at creation time
	Name string `gorm:"column:name;not null;type:varchar(150)"`
	// ScheduledAt is when the raid takes place
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null;index;type:timestamptz"`
	// Status is the lifecycle status: scheduled, in_progress, completed, cancelled
	Status RaidStatus `gorm:"column:status;not null;default:scheduled"`
	// PointsAwarded guards the one-shot point payout; once true the raid cannot pay again
	PointsAwarded bool `gorm:"column:points_awarded;not null;default:false"`
	// Notes is free-form raid notes
	Notes string `gorm:"column:notes;type:text"`
	// CreatedByID is the member who scheduled the raid
	CreatedByID *int64 `gorm:"column:created_by_id"`
	// CreatedAt is the timestamp when this raid was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this raid was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Event     Event `gorm:"foreignKey:EventID"`
	CreatedBy *User `gorm:"foreignKey:CreatedByID"`
}

// TableName specifies the table name for the Raid model
func (Raid) TableName() string {
	return "raids"
}

// RaidAttendance represents the raid_attendances table - one row per
// (raid, user); duplicates are rejected at the unique index
type RaidAttendance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RaidID references the raid attended
	RaidID int64 `gorm:"column:raid_id;not null;uniqueIndex:idx_raid_attendances_raid_user,priority:1"`
	// UserID references the attending member
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_raid_attendances_raid_user,priority:2;index"`
	// CharacterName snapshots the character that attended
	CharacterName string `gorm:"column:character_name;not null;type:varchar(64)"`
	// OnTime indicates the attendee arrived before the raid start cutoff
	OnTime bool `gorm:"column:on_time;not null;default:false"`
	// RecordedByID is the member who recorded the attendance
	RecordedByID *int64 `gorm:"column:recorded_by_id"`
	// CreatedAt is the timestamp when this attendance was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Raid       Raid  `gorm:"foreignKey:RaidID;constraint:OnDelete:CASCADE"`
	User       User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RecordedBy *User `gorm:"foreignKey:RecordedByID"`
}

// TableName specifies the table name for the RaidAttendance model
func (RaidAttendance) TableName() string {
	return "raid_attendances"
}
