package schema

import (
	"time"

	"gorm.io/datatypes"
)

// User represents the users table - one row per guild member account
type User struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Username is the unique login/display name
	Username string `gorm:"column:username;not null;uniqueIndex;type:varchar(150)"`
	// DiscordID is the linked Discord snowflake (10-20 digits), empty when unlinked
	DiscordID *string `gorm:"column:discord_id;uniqueIndex;type:varchar(20)"`
	// IsActive indicates whether the member is an active guild member
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this user was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Rank represents the ranks table - the guild rank catalog.
// Ranks are a lookup set only: characters and users do not persist a rank
// reference (rank assignment during provisioning is resolved and logged but
// intentionally not stored).
type Rank struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique, title-cased rank name (e.g., "Trial Member")
	Name string `gorm:"column:name;not null;uniqueIndex;type:varchar(50)"`
	// Level is the unique rank ordering; lower numbers outrank higher ones
	Level int `gorm:"column:level;not null;uniqueIndex"`
	// Description explains the rank's role
	Description string `gorm:"column:description;type:text"`
	// Permissions is a free-form JSON permission map
	Permissions datatypes.JSON `gorm:"column:permissions;type:jsonb"`
	// Color is the display color as a hex string
	Color string `gorm:"column:color;not null;default:#000000;type:varchar(7)"`
	// CreatedAt is the timestamp when this rank was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this rank was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Rank model
func (Rank) TableName() string {
	return "ranks"
}

// Group represents the groups table - named membership sets used for
// provisioning defaults ("Guild Members", "Voting Members")
type Group struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique group name
	Name string `gorm:"column:name;not null;uniqueIndex;type:varchar(150)"`
	// CreatedAt is the timestamp when this group was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Group model
func (Group) TableName() string {
	return "groups"
}

// UserGroup represents the user_groups table - membership of users in groups
type UserGroup struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the member
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_user_groups_user_group,priority:1"`
	// GroupID references the group
	GroupID int64 `gorm:"column:group_id;not null;uniqueIndex:idx_user_groups_user_group,priority:2"`
	// CreatedAt is the timestamp when this membership was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Group Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserGroup model
func (UserGroup) TableName() string {
	return "user_groups"
}
