package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// MemberAttendanceSummary represents the member_attendance_summaries table -
// a per-user, per-day snapshot of rolling attendance rates, streaks, and
// voting eligibility. Rows are recomputed by the attendance sweeper and
// upserted on (user_id, summary_date); reads never derive rates live.
type MemberAttendanceSummary struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the member this snapshot belongs to
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_member_attendance_user_date,priority:1"`
	// SummaryDate is the snapshot day
	SummaryDate time.Time `gorm:"column:summary_date;not null;uniqueIndex:idx_member_attendance_user_date,priority:2;type:date"`
	// Attended7d is raids attended in the trailing 7 days
	Attended7d int `gorm:"column:attended_7d;not null;default:0"`
	// Total7d is completed raids in the trailing 7 days
	Total7d int `gorm:"column:total_7d;not null;default:0"`
	// Rate7d is attended/total over the trailing 7 days as a percentage
	Rate7d decimal.Decimal `gorm:"column:rate_7d;not null;default:0;type:numeric(5,2)"`
	// Attended30d is raids attended in the trailing 30 days
	Attended30d int `gorm:"column:attended_30d;not null;default:0"`
	// Total30d is completed raids in the trailing 30 days
	Total30d int `gorm:"column:total_30d;not null;default:0"`
	// Rate30d is the 30-day attendance percentage; drives voting eligibility and weight
	Rate30d decimal.Decimal `gorm:"column:rate_30d;not null;default:0;type:numeric(5,2)"`
	// Attended60d is raids attended in the trailing 60 days
	Attended60d int `gorm:"column:attended_60d;not null;default:0"`
	// Total60d is completed raids in the trailing 60 days
	Total60d int `gorm:"column:total_60d;not null;default:0"`
	// Rate60d is the 60-day attendance percentage
	Rate60d decimal.Decimal `gorm:"column:rate_60d;not null;default:0;type:numeric(5,2)"`
	// Attended90d is raids attended in the trailing 90 days
	Attended90d int `gorm:"column:attended_90d;not null;default:0"`
	// Total90d is completed raids in the trailing 90 days
	Total90d int `gorm:"column:total_90d;not null;default:0"`
	// Rate90d is the 90-day attendance percentage
	Rate90d decimal.Decimal `gorm:"column:rate_90d;not null;default:0;type:numeric(5,2)"`
	// AttendedLifetime is raids attended since the member's first recorded attendance
	AttendedLifetime int `gorm:"column:attended_lifetime;not null;default:0"`
	// TotalLifetime is completed raids since the member's first recorded attendance
	TotalLifetime int `gorm:"column:total_lifetime;not null;default:0"`
	// RateLifetime is the lifetime attendance percentage
	RateLifetime decimal.Decimal `gorm:"column:rate_lifetime;not null;default:0;type:numeric(5,2)"`
	// IsVotingEligible is true when Rate30d meets the eligibility threshold
	IsVotingEligible bool `gorm:"column:is_voting_eligible;not null;default:false;index"`
	// CurrentStreak is the unbroken attendance run ending at the most recent raid
	CurrentStreak int `gorm:"column:current_streak;not null;default:0"`
	// LongestStreak is the longest attendance run anywhere in the member's history
	LongestStreak int `gorm:"column:longest_streak;not null;default:0"`
	// CreatedAt is the timestamp when this snapshot was first written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this snapshot was last recomputed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the MemberAttendanceSummary model
func (MemberAttendanceSummary) TableName() string {
	return "member_attendance_summaries"
}
