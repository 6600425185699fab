package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
)

// ApplicationStatus is the recruitment state machine status
type ApplicationStatus string

const (
	// ApplicationStatusSubmitted is a freshly filed application awaiting officer review
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	// ApplicationStatusOfficerApproved passed officer review and may open for voting
	ApplicationStatusOfficerApproved ApplicationStatus = "officer_approved"
	// ApplicationStatusVotingOpen is collecting member votes until the deadline
	ApplicationStatusVotingOpen ApplicationStatus = "voting_open"
	// ApplicationStatusVotingClosed is closed without a recorded decision
	ApplicationStatusVotingClosed ApplicationStatus = "voting_closed"
	// ApplicationStatusApproved passed the vote
	ApplicationStatusApproved ApplicationStatus = "approved"
	// ApplicationStatusRejected failed the vote or officer review
	ApplicationStatusRejected ApplicationStatus = "rejected"
	// ApplicationStatusWithdrawn was withdrawn by the applicant before a decision
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// Valid reports whether the status is one of the recognized states
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusOfficerApproved,
		ApplicationStatusVotingOpen, ApplicationStatusVotingClosed,
		ApplicationStatusApproved, ApplicationStatusRejected,
		ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// Application represents the applications table - one recruitment case
type Application struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CharacterName is the applicant's character (unique among open applications by service rule)
	CharacterName string `gorm:"column:character_name;not null;type:varchar(64)"`
	// CharacterClass is the applicant character's class
	CharacterClass string `gorm:"column:character_class;not null;type:varchar(50)"`
	// CharacterLevel is the applicant character's level
	CharacterLevel int `gorm:"column:character_level;not null;default:1"`
	// ApplicantName is the player's name
	ApplicantName string `gorm:"column:applicant_name;not null;type:varchar(150)"`
	// Email is the applicant's contact address
	Email string `gorm:"column:email;type:varchar(254)"`
	// DiscordUsername is the applicant's Discord handle
	DiscordUsername string `gorm:"column:discord_username;type:varchar(100)"`
	// GuildExperience is the applicant's free-form history
	GuildExperience string `gorm:"column:guild_experience;type:text"`
	// Status is the state machine position
	Status ApplicationStatus `gorm:"column:status;not null;default:submitted;index"`
	// SubmittedAt is when the application was filed
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;default:now();type:timestamptz"`
	// ReviewedAt is when an officer reviewed the application
	ReviewedAt *time.Time `gorm:"column:reviewed_at;type:timestamptz"`
	// ReviewedByID is the reviewing officer
	ReviewedByID *int64 `gorm:"column:reviewed_by_id"`
	// VotingOpenedAt is when the voting period opened
	VotingOpenedAt *time.Time `gorm:"column:voting_opened_at;type:timestamptz"`
	// VotingDeadline is when the voting period closes
	VotingDeadline *time.Time `gorm:"column:voting_deadline;index;type:timestamptz"`
	// DecisionMadeAt is when the approval/rejection was recorded
	DecisionMadeAt *time.Time `gorm:"column:decision_made_at;type:timestamptz"`
	// DecisionMadeByID is the member or system actor that recorded the decision
	DecisionMadeByID *int64 `gorm:"column:decision_made_by_id"`
	// DecisionReason is the human-readable decision rationale
	DecisionReason string `gorm:"column:decision_reason;type:text"`
	// ApprovedUserID is the provisioned account; nil until the workflow runs
	ApprovedUserID *int64 `gorm:"column:approved_user_id"`
	// LastReminderTier is the smallest deadline-reminder tier (hours) already
	// sent for this voting period; nil before any reminder. Prevents
	// duplicate reminders across sweep runs.
	LastReminderTier *int `gorm:"column:last_reminder_tier"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	ReviewedBy     *User `gorm:"foreignKey:ReviewedByID"`
	DecisionMadeBy *User `gorm:"foreignKey:DecisionMadeByID"`
	ApprovedUser   *User `gorm:"foreignKey:ApprovedUserID"`
}

// TableName specifies the table name for the Application model
func (Application) TableName() string {
	return "applications"
}

// ApplicationVote represents the application_votes table - one weighted vote
// per (application, voter). Weight and attendance rate are snapshots taken
// at cast time; later attendance changes do not alter recorded votes.
type ApplicationVote struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ApplicationID references the application voted on
	ApplicationID int64 `gorm:"column:application_id;not null;uniqueIndex:idx_application_votes_app_voter,priority:1"`
	// VoterID references the voting member
	VoterID int64 `gorm:"column:voter_id;not null;uniqueIndex:idx_application_votes_app_voter,priority:2"`
	// Vote is the recorded choice: yes, no, abstain
	Vote domain.VoteChoice `gorm:"column:vote;not null;type:varchar(10)"`
	// VoteWeight is the attendance-tier multiplier snapshot at cast time
	VoteWeight decimal.Decimal `gorm:"column:vote_weight;not null;default:1.0;type:numeric(3,1)"`
	// AttendanceRate30d is the voter's 30-day attendance rate snapshot at cast time
	AttendanceRate30d decimal.Decimal `gorm:"column:attendance_rate_30d;not null;default:0;type:numeric(5,2)"`
	// Comment is an optional note attached to the vote
	Comment string `gorm:"column:comment;type:text"`
	// CreatedAt is when the vote was first cast
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the vote was last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Application Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Voter       User        `gorm:"foreignKey:VoterID"`
}

// TableName specifies the table name for the ApplicationVote model
func (ApplicationVote) TableName() string {
	return "application_votes"
}
