package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// LinkDiscordInput links a Discord account to a member
type LinkDiscordInput struct {
	UserID      int64
	DiscordID   string
	PerformedBy *int64
	// Notification is committed to the outbox in the same transaction
	Notification *domain.NotificationEvent
}

// UnlinkDiscordInput removes a member's Discord link
type UnlinkDiscordInput struct {
	UserID       int64
	PerformedBy  *int64
	Notification *domain.NotificationEvent
}

// UpdateMemberStatusInput flips a member's active flag
type UpdateMemberStatusInput struct {
	UserID   int64
	IsActive bool
	// CascadeCharacters also deactivates or reactivates the member's characters
	CascadeCharacters bool
	Reason            string
	PerformedBy       *int64
}

// MemberStatusResult reports a status change and its character cascade.
// Notification is built inside the transaction because the payload carries
// the cascade count; it still needs a post-commit publish.
type MemberStatusResult struct {
	User              *schema.User
	CharactersUpdated int64
	Notification      *domain.NotificationEvent
}

// CreateCharacterInput creates a character and its initial ownership record
type CreateCharacterInput struct {
	Name            string
	Class           string
	Level           int
	UserID          int64
	MainCharacterID *int64
	Description     string
	// OwnershipNotes goes on the initial ownership record
	OwnershipNotes string
	PerformedBy    *int64
}

// TransferCharacterInput moves a character to a new owner
type TransferCharacterInput struct {
	CharacterID  int64
	NewOwnerID   int64
	Reason       schema.OwnershipReason
	Notes        string
	PerformedBy  *int64
	Notification *domain.NotificationEvent
}

// CreateAdjustmentInput writes one ledger entry. The summary delta is applied
// under a row lock and the resulting balance must stay non-negative.
type CreateAdjustmentInput struct {
	UserID         int64
	Points         decimal.Decimal
	AdjustmentType schema.AdjustmentType
	Description    string
	CharacterName  string
	CreatedBy      *int64
	IsLocked       bool
	Notification   *domain.NotificationEvent
}

// TransferPointsInput moves points between two members as paired ledger entries
type TransferPointsInput struct {
	FromUserID int64
	ToUserID   int64
	Amount     decimal.Decimal
	Reason     string
	CreatedBy  *int64
}

// TransferResult carries both legs of a completed transfer
type TransferResult struct {
	Debit  *schema.PointAdjustment
	Credit *schema.PointAdjustment
}

// DeleteAdjustmentInput removes an unlocked ledger entry
type DeleteAdjustmentInput struct {
	AdjustmentID int64
	PerformedBy  *int64
}

// LeaderboardEntry is one row of the balance leaderboard
type LeaderboardEntry struct {
	UserID      int64           `json:"user_id"`
	Username    string          `json:"username"`
	TotalPoints decimal.Decimal `json:"total_points"`
	Rank        int             `json:"rank"`
}

// LedgerStats aggregates economy-wide ledger totals. TopEarner and
// TopSpender are usernames, "N/A" when no summaries exist.
type LedgerStats struct {
	TotalUsers        int64           `json:"total_users"`
	TotalPoints       decimal.Decimal `json:"total_points_in_system"`
	AveragePoints     decimal.Decimal `json:"average_points_per_user"`
	TotalEarned       decimal.Decimal `json:"total_earned"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	TotalAdjustments  int64           `json:"total_adjustments"`
	RecentAdjustments int64           `json:"recent_adjustments"`
	MembersWithPoints int64           `json:"members_with_points"`
	TopEarner         string          `json:"top_earner"`
	TopSpender        string          `json:"top_spender"`
}

// CreateEventInput creates a raid event template
type CreateEventInput struct {
	Name        string
	Description string
	BasePoints  decimal.Decimal
	OnTimeBonus decimal.Decimal
}

// CreateRaidInput schedules a raid instance from an event template
type CreateRaidInput struct {
	EventID     int64
	Name        string
	ScheduledAt time.Time
	Notes       string
	CreatedBy   *int64
}

// RecordAttendanceInput records one member's attendance at a raid
type RecordAttendanceInput struct {
	RaidID        int64
	UserID        int64
	CharacterName string
	OnTime        bool
	RecordedBy    *int64
}

// AwardRaidPointsInput pays out a completed raid
type AwardRaidPointsInput struct {
	RaidID      int64
	PerformedBy *int64
}

// RaidAwardResult reports a completed raid payout
type RaidAwardResult struct {
	Raid          *schema.Raid
	AttendeesPaid int
	OnTimeBonuses int
	PointsPerHead decimal.Decimal
	BonusPerHead  decimal.Decimal
	TotalAwarded  decimal.Decimal
}

// AttendanceMark is one completed raid from a member's perspective
type AttendanceMark struct {
	RaidID      int64
	ScheduledAt time.Time
	Attended    bool
}

// GuildAttendanceStats aggregates the latest attendance snapshots.
// Highest/lowest usernames are empty when no snapshots exist.
type GuildAttendanceStats struct {
	TrackedMembers  int64           `json:"tracked_members"`
	EligibleVoters  int64           `json:"eligible_voters"`
	EligiblePercent decimal.Decimal `json:"eligible_percent"`
	AverageRate30d  decimal.Decimal `json:"average_rate_30d"`
	AverageRate90d  decimal.Decimal `json:"average_rate_90d"`
	HighestRate30d  decimal.Decimal `json:"highest_rate_30d"`
	HighestRateUser string          `json:"highest_rate_user"`
	LowestRate30d   decimal.Decimal `json:"lowest_rate_30d"`
	LowestRateUser  string          `json:"lowest_rate_user"`
	CompletedRaids  int             `json:"completed_raids_30d"`
	SnapshotsForDay int64           `json:"snapshots_for_day"`
}

// CreateApplicationInput files a recruitment application
type CreateApplicationInput struct {
	CharacterName   string
	CharacterClass  string
	CharacterLevel  int
	ApplicantName   string
	Email           string
	DiscordUsername string
	GuildExperience string
}

// OfficerApproveInput moves a submitted application past officer review
type OfficerApproveInput struct {
	ApplicationID int64
	ReviewedBy    *int64
}

// OpenVotingInput opens an application's voting period
type OpenVotingInput struct {
	ApplicationID int64
	Deadline      time.Time
	PerformedBy   *int64
	Notification  *domain.NotificationEvent
}

// CastVoteInput records or revises one member's vote. Weight and attendance
// rate are the caller's snapshots for the voter at cast time.
type CastVoteInput struct {
	ApplicationID     int64
	VoterID           int64
	Vote              domain.VoteChoice
	VoteWeight        decimal.Decimal
	AttendanceRate30d decimal.Decimal
	Comment           string
}

// CloseVotingInput closes an application's voting period
type CloseVotingInput struct {
	ApplicationID int64
	// MinimumVotes and ApprovalThreshold parameterize the decision rule
	MinimumVotes      int
	ApprovalThreshold decimal.Decimal
	DecidedBy         *int64
}

// CloseVotingResult reports a closed voting period
type CloseVotingResult struct {
	Application *schema.Application
	Tally       domain.VoteTally
	Decision    domain.VotingDecision
	// Notification was committed to the outbox inside the closing transaction
	// and still needs a post-commit publish
	Notification *domain.NotificationEvent
}

// MarkReminderInput records a deadline-reminder tier for an application
type MarkReminderInput struct {
	ApplicationID int64
	// Tier is the reminder lead time in hours
	Tier         int
	Notification *domain.NotificationEvent
}

// ProvisionInput runs post-approval provisioning for an application
type ProvisionInput struct {
	ApplicationID int64
	// Force reprocesses an application that already has a linked account
	Force bool
	// StartingPoints seeds the new member's ledger
	StartingPoints decimal.Decimal
	// RankName is resolved to the new member's rank, falling back to the
	// lowest-level rank when absent
	RankName string
	// GroupNames are the membership groups the new member joins
	GroupNames  []string
	PerformedBy *int64
	// ProcessedBy is the display name announced for the provisioning run,
	// "system" when empty
	ProcessedBy string
}

// ProvisionResult reports a completed provisioning run
type ProvisionResult struct {
	Application *schema.Application
	User        *schema.User
	Character   *schema.Character
	// Username is the collision-resolved account name
	Username string
	// RankAssigned is the resolved rank name, empty when no rank was found
	RankAssigned string
	// GroupsAssigned lists the groups that were found and joined
	GroupsAssigned []string
	// Warnings lists non-fatal steps that were skipped
	Warnings []string
	// Notification was committed to the outbox inside the provisioning
	// transaction and still needs a post-commit publish
	Notification *domain.NotificationEvent
}

// CreateItemInput creates a loot catalog entry
type CreateItemInput struct {
	Name          string
	Description   string
	SuggestedCost decimal.Decimal
}

// CreateDistributionInput awards an item and charges the buyer
type CreateDistributionInput struct {
	ItemID        int64
	UserID        int64
	CharacterName string
	PointCost     decimal.Decimal
	Quantity      int
	RaidID        *int64
	DistributedBy *int64
	// DiscordContext carries the originating Discord command metadata, if any
	DiscordContext map[string]any
}

// DistributionFilter narrows a distribution listing
type DistributionFilter struct {
	UserID *int64
	ItemID *int64
	RaidID *int64
}

// DeleteDistributionInput removes a distribution and refunds the deduction
type DeleteDistributionInput struct {
	DistributionID int64
	PerformedBy    *int64
	Reason         string
}

// MarkOutboxFailedInput records a failed delivery attempt
type MarkOutboxFailedInput struct {
	EventID        string
	ErrorMessage   string
	ResponseStatus *int
	// NextAttemptAt schedules the retry; nil finalizes the row as failed
	NextAttemptAt *time.Time
	Now           time.Time
}

// DailySummaryCounts aggregates one day of recruitment and roster activity
type DailySummaryCounts struct {
	NewApplications   int64 `json:"new_applications"`
	VotingOpened      int64 `json:"voting_opened"`
	VotingClosed      int64 `json:"voting_closed"`
	Approved          int64 `json:"approved"`
	Rejected          int64 `json:"rejected"`
	CharactersCreated int64 `json:"characters_created"`
}
