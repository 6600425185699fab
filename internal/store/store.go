package store

import (
	"context"
	"time"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping verifies database connectivity
	Ping(ctx context.Context) error

	// Users, ranks, groups

	// CreateUser creates a new member account
	CreateUser(ctx context.Context, username string) (*schema.User, error)
	// GetUserByID retrieves a user by internal ID
	GetUserByID(ctx context.Context, userID int64) (*schema.User, error)
	// GetUserByUsername retrieves a user by username
	GetUserByUsername(ctx context.Context, username string) (*schema.User, error)
	// GetUserByDiscordID retrieves a user by linked Discord ID
	GetUserByDiscordID(ctx context.Context, discordID string) (*schema.User, error)
	// GetUsersByIDs retrieves multiple users by internal IDs
	GetUsersByIDs(ctx context.Context, userIDs []int64) ([]*schema.User, error)
	// LinkDiscordAccount links a Discord ID to a member and writes the audit entry
	LinkDiscordAccount(ctx context.Context, input LinkDiscordInput) (*schema.User, error)
	// UnlinkDiscordAccount removes a member's Discord link and writes the audit entry
	UnlinkDiscordAccount(ctx context.Context, input UnlinkDiscordInput) (*schema.User, error)
	// UpdateMemberStatus flips a member's active flag, cascades to their characters, and writes the audit entry
	UpdateMemberStatus(ctx context.Context, input UpdateMemberStatusInput) (*MemberStatusResult, error)
	// GetRankByName retrieves a rank by its exact name
	GetRankByName(ctx context.Context, name string) (*schema.Rank, error)
	// GetFallbackRank retrieves the rank with the smallest level number, used
	// when a configured rank name resolves to nothing
	GetFallbackRank(ctx context.Context) (*schema.Rank, error)
	// ListRanks lists all ranks ordered by level
	ListRanks(ctx context.Context) ([]*schema.Rank, error)

	// Characters

	// CreateCharacter creates a character and its initial ownership record in one
	// transaction and enqueues the roster announcement; the returned event still
	// needs a post-commit publish
	CreateCharacter(ctx context.Context, input CreateCharacterInput) (*schema.Character, *domain.NotificationEvent, error)
	// GetCharacterByID retrieves a character with its owner
	GetCharacterByID(ctx context.Context, characterID int64) (*schema.Character, error)
	// GetCharacterByName retrieves a character by its unique name
	GetCharacterByName(ctx context.Context, name string) (*schema.Character, error)
	// ListCharactersByUser lists all characters owned by a member
	ListCharactersByUser(ctx context.Context, userID int64) ([]*schema.Character, error)
	// GetCharacterFamily returns the main character and all alts for the family containing the given character
	GetCharacterFamily(ctx context.Context, characterID int64) ([]*schema.Character, error)
	// RecordCharacterTransfer appends an ownership record and repoints the character in one transaction
	RecordCharacterTransfer(ctx context.Context, input TransferCharacterInput) (*schema.CharacterOwnership, error)
	// ListCharacterOwnership lists a character's transfer history, newest first
	ListCharacterOwnership(ctx context.Context, characterID int64) ([]*schema.CharacterOwnership, error)

	// Ledger

	// CreateAdjustment writes one ledger entry and applies the summary delta under a row lock.
	// The non-negative balance floor is enforced against the locked summary.
	CreateAdjustment(ctx context.Context, input CreateAdjustmentInput) (*schema.PointAdjustment, error)
	// CreateTransferAdjustments writes the paired debit/credit entries of a member transfer in one transaction
	CreateTransferAdjustments(ctx context.Context, input TransferPointsInput) (*TransferResult, error)
	// DeleteAdjustment removes an unlocked ledger entry and recalculates the owner's summary
	DeleteAdjustment(ctx context.Context, input DeleteAdjustmentInput) (*schema.PointAdjustment, error)
	// GetAdjustmentByID retrieves a ledger entry by ID
	GetAdjustmentByID(ctx context.Context, adjustmentID int64) (*schema.PointAdjustment, error)
	// ListAdjustmentsByUser pages a member's ledger entries, newest first, returning the total count
	ListAdjustmentsByUser(ctx context.Context, userID int64, limit, offset int) ([]*schema.PointAdjustment, int64, error)
	// GetUserPointsSummary retrieves a member's balance summary, nil when absent
	GetUserPointsSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error)
	// GetOrCreateUserPointsSummary retrieves a member's balance summary, creating a zero row when absent
	GetOrCreateUserPointsSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error)
	// RecalculateUserSummary re-derives a member's summary from the full ledger (repair operation)
	RecalculateUserSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error)
	// ListUserIDsWithAdjustments lists the IDs of members that have any ledger entries
	ListUserIDsWithAdjustments(ctx context.Context) ([]int64, error)
	// GetLeaderboard returns the top balances with usernames, ordered by total descending
	GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
	// GetLedgerStats aggregates economy-wide totals; recent counts are measured from the given time
	GetLedgerStats(ctx context.Context, recentSince time.Time) (*LedgerStats, error)

	// Raids

	// CreateEvent creates a raid event template
	CreateEvent(ctx context.Context, input CreateEventInput) (*schema.Event, error)
	// GetEventByID retrieves an event template by ID
	GetEventByID(ctx context.Context, eventID int64) (*schema.Event, error)
	// ListEvents lists event templates
	ListEvents(ctx context.Context, activeOnly bool) ([]*schema.Event, error)
	// CreateRaid creates a raid instance from an event template
	CreateRaid(ctx context.Context, input CreateRaidInput) (*schema.Raid, error)
	// GetRaidByID retrieves a raid with its event template
	GetRaidByID(ctx context.Context, raidID int64) (*schema.Raid, error)
	// UpdateRaidStatus transitions a raid's lifecycle status
	UpdateRaidStatus(ctx context.Context, raidID int64, status schema.RaidStatus) (*schema.Raid, error)
	// RecordRaidAttendance records one member's attendance at a raid; duplicates are rejected
	RecordRaidAttendance(ctx context.Context, input RecordAttendanceInput) (*schema.RaidAttendance, error)
	// ListRaidAttendance lists the attendance rows for a raid
	ListRaidAttendance(ctx context.Context, raidID int64) ([]*schema.RaidAttendance, error)
	// AwardRaidPoints pays out a completed raid exactly once: base points per attendee,
	// the on-time bonus where flagged, and the points_awarded flag flip, all in one transaction
	AwardRaidPoints(ctx context.Context, input AwardRaidPointsInput) (*RaidAwardResult, error)

	// Attendance

	// CountCompletedRaids counts completed raids scheduled in [from, to]; nil bounds are open
	CountCompletedRaids(ctx context.Context, from, to *time.Time) (int, error)
	// CountUserAttendance counts a member's attendance at completed raids scheduled in [from, to]
	CountUserAttendance(ctx context.Context, userID int64, from, to *time.Time) (int, error)
	// GetFirstAttendanceDate returns when the member's first attendance was recorded, nil when none
	GetFirstAttendanceDate(ctx context.Context, userID int64) (*time.Time, error)
	// GetUserAttendanceHistory returns, for every completed raid newest first, whether the member attended
	GetUserAttendanceHistory(ctx context.Context, userID int64) ([]AttendanceMark, error)
	// UpsertMemberAttendanceSummary writes a member's daily attendance snapshot, replacing any existing row for the day
	UpsertMemberAttendanceSummary(ctx context.Context, summary *schema.MemberAttendanceSummary) error
	// GetLatestMemberAttendanceSummary retrieves a member's most recent attendance snapshot
	GetLatestMemberAttendanceSummary(ctx context.Context, userID int64) (*schema.MemberAttendanceSummary, error)
	// ListUserIDsWithAttendance lists the IDs of members that have any recorded attendance
	ListUserIDsWithAttendance(ctx context.Context) ([]int64, error)
	// GetGuildAttendanceStats aggregates the latest snapshots across the roster
	GetGuildAttendanceStats(ctx context.Context) (*GuildAttendanceStats, error)

	// Applications and votes

	// CreateApplication files a new recruitment application and enqueues its
	// announcement; the returned event still needs a post-commit publish
	CreateApplication(ctx context.Context, input CreateApplicationInput) (*schema.Application, *domain.NotificationEvent, error)
	// GetApplicationByID retrieves an application by ID
	GetApplicationByID(ctx context.Context, applicationID int64) (*schema.Application, error)
	// ListApplications pages applications, optionally filtered by status, newest first
	ListApplications(ctx context.Context, status *schema.ApplicationStatus, limit, offset int) ([]*schema.Application, int64, error)
	// OfficerApproveApplication moves a submitted application to officer_approved
	OfficerApproveApplication(ctx context.Context, input OfficerApproveInput) (*schema.Application, error)
	// OpenVotingPeriod moves an officer-approved application to voting_open and stamps the deadline
	OpenVotingPeriod(ctx context.Context, input OpenVotingInput) (*schema.Application, error)
	// WithdrawApplication marks a pre-decision application withdrawn
	WithdrawApplication(ctx context.Context, applicationID int64) (*schema.Application, error)
	// UpsertApplicationVote records or revises a member's vote under the application row lock
	UpsertApplicationVote(ctx context.Context, input CastVoteInput) (*schema.ApplicationVote, error)
	// ListApplicationVotes lists the votes cast on an application
	ListApplicationVotes(ctx context.Context, applicationID int64) ([]*schema.ApplicationVote, error)
	// CloseVotingPeriod tallies votes under the application row lock, applies the decision rule,
	// and records the outcome with its notification in one transaction
	CloseVotingPeriod(ctx context.Context, input CloseVotingInput) (*CloseVotingResult, error)
	// ListExpiredVotingApplications lists voting_open applications whose deadline has passed
	ListExpiredVotingApplications(ctx context.Context, now time.Time) ([]*schema.Application, error)
	// ListOpenVotingApplications lists applications currently collecting votes
	ListOpenVotingApplications(ctx context.Context) ([]*schema.Application, error)
	// MarkReminderSent records a deadline-reminder tier and enqueues its notification; returns
	// false without writing when an equal or smaller tier was already recorded
	MarkReminderSent(ctx context.Context, input MarkReminderInput) (bool, error)
	// ListApplicationsReadyForProcessing lists approved applications that have not been provisioned
	ListApplicationsReadyForProcessing(ctx context.Context, limit int) ([]*schema.Application, error)
	// ProvisionApplication runs the post-approval provisioning saga in one transaction
	ProvisionApplication(ctx context.Context, input ProvisionInput) (*ProvisionResult, error)

	// Items and loot

	// CreateItem creates a loot catalog entry
	CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error)
	// GetItemByID retrieves an item by ID
	GetItemByID(ctx context.Context, itemID int64) (*schema.Item, error)
	// ListItems lists catalog items
	ListItems(ctx context.Context, activeOnly bool) ([]*schema.Item, error)
	// CreateLootDistribution charges the buyer and records the distribution, audit entry,
	// and notification in one transaction; the returned event still needs a post-commit publish
	CreateLootDistribution(ctx context.Context, input CreateDistributionInput) (*schema.LootDistribution, *domain.NotificationEvent, error)
	// GetLootDistributionByID retrieves a distribution with its item
	GetLootDistributionByID(ctx context.Context, distributionID int64) (*schema.LootDistribution, error)
	// ListLootDistributions pages distributions filtered by user and/or item, newest first
	ListLootDistributions(ctx context.Context, filter DistributionFilter, limit, offset int) ([]*schema.LootDistribution, int64, error)
	// DeleteLootDistribution removes a distribution and refunds the original deduction in one transaction
	DeleteLootDistribution(ctx context.Context, input DeleteDistributionInput) (*schema.LootDistribution, error)

	// Notification outbox

	// EnqueueNotification inserts a standalone outbox row outside any domain transaction
	EnqueueNotification(ctx context.Context, event *domain.NotificationEvent) error
	// GetOutboxRowByEventID retrieves an outbox row by its event ID
	GetOutboxRowByEventID(ctx context.Context, eventID string) (*schema.NotificationOutbox, error)
	// ClaimOutboxRow atomically moves a pending or stale-delivering row to delivering;
	// returns nil when another dispatcher holds the row or it is finished
	ClaimOutboxRow(ctx context.Context, eventID string, now time.Time, staleAfter time.Duration) (*schema.NotificationOutbox, error)
	// MarkOutboxDelivered finalizes a delivered row
	MarkOutboxDelivered(ctx context.Context, eventID string, responseStatus int, now time.Time) error
	// MarkOutboxFailed records a failed attempt, scheduling a retry or finalizing the row
	MarkOutboxFailed(ctx context.Context, input MarkOutboxFailedInput) error
	// ListDispatchableOutboxRows lists retry-due pending rows and stale delivering rows for the sweeper
	ListDispatchableOutboxRows(ctx context.Context, now time.Time, staleAfter time.Duration, limit int) ([]*schema.NotificationOutbox, error)
	// GetDailySummaryCounts aggregates the day's recruitment and roster activity
	GetDailySummaryCounts(ctx context.Context, day time.Time) (*DailySummaryCounts, error)
}
