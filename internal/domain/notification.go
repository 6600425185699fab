package domain

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// NotificationType identifies the kind of guild event a notification carries
type NotificationType string

const (
	NotificationNewApplication      NotificationType = "new_application"
	NotificationVotingOpened        NotificationType = "voting_opened"
	NotificationVotingReminder      NotificationType = "voting_reminder"
	NotificationVotingClosed        NotificationType = "voting_closed"
	NotificationApplicationApproved NotificationType = "application_approved"
	NotificationApplicationRejected NotificationType = "application_rejected"
	NotificationCharacterCreated    NotificationType = "character_created"
	NotificationCharacterTransfer   NotificationType = "character_transferred"
	NotificationLootAwarded         NotificationType = "loot_awarded"
	NotificationMemberStatus        NotificationType = "member_status_changed"
	NotificationDiscordLinked       NotificationType = "discord_linked"
	NotificationDiscordUnlinked     NotificationType = "discord_unlinked"
	NotificationDailySummary        NotificationType = "daily_summary"
	NotificationError               NotificationType = "error"
)

// NotificationChannel names the Discord channel a notification routes to.
// Channels map to webhook URLs in configuration; unknown channels fall back
// to the default webhook.
type NotificationChannel string

const (
	ChannelRecruitment NotificationChannel = "recruitment"
	ChannelOfficers    NotificationChannel = "officers"
	ChannelLoot        NotificationChannel = "loot"
	ChannelGeneral     NotificationChannel = "general"
)

// NotificationEvent is the message published to the broker when an outbox
// row is written. EventID matches the outbox row's event ID so consumers can
// claim and mark the row.
type NotificationEvent struct {
	EventID   string              `json:"event_id"`
	EventType NotificationType    `json:"event_type"`
	Channel   NotificationChannel `json:"channel"`
	Timestamp time.Time           `json:"timestamp"`
	Payload   json.RawMessage     `json:"payload"`
}

// NewNotificationEvent builds an event with a fresh ULID and the marshaled
// payload
func NewNotificationEvent(eventType NotificationType, channel NotificationChannel, payload any) (*NotificationEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	now := time.Now().UTC()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate event ID: %w", err)
	}

	return &NotificationEvent{
		EventID:   id.String(),
		EventType: eventType,
		Channel:   channel,
		Timestamp: now,
		Payload:   data,
	}, nil
}

// ApplicationPayload describes a recruitment application in notifications
type ApplicationPayload struct {
	ApplicationID   int64     `json:"application_id"`
	CharacterName   string    `json:"character_name"`
	CharacterClass  string    `json:"character_class"`
	CharacterLevel  int       `json:"character_level"`
	ApplicantName   string    `json:"applicant_name"`
	DiscordUsername string    `json:"discord_username,omitempty"`
	GuildExperience string    `json:"guild_experience,omitempty"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// VotingOpenedPayload announces an opened voting period
type VotingOpenedPayload struct {
	ApplicationPayload
	VotingDeadline time.Time `json:"voting_deadline"`
}

// VotingReminderPayload reminds voters of an approaching deadline
type VotingReminderPayload struct {
	ApplicationPayload
	VotingDeadline time.Time `json:"voting_deadline"`
	HoursRemaining int       `json:"hours_remaining"`
	VotesCast      int       `json:"votes_cast"`
}

// VotingClosedPayload announces a voting decision. Weights and thresholds
// are carried so the rendered announcement matches the rule that was
// actually applied, not whatever the config says at render time.
type VotingClosedPayload struct {
	ApplicationPayload
	Approved           bool            `json:"approved"`
	Reason             string          `json:"reason"`
	TotalVotes         int             `json:"total_votes"`
	YesVotes           int             `json:"yes_votes"`
	NoVotes            int             `json:"no_votes"`
	AbstainVotes       int             `json:"abstain_votes"`
	YesWeight          decimal.Decimal `json:"yes_weight"`
	NoWeight           decimal.Decimal `json:"no_weight"`
	AbstainWeight      decimal.Decimal `json:"abstain_weight"`
	TotalWeight        decimal.Decimal `json:"total_weight"`
	ApprovalPercentage decimal.Decimal `json:"approval_percentage"`
	MinimumVotes       int             `json:"minimum_votes"`
	ApprovalThreshold  decimal.Decimal `json:"approval_threshold"`
}

// CharacterPayload describes a roster character in notifications
type CharacterPayload struct {
	CharacterID   int64  `json:"character_id"`
	CharacterName string `json:"character_name"`
	Class         string `json:"class"`
	Level         int    `json:"level"`
	OwnerID       int64  `json:"owner_id"`
	OwnerName     string `json:"owner_name"`
	// ApplicationID is set when the character came from an approved
	// application; the fields below describe that provisioning run
	ApplicationID  *int64 `json:"application_id,omitempty"`
	DKPInitialized bool   `json:"dkp_initialized,omitempty"`
	GroupsAssigned bool   `json:"groups_assigned,omitempty"`
	ProcessedBy    string `json:"processed_by,omitempty"`
}

// CharacterTransferPayload announces an ownership transfer
type CharacterTransferPayload struct {
	CharacterPayload
	PreviousOwnerID   *int64 `json:"previous_owner_id,omitempty"`
	PreviousOwnerName string `json:"previous_owner_name,omitempty"`
	Reason            string `json:"reason"`
	TransferredBy     string `json:"transferred_by,omitempty"`
}

// MemberStatusPayload announces an activation or deactivation
type MemberStatusPayload struct {
	UserID            int64  `json:"user_id"`
	Username          string `json:"username"`
	IsActive          bool   `json:"is_active"`
	Reason            string `json:"reason,omitempty"`
	CharactersUpdated int64  `json:"characters_updated"`
}

// DiscordLinkPayload announces a Discord account link or unlink
type DiscordLinkPayload struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	DiscordID string `json:"discord_id,omitempty"`
}

// LootAwardedPayload announces a loot distribution
type LootAwardedPayload struct {
	DistributionID int64           `json:"distribution_id"`
	ItemName       string          `json:"item_name"`
	Quantity       int             `json:"quantity"`
	PointCost      decimal.Decimal `json:"point_cost"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	UserID         int64           `json:"user_id"`
	Username       string          `json:"username"`
	CharacterName  string          `json:"character_name"`
	RaidTitle      string          `json:"raid_title,omitempty"`
	DistributedBy  string          `json:"distributed_by,omitempty"`
	RemainingDKP   decimal.Decimal `json:"remaining_dkp"`
}

// DailySummaryPayload carries one day of recruitment and roster activity
type DailySummaryPayload struct {
	Date              string `json:"date"`
	NewApplications   int64  `json:"new_applications"`
	VotingOpened      int64  `json:"voting_opened"`
	VotingClosed      int64  `json:"voting_closed"`
	Approved          int64  `json:"approved"`
	Rejected          int64  `json:"rejected"`
	CharactersCreated int64  `json:"characters_created"`
}

// ErrorPayload reports a system error to the officers channel
type ErrorPayload struct {
	Source  string `json:"source"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}
