package recruitment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/attendance"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/messaging"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

const (
	defaultVotingPeriod = 48 * time.Hour
	defaultMinimumVotes = 3
	defaultBatchSize    = 10

	defaultListLimit = 20
	maxListLimit     = 100

	minCharacterNameLength = 2
)

var (
	defaultApprovalThreshold = decimal.NewFromInt(60)
	defaultReminderTiers     = []int{24, 6, 1}
)

// Config holds recruitment workflow settings
type Config struct {
	// VotingPeriod is how long an opened voting window stays open
	VotingPeriod time.Duration
	// MinimumVotes is the vote count below which a closed application is
	// rejected for insufficient participation
	MinimumVotes int
	// ApprovalThreshold is the weighted approval percentage required to pass
	ApprovalThreshold decimal.Decimal
	// ReminderTiers are the deadline-reminder lead times in hours
	ReminderTiers []int
	// StartingPoints seeds each provisioned member's DKP ledger
	StartingPoints decimal.Decimal
	// DefaultRank is the rank resolved for newly provisioned members
	DefaultRank string
	// DefaultGroups are the membership groups joined during provisioning
	DefaultGroups []string
	// BatchSize caps how many approved applications one sweep processes
	BatchSize int
}

// SubmitApplicationInput files a new recruitment application
type SubmitApplicationInput struct {
	CharacterName   string
	CharacterClass  string
	CharacterLevel  int
	ApplicantName   string
	Email           string
	DiscordUsername string
	GuildExperience string
}

// VotingStatistics summarizes the votes on one application against the
// decision rule in force
type VotingStatistics struct {
	ApplicationID        int64                    `json:"application_id"`
	Status               schema.ApplicationStatus `json:"status"`
	TotalVotes           int                      `json:"total_votes"`
	YesVotes             int                      `json:"yes_votes"`
	NoVotes              int                      `json:"no_votes"`
	AbstainVotes         int                      `json:"abstain_votes"`
	YesWeight            decimal.Decimal          `json:"yes_weight"`
	NoWeight             decimal.Decimal          `json:"no_weight"`
	AbstainWeight        decimal.Decimal          `json:"abstain_weight"`
	TotalWeight          decimal.Decimal          `json:"total_weight"`
	ApprovalPercentage   decimal.Decimal          `json:"approval_percentage"`
	AverageVoterRate     decimal.Decimal          `json:"average_voter_attendance_30d"`
	EligibleVoters       int64                    `json:"eligible_voters"`
	ParticipationRate    decimal.Decimal          `json:"participation_rate"`
	MeetsMinimumVotes    bool                     `json:"meets_minimum_votes"`
	MeetsThreshold       bool                     `json:"meets_approval_threshold"`
	VotingDeadline       *time.Time               `json:"voting_deadline,omitempty"`
	TimeRemainingSeconds int64                    `json:"time_remaining_seconds"`
	IsActive             bool                     `json:"is_active"`
}

// BatchFailure records one application's failure in a batch run
type BatchFailure struct {
	ApplicationID int64
	Err           error
}

// ExpiredVotingResult reports a sweep over expired voting periods
type ExpiredVotingResult struct {
	Closed   int
	Approved int
	Rejected int
	Failed   []BatchFailure
}

// ReminderRunResult reports a deadline-reminder sweep
type ReminderRunResult struct {
	Sent   int
	Failed []BatchFailure
}

// ProvisionBatchResult reports a batch provisioning run
type ProvisionBatchResult struct {
	Provisioned []*store.ProvisionResult
	Failed      []BatchFailure
}

// Service runs the recruitment pipeline: application intake, officer review,
// the weighted voting period with its reminders and expiry, and post-approval
// account provisioning. Notifications ride the producing transaction through
// the outbox; the publish here is only the low-latency nudge.
//
//go:generate mockgen -source=service.go -destination=../mocks/recruitment.go -package=mocks -mock_names=Service=MockRecruitmentService
type Service interface {
	// SubmitApplication files a new application in status submitted
	SubmitApplication(ctx context.Context, input SubmitApplicationInput) (*schema.Application, error)

	// GetApplication retrieves an application by ID
	GetApplication(ctx context.Context, applicationID int64) (*schema.Application, error)

	// ListApplications pages applications, optionally filtered by status,
	// newest first
	ListApplications(ctx context.Context, status *schema.ApplicationStatus, limit, offset int) ([]*schema.Application, int64, error)

	// OfficerApprove moves a submitted application past officer review
	OfficerApprove(ctx context.Context, applicationID int64, reviewedBy *int64) (*schema.Application, error)

	// OpenVotingPeriod opens voting on an officer-approved application and
	// stamps the deadline from the configured period
	OpenVotingPeriod(ctx context.Context, applicationID int64, openedBy *int64) (*schema.Application, error)

	// WithdrawApplication marks a pre-decision application withdrawn
	WithdrawApplication(ctx context.Context, applicationID int64) (*schema.Application, error)

	// CastVote records or revises a member's vote, snapshotting the voter's
	// attendance-derived weight at cast time
	CastVote(ctx context.Context, applicationID, voterID int64, vote domain.VoteChoice, comment string) (*schema.ApplicationVote, error)

	// GetVotingStatistics summarizes the votes on an application
	GetVotingStatistics(ctx context.Context, applicationID int64) (*VotingStatistics, error)

	// CloseVotingPeriod tallies and decides an open voting period
	CloseVotingPeriod(ctx context.Context, applicationID int64, decidedBy *int64) (*store.CloseVotingResult, error)

	// ProcessExpiredVotingPeriods closes every voting period whose deadline
	// has passed, collecting per-application failures
	ProcessExpiredVotingPeriods(ctx context.Context, decidedBy *int64) (*ExpiredVotingResult, error)

	// SendDeadlineReminders sends the due reminder tier for each open voting
	// period, at most once per tier
	SendDeadlineReminders(ctx context.Context) (*ReminderRunResult, error)

	// ProcessApprovedApplication provisions the member account, character,
	// starting DKP, and group memberships for an approved application
	ProcessApprovedApplication(ctx context.Context, applicationID int64, processedBy string, performedBy *int64, force bool) (*store.ProvisionResult, error)

	// ProcessMultipleApplications provisions a batch of approved
	// applications independently, collecting per-application failures
	ProcessMultipleApplications(ctx context.Context, applicationIDs []int64, processedBy string, performedBy *int64) (*ProvisionBatchResult, error)

	// ApplicationsReadyForProcessing lists approved applications awaiting
	// provisioning, oldest decision first
	ApplicationsReadyForProcessing(ctx context.Context, limit int) ([]*schema.Application, error)
}

type service struct {
	store      store.Store
	attendance attendance.Service
	publisher  messaging.Publisher
	clock      adapter.Clock

	votingPeriod      time.Duration
	minimumVotes      int
	approvalThreshold decimal.Decimal
	reminderTiers     []int
	startingPoints    decimal.Decimal
	defaultRank       string
	defaultGroups     []string
	batchSize         int
}

// NewService creates a recruitment service over the store, the attendance
// service for voter eligibility, and the publisher for post-commit nudges
func NewService(st store.Store, att attendance.Service, pub messaging.Publisher, clock adapter.Clock, cfg Config) Service {
	votingPeriod := cfg.VotingPeriod
	if votingPeriod <= 0 {
		votingPeriod = defaultVotingPeriod
	}
	minimumVotes := cfg.MinimumVotes
	if minimumVotes <= 0 {
		minimumVotes = defaultMinimumVotes
	}
	approvalThreshold := cfg.ApprovalThreshold
	if approvalThreshold.IsZero() {
		approvalThreshold = defaultApprovalThreshold
	}
	reminderTiers := cfg.ReminderTiers
	if len(reminderTiers) == 0 {
		reminderTiers = defaultReminderTiers
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &service{
		store:             st,
		attendance:        att,
		publisher:         pub,
		clock:             clock,
		votingPeriod:      votingPeriod,
		minimumVotes:      minimumVotes,
		approvalThreshold: approvalThreshold,
		reminderTiers:     reminderTiers,
		startingPoints:    cfg.StartingPoints,
		defaultRank:       cfg.DefaultRank,
		defaultGroups:     cfg.DefaultGroups,
		batchSize:         batchSize,
	}
}

// DueReminderTier returns the smallest configured tier, in hours, whose lead
// time covers the remaining duration, or false when the deadline is further
// out than every tier.
func DueReminderTier(tiers []int, remaining time.Duration) (int, bool) {
	due := 0
	found := false
	for _, tier := range tiers {
		if tier <= 0 {
			continue
		}
		if time.Duration(tier)*time.Hour < remaining {
			continue
		}
		if !found || tier < due {
			due = tier
			found = true
		}
	}
	return due, found
}

// SubmitApplication files a new application in status submitted
func (s *service) SubmitApplication(ctx context.Context, input SubmitApplicationInput) (*schema.Application, error) {
	characterName := domain.NormalizeCharacterName(input.CharacterName)
	if len(characterName) < minCharacterNameLength {
		return nil, fmt.Errorf("character name must be at least %d characters", minCharacterNameLength)
	}
	if strings.TrimSpace(input.ApplicantName) == "" {
		return nil, fmt.Errorf("applicant name is required")
	}
	if input.CharacterLevel < 1 {
		return nil, fmt.Errorf("character level must be at least 1")
	}

	application, event, err := s.store.CreateApplication(ctx, store.CreateApplicationInput{
		CharacterName:   characterName,
		CharacterClass:  input.CharacterClass,
		CharacterLevel:  input.CharacterLevel,
		ApplicantName:   strings.TrimSpace(input.ApplicantName),
		Email:           strings.TrimSpace(input.Email),
		DiscordUsername: strings.TrimSpace(input.DiscordUsername),
		GuildExperience: input.GuildExperience,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	logger.InfoCtx(ctx, "Application submitted",
		zap.Int64("applicationID", application.ID),
		zap.String("characterName", application.CharacterName))
	return application, nil
}

// GetApplication retrieves an application by ID
func (s *service) GetApplication(ctx context.Context, applicationID int64) (*schema.Application, error) {
	application, err := s.store.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return application, nil
}

// ListApplications pages applications, optionally filtered by status
func (s *service) ListApplications(ctx context.Context, status *schema.ApplicationStatus, limit, offset int) ([]*schema.Application, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListApplications(ctx, status, limit, offset)
}

// OfficerApprove moves a submitted application past officer review
func (s *service) OfficerApprove(ctx context.Context, applicationID int64, reviewedBy *int64) (*schema.Application, error) {
	application, err := s.store.OfficerApproveApplication(ctx, store.OfficerApproveInput{
		ApplicationID: applicationID,
		ReviewedBy:    reviewedBy,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Application officer-approved",
		zap.Int64("applicationID", application.ID),
		zap.String("characterName", application.CharacterName))
	return application, nil
}

// OpenVotingPeriod opens voting on an officer-approved application
func (s *service) OpenVotingPeriod(ctx context.Context, applicationID int64, openedBy *int64) (*schema.Application, error) {
	application, err := s.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	deadline := s.clock.Now().UTC().Add(s.votingPeriod)
	event, err := domain.NewNotificationEvent(domain.NotificationVotingOpened, domain.ChannelRecruitment, domain.VotingOpenedPayload{
		ApplicationPayload: applicationPayload(application, schema.ApplicationStatusVotingOpen),
		VotingDeadline:     deadline,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.store.OpenVotingPeriod(ctx, store.OpenVotingInput{
		ApplicationID: applicationID,
		Deadline:      deadline,
		PerformedBy:   openedBy,
		Notification:  event,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	logger.InfoCtx(ctx, "Voting period opened",
		zap.Int64("applicationID", updated.ID),
		zap.Time("deadline", deadline))
	return updated, nil
}

// WithdrawApplication marks a pre-decision application withdrawn
func (s *service) WithdrawApplication(ctx context.Context, applicationID int64) (*schema.Application, error) {
	application, err := s.store.WithdrawApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Application withdrawn", zap.Int64("applicationID", application.ID))
	return application, nil
}

// CastVote records or revises a member's vote. The vote weight and the
// voter's 30-day attendance rate are snapshotted at cast time; the store
// rejects the cast if the period closed or expired in the meantime.
func (s *service) CastVote(ctx context.Context, applicationID, voterID int64, vote domain.VoteChoice, comment string) (*schema.ApplicationVote, error) {
	if !vote.Valid() {
		return nil, fmt.Errorf("invalid vote choice %q", vote)
	}

	eligible, rate, err := s.attendance.IsVotingEligible(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check voter eligibility: %w", err)
	}
	if !eligible {
		return nil, fmt.Errorf("%w: 30-day attendance rate is %s%%", domain.ErrNotEligibleToVote, rate)
	}

	weight, ok := domain.VoteWeightForRate(rate)
	if !ok {
		// a configured eligibility floor below the base weight tier still
		// grants the base weight
		weight = domain.VoteWeightBase
	}

	recorded, err := s.store.UpsertApplicationVote(ctx, store.CastVoteInput{
		ApplicationID:     applicationID,
		VoterID:           voterID,
		Vote:              vote,
		VoteWeight:        weight,
		AttendanceRate30d: rate,
		Comment:           comment,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Vote cast",
		zap.Int64("applicationID", applicationID),
		zap.Int64("voterID", voterID),
		zap.String("vote", string(vote)),
		zap.String("weight", weight.String()))
	return recorded, nil
}

// GetVotingStatistics summarizes the votes on an application
func (s *service) GetVotingStatistics(ctx context.Context, applicationID int64) (*VotingStatistics, error) {
	application, err := s.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	votes, err := s.store.ListApplicationVotes(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	weighted := make([]domain.WeightedVote, 0, len(votes))
	rateSum := decimal.Zero
	for _, v := range votes {
		weighted = append(weighted, domain.WeightedVote{Choice: v.Vote, Weight: v.VoteWeight})
		rateSum = rateSum.Add(v.AttendanceRate30d)
	}
	tally := domain.TallyVotes(weighted)

	averageRate := decimal.Zero
	if len(votes) > 0 {
		averageRate = rateSum.Div(decimal.NewFromInt(int64(len(votes)))).Round(2)
	}

	guildStats, err := s.attendance.GuildStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible voter count: %w", err)
	}
	participation := decimal.Zero
	if guildStats.EligibleVoters > 0 {
		participation = decimal.NewFromInt(int64(tally.TotalVotes())).
			Div(decimal.NewFromInt(guildStats.EligibleVoters)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	now := s.clock.Now()
	isActive := application.Status == schema.ApplicationStatusVotingOpen &&
		application.VotingDeadline != nil &&
		now.Before(*application.VotingDeadline)
	var remainingSeconds int64
	if isActive {
		remainingSeconds = int64(application.VotingDeadline.Sub(now).Seconds())
	}

	return &VotingStatistics{
		ApplicationID:        application.ID,
		Status:               application.Status,
		TotalVotes:           tally.TotalVotes(),
		YesVotes:             tally.YesCount,
		NoVotes:              tally.NoCount,
		AbstainVotes:         tally.AbstainCount,
		YesWeight:            tally.YesWeight,
		NoWeight:             tally.NoWeight,
		AbstainWeight:        tally.AbstainWeight,
		TotalWeight:          tally.TotalWeight(),
		ApprovalPercentage:   tally.ApprovalPercentage().Round(2),
		AverageVoterRate:     averageRate,
		EligibleVoters:       guildStats.EligibleVoters,
		ParticipationRate:    participation,
		MeetsMinimumVotes:    tally.TotalVotes() >= s.minimumVotes,
		MeetsThreshold:       tally.ApprovalPercentage().GreaterThanOrEqual(s.approvalThreshold),
		VotingDeadline:       application.VotingDeadline,
		TimeRemainingSeconds: remainingSeconds,
		IsActive:             isActive,
	}, nil
}

// CloseVotingPeriod tallies and decides an open voting period
func (s *service) CloseVotingPeriod(ctx context.Context, applicationID int64, decidedBy *int64) (*store.CloseVotingResult, error) {
	result, err := s.store.CloseVotingPeriod(ctx, store.CloseVotingInput{
		ApplicationID:     applicationID,
		MinimumVotes:      s.minimumVotes,
		ApprovalThreshold: s.approvalThreshold,
		DecidedBy:         decidedBy,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, result.Notification)

	logger.InfoCtx(ctx, "Voting period closed",
		zap.Int64("applicationID", result.Application.ID),
		zap.Bool("approved", result.Decision.Approved),
		zap.Int("totalVotes", result.Tally.TotalVotes()),
		zap.String("reason", result.Decision.Reason))
	return result, nil
}

// ProcessExpiredVotingPeriods closes every voting period whose deadline has
// passed
func (s *service) ProcessExpiredVotingPeriods(ctx context.Context, decidedBy *int64) (*ExpiredVotingResult, error) {
	applications, err := s.store.ListExpiredVotingApplications(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list expired voting periods: %w", err)
	}

	result := &ExpiredVotingResult{}
	for _, application := range applications {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		closed, err := s.CloseVotingPeriod(ctx, application.ID, decidedBy)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to close expired voting period",
				zap.Int64("applicationID", application.ID),
				zap.Error(err))
			result.Failed = append(result.Failed, BatchFailure{ApplicationID: application.ID, Err: err})
			continue
		}

		result.Closed++
		if closed.Decision.Approved {
			result.Approved++
		} else {
			result.Rejected++
		}
	}

	if result.Closed > 0 || len(result.Failed) > 0 {
		logger.InfoCtx(ctx, "Expired voting periods processed",
			zap.Int("closed", result.Closed),
			zap.Int("approved", result.Approved),
			zap.Int("rejected", result.Rejected),
			zap.Int("failed", len(result.Failed)))
	}
	return result, nil
}

// SendDeadlineReminders sends the due reminder tier for each open voting
// period. The tier write and the outbox row commit together, so overlapping
// sweeps cannot double-send a tier.
func (s *service) SendDeadlineReminders(ctx context.Context) (*ReminderRunResult, error) {
	applications, err := s.store.ListOpenVotingApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open voting periods: %w", err)
	}

	now := s.clock.Now()
	result := &ReminderRunResult{}
	for _, application := range applications {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if application.VotingDeadline == nil {
			continue
		}

		remaining := application.VotingDeadline.Sub(now)
		if remaining <= 0 {
			// expired periods belong to the closing sweep
			continue
		}
		tier, ok := DueReminderTier(s.reminderTiers, remaining)
		if !ok {
			continue
		}
		if application.LastReminderTier != nil && *application.LastReminderTier <= tier {
			continue
		}

		votes, err := s.store.ListApplicationVotes(ctx, application.ID)
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{ApplicationID: application.ID, Err: err})
			continue
		}

		event, err := domain.NewNotificationEvent(domain.NotificationVotingReminder, domain.ChannelRecruitment, domain.VotingReminderPayload{
			ApplicationPayload: applicationPayload(application, application.Status),
			VotingDeadline:     *application.VotingDeadline,
			HoursRemaining:     int(remaining.Hours()),
			VotesCast:          len(votes),
		})
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{ApplicationID: application.ID, Err: err})
			continue
		}

		sent, err := s.store.MarkReminderSent(ctx, store.MarkReminderInput{
			ApplicationID: application.ID,
			Tier:          tier,
			Notification:  event,
		})
		if err != nil {
			logger.WarnCtx(ctx, "Failed to record voting reminder",
				zap.Int64("applicationID", application.ID),
				zap.Int("tier", tier),
				zap.Error(err))
			result.Failed = append(result.Failed, BatchFailure{ApplicationID: application.ID, Err: err})
			continue
		}
		if !sent {
			// a concurrent sweep recorded this tier first
			continue
		}

		messaging.PublishCommitted(ctx, s.publisher, event)
		result.Sent++
		logger.InfoCtx(ctx, "Voting deadline reminder sent",
			zap.Int64("applicationID", application.ID),
			zap.Int("tier", tier),
			zap.Int("hoursRemaining", int(remaining.Hours())))
	}

	return result, nil
}

// ProcessApprovedApplication provisions the member account for an approved
// application
func (s *service) ProcessApprovedApplication(ctx context.Context, applicationID int64, processedBy string, performedBy *int64, force bool) (*store.ProvisionResult, error) {
	result, err := s.store.ProvisionApplication(ctx, store.ProvisionInput{
		ApplicationID:  applicationID,
		Force:          force,
		StartingPoints: s.startingPoints,
		RankName:       s.defaultRank,
		GroupNames:     s.defaultGroups,
		PerformedBy:    performedBy,
		ProcessedBy:    processedBy,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, result.Notification)

	for _, warning := range result.Warnings {
		logger.WarnCtx(ctx, "Provisioning warning",
			zap.Int64("applicationID", applicationID),
			zap.String("warning", warning))
	}
	logger.InfoCtx(ctx, "Application provisioned",
		zap.Int64("applicationID", applicationID),
		zap.String("username", result.Username),
		zap.Int64("characterID", result.Character.ID),
		zap.String("rank", result.RankAssigned),
		zap.Strings("groups", result.GroupsAssigned))
	return result, nil
}

// ProcessMultipleApplications provisions a batch of approved applications
// independently
func (s *service) ProcessMultipleApplications(ctx context.Context, applicationIDs []int64, processedBy string, performedBy *int64) (*ProvisionBatchResult, error) {
	result := &ProvisionBatchResult{}
	for _, applicationID := range applicationIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		provisioned, err := s.ProcessApprovedApplication(ctx, applicationID, processedBy, performedBy, false)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to provision application",
				zap.Int64("applicationID", applicationID),
				zap.Error(err))
			result.Failed = append(result.Failed, BatchFailure{ApplicationID: applicationID, Err: err})
			continue
		}
		result.Provisioned = append(result.Provisioned, provisioned)
	}

	if len(result.Provisioned) > 0 || len(result.Failed) > 0 {
		logger.InfoCtx(ctx, "Approved applications processed",
			zap.Int("provisioned", len(result.Provisioned)),
			zap.Int("failed", len(result.Failed)))
	}
	return result, nil
}

// ApplicationsReadyForProcessing lists approved applications awaiting
// provisioning
func (s *service) ApplicationsReadyForProcessing(ctx context.Context, limit int) ([]*schema.Application, error) {
	if limit <= 0 {
		limit = s.batchSize
	}
	return s.store.ListApplicationsReadyForProcessing(ctx, limit)
}

// applicationPayload builds the common notification payload for an
// application, announcing it in the given status
func applicationPayload(application *schema.Application, status schema.ApplicationStatus) domain.ApplicationPayload {
	return domain.ApplicationPayload{
		ApplicationID:   application.ID,
		CharacterName:   application.CharacterName,
		CharacterClass:  application.CharacterClass,
		CharacterLevel:  application.CharacterLevel,
		ApplicantName:   application.ApplicantName,
		DiscordUsername: application.DiscordUsername,
		Status:          string(status),
		SubmittedAt:     application.SubmittedAt,
	}
}
