package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apierrors "github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/shared/errors"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// SubmitApplicationRequest represents the request body for POST /applications
type SubmitApplicationRequest struct {
	CharacterName   string `json:"character_name"`
	CharacterClass  string `json:"character_class"`
	CharacterLevel  int    `json:"character_level,omitempty"`
	ApplicantName   string `json:"applicant_name"`
	Email           string `json:"email,omitempty"`
	DiscordUsername string `json:"discord_username,omitempty"`
	GuildExperience string `json:"guild_experience,omitempty"`
}

// Validate validates the request body
func (r *SubmitApplicationRequest) Validate() error {
	if len(strings.TrimSpace(r.CharacterName)) < 2 {
		return apierrors.NewValidationError("character_name must be at least 2 characters")
	}
	if strings.TrimSpace(r.CharacterClass) == "" {
		return apierrors.NewValidationError("character_class is required")
	}
	if strings.TrimSpace(r.ApplicantName) == "" {
		return apierrors.NewValidationError("applicant_name is required")
	}
	if r.CharacterLevel < 0 {
		return apierrors.NewValidationError("character_level cannot be negative")
	}
	return nil
}

// CastVoteRequest represents the request body for POST /applications/:id/votes
type CastVoteRequest struct {
	VoterID int64  `json:"voter_id"`
	Vote    string `json:"vote"`
	Comment string `json:"comment,omitempty"`
}

// Validate validates the request body
func (r *CastVoteRequest) Validate() error {
	if r.VoterID <= 0 {
		return apierrors.NewValidationError("voter_id is required")
	}
	if !domain.VoteChoice(r.Vote).Valid() {
		return apierrors.NewValidationError("vote must be yes, no, or abstain")
	}
	return nil
}

// VoteChoice returns the bound vote choice
func (r *CastVoteRequest) VoteChoice() domain.VoteChoice {
	return domain.VoteChoice(r.Vote)
}

// ProcessApplicationRequest represents the request body for
// POST /applications/:id/process
type ProcessApplicationRequest struct {
	ProcessedBy string `json:"processed_by,omitempty"`
	PerformedBy *int64 `json:"performed_by,omitempty"`
}

// ProcessBatchRequest represents the request body for
// POST /applications/process-batch
type ProcessBatchRequest struct {
	ApplicationIDs []int64 `json:"application_ids"`
	ProcessedBy    string  `json:"processed_by,omitempty"`
	PerformedBy    *int64  `json:"performed_by,omitempty"`
}

// Validate validates the request body
func (r *ProcessBatchRequest) Validate() error {
	if len(r.ApplicationIDs) == 0 {
		return apierrors.NewValidationError("application_ids is required")
	}
	for _, id := range r.ApplicationIDs {
		if id <= 0 {
			return apierrors.NewValidationError("application_ids must be positive")
		}
	}
	return nil
}

// ApplicationResponse represents one recruitment application
type ApplicationResponse struct {
	ID              int64      `json:"id"`
	CharacterName   string     `json:"character_name"`
	CharacterClass  string     `json:"character_class"`
	CharacterLevel  int        `json:"character_level"`
	ApplicantName   string     `json:"applicant_name"`
	Email           string     `json:"email,omitempty"`
	DiscordUsername string     `json:"discord_username,omitempty"`
	GuildExperience string     `json:"guild_experience,omitempty"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      *int64     `json:"reviewed_by,omitempty"`
	VotingOpenedAt  *time.Time `json:"voting_opened_at,omitempty"`
	VotingDeadline  *time.Time `json:"voting_deadline,omitempty"`
	DecisionMadeAt  *time.Time `json:"decision_made_at,omitempty"`
	DecisionMadeBy  *int64     `json:"decision_made_by,omitempty"`
	DecisionReason  string     `json:"decision_reason,omitempty"`
	ApprovedUserID  *int64     `json:"approved_user_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ApplicationListResponse represents a paginated application page
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"items"`
	Offset       *int                  `json:"offset,omitempty"`
	Total        int64                 `json:"total"`
}

// VoteResponse represents one recorded vote
type VoteResponse struct {
	ID                int64           `json:"id"`
	ApplicationID     int64           `json:"application_id"`
	VoterID           int64           `json:"voter_id"`
	Vote              string          `json:"vote"`
	VoteWeight        decimal.Decimal `json:"vote_weight"`
	AttendanceRate30d decimal.Decimal `json:"attendance_rate_30d"`
	Comment           string          `json:"comment,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// VoteTallyResponse represents the weighted tally of a voting period
type VoteTallyResponse struct {
	YesCount      int             `json:"yes_count"`
	NoCount       int             `json:"no_count"`
	AbstainCount  int             `json:"abstain_count"`
	YesWeight     decimal.Decimal `json:"yes_weight"`
	NoWeight      decimal.Decimal `json:"no_weight"`
	AbstainWeight decimal.Decimal `json:"abstain_weight"`
}

// VotingDecisionResponse represents the outcome of the decision rule
type VotingDecisionResponse struct {
	Approved           bool            `json:"approved"`
	Reason             string          `json:"reason"`
	ApprovalPercentage decimal.Decimal `json:"approval_percentage"`
}

// CloseVotingResponse reports a closed voting period
type CloseVotingResponse struct {
	Application ApplicationResponse    `json:"application"`
	Tally       VoteTallyResponse      `json:"tally"`
	Decision    VotingDecisionResponse `json:"decision"`
}

// ProvisionResponse reports a completed provisioning run
type ProvisionResponse struct {
	Application    ApplicationResponse `json:"application"`
	User           *UserResponse       `json:"user,omitempty"`
	Character      *CharacterResponse  `json:"character,omitempty"`
	Username       string              `json:"username"`
	RankAssigned   string              `json:"rank_assigned,omitempty"`
	GroupsAssigned []string            `json:"groups_assigned,omitempty"`
	Warnings       []string            `json:"warnings,omitempty"`
}

// BatchFailureResponse reports one application's failure in a batch run
type BatchFailureResponse struct {
	ApplicationID int64  `json:"application_id"`
	Error         string `json:"error"`
}

// ProvisionBatchResponse reports a batch provisioning run
type ProvisionBatchResponse struct {
	Provisioned []ProvisionResponse    `json:"provisioned"`
	Failed      []BatchFailureResponse `json:"failed,omitempty"`
}

// MapApplicationToDTO maps a schema.Application to ApplicationResponse
func MapApplicationToDTO(application *schema.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:              application.ID,
		CharacterName:   application.CharacterName,
		CharacterClass:  application.CharacterClass,
		CharacterLevel:  application.CharacterLevel,
		ApplicantName:   application.ApplicantName,
		Email:           application.Email,
		DiscordUsername: application.DiscordUsername,
		GuildExperience: application.GuildExperience,
		Status:          string(application.Status),
		SubmittedAt:     application.SubmittedAt,
		ReviewedAt:      application.ReviewedAt,
		ReviewedBy:      application.ReviewedByID,
		VotingOpenedAt:  application.VotingOpenedAt,
		VotingDeadline:  application.VotingDeadline,
		DecisionMadeAt:  application.DecisionMadeAt,
		DecisionMadeBy:  application.DecisionMadeByID,
		DecisionReason:  application.DecisionReason,
		ApprovedUserID:  application.ApprovedUserID,
		CreatedAt:       application.CreatedAt,
		UpdatedAt:       application.UpdatedAt,
	}
}

// MapApplicationsToDTO maps an application page to ApplicationListResponse.
// A nil offset marks an unpaged listing.
func MapApplicationsToDTO(applications []*schema.Application, offset *int, total int64) *ApplicationListResponse {
	items := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		items = append(items, *MapApplicationToDTO(application))
	}
	return &ApplicationListResponse{
		Applications: items,
		Offset:       offset,
		Total:        total,
	}
}

// MapVoteToDTO maps a schema.ApplicationVote to VoteResponse
func MapVoteToDTO(vote *schema.ApplicationVote) *VoteResponse {
	return &VoteResponse{
		ID:                vote.ID,
		ApplicationID:     vote.ApplicationID,
		VoterID:           vote.VoterID,
		Vote:              string(vote.Vote),
		VoteWeight:        vote.VoteWeight,
		AttendanceRate30d: vote.AttendanceRate30d,
		Comment:           vote.Comment,
		CreatedAt:         vote.CreatedAt,
		UpdatedAt:         vote.UpdatedAt,
	}
}

// MapCloseVotingToDTO maps a store.CloseVotingResult to CloseVotingResponse
func MapCloseVotingToDTO(result *store.CloseVotingResult) *CloseVotingResponse {
	return &CloseVotingResponse{
		Application: *MapApplicationToDTO(result.Application),
		Tally: VoteTallyResponse{
			YesCount:      result.Tally.YesCount,
			NoCount:       result.Tally.NoCount,
			AbstainCount:  result.Tally.AbstainCount,
			YesWeight:     result.Tally.YesWeight,
			NoWeight:      result.Tally.NoWeight,
			AbstainWeight: result.Tally.AbstainWeight,
		},
		Decision: VotingDecisionResponse{
			Approved:           result.Decision.Approved,
			Reason:             result.Decision.Reason,
			ApprovalPercentage: result.Decision.ApprovalPercentage,
		},
	}
}

// MapProvisionToDTO maps a store.ProvisionResult to ProvisionResponse
func MapProvisionToDTO(result *store.ProvisionResult) *ProvisionResponse {
	response := &ProvisionResponse{
		Application:    *MapApplicationToDTO(result.Application),
		Username:       result.Username,
		RankAssigned:   result.RankAssigned,
		GroupsAssigned: result.GroupsAssigned,
		Warnings:       result.Warnings,
	}
	if result.User != nil {
		response.User = MapUserToDTO(result.User)
	}
	if result.Character != nil {
		response.Character = MapCharacterToDTO(result.Character)
	}
	return response
}

// MapProvisionBatchToDTO maps a recruitment.ProvisionBatchResult to
// ProvisionBatchResponse
func MapProvisionBatchToDTO(result *recruitment.ProvisionBatchResult) *ProvisionBatchResponse {
	response := &ProvisionBatchResponse{
		Provisioned: make([]ProvisionResponse, 0, len(result.Provisioned)),
	}
	for _, provision := range result.Provisioned {
		response.Provisioned = append(response.Provisioned, *MapProvisionToDTO(provision))
	}
	for _, failure := range result.Failed {
		response.Failed = append(response.Failed, BatchFailureResponse{
			ApplicationID: failure.ApplicationID,
			Error:         failure.Err.Error(),
		})
	}
	return response
}
