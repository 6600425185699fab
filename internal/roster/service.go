package roster

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/messaging"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

const minCharacterNameLength = 2

// CreateCharacterInput creates a character for an existing member
type CreateCharacterInput struct {
	Name  string
	Class string
	Level int
	// UserID is the owning member
	UserID int64
	// MainCharacterID links the new character as an alt of an existing main
	MainCharacterID *int64
	Description     string
	PerformedBy     *int64
}

// TransferInput moves a character to a new owner
type TransferInput struct {
	CharacterID int64
	NewOwnerID  int64
	// Reason defaults to manual when empty
	Reason      schema.OwnershipReason
	Notes       string
	PerformedBy *int64
}

// MemberStatusInput activates or deactivates a member
type MemberStatusInput struct {
	UserID      int64
	IsActive    bool
	Reason      string
	PerformedBy *int64
}

// Service manages the guild roster: members and their Discord links,
// characters with their alt linkage and ownership history, and the rank
// catalog. Roster mutations land their notification in the outbox inside
// the producing transaction; the publish here is only the low-latency nudge.
//
//go:generate mockgen -source=service.go -destination=../mocks/roster.go -package=mocks -mock_names=Service=MockRosterService
type Service interface {
	// CreateCharacter creates a character after normalizing and validating
	// its name, optionally linked as an alt of an existing main
	CreateCharacter(ctx context.Context, input CreateCharacterInput) (*schema.Character, error)

	// GetCharacter retrieves a character with its owner
	GetCharacter(ctx context.Context, characterID int64) (*schema.Character, error)

	// GetCharacterByName retrieves a character by its unique name
	GetCharacterByName(ctx context.Context, name string) (*schema.Character, error)

	// ListCharactersByUser lists all characters owned by a member
	ListCharactersByUser(ctx context.Context, userID int64) ([]*schema.Character, error)

	// GetCharacterFamily returns the main and all alts of the family
	// containing the given character
	GetCharacterFamily(ctx context.Context, characterID int64) ([]*schema.Character, error)

	// GetOwnershipHistory lists a character's transfer records, newest first
	GetOwnershipHistory(ctx context.Context, characterID int64) ([]*schema.CharacterOwnership, error)

	// RecordTransfer moves a character to a new owner, appending the
	// ownership record and repointing the character in one transaction
	RecordTransfer(ctx context.Context, input TransferInput) (*schema.CharacterOwnership, error)

	// LinkDiscord attaches a Discord account to the named member
	LinkDiscord(ctx context.Context, username, discordID string, performedBy *int64) (*schema.User, error)

	// UnlinkDiscord detaches a member's Discord account. The identifier is
	// a Discord ID or a username.
	UnlinkDiscord(ctx context.Context, identifier string, performedBy *int64) (*schema.User, error)

	// UpdateMemberStatus flips a member's active flag and cascades it to
	// their characters
	UpdateMemberStatus(ctx context.Context, input MemberStatusInput) (*store.MemberStatusResult, error)

	// ListRanks lists the rank catalog ordered by level
	ListRanks(ctx context.Context) ([]*schema.Rank, error)

	// GetRankByName retrieves a rank by its exact name
	GetRankByName(ctx context.Context, name string) (*schema.Rank, error)
}

type service struct {
	store     store.Store
	publisher messaging.Publisher
}

// NewService creates a roster service over the store and the publisher for
// post-commit nudges
func NewService(st store.Store, pub messaging.Publisher) Service {
	return &service{
		store:     st,
		publisher: pub,
	}
}

// CreateCharacter creates a character after normalizing and validating its name
func (s *service) CreateCharacter(ctx context.Context, input CreateCharacterInput) (*schema.Character, error) {
	name := domain.NormalizeCharacterName(input.Name)
	if len(name) < minCharacterNameLength {
		return nil, fmt.Errorf("character name must be at least %d characters", minCharacterNameLength)
	}
	if strings.TrimSpace(input.Class) == "" {
		return nil, fmt.Errorf("character class is required")
	}
	level := input.Level
	if level < 1 {
		level = 1
	}

	character, event, err := s.store.CreateCharacter(ctx, store.CreateCharacterInput{
		Name:            name,
		Class:           strings.TrimSpace(input.Class),
		Level:           level,
		UserID:          input.UserID,
		MainCharacterID: input.MainCharacterID,
		Description:     input.Description,
		OwnershipNotes:  "Initial character creation",
		PerformedBy:     input.PerformedBy,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	logger.InfoCtx(ctx, "Character created",
		zap.Int64("characterID", character.ID),
		zap.String("name", character.Name),
		zap.Int64("userID", character.UserID),
		zap.Bool("isAlt", character.IsAlt()))
	return character, nil
}

// GetCharacter retrieves a character with its owner
func (s *service) GetCharacter(ctx context.Context, characterID int64) (*schema.Character, error) {
	character, err := s.store.GetCharacterByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}
	return character, nil
}

// GetCharacterByName retrieves a character by its unique name
func (s *service) GetCharacterByName(ctx context.Context, name string) (*schema.Character, error) {
	normalized := domain.NormalizeCharacterName(name)
	character, err := s.store.GetCharacterByName(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, normalized)
	}
	return character, nil
}

// ListCharactersByUser lists all characters owned by a member
func (s *service) ListCharactersByUser(ctx context.Context, userID int64) ([]*schema.Character, error) {
	return s.store.ListCharactersByUser(ctx, userID)
}

// GetCharacterFamily returns the main and all alts of the family containing
// the given character
func (s *service) GetCharacterFamily(ctx context.Context, characterID int64) ([]*schema.Character, error) {
	family, err := s.store.GetCharacterFamily(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, domain.ErrCharacterNotFound
	}
	return family, nil
}

// GetOwnershipHistory lists a character's transfer records, newest first
func (s *service) GetOwnershipHistory(ctx context.Context, characterID int64) ([]*schema.CharacterOwnership, error) {
	character, err := s.store.GetCharacterByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}
	return s.store.ListCharacterOwnership(ctx, characterID)
}

// RecordTransfer moves a character to a new owner
func (s *service) RecordTransfer(ctx context.Context, input TransferInput) (*schema.CharacterOwnership, error) {
	character, err := s.store.GetCharacterByID(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}
	if character.UserID == input.NewOwnerID {
		return nil, domain.ErrSameOwner
	}

	newOwner, err := s.store.GetUserByID(ctx, input.NewOwnerID)
	if err != nil {
		return nil, err
	}
	if newOwner == nil {
		return nil, fmt.Errorf("%w: new owner %d", domain.ErrUserNotFound, input.NewOwnerID)
	}

	reason := input.Reason
	if reason == "" {
		reason = schema.OwnershipReasonManual
	}

	var transferredBy string
	if input.PerformedBy != nil {
		performer, err := s.store.GetUserByID(ctx, *input.PerformedBy)
		if err != nil {
			return nil, err
		}
		if performer != nil {
			transferredBy = performer.Username
		}
	}

	previousOwnerID := character.UserID
	event, err := domain.NewNotificationEvent(domain.NotificationCharacterTransfer, domain.ChannelGeneral, domain.CharacterTransferPayload{
		CharacterPayload: domain.CharacterPayload{
			CharacterID:   character.ID,
			CharacterName: character.Name,
			Class:         character.Class,
			Level:         character.Level,
			OwnerID:       newOwner.ID,
			OwnerName:     newOwner.Username,
		},
		PreviousOwnerID:   &previousOwnerID,
		PreviousOwnerName: character.User.Username,
		Reason:            string(reason),
		TransferredBy:     transferredBy,
	})
	if err != nil {
		return nil, err
	}

	ownership, err := s.store.RecordCharacterTransfer(ctx, store.TransferCharacterInput{
		CharacterID:  input.CharacterID,
		NewOwnerID:   input.NewOwnerID,
		Reason:       reason,
		Notes:        input.Notes,
		PerformedBy:  input.PerformedBy,
		Notification: event,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	logger.InfoCtx(ctx, "Character transferred",
		zap.Int64("characterID", character.ID),
		zap.String("name", character.Name),
		zap.Int64("previousOwnerID", previousOwnerID),
		zap.Int64("newOwnerID", newOwner.ID),
		zap.String("reason", string(reason)))
	return ownership, nil
}

// LinkDiscord attaches a Discord account to the named member
func (s *service) LinkDiscord(ctx context.Context, username, discordID string, performedBy *int64) (*schema.User, error) {
	username = strings.TrimSpace(username)
	discordID = strings.TrimSpace(discordID)
	if !domain.ValidDiscordID(discordID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDiscordID, discordID)
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}

	event, err := domain.NewNotificationEvent(domain.NotificationDiscordLinked, domain.ChannelOfficers, domain.DiscordLinkPayload{
		UserID:    user.ID,
		Username:  user.Username,
		DiscordID: discordID,
	})
	if err != nil {
		return nil, err
	}

	linked, err := s.store.LinkDiscordAccount(ctx, store.LinkDiscordInput{
		UserID:       user.ID,
		DiscordID:    discordID,
		PerformedBy:  performedBy,
		Notification: event,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	logger.InfoCtx(ctx, "Discord account linked",
		zap.Int64("userID", linked.ID),
		zap.String("username", linked.Username),
		zap.String("discordID", discordID))
	return linked, nil
}

// UnlinkDiscord detaches a member's Discord account
func (s *service) UnlinkDiscord(ctx context.Context, identifier string, performedBy *int64) (*schema.User, error) {
	identifier = strings.TrimSpace(identifier)

	var (
		user *schema.User
		err  error
	)
	if domain.ValidDiscordID(identifier) {
		user, err = s.store.GetUserByDiscordID(ctx, identifier)
	} else {
		user, err = s.store.GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, identifier)
	}

	// Already unlinked, nothing to announce
	if user.DiscordID == nil {
		return user, nil
	}

	event, err := domain.NewNotificationEvent(domain.NotificationDiscordUnlinked, domain.ChannelOfficers, domain.DiscordLinkPayload{
		UserID:    user.ID,
		Username:  user.Username,
		DiscordID: *user.DiscordID,
	})
	if err != nil {
		return nil, err
	}

	unlinked, err := s.store.UnlinkDiscordAccount(ctx, store.UnlinkDiscordInput{
		UserID:       user.ID,
		PerformedBy:  performedBy,
		Notification: event,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, event)

	logger.InfoCtx(ctx, "Discord account unlinked",
		zap.Int64("userID", unlinked.ID),
		zap.String("username", unlinked.Username))
	return unlinked, nil
}

// UpdateMemberStatus flips a member's active flag and cascades it to their
// characters
func (s *service) UpdateMemberStatus(ctx context.Context, input MemberStatusInput) (*store.MemberStatusResult, error) {
	result, err := s.store.UpdateMemberStatus(ctx, store.UpdateMemberStatusInput{
		UserID:            input.UserID,
		IsActive:          input.IsActive,
		CascadeCharacters: true,
		Reason:            input.Reason,
		PerformedBy:       input.PerformedBy,
	})
	if err != nil {
		return nil, err
	}
	messaging.PublishCommitted(ctx, s.publisher, result.Notification)

	logger.InfoCtx(ctx, "Member status changed",
		zap.Int64("userID", result.User.ID),
		zap.String("username", result.User.Username),
		zap.Bool("isActive", input.IsActive),
		zap.Int64("charactersUpdated", result.CharactersUpdated))
	return result, nil
}

// ListRanks lists the rank catalog ordered by level
func (s *service) ListRanks(ctx context.Context) ([]*schema.Rank, error) {
	return s.store.ListRanks(ctx)
}

// GetRankByName retrieves a rank by its exact name
func (s *service) GetRankByName(ctx context.Context, name string) (*schema.Rank, error) {
	rank, err := s.store.GetRankByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if rank == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRankNotFound, name)
	}
	return rank, nil
}
