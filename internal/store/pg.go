package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Ping verifies database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// outboxRowFromEvent maps a notification event onto its outbox row
func outboxRowFromEvent(event *domain.NotificationEvent) *schema.NotificationOutbox {
	return &schema.NotificationOutbox{
		EventID:   event.EventID,
		EventType: string(event.EventType),
		Channel:   string(event.Channel),
		Payload:   datatypes.JSON(event.Payload),
		Status:    schema.OutboxStatusPending,
	}
}

// insertOutboxTx writes an outbox row inside the surrounding transaction.
// A nil event is a no-op so callers can pass through optional notifications.
func insertOutboxTx(tx *gorm.DB, event *domain.NotificationEvent) error {
	if event == nil {
		return nil
	}
	if err := tx.Create(outboxRowFromEvent(event)).Error; err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

// auditJSON marshals audit values; maps of plain values cannot fail
func auditJSON(values map[string]any) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// insertAuditTx appends an audit log entry inside the surrounding transaction
func insertAuditTx(tx *gorm.DB, entry *schema.LootAuditLog) error {
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// CreateUser creates a new member account
func (s *pgStore) CreateUser(ctx context.Context, username string) (*schema.User, error) {
	user := schema.User{
		Username: username,
		IsActive: true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByID retrieves a user by internal ID
func (s *pgStore) GetUserByID(ctx context.Context, userID int64) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (s *pgStore) GetUserByUsername(ctx context.Context, username string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByDiscordID retrieves a user by linked Discord ID
func (s *pgStore) GetUserByDiscordID(ctx context.Context, discordID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("discord_id = ?", discordID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by discord ID: %w", err)
	}
	return &user, nil
}

// GetUsersByIDs retrieves multiple users by internal IDs
func (s *pgStore) GetUsersByIDs(ctx context.Context, userIDs []int64) ([]*schema.User, error) {
	if len(userIDs) == 0 {
		return []*schema.User{}, nil
	}

	var users []*schema.User
	err := s.db.WithContext(ctx).
		Where("id IN ?", userIDs).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}

	return users, nil
}

// LinkDiscordAccount links a Discord ID to a member and writes the audit entry
func (s *pgStore) LinkDiscordAccount(ctx context.Context, input LinkDiscordInput) (*schema.User, error) {
	var user schema.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.UserID).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		if user.DiscordID != nil {
			return fmt.Errorf("%w: user %s already has a linked account", domain.ErrDiscordAlreadyLinked, user.Username)
		}

		var count int64
		if err := tx.Model(&schema.User{}).Where("discord_id = ?", input.DiscordID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check discord ID: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: discord ID %s belongs to another member", domain.ErrDiscordAlreadyLinked, input.DiscordID)
		}

		if err := tx.Model(&user).Update("discord_id", input.DiscordID).Error; err != nil {
			return fmt.Errorf("failed to link discord account: %w", err)
		}

		audit := &schema.LootAuditLog{
			ActionType:     schema.AuditActionAdmin,
			PerformedByID:  input.PerformedBy,
			AffectedUserID: &user.ID,
			Description:    fmt.Sprintf("Linked Discord account %s to %s", input.DiscordID, user.Username),
			NewValues:      auditJSON(map[string]any{"discord_id": input.DiscordID}),
		}
		if err := insertAuditTx(tx, audit); err != nil {
			return err
		}

		return insertOutboxTx(tx, input.Notification)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UnlinkDiscordAccount removes a member's Discord link and writes the audit entry
func (s *pgStore) UnlinkDiscordAccount(ctx context.Context, input UnlinkDiscordInput) (*schema.User, error) {
	var user schema.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.UserID).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		// Nothing to do for an unlinked account
		if user.DiscordID == nil {
			return nil
		}

		previous := *user.DiscordID
		if err := tx.Model(&user).Update("discord_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unlink discord account: %w", err)
		}
		user.DiscordID = nil

		audit := &schema.LootAuditLog{
			ActionType:     schema.AuditActionAdmin,
			PerformedByID:  input.PerformedBy,
			AffectedUserID: &user.ID,
			Description:    fmt.Sprintf("Unlinked Discord account %s from %s", previous, user.Username),
			OldValues:      auditJSON(map[string]any{"discord_id": previous}),
		}
		if err := insertAuditTx(tx, audit); err != nil {
			return err
		}

		return insertOutboxTx(tx, input.Notification)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateMemberStatus flips a member's active flag, cascades to their
// characters, and writes the audit entry
func (s *pgStore) UpdateMemberStatus(ctx context.Context, input UpdateMemberStatusInput) (*MemberStatusResult, error) {
	var result MemberStatusResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user schema.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.UserID).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		wasActive := user.IsActive
		if err := tx.Model(&user).Update("is_active", input.IsActive).Error; err != nil {
			return fmt.Errorf("failed to update member status: %w", err)
		}
		user.IsActive = input.IsActive

		if input.CascadeCharacters {
			res := tx.Model(&schema.Character{}).
				Where("user_id = ?", user.ID).
				Update("is_active", input.IsActive)
			if res.Error != nil {
				return fmt.Errorf("failed to cascade status to characters: %w", res.Error)
			}
			result.CharactersUpdated = res.RowsAffected
		}

		audit := &schema.LootAuditLog{
			ActionType:     schema.AuditActionAdmin,
			PerformedByID:  input.PerformedBy,
			AffectedUserID: &user.ID,
			Description:    fmt.Sprintf("Changed member status of %s (active=%t)", user.Username, input.IsActive),
			OldValues:      auditJSON(map[string]any{"is_active": wasActive}),
			NewValues:      auditJSON(map[string]any{"is_active": input.IsActive, "reason": input.Reason}),
		}
		if err := insertAuditTx(tx, audit); err != nil {
			return err
		}

		event, eventErr := domain.NewNotificationEvent(domain.NotificationMemberStatus, domain.ChannelOfficers, domain.MemberStatusPayload{
			UserID:            user.ID,
			Username:          user.Username,
			IsActive:          input.IsActive,
			Reason:            input.Reason,
			CharactersUpdated: result.CharactersUpdated,
		})
		if eventErr != nil {
			return eventErr
		}
		result.User = &user
		result.Notification = event
		return insertOutboxTx(tx, event)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetRankByName retrieves a rank by its exact name
func (s *pgStore) GetRankByName(ctx context.Context, name string) (*schema.Rank, error) {
	var rank schema.Rank
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&rank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rank: %w", err)
	}
	return &rank, nil
}

// GetFallbackRank retrieves the rank with the smallest level number, used
// when a configured rank name resolves to nothing
func (s *pgStore) GetFallbackRank(ctx context.Context) (*schema.Rank, error) {
	var rank schema.Rank
	err := s.db.WithContext(ctx).Order("level ASC").First(&rank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fallback rank: %w", err)
	}
	return &rank, nil
}

// ListRanks lists all ranks ordered by level
func (s *pgStore) ListRanks(ctx context.Context) ([]*schema.Rank, error) {
	var ranks []*schema.Rank
	err := s.db.WithContext(ctx).Order("level ASC").Find(&ranks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ranks: %w", err)
	}
	return ranks, nil
}

// CreateCharacter creates a character and its initial ownership record in
// one transaction, and enqueues the roster announcement; the returned
// event still needs a post-commit publish
func (s *pgStore) CreateCharacter(ctx context.Context, input CreateCharacterInput) (*schema.Character, *domain.NotificationEvent, error) {
	character := schema.Character{
		Name:            input.Name,
		Class:           input.Class,
		Level:           input.Level,
		Status:          schema.CharacterStatusActive,
		UserID:          input.UserID,
		MainCharacterID: input.MainCharacterID,
		Description:     input.Description,
		IsActive:        true,
	}
	if input.MainCharacterID != nil {
		character.Status = schema.CharacterStatusAlt
	}

	var event *domain.NotificationEvent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner schema.User
		if err := tx.Where("id = ?", input.UserID).First(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get owner: %w", err)
		}

		var count int64
		if err := tx.Model(&schema.Character{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check character name: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", domain.ErrCharacterNameTaken, input.Name)
		}

		if input.MainCharacterID != nil {
			var main schema.Character
			if err := tx.Where("id = ?", *input.MainCharacterID).First(&main).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: main character %d", domain.ErrCharacterNotFound, *input.MainCharacterID)
				}
				return fmt.Errorf("failed to get main character: %w", err)
			}
			if main.IsAlt() {
				return domain.ErrAltOfAlt
			}
		}

		if err := tx.Create(&character).Error; err != nil {
			return fmt.Errorf("failed to create character: %w", err)
		}

		ownership := schema.CharacterOwnership{
			CharacterID:     character.ID,
			PreviousOwnerID: nil,
			NewOwnerID:      input.UserID,
			Reason:          schema.OwnershipReasonCreated,
			Notes:           input.OwnershipNotes,
			TransferredByID: input.PerformedBy,
		}
		if err := tx.Create(&ownership).Error; err != nil {
			return fmt.Errorf("failed to record character ownership: %w", err)
		}

		var eventErr error
		event, eventErr = domain.NewNotificationEvent(domain.NotificationCharacterCreated, domain.ChannelGeneral, domain.CharacterPayload{
			CharacterID:   character.ID,
			CharacterName: character.Name,
			Class:         character.Class,
			Level:         character.Level,
			OwnerID:       owner.ID,
			OwnerName:     owner.Username,
		})
		if eventErr != nil {
			return eventErr
		}
		return insertOutboxTx(tx, event)
	})
	if err != nil {
		return nil, nil, err
	}

	return &character, event, nil
}

// GetCharacterByID retrieves a character with its owner
func (s *pgStore) GetCharacterByID(ctx context.Context, characterID int64) (*schema.Character, error) {
	var character schema.Character
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", characterID).
		First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return &character, nil
}

// GetCharacterByName retrieves a character by its unique name
func (s *pgStore) GetCharacterByName(ctx context.Context, name string) (*schema.Character, error) {
	var character schema.Character
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("name = ?", name).
		First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return &character, nil
}

// ListCharactersByUser lists all characters owned by a member
func (s *pgStore) ListCharactersByUser(ctx context.Context, userID int64) ([]*schema.Character, error) {
	var characters []*schema.Character
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&characters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

// GetCharacterFamily returns the main character and all alts for the family
// containing the given character
func (s *pgStore) GetCharacterFamily(ctx context.Context, characterID int64) ([]*schema.Character, error) {
	var character schema.Character
	err := s.db.WithContext(ctx).Where("id = ?", characterID).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	mainID := character.ID
	if character.MainCharacterID != nil {
		mainID = *character.MainCharacterID
	}

	var family []*schema.Character
	err = s.db.WithContext(ctx).
		Where("id = ? OR main_character_id = ?", mainID, mainID).
		Order("name ASC").
		Find(&family).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get character family: %w", err)
	}

	return family, nil
}

// RecordCharacterTransfer appends an ownership record and repoints the
// character in one transaction
func (s *pgStore) RecordCharacterTransfer(ctx context.Context, input TransferCharacterInput) (*schema.CharacterOwnership, error) {
	var ownership schema.CharacterOwnership

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var character schema.Character
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.CharacterID).
			First(&character).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCharacterNotFound
			}
			return fmt.Errorf("failed to get character: %w", err)
		}

		if character.UserID == input.NewOwnerID {
			return domain.ErrSameOwner
		}

		var newOwner schema.User
		if err := tx.Where("id = ?", input.NewOwnerID).First(&newOwner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: new owner %d", domain.ErrUserNotFound, input.NewOwnerID)
			}
			return fmt.Errorf("failed to get new owner: %w", err)
		}

		previousOwnerID := character.UserID
		ownership = schema.CharacterOwnership{
			CharacterID:     character.ID,
			PreviousOwnerID: &previousOwnerID,
			NewOwnerID:      input.NewOwnerID,
			Reason:          input.Reason,
			Notes:           input.Notes,
			TransferredByID: input.PerformedBy,
		}
		if err := tx.Create(&ownership).Error; err != nil {
			return fmt.Errorf("failed to record transfer: %w", err)
		}

		if err := tx.Model(&character).Update("user_id", input.NewOwnerID).Error; err != nil {
			return fmt.Errorf("failed to repoint character: %w", err)
		}

		return insertOutboxTx(tx, input.Notification)
	})
	if err != nil {
		return nil, err
	}

	return &ownership, nil
}

// ListCharacterOwnership lists a character's transfer history, newest first
func (s *pgStore) ListCharacterOwnership(ctx context.Context, characterID int64) ([]*schema.CharacterOwnership, error) {
	var history []*schema.CharacterOwnership
	err := s.db.WithContext(ctx).
		Preload("PreviousOwner").
		Preload("NewOwner").
		Where("character_id = ?", characterID).
		Order("transfer_date DESC, id DESC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ownership history: %w", err)
	}
	return history, nil
}

// lockSummaryTx loads a member's summary row under a row lock, creating the
// zero row first when absent. All balance mutations for a user serialize on
// this lock.
func lockSummaryTx(tx *gorm.DB, userID int64) (*schema.UserPointsSummary, error) {
	summary := schema.UserPointsSummary{
		UserID:       userID,
		TotalPoints:  decimal.Zero,
		EarnedPoints: decimal.Zero,
		SpentPoints:  decimal.Zero,
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&summary).Error; err != nil {
		return nil, fmt.Errorf("failed to create points summary: %w", err)
	}

	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&summary).Error; err != nil {
		return nil, fmt.Errorf("failed to lock points summary: %w", err)
	}

	return &summary, nil
}

// createAdjustmentTx validates and writes one ledger entry and applies its
// delta to the locked summary. The non-negative balance floor is enforced
// here against the locked row, so concurrent writers cannot both pass a
// stale check.
func createAdjustmentTx(tx *gorm.DB, input CreateAdjustmentInput) (*schema.PointAdjustment, error) {
	if input.AdjustmentType.MustBeNegative() && !input.Points.IsNegative() {
		return nil, fmt.Errorf("%w: %s entries must be negative", domain.ErrInvalidAdjustmentSign, input.AdjustmentType)
	}
	if input.AdjustmentType.MustBeNonNegative() && input.Points.IsNegative() {
		return nil, fmt.Errorf("%w: %s entries must not be negative", domain.ErrInvalidAdjustmentSign, input.AdjustmentType)
	}

	summary, err := lockSummaryTx(tx, input.UserID)
	if err != nil {
		return nil, err
	}

	newTotal := summary.TotalPoints.Add(input.Points)
	if newTotal.IsNegative() {
		return nil, fmt.Errorf("%w: balance %s, adjustment %s", domain.ErrInsufficientBalance, summary.TotalPoints, input.Points)
	}

	adjustment := schema.PointAdjustment{
		UserID:         input.UserID,
		Points:         input.Points,
		AdjustmentType: input.AdjustmentType,
		Description:    input.Description,
		CharacterName:  input.CharacterName,
		CreatedByID:    input.CreatedBy,
		IsLocked:       input.IsLocked,
	}
	if err := tx.Create(&adjustment).Error; err != nil {
		return nil, fmt.Errorf("failed to create adjustment: %w", err)
	}

	earned := summary.EarnedPoints
	spent := summary.SpentPoints
	if input.Points.IsPositive() {
		earned = earned.Add(input.Points)
	} else if input.Points.IsNegative() {
		spent = spent.Add(input.Points.Neg())
	}

	if err := tx.Model(summary).Updates(map[string]any{
		"total_points":  newTotal,
		"earned_points": earned,
		"spent_points":  spent,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update points summary: %w", err)
	}

	return &adjustment, nil
}

// recalcSummaryTx re-derives a member's summary from the full ledger under
// the summary row lock. Repair semantics: the floor is not re-checked, the
// ledger is taken as truth.
func recalcSummaryTx(tx *gorm.DB, userID int64) (*schema.UserPointsSummary, error) {
	summary, err := lockSummaryTx(tx, userID)
	if err != nil {
		return nil, err
	}

	var agg struct {
		Earned decimal.Decimal
		Spent  decimal.Decimal
	}
	err = tx.Model(&schema.PointAdjustment{}).
		Select("COALESCE(SUM(points) FILTER (WHERE points > 0), 0) AS earned, COALESCE(SUM(-points) FILTER (WHERE points < 0), 0) AS spent").
		Where("user_id = ?", userID).
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate adjustments: %w", err)
	}

	total := agg.Earned.Sub(agg.Spent)
	if err := tx.Model(summary).Updates(map[string]any{
		"total_points":  total,
		"earned_points": agg.Earned,
		"spent_points":  agg.Spent,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update points summary: %w", err)
	}

	summary.TotalPoints = total
	summary.EarnedPoints = agg.Earned
	summary.SpentPoints = agg.Spent
	return summary, nil
}

// CreateAdjustment writes one ledger entry and applies the summary delta
// under a row lock
func (s *pgStore) CreateAdjustment(ctx context.Context, input CreateAdjustmentInput) (*schema.PointAdjustment, error) {
	var adjustment *schema.PointAdjustment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.User{}).Where("id = ?", input.UserID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if count == 0 {
			return domain.ErrUserNotFound
		}

		var err error
		adjustment, err = createAdjustmentTx(tx, input)
		if err != nil {
			return err
		}

		return insertOutboxTx(tx, input.Notification)
	})
	if err != nil {
		return nil, err
	}

	return adjustment, nil
}

// CreateTransferAdjustments writes the paired debit/credit entries of a
// member transfer in one transaction. The debit leg is floor-checked, so a
// transfer can never overdraw the sender.
func (s *pgStore) CreateTransferAdjustments(ctx context.Context, input TransferPointsInput) (*TransferResult, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount must be positive, got %s", input.Amount)
	}

	var result TransferResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from, to schema.User
		if err := tx.Where("id = ?", input.FromUserID).First(&from).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: sender %d", domain.ErrUserNotFound, input.FromUserID)
			}
			return fmt.Errorf("failed to get sender: %w", err)
		}
		if err := tx.Where("id = ?", input.ToUserID).First(&to).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: recipient %d", domain.ErrUserNotFound, input.ToUserID)
			}
			return fmt.Errorf("failed to get recipient: %w", err)
		}

		debit, err := createAdjustmentTx(tx, CreateAdjustmentInput{
			UserID:         input.FromUserID,
			Points:         input.Amount.Neg(),
			AdjustmentType: schema.AdjustmentTypeTransfer,
			Description:    fmt.Sprintf("Transfer to %s: %s", to.Username, input.Reason),
			CreatedBy:      input.CreatedBy,
		})
		if err != nil {
			return err
		}

		credit, err := createAdjustmentTx(tx, CreateAdjustmentInput{
			UserID:         input.ToUserID,
			Points:         input.Amount,
			AdjustmentType: schema.AdjustmentTypeTransfer,
			Description:    fmt.Sprintf("Transfer from %s: %s", from.Username, input.Reason),
			CreatedBy:      input.CreatedBy,
		})
		if err != nil {
			return err
		}

		result.Debit = debit
		result.Credit = credit
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteAdjustment removes an unlocked ledger entry and recalculates the
// owner's summary
func (s *pgStore) DeleteAdjustment(ctx context.Context, input DeleteAdjustmentInput) (*schema.PointAdjustment, error) {
	var adjustment schema.PointAdjustment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.AdjustmentID).
			First(&adjustment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAdjustmentNotFound
			}
			return fmt.Errorf("failed to get adjustment: %w", err)
		}

		if adjustment.IsLocked {
			return fmt.Errorf("%w: adjustment %d", domain.ErrAdjustmentLocked, adjustment.ID)
		}

		if err := tx.Delete(&schema.PointAdjustment{}, adjustment.ID).Error; err != nil {
			return fmt.Errorf("failed to delete adjustment: %w", err)
		}

		if _, err := recalcSummaryTx(tx, adjustment.UserID); err != nil {
			return err
		}

		audit := &schema.LootAuditLog{
			ActionType:     schema.AuditActionAdjustment,
			PerformedByID:  input.PerformedBy,
			AffectedUserID: &adjustment.UserID,
			Description:    fmt.Sprintf("Deleted adjustment %d (%s %s)", adjustment.ID, adjustment.AdjustmentType, adjustment.Points),
			OldValues: auditJSON(map[string]any{
				"points":          adjustment.Points,
				"adjustment_type": adjustment.AdjustmentType,
				"description":     adjustment.Description,
			}),
		}
		return insertAuditTx(tx, audit)
	})
	if err != nil {
		return nil, err
	}

	return &adjustment, nil
}

// GetAdjustmentByID retrieves a ledger entry by ID
func (s *pgStore) GetAdjustmentByID(ctx context.Context, adjustmentID int64) (*schema.PointAdjustment, error) {
	var adjustment schema.PointAdjustment
	err := s.db.WithContext(ctx).Where("id = ?", adjustmentID).First(&adjustment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get adjustment: %w", err)
	}
	return &adjustment, nil
}

// ListAdjustmentsByUser pages a member's ledger entries, newest first,
// returning the total count
func (s *pgStore) ListAdjustmentsByUser(ctx context.Context, userID int64, limit, offset int) ([]*schema.PointAdjustment, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.PointAdjustment{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count adjustments: %w", err)
	}

	var adjustments []*schema.PointAdjustment
	err := query.
		Preload("CreatedBy").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&adjustments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list adjustments: %w", err)
	}

	return adjustments, total, nil
}

// GetUserPointsSummary retrieves a member's balance summary, nil when absent
func (s *pgStore) GetUserPointsSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error) {
	var summary schema.UserPointsSummary
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get points summary: %w", err)
	}
	return &summary, nil
}

// GetOrCreateUserPointsSummary retrieves a member's balance summary,
// creating a zero row when absent
func (s *pgStore) GetOrCreateUserPointsSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error) {
	summary := schema.UserPointsSummary{
		UserID:       userID,
		TotalPoints:  decimal.Zero,
		EarnedPoints: decimal.Zero,
		SpentPoints:  decimal.Zero,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create points summary: %w", err)
	}

	// If summary.ID is 0, the row already existed, so fetch it
	if summary.ID == 0 {
		query := s.db.WithContext(ctx)
		if hasDBResolver(s.db) {
			// The row may have been written moments ago; read the primary
			query = query.Clauses(dbresolver.Write)
		}
		if err := query.Where("user_id = ?", userID).First(&summary).Error; err != nil {
			return nil, fmt.Errorf("failed to get points summary: %w", err)
		}
	}

	return &summary, nil
}

// RecalculateUserSummary re-derives a member's summary from the full ledger
// (repair operation). The result matches what incremental maintenance
// produces for the same ledger.
func (s *pgStore) RecalculateUserSummary(ctx context.Context, userID int64) (*schema.UserPointsSummary, error) {
	var summary *schema.UserPointsSummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		summary, err = recalcSummaryTx(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ListUserIDsWithAdjustments lists the IDs of members that have any ledger
// entries
func (s *pgStore) ListUserIDsWithAdjustments(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&schema.PointAdjustment{}).
		Distinct("user_id").
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users with adjustments: %w", err)
	}
	return ids, nil
}

// GetLeaderboard returns the top balances with usernames, ordered by total
// descending
func (s *pgStore) GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var entries []*LeaderboardEntry
	err := s.db.WithContext(ctx).
		Model(&schema.UserPointsSummary{}).
		Select("user_points_summaries.user_id AS user_id, users.username AS username, user_points_summaries.total_points AS total_points").
		Joins("JOIN users ON users.id = user_points_summaries.user_id").
		Order("user_points_summaries.total_points DESC, users.username ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// GetLedgerStats aggregates economy-wide totals; recent counts are measured
// from the given time
func (s *pgStore) GetLedgerStats(ctx context.Context, recentSince time.Time) (*LedgerStats, error) {
	var agg struct {
		TotalEarned      decimal.Decimal
		TotalSpent       decimal.Decimal
		TotalAdjustments int64
	}
	err := s.db.WithContext(ctx).
		Model(&schema.PointAdjustment{}).
		Select("COALESCE(SUM(points) FILTER (WHERE points > 0), 0) AS total_earned, COALESCE(SUM(-points) FILTER (WHERE points < 0), 0) AS total_spent, COUNT(*) AS total_adjustments").
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ledger stats: %w", err)
	}

	var summaryAgg struct {
		TotalUsers    int64
		TotalPoints   decimal.Decimal
		AveragePoints decimal.Decimal
	}
	err = s.db.WithContext(ctx).
		Model(&schema.UserPointsSummary{}).
		Select("COUNT(*) AS total_users, COALESCE(SUM(total_points), 0) AS total_points, COALESCE(AVG(total_points), 0) AS average_points").
		Scan(&summaryAgg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate summary stats: %w", err)
	}

	var recent int64
	err = s.db.WithContext(ctx).
		Model(&schema.PointAdjustment{}).
		Where("created_at >= ?", recentSince).
		Count(&recent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count recent adjustments: %w", err)
	}

	var membersWithPoints int64
	err = s.db.WithContext(ctx).
		Model(&schema.UserPointsSummary{}).
		Where("total_points > 0").
		Count(&membersWithPoints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count members with points: %w", err)
	}

	topEarner, err := s.topSummaryUsername(ctx, "earned_points")
	if err != nil {
		return nil, err
	}
	topSpender, err := s.topSummaryUsername(ctx, "spent_points")
	if err != nil {
		return nil, err
	}

	return &LedgerStats{
		TotalUsers:        summaryAgg.TotalUsers,
		TotalPoints:       summaryAgg.TotalPoints,
		AveragePoints:     summaryAgg.AveragePoints.Round(2),
		TotalEarned:       agg.TotalEarned,
		TotalSpent:        agg.TotalSpent,
		TotalAdjustments:  agg.TotalAdjustments,
		RecentAdjustments: recent,
		MembersWithPoints: membersWithPoints,
		TopEarner:         topEarner,
		TopSpender:        topSpender,
	}, nil
}

// topSummaryUsername returns the username with the highest value in the
// given summary column, "N/A" when no summaries exist
func (s *pgStore) topSummaryUsername(ctx context.Context, column string) (string, error) {
	var username string
	err := s.db.WithContext(ctx).
		Model(&schema.UserPointsSummary{}).
		Select("users.username").
		Joins("JOIN users ON users.id = user_points_summaries.user_id").
		Order(fmt.Sprintf("user_points_summaries.%s DESC", column)).
		Limit(1).
		Scan(&username).Error
	if err != nil {
		return "", fmt.Errorf("failed to find top %s: %w", column, err)
	}
	if username == "" {
		return "N/A", nil
	}
	return username, nil
}

// CreateEvent creates a raid event template
func (s *pgStore) CreateEvent(ctx context.Context, input CreateEventInput) (*schema.Event, error) {
	event := schema.Event{
		Name:        input.Name,
		Description: input.Description,
		BasePoints:  input.BasePoints,
		OnTimeBonus: input.OnTimeBonus,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

// GetEventByID retrieves an event template by ID
func (s *pgStore) GetEventByID(ctx context.Context, eventID int64) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListEvents lists event templates ordered by name
func (s *pgStore) ListEvents(ctx context.Context, activeOnly bool) ([]*schema.Event, error) {
	query := s.db.WithContext(ctx).Model(&schema.Event{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var events []*schema.Event
	if err := query.Order("name ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// CreateRaid creates a raid instance from an event template, snapshotting the
// event name when the input leaves it blank
func (s *pgStore) CreateRaid(ctx context.Context, input CreateRaidInput) (*schema.Raid, error) {
	var raid schema.Raid

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event schema.Event
		if err := tx.Where("id = ?", input.EventID).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %d", domain.ErrEventNotFound, input.EventID)
			}
			return fmt.Errorf("failed to get event: %w", err)
		}

		name := input.Name
		if name == "" {
			name = event.Name
		}

		raid = schema.Raid{
			EventID:     event.ID,
			Name:        name,
			ScheduledAt: input.ScheduledAt,
			Status:      schema.RaidStatusScheduled,
			Notes:       input.Notes,
			CreatedByID: input.CreatedBy,
		}
		if err := tx.Create(&raid).Error; err != nil {
			return fmt.Errorf("failed to create raid: %w", err)
		}

		raid.Event = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &raid, nil
}

// GetRaidByID retrieves a raid with its event template
func (s *pgStore) GetRaidByID(ctx context.Context, raidID int64) (*schema.Raid, error) {
	var raid schema.Raid
	err := s.db.WithContext(ctx).Preload("Event").Where("id = ?", raidID).First(&raid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get raid: %w", err)
	}
	return &raid, nil
}

// raidStatusTransitions lists the allowed lifecycle moves. Completed and
// cancelled are terminal.
var raidStatusTransitions = map[schema.RaidStatus][]schema.RaidStatus{
	schema.RaidStatusScheduled:  {schema.RaidStatusInProgress, schema.RaidStatusCompleted, schema.RaidStatusCancelled},
	schema.RaidStatusInProgress: {schema.RaidStatusCompleted, schema.RaidStatusCancelled},
}

// UpdateRaidStatus transitions a raid's lifecycle status. Setting the current
// status again is a no-op.
func (s *pgStore) UpdateRaidStatus(ctx context.Context, raidID int64, status schema.RaidStatus) (*schema.Raid, error) {
	var raid schema.Raid

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", raidID).
			First(&raid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRaidNotFound
			}
			return fmt.Errorf("failed to get raid: %w", err)
		}

		if raid.Status == status {
			return nil
		}

		allowed := false
		for _, next := range raidStatusTransitions[raid.Status] {
			if next == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: cannot move raid from %s to %s", domain.ErrInvalidStateTransition, raid.Status, status)
		}

		if err := tx.Model(&raid).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update raid status: %w", err)
		}

		raid.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &raid, nil
}

// RecordRaidAttendance records one member's attendance at a raid; a second
// row for the same (raid, member) pair is rejected
func (s *pgStore) RecordRaidAttendance(ctx context.Context, input RecordAttendanceInput) (*schema.RaidAttendance, error) {
	var attendance schema.RaidAttendance

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var raid schema.Raid
		if err := tx.Where("id = ?", input.RaidID).First(&raid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRaidNotFound
			}
			return fmt.Errorf("failed to get raid: %w", err)
		}

		var count int64
		if err := tx.Model(&schema.User{}).Where("id = ?", input.UserID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if count == 0 {
			return domain.ErrUserNotFound
		}

		if err := tx.Model(&schema.RaidAttendance{}).
			Where("raid_id = ? AND user_id = ?", input.RaidID, input.UserID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check attendance: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: member %d already recorded for raid %d", domain.ErrDuplicateAttendance, input.UserID, input.RaidID)
		}

		attendance = schema.RaidAttendance{
			RaidID:        input.RaidID,
			UserID:        input.UserID,
			CharacterName: input.CharacterName,
			OnTime:        input.OnTime,
			RecordedByID:  input.RecordedBy,
		}
		if err := tx.Create(&attendance).Error; err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &attendance, nil
}

// ListRaidAttendance lists the attendance rows for a raid
func (s *pgStore) ListRaidAttendance(ctx context.Context, raidID int64) ([]*schema.RaidAttendance, error) {
	var attendances []*schema.RaidAttendance
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("raid_id = ?", raidID).
		Order("character_name ASC").
		Find(&attendances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendances, nil
}

// AwardRaidPoints pays out a completed raid exactly once. The raid row lock
// plus the points_awarded flag make a second payout impossible even under
// concurrent calls. Zero-point templates produce no ledger entries.
func (s *pgStore) AwardRaidPoints(ctx context.Context, input AwardRaidPointsInput) (*RaidAwardResult, error) {
	var result RaidAwardResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var raid schema.Raid
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.RaidID).
			First(&raid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRaidNotFound
			}
			return fmt.Errorf("failed to get raid: %w", err)
		}

		if raid.Status != schema.RaidStatusCompleted {
			return fmt.Errorf("%w: raid %d is %s", domain.ErrRaidNotCompleted, raid.ID, raid.Status)
		}
		if raid.PointsAwarded {
			return fmt.Errorf("%w: raid %d", domain.ErrPointsAlreadyAwarded, raid.ID)
		}

		var event schema.Event
		if err := tx.Where("id = ?", raid.EventID).First(&event).Error; err != nil {
			return fmt.Errorf("failed to get event: %w", err)
		}

		var attendances []*schema.RaidAttendance
		if err := tx.Where("raid_id = ?", raid.ID).Find(&attendances).Error; err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}

		total := decimal.Zero
		for _, att := range attendances {
			if event.BasePoints.IsPositive() {
				_, err := createAdjustmentTx(tx, CreateAdjustmentInput{
					UserID:         att.UserID,
					Points:         event.BasePoints,
					AdjustmentType: schema.AdjustmentTypeRaidAttendance,
					Description:    fmt.Sprintf("Raid attendance: %s", raid.Name),
					CharacterName:  att.CharacterName,
					CreatedBy:      input.PerformedBy,
				})
				if err != nil {
					return err
				}
				result.AttendeesPaid++
				total = total.Add(event.BasePoints)
			}

			if att.OnTime && event.OnTimeBonus.IsPositive() {
				_, err := createAdjustmentTx(tx, CreateAdjustmentInput{
					UserID:         att.UserID,
					Points:         event.OnTimeBonus,
					AdjustmentType: schema.AdjustmentTypeRaidBonus,
					Description:    fmt.Sprintf("On-time bonus: %s", raid.Name),
					CharacterName:  att.CharacterName,
					CreatedBy:      input.PerformedBy,
				})
				if err != nil {
					return err
				}
				result.OnTimeBonuses++
				total = total.Add(event.OnTimeBonus)
			}
		}

		if err := tx.Model(&raid).Update("points_awarded", true).Error; err != nil {
			return fmt.Errorf("failed to flag raid as awarded: %w", err)
		}

		raid.PointsAwarded = true
		raid.Event = event
		result.Raid = &raid
		result.PointsPerHead = event.BasePoints
		result.BonusPerHead = event.OnTimeBonus
		result.TotalAwarded = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CountCompletedRaids counts completed raids scheduled in [from, to]; nil
// bounds are open
func (s *pgStore) CountCompletedRaids(ctx context.Context, from, to *time.Time) (int, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Raid{}).
		Where("status = ?", schema.RaidStatusCompleted)
	if from != nil {
		query = query.Where("scheduled_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("scheduled_at <= ?", *to)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count completed raids: %w", err)
	}
	return int(count), nil
}

// CountUserAttendance counts a member's attendance at completed raids
// scheduled in [from, to]
func (s *pgStore) CountUserAttendance(ctx context.Context, userID int64, from, to *time.Time) (int, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.RaidAttendance{}).
		Joins("JOIN raids ON raids.id = raid_attendances.raid_id").
		Where("raid_attendances.user_id = ?", userID).
		Where("raids.status = ?", schema.RaidStatusCompleted)
	if from != nil {
		query = query.Where("raids.scheduled_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("raids.scheduled_at <= ?", *to)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return int(count), nil
}

// GetFirstAttendanceDate returns when the member's first attendance was
// recorded, nil when none exists
func (s *pgStore) GetFirstAttendanceDate(ctx context.Context, userID int64) (*time.Time, error) {
	var first sql.NullTime
	err := s.db.WithContext(ctx).
		Model(&schema.RaidAttendance{}).
		Where("user_id = ?", userID).
		Select("MIN(created_at)").
		Scan(&first).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get first attendance: %w", err)
	}
	if !first.Valid {
		return nil, nil
	}

	t := first.Time
	return &t, nil
}

// GetUserAttendanceHistory returns, for every completed raid newest first,
// whether the member attended
func (s *pgStore) GetUserAttendanceHistory(ctx context.Context, userID int64) ([]AttendanceMark, error) {
	var marks []AttendanceMark
	err := s.db.WithContext(ctx).
		Model(&schema.Raid{}).
		Select("raids.id AS raid_id, raids.scheduled_at AS scheduled_at, raid_attendances.id IS NOT NULL AS attended").
		Joins("LEFT JOIN raid_attendances ON raid_attendances.raid_id = raids.id AND raid_attendances.user_id = ?", userID).
		Where("raids.status = ?", schema.RaidStatusCompleted).
		Order("raids.scheduled_at DESC, raids.id DESC").
		Scan(&marks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}
	return marks, nil
}

// UpsertMemberAttendanceSummary writes a member's daily attendance snapshot,
// replacing any existing row for the same day
func (s *pgStore) UpsertMemberAttendanceSummary(ctx context.Context, summary *schema.MemberAttendanceSummary) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "summary_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attended_7d", "total_7d", "rate_7d",
			"attended_30d", "total_30d", "rate_30d",
			"attended_60d", "total_60d", "rate_60d",
			"attended_90d", "total_90d", "rate_90d",
			"attended_lifetime", "total_lifetime", "rate_lifetime",
			"is_voting_eligible", "current_streak", "longest_streak",
			"updated_at",
		}),
	}).Create(summary).Error
	if err != nil {
		return fmt.Errorf("failed to upsert attendance summary: %w", err)
	}
	return nil
}

// GetLatestMemberAttendanceSummary retrieves a member's most recent
// attendance snapshot. This feeds vote weight and eligibility checks.
func (s *pgStore) GetLatestMemberAttendanceSummary(ctx context.Context, userID int64) (*schema.MemberAttendanceSummary, error) {
	var summary schema.MemberAttendanceSummary
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("summary_date DESC").
		First(&summary).Error
	if err == nil {
		return &summary, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get attendance summary: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("summary_date DESC").
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance summary: %w", err)
	}
	return &summary, nil
}

// ListUserIDsWithAttendance lists the IDs of members that have any recorded
// attendance
func (s *pgStore) ListUserIDsWithAttendance(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&schema.RaidAttendance{}).
		Distinct("user_id").
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users with attendance: %w", err)
	}
	return ids, nil
}

// GetGuildAttendanceStats aggregates each member's latest snapshot across
// the roster
func (s *pgStore) GetGuildAttendanceStats(ctx context.Context) (*GuildAttendanceStats, error) {
	latest := s.db.
		Model(&schema.MemberAttendanceSummary{}).
		Select("DISTINCT ON (user_id) user_id, rate_30d, rate_90d, is_voting_eligible, summary_date").
		Order("user_id, summary_date DESC")

	var agg struct {
		TrackedMembers int64
		EligibleVoters int64
		AverageRate30d decimal.Decimal
		AverageRate90d decimal.Decimal
	}
	err := s.db.WithContext(ctx).
		Table("(?) AS latest", latest).
		Select("COUNT(*) AS tracked_members, COUNT(*) FILTER (WHERE is_voting_eligible) AS eligible_voters, COALESCE(AVG(rate_30d), 0) AS average_rate_30d, COALESCE(AVG(rate_90d), 0) AS average_rate_90d").
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance stats: %w", err)
	}

	var extremes []struct {
		Username string
		Rate30d  decimal.Decimal
	}
	err = s.db.WithContext(ctx).
		Table("(?) AS latest", latest).
		Select("users.username AS username, latest.rate_30d AS rate_30d").
		Joins("JOIN users ON users.id = latest.user_id").
		Order("latest.rate_30d DESC, users.username ASC").
		Scan(&extremes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank attendance rates: %w", err)
	}

	var latestDate sql.NullTime
	err = s.db.WithContext(ctx).
		Model(&schema.MemberAttendanceSummary{}).
		Select("MAX(summary_date)").
		Scan(&latestDate).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot date: %w", err)
	}

	var snapshots int64
	if latestDate.Valid {
		err = s.db.WithContext(ctx).
			Model(&schema.MemberAttendanceSummary{}).
			Where("summary_date = ?", latestDate.Time).
			Count(&snapshots).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count snapshots: %w", err)
		}
	}

	from := time.Now().UTC().AddDate(0, 0, -30)
	completed, err := s.CountCompletedRaids(ctx, &from, nil)
	if err != nil {
		return nil, err
	}

	stats := &GuildAttendanceStats{
		TrackedMembers:  agg.TrackedMembers,
		EligibleVoters:  agg.EligibleVoters,
		AverageRate30d:  agg.AverageRate30d.Round(2),
		AverageRate90d:  agg.AverageRate90d.Round(2),
		CompletedRaids:  completed,
		SnapshotsForDay: snapshots,
	}
	if agg.TrackedMembers > 0 {
		stats.EligiblePercent = decimal.NewFromInt(agg.EligibleVoters).
			Div(decimal.NewFromInt(agg.TrackedMembers)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	if len(extremes) > 0 {
		stats.HighestRate30d = extremes[0].Rate30d
		stats.HighestRateUser = extremes[0].Username
		last := extremes[len(extremes)-1]
		stats.LowestRate30d = last.Rate30d
		stats.LowestRateUser = last.Username
	}

	return stats, nil
}

// CreateApplication files a new recruitment application and enqueues its
// notification
func (s *pgStore) CreateApplication(ctx context.Context, input CreateApplicationInput) (*schema.Application, *domain.NotificationEvent, error) {
	application := schema.Application{
		CharacterName:   input.CharacterName,
		CharacterClass:  input.CharacterClass,
		CharacterLevel:  input.CharacterLevel,
		ApplicantName:   input.ApplicantName,
		Email:           input.Email,
		DiscordUsername: input.DiscordUsername,
		GuildExperience: input.GuildExperience,
		Status:          schema.ApplicationStatusSubmitted,
		SubmittedAt:     time.Now().UTC(),
	}

	var event *domain.NotificationEvent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}

		var eventErr error
		event, eventErr = domain.NewNotificationEvent(domain.NotificationNewApplication, domain.ChannelRecruitment, domain.ApplicationPayload{
			ApplicationID:   application.ID,
			CharacterName:   application.CharacterName,
			CharacterClass:  application.CharacterClass,
			CharacterLevel:  application.CharacterLevel,
			ApplicantName:   application.ApplicantName,
			DiscordUsername: application.DiscordUsername,
			GuildExperience: application.GuildExperience,
			Status:          string(application.Status),
			SubmittedAt:     application.SubmittedAt,
		})
		if eventErr != nil {
			return eventErr
		}
		return insertOutboxTx(tx, event)
	})
	if err != nil {
		return nil, nil, err
	}

	return &application, event, nil
}

// GetApplicationByID retrieves an application by ID
func (s *pgStore) GetApplicationByID(ctx context.Context, applicationID int64) (*schema.Application, error) {
	var application schema.Application
	err := s.db.WithContext(ctx).Where("id = ?", applicationID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &application, nil
}

// ListApplications pages applications, optionally filtered by status, newest
// first, returning the total count
func (s *pgStore) ListApplications(ctx context.Context, status *schema.ApplicationStatus, limit, offset int) ([]*schema.Application, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Application{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	var applications []*schema.Application
	err := query.
		Order("submitted_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&applications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	return applications, total, nil
}

// OfficerApproveApplication moves a submitted application to
// officer_approved
func (s *pgStore) OfficerApproveApplication(ctx context.Context, input OfficerApproveInput) (*schema.Application, error) {
	var application schema.Application

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ApplicationID).
			First(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to get application: %w", err)
		}

		if application.Status != schema.ApplicationStatusSubmitted {
			return fmt.Errorf("%w: cannot officer-approve application in status %s", domain.ErrInvalidStateTransition, application.Status)
		}

		now := time.Now().UTC()
		if err := tx.Model(&application).Updates(map[string]any{
			"status":         schema.ApplicationStatusOfficerApproved,
			"reviewed_at":    now,
			"reviewed_by_id": input.ReviewedBy,
		}).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		application.Status = schema.ApplicationStatusOfficerApproved
		application.ReviewedAt = &now
		application.ReviewedByID = input.ReviewedBy
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &application, nil
}

// OpenVotingPeriod moves an officer-approved application to voting_open,
// stamps the deadline, and enqueues the announcement. Any reminder tier from
// a previous period is cleared.
func (s *pgStore) OpenVotingPeriod(ctx context.Context, input OpenVotingInput) (*schema.Application, error) {
	var application schema.Application

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ApplicationID).
			First(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to get application: %w", err)
		}

		if application.Status != schema.ApplicationStatusOfficerApproved {
			return fmt.Errorf("%w: cannot open voting for application in status %s", domain.ErrInvalidStateTransition, application.Status)
		}

		now := time.Now().UTC()
		if err := tx.Model(&application).Updates(map[string]any{
			"status":             schema.ApplicationStatusVotingOpen,
			"voting_opened_at":   now,
			"voting_deadline":    input.Deadline,
			"last_reminder_tier": nil,
		}).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		application.Status = schema.ApplicationStatusVotingOpen
		application.VotingOpenedAt = &now
		application.VotingDeadline = &input.Deadline
		application.LastReminderTier = nil

		return insertOutboxTx(tx, input.Notification)
	})
	if err != nil {
		return nil, err
	}

	return &application, nil
}

// WithdrawApplication marks a pre-decision application withdrawn
func (s *pgStore) WithdrawApplication(ctx context.Context, applicationID int64) (*schema.Application, error) {
	var application schema.Application

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", applicationID).
			First(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to get application: %w", err)
		}

		switch application.Status {
		case schema.ApplicationStatusSubmitted, schema.ApplicationStatusOfficerApproved, schema.ApplicationStatusVotingOpen:
		default:
			return fmt.Errorf("%w: cannot withdraw application in status %s", domain.ErrInvalidStateTransition, application.Status)
		}

		if err := tx.Model(&application).Update("status", schema.ApplicationStatusWithdrawn).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		application.Status = schema.ApplicationStatusWithdrawn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &application, nil
}

// UpsertApplicationVote records or revises a member's vote. The application
// row lock orders casts against a concurrent close; a vote that arrives
// after closing or past the deadline is rejected.
func (s *pgStore) UpsertApplicationVote(ctx context.Context, input CastVoteInput) (*schema.ApplicationVote, error) {
	if !input.Vote.Valid() {
		return nil, fmt.Errorf("invalid vote choice %q", input.Vote)
	}

	var vote schema.ApplicationVote

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application schema.Application
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ApplicationID).
			First(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to get application: %w", err)
		}

		if application.Status != schema.ApplicationStatusVotingOpen {
			return fmt.Errorf("%w: application %d is %s", domain.ErrVotingClosed, application.ID, application.Status)
		}
		if application.VotingDeadline != nil && time.Now().After(*application.VotingDeadline) {
			return fmt.Errorf("%w: voting deadline has passed", domain.ErrVotingClosed)
		}

		vote = schema.ApplicationVote{
			ApplicationID:     input.ApplicationID,
			VoterID:           input.VoterID,
			Vote:              input.Vote,
			VoteWeight:        input.VoteWeight,
			AttendanceRate30d: input.AttendanceRate30d,
			Comment:           input.Comment,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "application_id"}, {Name: "voter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"vote", "vote_weight", "attendance_rate_30d", "comment", "updated_at",
			}),
		}).Create(&vote).Error
		if err != nil {
			return fmt.Errorf("failed to record vote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &vote, nil
}

// ListApplicationVotes lists the votes cast on an application, oldest first
func (s *pgStore) ListApplicationVotes(ctx context.Context, applicationID int64) ([]*schema.ApplicationVote, error) {
	var votes []*schema.ApplicationVote
	err := s.db.WithContext(ctx).
		Preload("Voter").
		Where("application_id = ?", applicationID).
		Order("created_at ASC, id ASC").
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

// CloseVotingPeriod tallies an application's votes under the row lock,
// applies the decision rule, and records the outcome together with its
// notification. Votes are read inside the transaction, so a cast serialized
// after the lock cannot slip into a closed tally.
func (s *pgStore) CloseVotingPeriod(ctx context.Context, input CloseVotingInput) (*CloseVotingResult, error) {
	var result CloseVotingResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application schema.Application
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ApplicationID).
			First(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to get application: %w", err)
		}

		if application.Status != schema.ApplicationStatusVotingOpen {
			return fmt.Errorf("%w: application %d is %s, not voting_open", domain.ErrInvalidStateTransition, application.ID, application.Status)
		}

		var votes []*schema.ApplicationVote
		if err := tx.Where("application_id = ?", application.ID).Find(&votes).Error; err != nil {
			return fmt.Errorf("failed to list votes: %w", err)
		}

		weighted := make([]domain.WeightedVote, 0, len(votes))
		for _, v := range votes {
			weighted = append(weighted, domain.WeightedVote{Choice: v.Vote, Weight: v.VoteWeight})
		}
		tally := domain.TallyVotes(weighted)
		decision := domain.DecideVoting(tally, input.MinimumVotes, input.ApprovalThreshold)

		newStatus := schema.ApplicationStatusRejected
		if decision.Approved {
			newStatus = schema.ApplicationStatusApproved
		}

		now := time.Now().UTC()
		if err := tx.Model(&application).Updates(map[string]any{
			"status":              newStatus,
			"decision_made_at":    now,
			"decision_made_by_id": input.DecidedBy,
			"decision_reason":     decision.Reason,
		}).Error; err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		application.Status = newStatus
		application.DecisionMadeAt = &now
		application.DecisionMadeByID = input.DecidedBy
		application.DecisionReason = decision.Reason

		event, err := domain.NewNotificationEvent(domain.NotificationVotingClosed, domain.ChannelRecruitment, domain.VotingClosedPayload{
			ApplicationPayload: domain.ApplicationPayload{
				ApplicationID:   application.ID,
				CharacterName:   application.CharacterName,
				CharacterClass:  application.CharacterClass,
				CharacterLevel:  application.CharacterLevel,
				ApplicantName:   application.ApplicantName,
				DiscordUsername: application.DiscordUsername,
				Status:          string(newStatus),
				SubmittedAt:     application.SubmittedAt,
			},
			Approved:           decision.Approved,
			Reason:             decision.Reason,
			TotalVotes:         tally.TotalVotes(),
			YesVotes:           tally.YesCount,
			NoVotes:            tally.NoCount,
			AbstainVotes:       tally.AbstainCount,
			YesWeight:          tally.YesWeight,
			NoWeight:           tally.NoWeight,
			AbstainWeight:      tally.AbstainWeight,
			TotalWeight:        tally.TotalWeight(),
			ApprovalPercentage: decision.ApprovalPercentage,
			MinimumVotes:       input.MinimumVotes,
			ApprovalThreshold:  input.ApprovalThreshold,
		})
		if err != nil {
			return err
		}
		if err := insertOutboxTx(tx, event); err != nil {
			return err
		}

		result.Application = &application
		result.Tally = tally
		result.Decision = decision
		result.Notification = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListExpiredVotingApplications lists voting_open applications whose
// deadline has passed, oldest deadline first
func (s *pgStore) ListExpiredVotingApplications(ctx context.Context, now time.Time) ([]*schema.Application, error) {
	var applications []*schema.Application
	err := s.db.WithContext(ctx).
		Where("status = ? AND voting_deadline <= ?", schema.ApplicationStatusVotingOpen, now).
		Order("voting_deadline ASC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired voting applications: %w", err)
	}
	return applications, nil
}

// ListOpenVotingApplications lists applications currently collecting votes,
// nearest deadline first
func (s *pgStore) ListOpenVotingApplications(ctx context.Context) ([]*schema.Application, error) {
	var applications []*schema.Application
	err := s.db.WithContext(ctx).
		Where("status = ?", schema.ApplicationStatusVotingOpen).
		Order("voting_deadline ASC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open voting applications: %w", err)
	}
	return applications, nil
}

// MarkReminderSent records a deadline-reminder tier and enqueues the
// reminder, unless an equal or smaller tier was already recorded. The
// conditional update makes reminders idempotent across overlapping sweeps.
func (s *pgStore) MarkReminderSent(ctx context.Context, input MarkReminderInput) (bool, error) {
	var sent bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.Application{}).
			Where("id = ? AND status = ?", input.ApplicationID, schema.ApplicationStatusVotingOpen).
			Where("last_reminder_tier IS NULL OR last_reminder_tier > ?", input.Tier).
			Update("last_reminder_tier", input.Tier)
		if res.Error != nil {
			return fmt.Errorf("failed to record reminder tier: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		sent = true
		return insertOutboxTx(tx, input.Notification)
	})
	if err != nil {
		return false, err
	}

	return sent, nil
}

// ListApplicationsReadyForProcessing lists approved applications that have
// not been provisioned yet, oldest decision first
func (s *pgStore) ListApplicationsReadyForProcessing(ctx context.Context, limit int) ([]*schema.Application, error) {
	var applications []*schema.Application
	err := s.db.WithContext(ctx).
		Where("status = ? AND approved_user_id IS NULL", schema.ApplicationStatusApproved).
		Order("decision_made_at ASC, id ASC").
		Limit(limit).
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for processing: %w", err)
	}
	return applications, nil
}

// ProvisionApplication runs the post-approval workflow in one transaction:
// account creation under a collision-resolved username, character creation
// with its ownership record, the starting DKP grant, rank resolution, group
// memberships, and the character_created notification. The DKP grant and
// group joins are best-effort warnings; the account, character, ownership,
// and application-link writes abort the whole transaction on failure.
func (s *pgStore) ProvisionApplication(ctx context.Context, input ProvisionInput) (*ProvisionResult, error) {
	var result ProvisionResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application schema.Application
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ApplicationID).
			First(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to get application: %w", err)
		}

		if application.Status != schema.ApplicationStatusApproved {
			return fmt.Errorf("%w: application status is %s, not approved", domain.ErrInvalidStateTransition, application.Status)
		}
		if application.ApprovedUserID != nil && !input.Force {
			return fmt.Errorf("%w (use force to reprocess)", domain.ErrAlreadyProcessed)
		}

		// Resolve a free username, appending _1, _2, ... on collisions
		base := domain.UsernameForCharacter(application.CharacterName)
		username := base
		for n := 1; ; n++ {
			var count int64
			if err := tx.Model(&schema.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check username: %w", err)
			}
			if count == 0 {
				break
			}
			username = domain.CandidateUsername(base, n)
		}

		user := schema.User{Username: username, IsActive: true}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		characterName := domain.NormalizeCharacterName(application.CharacterName)
		character := schema.Character{
			Name:        characterName,
			Class:       application.CharacterClass,
			Level:       application.CharacterLevel,
			Status:      schema.CharacterStatusActive,
			UserID:      user.ID,
			Description: fmt.Sprintf("Character created from approved application %d", application.ID),
			IsActive:    true,
		}
		if err := tx.Create(&character).Error; err != nil {
			return fmt.Errorf("failed to create character: %w", err)
		}

		ownership := schema.CharacterOwnership{
			CharacterID:     character.ID,
			NewOwnerID:      user.ID,
			Reason:          schema.OwnershipReasonCreated,
			Notes:           fmt.Sprintf("Character created from approved application %d", application.ID),
			TransferredByID: input.PerformedBy,
		}
		if err := tx.Create(&ownership).Error; err != nil {
			return fmt.Errorf("failed to create ownership record: %w", err)
		}

		// The DKP grant and group memberships are best-effort: each runs
		// under a savepoint so a failure rolls back only that step and is
		// reported as a warning instead of aborting the provisioning run.
		dkpInitialized := false
		if input.StartingPoints.IsPositive() {
			err := tx.Transaction(func(ptx *gorm.DB) error {
				_, err := createAdjustmentTx(ptx, CreateAdjustmentInput{
					UserID:         user.ID,
					Points:         input.StartingPoints,
					AdjustmentType: schema.AdjustmentTypeManual,
					Description:    fmt.Sprintf("Initial DKP allocation for new member from application %d", application.ID),
					CharacterName:  characterName,
				})
				return err
			})
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("failed to initialize DKP: %v", err))
			} else {
				dkpInitialized = true
			}
		}

		if input.RankName != "" {
			var rank schema.Rank
			err := tx.Where("name = ?", input.RankName).First(&rank).Error
			switch {
			case err == nil:
				result.RankAssigned = rank.Name
			case errors.Is(err, gorm.ErrRecordNotFound):
				var fallback schema.Rank
				fbErr := tx.Order("level ASC").First(&fallback).Error
				switch {
				case fbErr == nil:
					result.RankAssigned = fallback.Name
					result.Warnings = append(result.Warnings, fmt.Sprintf("rank %q not found, fell back to %q", input.RankName, fallback.Name))
				case errors.Is(fbErr, gorm.ErrRecordNotFound):
					result.Warnings = append(result.Warnings, fmt.Sprintf("rank %q not found and no ranks exist", input.RankName))
				default:
					return fmt.Errorf("failed to get fallback rank: %w", fbErr)
				}
			default:
				return fmt.Errorf("failed to get rank: %w", err)
			}
		}

		for _, groupName := range input.GroupNames {
			var group schema.Group
			err := tx.Where("name = ?", groupName).First(&group).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("group %q not found", groupName))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to get group: %w", err)
			}

			err = tx.Transaction(func(ptx *gorm.DB) error {
				return ptx.Create(&schema.UserGroup{UserID: user.ID, GroupID: group.ID}).Error
			})
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("failed to join group %q: %v", groupName, err))
				continue
			}
			result.GroupsAssigned = append(result.GroupsAssigned, group.Name)
		}

		if err := tx.Model(&application).Update("approved_user_id", user.ID).Error; err != nil {
			return fmt.Errorf("failed to link application to account: %w", err)
		}
		application.ApprovedUserID = &user.ID

		processedBy := input.ProcessedBy
		if processedBy == "" {
			processedBy = "system"
		}
		event, err := domain.NewNotificationEvent(domain.NotificationCharacterCreated, domain.ChannelRecruitment, domain.CharacterPayload{
			CharacterID:    character.ID,
			CharacterName:  character.Name,
			Class:          character.Class,
			Level:          character.Level,
			OwnerID:        user.ID,
			OwnerName:      user.Username,
			ApplicationID:  &application.ID,
			DKPInitialized: dkpInitialized,
			GroupsAssigned: len(result.GroupsAssigned) > 0,
			ProcessedBy:    processedBy,
		})
		if err != nil {
			return err
		}
		if err := insertOutboxTx(tx, event); err != nil {
			return err
		}

		result.Application = &application
		result.User = &user
		result.Character = &character
		result.Username = username
		result.Notification = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateItem creates a loot catalog entry
func (s *pgStore) CreateItem(ctx context.Context, input CreateItemInput) (*schema.Item, error) {
	item := schema.Item{
		Name:          input.Name,
		Description:   input.Description,
		SuggestedCost: input.SuggestedCost,
		IsActive:      true,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// GetItemByID retrieves an item by ID
func (s *pgStore) GetItemByID(ctx context.Context, itemID int64) (*schema.Item, error) {
	var item schema.Item
	err := s.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// ListItems lists catalog items ordered by name
func (s *pgStore) ListItems(ctx context.Context, activeOnly bool) ([]*schema.Item, error) {
	query := s.db.WithContext(ctx).Model(&schema.Item{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var items []*schema.Item
	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// CreateLootDistribution charges the buyer and records the distribution,
// its audit entry, and its notification in one transaction. The ledger
// deduction carries the balance floor, so an unaffordable purchase rolls
// everything back. The returned event still needs a post-commit publish.
func (s *pgStore) CreateLootDistribution(ctx context.Context, input CreateDistributionInput) (*schema.LootDistribution, *domain.NotificationEvent, error) {
	if input.Quantity <= 0 {
		return nil, nil, fmt.Errorf("quantity must be positive, got %d", input.Quantity)
	}
	if input.PointCost.IsNegative() {
		return nil, nil, fmt.Errorf("point cost must not be negative, got %s", input.PointCost)
	}

	var (
		distribution schema.LootDistribution
		event        *domain.NotificationEvent
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item schema.Item
		if err := tx.Where("id = ?", input.ItemID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return fmt.Errorf("failed to get item: %w", err)
		}

		var buyer schema.User
		if err := tx.Where("id = ?", input.UserID).First(&buyer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get buyer: %w", err)
		}

		var raidTitle string
		if input.RaidID != nil {
			var raid schema.Raid
			if err := tx.Where("id = ?", *input.RaidID).First(&raid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrRaidNotFound
				}
				return fmt.Errorf("failed to get raid: %w", err)
			}
			raidTitle = raid.Name
		}

		totalCost := input.PointCost.Mul(decimal.NewFromInt(int64(input.Quantity)))
		if totalCost.IsPositive() {
			_, err := createAdjustmentTx(tx, CreateAdjustmentInput{
				UserID:         input.UserID,
				Points:         totalCost.Neg(),
				AdjustmentType: schema.AdjustmentTypeItemPurchase,
				Description:    fmt.Sprintf("Loot: %s (x%d)", item.Name, input.Quantity),
				CharacterName:  input.CharacterName,
				CreatedBy:      input.DistributedBy,
			})
			if err != nil {
				return err
			}
		}

		distribution = schema.LootDistribution{
			ItemID:          item.ID,
			UserID:          input.UserID,
			CharacterName:   input.CharacterName,
			PointCost:       input.PointCost,
			Quantity:        input.Quantity,
			RaidID:          input.RaidID,
			DistributedByID: input.DistributedBy,
		}
		if err := tx.Create(&distribution).Error; err != nil {
			return fmt.Errorf("failed to create distribution: %w", err)
		}

		audit := &schema.LootAuditLog{
			ActionType:     schema.AuditActionDistribution,
			PerformedByID:  input.DistributedBy,
			AffectedUserID: &input.UserID,
			Description:    fmt.Sprintf("Distributed %s (x%d) to %s for %s DKP", item.Name, input.Quantity, input.CharacterName, totalCost),
			NewValues: auditJSON(map[string]any{
				"distribution_id": distribution.ID,
				"item_id":         item.ID,
				"user_id":         input.UserID,
				"character_name":  input.CharacterName,
				"point_cost":      input.PointCost,
				"quantity":        input.Quantity,
				"total_cost":      totalCost,
			}),
			DiscordContext: auditJSON(input.DiscordContext),
		}
		if err := insertAuditTx(tx, audit); err != nil {
			return err
		}

		// Re-read inside the transaction so the payload carries the
		// post-deduction balance
		remaining := decimal.Zero
		var summary schema.UserPointsSummary
		if err := tx.Where("user_id = ?", input.UserID).First(&summary).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to read points summary: %w", err)
			}
		} else {
			remaining = summary.TotalPoints
		}

		var distributedBy string
		if input.DistributedBy != nil {
			var performer schema.User
			if err := tx.Where("id = ?", *input.DistributedBy).First(&performer).Error; err == nil {
				distributedBy = performer.Username
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to get distributor: %w", err)
			}
		}

		var eventErr error
		event, eventErr = domain.NewNotificationEvent(domain.NotificationLootAwarded, domain.ChannelLoot, domain.LootAwardedPayload{
			DistributionID: distribution.ID,
			ItemName:       item.Name,
			Quantity:       input.Quantity,
			PointCost:      input.PointCost,
			TotalCost:      totalCost,
			UserID:         buyer.ID,
			Username:       buyer.Username,
			CharacterName:  input.CharacterName,
			RaidTitle:      raidTitle,
			DistributedBy:  distributedBy,
			RemainingDKP:   remaining,
		})
		if eventErr != nil {
			return eventErr
		}

		distribution.Item = item
		return insertOutboxTx(tx, event)
	})
	if err != nil {
		return nil, nil, err
	}

	return &distribution, event, nil
}

// GetLootDistributionByID retrieves a distribution with its item and buyer
func (s *pgStore) GetLootDistributionByID(ctx context.Context, distributionID int64) (*schema.LootDistribution, error) {
	var distribution schema.LootDistribution
	err := s.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Where("id = ?", distributionID).
		First(&distribution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	return &distribution, nil
}

// ListLootDistributions pages distributions, newest first, returning the
// total count
func (s *pgStore) ListLootDistributions(ctx context.Context, filter DistributionFilter, limit, offset int) ([]*schema.LootDistribution, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.LootDistribution{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ItemID != nil {
		query = query.Where("item_id = ?", *filter.ItemID)
	}
	if filter.RaidID != nil {
		query = query.Where("raid_id = ?", *filter.RaidID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count distributions: %w", err)
	}

	var distributions []*schema.LootDistribution
	err := query.
		Preload("Item").
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&distributions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list distributions: %w", err)
	}

	return distributions, total, nil
}

// DeleteLootDistribution removes a distribution and writes the offsetting
// refund adjustment in one transaction
func (s *pgStore) DeleteLootDistribution(ctx context.Context, input DeleteDistributionInput) (*schema.LootDistribution, error) {
	var distribution schema.LootDistribution

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.DistributionID).
			First(&distribution).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDistributionNotFound
			}
			return fmt.Errorf("failed to get distribution: %w", err)
		}

		var item schema.Item
		if err := tx.Where("id = ?", distribution.ItemID).First(&item).Error; err != nil {
			return fmt.Errorf("failed to get item: %w", err)
		}

		if err := tx.Delete(&schema.LootDistribution{}, distribution.ID).Error; err != nil {
			return fmt.Errorf("failed to delete distribution: %w", err)
		}

		refund := distribution.PointCost.Mul(decimal.NewFromInt(int64(distribution.Quantity)))
		if refund.IsPositive() {
			_, err := createAdjustmentTx(tx, CreateAdjustmentInput{
				UserID:         distribution.UserID,
				Points:         refund,
				AdjustmentType: schema.AdjustmentTypeManual,
				Description:    fmt.Sprintf("Refund for deleted distribution: %s (x%d)", item.Name, distribution.Quantity),
				CharacterName:  distribution.CharacterName,
			})
			if err != nil {
				return err
			}
		}

		description := fmt.Sprintf("Deleted distribution %d (%s x%d)", distribution.ID, item.Name, distribution.Quantity)
		if input.Reason != "" {
			description = fmt.Sprintf("%s: %s", description, input.Reason)
		}
		audit := &schema.LootAuditLog{
			ActionType:     schema.AuditActionDeletion,
			PerformedByID:  input.PerformedBy,
			AffectedUserID: &distribution.UserID,
			Description:    description,
			OldValues: auditJSON(map[string]any{
				"distribution_id": distribution.ID,
				"item_id":         item.ID,
				"user_id":         distribution.UserID,
				"character_name":  distribution.CharacterName,
				"point_cost":      distribution.PointCost,
				"quantity":        distribution.Quantity,
			}),
		}
		if err := insertAuditTx(tx, audit); err != nil {
			return err
		}

		distribution.Item = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &distribution, nil
}

// EnqueueNotification inserts a standalone outbox row outside any domain
// transaction. Sweeper-generated events (reminders aside) use this path.
func (s *pgStore) EnqueueNotification(ctx context.Context, event *domain.NotificationEvent) error {
	if event == nil {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(outboxRowFromEvent(event)).Error; err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

// GetOutboxRowByEventID retrieves an outbox row by its event ID
func (s *pgStore) GetOutboxRowByEventID(ctx context.Context, eventID string) (*schema.NotificationOutbox, error) {
	var row schema.NotificationOutbox
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outbox row: %w", err)
	}
	return &row, nil
}

// ClaimOutboxRow atomically moves a pending row, or a delivering row whose
// claim went stale, to delivering and counts the attempt. A nil row means
// another dispatcher holds the claim or the row is already finished;
// at-least-once delivery comes from the live consumer and the sweeper both
// calling this for the same event, with only one winning.
func (s *pgStore) ClaimOutboxRow(ctx context.Context, eventID string, now time.Time, staleAfter time.Duration) (*schema.NotificationOutbox, error) {
	staleBefore := now.Add(-staleAfter)

	res := s.db.WithContext(ctx).
		Model(&schema.NotificationOutbox{}).
		Where("event_id = ?", eventID).
		Where(
			s.db.Where("status = ? AND (next_attempt_at IS NULL OR next_attempt_at <= ?)", schema.OutboxStatusPending, now).
				Or("status = ? AND last_attempt_at <= ?", schema.OutboxStatusDelivering, staleBefore),
		).
		Updates(map[string]any{
			"status":          schema.OutboxStatusDelivering,
			"attempts":        gorm.Expr("attempts + 1"),
			"last_attempt_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to claim outbox row: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	query := s.db.WithContext(ctx)
	if hasDBResolver(s.db) {
		query = query.Clauses(dbresolver.Write)
	}

	var row schema.NotificationOutbox
	if err := query.Where("event_id = ?", eventID).First(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to get claimed outbox row: %w", err)
	}
	return &row, nil
}

// MarkOutboxDelivered finalizes a delivered row
func (s *pgStore) MarkOutboxDelivered(ctx context.Context, eventID string, responseStatus int, now time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.NotificationOutbox{}).
		Where("event_id = ?", eventID).
		Updates(map[string]any{
			"status":          schema.OutboxStatusSucceeded,
			"response_status": responseStatus,
			"error_message":   "",
			"next_attempt_at": nil,
			"last_attempt_at": now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark outbox row delivered: %w", err)
	}
	return nil
}

// MarkOutboxFailed records a failed attempt: with a next attempt time the
// row goes back to pending for the sweeper, without one it is finalized as
// failed
func (s *pgStore) MarkOutboxFailed(ctx context.Context, input MarkOutboxFailedInput) error {
	updates := map[string]any{
		"error_message":   input.ErrorMessage,
		"response_status": input.ResponseStatus,
		"last_attempt_at": input.Now,
	}
	if input.NextAttemptAt != nil {
		updates["status"] = schema.OutboxStatusPending
		updates["next_attempt_at"] = *input.NextAttemptAt
	} else {
		updates["status"] = schema.OutboxStatusFailed
		updates["next_attempt_at"] = nil
	}

	err := s.db.WithContext(ctx).
		Model(&schema.NotificationOutbox{}).
		Where("event_id = ?", input.EventID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to mark outbox row failed: %w", err)
	}
	return nil
}

// ListDispatchableOutboxRows lists retry-due pending rows and stale
// delivering rows for the sweeper, oldest first
func (s *pgStore) ListDispatchableOutboxRows(ctx context.Context, now time.Time, staleAfter time.Duration, limit int) ([]*schema.NotificationOutbox, error) {
	staleBefore := now.Add(-staleAfter)

	var rows []*schema.NotificationOutbox
	err := s.db.WithContext(ctx).
		Where("status = ? AND (next_attempt_at IS NULL OR next_attempt_at <= ?)", schema.OutboxStatusPending, now).
		Or("status = ? AND last_attempt_at <= ?", schema.OutboxStatusDelivering, staleBefore).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatchable outbox rows: %w", err)
	}
	return rows, nil
}

// GetDailySummaryCounts aggregates one UTC day of recruitment and roster
// activity
func (s *pgStore) GetDailySummaryCounts(ctx context.Context, day time.Time) (*DailySummaryCounts, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var counts DailySummaryCounts

	err := s.db.WithContext(ctx).
		Model(&schema.Application{}).
		Where("submitted_at >= ? AND submitted_at < ?", start, end).
		Count(&counts.NewApplications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count new applications: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.Application{}).
		Where("voting_opened_at >= ? AND voting_opened_at < ?", start, end).
		Count(&counts.VotingOpened).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count opened voting periods: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.Application{}).
		Where("decision_made_at >= ? AND decision_made_at < ?", start, end).
		Count(&counts.VotingClosed).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count closed voting periods: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.Application{}).
		Where("status = ? AND decision_made_at >= ? AND decision_made_at < ?", schema.ApplicationStatusApproved, start, end).
		Count(&counts.Approved).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count approvals: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.Application{}).
		Where("status = ? AND decision_made_at >= ? AND decision_made_at < ?", schema.ApplicationStatusRejected, start, end).
		Count(&counts.Rejected).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count rejections: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.CharacterOwnership{}).
		Where("reason = ? AND transfer_date >= ? AND transfer_date < ?", schema.OwnershipReasonCreated, start, end).
		Count(&counts.CharactersCreated).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count created characters: %w", err)
	}

	return &counts, nil
}
