package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// =============================================================================
// Helpers and Test Data Builders
// =============================================================================

// dec parses a decimal literal, panicking on malformed test input
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecimal compares by numeric value; numeric columns come back from
// Postgres with a different scale than Go literals, so String() never matches
func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}

// createTestUser creates a member account
func createTestUser(t *testing.T, store Store, username string) *schema.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), username)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// grantPoints writes a positive manual ledger entry for a member
func grantPoints(t *testing.T, store Store, userID int64, amount string) {
	t.Helper()
	_, err := store.CreateAdjustment(context.Background(), CreateAdjustmentInput{
		UserID:         userID,
		Points:         dec(amount),
		AdjustmentType: schema.AdjustmentTypeManual,
		Description:    "test grant",
	})
	require.NoError(t, err)
}

// createTestCharacter creates an active main character for a member
func createTestCharacter(t *testing.T, store Store, userID int64, name string) *schema.Character {
	t.Helper()
	character, _, err := store.CreateCharacter(context.Background(), CreateCharacterInput{
		Name:   name,
		Class:  "Warrior",
		Level:  60,
		UserID: userID,
	})
	require.NoError(t, err)
	require.NotNil(t, character)
	return character
}

// createTestEvent creates a raid event template
func createTestEvent(t *testing.T, store Store, name, basePoints, onTimeBonus string) *schema.Event {
	t.Helper()
	event, err := store.CreateEvent(context.Background(), CreateEventInput{
		Name:        name,
		BasePoints:  dec(basePoints),
		OnTimeBonus: dec(onTimeBonus),
	})
	require.NoError(t, err)
	return event
}

// createTestRaid schedules a raid instance
func createTestRaid(t *testing.T, store Store, eventID int64, name string, scheduledAt time.Time) *schema.Raid {
	t.Helper()
	raid, err := store.CreateRaid(context.Background(), CreateRaidInput{
		EventID:     eventID,
		Name:        name,
		ScheduledAt: scheduledAt,
	})
	require.NoError(t, err)
	return raid
}

// completedRaid schedules a raid and drives it to completed
func completedRaid(t *testing.T, store Store, eventID int64, name string, scheduledAt time.Time) *schema.Raid {
	t.Helper()
	raid := createTestRaid(t, store, eventID, name, scheduledAt)
	raid, err := store.UpdateRaidStatus(context.Background(), raid.ID, schema.RaidStatusCompleted)
	require.NoError(t, err)
	return raid
}

// createTestApplication files a recruitment application
func createTestApplication(t *testing.T, store Store, characterName string) *schema.Application {
	t.Helper()
	application, _, err := store.CreateApplication(context.Background(), CreateApplicationInput{
		CharacterName:   characterName,
		CharacterClass:  "Cleric",
		CharacterLevel:  58,
		ApplicantName:   "Test Applicant",
		Email:           "applicant@example.com",
		DiscordUsername: "applicant#0001",
		GuildExperience: "Cleared Temple of Veeshan with a previous guild",
	})
	require.NoError(t, err)
	require.NotNil(t, application)
	return application
}

// openVoting drives an application through officer review into voting_open
func openVoting(t *testing.T, store Store, applicationID int64, deadline time.Time) *schema.Application {
	t.Helper()
	ctx := context.Background()
	_, err := store.OfficerApproveApplication(ctx, OfficerApproveInput{ApplicationID: applicationID})
	require.NoError(t, err)
	application, err := store.OpenVotingPeriod(ctx, OpenVotingInput{ApplicationID: applicationID, Deadline: deadline})
	require.NoError(t, err)
	return application
}

// approveApplication drives an application all the way to approved. Closing
// with a zero vote floor against a zero threshold approves without any votes.
func approveApplication(t *testing.T, store Store, applicationID int64) *schema.Application {
	t.Helper()
	openVoting(t, store, applicationID, time.Now().UTC().Add(time.Hour))
	result, err := store.CloseVotingPeriod(context.Background(), CloseVotingInput{
		ApplicationID:     applicationID,
		MinimumVotes:      0,
		ApprovalThreshold: decimal.Zero,
	})
	require.NoError(t, err)
	require.True(t, result.Decision.Approved)
	return result.Application
}

// createTestItem creates a loot catalog entry
func createTestItem(t *testing.T, store Store, name, suggestedCost string) *schema.Item {
	t.Helper()
	item, err := store.CreateItem(context.Background(), CreateItemInput{
		Name:          name,
		SuggestedCost: dec(suggestedCost),
	})
	require.NoError(t, err)
	return item
}

// buildOutboxEvent builds a daily-summary notification for outbox tests
func buildOutboxEvent(t *testing.T) *domain.NotificationEvent {
	t.Helper()
	event, err := domain.NewNotificationEvent(domain.NotificationDailySummary, domain.ChannelGeneral, domain.DailySummaryPayload{
		Date:            "2026-08-25",
		NewApplications: 2,
		VotingOpened:    1,
	})
	require.NoError(t, err)
	return event
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")

	t.Run("create sets defaults", func(t *testing.T) {
		assert.Greater(t, alice.ID, int64(0))
		assert.Equal(t, "alice", alice.Username)
		assert.True(t, alice.IsActive)
		assert.Nil(t, alice.DiscordID)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := store.CreateUser(ctx, "alice")
		require.ErrorIs(t, err, domain.ErrUsernameTaken)
		assert.ErrorContains(t, err, "alice")
	})

	t.Run("get by ID and username", func(t *testing.T) {
		byID, err := store.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "alice", byID.Username)

		byName, err := store.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, alice.ID, byName.ID)
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		user, err := store.GetUserByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, user)

		user, err = store.GetUserByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("get several by IDs", func(t *testing.T) {
		bob := createTestUser(t, store, "bob")

		users, err := store.GetUsersByIDs(ctx, []int64{alice.ID, bob.ID, 99999})
		require.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = store.GetUsersByIDs(ctx, []int64{})
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

// =============================================================================
// Test: Discord account linking
// =============================================================================

func testDiscordLinking(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	discordID := "123456789012345678"

	t.Run("link writes the ID and the notification", func(t *testing.T) {
		event, err := domain.NewNotificationEvent(domain.NotificationDiscordLinked, domain.ChannelOfficers, domain.DiscordLinkPayload{
			UserID:    alice.ID,
			Username:  alice.Username,
			DiscordID: discordID,
		})
		require.NoError(t, err)

		linked, err := store.LinkDiscordAccount(ctx, LinkDiscordInput{
			UserID:       alice.ID,
			DiscordID:    discordID,
			Notification: event,
		})
		require.NoError(t, err)
		require.NotNil(t, linked.DiscordID)
		assert.Equal(t, discordID, *linked.DiscordID)

		byDiscord, err := store.GetUserByDiscordID(ctx, discordID)
		require.NoError(t, err)
		require.NotNil(t, byDiscord)
		assert.Equal(t, alice.ID, byDiscord.ID)

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, schema.OutboxStatusPending, row.Status)
		assert.Equal(t, "discord_linked", row.EventType)
		assert.Equal(t, "officers", row.Channel)
		assert.Equal(t, 0, row.Attempts)
	})

	t.Run("a linked member cannot link again", func(t *testing.T) {
		_, err := store.LinkDiscordAccount(ctx, LinkDiscordInput{UserID: alice.ID, DiscordID: "999999999999999999"})
		require.ErrorIs(t, err, domain.ErrDiscordAlreadyLinked)
		assert.ErrorContains(t, err, "already has a linked account")
	})

	t.Run("a taken discord ID cannot be linked to another member", func(t *testing.T) {
		_, err := store.LinkDiscordAccount(ctx, LinkDiscordInput{UserID: bob.ID, DiscordID: discordID})
		require.ErrorIs(t, err, domain.ErrDiscordAlreadyLinked)
		assert.ErrorContains(t, err, "belongs to another member")
	})

	t.Run("link for a missing user", func(t *testing.T) {
		_, err := store.LinkDiscordAccount(ctx, LinkDiscordInput{UserID: 99999, DiscordID: "111111111111111111"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unlink clears the ID", func(t *testing.T) {
		unlinked, err := store.UnlinkDiscordAccount(ctx, UnlinkDiscordInput{UserID: alice.ID})
		require.NoError(t, err)
		assert.Nil(t, unlinked.DiscordID)

		byDiscord, err := store.GetUserByDiscordID(ctx, discordID)
		require.NoError(t, err)
		assert.Nil(t, byDiscord)
	})

	t.Run("unlink without a link is a no-op", func(t *testing.T) {
		user, err := store.UnlinkDiscordAccount(ctx, UnlinkDiscordInput{UserID: bob.ID})
		require.NoError(t, err)
		assert.Equal(t, bob.ID, user.ID)
	})

	t.Run("unlink for a missing user", func(t *testing.T) {
		_, err := store.UnlinkDiscordAccount(ctx, UnlinkDiscordInput{UserID: 99999})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

// =============================================================================
// Test: Member status changes
// =============================================================================

func testMemberStatus(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	main := createTestCharacter(t, store, alice.ID, "Balin")
	_, _, err := store.CreateCharacter(ctx, CreateCharacterInput{
		Name:            "Dwalin",
		Class:           "Rogue",
		Level:           55,
		UserID:          alice.ID,
		MainCharacterID: &main.ID,
	})
	require.NoError(t, err)

	t.Run("deactivation cascades to characters", func(t *testing.T) {
		result, err := store.UpdateMemberStatus(ctx, UpdateMemberStatusInput{
			UserID:            alice.ID,
			IsActive:          false,
			CascadeCharacters: true,
			Reason:            "extended break",
		})
		require.NoError(t, err)
		assert.False(t, result.User.IsActive)
		assert.Equal(t, int64(2), result.CharactersUpdated)

		character, err := store.GetCharacterByName(ctx, "Balin")
		require.NoError(t, err)
		assert.False(t, character.IsActive)

		require.NotNil(t, result.Notification)
		assert.Equal(t, domain.NotificationMemberStatus, result.Notification.EventType)
		assert.Equal(t, domain.ChannelOfficers, result.Notification.Channel)

		row, err := store.GetOutboxRowByEventID(ctx, result.Notification.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)

		var payload domain.MemberStatusPayload
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		assert.Equal(t, alice.ID, payload.UserID)
		assert.False(t, payload.IsActive)
		assert.Equal(t, "extended break", payload.Reason)
		assert.Equal(t, int64(2), payload.CharactersUpdated)
	})

	t.Run("reactivation without cascade leaves characters alone", func(t *testing.T) {
		result, err := store.UpdateMemberStatus(ctx, UpdateMemberStatusInput{
			UserID:   alice.ID,
			IsActive: true,
		})
		require.NoError(t, err)
		assert.True(t, result.User.IsActive)
		assert.Equal(t, int64(0), result.CharactersUpdated)

		character, err := store.GetCharacterByName(ctx, "Balin")
		require.NoError(t, err)
		assert.False(t, character.IsActive)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := store.UpdateMemberStatus(ctx, UpdateMemberStatusInput{UserID: 99999, IsActive: false})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

// =============================================================================
// Test: Ranks
// =============================================================================

func testRanks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("seeded ranks come back ordered by level", func(t *testing.T) {
		ranks, err := store.ListRanks(ctx)
		require.NoError(t, err)
		require.Len(t, ranks, 5)
		assert.Equal(t, "Guild Leader", ranks[0].Name)
		assert.Equal(t, "Trial Member", ranks[4].Name)
		for i := 1; i < len(ranks); i++ {
			assert.Greater(t, ranks[i].Level, ranks[i-1].Level)
		}
	})

	t.Run("get by name", func(t *testing.T) {
		rank, err := store.GetRankByName(ctx, "Officer")
		require.NoError(t, err)
		require.NotNil(t, rank)
		assert.Equal(t, 2, rank.Level)

		rank, err = store.GetRankByName(ctx, "Archmage")
		require.NoError(t, err)
		assert.Nil(t, rank)
	})

	t.Run("fallback rank is the lowest level", func(t *testing.T) {
		rank, err := store.GetFallbackRank(ctx)
		require.NoError(t, err)
		require.NotNil(t, rank)
		assert.Equal(t, "Guild Leader", rank.Name)
		assert.Equal(t, 1, rank.Level)
	})
}

// =============================================================================
// Test: Characters
// =============================================================================

func testCharacters(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")

	var main *schema.Character

	t.Run("create main with ownership record and announcement", func(t *testing.T) {
		character, event, err := store.CreateCharacter(ctx, CreateCharacterInput{
			Name:           "Thorin",
			Class:          "Warrior",
			Level:          60,
			UserID:         alice.ID,
			OwnershipNotes: "Fresh recruit",
		})
		require.NoError(t, err)
		main = character

		assert.Equal(t, schema.CharacterStatusActive, character.Status)
		assert.True(t, character.IsActive)
		assert.Nil(t, character.MainCharacterID)

		history, err := store.ListCharacterOwnership(ctx, character.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Nil(t, history[0].PreviousOwnerID)
		assert.Equal(t, alice.ID, history[0].NewOwnerID)
		assert.Equal(t, schema.OwnershipReasonCreated, history[0].Reason)
		assert.Equal(t, "Fresh recruit", history[0].Notes)

		require.NotNil(t, event)
		assert.Equal(t, domain.NotificationCharacterCreated, event.EventType)
		assert.Equal(t, domain.ChannelGeneral, event.Channel)

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)
	})

	t.Run("alt gets alt status", func(t *testing.T) {
		alt, _, err := store.CreateCharacter(ctx, CreateCharacterInput{
			Name:            "Thorinbank",
			Class:           "Magician",
			Level:           20,
			UserID:          alice.ID,
			MainCharacterID: &main.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, schema.CharacterStatusAlt, alt.Status)

		_, _, err = store.CreateCharacter(ctx, CreateCharacterInput{
			Name:            "Thorinmule",
			Class:           "Wizard",
			Level:           10,
			UserID:          alice.ID,
			MainCharacterID: &alt.ID,
		})
		assert.ErrorIs(t, err, domain.ErrAltOfAlt)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, _, err := store.CreateCharacter(ctx, CreateCharacterInput{
			Name:   "Thorin",
			Class:  "Cleric",
			Level:  1,
			UserID: alice.ID,
		})
		require.ErrorIs(t, err, domain.ErrCharacterNameTaken)
	})

	t.Run("owner and main must exist", func(t *testing.T) {
		_, _, err := store.CreateCharacter(ctx, CreateCharacterInput{Name: "Orphan", Class: "Druid", Level: 1, UserID: 99999})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		missingMain := int64(99999)
		_, _, err = store.CreateCharacter(ctx, CreateCharacterInput{
			Name:            "Lostalt",
			Class:           "Druid",
			Level:           1,
			UserID:          alice.ID,
			MainCharacterID: &missingMain,
		})
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("get by ID and name with owner", func(t *testing.T) {
		character, err := store.GetCharacterByID(ctx, main.ID)
		require.NoError(t, err)
		require.NotNil(t, character)
		assert.Equal(t, "alice", character.User.Username)

		character, err = store.GetCharacterByName(ctx, "Thorin")
		require.NoError(t, err)
		require.NotNil(t, character)
		assert.Equal(t, main.ID, character.ID)

		character, err = store.GetCharacterByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, character)
	})

	t.Run("list by user", func(t *testing.T) {
		characters, err := store.ListCharactersByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, characters, 2)
		assert.Equal(t, "Thorin", characters[0].Name)
		assert.Equal(t, "Thorinbank", characters[1].Name)
	})

	t.Run("family resolves from main or alt", func(t *testing.T) {
		alt, err := store.GetCharacterByName(ctx, "Thorinbank")
		require.NoError(t, err)

		family, err := store.GetCharacterFamily(ctx, alt.ID)
		require.NoError(t, err)
		require.Len(t, family, 2)
		assert.Equal(t, "Thorin", family[0].Name)
		assert.Equal(t, "Thorinbank", family[1].Name)

		fromMain, err := store.GetCharacterFamily(ctx, main.ID)
		require.NoError(t, err)
		assert.Len(t, fromMain, 2)

		missing, err := store.GetCharacterFamily(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: Character ownership transfers
// =============================================================================

func testCharacterTransfers(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	character := createTestCharacter(t, store, alice.ID, "Gimli")

	t.Run("transfer repoints the character and appends history", func(t *testing.T) {
		event, err := domain.NewNotificationEvent(domain.NotificationCharacterTransfer, domain.ChannelGeneral, domain.CharacterTransferPayload{
			CharacterPayload: domain.CharacterPayload{CharacterID: character.ID, CharacterName: character.Name},
			Reason:           string(schema.OwnershipReasonManual),
		})
		require.NoError(t, err)

		ownership, err := store.RecordCharacterTransfer(ctx, TransferCharacterInput{
			CharacterID:  character.ID,
			NewOwnerID:   bob.ID,
			Reason:       schema.OwnershipReasonManual,
			Notes:        "account handoff",
			Notification: event,
		})
		require.NoError(t, err)
		require.NotNil(t, ownership.PreviousOwnerID)
		assert.Equal(t, alice.ID, *ownership.PreviousOwnerID)
		assert.Equal(t, bob.ID, ownership.NewOwnerID)
		assert.Equal(t, schema.OwnershipReasonManual, ownership.Reason)

		updated, err := store.GetCharacterByID(ctx, character.ID)
		require.NoError(t, err)
		assert.Equal(t, bob.ID, updated.UserID)

		history, err := store.ListCharacterOwnership(ctx, character.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, schema.OwnershipReasonManual, history[0].Reason)
		assert.Equal(t, schema.OwnershipReasonCreated, history[1].Reason)
		require.NotNil(t, history[0].PreviousOwner)
		assert.Equal(t, "alice", history[0].PreviousOwner.Username)
		assert.Equal(t, "bob", history[0].NewOwner.Username)

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)
	})

	t.Run("transfer to the current owner is rejected", func(t *testing.T) {
		_, err := store.RecordCharacterTransfer(ctx, TransferCharacterInput{
			CharacterID: character.ID,
			NewOwnerID:  bob.ID,
			Reason:      schema.OwnershipReasonManual,
		})
		assert.ErrorIs(t, err, domain.ErrSameOwner)
	})

	t.Run("missing character or owner", func(t *testing.T) {
		_, err := store.RecordCharacterTransfer(ctx, TransferCharacterInput{
			CharacterID: 99999,
			NewOwnerID:  alice.ID,
			Reason:      schema.OwnershipReasonManual,
		})
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

		_, err = store.RecordCharacterTransfer(ctx, TransferCharacterInput{
			CharacterID: character.ID,
			NewOwnerID:  99999,
			Reason:      schema.OwnershipReasonManual,
		})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorContains(t, err, "new owner")
	})
}

// =============================================================================
// Test: Point adjustments
// =============================================================================

func testAdjustments(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	officer := createTestUser(t, store, "officer")

	t.Run("positive entry grows the balance", func(t *testing.T) {
		adjustment, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("100"),
			AdjustmentType: schema.AdjustmentTypeManual,
			Description:    "Starting balance",
			CreatedBy:      &officer.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, alice.ID, adjustment.UserID)
		assertDecimal(t, "100", adjustment.Points)
		assert.False(t, adjustment.IsLocked)
		require.NotNil(t, adjustment.CreatedByID)
		assert.Equal(t, officer.ID, *adjustment.CreatedByID)

		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assertDecimal(t, "100", summary.TotalPoints)
		assertDecimal(t, "100", summary.EarnedPoints)
		assertDecimal(t, "0", summary.SpentPoints)
	})

	t.Run("negative entry grows spent", func(t *testing.T) {
		_, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("-25"),
			AdjustmentType: schema.AdjustmentTypeItemPurchase,
			Description:    "Loot: test item",
		})
		require.NoError(t, err)

		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "75", summary.TotalPoints)
		assertDecimal(t, "100", summary.EarnedPoints)
		assertDecimal(t, "25", summary.SpentPoints)
	})

	t.Run("sign constraints per type", func(t *testing.T) {
		_, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("5"),
			AdjustmentType: schema.AdjustmentTypeItemPurchase,
			Description:    "bad purchase",
		})
		require.ErrorIs(t, err, domain.ErrInvalidAdjustmentSign)
		assert.ErrorContains(t, err, "entries must be negative")

		_, err = store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("-5"),
			AdjustmentType: schema.AdjustmentTypeRaidAttendance,
			Description:    "bad attendance",
		})
		require.ErrorIs(t, err, domain.ErrInvalidAdjustmentSign)
		assert.ErrorContains(t, err, "must not be negative")
	})

	t.Run("balance cannot go negative", func(t *testing.T) {
		_, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("-200"),
			AdjustmentType: schema.AdjustmentTypeManual,
			Description:    "overdraw",
		})
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.ErrorContains(t, err, "balance 75")

		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "75", summary.TotalPoints)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         99999,
			Points:         dec("10"),
			AdjustmentType: schema.AdjustmentTypeManual,
			Description:    "ghost",
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("listing pages newest first", func(t *testing.T) {
		_, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("10"),
			AdjustmentType: schema.AdjustmentTypeBonus,
			Description:    "quest bonus",
		})
		require.NoError(t, err)

		entries, total, err := store.ListAdjustmentsByUser(ctx, alice.ID, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, entries, 2)
		assertDecimal(t, "10", entries[0].Points)
		assertDecimal(t, "-25", entries[1].Points)

		entries, total, err = store.ListAdjustmentsByUser(ctx, alice.ID, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, entries, 1)
		assertDecimal(t, "100", entries[0].Points)
		require.NotNil(t, entries[0].CreatedBy)
		assert.Equal(t, "officer", entries[0].CreatedBy.Username)
	})

	t.Run("get by ID", func(t *testing.T) {
		entries, _, err := store.ListAdjustmentsByUser(ctx, alice.ID, 1, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		adjustment, err := store.GetAdjustmentByID(ctx, entries[0].ID)
		require.NoError(t, err)
		require.NotNil(t, adjustment)
		assert.Equal(t, entries[0].ID, adjustment.ID)

		adjustment, err = store.GetAdjustmentByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, adjustment)
	})
}

// =============================================================================
// Test: Points summaries
// =============================================================================

func testPointsSummaries(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")

	t.Run("summary is nil before any activity", func(t *testing.T) {
		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, summary)
	})

	t.Run("get-or-create is idempotent", func(t *testing.T) {
		first, err := store.GetOrCreateUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, alice.ID, first.UserID)
		assertDecimal(t, "0", first.TotalPoints)

		second, err := store.GetOrCreateUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("recalculation matches incremental maintenance", func(t *testing.T) {
		grantPoints(t, store, alice.ID, "50")
		_, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("-20"),
			AdjustmentType: schema.AdjustmentTypeItemPurchase,
			Description:    "Loot: test item",
		})
		require.NoError(t, err)

		recalced, err := store.RecalculateUserSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "30", recalced.TotalPoints)
		assertDecimal(t, "50", recalced.EarnedPoints)
		assertDecimal(t, "20", recalced.SpentPoints)

		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "30", summary.TotalPoints)
	})

	t.Run("users with ledger entries", func(t *testing.T) {
		ids, err := store.ListUserIDsWithAdjustments(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{alice.ID}, ids)
		assert.NotContains(t, ids, bob.ID)
	})
}

// =============================================================================
// Test: Point transfers
// =============================================================================

func testPointTransfers(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	grantPoints(t, store, alice.ID, "100")

	t.Run("paired debit and credit", func(t *testing.T) {
		result, err := store.CreateTransferAdjustments(ctx, TransferPointsInput{
			FromUserID: alice.ID,
			ToUserID:   bob.ID,
			Amount:     dec("40"),
			Reason:     "Raid payout split",
		})
		require.NoError(t, err)

		assertDecimal(t, "-40", result.Debit.Points)
		assert.Equal(t, schema.AdjustmentTypeTransfer, result.Debit.AdjustmentType)
		assert.Equal(t, "Transfer to bob: Raid payout split", result.Debit.Description)

		assertDecimal(t, "40", result.Credit.Points)
		assert.Equal(t, "Transfer from alice: Raid payout split", result.Credit.Description)

		fromSummary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "60", fromSummary.TotalPoints)

		toSummary, err := store.GetUserPointsSummary(ctx, bob.ID)
		require.NoError(t, err)
		assertDecimal(t, "40", toSummary.TotalPoints)
		assertDecimal(t, "40", toSummary.EarnedPoints)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := store.CreateTransferAdjustments(ctx, TransferPointsInput{
			FromUserID: alice.ID,
			ToUserID:   bob.ID,
			Amount:     decimal.Zero,
			Reason:     "nothing",
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "transfer amount must be positive")
	})

	t.Run("sender cannot overdraw", func(t *testing.T) {
		_, err := store.CreateTransferAdjustments(ctx, TransferPointsInput{
			FromUserID: alice.ID,
			ToUserID:   bob.ID,
			Amount:     dec("1000"),
			Reason:     "too much",
		})
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		// Neither leg may survive a failed transfer
		summary, err := store.GetUserPointsSummary(ctx, bob.ID)
		require.NoError(t, err)
		assertDecimal(t, "40", summary.TotalPoints)
	})

	t.Run("both parties must exist", func(t *testing.T) {
		_, err := store.CreateTransferAdjustments(ctx, TransferPointsInput{
			FromUserID: 99999,
			ToUserID:   bob.ID,
			Amount:     dec("5"),
			Reason:     "ghost",
		})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorContains(t, err, "sender")

		_, err = store.CreateTransferAdjustments(ctx, TransferPointsInput{
			FromUserID: alice.ID,
			ToUserID:   99999,
			Amount:     dec("5"),
			Reason:     "ghost",
		})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorContains(t, err, "recipient")
	})
}

// =============================================================================
// Test: Adjustment deletion
// =============================================================================

func testDeleteAdjustment(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	grantPoints(t, store, alice.ID, "100")

	spend, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
		UserID:         alice.ID,
		Points:         dec("-30"),
		AdjustmentType: schema.AdjustmentTypeManual,
		Description:    "correction",
	})
	require.NoError(t, err)

	t.Run("deletion recalculates the summary", func(t *testing.T) {
		deleted, err := store.DeleteAdjustment(ctx, DeleteAdjustmentInput{AdjustmentID: spend.ID})
		require.NoError(t, err)
		assertDecimal(t, "-30", deleted.Points)

		gone, err := store.GetAdjustmentByID(ctx, spend.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "100", summary.TotalPoints)
		assertDecimal(t, "100", summary.EarnedPoints)
		assertDecimal(t, "0", summary.SpentPoints)
	})

	t.Run("deleting twice", func(t *testing.T) {
		_, err := store.DeleteAdjustment(ctx, DeleteAdjustmentInput{AdjustmentID: spend.ID})
		assert.ErrorIs(t, err, domain.ErrAdjustmentNotFound)
	})

	t.Run("locked entries cannot be deleted", func(t *testing.T) {
		locked, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         alice.ID,
			Points:         dec("10"),
			AdjustmentType: schema.AdjustmentTypeManual,
			Description:    "sealed entry",
			IsLocked:       true,
		})
		require.NoError(t, err)

		_, err = store.DeleteAdjustment(ctx, DeleteAdjustmentInput{AdjustmentID: locked.ID})
		require.ErrorIs(t, err, domain.ErrAdjustmentLocked)

		still, err := store.GetAdjustmentByID(ctx, locked.ID)
		require.NoError(t, err)
		assert.NotNil(t, still)
	})
}

// =============================================================================
// Test: Leaderboard and ledger stats
// =============================================================================

func testLeaderboardAndStats(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("empty economy", func(t *testing.T) {
		entries, err := store.GetLeaderboard(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)

		stats, err := store.GetLedgerStats(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalUsers)
		assertDecimal(t, "0", stats.TotalPoints)
		assertDecimal(t, "0", stats.AveragePoints)
		assert.Equal(t, "N/A", stats.TopEarner)
		assert.Equal(t, "N/A", stats.TopSpender)
	})

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	carol := createTestUser(t, store, "carol")
	dave := createTestUser(t, store, "dave")
	eve := createTestUser(t, store, "eve")

	grantPoints(t, store, alice.ID, "100")
	grantPoints(t, store, bob.ID, "60")
	grantPoints(t, store, carol.ID, "30")
	grantPoints(t, store, dave.ID, "30")
	grantPoints(t, store, eve.ID, "20")

	spend := func(userID int64, amount string) {
		_, err := store.CreateAdjustment(ctx, CreateAdjustmentInput{
			UserID:         userID,
			Points:         dec(amount),
			AdjustmentType: schema.AdjustmentTypeItemPurchase,
			Description:    "Loot: test item",
		})
		require.NoError(t, err)
	}
	spend(bob.ID, "-10")
	spend(eve.ID, "-20")

	t.Run("leaderboard orders by total with username tie-break", func(t *testing.T) {
		entries, err := store.GetLeaderboard(ctx, 3)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "alice", entries[0].Username)
		assertDecimal(t, "100", entries[0].TotalPoints)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "bob", entries[1].Username)
		assertDecimal(t, "50", entries[1].TotalPoints)
		assert.Equal(t, "carol", entries[2].Username)
		assert.Equal(t, 3, entries[2].Rank)
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		entries, err := store.GetLeaderboard(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 5)
		assert.Equal(t, "carol", entries[2].Username)
		assert.Equal(t, "dave", entries[3].Username)
		assert.Equal(t, "eve", entries[4].Username)
	})

	t.Run("ledger stats aggregate the whole economy", func(t *testing.T) {
		stats, err := store.GetLedgerStats(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.TotalUsers)
		assertDecimal(t, "210", stats.TotalPoints)
		assertDecimal(t, "42", stats.AveragePoints)
		assertDecimal(t, "240", stats.TotalEarned)
		assertDecimal(t, "30", stats.TotalSpent)
		assert.Equal(t, int64(7), stats.TotalAdjustments)
		assert.Equal(t, int64(7), stats.RecentAdjustments)
		assert.Equal(t, int64(4), stats.MembersWithPoints)
		assert.Equal(t, "alice", stats.TopEarner)
		assert.Equal(t, "eve", stats.TopSpender)
	})

	t.Run("recent window excludes older entries", func(t *testing.T) {
		stats, err := store.GetLedgerStats(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.RecentAdjustments)
		assert.Equal(t, int64(7), stats.TotalAdjustments)
	})
}

// =============================================================================
// Test: Events and raids
// =============================================================================

func testEventsAndRaids(t *testing.T, store Store) {
	ctx := context.Background()

	event := createTestEvent(t, store, "Temple of Veeshan", "10", "2")

	t.Run("event template defaults", func(t *testing.T) {
		assert.True(t, event.IsActive)
		assertDecimal(t, "10", event.BasePoints)
		assertDecimal(t, "2", event.OnTimeBonus)

		fetched, err := store.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "Temple of Veeshan", fetched.Name)

		missing, err := store.GetEventByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("events list ordered by name", func(t *testing.T) {
		createTestEvent(t, store, "Plane of Fear", "5", "1")

		events, err := store.ListEvents(ctx, true)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Plane of Fear", events[0].Name)
		assert.Equal(t, "Temple of Veeshan", events[1].Name)
	})

	t.Run("blank raid name snapshots the event name", func(t *testing.T) {
		raid, err := store.CreateRaid(ctx, CreateRaidInput{
			EventID:     event.ID,
			ScheduledAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Equal(t, "Temple of Veeshan", raid.Name)
		assert.Equal(t, schema.RaidStatusScheduled, raid.Status)
		assert.False(t, raid.PointsAwarded)
	})

	t.Run("custom raid name is kept", func(t *testing.T) {
		raid := createTestRaid(t, store, event.ID, "ToV Thursday clear", time.Now().UTC())
		assert.Equal(t, "ToV Thursday clear", raid.Name)

		fetched, err := store.GetRaidByID(ctx, raid.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "Temple of Veeshan", fetched.Event.Name)

		missing, err := store.GetRaidByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("raid needs an existing event", func(t *testing.T) {
		_, err := store.CreateRaid(ctx, CreateRaidInput{EventID: 99999, ScheduledAt: time.Now().UTC()})
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("lifecycle transitions", func(t *testing.T) {
		raid := createTestRaid(t, store, event.ID, "Lifecycle raid", time.Now().UTC())

		raid, err := store.UpdateRaidStatus(ctx, raid.ID, schema.RaidStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, schema.RaidStatusInProgress, raid.Status)

		raid, err = store.UpdateRaidStatus(ctx, raid.ID, schema.RaidStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, schema.RaidStatusCompleted, raid.Status)

		// Setting the current status again is a no-op
		raid, err = store.UpdateRaidStatus(ctx, raid.ID, schema.RaidStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, schema.RaidStatusCompleted, raid.Status)

		_, err = store.UpdateRaidStatus(ctx, raid.ID, schema.RaidStatusScheduled)
		require.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.ErrorContains(t, err, "cannot move raid from completed to scheduled")
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		raid := createTestRaid(t, store, event.ID, "Called off", time.Now().UTC())

		raid, err := store.UpdateRaidStatus(ctx, raid.ID, schema.RaidStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, schema.RaidStatusCancelled, raid.Status)

		_, err = store.UpdateRaidStatus(ctx, raid.ID, schema.RaidStatusInProgress)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})

	t.Run("missing raid", func(t *testing.T) {
		_, err := store.UpdateRaidStatus(ctx, 99999, schema.RaidStatusCompleted)
		assert.ErrorIs(t, err, domain.ErrRaidNotFound)
	})
}

// =============================================================================
// Test: Raid attendance
// =============================================================================

func testRaidAttendance(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	officer := createTestUser(t, store, "officer")
	event := createTestEvent(t, store, "Plane of Sky", "10", "2")
	raid := completedRaid(t, store, event.ID, "Sky clear", time.Now().UTC())

	t.Run("record attendance", func(t *testing.T) {
		attendance, err := store.RecordRaidAttendance(ctx, RecordAttendanceInput{
			RaidID:        raid.ID,
			UserID:        alice.ID,
			CharacterName: "Arwen",
			OnTime:        true,
			RecordedBy:    &officer.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Arwen", attendance.CharacterName)
		assert.True(t, attendance.OnTime)
		require.NotNil(t, attendance.RecordedByID)
		assert.Equal(t, officer.ID, *attendance.RecordedByID)

		_, err = store.RecordRaidAttendance(ctx, RecordAttendanceInput{
			RaidID:        raid.ID,
			UserID:        bob.ID,
			CharacterName: "Boromir",
			OnTime:        false,
		})
		require.NoError(t, err)
	})

	t.Run("double-recording a member is rejected", func(t *testing.T) {
		_, err := store.RecordRaidAttendance(ctx, RecordAttendanceInput{
			RaidID:        raid.ID,
			UserID:        alice.ID,
			CharacterName: "Arwenalt",
		})
		require.ErrorIs(t, err, domain.ErrDuplicateAttendance)
		assert.ErrorContains(t, err, "already recorded")
	})

	t.Run("raid and member must exist", func(t *testing.T) {
		_, err := store.RecordRaidAttendance(ctx, RecordAttendanceInput{RaidID: 99999, UserID: alice.ID, CharacterName: "Ghost"})
		assert.ErrorIs(t, err, domain.ErrRaidNotFound)

		_, err = store.RecordRaidAttendance(ctx, RecordAttendanceInput{RaidID: raid.ID, UserID: 99999, CharacterName: "Ghost"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("listing orders by character name with members loaded", func(t *testing.T) {
		attendances, err := store.ListRaidAttendance(ctx, raid.ID)
		require.NoError(t, err)
		require.Len(t, attendances, 2)
		assert.Equal(t, "Arwen", attendances[0].CharacterName)
		assert.Equal(t, "alice", attendances[0].User.Username)
		assert.Equal(t, "Boromir", attendances[1].CharacterName)
		assert.Equal(t, "bob", attendances[1].User.Username)
	})
}

// =============================================================================
// Test: Raid payout
// =============================================================================

func testAwardRaidPoints(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	carol := createTestUser(t, store, "carol")
	event := createTestEvent(t, store, "Temple of Veeshan", "10", "2")
	raid := completedRaid(t, store, event.ID, "ToV full clear", time.Now().UTC())

	record := func(userID int64, character string, onTime bool) {
		_, err := store.RecordRaidAttendance(ctx, RecordAttendanceInput{
			RaidID:        raid.ID,
			UserID:        userID,
			CharacterName: character,
			OnTime:        onTime,
		})
		require.NoError(t, err)
	}
	record(alice.ID, "Arwen", true)
	record(bob.ID, "Boromir", false)
	record(carol.ID, "Celeborn", true)

	t.Run("payout pays base to all and bonus to the punctual", func(t *testing.T) {
		result, err := store.AwardRaidPoints(ctx, AwardRaidPointsInput{RaidID: raid.ID})
		require.NoError(t, err)
		assert.Equal(t, 3, result.AttendeesPaid)
		assert.Equal(t, 2, result.OnTimeBonuses)
		assertDecimal(t, "10", result.PointsPerHead)
		assertDecimal(t, "2", result.BonusPerHead)
		assertDecimal(t, "34", result.TotalAwarded)
		assert.True(t, result.Raid.PointsAwarded)

		aliceSummary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "12", aliceSummary.TotalPoints)

		bobSummary, err := store.GetUserPointsSummary(ctx, bob.ID)
		require.NoError(t, err)
		assertDecimal(t, "10", bobSummary.TotalPoints)

		entries, total, err := store.ListAdjustmentsByUser(ctx, alice.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, schema.AdjustmentTypeRaidBonus, entries[0].AdjustmentType)
		assert.Equal(t, "On-time bonus: ToV full clear", entries[0].Description)
		assert.Equal(t, schema.AdjustmentTypeRaidAttendance, entries[1].AdjustmentType)
		assert.Equal(t, "Raid attendance: ToV full clear", entries[1].Description)
		assert.Equal(t, "Arwen", entries[1].CharacterName)
	})

	t.Run("a raid pays out exactly once", func(t *testing.T) {
		_, err := store.AwardRaidPoints(ctx, AwardRaidPointsInput{RaidID: raid.ID})
		assert.ErrorIs(t, err, domain.ErrPointsAlreadyAwarded)
	})

	t.Run("only completed raids pay", func(t *testing.T) {
		scheduled := createTestRaid(t, store, event.ID, "Future raid", time.Now().UTC().Add(24*time.Hour))
		_, err := store.AwardRaidPoints(ctx, AwardRaidPointsInput{RaidID: scheduled.ID})
		require.ErrorIs(t, err, domain.ErrRaidNotCompleted)
		assert.ErrorContains(t, err, "is scheduled")
	})

	t.Run("zero-point template produces no ledger entries", func(t *testing.T) {
		dave := createTestUser(t, store, "dave")
		freeEvent := createTestEvent(t, store, "Casual farm night", "0", "0")
		freeRaid := completedRaid(t, store, freeEvent.ID, "Farm run", time.Now().UTC())
		_, err := store.RecordRaidAttendance(ctx, RecordAttendanceInput{RaidID: freeRaid.ID, UserID: dave.ID, CharacterName: "Denethor"})
		require.NoError(t, err)

		result, err := store.AwardRaidPoints(ctx, AwardRaidPointsInput{RaidID: freeRaid.ID})
		require.NoError(t, err)
		assert.Equal(t, 0, result.AttendeesPaid)
		assertDecimal(t, "0", result.TotalAwarded)
		assert.True(t, result.Raid.PointsAwarded)

		_, total, err := store.ListAdjustmentsByUser(ctx, dave.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("missing raid", func(t *testing.T) {
		_, err := store.AwardRaidPoints(ctx, AwardRaidPointsInput{RaidID: 99999})
		assert.ErrorIs(t, err, domain.ErrRaidNotFound)
	})
}

// =============================================================================
// Test: Attendance queries
// =============================================================================

func testAttendanceQueries(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	carol := createTestUser(t, store, "carol")
	event := createTestEvent(t, store, "Plane of Fear", "5", "1")

	base := time.Now().UTC()
	r1 := completedRaid(t, store, event.ID, "Fear pull one", base.AddDate(0, 0, -10))
	r2 := completedRaid(t, store, event.ID, "Fear pull two", base.AddDate(0, 0, -5))
	r3 := completedRaid(t, store, event.ID, "Fear pull three", base.AddDate(0, 0, -1))
	r4 := createTestRaid(t, store, event.ID, "Fear pull four", base.AddDate(0, 0, -2))
	r5 := createTestRaid(t, store, event.ID, "Fear pull five", base.AddDate(0, 0, -3))
	_, err := store.UpdateRaidStatus(ctx, r5.ID, schema.RaidStatusCancelled)
	require.NoError(t, err)

	record := func(raidID, userID int64, character string) {
		_, err := store.RecordRaidAttendance(ctx, RecordAttendanceInput{RaidID: raidID, UserID: userID, CharacterName: character})
		require.NoError(t, err)
	}
	record(r1.ID, alice.ID, "Arwen")
	record(r3.ID, alice.ID, "Arwen")
	record(r4.ID, alice.ID, "Arwen")
	record(r2.ID, bob.ID, "Boromir")

	t.Run("completed raid counts honor the window", func(t *testing.T) {
		count, err := store.CountCompletedRaids(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		from := base.AddDate(0, 0, -7)
		count, err = store.CountCompletedRaids(ctx, &from, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		to := base.AddDate(0, 0, -2)
		count, err = store.CountCompletedRaids(ctx, nil, &to)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		count, err = store.CountCompletedRaids(ctx, &from, &to)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("member counts ignore incomplete raids", func(t *testing.T) {
		count, err := store.CountUserAttendance(ctx, alice.ID, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		from := base.AddDate(0, 0, -2)
		count, err = store.CountUserAttendance(ctx, alice.ID, &from, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("first attendance date", func(t *testing.T) {
		first, err := store.GetFirstAttendanceDate(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.WithinDuration(t, time.Now().UTC(), *first, 5*time.Second)

		none, err := store.GetFirstAttendanceDate(ctx, carol.ID)
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("history marks every completed raid newest first", func(t *testing.T) {
		marks, err := store.GetUserAttendanceHistory(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, marks, 3)
		assert.Equal(t, r3.ID, marks[0].RaidID)
		assert.True(t, marks[0].Attended)
		assert.Equal(t, r2.ID, marks[1].RaidID)
		assert.False(t, marks[1].Attended)
		assert.Equal(t, r1.ID, marks[2].RaidID)
		assert.True(t, marks[2].Attended)
		assert.WithinDuration(t, r3.ScheduledAt, marks[0].ScheduledAt, time.Second)
	})

	t.Run("members with any attendance", func(t *testing.T) {
		ids, err := store.ListUserIDsWithAttendance(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{alice.ID, bob.ID}, ids)
	})
}

// =============================================================================
// Test: Attendance snapshots
// =============================================================================

func testAttendanceSummaries(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("upsert writes the snapshot", func(t *testing.T) {
		err := store.UpsertMemberAttendanceSummary(ctx, &schema.MemberAttendanceSummary{
			UserID:           alice.ID,
			SummaryDate:      day1,
			Attended30d:      4,
			Total30d:         5,
			Rate30d:          dec("80"),
			Rate90d:          dec("70"),
			IsVotingEligible: true,
			CurrentStreak:    3,
			LongestStreak:    6,
		})
		require.NoError(t, err)

		latest, err := store.GetLatestMemberAttendanceSummary(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "2026-03-01", latest.SummaryDate.Format("2006-01-02"))
		assertDecimal(t, "80", latest.Rate30d)
		assert.True(t, latest.IsVotingEligible)
		assert.Equal(t, 3, latest.CurrentStreak)
	})

	t.Run("same-day upsert replaces the row", func(t *testing.T) {
		err := store.UpsertMemberAttendanceSummary(ctx, &schema.MemberAttendanceSummary{
			UserID:           alice.ID,
			SummaryDate:      day1,
			Attended30d:      5,
			Total30d:         5,
			Rate30d:          dec("100"),
			IsVotingEligible: true,
		})
		require.NoError(t, err)

		latest, err := store.GetLatestMemberAttendanceSummary(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", latest.SummaryDate.Format("2006-01-02"))
		assertDecimal(t, "100", latest.Rate30d)
		assert.Equal(t, 5, latest.Attended30d)
	})

	t.Run("latest snapshot wins", func(t *testing.T) {
		err := store.UpsertMemberAttendanceSummary(ctx, &schema.MemberAttendanceSummary{
			UserID:      alice.ID,
			SummaryDate: day2,
			Rate30d:     dec("60"),
		})
		require.NoError(t, err)

		latest, err := store.GetLatestMemberAttendanceSummary(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", latest.SummaryDate.Format("2006-01-02"))
		assertDecimal(t, "60", latest.Rate30d)
	})

	t.Run("no snapshots returns nil", func(t *testing.T) {
		latest, err := store.GetLatestMemberAttendanceSummary(ctx, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

// =============================================================================
// Test: Guild attendance stats
// =============================================================================

func testGuildAttendanceStats(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("empty roster", func(t *testing.T) {
		stats, err := store.GetGuildAttendanceStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TrackedMembers)
		assert.Equal(t, int64(0), stats.EligibleVoters)
		assert.Equal(t, int64(0), stats.SnapshotsForDay)
		assert.Empty(t, stats.HighestRateUser)
	})

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	upsert := func(userID int64, day time.Time, rate30, rate90 string, eligible bool) {
		err := store.UpsertMemberAttendanceSummary(ctx, &schema.MemberAttendanceSummary{
			UserID:           userID,
			SummaryDate:      day,
			Rate30d:          dec(rate30),
			Rate90d:          dec(rate90),
			IsVotingEligible: eligible,
		})
		require.NoError(t, err)
	}
	// The stale day1 row must not leak into the aggregates
	upsert(alice.ID, day1, "95", "95", true)
	upsert(alice.ID, day2, "80", "70", true)
	upsert(bob.ID, day2, "20", "30", false)

	event := createTestEvent(t, store, "Stats raid night", "0", "0")
	completedRaid(t, store, event.ID, "Recent clear", time.Now().UTC().AddDate(0, 0, -1))
	completedRaid(t, store, event.ID, "Ancient clear", time.Now().UTC().AddDate(0, 0, -40))

	t.Run("aggregates use each member's latest snapshot", func(t *testing.T) {
		stats, err := store.GetGuildAttendanceStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TrackedMembers)
		assert.Equal(t, int64(1), stats.EligibleVoters)
		assertDecimal(t, "50", stats.EligiblePercent)
		assertDecimal(t, "50", stats.AverageRate30d)
		assertDecimal(t, "50", stats.AverageRate90d)
		assert.Equal(t, "alice", stats.HighestRateUser)
		assertDecimal(t, "80", stats.HighestRate30d)
		assert.Equal(t, "bob", stats.LowestRateUser)
		assertDecimal(t, "20", stats.LowestRate30d)
		assert.Equal(t, int64(2), stats.SnapshotsForDay)
		assert.Equal(t, 1, stats.CompletedRaids)
	})
}

// =============================================================================
// Test: Applications
// =============================================================================

func testApplications(t *testing.T, store Store) {
	ctx := context.Background()

	officer := createTestUser(t, store, "officer")

	var first *schema.Application

	t.Run("filing announces the application", func(t *testing.T) {
		application, event, err := store.CreateApplication(ctx, CreateApplicationInput{
			CharacterName:   "Frodo",
			CharacterClass:  "Ranger",
			CharacterLevel:  52,
			ApplicantName:   "Frodo Player",
			Email:           "frodo@example.com",
			DiscordUsername: "frodo#1111",
			GuildExperience: "Two years in a mid-tier raiding guild",
		})
		require.NoError(t, err)
		first = application

		assert.Equal(t, schema.ApplicationStatusSubmitted, application.Status)
		assert.WithinDuration(t, time.Now().UTC(), application.SubmittedAt, 5*time.Second)
		assert.Nil(t, application.ReviewedAt)

		require.NotNil(t, event)
		assert.Equal(t, domain.NotificationNewApplication, event.EventType)
		assert.Equal(t, domain.ChannelRecruitment, event.Channel)

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)

		var payload domain.ApplicationPayload
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		assert.Equal(t, application.ID, payload.ApplicationID)
		assert.Equal(t, "Frodo", payload.CharacterName)
		assert.Equal(t, "submitted", payload.Status)
	})

	t.Run("get by ID", func(t *testing.T) {
		application, err := store.GetApplicationByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, application)
		assert.Equal(t, "Frodo Player", application.ApplicantName)

		missing, err := store.GetApplicationByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("officer review stamps the application", func(t *testing.T) {
		application, err := store.OfficerApproveApplication(ctx, OfficerApproveInput{
			ApplicationID: first.ID,
			ReviewedBy:    &officer.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, schema.ApplicationStatusOfficerApproved, application.Status)
		require.NotNil(t, application.ReviewedAt)
		require.NotNil(t, application.ReviewedByID)
		assert.Equal(t, officer.ID, *application.ReviewedByID)

		_, err = store.OfficerApproveApplication(ctx, OfficerApproveInput{ApplicationID: first.ID})
		require.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.ErrorContains(t, err, "officer_approved")
	})

	t.Run("voting opens only after officer review", func(t *testing.T) {
		other := createTestApplication(t, store, "Samwise")
		_, err := store.OpenVotingPeriod(ctx, OpenVotingInput{ApplicationID: other.ID, Deadline: time.Now().UTC().Add(72 * time.Hour)})
		require.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.ErrorContains(t, err, "status submitted")

		deadline := time.Now().UTC().Add(72 * time.Hour)
		event, err := domain.NewNotificationEvent(domain.NotificationVotingOpened, domain.ChannelRecruitment, domain.VotingOpenedPayload{
			ApplicationPayload: domain.ApplicationPayload{ApplicationID: first.ID, CharacterName: "Frodo"},
			VotingDeadline:     deadline,
		})
		require.NoError(t, err)

		application, err := store.OpenVotingPeriod(ctx, OpenVotingInput{
			ApplicationID: first.ID,
			Deadline:      deadline,
			Notification:  event,
		})
		require.NoError(t, err)
		assert.Equal(t, schema.ApplicationStatusVotingOpen, application.Status)
		require.NotNil(t, application.VotingOpenedAt)
		require.NotNil(t, application.VotingDeadline)
		assert.WithinDuration(t, deadline, *application.VotingDeadline, time.Second)
		assert.Nil(t, application.LastReminderTier)

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "voting_opened", row.EventType)
	})

	t.Run("listing filters by status newest first", func(t *testing.T) {
		createTestApplication(t, store, "Meriadoc")

		all, total, err := store.ListApplications(ctx, nil, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, all, 3)
		assert.Equal(t, "Meriadoc", all[0].CharacterName)
		assert.Equal(t, "Frodo", all[2].CharacterName)

		submitted := schema.ApplicationStatusSubmitted
		filtered, total, err := store.ListApplications(ctx, &submitted, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, filtered, 2)

		approved := schema.ApplicationStatusApproved
		_, total, err = store.ListApplications(ctx, &approved, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)

		paged, total, err := store.ListApplications(ctx, nil, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, paged, 1)
		assert.Equal(t, "Frodo", paged[0].CharacterName)
	})

	t.Run("withdrawal before a decision", func(t *testing.T) {
		application, err := store.GetApplicationByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, schema.ApplicationStatusVotingOpen, application.Status)

		withdrawn, err := store.WithdrawApplication(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.ApplicationStatusWithdrawn, withdrawn.Status)

		_, err = store.WithdrawApplication(ctx, first.ID)
		require.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.ErrorContains(t, err, "withdrawn")
	})

	t.Run("expired and open voting listings", func(t *testing.T) {
		now := time.Now().UTC()
		expired := createTestApplication(t, store, "Peregrin")
		openVoting(t, store, expired.ID, now.Add(-time.Hour))
		active := createTestApplication(t, store, "Fredegar")
		openVoting(t, store, active.ID, now.Add(time.Hour))

		expiredList, err := store.ListExpiredVotingApplications(ctx, now)
		require.NoError(t, err)
		require.Len(t, expiredList, 1)
		assert.Equal(t, expired.ID, expiredList[0].ID)

		openList, err := store.ListOpenVotingApplications(ctx)
		require.NoError(t, err)
		require.Len(t, openList, 2)
		assert.Equal(t, expired.ID, openList[0].ID)
		assert.Equal(t, active.ID, openList[1].ID)
	})
}

// =============================================================================
// Test: Application votes
// =============================================================================

func testApplicationVotes(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	application := createTestApplication(t, store, "Frodo")
	openVoting(t, store, application.ID, time.Now().UTC().Add(72*time.Hour))

	t.Run("cast records the snapshot weight", func(t *testing.T) {
		vote, err := store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID:     application.ID,
			VoterID:           alice.ID,
			Vote:              domain.VoteChoiceYes,
			VoteWeight:        dec("2.0"),
			AttendanceRate30d: dec("80"),
			Comment:           "solid player",
		})
		require.NoError(t, err)
		assert.Greater(t, vote.ID, int64(0))
		assert.Equal(t, domain.VoteChoiceYes, vote.Vote)
		assertDecimal(t, "2.0", vote.VoteWeight)
		assertDecimal(t, "80", vote.AttendanceRate30d)
	})

	t.Run("recasting revises in place", func(t *testing.T) {
		_, err := store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID:     application.ID,
			VoterID:           alice.ID,
			Vote:              domain.VoteChoiceNo,
			VoteWeight:        dec("1.5"),
			AttendanceRate30d: dec("60"),
		})
		require.NoError(t, err)

		votes, err := store.ListApplicationVotes(ctx, application.ID)
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.Equal(t, domain.VoteChoiceNo, votes[0].Vote)
		assertDecimal(t, "1.5", votes[0].VoteWeight)
	})

	t.Run("votes list oldest first with voters loaded", func(t *testing.T) {
		_, err := store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID: application.ID,
			VoterID:       bob.ID,
			Vote:          domain.VoteChoiceYes,
			VoteWeight:    dec("1.0"),
		})
		require.NoError(t, err)

		votes, err := store.ListApplicationVotes(ctx, application.ID)
		require.NoError(t, err)
		require.Len(t, votes, 2)
		assert.Equal(t, "alice", votes[0].Voter.Username)
		assert.Equal(t, "bob", votes[1].Voter.Username)
	})

	t.Run("unknown choice is rejected", func(t *testing.T) {
		_, err := store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID: application.ID,
			VoterID:       alice.ID,
			Vote:          domain.VoteChoice("maybe"),
			VoteWeight:    dec("1.0"),
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, `invalid vote choice "maybe"`)
	})

	t.Run("voting requires an open period", func(t *testing.T) {
		_, err := store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID: 99999,
			VoterID:       alice.ID,
			Vote:          domain.VoteChoiceYes,
			VoteWeight:    dec("1.0"),
		})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)

		submitted := createTestApplication(t, store, "Samwise")
		_, err = store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID: submitted.ID,
			VoterID:       alice.ID,
			Vote:          domain.VoteChoiceYes,
			VoteWeight:    dec("1.0"),
		})
		require.ErrorIs(t, err, domain.ErrVotingClosed)
		assert.ErrorContains(t, err, "is submitted")
	})

	t.Run("votes after the deadline are rejected", func(t *testing.T) {
		expired := createTestApplication(t, store, "Meriadoc")
		openVoting(t, store, expired.ID, time.Now().UTC().Add(-time.Minute))

		_, err := store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID: expired.ID,
			VoterID:       alice.ID,
			Vote:          domain.VoteChoiceYes,
			VoteWeight:    dec("1.0"),
		})
		require.ErrorIs(t, err, domain.ErrVotingClosed)
		assert.ErrorContains(t, err, "voting deadline has passed")
	})
}

// =============================================================================
// Test: Closing voting periods
// =============================================================================

func testCloseVoting(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	carol := createTestUser(t, store, "carol")
	officer := createTestUser(t, store, "officer")

	cast := func(applicationID, voterID int64, choice domain.VoteChoice, weight string) {
		_, err := store.UpsertApplicationVote(ctx, CastVoteInput{
			ApplicationID: applicationID,
			VoterID:       voterID,
			Vote:          choice,
			VoteWeight:    dec(weight),
		})
		require.NoError(t, err)
	}

	t.Run("weighted approval above the threshold", func(t *testing.T) {
		application := createTestApplication(t, store, "Frodo")
		openVoting(t, store, application.ID, time.Now().UTC().Add(time.Hour))
		cast(application.ID, alice.ID, domain.VoteChoiceYes, "2.0")
		cast(application.ID, bob.ID, domain.VoteChoiceYes, "1.0")
		cast(application.ID, carol.ID, domain.VoteChoiceNo, "1.0")

		result, err := store.CloseVotingPeriod(ctx, CloseVotingInput{
			ApplicationID:     application.ID,
			MinimumVotes:      3,
			ApprovalThreshold: dec("60"),
			DecidedBy:         &officer.ID,
		})
		require.NoError(t, err)

		assert.True(t, result.Decision.Approved)
		assert.Equal(t, "Approved with 75.0% approval (≥60% required)", result.Decision.Reason)
		assertDecimal(t, "75", result.Decision.ApprovalPercentage)
		assert.Equal(t, 2, result.Tally.YesCount)
		assert.Equal(t, 1, result.Tally.NoCount)
		assert.Equal(t, 0, result.Tally.AbstainCount)
		assertDecimal(t, "3", result.Tally.YesWeight)
		assertDecimal(t, "1", result.Tally.NoWeight)

		assert.Equal(t, schema.ApplicationStatusApproved, result.Application.Status)
		require.NotNil(t, result.Application.DecisionMadeAt)
		require.NotNil(t, result.Application.DecisionMadeByID)
		assert.Equal(t, officer.ID, *result.Application.DecisionMadeByID)
		assert.Equal(t, result.Decision.Reason, result.Application.DecisionReason)

		require.NotNil(t, result.Notification)
		assert.Equal(t, domain.NotificationVotingClosed, result.Notification.EventType)

		row, err := store.GetOutboxRowByEventID(ctx, result.Notification.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)

		var payload domain.VotingClosedPayload
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		assert.True(t, payload.Approved)
		assert.Equal(t, 3, payload.TotalVotes)
		assert.Equal(t, 2, payload.YesVotes)
		assert.Equal(t, 1, payload.NoVotes)
		assertDecimal(t, "3", payload.YesWeight)
		assertDecimal(t, "4", payload.TotalWeight)
		assertDecimal(t, "75", payload.ApprovalPercentage)
		assert.Equal(t, 3, payload.MinimumVotes)
		assertDecimal(t, "60", payload.ApprovalThreshold)
		assert.Equal(t, "approved", payload.Status)
	})

	t.Run("insufficient participation rejects", func(t *testing.T) {
		application := createTestApplication(t, store, "Samwise")
		openVoting(t, store, application.ID, time.Now().UTC().Add(time.Hour))
		cast(application.ID, alice.ID, domain.VoteChoiceYes, "1.0")

		result, err := store.CloseVotingPeriod(ctx, CloseVotingInput{
			ApplicationID:     application.ID,
			MinimumVotes:      3,
			ApprovalThreshold: dec("60"),
		})
		require.NoError(t, err)
		assert.False(t, result.Decision.Approved)
		assert.Equal(t, "Insufficient votes (1 received, 3 required)", result.Decision.Reason)
		assertDecimal(t, "0", result.Decision.ApprovalPercentage)
		assert.Equal(t, schema.ApplicationStatusRejected, result.Application.Status)
	})

	t.Run("approval below the threshold rejects", func(t *testing.T) {
		application := createTestApplication(t, store, "Meriadoc")
		openVoting(t, store, application.ID, time.Now().UTC().Add(time.Hour))
		cast(application.ID, alice.ID, domain.VoteChoiceYes, "1.0")
		cast(application.ID, bob.ID, domain.VoteChoiceNo, "1.0")
		cast(application.ID, carol.ID, domain.VoteChoiceNo, "2.0")

		result, err := store.CloseVotingPeriod(ctx, CloseVotingInput{
			ApplicationID:     application.ID,
			MinimumVotes:      3,
			ApprovalThreshold: dec("60"),
		})
		require.NoError(t, err)
		assert.False(t, result.Decision.Approved)
		assert.Equal(t, "Rejected with 25.0% approval (<60% required)", result.Decision.Reason)
		assert.Equal(t, schema.ApplicationStatusRejected, result.Application.Status)
	})

	t.Run("only open periods can close", func(t *testing.T) {
		application := createTestApplication(t, store, "Peregrin")
		_, err := store.CloseVotingPeriod(ctx, CloseVotingInput{ApplicationID: application.ID})
		require.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.ErrorContains(t, err, "not voting_open")

		approved := createTestApplication(t, store, "Fredegar")
		approveApplication(t, store, approved.ID)
		_, err = store.CloseVotingPeriod(ctx, CloseVotingInput{ApplicationID: approved.ID})
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})

	t.Run("missing application", func(t *testing.T) {
		_, err := store.CloseVotingPeriod(ctx, CloseVotingInput{ApplicationID: 99999})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}

// =============================================================================
// Test: Voting reminders
// =============================================================================

func testVotingReminders(t *testing.T, store Store) {
	ctx := context.Background()

	application := createTestApplication(t, store, "Frodo")
	openVoting(t, store, application.ID, time.Now().UTC().Add(24*time.Hour))

	reminderEvent := func(tier int) *domain.NotificationEvent {
		event, err := domain.NewNotificationEvent(domain.NotificationVotingReminder, domain.ChannelRecruitment, domain.VotingReminderPayload{
			ApplicationPayload: domain.ApplicationPayload{ApplicationID: application.ID, CharacterName: "Frodo"},
			HoursRemaining:     tier,
		})
		require.NoError(t, err)
		return event
	}

	t.Run("first tier sends", func(t *testing.T) {
		event := reminderEvent(24)
		sent, err := store.MarkReminderSent(ctx, MarkReminderInput{ApplicationID: application.ID, Tier: 24, Notification: event})
		require.NoError(t, err)
		assert.True(t, sent)

		updated, err := store.GetApplicationByID(ctx, application.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.LastReminderTier)
		assert.Equal(t, 24, *updated.LastReminderTier)

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		assert.NotNil(t, row)
	})

	t.Run("repeating a tier does not send", func(t *testing.T) {
		event := reminderEvent(24)
		sent, err := store.MarkReminderSent(ctx, MarkReminderInput{ApplicationID: application.ID, Tier: 24, Notification: event})
		require.NoError(t, err)
		assert.False(t, sent)

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("a larger tier never replaces a smaller one", func(t *testing.T) {
		sent, err := store.MarkReminderSent(ctx, MarkReminderInput{ApplicationID: application.ID, Tier: 48, Notification: reminderEvent(48)})
		require.NoError(t, err)
		assert.False(t, sent)
	})

	t.Run("tiers shrink as the deadline approaches", func(t *testing.T) {
		sent, err := store.MarkReminderSent(ctx, MarkReminderInput{ApplicationID: application.ID, Tier: 1, Notification: reminderEvent(1)})
		require.NoError(t, err)
		assert.True(t, sent)

		updated, err := store.GetApplicationByID(ctx, application.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.LastReminderTier)
		assert.Equal(t, 1, *updated.LastReminderTier)
	})

	t.Run("closed or missing applications never send", func(t *testing.T) {
		submitted := createTestApplication(t, store, "Samwise")
		sent, err := store.MarkReminderSent(ctx, MarkReminderInput{ApplicationID: submitted.ID, Tier: 24})
		require.NoError(t, err)
		assert.False(t, sent)

		sent, err = store.MarkReminderSent(ctx, MarkReminderInput{ApplicationID: 99999, Tier: 24})
		require.NoError(t, err)
		assert.False(t, sent)
	})
}

// =============================================================================
// Test: Post-approval provisioning
// =============================================================================

func testProvisioning(t *testing.T, store Store) {
	ctx := context.Background()

	newApproved := func(characterName string) *schema.Application {
		application := createTestApplication(t, store, characterName)
		return approveApplication(t, store, application.ID)
	}

	var provisioned *ProvisionResult

	t.Run("full provisioning run", func(t *testing.T) {
		application := newApproved("Frodo baggins")

		result, err := store.ProvisionApplication(ctx, ProvisionInput{
			ApplicationID:  application.ID,
			StartingPoints: dec("25"),
			RankName:       "Trial Member",
			GroupNames:     []string{"Guild Members", "Voting Members"},
			ProcessedBy:    "Thorin Officer",
		})
		require.NoError(t, err)
		provisioned = result

		assert.Equal(t, "frodo_baggins", result.Username)
		assert.Equal(t, "frodo_baggins", result.User.Username)
		assert.True(t, result.User.IsActive)

		assert.Equal(t, "Frodo Baggins", result.Character.Name)
		assert.Equal(t, "Cleric", result.Character.Class)
		assert.Equal(t, 58, result.Character.Level)
		assert.Equal(t, schema.CharacterStatusActive, result.Character.Status)
		assert.Equal(t, fmt.Sprintf("Character created from approved application %d", application.ID), result.Character.Description)

		assert.Equal(t, "Trial Member", result.RankAssigned)
		assert.Equal(t, []string{"Guild Members", "Voting Members"}, result.GroupsAssigned)
		assert.Empty(t, result.Warnings)

		summary, err := store.GetUserPointsSummary(ctx, result.User.ID)
		require.NoError(t, err)
		require.NotNil(t, summary)
		assertDecimal(t, "25", summary.TotalPoints)

		entries, _, err := store.ListAdjustmentsByUser(ctx, result.User.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, schema.AdjustmentTypeManual, entries[0].AdjustmentType)
		assert.Equal(t, fmt.Sprintf("Initial DKP allocation for new member from application %d", application.ID), entries[0].Description)
		assert.Equal(t, "Frodo Baggins", entries[0].CharacterName)

		linked, err := store.GetApplicationByID(ctx, application.ID)
		require.NoError(t, err)
		require.NotNil(t, linked.ApprovedUserID)
		assert.Equal(t, result.User.ID, *linked.ApprovedUserID)

		history, err := store.ListCharacterOwnership(ctx, result.Character.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, schema.OwnershipReasonCreated, history[0].Reason)

		require.NotNil(t, result.Notification)
		assert.Equal(t, domain.NotificationCharacterCreated, result.Notification.EventType)
		assert.Equal(t, domain.ChannelRecruitment, result.Notification.Channel)

		row, err := store.GetOutboxRowByEventID(ctx, result.Notification.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)

		var payload domain.CharacterPayload
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		require.NotNil(t, payload.ApplicationID)
		assert.Equal(t, application.ID, *payload.ApplicationID)
		assert.True(t, payload.DKPInitialized)
		assert.True(t, payload.GroupsAssigned)
		assert.Equal(t, "Thorin Officer", payload.ProcessedBy)
		assert.Equal(t, "frodo_baggins", payload.OwnerName)
	})

	t.Run("username collisions take a suffix", func(t *testing.T) {
		createTestUser(t, store, "meriadoc")
		application := newApproved("Meriadoc")

		result, err := store.ProvisionApplication(ctx, ProvisionInput{ApplicationID: application.ID})
		require.NoError(t, err)
		assert.Equal(t, "meriadoc_1", result.Username)
		assert.Empty(t, result.RankAssigned)
		assert.Empty(t, result.GroupsAssigned)
		assert.Empty(t, result.Warnings)

		// No starting points, so no ledger activity
		summary, err := store.GetUserPointsSummary(ctx, result.User.ID)
		require.NoError(t, err)
		assert.Nil(t, summary)

		var payload domain.CharacterPayload
		row, err := store.GetOutboxRowByEventID(ctx, result.Notification.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		assert.False(t, payload.DKPInitialized)
		assert.False(t, payload.GroupsAssigned)
		assert.Equal(t, "system", payload.ProcessedBy)
	})

	t.Run("a processed application cannot run again", func(t *testing.T) {
		_, err := store.ProvisionApplication(ctx, ProvisionInput{ApplicationID: provisioned.Application.ID})
		require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
		assert.ErrorContains(t, err, "use force to reprocess")
	})

	t.Run("unknown rank falls back to the lowest level", func(t *testing.T) {
		application := newApproved("Samwise")

		result, err := store.ProvisionApplication(ctx, ProvisionInput{
			ApplicationID: application.ID,
			RankName:      "Archmage",
		})
		require.NoError(t, err)
		assert.Equal(t, "Guild Leader", result.RankAssigned)
		assert.Equal(t, []string{`rank "Archmage" not found, fell back to "Guild Leader"`}, result.Warnings)
	})

	t.Run("unknown groups become warnings", func(t *testing.T) {
		application := newApproved("Peregrin")

		result, err := store.ProvisionApplication(ctx, ProvisionInput{
			ApplicationID: application.ID,
			GroupNames:    []string{"Knitting Circle", "Guild Members"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Guild Members"}, result.GroupsAssigned)
		assert.Contains(t, result.Warnings, `group "Knitting Circle" not found`)
	})

	t.Run("only approved applications provision", func(t *testing.T) {
		submitted := createTestApplication(t, store, "Fredegar")
		_, err := store.ProvisionApplication(ctx, ProvisionInput{ApplicationID: submitted.ID})
		require.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.ErrorContains(t, err, "not approved")

		_, err = store.ProvisionApplication(ctx, ProvisionInput{ApplicationID: 99999})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("ready queue drains as applications provision", func(t *testing.T) {
		first := newApproved("Bilbo")
		second := newApproved("Drogo")

		ready, err := store.ListApplicationsReadyForProcessing(ctx, 10)
		require.NoError(t, err)
		require.Len(t, ready, 2)
		assert.Equal(t, first.ID, ready[0].ID)
		assert.Equal(t, second.ID, ready[1].ID)

		_, err = store.ProvisionApplication(ctx, ProvisionInput{ApplicationID: first.ID})
		require.NoError(t, err)

		ready, err = store.ListApplicationsReadyForProcessing(ctx, 10)
		require.NoError(t, err)
		require.Len(t, ready, 1)
		assert.Equal(t, second.ID, ready[0].ID)
	})
}

// =============================================================================
// Test: Items and loot distributions
// =============================================================================

func testItemsAndDistributions(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	officer := createTestUser(t, store, "officer")
	blade := createTestItem(t, store, "Blade of Carnage", "150")
	event := createTestEvent(t, store, "Vault of the Sleeper", "10", "2")
	raid := completedRaid(t, store, event.ID, "Sleeper wake", time.Now().UTC())
	grantPoints(t, store, alice.ID, "200")

	t.Run("catalog basics", func(t *testing.T) {
		assert.True(t, blade.IsActive)
		assertDecimal(t, "150", blade.SuggestedCost)

		fetched, err := store.GetItemByID(ctx, blade.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "Blade of Carnage", fetched.Name)

		missing, err := store.GetItemByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, missing)

		items, err := store.ListItems(ctx, true)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	var distribution *schema.LootDistribution

	t.Run("award charges the buyer and announces the loot", func(t *testing.T) {
		dist, notification, err := store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID:        blade.ID,
			UserID:        alice.ID,
			CharacterName: "Arwen",
			PointCost:     dec("75"),
			Quantity:      2,
			RaidID:        &raid.ID,
			DistributedBy: &officer.ID,
			DiscordContext: map[string]any{
				"command": "/loot award",
			},
		})
		require.NoError(t, err)
		distribution = dist

		assertDecimal(t, "75", dist.PointCost)
		assert.Equal(t, 2, dist.Quantity)
		assert.Equal(t, "Blade of Carnage", dist.Item.Name)

		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "50", summary.TotalPoints)
		assertDecimal(t, "150", summary.SpentPoints)

		entries, _, err := store.ListAdjustmentsByUser(ctx, alice.ID, 1, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, schema.AdjustmentTypeItemPurchase, entries[0].AdjustmentType)
		assertDecimal(t, "-150", entries[0].Points)
		assert.Equal(t, "Loot: Blade of Carnage (x2)", entries[0].Description)

		require.NotNil(t, notification)
		assert.Equal(t, domain.NotificationLootAwarded, notification.EventType)
		assert.Equal(t, domain.ChannelLoot, notification.Channel)

		row, err := store.GetOutboxRowByEventID(ctx, notification.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)

		var payload domain.LootAwardedPayload
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		assert.Equal(t, "Blade of Carnage", payload.ItemName)
		assert.Equal(t, 2, payload.Quantity)
		assertDecimal(t, "150", payload.TotalCost)
		assertDecimal(t, "50", payload.RemainingDKP)
		assert.Equal(t, "Sleeper wake", payload.RaidTitle)
		assert.Equal(t, "officer", payload.DistributedBy)
	})

	t.Run("buyers cannot overdraw", func(t *testing.T) {
		_, _, err := store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID:        blade.ID,
			UserID:        bob.ID,
			CharacterName: "Boromir",
			PointCost:     dec("10"),
			Quantity:      1,
		})
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		_, total, err := store.ListLootDistributions(ctx, DistributionFilter{UserID: &bob.ID}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("free handouts skip the ledger", func(t *testing.T) {
		_, notification, err := store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID:        blade.ID,
			UserID:        bob.ID,
			CharacterName: "Boromir",
			PointCost:     decimal.Zero,
			Quantity:      1,
		})
		require.NoError(t, err)

		_, total, err := store.ListAdjustmentsByUser(ctx, bob.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)

		var payload domain.LootAwardedPayload
		row, err := store.GetOutboxRowByEventID(ctx, notification.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		assertDecimal(t, "0", payload.TotalCost)
	})

	t.Run("input validation", func(t *testing.T) {
		_, _, err := store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID: blade.ID, UserID: alice.ID, CharacterName: "Arwen", PointCost: dec("10"), Quantity: 0,
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "quantity must be positive, got 0")

		_, _, err = store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID: blade.ID, UserID: alice.ID, CharacterName: "Arwen", PointCost: dec("-5"), Quantity: 1,
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "point cost must not be negative, got -5")

		_, _, err = store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID: 99999, UserID: alice.ID, CharacterName: "Arwen", PointCost: dec("10"), Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, _, err = store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID: blade.ID, UserID: 99999, CharacterName: "Ghost", PointCost: dec("10"), Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		missingRaid := int64(99999)
		_, _, err = store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID: blade.ID, UserID: alice.ID, CharacterName: "Arwen", PointCost: dec("10"), Quantity: 1, RaidID: &missingRaid,
		})
		assert.ErrorIs(t, err, domain.ErrRaidNotFound)
	})

	t.Run("listing filters and pages newest first", func(t *testing.T) {
		cloak := createTestItem(t, store, "Cloak of Flames", "10")
		_, _, err := store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID:        cloak.ID,
			UserID:        alice.ID,
			CharacterName: "Arwen",
			PointCost:     dec("10"),
			Quantity:      1,
		})
		require.NoError(t, err)

		all, total, err := store.ListLootDistributions(ctx, DistributionFilter{}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, all, 3)
		assert.Equal(t, "Cloak of Flames", all[0].Item.Name)
		assert.Equal(t, "alice", all[0].User.Username)

		byUser, total, err := store.ListLootDistributions(ctx, DistributionFilter{UserID: &alice.ID}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, byUser, 2)

		byItem, total, err := store.ListLootDistributions(ctx, DistributionFilter{ItemID: &blade.ID}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "Boromir", byItem[0].CharacterName)

		byBoth, total, err := store.ListLootDistributions(ctx, DistributionFilter{UserID: &alice.ID, ItemID: &blade.ID}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, distribution.ID, byBoth[0].ID)

		byRaid, total, err := store.ListLootDistributions(ctx, DistributionFilter{RaidID: &raid.ID}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, distribution.ID, byRaid[0].ID)

		paged, total, err := store.ListLootDistributions(ctx, DistributionFilter{}, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, paged, 2)
	})

	t.Run("get by ID", func(t *testing.T) {
		fetched, err := store.GetLootDistributionByID(ctx, distribution.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "Blade of Carnage", fetched.Item.Name)
		assert.Equal(t, "alice", fetched.User.Username)

		missing, err := store.GetLootDistributionByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: Distribution deletion and refunds
// =============================================================================

func testDeleteDistribution(t *testing.T, store Store) {
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")
	blade := createTestItem(t, store, "Blade of Carnage", "150")
	grantPoints(t, store, alice.ID, "200")

	distribution, _, err := store.CreateLootDistribution(ctx, CreateDistributionInput{
		ItemID:        blade.ID,
		UserID:        alice.ID,
		CharacterName: "Arwen",
		PointCost:     dec("75"),
		Quantity:      2,
	})
	require.NoError(t, err)

	t.Run("deletion refunds the full cost", func(t *testing.T) {
		deleted, err := store.DeleteLootDistribution(ctx, DeleteDistributionInput{
			DistributionID: distribution.ID,
			Reason:         "Misclick",
		})
		require.NoError(t, err)
		assert.Equal(t, distribution.ID, deleted.ID)
		assert.Equal(t, "Blade of Carnage", deleted.Item.Name)

		gone, err := store.GetLootDistributionByID(ctx, distribution.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		summary, err := store.GetUserPointsSummary(ctx, alice.ID)
		require.NoError(t, err)
		assertDecimal(t, "200", summary.TotalPoints)
		assertDecimal(t, "350", summary.EarnedPoints)
		assertDecimal(t, "150", summary.SpentPoints)

		entries, _, err := store.ListAdjustmentsByUser(ctx, alice.ID, 1, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, schema.AdjustmentTypeManual, entries[0].AdjustmentType)
		assertDecimal(t, "150", entries[0].Points)
		assert.Equal(t, "Refund for deleted distribution: Blade of Carnage (x2)", entries[0].Description)
	})

	t.Run("deleting twice", func(t *testing.T) {
		_, err := store.DeleteLootDistribution(ctx, DeleteDistributionInput{DistributionID: distribution.ID})
		assert.ErrorIs(t, err, domain.ErrDistributionNotFound)
	})

	t.Run("free handouts refund nothing", func(t *testing.T) {
		free, _, err := store.CreateLootDistribution(ctx, CreateDistributionInput{
			ItemID:        blade.ID,
			UserID:        bob.ID,
			CharacterName: "Boromir",
			PointCost:     decimal.Zero,
			Quantity:      1,
		})
		require.NoError(t, err)

		_, err = store.DeleteLootDistribution(ctx, DeleteDistributionInput{DistributionID: free.ID})
		require.NoError(t, err)

		_, total, err := store.ListAdjustmentsByUser(ctx, bob.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

// =============================================================================
// Test: Notification outbox lifecycle
// =============================================================================

func testOutboxLifecycle(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Now().UTC()

	t.Run("enqueue writes a pending row", func(t *testing.T) {
		event := buildOutboxEvent(t)
		require.NoError(t, store.EnqueueNotification(ctx, event))

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, event.EventID, row.EventID)
		assert.Equal(t, "daily_summary", row.EventType)
		assert.Equal(t, "general", row.Channel)
		assert.Equal(t, schema.OutboxStatusPending, row.Status)
		assert.Equal(t, 0, row.Attempts)
		assert.Nil(t, row.LastAttemptAt)
		assert.Nil(t, row.NextAttemptAt)

		var payload domain.DailySummaryPayload
		require.NoError(t, json.Unmarshal(row.Payload, &payload))
		assert.Equal(t, "2026-08-25", payload.Date)
		assert.Equal(t, int64(2), payload.NewApplications)
	})

	t.Run("nil events are a no-op", func(t *testing.T) {
		assert.NoError(t, store.EnqueueNotification(ctx, nil))
	})

	t.Run("missing rows return nil", func(t *testing.T) {
		row, err := store.GetOutboxRowByEventID(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("claiming and delivering", func(t *testing.T) {
		event := buildOutboxEvent(t)
		require.NoError(t, store.EnqueueNotification(ctx, event))

		claimed, err := store.ClaimOutboxRow(ctx, event.EventID, base, 5*time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, schema.OutboxStatusDelivering, claimed.Status)
		assert.Equal(t, 1, claimed.Attempts)
		require.NotNil(t, claimed.LastAttemptAt)
		assert.WithinDuration(t, base, *claimed.LastAttemptAt, time.Second)

		// A fresh claim blocks concurrent dispatchers
		second, err := store.ClaimOutboxRow(ctx, event.EventID, base, 5*time.Minute)
		require.NoError(t, err)
		assert.Nil(t, second)

		// A stale claim is taken over
		reclaimed, err := store.ClaimOutboxRow(ctx, event.EventID, base.Add(10*time.Minute), 5*time.Minute)
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, 2, reclaimed.Attempts)

		require.NoError(t, store.MarkOutboxDelivered(ctx, event.EventID, 204, base.Add(10*time.Minute)))

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		assert.Equal(t, schema.OutboxStatusSucceeded, row.Status)
		require.NotNil(t, row.ResponseStatus)
		assert.Equal(t, 204, *row.ResponseStatus)
		assert.Empty(t, row.ErrorMessage)
		assert.Nil(t, row.NextAttemptAt)

		// Finished rows cannot be claimed again
		done, err := store.ClaimOutboxRow(ctx, event.EventID, base.Add(time.Hour), 5*time.Minute)
		require.NoError(t, err)
		assert.Nil(t, done)
	})

	t.Run("failures schedule retries until finalized", func(t *testing.T) {
		event := buildOutboxEvent(t)
		require.NoError(t, store.EnqueueNotification(ctx, event))

		_, err := store.ClaimOutboxRow(ctx, event.EventID, base, 5*time.Minute)
		require.NoError(t, err)

		status := 500
		retryAt := base.Add(2 * time.Minute)
		require.NoError(t, store.MarkOutboxFailed(ctx, MarkOutboxFailedInput{
			EventID:        event.EventID,
			ErrorMessage:   "HTTP 500: internal server error",
			ResponseStatus: &status,
			NextAttemptAt:  &retryAt,
			Now:            base,
		}))

		row, err := store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		assert.Equal(t, schema.OutboxStatusPending, row.Status)
		assert.Equal(t, "HTTP 500: internal server error", row.ErrorMessage)
		require.NotNil(t, row.NextAttemptAt)
		assert.WithinDuration(t, retryAt, *row.NextAttemptAt, time.Second)

		// Not due yet
		early, err := store.ClaimOutboxRow(ctx, event.EventID, base.Add(time.Minute), 5*time.Minute)
		require.NoError(t, err)
		assert.Nil(t, early)

		due, err := store.ClaimOutboxRow(ctx, event.EventID, base.Add(3*time.Minute), 5*time.Minute)
		require.NoError(t, err)
		require.NotNil(t, due)
		assert.Equal(t, 2, due.Attempts)

		require.NoError(t, store.MarkOutboxFailed(ctx, MarkOutboxFailedInput{
			EventID:        event.EventID,
			ErrorMessage:   "HTTP 500: internal server error",
			ResponseStatus: &status,
			Now:            base.Add(3 * time.Minute),
		}))

		row, err = store.GetOutboxRowByEventID(ctx, event.EventID)
		require.NoError(t, err)
		assert.Equal(t, schema.OutboxStatusFailed, row.Status)
		assert.Nil(t, row.NextAttemptAt)

		dead, err := store.ClaimOutboxRow(ctx, event.EventID, base.Add(time.Hour), 5*time.Minute)
		require.NoError(t, err)
		assert.Nil(t, dead)
	})
}

// =============================================================================
// Test: Outbox sweeping
// =============================================================================

func testOutboxSweeper(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Now().UTC()
	staleAfter := 5 * time.Minute
	status := 502

	enqueue := func() *domain.NotificationEvent {
		event := buildOutboxEvent(t)
		require.NoError(t, store.EnqueueNotification(ctx, event))
		return event
	}

	// Never claimed, dispatchable immediately
	pending := enqueue()

	// Failed with a retry that is now due
	retryDue := enqueue()
	dueAt := base.Add(-time.Minute)
	require.NoError(t, store.MarkOutboxFailed(ctx, MarkOutboxFailedInput{
		EventID: retryDue.EventID, ErrorMessage: "HTTP 502", ResponseStatus: &status,
		NextAttemptAt: &dueAt, Now: base.Add(-20 * time.Minute),
	}))

	// Failed with a retry scheduled in the future
	retryLater := enqueue()
	laterAt := base.Add(30 * time.Minute)
	require.NoError(t, store.MarkOutboxFailed(ctx, MarkOutboxFailedInput{
		EventID: retryLater.EventID, ErrorMessage: "HTTP 502", ResponseStatus: &status,
		NextAttemptAt: &laterAt, Now: base.Add(-20 * time.Minute),
	}))

	// Claimed long enough ago to have gone stale
	stale := enqueue()
	_, err := store.ClaimOutboxRow(ctx, stale.EventID, base.Add(-10*time.Minute), staleAfter)
	require.NoError(t, err)

	// Claimed recently, still held by its dispatcher
	held := enqueue()
	_, err = store.ClaimOutboxRow(ctx, held.EventID, base.Add(-time.Minute), staleAfter)
	require.NoError(t, err)

	// Already delivered
	delivered := enqueue()
	require.NoError(t, store.MarkOutboxDelivered(ctx, delivered.EventID, 204, base.Add(-time.Minute)))

	t.Run("lists due and stale rows oldest first", func(t *testing.T) {
		rows, err := store.ListDispatchableOutboxRows(ctx, base, staleAfter, 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, pending.EventID, rows[0].EventID)
		assert.Equal(t, retryDue.EventID, rows[1].EventID)
		assert.Equal(t, stale.EventID, rows[2].EventID)
	})

	t.Run("limit caps the sweep batch", func(t *testing.T) {
		rows, err := store.ListDispatchableOutboxRows(ctx, base, staleAfter, 2)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, pending.EventID, rows[0].EventID)
		assert.Equal(t, retryDue.EventID, rows[1].EventID)
	})
}

// =============================================================================
// Test: Daily summary counts
// =============================================================================

func testDailySummaryCounts(t *testing.T, store Store) {
	ctx := context.Background()
	today := time.Now().UTC()

	t.Run("quiet day is all zeros", func(t *testing.T) {
		counts, err := store.GetDailySummaryCounts(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, &DailySummaryCounts{}, counts)
	})

	// One approval, one rejection, one still-submitted application, and one
	// roster addition, all stamped today
	approved := createTestApplication(t, store, "Frodo")
	approveApplication(t, store, approved.ID)

	rejected := createTestApplication(t, store, "Samwise")
	openVoting(t, store, rejected.ID, today.Add(time.Hour))
	result, err := store.CloseVotingPeriod(ctx, CloseVotingInput{
		ApplicationID:     rejected.ID,
		MinimumVotes:      5,
		ApprovalThreshold: dec("60"),
	})
	require.NoError(t, err)
	require.False(t, result.Decision.Approved)

	createTestApplication(t, store, "Meriadoc")

	alice := createTestUser(t, store, "alice")
	createTestCharacter(t, store, alice.ID, "Arwen")

	t.Run("aggregates the day's activity", func(t *testing.T) {
		counts, err := store.GetDailySummaryCounts(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts.NewApplications)
		assert.Equal(t, int64(2), counts.VotingOpened)
		assert.Equal(t, int64(2), counts.VotingClosed)
		assert.Equal(t, int64(1), counts.Approved)
		assert.Equal(t, int64(1), counts.Rejected)
		assert.Equal(t, int64(1), counts.CharactersCreated)
	})

	t.Run("other days are unaffected", func(t *testing.T) {
		counts, err := store.GetDailySummaryCounts(ctx, today.AddDate(0, 0, -1))
		require.NoError(t, err)
		assert.Equal(t, &DailySummaryCounts{}, counts)

		counts, err = store.GetDailySummaryCounts(ctx, today.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, &DailySummaryCounts{}, counts)
	})
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"DiscordLinking", testDiscordLinking},
		{"MemberStatus", testMemberStatus},
		{"Ranks", testRanks},
		{"Characters", testCharacters},
		{"CharacterTransfers", testCharacterTransfers},
		{"Adjustments", testAdjustments},
		{"PointsSummaries", testPointsSummaries},
		{"PointTransfers", testPointTransfers},
		{"DeleteAdjustment", testDeleteAdjustment},
		{"LeaderboardAndStats", testLeaderboardAndStats},
		{"EventsAndRaids", testEventsAndRaids},
		{"RaidAttendance", testRaidAttendance},
		{"AwardRaidPoints", testAwardRaidPoints},
		{"AttendanceQueries", testAttendanceQueries},
		{"AttendanceSummaries", testAttendanceSummaries},
		{"GuildAttendanceStats", testGuildAttendanceStats},
		{"Applications", testApplications},
		{"ApplicationVotes", testApplicationVotes},
		{"CloseVoting", testCloseVoting},
		{"VotingReminders", testVotingReminders},
		{"Provisioning", testProvisioning},
		{"ItemsAndDistributions", testItemsAndDistributions},
		{"DeleteDistribution", testDeleteDistribution},
		{"OutboxLifecycle", testOutboxLifecycle},
		{"OutboxSweeper", testOutboxSweeper},
		{"DailySummaryCounts", testDailySummaryCounts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
