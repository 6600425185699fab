package recruitment_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/mocks"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

var votingNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type testRecruitmentMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	attendance *mocks.MockAttendanceService
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
}

func setupTestRecruitment(t *testing.T, cfg recruitment.Config) (recruitment.Service, testRecruitmentMocks) {
	ctrl := gomock.NewController(t)
	tm := testRecruitmentMocks{
		ctrl:       ctrl,
		store:      mocks.NewMockStore(ctrl),
		attendance: mocks.NewMockAttendanceService(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	svc := recruitment.NewService(tm.store, tm.attendance, tm.publisher, tm.clock, cfg)
	return svc, tm
}

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testApplication(id int64, status schema.ApplicationStatus) *schema.Application {
	return &schema.Application{
		ID:             id,
		CharacterName:  "Gandalf",
		CharacterClass: "Wizard",
		CharacterLevel: 60,
		ApplicantName:  "Mithrandir",
		Status:         status,
		SubmittedAt:    votingNow.Add(-72 * time.Hour),
	}
}

func mustEvent(t *testing.T, eventType domain.NotificationType, payload any) *domain.NotificationEvent {
	t.Helper()
	event, err := domain.NewNotificationEvent(eventType, domain.ChannelRecruitment, payload)
	require.NoError(t, err)
	return event
}

func TestDueReminderTier(t *testing.T) {
	tiers := []int{24, 6, 1}

	tests := []struct {
		name         string
		tiers        []int
		remaining    time.Duration
		expectedTier int
		expectedDue  bool
	}{
		{name: "further out than every tier", tiers: tiers, remaining: 36 * time.Hour, expectedDue: false},
		{name: "exactly at the largest tier", tiers: tiers, remaining: 24 * time.Hour, expectedTier: 24, expectedDue: true},
		{name: "inside the largest tier", tiers: tiers, remaining: 23 * time.Hour, expectedTier: 24, expectedDue: true},
		{name: "exactly at a middle tier", tiers: tiers, remaining: 6 * time.Hour, expectedTier: 6, expectedDue: true},
		{name: "inside a middle tier", tiers: tiers, remaining: 5*time.Hour + 30*time.Minute, expectedTier: 6, expectedDue: true},
		{name: "inside the smallest tier", tiers: tiers, remaining: 30 * time.Minute, expectedTier: 1, expectedDue: true},
		{name: "unordered configuration", tiers: []int{6, 24, 1}, remaining: 5 * time.Hour, expectedTier: 6, expectedDue: true},
		{name: "non-positive tiers ignored", tiers: []int{0, -3, 24}, remaining: 10 * time.Hour, expectedTier: 24, expectedDue: true},
		{name: "no tiers configured", tiers: nil, remaining: time.Hour, expectedDue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, due := recruitment.DueReminderTier(tt.tiers, tt.remaining)
			assert.Equal(t, tt.expectedDue, due)
			if tt.expectedDue {
				assert.Equal(t, tt.expectedTier, tier)
			}
		})
	}
}

func TestService_SubmitApplication(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	created := testApplication(12, schema.ApplicationStatusSubmitted)
	event := mustEvent(t, domain.NotificationNewApplication, domain.ApplicationPayload{ApplicationID: 12})

	tm.store.EXPECT().
		CreateApplication(gomock.Any(), store.CreateApplicationInput{
			CharacterName:   "Gandalf",
			CharacterClass:  "Wizard",
			CharacterLevel:  60,
			ApplicantName:   "Mithrandir",
			Email:           "mithrandir@example.com",
			DiscordUsername: "gandalf#0001",
			GuildExperience: "Led a fellowship",
		}).
		Return(created, event, nil)
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), event).
		Return(nil)

	application, err := svc.SubmitApplication(context.Background(), recruitment.SubmitApplicationInput{
		CharacterName:   "  gandalf  ",
		CharacterClass:  "Wizard",
		CharacterLevel:  60,
		ApplicantName:   " Mithrandir ",
		Email:           " mithrandir@example.com ",
		DiscordUsername: " gandalf#0001 ",
		GuildExperience: "Led a fellowship",
	})
	require.NoError(t, err)
	assert.Equal(t, created, application)
}

func TestService_SubmitApplication_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       recruitment.SubmitApplicationInput
		expectedErr string
	}{
		{
			name:        "character name too short",
			input:       recruitment.SubmitApplicationInput{CharacterName: "G", ApplicantName: "Someone", CharacterLevel: 60},
			expectedErr: "character name must be at least 2 characters",
		},
		{
			name:        "applicant name missing",
			input:       recruitment.SubmitApplicationInput{CharacterName: "Gandalf", ApplicantName: "   ", CharacterLevel: 60},
			expectedErr: "applicant name is required",
		},
		{
			name:        "character level below 1",
			input:       recruitment.SubmitApplicationInput{CharacterName: "Gandalf", ApplicantName: "Someone", CharacterLevel: 0},
			expectedErr: "character level must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tm := setupTestRecruitment(t, recruitment.Config{})
			defer tm.ctrl.Finish()

			_, err := svc.SubmitApplication(context.Background(), tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestService_GetApplication_NotFound(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetApplicationByID(gomock.Any(), int64(404)).
		Return(nil, nil)

	_, err := svc.GetApplication(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func TestService_ListApplications_NormalizesPaging(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		ListApplications(gomock.Any(), nil, 20, 0).
		Return(nil, int64(0), nil)
	tm.store.EXPECT().
		ListApplications(gomock.Any(), nil, 100, 5).
		Return(nil, int64(0), nil)

	_, _, err := svc.ListApplications(context.Background(), nil, 0, -1)
	require.NoError(t, err)
	_, _, err = svc.ListApplications(context.Background(), nil, 500, 5)
	require.NoError(t, err)
}

func TestService_OpenVotingPeriod(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	application := testApplication(7, schema.ApplicationStatusOfficerApproved)
	opened := testApplication(7, schema.ApplicationStatusVotingOpen)
	openedBy := int64(3)

	tm.store.EXPECT().
		GetApplicationByID(gomock.Any(), int64(7)).
		Return(application, nil)
	tm.clock.EXPECT().Now().Return(votingNow)

	var capturedInput store.OpenVotingInput
	tm.store.EXPECT().
		OpenVotingPeriod(gomock.Any(), gomock.AssignableToTypeOf(store.OpenVotingInput{})).
		DoAndReturn(func(_ context.Context, input store.OpenVotingInput) (*schema.Application, error) {
			capturedInput = input
			return opened, nil
		})

	var published *domain.NotificationEvent
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.NotificationEvent) error {
			published = event
			return nil
		})

	result, err := svc.OpenVotingPeriod(context.Background(), 7, &openedBy)
	require.NoError(t, err)
	assert.Equal(t, opened, result)

	expectedDeadline := votingNow.Add(48 * time.Hour)
	assert.Equal(t, int64(7), capturedInput.ApplicationID)
	assert.True(t, capturedInput.Deadline.Equal(expectedDeadline))
	assert.Equal(t, &openedBy, capturedInput.PerformedBy)

	require.NotNil(t, capturedInput.Notification)
	assert.Same(t, capturedInput.Notification, published)
	assert.Equal(t, domain.NotificationVotingOpened, capturedInput.Notification.EventType)

	var payload domain.VotingOpenedPayload
	require.NoError(t, json.Unmarshal(capturedInput.Notification.Payload, &payload))
	assert.Equal(t, int64(7), payload.ApplicationID)
	assert.Equal(t, "voting_open", payload.Status)
	assert.True(t, payload.VotingDeadline.Equal(expectedDeadline))
}

func TestService_OpenVotingPeriod_NotFound(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetApplicationByID(gomock.Any(), int64(7)).
		Return(nil, nil)

	_, err := svc.OpenVotingPeriod(context.Background(), 7, nil)
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func TestService_CastVote_SnapshotsWeight(t *testing.T) {
	tests := []struct {
		name           string
		rate           decimal.Decimal
		expectedWeight decimal.Decimal
	}{
		{name: "high attendance tier", rate: decimal.NewFromInt(80), expectedWeight: domain.VoteWeightHigh},
		{name: "just below high tier", rate: decimal.NewFromFloat(75.99), expectedWeight: domain.VoteWeightMid},
		{name: "mid attendance tier", rate: decimal.NewFromInt(51), expectedWeight: domain.VoteWeightMid},
		{name: "base attendance tier", rate: decimal.NewFromInt(15), expectedWeight: domain.VoteWeightBase},
		{name: "eligible below base tier keeps base weight", rate: decimal.NewFromInt(10), expectedWeight: domain.VoteWeightBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tm := setupTestRecruitment(t, recruitment.Config{})
			defer tm.ctrl.Finish()

			tm.attendance.EXPECT().
				IsVotingEligible(gomock.Any(), int64(9)).
				Return(true, tt.rate, nil)
			tm.store.EXPECT().
				UpsertApplicationVote(gomock.Any(), store.CastVoteInput{
					ApplicationID:     5,
					VoterID:           9,
					Vote:              domain.VoteChoiceYes,
					VoteWeight:        tt.expectedWeight,
					AttendanceRate30d: tt.rate,
					Comment:           "solid applicant",
				}).
				Return(&schema.ApplicationVote{ApplicationID: 5, VoterID: 9, Vote: domain.VoteChoiceYes}, nil)

			recorded, err := svc.CastVote(context.Background(), 5, 9, domain.VoteChoiceYes, "solid applicant")
			require.NoError(t, err)
			assert.Equal(t, domain.VoteChoiceYes, recorded.Vote)
		})
	}
}

func TestService_CastVote_NotEligible(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	tm.attendance.EXPECT().
		IsVotingEligible(gomock.Any(), int64(9)).
		Return(false, decimal.NewFromFloat(12.5), nil)

	_, err := svc.CastVote(context.Background(), 5, 9, domain.VoteChoiceYes, "")
	require.ErrorIs(t, err, domain.ErrNotEligibleToVote)
	assert.Contains(t, err.Error(), "12.5%")
}

func TestService_CastVote_InvalidChoice(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	_, err := svc.CastVote(context.Background(), 5, 9, domain.VoteChoice("maybe"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid vote choice "maybe"`)
}

func TestService_GetVotingStatistics(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	deadline := votingNow.Add(10 * time.Hour)
	application := testApplication(5, schema.ApplicationStatusVotingOpen)
	application.VotingDeadline = &deadline

	tm.store.EXPECT().
		GetApplicationByID(gomock.Any(), int64(5)).
		Return(application, nil)
	tm.store.EXPECT().
		ListApplicationVotes(gomock.Any(), int64(5)).
		Return([]*schema.ApplicationVote{
			{Vote: domain.VoteChoiceYes, VoteWeight: decimal.NewFromFloat(2.0), AttendanceRate30d: decimal.NewFromInt(80)},
			{Vote: domain.VoteChoiceYes, VoteWeight: decimal.NewFromFloat(1.0), AttendanceRate30d: decimal.NewFromInt(20)},
			{Vote: domain.VoteChoiceNo, VoteWeight: decimal.NewFromFloat(1.5), AttendanceRate30d: decimal.NewFromInt(60)},
			{Vote: domain.VoteChoiceAbstain, VoteWeight: decimal.NewFromFloat(1.0), AttendanceRate30d: decimal.NewFromInt(30)},
		}, nil)
	tm.attendance.EXPECT().
		GuildStats(gomock.Any()).
		Return(&store.GuildAttendanceStats{EligibleVoters: 10}, nil)
	tm.clock.EXPECT().Now().Return(votingNow)

	stats, err := svc.GetVotingStatistics(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalVotes)
	assert.Equal(t, 2, stats.YesVotes)
	assert.Equal(t, 1, stats.NoVotes)
	assert.Equal(t, 1, stats.AbstainVotes)
	assert.Equal(t, "3", stats.YesWeight.String())
	assert.Equal(t, "1.5", stats.NoWeight.String())
	assert.Equal(t, "1", stats.AbstainWeight.String())
	assert.Equal(t, "5.5", stats.TotalWeight.String())
	assert.Equal(t, "54.55", stats.ApprovalPercentage.String())
	assert.Equal(t, "47.5", stats.AverageVoterRate.String())
	assert.Equal(t, int64(10), stats.EligibleVoters)
	assert.Equal(t, "40", stats.ParticipationRate.String())
	assert.True(t, stats.MeetsMinimumVotes)
	assert.False(t, stats.MeetsThreshold)
	assert.Equal(t, int64(36000), stats.TimeRemainingSeconds)
	assert.True(t, stats.IsActive)
}

func TestService_GetVotingStatistics_NoVotes(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	application := testApplication(5, schema.ApplicationStatusRejected)

	tm.store.EXPECT().
		GetApplicationByID(gomock.Any(), int64(5)).
		Return(application, nil)
	tm.store.EXPECT().
		ListApplicationVotes(gomock.Any(), int64(5)).
		Return(nil, nil)
	tm.attendance.EXPECT().
		GuildStats(gomock.Any()).
		Return(&store.GuildAttendanceStats{EligibleVoters: 0}, nil)
	tm.clock.EXPECT().Now().Return(votingNow)

	stats, err := svc.GetVotingStatistics(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalVotes)
	assert.True(t, stats.ApprovalPercentage.IsZero())
	assert.True(t, stats.AverageVoterRate.IsZero())
	assert.True(t, stats.ParticipationRate.IsZero())
	assert.False(t, stats.MeetsMinimumVotes)
	assert.False(t, stats.IsActive)
	assert.Equal(t, int64(0), stats.TimeRemainingSeconds)
}

func TestService_CloseVotingPeriod(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	decidedBy := int64(2)
	event := mustEvent(t, domain.NotificationVotingClosed, domain.VotingClosedPayload{Approved: true})
	closed := &store.CloseVotingResult{
		Application:  testApplication(5, schema.ApplicationStatusApproved),
		Decision:     domain.VotingDecision{Approved: true, Reason: "Approved with 75.0% approval (≥60% required)"},
		Notification: event,
	}

	tm.store.EXPECT().
		CloseVotingPeriod(gomock.Any(), store.CloseVotingInput{
			ApplicationID:     5,
			MinimumVotes:      3,
			ApprovalThreshold: decimal.NewFromInt(60),
			DecidedBy:         &decidedBy,
		}).
		Return(closed, nil)
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), event).
		Return(nil)

	result, err := svc.CloseVotingPeriod(context.Background(), 5, &decidedBy)
	require.NoError(t, err)
	assert.Equal(t, closed, result)
}

func TestService_ProcessExpiredVotingPeriods(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(votingNow)
	tm.store.EXPECT().
		ListExpiredVotingApplications(gomock.Any(), votingNow).
		Return([]*schema.Application{
			testApplication(1, schema.ApplicationStatusVotingOpen),
			testApplication(2, schema.ApplicationStatusVotingOpen),
			testApplication(3, schema.ApplicationStatusVotingOpen),
		}, nil)

	threshold := decimal.NewFromInt(60)
	tm.store.EXPECT().
		CloseVotingPeriod(gomock.Any(), store.CloseVotingInput{ApplicationID: 1, MinimumVotes: 3, ApprovalThreshold: threshold}).
		Return(&store.CloseVotingResult{
			Application: testApplication(1, schema.ApplicationStatusApproved),
			Decision:    domain.VotingDecision{Approved: true},
		}, nil)
	tm.store.EXPECT().
		CloseVotingPeriod(gomock.Any(), store.CloseVotingInput{ApplicationID: 2, MinimumVotes: 3, ApprovalThreshold: threshold}).
		Return(nil, assert.AnError)
	tm.store.EXPECT().
		CloseVotingPeriod(gomock.Any(), store.CloseVotingInput{ApplicationID: 3, MinimumVotes: 3, ApprovalThreshold: threshold}).
		Return(&store.CloseVotingResult{
			Application: testApplication(3, schema.ApplicationStatusRejected),
			Decision:    domain.VotingDecision{Approved: false},
		}, nil)

	result, err := svc.ProcessExpiredVotingPeriods(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Closed)
	assert.Equal(t, 1, result.Approved)
	assert.Equal(t, 1, result.Rejected)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(2), result.Failed[0].ApplicationID)
}

func TestService_SendDeadlineReminders(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	withDeadline := func(id int64, remaining time.Duration, lastTier *int) *schema.Application {
		application := testApplication(id, schema.ApplicationStatusVotingOpen)
		deadline := votingNow.Add(remaining)
		application.VotingDeadline = &deadline
		application.LastReminderTier = lastTier
		return application
	}
	tierSix := 6
	tierTwentyFour := 24

	tm.clock.EXPECT().Now().Return(votingNow)
	tm.store.EXPECT().
		ListOpenVotingApplications(gomock.Any()).
		Return([]*schema.Application{
			// further out than every tier, nothing due
			withDeadline(1, 30*time.Hour, nil),
			// first reminder, catches up to the 24h tier
			withDeadline(2, 10*time.Hour, nil),
			// 6h tier already sent, nothing new due
			withDeadline(3, 5*time.Hour, &tierSix),
			// 24h tier sent earlier, 6h tier now due
			withDeadline(4, 5*time.Hour, &tierTwentyFour),
			// 1h tier due but a concurrent sweep records it first
			withDeadline(5, 45*time.Minute, nil),
		}, nil)

	tm.store.EXPECT().
		ListApplicationVotes(gomock.Any(), int64(2)).
		Return([]*schema.ApplicationVote{{Vote: domain.VoteChoiceYes}, {Vote: domain.VoteChoiceNo}}, nil)
	tm.store.EXPECT().
		ListApplicationVotes(gomock.Any(), int64(4)).
		Return(nil, nil)
	tm.store.EXPECT().
		ListApplicationVotes(gomock.Any(), int64(5)).
		Return(nil, nil)

	reminders := make(map[int64]store.MarkReminderInput)
	tm.store.EXPECT().
		MarkReminderSent(gomock.Any(), gomock.AssignableToTypeOf(store.MarkReminderInput{})).
		DoAndReturn(func(_ context.Context, input store.MarkReminderInput) (bool, error) {
			reminders[input.ApplicationID] = input
			return input.ApplicationID != 5, nil
		}).
		Times(3)
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	result, err := svc.SendDeadlineReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Empty(t, result.Failed)

	require.Contains(t, reminders, int64(2))
	assert.Equal(t, 24, reminders[2].Tier)
	var payload domain.VotingReminderPayload
	require.NoError(t, json.Unmarshal(reminders[2].Notification.Payload, &payload))
	assert.Equal(t, 10, payload.HoursRemaining)
	assert.Equal(t, 2, payload.VotesCast)

	require.Contains(t, reminders, int64(4))
	assert.Equal(t, 6, reminders[4].Tier)

	require.Contains(t, reminders, int64(5))
	assert.Equal(t, 1, reminders[5].Tier)
}

func TestService_ProcessApprovedApplication(t *testing.T) {
	cfg := recruitment.Config{
		StartingPoints: decimal.NewFromInt(50),
		DefaultRank:    "Trial Member",
		DefaultGroups:  []string{"Guild Members", "Voting Members"},
	}
	svc, tm := setupTestRecruitment(t, cfg)
	defer tm.ctrl.Finish()

	performedBy := int64(3)
	event := mustEvent(t, domain.NotificationCharacterCreated, domain.CharacterPayload{CharacterID: 77})
	provisioned := &store.ProvisionResult{
		Application:    testApplication(5, schema.ApplicationStatusApproved),
		User:           &schema.User{ID: 42, Username: "gandalf"},
		Character:      &schema.Character{ID: 77, Name: "Gandalf"},
		Username:       "gandalf",
		RankAssigned:   "Trial Member",
		GroupsAssigned: []string{"Guild Members", "Voting Members"},
		Notification:   event,
	}

	tm.store.EXPECT().
		ProvisionApplication(gomock.Any(), store.ProvisionInput{
			ApplicationID:  5,
			Force:          false,
			StartingPoints: decimal.NewFromInt(50),
			RankName:       "Trial Member",
			GroupNames:     []string{"Guild Members", "Voting Members"},
			PerformedBy:    &performedBy,
			ProcessedBy:    "officer_jane",
		}).
		Return(provisioned, nil)
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), event).
		Return(nil)

	result, err := svc.ProcessApprovedApplication(context.Background(), 5, "officer_jane", &performedBy, false)
	require.NoError(t, err)
	assert.Equal(t, provisioned, result)
}

func TestService_ProcessMultipleApplications(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		ProvisionApplication(gomock.Any(), gomock.AssignableToTypeOf(store.ProvisionInput{})).
		DoAndReturn(func(_ context.Context, input store.ProvisionInput) (*store.ProvisionResult, error) {
			if input.ApplicationID == 2 {
				return nil, assert.AnError
			}
			return &store.ProvisionResult{
				Application: testApplication(input.ApplicationID, schema.ApplicationStatusApproved),
				User:        &schema.User{ID: 100 + input.ApplicationID},
				Character:   &schema.Character{ID: 200 + input.ApplicationID},
				Username:    "someone",
			}, nil
		}).
		Times(2)

	result, err := svc.ProcessMultipleApplications(context.Background(), []int64{1, 2}, "system", nil)
	require.NoError(t, err)
	require.Len(t, result.Provisioned, 1)
	assert.Equal(t, int64(1), result.Provisioned[0].Application.ID)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(2), result.Failed[0].ApplicationID)
}

func TestService_ApplicationsReadyForProcessing_DefaultLimit(t *testing.T) {
	svc, tm := setupTestRecruitment(t, recruitment.Config{})
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		ListApplicationsReadyForProcessing(gomock.Any(), 10).
		Return([]*schema.Application{testApplication(5, schema.ApplicationStatusApproved)}, nil)

	applications, err := svc.ApplicationsReadyForProcessing(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, applications, 1)
}
