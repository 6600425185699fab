package discord_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/discord"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/mocks"
)

func TestCircuitBreaker_ClosedAllowsDeliveries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	breaker := discord.NewCircuitBreaker(3, time.Minute, mocks.NewMockClock(ctrl))

	assert.NoError(t, breaker.Allow())
	assert.Equal(t, discord.BreakerClosed, breaker.State())
}

func TestCircuitBreaker_OpensAtFailureThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(failedAt).Times(3)

	breaker := discord.NewCircuitBreaker(3, time.Minute, clock)

	breaker.RecordFailure()
	breaker.RecordFailure()
	assert.Equal(t, discord.BreakerClosed, breaker.State())

	breaker.RecordFailure()
	assert.Equal(t, discord.BreakerOpen, breaker.State())

	// Inside the recovery window deliveries are rejected
	clock.EXPECT().Since(failedAt).Return(10 * time.Second)
	assert.ErrorIs(t, breaker.Allow(), discord.ErrBreakerOpen)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(failedAt).Times(4)

	breaker := discord.NewCircuitBreaker(3, time.Minute, clock)

	breaker.RecordFailure()
	breaker.RecordFailure()
	breaker.RecordSuccess()

	// The count restarted, so two more failures stay under the threshold
	breaker.RecordFailure()
	breaker.RecordFailure()
	assert.Equal(t, discord.BreakerClosed, breaker.State())
	assert.NoError(t, breaker.Allow())
}

func TestCircuitBreaker_HalfOpenProbeSuccessCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(failedAt).Times(3)

	breaker := discord.NewCircuitBreaker(3, time.Minute, clock)
	breaker.RecordFailure()
	breaker.RecordFailure()
	breaker.RecordFailure()
	require.Equal(t, discord.BreakerOpen, breaker.State())

	// After the recovery timeout a probe delivery is allowed through
	clock.EXPECT().Since(failedAt).Return(2 * time.Minute)
	require.NoError(t, breaker.Allow())
	assert.Equal(t, discord.BreakerHalfOpen, breaker.State())

	breaker.RecordSuccess()
	assert.Equal(t, discord.BreakerClosed, breaker.State())
}

func TestCircuitBreaker_HalfOpenProbeFailureReopens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(failedAt).Times(4)

	breaker := discord.NewCircuitBreaker(3, time.Minute, clock)
	breaker.RecordFailure()
	breaker.RecordFailure()
	breaker.RecordFailure()

	clock.EXPECT().Since(failedAt).Return(2 * time.Minute)
	require.NoError(t, breaker.Allow())
	require.Equal(t, discord.BreakerHalfOpen, breaker.State())

	// A failed probe reopens the breaker without needing a fresh streak
	breaker.RecordFailure()
	assert.Equal(t, discord.BreakerOpen, breaker.State())

	clock.EXPECT().Since(failedAt).Return(time.Second)
	assert.ErrorIs(t, breaker.Allow(), discord.ErrBreakerOpen)
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(failedAt).Times(5)

	// Non-positive arguments fall back to 5 failures / 60s recovery
	breaker := discord.NewCircuitBreaker(0, 0, clock)

	for range 4 {
		breaker.RecordFailure()
	}
	assert.Equal(t, discord.BreakerClosed, breaker.State())

	breaker.RecordFailure()
	assert.Equal(t, discord.BreakerOpen, breaker.State())

	clock.EXPECT().Since(failedAt).Return(59 * time.Second)
	assert.ErrorIs(t, breaker.Allow(), discord.ErrBreakerOpen)
}
