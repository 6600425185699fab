package discord_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/discord"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testWebhookURL = "https://discord.com/api/webhooks/123/token"

// testClientMocks contains the mocks needed for testing the client
type testClientMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	clock      *mocks.MockClock
}

// setupTestClient creates a client on mocked transport with fast retries
func setupTestClient(t *testing.T, cfg config.DiscordConfig) (discord.Client, *testClientMocks) {
	ctrl := gomock.NewController(t)

	tm := &testClientMocks{
		ctrl:       ctrl,
		httpClient: mocks.NewMockHTTPClient(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}

	client := discord.NewClient(cfg, tm.httpClient, adapter.NewJSON(), adapter.NewIO(), tm.clock)
	return client, tm
}

func testDiscordConfig() config.DiscordConfig {
	return config.DiscordConfig{
		MaxRetries:       3,
		RetryBaseDelay:   time.Millisecond,
		RetryMaxDelay:    5 * time.Millisecond,
		BreakerThreshold: 5,
		BreakerRecovery:  time.Minute,
	}
}

func httpResponse(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Send_Success(t *testing.T) {
	client, tm := setupTestClient(t, testDiscordConfig())
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, testWebhookURL, req.URL.String())
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.Equal(t, "Kromrif-Planning-Notifier/1.0", req.Header.Get("User-Agent"))

			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"content":"hello"}`, string(body))

			// Discord returns 204 No Content on accepted webhook posts
			return httpResponse(http.StatusNoContent, "", nil), nil
		})

	result, err := client.Send(context.Background(), testWebhookURL, &discord.WebhookPayload{Content: "hello"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, http.StatusNoContent, result.StatusCode)
	assert.Equal(t, 1, result.Attempts)
}

func TestClient_Send_RateLimited_RetriesAfterDelay(t *testing.T) {
	client, tm := setupTestClient(t, testDiscordConfig())
	defer tm.ctrl.Finish()

	rateLimitHeader := http.Header{}
	rateLimitHeader.Set("Retry-After", "0.01")

	gomock.InOrder(
		tm.httpClient.EXPECT().
			Do(gomock.Any()).
			Return(httpResponse(http.StatusTooManyRequests, `{"message":"You are being rate limited.","retry_after":0.01}`, rateLimitHeader), nil),
		tm.httpClient.EXPECT().
			Do(gomock.Any()).
			Return(httpResponse(http.StatusNoContent, "", nil), nil),
	)

	start := time.Now()
	result, err := client.Send(context.Background(), testWebhookURL, &discord.WebhookPayload{Content: "hello"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Attempts)
	// The retry waited at least the server-requested 10ms
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestClient_Send_ClientError_NoRetry(t *testing.T) {
	client, tm := setupTestClient(t, testDiscordConfig())
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Do(gomock.Any()).
		Return(httpResponse(http.StatusBadRequest, `{"message":"Invalid Webhook Token"}`, nil), nil)
	tm.clock.EXPECT().Now().Return(time.Now())

	result, err := client.Send(context.Background(), testWebhookURL, &discord.WebhookPayload{Content: "hello"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 400")
	assert.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, 1, result.Attempts)
	assert.Contains(t, result.Body, "Invalid Webhook Token")
}

func TestClient_Send_ServerError_ExhaustsRetries(t *testing.T) {
	cfg := testDiscordConfig()
	cfg.MaxRetries = 2

	client, tm := setupTestClient(t, cfg)
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Do(gomock.Any()).
		Return(httpResponse(http.StatusInternalServerError, "upstream error", nil), nil).
		Times(3)
	tm.clock.EXPECT().Now().Return(time.Now())

	result, err := client.Send(context.Background(), testWebhookURL, &discord.WebhookPayload{Content: "hello"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.False(t, result.Success)
	// The initial attempt plus two retries
	assert.Equal(t, 3, result.Attempts)
}

func TestClient_Send_NetworkError_Retries(t *testing.T) {
	client, tm := setupTestClient(t, testDiscordConfig())
	defer tm.ctrl.Finish()

	gomock.InOrder(
		tm.httpClient.EXPECT().
			Do(gomock.Any()).
			Return(nil, errors.New("connection reset by peer")),
		tm.httpClient.EXPECT().
			Do(gomock.Any()).
			Return(httpResponse(http.StatusNoContent, "", nil), nil),
	)

	result, err := client.Send(context.Background(), testWebhookURL, &discord.WebhookPayload{Content: "hello"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Attempts)
}

func TestClient_Send_ContextCanceled(t *testing.T) {
	client, tm := setupTestClient(t, testDiscordConfig())
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Do(gomock.Any()).
		Return(httpResponse(http.StatusInternalServerError, "upstream error", nil), nil)
	tm.clock.EXPECT().Now().Return(time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := client.Send(ctx, testWebhookURL, &discord.WebhookPayload{Content: "hello"})

	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Attempts)
}

func TestClient_Send_BreakerOpensAfterFailures(t *testing.T) {
	cfg := testDiscordConfig()
	cfg.MaxRetries = 0
	cfg.BreakerThreshold = 2

	client, tm := setupTestClient(t, cfg)
	defer tm.ctrl.Finish()

	// Two failed deliveries open the breaker
	tm.httpClient.EXPECT().
		Do(gomock.Any()).
		Return(httpResponse(http.StatusBadRequest, "bad request", nil), nil).
		Times(2)
	tm.clock.EXPECT().Now().Return(time.Now()).Times(2)

	ctx := context.Background()
	payload := &discord.WebhookPayload{Content: "hello"}

	_, err := client.Send(ctx, testWebhookURL, payload)
	require.Error(t, err)
	_, err = client.Send(ctx, testWebhookURL, payload)
	require.Error(t, err)

	// The third delivery is rejected without touching the network
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second)

	result, err := client.Send(ctx, testWebhookURL, payload)
	assert.ErrorIs(t, err, discord.ErrBreakerOpen)
	assert.Nil(t, result)
}
