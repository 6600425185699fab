package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
)

// maxResponseBodySize caps how much of a Discord response body is kept
const maxResponseBodySize = 4 * 1024

const userAgent = "Kromrif-Planning-Notifier/1.0"

// Client delivers rendered webhook messages to Discord
//
//go:generate mockgen -source=client.go -destination=../mocks/discord.go -package=mocks -mock_names=Client=MockDiscordClient
type Client interface {
	// Send posts the payload to the webhook URL, retrying transient
	// failures with exponential backoff behind the circuit breaker. The
	// returned result carries the final status code and attempt count even
	// when delivery failed.
	Send(ctx context.Context, webhookURL string, payload *WebhookPayload) (*DeliveryResult, error)
}

type client struct {
	httpClient  adapter.HTTPClient
	jsonAdapter adapter.JSON
	ioAdapter   adapter.IO
	breaker     *CircuitBreaker

	maxRetries     uint64
	retryBaseDelay time.Duration
	retryMaxDelay  time.Duration
}

// NewClient creates a Discord webhook client with the configured retry and
// circuit breaker policy. One breaker guards all webhooks the client posts
// to, matching Discord treating sustained failures account-wide.
func NewClient(
	cfg config.DiscordConfig,
	httpClient adapter.HTTPClient,
	jsonAdapter adapter.JSON,
	ioAdapter adapter.IO,
	clock adapter.Clock,
) Client {
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	retryBaseDelay := cfg.RetryBaseDelay
	if retryBaseDelay <= 0 {
		retryBaseDelay = time.Second
	}
	retryMaxDelay := cfg.RetryMaxDelay
	if retryMaxDelay <= 0 {
		retryMaxDelay = 60 * time.Second
	}

	return &client{
		httpClient:     httpClient,
		jsonAdapter:    jsonAdapter,
		ioAdapter:      ioAdapter,
		breaker:        NewCircuitBreaker(cfg.BreakerThreshold, cfg.BreakerRecovery, clock),
		maxRetries:     uint64(maxRetries),
		retryBaseDelay: retryBaseDelay,
		retryMaxDelay:  retryMaxDelay,
	}
}

// Send posts the payload to a Discord webhook. Discord returns 204 on
// success; 429 is retried honoring the server's retry-after, 5xx and
// network errors are retried with exponential backoff, and any other 4xx
// fails immediately.
func (c *client) Send(ctx context.Context, webhookURL string, payload *WebhookPayload) (*DeliveryResult, error) {
	if err := c.breaker.Allow(); err != nil {
		return nil, err
	}

	body, err := c.jsonAdapter.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	result := &DeliveryResult{}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryBaseDelay
	b.MaxInterval = c.retryMaxDelay
	b.MaxElapsedTime = 0 // bounded by max retries and ctx instead
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	rb := &retryAfterBackOff{BackOff: b}

	operation := func() error {
		result.Attempts++

		// A fresh request per attempt: the body reader is consumed by a send
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err))
			}
		}()

		respBody, err := c.ioAdapter.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		if err != nil {
			logger.WarnCtx(ctx, "failed to read response body", zap.Error(err))
			respBody = []byte{}
		}

		result.StatusCode = resp.StatusCode
		result.Body = string(respBody)

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			// Discord returns 204 No Content on accepted webhook posts
			result.Success = true
			return nil

		case resp.StatusCode == http.StatusTooManyRequests:
			rb.retryAfter = c.parseRetryAfter(resp, respBody)
			logger.WarnCtx(ctx, "Discord rate limited, retrying with backoff",
				zap.Duration("retryAfter", rb.retryAfter))
			return fmt.Errorf("rate limited (429), retrying")

		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			// Client errors will not heal on retry
			return backoff.Permanent(fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody)))

		default:
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
		}
	}

	notify := func(err error, delay time.Duration) {
		logger.WarnCtx(ctx, "Retrying Discord webhook delivery",
			zap.Error(err),
			zap.Duration("delay", delay),
			zap.Int("attempt", result.Attempts))
	}

	err = backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(rb, c.maxRetries), ctx), notify)
	if err != nil {
		c.breaker.RecordFailure()
		return result, fmt.Errorf("failed to deliver webhook message: %w", err)
	}

	c.breaker.RecordSuccess()
	return result, nil
}

// parseRetryAfter extracts the retry-after duration from a 429 response,
// preferring the header over the JSON body. Discord reports seconds,
// possibly fractional. Falls back to one second.
func (c *client) parseRetryAfter(resp *http.Response, body []byte) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil && secs > 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}

	var rl struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := c.jsonAdapter.Unmarshal(body, &rl); err == nil && rl.RetryAfter > 0 {
		return time.Duration(rl.RetryAfter * float64(time.Second))
	}

	return time.Second
}

// retryAfterBackOff stretches the next computed delay to honor a
// server-requested retry-after when that is longer than the exponential
// delay. The stretch applies to one delay only.
type retryAfterBackOff struct {
	backoff.BackOff
	retryAfter time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return backoff.Stop
	}
	if b.retryAfter > next {
		next = b.retryAfter
	}
	b.retryAfter = 0
	return next
}
