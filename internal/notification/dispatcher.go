package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/discord"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/ratelimit"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

// defaultWebhookName keys the shared limiter bucket for channels without a
// dedicated webhook
const defaultWebhookName = "default"

// Outcome describes what happened to one outbox row during a dispatch
type Outcome string

const (
	// OutcomeDelivered means Discord accepted the message
	OutcomeDelivered Outcome = "delivered"
	// OutcomeSkipped means another dispatcher holds the claim or the row is
	// already finished
	OutcomeSkipped Outcome = "skipped"
	// OutcomeRetryScheduled means delivery failed and the row went back to
	// pending for the sweeper
	OutcomeRetryScheduled Outcome = "retry_scheduled"
	// OutcomeFailed means the row was finalized without delivery
	OutcomeFailed Outcome = "failed"
)

// Dispatcher claims outbox rows and delivers them to Discord through the
// rate limiter. The live consumer and the sweeper share one dispatcher; the
// claim decides which of them delivers an event.
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks
type Dispatcher interface {
	// Dispatch claims the outbox row for an event and delivers it. A nil
	// error with OutcomeSkipped, OutcomeRetryScheduled or OutcomeFailed is a
	// recorded outcome; a non-nil error means the row state is unknown and
	// the caller should redeliver.
	Dispatch(ctx context.Context, eventID string) (Outcome, error)

	// Sweep dispatches retry-due and stale rows the broker path missed,
	// returning how many rows it claimed
	Sweep(ctx context.Context) (int, error)
}

type dispatcher struct {
	store  store.Store
	client discord.Client
	proxy  ratelimit.Proxy
	clock  adapter.Clock

	webhooks   map[string]string
	defaultURL string

	staleAfter  time.Duration
	batchSize   int
	maxAttempts int
	retryBase   time.Duration
	retryMax    time.Duration
}

// NewDispatcher creates a dispatcher with the configured webhook routing and
// retry schedule
func NewDispatcher(
	st store.Store,
	client discord.Client,
	proxy ratelimit.Proxy,
	clock adapter.Clock,
	discordCfg config.DiscordConfig,
	outboxCfg config.OutboxConfig,
) Dispatcher {
	staleAfter := outboxCfg.StaleAfter
	if staleAfter <= 0 {
		staleAfter = 2 * time.Minute
	}
	batchSize := outboxCfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	maxAttempts := outboxCfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	retryBase := outboxCfg.RetryBase
	if retryBase <= 0 {
		retryBase = 30 * time.Second
	}
	retryMax := outboxCfg.RetryMax
	if retryMax <= 0 {
		retryMax = time.Hour
	}

	return &dispatcher{
		store:       st,
		client:      client,
		proxy:       proxy,
		clock:       clock,
		webhooks:    discordCfg.Webhooks,
		defaultURL:  discordCfg.DefaultWebhookURL,
		staleAfter:  staleAfter,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		retryBase:   retryBase,
		retryMax:    retryMax,
	}
}

// WebhookNames returns the limiter bucket names for the configured webhooks,
// always including the shared default bucket
func WebhookNames(cfg config.DiscordConfig) []string {
	names := make([]string, 0, len(cfg.Webhooks)+1)
	for name := range cfg.Webhooks {
		names = append(names, name)
	}
	names = append(names, defaultWebhookName)
	sort.Strings(names)
	return names
}

func (d *dispatcher) Dispatch(ctx context.Context, eventID string) (Outcome, error) {
	now := d.clock.Now().UTC()

	row, err := d.store.ClaimOutboxRow(ctx, eventID, now, d.staleAfter)
	if err != nil {
		return "", fmt.Errorf("failed to claim event %s: %w", eventID, err)
	}
	if row == nil {
		logger.DebugCtx(ctx, "Outbox row already claimed or finished",
			zap.String("eventID", eventID))
		return OutcomeSkipped, nil
	}

	event := &domain.NotificationEvent{
		EventID:   row.EventID,
		EventType: domain.NotificationType(row.EventType),
		Channel:   domain.NotificationChannel(row.Channel),
		Timestamp: row.CreatedAt,
		Payload:   json.RawMessage(row.Payload),
	}

	msg, err := discord.RenderEvent(event)
	if err != nil {
		// A payload that does not decode never heals, so the row is
		// finalized instead of burning retries on it
		return d.finalize(ctx, row, err, now)
	}

	webhookURL, limiterName := d.webhookFor(row.Channel)
	if webhookURL == "" {
		return d.recordFailure(ctx, row, fmt.Errorf("no webhook configured for channel %q", row.Channel), nil, now)
	}

	value, err := d.proxy.Request(ctx, limiterName, func(ctx context.Context) (interface{}, error) {
		return d.client.Send(ctx, webhookURL, msg)
	})
	if err != nil {
		return d.recordFailure(ctx, row, err, nil, now)
	}

	result, ok := value.(*discord.DeliveryResult)
	if !ok || result == nil {
		return d.recordFailure(ctx, row, fmt.Errorf("unexpected delivery result type %T", value), nil, now)
	}

	if err := d.store.MarkOutboxDelivered(ctx, row.EventID, result.StatusCode, d.clock.Now().UTC()); err != nil {
		return "", fmt.Errorf("failed to record delivery of event %s: %w", eventID, err)
	}

	logger.InfoCtx(ctx, "Delivered notification",
		zap.String("eventID", row.EventID),
		zap.String("eventType", row.EventType),
		zap.String("channel", row.Channel),
		zap.Int("statusCode", result.StatusCode),
		zap.Int("attempts", row.Attempts))
	return OutcomeDelivered, nil
}

func (d *dispatcher) Sweep(ctx context.Context) (int, error) {
	now := d.clock.Now().UTC()

	rows, err := d.store.ListDispatchableOutboxRows(ctx, now, d.staleAfter, d.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list dispatchable rows: %w", err)
	}

	dispatched := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			return dispatched, ctx.Err()
		}

		outcome, err := d.Dispatch(ctx, row.EventID)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("eventID", row.EventID))
			continue
		}
		if outcome != OutcomeSkipped {
			dispatched++
		}
	}
	return dispatched, nil
}

// webhookFor resolves a channel to its webhook URL and limiter bucket.
// Unmapped channels share the default webhook and its bucket.
func (d *dispatcher) webhookFor(channel string) (string, string) {
	if url, ok := d.webhooks[channel]; ok && url != "" {
		return url, channel
	}
	return d.defaultURL, defaultWebhookName
}

// recordFailure books a failed attempt, scheduling a retry while attempts
// remain and finalizing the row once they are exhausted
func (d *dispatcher) recordFailure(ctx context.Context, row *schema.NotificationOutbox, deliveryErr error, result *discord.DeliveryResult, now time.Time) (Outcome, error) {
	input := store.MarkOutboxFailedInput{
		EventID:      row.EventID,
		ErrorMessage: deliveryErr.Error(),
		Now:          now,
	}
	if result != nil && result.StatusCode != 0 {
		input.ResponseStatus = &result.StatusCode
	}

	outcome := OutcomeFailed
	if row.Attempts < d.maxAttempts {
		next := now.Add(d.retryDelay(row.Attempts))
		input.NextAttemptAt = &next
		outcome = OutcomeRetryScheduled
	}

	if err := d.store.MarkOutboxFailed(ctx, input); err != nil {
		return "", fmt.Errorf("failed to record delivery failure of event %s: %w", row.EventID, err)
	}

	if outcome == OutcomeRetryScheduled {
		logger.WarnCtx(ctx, "Notification delivery failed, retry scheduled",
			zap.String("eventID", row.EventID),
			zap.String("eventType", row.EventType),
			zap.Int("attempts", row.Attempts),
			zap.Timep("nextAttemptAt", input.NextAttemptAt),
			zap.Error(deliveryErr))
	} else {
		logger.ErrorCtx(ctx, deliveryErr,
			zap.String("eventID", row.EventID),
			zap.String("eventType", row.EventType),
			zap.Int("attempts", row.Attempts),
			zap.String("outcome", "gave up"))
	}
	return outcome, nil
}

// finalize marks a row failed with no retry
func (d *dispatcher) finalize(ctx context.Context, row *schema.NotificationOutbox, cause error, now time.Time) (Outcome, error) {
	input := store.MarkOutboxFailedInput{
		EventID:      row.EventID,
		ErrorMessage: cause.Error(),
		Now:          now,
	}
	if err := d.store.MarkOutboxFailed(ctx, input); err != nil {
		return "", fmt.Errorf("failed to finalize event %s: %w", row.EventID, err)
	}

	logger.ErrorCtx(ctx, cause,
		zap.String("eventID", row.EventID),
		zap.String("eventType", row.EventType),
		zap.String("outcome", "unrenderable"))
	return OutcomeFailed, nil
}

// retryDelay doubles from the base per booked attempt, capped at the max
func (d *dispatcher) retryDelay(attempts int) time.Duration {
	delay := d.retryBase
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= d.retryMax {
			return d.retryMax
		}
	}
	if delay > d.retryMax {
		return d.retryMax
	}
	return delay
}
