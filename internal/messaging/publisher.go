package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
)

// Publisher defines the interface for publishing notification events to the
// message queue. Publishing happens after the producing transaction commits;
// a failed publish is recoverable because the outbox sweeper redelivers.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a notification event to the message broker
	PublishEvent(ctx context.Context, event *domain.NotificationEvent) error
	// Close closes the connection
	Close()
}

// PublishCommitted publishes an event whose outbox row is already committed.
// A failed publish only delays delivery until the next outbox sweep, so it is
// logged and swallowed rather than surfaced to the caller.
func PublishCommitted(ctx context.Context, pub Publisher, event *domain.NotificationEvent) {
	if event == nil {
		return
	}
	if err := pub.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish committed notification, sweeper will redeliver",
			zap.String("eventID", event.EventID),
			zap.String("eventType", string(event.EventType)),
			zap.Error(err))
	}
}
