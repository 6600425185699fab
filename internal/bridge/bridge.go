package bridge

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/config"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/notification"
)

// notificationSubjects matches every event type published under the guild
// notification stream
const notificationSubjects = "guild.notifications.>"

// Bridge defines the interface for the notification bridge
type Bridge interface {
	// Run starts consuming notification events until the context is canceled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	dispatcher notification.Dispatcher
	json       adapter.JSON
	config     config.NATSConfig
}

// NewBridge creates a new notification bridge
func NewBridge(
	cfg config.NATSConfig,
	natsJS adapter.NatsJetStream,
	dispatcher notification.Dispatcher,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := adapter.DefaultConnectOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	b := &bridge{
		nc:         nc,
		js:         js,
		dispatcher: dispatcher,
		json:       jsonAdapter,
		config:     cfg,
	}

	return b, nil
}

// Run starts the notification bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting notification bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	// Create or get consumer
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWait,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: notificationSubjects,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	// Create subscription
	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	// Process messages
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down notification bridge")
			return ctx.Err()
		case msg := <-msgChan:
			// Spawn goroutine to handle message asynchronously. Concurrent
			// handling is safe because the outbox claim decides the winner.
			go b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	// Get metadata for logging
	metadata, _ := msg.Metadata()
	deliveries := uint64(1)
	if metadata != nil {
		deliveries = metadata.NumDelivered
	}

	// Parse event
	var event domain.NotificationEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}
	if event.EventID == "" {
		logger.Error(fmt.Errorf("event missing event_id"), zap.ByteString("data", msg.Data()))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	logger.Info("Received notification event",
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)),
		zap.String("channel", string(event.Channel)),
		zap.Uint64("deliveryCount", deliveries),
	)

	// Hand the event to the dispatcher. A recorded outcome removes the
	// message from the queue; an error leaves the row state unknown, so the
	// message is NAKed for redelivery.
	outcome, err := b.dispatcher.Dispatch(ctx, event.EventID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("eventID", event.EventID))
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	logger.Debug("Dispatch outcome recorded",
		zap.String("eventID", event.EventID),
		zap.String("outcome", string(outcome)),
	)

	// ACK message after the outcome is recorded
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
