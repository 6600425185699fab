package schema

import (
	"time"

	"gorm.io/datatypes"
)

// OutboxStatus is the delivery status of an outbox row
type OutboxStatus string

const (
	// OutboxStatusPending is a row not yet picked up by a dispatcher
	OutboxStatusPending OutboxStatus = "pending"
	// OutboxStatusDelivering is a row claimed by a dispatcher
	OutboxStatusDelivering OutboxStatus = "delivering"
	// OutboxStatusSucceeded is a row delivered to Discord
	OutboxStatusSucceeded OutboxStatus = "succeeded"
	// OutboxStatusFailed is a row that exhausted its delivery attempts
	OutboxStatusFailed OutboxStatus = "failed"
)

// NotificationOutbox represents the notification_outbox table - the durable
// outbox for Discord notifications. Rows are written in the same transaction
// as the domain mutation that produced the event, then dispatched
// at-least-once by the notifier: the live path consumes the broker event,
// the sweeper re-dispatches rows the broker missed.
type NotificationOutbox struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is a unique identifier for this event (ULID for time-sortable uniqueness)
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:varchar(26)"`
	// EventType is the notification type being delivered (e.g., "voting_opened")
	EventType string `gorm:"column:event_type;not null;type:varchar(50)"`
	// Channel routes the notification to a configured Discord webhook
	Channel string `gorm:"column:channel;not null;default:general;type:varchar(50)"`
	// Payload is the complete notification payload as JSON
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// Status indicates the current delivery state: pending, delivering, succeeded, failed
	Status OutboxStatus `gorm:"column:status;not null;default:pending;index:idx_notification_outbox_status_next,priority:1"`
	// Attempts is the number of delivery attempts made
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// LastAttemptAt is the timestamp of the most recent delivery attempt
	LastAttemptAt *time.Time `gorm:"column:last_attempt_at;type:timestamptz"`
	// NextAttemptAt is when the sweeper may retry the row; nil means immediately
	NextAttemptAt *time.Time `gorm:"column:next_attempt_at;index:idx_notification_outbox_status_next,priority:2;type:timestamptz"`
	// ResponseStatus is the HTTP status code from the Discord webhook
	ResponseStatus *int `gorm:"column:response_status"`
	// ErrorMessage contains error details if delivery failed
	ErrorMessage string `gorm:"column:error_message;type:text"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NotificationOutbox model
func (NotificationOutbox) TableName() string {
	return "notification_outbox"
}
