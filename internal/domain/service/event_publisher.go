package service

import (
	"context"
)

// SubscriptionChangedEvent is published after a reconciliation step changed a subscription row.
type SubscriptionChangedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`             // Provider event id
	Source    string `json:"source"`               // Provider event type
	UserID    string `json:"user_id"`
	Plan      string `json:"plan"`
	Status    string `json:"status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSubscriptionChanged publishes an event for async processing
	PublishSubscriptionChanged(ctx context.Context, event *SubscriptionChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
