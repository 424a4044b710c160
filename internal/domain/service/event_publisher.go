package service

import (
	"context"
	"time"
)

// NotificationEvent is the exported form of a persisted notification.
type NotificationEvent struct {
	RequestID      string         `json:"request_id,omitempty"` // trace ID of the request or telemetry message
	NotificationID string         `json:"notification_id"`
	UserID         string         `json:"user_id"`
	Type           string         `json:"type"`
	Data           map[string]any `json:"data"`
	CreatedAt      time.Time      `json:"created_at"`
}

// EventPublisher exports notifications to an external message queue.
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification for downstream consumers
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
