package usecase

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRequest describes a notification addressed to one user.
type NotificationRequest struct {
	UserID uuid.UUID
	Type   string
	Data   map[string]any
}

// NotificationUsecase persists notifications and announces them.
type NotificationUsecase interface {
	// Dispatch stores the notification, publishes newNotification to the user
	// and exports it. Requests for users that no longer exist are dropped.
	Dispatch(ctx context.Context, req NotificationRequest) error

	// HandleDangerAlert turns a dangerAlert event into a "Danger Alert" notification.
	HandleDangerAlert(ctx context.Context, event entity.Event)
}
