package repository

import (
	"context"

	"tracker/internal/domain/entity"
)

// NotificationRepository persists notifications produced by the dispatcher.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *entity.Notification) error
}
