package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types written by the dispatcher.
const (
	NotificationTypeGeofenceAlert = "Geofence Alert"
	NotificationTypeDangerAlert   = "Danger Alert"
)

// Notification is the durable record of an alert addressed to one user.
type Notification struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}
