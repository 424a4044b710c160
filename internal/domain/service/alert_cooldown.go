package service

import (
	"context"

	"github.com/google/uuid"
)

// AlertCooldown remembers, per user, the last device that produced a geofence
// alert so repeats within the cooldown window can be suppressed.
type AlertCooldown interface {
	// Suppressed reports whether the user was alerted about this device within the window.
	Suppressed(ctx context.Context, userID, deviceID uuid.UUID) (bool, error)

	// Mark records an alert for the user about the device and restarts the window.
	Mark(ctx context.Context, userID, deviceID uuid.UUID) error

	// Close releases timers or connections held by the cache.
	Close() error
}
