// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionInfo is a diagnostic snapshot of one device session.
type SessionInfo struct {
	DeviceID    uuid.UUID   `json:"deviceId"`
	DeviceName  string      `json:"deviceName"`
	ChildID     *uuid.UUID  `json:"childId,omitempty"`
	Audience    []uuid.UUID `json:"audience"`
	ActivatedAt time.Time   `json:"activatedAt"`
}

// SessionUsecase owns one broker connection per monitored device.
type SessionUsecase interface {
	// Activate opens a session for the named device. Activating a device that
	// already has a session is a no-op.
	Activate(ctx context.Context, deviceName string) error

	// Deactivate closes the device's session. Unknown names are a no-op.
	Deactivate(ctx context.Context, deviceName string) error

	// Start resets stale Active statuses and activates every monitorable device.
	Start(ctx context.Context) error

	// Shutdown deactivates every session.
	Shutdown(ctx context.Context) error

	// Sessions returns the current sessions ordered by device name.
	Sessions() []SessionInfo
}
