package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the liveness state persisted on a device.
type DeviceStatus int

const (
	DeviceStatusUnknown  DeviceStatus = 0
	DeviceStatusActive   DeviceStatus = 1
	DeviceStatusInactive DeviceStatus = 2
)

func (s DeviceStatus) String() string {
	switch s {
	case DeviceStatusActive:
		return "active"
	case DeviceStatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Device is a physical tracker that publishes telemetry under its own broker credentials.
type Device struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`      // Broker username and topic suffix.
	Password  string       `json:"-"`         // Broker password.
	UserID    *uuid.UUID   `json:"user_id"`   // Owning child, nil when unassigned.
	ParentID  *uuid.UUID   `json:"parent_id"` // Managing guardian, nil when unassigned.
	Status    DeviceStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Monitorable reports whether the device has both an owner and a guardian,
// the precondition for opening a session at startup.
func (d *Device) Monitorable() bool {
	return d != nil && d.UserID != nil && d.ParentID != nil
}
