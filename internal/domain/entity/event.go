package entity

import "github.com/google/uuid"

// EventKind names an event on the in-process bus. The value doubles as the
// push event name sent to websocket clients.
type EventKind string

const (
	EventDeviceChange       EventKind = "deviceChange"
	EventDeviceStatusUpdate EventKind = "deviceStatusUpdate"
	EventDangerAlert        EventKind = "dangerAlert"
	EventNewNotification    EventKind = "newNotification"
)

// Event is addressed to exactly one user.
type Event struct {
	Kind    EventKind
	UserID  uuid.UUID
	Payload any
}

type DeviceChangeAction string

const (
	DeviceChangeAdded   DeviceChangeAction = "added"
	DeviceChangeRemoved DeviceChangeAction = "removed"
)

type DeviceChangePayload struct {
	Action   DeviceChangeAction `json:"action"`
	DeviceID uuid.UUID          `json:"deviceId"`
}

type DeviceStatusPayload struct {
	DeviceID uuid.UUID    `json:"deviceId"`
	Status   DeviceStatus `json:"status"`
}

type DangerAlertPayload struct {
	ChildID  *uuid.UUID `json:"childId,omitempty"`
	DeviceID uuid.UUID  `json:"deviceId"`
	Location GeoPoint   `json:"location"`
}

type NewNotificationPayload struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
	// Notification carries the persisted row for clients that list history.
	Notification *Notification `json:"notification,omitempty"`
}
