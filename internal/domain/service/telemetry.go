package service

import "context"

// TelemetryKind distinguishes the two per-device topics.
type TelemetryKind int

const (
	TelemetryLocation TelemetryKind = iota + 1
	TelemetryDanger
)

func (k TelemetryKind) String() string {
	switch k {
	case TelemetryLocation:
		return "location"
	case TelemetryDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// TelemetryMessage is a raw message received on a device topic.
type TelemetryMessage struct {
	Kind    TelemetryKind
	Topic   string
	Payload []byte
}

// TelemetryHandler is invoked for every message on a device connection.
type TelemetryHandler func(msg TelemetryMessage)

// DeviceCredentials authenticate a device connection against the broker.
type DeviceCredentials struct {
	DeviceName string
	Password   string
}

// TelemetryConnector opens one broker connection per device.
type TelemetryConnector interface {
	// Connect starts a connection subscribed to the device's location and danger topics.
	// The connection keeps reconnecting in the background until closed.
	Connect(ctx context.Context, creds DeviceCredentials, handler TelemetryHandler) (TelemetryConnection, error)
}

// TelemetryConnection is a live device connection.
type TelemetryConnection interface {
	// Close stops reconnecting and disconnects. No handler call starts after Close returns.
	Close()
}
