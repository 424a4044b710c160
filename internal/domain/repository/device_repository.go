// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the device operations the telemetry pipeline relies on.
type DeviceRepository interface {
	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceByName retrieves a device, including its broker password, by name.
	FindDeviceByName(ctx context.Context, name string) (*entity.Device, error)

	// FindMonitorableDevices returns every device with both an owner and a guardian.
	FindMonitorableDevices(ctx context.Context) ([]*entity.Device, error)

	// UpdateDeviceStatus persists the liveness status of a device.
	UpdateDeviceStatus(ctx context.Context, id uuid.UUID, status entity.DeviceStatus) error

	// ResetActiveDevices flips every Active device to Inactive and returns how many changed.
	ResetActiveDevices(ctx context.Context) (int64, error)
}
