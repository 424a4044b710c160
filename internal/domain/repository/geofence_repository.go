package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrGeofenceNotFound is returned when a geofence is not found.
	ErrGeofenceNotFound = errors.New("geofence not found")
	// ErrDuplicateAssignment is returned when a device is already assigned to a geofence.
	ErrDuplicateAssignment = errors.New("geofence already assigned to device")
)

// GeofenceRepository defines geofence persistence and the geofence/device assignment join.
type GeofenceRepository interface {
	// CreateGeofence persists a normalized geofence.
	CreateGeofence(ctx context.Context, geofence *entity.Geofence) error

	// AssignDevice links a geofence to a device.
	AssignDevice(ctx context.Context, geofenceID, deviceID uuid.UUID) error

	// FindGeofencesByDevice returns the geofences assigned to a device in assignment order.
	FindGeofencesByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Geofence, error)
}
