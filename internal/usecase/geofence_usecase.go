package usecase

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceUsecase creates geofences and assigns them to devices.
type GeofenceUsecase interface {
	// CreateGeofence validates the spec, stores the geofence and assigns it to
	// every listed device in one transaction.
	CreateGeofence(ctx context.Context, spec *entity.GeofenceSpec, deviceIDs []uuid.UUID) (*entity.Geofence, error)

	// AssignDevice appends the geofence to the device's evaluation order.
	AssignDevice(ctx context.Context, geofenceID, deviceID uuid.UUID) error
}
