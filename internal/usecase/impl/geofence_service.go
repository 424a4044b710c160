package impl

import (
	"context"
	"log/slog"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/errors"
	"tracker/internal/usecase"

	"github.com/google/uuid"
)

type geofenceService struct {
	txManager repository.TransactionManager
	geofences service.GeofenceService
	logger    *slog.Logger
}

// NewGeofenceService creates a new geofence use case.
func NewGeofenceService(
	txManager repository.TransactionManager,
	geofences service.GeofenceService,
	logger *slog.Logger,
) usecase.GeofenceUsecase {
	return &geofenceService{
		txManager: txManager,
		geofences: geofences,
		logger:    logger,
	}
}

func (s *geofenceService) CreateGeofence(ctx context.Context, spec *entity.GeofenceSpec, deviceIDs []uuid.UUID) (*entity.Geofence, error) {
	geofence, err := s.geofences.Build(spec)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		deviceRepo := txRepoFactory.DeviceRepo()
		geofenceRepo := txRepoFactory.GeofenceRepo()

		for _, deviceID := range deviceIDs {
			if _, err := deviceRepo.FindDeviceByID(ctx, deviceID); err != nil {
				return mapDeviceError(err, deviceID)
			}
		}

		if err := geofenceRepo.CreateGeofence(ctx, geofence); err != nil {
			return errors.Wrap(err, "create geofence")
		}

		for _, deviceID := range deviceIDs {
			if err := geofenceRepo.AssignDevice(ctx, geofence.ID, deviceID); err != nil {
				return mapAssignError(err, geofence.ID, deviceID)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("[Geofence] Created",
		slog.String("geofence_id", geofence.ID.String()),
		slog.String("type", string(geofence.Type)),
		slog.Int("devices", len(deviceIDs)),
	)

	return geofence, nil
}

func (s *geofenceService) AssignDevice(ctx context.Context, geofenceID, deviceID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if _, err := txRepoFactory.DeviceRepo().FindDeviceByID(ctx, deviceID); err != nil {
			return mapDeviceError(err, deviceID)
		}

		if err := txRepoFactory.GeofenceRepo().AssignDevice(ctx, geofenceID, deviceID); err != nil {
			return mapAssignError(err, geofenceID, deviceID)
		}

		return nil
	})
}

func mapDeviceError(err error, deviceID uuid.UUID) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound.WithDetails(deviceID.String())
	}

	return errors.Wrap(err, "load device")
}

func mapAssignError(err error, geofenceID, deviceID uuid.UUID) error {
	switch {
	case errors.Is(err, repository.ErrGeofenceNotFound):
		return domainerrors.ErrGeofenceNotFound.WithDetails(geofenceID.String())
	case errors.Is(err, repository.ErrDuplicateAssignment):
		return domainerrors.ErrDuplicateAssignment.WithDetails(deviceID.String())
	default:
		return errors.Wrap(err, "assign geofence")
	}
}
