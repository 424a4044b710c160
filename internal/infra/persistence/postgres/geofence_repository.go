package postgres

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// CreateGeofence persists a normalized geofence.
func (repo *geofenceRepository) CreateGeofence(ctx context.Context, geofence *entity.Geofence) error {
	geofenceM := fromGeofenceDomain(geofence)

	if err := repo.db.WithContext(ctx).Create(geofenceM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidGeofence.WrapMessage("geofence rejected by database")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence")
	}

	geofence.ID = geofenceM.ID
	geofence.CreatedAt = geofenceM.CreatedAt
	geofence.UpdatedAt = geofenceM.UpdatedAt

	return nil
}

// AssignDevice links a geofence to a device.
func (repo *geofenceRepository) AssignDevice(ctx context.Context, geofenceID, deviceID uuid.UUID) error {
	assignment := &model.GeofenceDeviceModel{
		GeofenceID: geofenceID,
		DeviceID:   deviceID,
	}

	if err := repo.db.WithContext(ctx).Create(assignment).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAssignment
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGeofenceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign geofence")
	}

	return nil
}

// FindGeofencesByDevice returns the device's geofences, oldest assignment first.
func (repo *geofenceRepository) FindGeofencesByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN geofence_devices ON geofence_devices.geofence_id = geofences.id").
		Where("geofence_devices.device_id = ?", deviceID).
		Order("geofence_devices.created_at ASC").
		Order("geofences.id ASC").
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences by device")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// --- Mapper Functions ---

func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	if data == nil {
		return nil
	}

	geofenceM := &model.GeofenceModel{
		ID:        data.ID,
		Name:      data.Name,
		Type:      string(data.Type),
		Status:    data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.CreatedBy != uuid.Nil {
		createdBy := data.CreatedBy
		geofenceM.CreatedBy = &createdBy
	}

	switch data.Type {
	case entity.GeofenceTypeCircle:
		radius := data.Radius
		geofenceM.Center = model.Geometry{Geometry: data.Center}
		geofenceM.Radius = &radius
	case entity.GeofenceTypeRoute:
		geofenceM.Path = model.Geometry{Geometry: data.Path}
	case entity.GeofenceTypeArea:
		geofenceM.Area = model.Geometry{Geometry: data.Area}
	}

	return geofenceM
}

// toGeofenceDomain ignores geometries that do not match the row's type.
func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	geofence := &entity.Geofence{
		ID:        data.ID,
		Name:      data.Name,
		Type:      entity.GeofenceType(data.Type),
		Enabled:   data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.CreatedBy != nil {
		geofence.CreatedBy = *data.CreatedBy
	}

	switch geofence.Type {
	case entity.GeofenceTypeCircle:
		if center, ok := data.Center.Geometry.(orb.Point); ok {
			geofence.Center = center
		}
		if data.Radius != nil {
			geofence.Radius = *data.Radius
		}
	case entity.GeofenceTypeRoute:
		if path, ok := data.Path.Geometry.(orb.LineString); ok {
			geofence.Path = path
		}
	case entity.GeofenceTypeArea:
		if area, ok := data.Area.Geometry.(orb.Polygon); ok {
			geofence.Area = area
		}
	}

	return geofence
}
