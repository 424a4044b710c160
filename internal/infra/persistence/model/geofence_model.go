package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// Exactly one of Center, Path and Area is set, matching Type.
type GeofenceModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Type      string     `gorm:"type:varchar(10);not null"`
	Center    Geometry   `gorm:"type:jsonb"`
	Radius    *float64   `gorm:"type:double precision"`
	Path      Geometry   `gorm:"type:jsonb"`
	Area      Geometry   `gorm:"type:jsonb"`
	Status    bool       `gorm:"not null;default:true"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}

// GeofenceDeviceModel is the assignment join. CreatedAt orders evaluation.
type GeofenceDeviceModel struct {
	GeofenceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceDeviceModel) TableName() string {
	return "geofence_devices"
}
