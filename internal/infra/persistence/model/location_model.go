package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the append-only 'locations' table.
type LocationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Location       Geometry  `gorm:"type:jsonb;not null"`
	LocationStatus int       `gorm:"type:smallint;not null"`
	ReceivedAt     time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
