package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
type DeviceModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"column:device_name;type:varchar(100);unique;not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Status    int        `gorm:"type:smallint;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
