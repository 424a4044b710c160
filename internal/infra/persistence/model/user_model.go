package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Only the columns the tracker reads are mapped.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string     `gorm:"type:varchar(255);unique;not null"`
	Name      string     `gorm:"type:varchar(100)"`
	Role      string     `gorm:"type:varchar(20);not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid"`
	DriverID  *uuid.UUID `gorm:"type:uuid"`
	AdminID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
