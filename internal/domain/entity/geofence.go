package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeofenceType selects which geometry of a Geofence is meaningful.
type GeofenceType string

const (
	GeofenceTypeCircle GeofenceType = "circle"
	GeofenceTypeRoute  GeofenceType = "route"
	GeofenceTypeArea   GeofenceType = "area"
)

func (t GeofenceType) IsValid() bool {
	switch t {
	case GeofenceTypeCircle, GeofenceTypeRoute, GeofenceTypeArea:
		return true
	default:
		return false
	}
}

// Geofence is a named safe region. Exactly one geometry field is populated,
// matching Type. Area rings are stored closed.
type Geofence struct {
	ID        uuid.UUID
	Name      string
	Type      GeofenceType
	Center    orb.Point      // circle
	Radius    float64        // circle, meters
	Path      orb.LineString // route
	Area      orb.Polygon    // area
	Enabled   bool
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GeofenceSpec is the unvalidated input for creating a geofence.
// Coordinates are [longitude, latitude] pairs.
type GeofenceSpec struct {
	Name        string       `json:"name" validate:"required"`
	Type        GeofenceType `json:"type" validate:"required,oneof=circle route area"`
	Center      []float64    `json:"center,omitempty"`
	Radius      float64      `json:"radius,omitempty"`
	Coordinates [][]float64  `json:"coordinates,omitempty"`
	CreatedBy   uuid.UUID    `json:"created_by"`
}
