package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationStatus is the verdict recorded with every location.
type LocationStatus int

const (
	LocationStatusSafe   LocationStatus = 1
	LocationStatusDanger LocationStatus = 2
)

func (s LocationStatus) String() string {
	if s == LocationStatusDanger {
		return "danger"
	}

	return "safe"
}

// GeoPoint is a WGS84 coordinate as it appears on the wire.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Orb returns the point in orb's [lon, lat] order.
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// Location is an append-only record written once per processed telemetry message.
type Location struct {
	ID        uuid.UUID      `json:"id"`
	DeviceID  uuid.UUID      `json:"device_id"`
	Point     GeoPoint       `json:"point"`
	Status    LocationStatus `json:"location_status"`
	CreatedAt time.Time      `json:"created_at"`
}

// PositionReport is the decoded body of a location or danger message.
type PositionReport struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// Point returns the report as a GeoPoint. Call only after validation.
func (r *PositionReport) Point() GeoPoint {
	return GeoPoint{Latitude: *r.Latitude, Longitude: *r.Longitude}
}
