package service

import "tracker/internal/domain/entity"

// GeofenceService classifies points against geofences and normalizes new geofences.
type GeofenceService interface {
	// Evaluate returns Safe when no geofences are given or when the point lies
	// inside any of them, checked in order. Otherwise it returns Danger.
	Evaluate(point entity.GeoPoint, geofences []*entity.Geofence) entity.LocationStatus

	// Build validates a creation request and returns a geofence with closed area rings.
	Build(spec *entity.GeofenceSpec) (*entity.Geofence, error)
}
