// Package geo evaluates positions against circle, route and area geofences.
package geo

import (
	"math"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

const defaultRouteToleranceMeters = 20.0

type geofenceService struct {
	routeTolerance float64
	skipDisabled   bool
}

// NewGeofenceService builds the evaluator from the geofence config section.
func NewGeofenceService(cfg *config.Config) service.GeofenceService {
	svc := &geofenceService{routeTolerance: defaultRouteToleranceMeters}
	if cfg != nil && cfg.Geofence != nil {
		if cfg.Geofence.RouteToleranceMeters > 0 {
			svc.routeTolerance = cfg.Geofence.RouteToleranceMeters
		}
		svc.skipDisabled = cfg.Geofence.SkipDisabled
	}

	return svc
}

func (s *geofenceService) Evaluate(point entity.GeoPoint, geofences []*entity.Geofence) entity.LocationStatus {
	p := point.Orb()
	evaluated := 0

	for _, fence := range geofences {
		if fence == nil || (s.skipDisabled && !fence.Enabled) {
			continue
		}
		evaluated++

		if s.contains(fence, p) {
			return entity.LocationStatusSafe
		}
	}

	// A device with nothing to evaluate is treated as unmonitored.
	if evaluated == 0 {
		return entity.LocationStatusSafe
	}

	return entity.LocationStatusDanger
}

func (s *geofenceService) contains(fence *entity.Geofence, p orb.Point) bool {
	switch fence.Type {
	case entity.GeofenceTypeCircle:
		return geo.DistanceHaversine(fence.Center, p) <= fence.Radius
	case entity.GeofenceTypeRoute:
		return distanceToPath(fence.Path, p) <= s.routeTolerance
	case entity.GeofenceTypeArea:
		return len(fence.Area) > 0 && planar.PolygonContains(fence.Area, p)
	default:
		return false
	}
}

// distanceToPath returns the distance in meters from p to the nearest point of path.
// Segments are projected onto a local equirectangular plane centered on p, which
// stays accurate well beyond the tolerances used for route fences.
func distanceToPath(path orb.LineString, p orb.Point) float64 {
	switch len(path) {
	case 0:
		return math.Inf(1)
	case 1:
		return geo.DistanceHaversine(path[0], p)
	}

	origin := orb.Point{0, 0}
	cosLat := math.Cos(deg2rad(p.Lat()))
	project := func(q orb.Point) orb.Point {
		return orb.Point{
			deg2rad(q.Lon()-p.Lon()) * cosLat * orb.EarthRadius,
			deg2rad(q.Lat()-p.Lat()) * orb.EarthRadius,
		}
	}

	best := math.Inf(1)
	prev := project(path[0])
	for _, vertex := range path[1:] {
		next := project(vertex)
		if d := planar.DistanceFromSegment(prev, next, origin); d < best {
			best = d
		}
		prev = next
	}

	return best
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180.0
}
