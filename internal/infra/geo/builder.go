package geo

import (
	"fmt"
	"strings"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/errors"

	"github.com/paulmach/orb"
)

const (
	minRoutePoints = 2
	minAreaPoints  = 3
)

// Build validates a creation request. Area rings are closed here so that
// evaluation never has to repair geometry.
func (s *geofenceService) Build(spec *entity.GeofenceSpec) (*entity.Geofence, error) {
	if spec == nil {
		return nil, domainerrors.ErrInvalidGeofence.WithDetails("missing geofence")
	}
	if strings.TrimSpace(spec.Name) == "" {
		return nil, domainerrors.ErrInvalidGeofence.WithDetails("name is required")
	}

	fence := &entity.Geofence{
		Name:      strings.TrimSpace(spec.Name),
		Type:      spec.Type,
		Enabled:   true,
		CreatedBy: spec.CreatedBy,
	}

	switch spec.Type {
	case entity.GeofenceTypeCircle:
		center, err := toPoint(spec.Center)
		if err != nil {
			return nil, domainerrors.ErrInvalidGeofence.WithDetails("center: " + err.Error())
		}
		if spec.Radius <= 0 {
			return nil, domainerrors.ErrInvalidGeofence.WithDetails("radius must be positive")
		}
		fence.Center = center
		fence.Radius = spec.Radius

	case entity.GeofenceTypeRoute:
		points, err := toPoints(spec.Coordinates)
		if err != nil {
			return nil, domainerrors.ErrInvalidGeofence.WithDetails(err.Error())
		}
		if len(points) < minRoutePoints {
			return nil, domainerrors.ErrInvalidGeofence.WithDetails("route requires at least 2 points")
		}
		fence.Path = orb.LineString(points)

	case entity.GeofenceTypeArea:
		points, err := toPoints(spec.Coordinates)
		if err != nil {
			return nil, domainerrors.ErrInvalidGeofence.WithDetails(err.Error())
		}
		if distinctPoints(points) < minAreaPoints {
			return nil, domainerrors.ErrInvalidGeofence.WithDetails("area requires at least 3 distinct points")
		}
		fence.Area = orb.Polygon{closeRing(points)}

	default:
		return nil, domainerrors.ErrInvalidGeofence.WithDetails(fmt.Sprintf("unsupported type %q", spec.Type))
	}

	return fence, nil
}

// closeRing repeats the first vertex at the end unless the ring is already closed.
func closeRing(points []orb.Point) orb.Ring {
	ring := orb.Ring(points)
	if len(ring) == 0 || ring.Closed() {
		return ring
	}

	return append(ring, ring[0])
}

func distinctPoints(points []orb.Point) int {
	seen := make(map[orb.Point]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}

	return len(seen)
}

func toPoints(coords [][]float64) ([]orb.Point, error) {
	points := make([]orb.Point, 0, len(coords))
	for i, c := range coords {
		p, err := toPoint(c)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i)
		}
		points = append(points, p)
	}

	return points, nil
}

// toPoint reads a [longitude, latitude] pair.
func toPoint(c []float64) (orb.Point, error) {
	if len(c) != 2 {
		return orb.Point{}, errors.Errorf("expected [longitude, latitude], got %d values", len(c))
	}
	lon, lat := c[0], c[1]
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return orb.Point{}, errors.Errorf("coordinate [%g, %g] out of range", lon, lat)
	}

	return orb.Point{lon, lat}, nil
}
