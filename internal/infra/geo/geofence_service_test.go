package geo

import (
	"testing"

	"tracker/config"
	"tracker/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

func newTestService(skipDisabled bool) *geofenceService {
	cfg := &config.Config{Geofence: &config.GeofenceConfig{RouteToleranceMeters: 20, SkipDisabled: skipDisabled}}

	return NewGeofenceService(cfg).(*geofenceService)
}

func circle(lat, lon, radius float64) *entity.Geofence {
	return &entity.Geofence{
		Type:    entity.GeofenceTypeCircle,
		Center:  orb.Point{lon, lat},
		Radius:  radius,
		Enabled: true,
	}
}

func TestEvaluate_NoGeofencesIsSafe(t *testing.T) {
	svc := newTestService(false)

	for _, p := range []entity.GeoPoint{{Latitude: 0, Longitude: 0}, {Latitude: -45.5, Longitude: 170.1}, {Latitude: 89.9, Longitude: -179.9}} {
		assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(p, nil))
		assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(p, []*entity.Geofence{}))
	}
}

func TestEvaluate_CircleScenario(t *testing.T) {
	svc := newTestService(false)
	fences := []*entity.Geofence{circle(10, 10, 100)}

	near := entity.GeoPoint{Latitude: 10.0005, Longitude: 10.0005}
	far := entity.GeoPoint{Latitude: 10.01, Longitude: 10.01}

	assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(near, fences))
	assert.Equal(t, entity.LocationStatusDanger, svc.Evaluate(far, fences))
}

func TestEvaluate_CircleBoundaryIsInclusive(t *testing.T) {
	svc := newTestService(false)
	point := entity.GeoPoint{Latitude: 25.0400, Longitude: 121.5600}
	center := orb.Point{121.5650, 25.0420}
	exact := geo.DistanceHaversine(center, point.Orb())

	onBoundary := &entity.Geofence{Type: entity.GeofenceTypeCircle, Center: center, Radius: exact, Enabled: true}
	justInside := &entity.Geofence{Type: entity.GeofenceTypeCircle, Center: center, Radius: exact - 1e-6, Enabled: true}

	assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(point, []*entity.Geofence{onBoundary}))
	assert.Equal(t, entity.LocationStatusDanger, svc.Evaluate(point, []*entity.Geofence{justInside}))
}

func TestEvaluate_Route(t *testing.T) {
	svc := newTestService(false)
	// East-west path along latitude 10 from lon 10.00 to lon 10.01 (~1.1km).
	route := &entity.Geofence{
		Type:    entity.GeofenceTypeRoute,
		Path:    orb.LineString{{10.00, 10.0}, {10.01, 10.0}},
		Enabled: true,
	}

	tests := []struct {
		name  string
		point entity.GeoPoint
		want  entity.LocationStatus
	}{
		{name: "on the path", point: entity.GeoPoint{Latitude: 10.0, Longitude: 10.005}, want: entity.LocationStatusSafe},
		{name: "about 11m north", point: entity.GeoPoint{Latitude: 10.0001, Longitude: 10.005}, want: entity.LocationStatusSafe},
		{name: "about 33m north", point: entity.GeoPoint{Latitude: 10.0003, Longitude: 10.005}, want: entity.LocationStatusDanger},
		{name: "past the end within tolerance", point: entity.GeoPoint{Latitude: 10.0, Longitude: 10.01015}, want: entity.LocationStatusSafe},
		{name: "far past the end", point: entity.GeoPoint{Latitude: 10.0, Longitude: 10.02}, want: entity.LocationStatusDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Evaluate(tt.point, []*entity.Geofence{route}))
		})
	}
}

func TestEvaluate_Area(t *testing.T) {
	svc := newTestService(false)
	square := &entity.Geofence{
		Type: entity.GeofenceTypeArea,
		Area: orb.Polygon{orb.Ring{
			{121.0, 25.0}, {121.1, 25.0}, {121.1, 25.1}, {121.0, 25.1}, {121.0, 25.0},
		}},
		Enabled: true,
	}

	assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(entity.GeoPoint{Latitude: 25.05, Longitude: 121.05}, []*entity.Geofence{square}))
	assert.Equal(t, entity.LocationStatusDanger, svc.Evaluate(entity.GeoPoint{Latitude: 25.2, Longitude: 121.05}, []*entity.Geofence{square}))
}

func TestEvaluate_AnyMatchIsSafe(t *testing.T) {
	svc := newTestService(false)
	fences := []*entity.Geofence{
		circle(0, 0, 10),
		circle(10, 10, 100),
	}

	assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(entity.GeoPoint{Latitude: 10, Longitude: 10}, fences))
	assert.Equal(t, entity.LocationStatusDanger, svc.Evaluate(entity.GeoPoint{Latitude: 5, Longitude: 5}, fences))
}

func TestEvaluate_DisabledGeofences(t *testing.T) {
	disabled := circle(10, 10, 100)
	disabled.Enabled = false
	inside := entity.GeoPoint{Latitude: 10, Longitude: 10}
	outside := entity.GeoPoint{Latitude: 11, Longitude: 11}

	t.Run("evaluated by default", func(t *testing.T) {
		svc := newTestService(false)
		assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(inside, []*entity.Geofence{disabled}))
		assert.Equal(t, entity.LocationStatusDanger, svc.Evaluate(outside, []*entity.Geofence{disabled}))
	})

	t.Run("skipped when configured", func(t *testing.T) {
		svc := newTestService(true)
		enabled := circle(0, 0, 10)
		assert.Equal(t, entity.LocationStatusDanger, svc.Evaluate(inside, []*entity.Geofence{disabled, enabled}))
		assert.Equal(t, entity.LocationStatusSafe, svc.Evaluate(outside, []*entity.Geofence{disabled}))
	})
}

func TestNewGeofenceService_Defaults(t *testing.T) {
	svc := NewGeofenceService(nil).(*geofenceService)

	assert.InDelta(t, 20.0, svc.routeTolerance, 1e-9)
	assert.False(t, svc.skipDisabled)
}
