package geo

import (
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Circle(t *testing.T) {
	svc := newTestService(false)
	owner := uuid.New()

	fence, err := svc.Build(&entity.GeofenceSpec{
		Name:      " School ",
		Type:      entity.GeofenceTypeCircle,
		Center:    []float64{121.5, 25.0},
		Radius:    150,
		CreatedBy: owner,
	})

	require.NoError(t, err)
	assert.Equal(t, "School", fence.Name)
	assert.Equal(t, orb.Point{121.5, 25.0}, fence.Center)
	assert.InDelta(t, 150.0, fence.Radius, 1e-9)
	assert.True(t, fence.Enabled)
	assert.Equal(t, owner, fence.CreatedBy)
}

func TestBuild_AreaIsClosed(t *testing.T) {
	svc := newTestService(false)

	fence, err := svc.Build(&entity.GeofenceSpec{
		Name:        "Park",
		Type:        entity.GeofenceTypeArea,
		Coordinates: [][]float64{{121.0, 25.0}, {121.1, 25.0}, {121.1, 25.1}},
	})

	require.NoError(t, err)
	require.Len(t, fence.Area, 1)
	ring := fence.Area[0]
	assert.Len(t, ring, 4)
	assert.True(t, ring.Closed())
}

func TestBuild_AreaAlreadyClosedIsKept(t *testing.T) {
	svc := newTestService(false)

	fence, err := svc.Build(&entity.GeofenceSpec{
		Name:        "Park",
		Type:        entity.GeofenceTypeArea,
		Coordinates: [][]float64{{121.0, 25.0}, {121.1, 25.0}, {121.1, 25.1}, {121.0, 25.0}},
	})

	require.NoError(t, err)
	assert.Len(t, fence.Area[0], 4)
}

func TestBuild_Invalid(t *testing.T) {
	svc := newTestService(false)

	tests := []struct {
		name string
		spec *entity.GeofenceSpec
	}{
		{name: "nil spec", spec: nil},
		{name: "missing name", spec: &entity.GeofenceSpec{Type: entity.GeofenceTypeCircle, Center: []float64{1, 1}, Radius: 10}},
		{name: "unknown type", spec: &entity.GeofenceSpec{Name: "x", Type: "hexagon"}},
		{name: "circle without radius", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeCircle, Center: []float64{1, 1}}},
		{name: "circle bad center", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeCircle, Center: []float64{1}, Radius: 10}},
		{name: "route with one point", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeRoute, Coordinates: [][]float64{{1, 1}}}},
		{name: "route out of range", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeRoute, Coordinates: [][]float64{{1, 1}, {200, 1}}}},
		{name: "area with two points", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeArea, Coordinates: [][]float64{{1, 1}, {2, 2}}}},
		{name: "area degenerate closed", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeArea, Coordinates: [][]float64{{1, 1}, {2, 2}, {1, 1}}}},
		{name: "area with repeated vertex", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeArea, Coordinates: [][]float64{{1, 1}, {1, 1}, {2, 2}}}},
		{name: "area repeated vertices closed", spec: &entity.GeofenceSpec{Name: "x", Type: entity.GeofenceTypeArea, Coordinates: [][]float64{{1, 1}, {2, 2}, {2, 2}, {1, 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fence, err := svc.Build(tt.spec)

			assert.Nil(t, fence)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidGeofence))
		})
	}
}
