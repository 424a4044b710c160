package model

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_NilIsNull(t *testing.T) {
	value, err := Geometry{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var g Geometry
	require.NoError(t, g.Scan(nil))
	assert.Nil(t, g.Geometry)
}

func TestGeometry_PolygonRoundTrip(t *testing.T) {
	polygon := orb.Polygon{{{121.5, 25.0}, {121.6, 25.0}, {121.6, 25.1}, {121.5, 25.0}}}

	value, err := Geometry{Geometry: polygon}.Value()
	require.NoError(t, err)
	assert.Contains(t, value, `"type":"Polygon"`)

	var decoded Geometry
	require.NoError(t, decoded.Scan([]byte(value.(string))))
	assert.Equal(t, polygon, decoded.Geometry)
}

func TestGeometry_ScanRejectsUnknownSource(t *testing.T) {
	var g Geometry
	assert.Error(t, g.Scan(42))
}

func TestJSONMap_NilStoresEmptyObject(t *testing.T) {
	value, err := JSONMap(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", value)
}

func TestJSONMap_Scan(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(`{"deviceId":"abc","location":{"latitude":1.5}}`))

	assert.Equal(t, "abc", m["deviceId"])
	assert.Equal(t, map[string]any{"latitude": 1.5}, m["location"])
}
