package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Geometry stores an orb geometry as a GeoJSON jsonb column. A nil geometry is NULL.
type Geometry struct {
	orb.Geometry
}

// Value implements driver.Valuer.
func (g Geometry) Value() (driver.Value, error) {
	if g.Geometry == nil {
		return nil, nil
	}

	data, err := json.Marshal(geojson.NewGeometry(g.Geometry))
	if err != nil {
		return nil, errors.Wrap(err, "encode geometry")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (g *Geometry) Scan(src any) error {
	data, err := bytesOf(src)
	if err != nil || data == nil {
		g.Geometry = nil

		return err
	}

	decoded, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return errors.Wrap(err, "decode geometry")
	}
	g.Geometry = decoded.Geometry()

	return nil
}

// JSONMap stores free-form notification data as jsonb.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}

	data, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, errors.Wrap(err, "encode json map")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(src any) error {
	data, err := bytesOf(src)
	if err != nil || data == nil {
		*m = nil

		return err
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.Wrap(err, "decode json map")
	}
	*m = decoded

	return nil
}

func bytesOf(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Errorf("unsupported jsonb source type %T", src)
	}
}
