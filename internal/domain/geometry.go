package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

// Position is a coordinate pair in GeoJSON order: [longitude, latitude].
type Position [2]float64

// Lng returns the longitude component.
func (p Position) Lng() float64 { return p[0] }

// Lat returns the latitude component.
func (p Position) Lat() float64 { return p[1] }

// Finite reports whether both components are usable numbers.
func (p Position) Finite() bool {
	return isFinite(p[0]) && isFinite(p[1])
}

// LatLng is a display coordinate, latitude first.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToLatLng swaps the GeoJSON order into display order.
func (p Position) ToLatLng() LatLng {
	return LatLng{Lat: p[1], Lng: p[0]}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type GeometryType string

const (
	GeometryPoint           GeometryType = "Point"
	GeometryMultiLineString GeometryType = "MultiLineString"
)

// Geometry is the closed set of location shapes: Point and MultiLineString.
type Geometry interface {
	Type() GeometryType
	sealed()
}

// Point - single location
type Point struct {
	Coordinates Position
}

func (Point) Type() GeometryType { return GeometryPoint }
func (Point) sealed()            {}

// MultiLineString - ordered polylines, each an ordered list of positions
type MultiLineString struct {
	Coordinates [][]Position
}

func (MultiLineString) Type() GeometryType { return GeometryMultiLineString }
func (MultiLineString) sealed()            {}

// LocationGeometry carries a Geometry through JSON and JSONB columns.
// A nil Geometry means the record had no usable location.
type LocationGeometry struct {
	Geometry Geometry
}

type geoJSON struct {
	Type        GeometryType    `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// UnmarshalJSON never fails on bad shapes: an unknown type or unreadable
// coordinates leave Geometry nil so only this record loses its location.
func (g *LocationGeometry) UnmarshalJSON(data []byte) error {
	g.Geometry = nil

	var raw geoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch raw.Type {
	case GeometryPoint:
		var coords []float64
		if err := json.Unmarshal(raw.Coordinates, &coords); err != nil || len(coords) < 2 {
			return nil
		}
		g.Geometry = Point{Coordinates: Position{coords[0], coords[1]}}
	case GeometryMultiLineString:
		var lines [][][]float64
		if err := json.Unmarshal(raw.Coordinates, &lines); err != nil {
			return nil
		}
		out := make([][]Position, 0, len(lines))
		for _, line := range lines {
			positions := make([]Position, 0, len(line))
			for _, pair := range line {
				if len(pair) < 2 {
					continue
				}
				positions = append(positions, Position{pair[0], pair[1]})
			}
			out = append(out, positions)
		}
		g.Geometry = MultiLineString{Coordinates: out}
	}
	return nil
}

func (g LocationGeometry) MarshalJSON() ([]byte, error) {
	switch geom := g.Geometry.(type) {
	case Point:
		return json.Marshal(struct {
			Type        GeometryType `json:"type"`
			Coordinates Position     `json:"coordinates"`
		}{GeometryPoint, geom.Coordinates})
	case MultiLineString:
		coords := geom.Coordinates
		if coords == nil {
			coords = [][]Position{}
		}
		return json.Marshal(struct {
			Type        GeometryType `json:"type"`
			Coordinates [][]Position `json:"coordinates"`
		}{GeometryMultiLineString, coords})
	default:
		return []byte("null"), nil
	}
}

// Scan reads a JSONB column.
func (g *LocationGeometry) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		g.Geometry = nil
		return nil
	case []byte:
		return g.UnmarshalJSON(v)
	case string:
		return g.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("location geometry: unsupported column type %T", src)
	}
}

// Value writes the geometry back as JSONB text.
func (g LocationGeometry) Value() (driver.Value, error) {
	if g.Geometry == nil {
		return nil, nil
	}
	b, err := g.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
