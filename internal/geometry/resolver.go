// Package geometry turns location geometries into display coordinates and
// renderable shapes.
//
// Input coordinates are GeoJSON [longitude, latitude] pairs; every output is
// domain.LatLng (latitude first). The canonical point of a MultiLineString is
// its midpoint by cumulative planar arc length over all vertices flattened in
// input order, so it always lies on the drawn path.
//
// Malformed input never panics. Vertices that are not finite or fall outside
// WGS-84 ranges are dropped and the resolver answers with what remains. A
// geometry with no usable vertex resolves to the zero LatLng with
// Renderable=false; callers must not place a marker for it.
package geometry

import (
	"math"

	"github.com/event-dashboard/internal/domain"
)

// Resolution - display form of one location geometry
type Resolution struct {
	Center     domain.LatLng     `json:"center"`
	Lines      [][]domain.LatLng `json:"lines,omitempty"`
	Renderable bool              `json:"renderable"`
}

// Resolve returns the canonical display point and the drawable lines of g.
func Resolve(g domain.Geometry) Resolution {
	switch geom := g.(type) {
	case domain.Point:
		if !usable(geom.Coordinates) {
			return Resolution{}
		}
		return Resolution{Center: geom.Coordinates.ToLatLng(), Renderable: true}
	case domain.MultiLineString:
		lines := cleanLines(geom.Coordinates)
		center, ok := midpoint(lines)
		return Resolution{Center: center, Lines: toLatLng(lines), Renderable: ok}
	default:
		return Resolution{}
	}
}

// Midpoint returns the arc-length midpoint of the polylines taken as one
// path. The bool is false when no usable vertex exists.
func Midpoint(lines [][]domain.Position) (domain.LatLng, bool) {
	return midpoint(cleanLines(lines))
}

// ResolveLatLng places a record that stores nullable latitude/longitude.
func ResolveLatLng(lat, lng *float64) (domain.LatLng, bool) {
	if lat == nil || lng == nil {
		return domain.LatLng{}, false
	}
	p := domain.Position{*lng, *lat}
	if !usable(p) {
		return domain.LatLng{}, false
	}
	return p.ToLatLng(), true
}

// ValidCoordinate reports whether lat/lng are inside WGS-84 ranges.
func ValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func usable(p domain.Position) bool {
	return p.Finite() && ValidCoordinate(p.Lat(), p.Lng())
}

func cleanLines(lines [][]domain.Position) [][]domain.Position {
	out := make([][]domain.Position, 0, len(lines))
	for _, line := range lines {
		kept := make([]domain.Position, 0, len(line))
		for _, p := range line {
			if usable(p) {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}

func midpoint(lines [][]domain.Position) (domain.LatLng, bool) {
	var points []domain.Position
	for _, line := range lines {
		points = append(points, line...)
	}

	switch len(points) {
	case 0:
		return domain.LatLng{}, false
	case 1:
		return points[0].ToLatLng(), true
	}

	segments := make([]float64, len(points)-1)
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		segments[i] = planarDistance(points[i], points[i+1])
		total += segments[i]
	}
	if total == 0 {
		return points[0].ToLatLng(), true
	}

	half := total / 2
	walked := 0.0
	for i, length := range segments {
		if walked+length >= half {
			if length == 0 {
				return points[i].ToLatLng(), true
			}
			ratio := (half - walked) / length
			a, b := points[i], points[i+1]
			return domain.LatLng{
				Lat: a.Lat() + (b.Lat()-a.Lat())*ratio,
				Lng: a.Lng() + (b.Lng()-a.Lng())*ratio,
			}, true
		}
		walked += length
	}

	// float rounding can leave walked a hair short of half
	return points[len(points)-1].ToLatLng(), true
}

func planarDistance(a, b domain.Position) float64 {
	return math.Hypot(b.Lat()-a.Lat(), b.Lng()-a.Lng())
}

func toLatLng(lines [][]domain.Position) [][]domain.LatLng {
	if len(lines) == 0 {
		return nil
	}
	out := make([][]domain.LatLng, len(lines))
	for i, line := range lines {
		converted := make([]domain.LatLng, len(line))
		for j, p := range line {
			converted[j] = p.ToLatLng()
		}
		out[i] = converted
	}
	return out
}
