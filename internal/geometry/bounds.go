package geometry

import "github.com/event-dashboard/internal/domain"

// Bounds - south-west / north-east box around a set of display points
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// BoundsOf returns the box enclosing points, false for an empty set.
func BoundsOf(points []domain.LatLng) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{South: points[0].Lat, North: points[0].Lat, West: points[0].Lng, East: points[0].Lng}
	for _, p := range points[1:] {
		b.South = min(b.South, p.Lat)
		b.North = max(b.North, p.Lat)
		b.West = min(b.West, p.Lng)
		b.East = max(b.East, p.Lng)
	}
	return b, true
}

// Center returns the middle of the box.
func (b Bounds) Center() domain.LatLng {
	return domain.LatLng{Lat: (b.South + b.North) / 2, Lng: (b.West + b.East) / 2}
}
