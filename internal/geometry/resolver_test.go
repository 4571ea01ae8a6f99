package geometry_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/geometry"
)

func TestResolve_PointSwapsToLatLng(t *testing.T) {
	res := geometry.Resolve(domain.Point{Coordinates: domain.Position{174.76, -41.29}})

	assert.True(t, res.Renderable)
	assert.Equal(t, domain.LatLng{Lat: -41.29, Lng: 174.76}, res.Center)
	assert.Nil(t, res.Lines)
}

func TestResolve_TwoPointLineMidpoint(t *testing.T) {
	res := geometry.Resolve(domain.MultiLineString{
		Coordinates: [][]domain.Position{{{0, 0}, {10, 0}}},
	})

	assert.True(t, res.Renderable)
	assert.InDelta(t, 0, res.Center.Lat, 1e-9)
	assert.InDelta(t, 5, res.Center.Lng, 1e-9)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, []domain.LatLng{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 10}}, res.Lines[0])
}

func TestResolve_EmptyGeometryIsNotRenderable(t *testing.T) {
	tests := []struct {
		name string
		geom domain.Geometry
	}{
		{"nil geometry", nil},
		{"no lines", domain.MultiLineString{}},
		{"empty lines", domain.MultiLineString{Coordinates: [][]domain.Position{{}, {}}}},
		{"nan point", domain.Point{Coordinates: domain.Position{math.NaN(), 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := geometry.Resolve(tt.geom)
			assert.False(t, res.Renderable)
			assert.Equal(t, domain.LatLng{}, res.Center)
		})
	}
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name  string
		lines [][]domain.Position
		want  domain.LatLng
	}{
		{
			name:  "single vertex",
			lines: [][]domain.Position{{{172.63, -43.53}}},
			want:  domain.LatLng{Lat: -43.53, Lng: 172.63},
		},
		{
			// 10 east then 10 north: half way is the corner
			name:  "L shape lands on the corner",
			lines: [][]domain.Position{{{0, 0}, {10, 0}, {10, 10}}},
			want:  domain.LatLng{Lat: 0, Lng: 10},
		},
		{
			name:  "segments concatenate across lines",
			lines: [][]domain.Position{{{0, 0}, {4, 0}}, {{4, 0}, {8, 0}}},
			want:  domain.LatLng{Lat: 0, Lng: 4},
		},
		{
			name:  "uneven segments interpolate",
			lines: [][]domain.Position{{{0, 0}, {2, 0}, {8, 0}}},
			want:  domain.LatLng{Lat: 0, Lng: 4},
		},
		{
			name:  "repeated vertex only",
			lines: [][]domain.Position{{{5, 5}, {5, 5}}},
			want:  domain.LatLng{Lat: 5, Lng: 5},
		},
		{
			name:  "nan vertex dropped",
			lines: [][]domain.Position{{{0, 0}, {math.NaN(), 3}, {10, 0}}},
			want:  domain.LatLng{Lat: 0, Lng: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := geometry.Midpoint(tt.lines)
			require.True(t, ok)
			assert.InDelta(t, tt.want.Lat, got.Lat, 1e-9)
			assert.InDelta(t, tt.want.Lng, got.Lng, 1e-9)
		})
	}
}

func TestResolve_SwappedPairOutOfRangeIsDropped(t *testing.T) {
	// a [lat, lng] pair mistakenly stored: latitude 174.76 is impossible
	res := geometry.Resolve(domain.Point{Coordinates: domain.Position{-41.29, 174.76}})
	assert.False(t, res.Renderable)
}

func TestResolveLatLng(t *testing.T) {
	lat, lng := -43.53, 172.63

	got, ok := geometry.ResolveLatLng(&lat, &lng)
	assert.True(t, ok)
	assert.Equal(t, domain.LatLng{Lat: lat, Lng: lng}, got)

	_, ok = geometry.ResolveLatLng(nil, &lng)
	assert.False(t, ok)
	_, ok = geometry.ResolveLatLng(&lat, nil)
	assert.False(t, ok)
}

func TestResolve_FromGeoJSON(t *testing.T) {
	raw := `{"type":"MultiLineString","coordinates":[[[174.70,-41.30],[174.72,-41.30]],[[174.72,-41.30],[174.72,-41.28]]]}`

	var g domain.LocationGeometry
	require.NoError(t, json.Unmarshal([]byte(raw), &g))

	res := geometry.Resolve(g.Geometry)
	require.True(t, res.Renderable)
	assert.InDelta(t, -41.30, res.Center.Lat, 1e-9)
	assert.InDelta(t, 174.72, res.Center.Lng, 1e-9)
	assert.Len(t, res.Lines, 2)
}

func TestBoundsOf(t *testing.T) {
	_, ok := geometry.BoundsOf(nil)
	assert.False(t, ok)

	b, ok := geometry.BoundsOf([]domain.LatLng{
		{Lat: -43.5, Lng: 172.6},
		{Lat: -43.6, Lng: 172.7},
		{Lat: -43.4, Lng: 172.5},
	})
	require.True(t, ok)
	assert.Equal(t, geometry.Bounds{South: -43.6, West: 172.5, North: -43.4, East: 172.7}, b)
	assert.InDelta(t, -43.5, b.Center().Lat, 1e-9)
	assert.InDelta(t, 172.6, b.Center().Lng, 1e-9)
}
