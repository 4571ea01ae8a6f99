package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationGeometry_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Geometry
	}{
		{
			name:  "point",
			input: `{"type":"Point","coordinates":[174.77,-41.28]}`,
			want:  Point{Coordinates: Position{174.77, -41.28}},
		},
		{
			name:  "multi line string drops short pairs",
			input: `{"type":"MultiLineString","coordinates":[[[174.1,-41.1],[174.2],[174.3,-41.3]]]}`,
			want: MultiLineString{Coordinates: [][]Position{
				{{174.1, -41.1}, {174.3, -41.3}},
			}},
		},
		{
			name:  "unknown type",
			input: `{"type":"Polygon","coordinates":[]}`,
			want:  nil,
		},
		{
			name:  "short point",
			input: `{"type":"Point","coordinates":[174.77]}`,
			want:  nil,
		},
		{
			name:  "not an object",
			input: `"somewhere"`,
			want:  nil,
		},
		{
			name:  "null",
			input: `null`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g LocationGeometry
			require.NoError(t, json.Unmarshal([]byte(tt.input), &g))
			assert.Equal(t, tt.want, g.Geometry)
		})
	}
}

func TestLocationGeometry_ValueScan(t *testing.T) {
	in := LocationGeometry{Geometry: Point{Coordinates: Position{174.77, -41.28}}}

	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Point","coordinates":[174.77,-41.28]}`, v)

	var out LocationGeometry
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)

	empty, err := LocationGeometry{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out.Geometry)

	assert.Error(t, out.Scan(42))
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("road-closures")
	assert.True(t, ok)
	assert.Equal(t, CategoryRoadClosures, c)

	c, ok = ParseCategory("earthquakes")
	assert.False(t, ok)
	assert.Equal(t, CategoryNone, c)

	info, ok := CategoryPowerOutages.Info()
	assert.True(t, ok)
	assert.Equal(t, "Power Outages", info.Name)

	_, ok = CategoryNone.Info()
	assert.False(t, ok)
}

func TestRoadClosure_Detour(t *testing.T) {
	assert.Empty(t, RoadClosure{DetourDescription: "Not Applicable"}.Detour())
	assert.Equal(t, "Use SH2", RoadClosure{DetourDescription: "Use SH2"}.Detour())
}

func TestWeatherEvent_Hazards(t *testing.T) {
	lat, lng := -41.2, 174.7
	e := WeatherEvent{
		ID: 7,
		Hazards: []Hazard{
			{ID: 1, HazardType: "Flood", Latitude: &lat, Longitude: &lng},
			{ID: 2, HazardType: "Wind", Latitude: &lat},
		},
	}

	assert.Equal(t, ID("7"), e.EntityID())
	assert.True(t, e.HasType("Wind"))
	assert.False(t, e.HasType("Snow"))
	assert.Equal(t, []string{"Flood", "Wind"}, e.TypeValues())
	assert.Equal(t, 1, e.MappableHazardCount())
	assert.Empty(t, e.StatusValue())
}
