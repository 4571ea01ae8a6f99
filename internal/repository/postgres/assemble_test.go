package postgres

import (
	"testing"

	"github.com/event-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleWeather(t *testing.T) {
	events := []domain.WeatherEvent{{ID: 2}, {ID: 1}, {ID: 3}}
	hazards := []domain.Hazard{
		{ID: 10, EventID: 1},
		{ID: 20, EventID: 2},
		{ID: 11, EventID: 1},
		{ID: 99, EventID: 42},
	}
	impacts := []domain.Impact{
		{ID: 100, HazardID: 10},
		{ID: 101, HazardID: 10},
		{ID: 200, HazardID: 20},
	}

	got := assembleWeather(events, hazards, impacts)
	require.Len(t, got, 3)

	assert.Equal(t, int64(2), got[0].ID)
	require.Len(t, got[0].Hazards, 1)
	assert.Len(t, got[0].Hazards[0].Impacts, 1)

	require.Len(t, got[1].Hazards, 2)
	assert.Equal(t, int64(10), got[1].Hazards[0].ID)
	assert.Len(t, got[1].Hazards[0].Impacts, 2)
	assert.NotNil(t, got[1].Hazards[1].Impacts)
	assert.Empty(t, got[1].Hazards[1].Impacts)

	assert.NotNil(t, got[2].Hazards)
	assert.Empty(t, got[2].Hazards)
}
