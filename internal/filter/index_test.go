package filter

import (
	"testing"

	"github.com/event-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int { return &v }

func TestBuildIndex(t *testing.T) {
	t.Run("outage types are sorted and distinct", func(t *testing.T) {
		idx := BuildIndex(sampleOutages())
		assert.Equal(t, 5, idx.Total)
		assert.Equal(t, []string{"planned", "unplanned"}, idx.Types)
		assert.Equal(t, 3, idx.TypeCounts["planned"])
		assert.Equal(t, 2, idx.StatusCounts["active"])
	})

	t.Run("empty type values are not options", func(t *testing.T) {
		roads := []domain.RoadClosure{{ID: "r1", Impact: "Delays"}, {ID: "r2"}, {ID: "r3", Impact: "Caution"}}
		idx := BuildIndex(roads)
		assert.Equal(t, []string{"Caution", "Delays"}, idx.Types)
	})

	t.Run("weather types come from hazards", func(t *testing.T) {
		events := []domain.WeatherEvent{
			{ID: 1, Hazards: []domain.Hazard{{HazardType: "wind"}, {HazardType: "flood"}}},
			{ID: 2, Hazards: []domain.Hazard{{HazardType: "flood"}}},
		}
		idx := BuildIndex(events)
		assert.Equal(t, []string{"flood", "wind"}, idx.Types)
		assert.Equal(t, 2, idx.TypeCounts["flood"])
	})

	t.Run("empty dataset", func(t *testing.T) {
		idx := BuildIndex[domain.Outage](nil)
		assert.Equal(t, 0, idx.Total)
		assert.Empty(t, idx.Types)
		assert.NotNil(t, idx.Types)
	})
}

func TestSummarizeOutages(t *testing.T) {
	outages := sampleOutages()
	outages[0].AffectedCustomers = ptrInt(120)
	outages[2].AffectedCustomers = ptrInt(30)

	stats := SummarizeOutages(outages)
	assert.Equal(t, OutageStats{Total: 5, Active: 2, Restored: 1, Scheduled: 1, AffectedCustomers: 150}, stats)
}

func TestMappableHazards(t *testing.T) {
	events := []domain.WeatherEvent{
		{ID: 1, Hazards: []domain.Hazard{
			{ID: 10, HazardType: "flood", Latitude: ptrFloat(-39.5), Longitude: ptrFloat(176.9)},
			{ID: 11, HazardType: "flood"},
			{ID: 12, HazardType: "wind", Latitude: ptrFloat(-39.6), Longitude: ptrFloat(176.8)},
		}},
		{ID: 2, Hazards: []domain.Hazard{
			{ID: 20, HazardType: "flood", Latitude: ptrFloat(-36.8), Longitude: ptrFloat(174.7)},
			{ID: 21, HazardType: "flood", Latitude: ptrFloat(-36.9)},
		}},
	}

	hazardIDs := func(hs []domain.Hazard) []int64 {
		out := []int64{}
		for _, h := range hs {
			out = append(out, h.ID)
		}
		return out
	}

	assert.Equal(t, []int64{10, 12, 20}, hazardIDs(MappableHazards(events, All)))
	assert.Equal(t, []int64{10, 20}, hazardIDs(MappableHazards(events, "flood")))
	assert.Equal(t, []int64{10, 12, 20}, hazardIDs(MappableHazards(events, "")))
	assert.Empty(t, MappableHazards(events, "snow"))
}
