package filter

import (
	"testing"
	"time"

	"github.com/event-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOutages() []domain.Outage {
	start := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	return []domain.Outage{
		{ID: "o1", Status: domain.StatusActive, ScheduleType: domain.ScheduleUnplanned, LocationDescription: "Karori Road, Wellington", StartTime: start},
		{ID: "o2", Status: domain.StatusRestored, ScheduleType: domain.ScheduleUnplanned, LocationDescription: "Thorndon Quay", StartTime: start},
		{ID: "o3", Status: domain.StatusActive, ScheduleType: domain.SchedulePlanned, LocationDescription: "Miramar Peninsula", StartTime: start},
		{ID: "o4", Status: domain.StatusScheduled, ScheduleType: domain.SchedulePlanned, LocationDescription: "Island Bay", StartTime: start},
		{ID: "o5", Status: domain.StatusCancelled, ScheduleType: domain.SchedulePlanned, LocationDescription: "Karori West", StartTime: start},
	}
}

func ids(outages []domain.Outage) []string {
	out := make([]string, 0, len(outages))
	for _, o := range outages {
		out = append(out, o.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	outages := sampleOutages()

	t.Run("default criteria returns everything in order", func(t *testing.T) {
		got := Apply(outages, DefaultCriteria())
		assert.Equal(t, ids(outages), ids(got))
	})

	t.Run("zero criteria behaves like default", func(t *testing.T) {
		got := Apply(outages, Criteria{})
		assert.Len(t, got, len(outages))
	})

	t.Run("status filter keeps input order", func(t *testing.T) {
		got := Apply(outages, Criteria{Status: "active", Type: All})
		assert.Equal(t, []string{"o1", "o3"}, ids(got))
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		got := Apply(outages, Criteria{SearchTerm: "  KARORI ", Status: All, Type: All})
		assert.Equal(t, []string{"o1", "o5"}, ids(got))
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		got := Apply(outages, Criteria{SearchTerm: "karori", Status: All, Type: "planned"})
		assert.Equal(t, []string{"o5"}, ids(got))
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		got := Apply(outages, Criteria{SearchTerm: "auckland", Status: All, Type: All})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("nil input stays nil", func(t *testing.T) {
		assert.Nil(t, Apply[domain.Outage](nil, DefaultCriteria()))
	})

	t.Run("result is a subset and filtering is idempotent", func(t *testing.T) {
		c := Criteria{SearchTerm: "a", Status: "active", Type: All}
		once := Apply(outages, c)
		twice := Apply(once, c)
		assert.Equal(t, ids(once), ids(twice))
		for _, o := range once {
			assert.Contains(t, ids(outages), o.ID)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := ids(outages)
		_ = Apply(outages, Criteria{Status: "restored"})
		assert.Equal(t, before, ids(outages))
	})
}

func TestApply_RoadClosures(t *testing.T) {
	roads := []domain.RoadClosure{
		{ID: "r1", Status: domain.StatusActive, Impact: "Road Closed", LocationDescription: "SH1 Kaikoura"},
		{ID: "r2", Status: domain.StatusActive, Impact: "Caution", LocationDescription: "SH2 Remutaka Hill"},
		{ID: "r3", Status: domain.StatusRestored, Impact: "Delays", LocationDescription: "SH1 Ngauranga Gorge"},
	}

	got := Apply(roads, Criteria{SearchTerm: "sh1", Status: All, Type: "Road Closed"})
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestApply_WeatherEvents(t *testing.T) {
	severe := "severe"
	events := []domain.WeatherEvent{
		{ID: 1, Title: "Cyclone Gabrielle", ReturnPeriodCategory: &severe, Hazards: []domain.Hazard{
			{ID: 10, HazardType: "flood"}, {ID: 11, HazardType: "landslide"},
		}},
		{ID: 2, Title: "Auckland Anniversary Floods", Hazards: []domain.Hazard{
			{ID: 20, HazardType: "flood"},
		}},
		{ID: 3, Title: "Canterbury Snow", Hazards: []domain.Hazard{
			{ID: 30, HazardType: "snow"},
		}},
	}

	t.Run("type matches any hazard", func(t *testing.T) {
		got := Apply(events, Criteria{Type: "landslide"})
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("search matches title", func(t *testing.T) {
		got := Apply(events, Criteria{SearchTerm: "floods"})
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("status matches return period and skips events without one", func(t *testing.T) {
		got := Apply(events, Criteria{Status: "severe"})
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, Truncate(items, DefaultListLimit))
	assert.Equal(t, []int{1, 2}, Truncate(items[:2], DefaultListLimit))
	assert.Len(t, Truncate(items, 0), 10)
}

func TestCriteria(t *testing.T) {
	assert.True(t, DefaultCriteria().IsDefault())
	assert.True(t, Criteria{SearchTerm: "   "}.IsDefault())
	assert.False(t, Criteria{Status: "active"}.IsDefault())
	assert.Equal(t, Criteria{SearchTerm: "x", Status: All, Type: All}, Criteria{SearchTerm: "x"}.Normalize())
}

func TestMatches(t *testing.T) {
	o := sampleOutages()[0]
	assert.True(t, Matches(o, Criteria{SearchTerm: "karori"}))
	assert.False(t, Matches(o, Criteria{Status: "restored"}))
}
