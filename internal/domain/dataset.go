package domain

import "time"

// Dataset - one category's records as delivered by an event source.
// Only the slice matching Category is populated.
type Dataset struct {
	Category      Category       `json:"category"`
	Outages       []Outage       `json:"outages,omitempty"`
	RoadClosures  []RoadClosure  `json:"road_closures,omitempty"`
	WeatherEvents []WeatherEvent `json:"weather_events,omitempty"`
	FetchedAt     time.Time      `json:"fetched_at"`
}

// Len returns the number of top-level records.
func (d Dataset) Len() int {
	switch d.Category {
	case CategoryPowerOutages:
		return len(d.Outages)
	case CategoryRoadClosures:
		return len(d.RoadClosures)
	case CategoryWeatherHazards:
		return len(d.WeatherEvents)
	default:
		return 0
	}
}
