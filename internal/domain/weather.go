package domain

import "strconv"

// Impact - measured or described consequence of a hazard
type Impact struct {
	ID          int64    `json:"id" db:"id"`
	HazardID    int64    `json:"hazard_id" db:"hazard_id"`
	ImpactType  string   `json:"impact_type" db:"impact_type"`
	Value       *float64 `json:"value" db:"value"`
	Unit        *string  `json:"unit" db:"unit"`
	Description string   `json:"description" db:"description"`
}

// Hazard - located occurrence within a weather event.
// EventID refers back to the owning event and is only used for lookups.
type Hazard struct {
	ID           int64    `json:"id" db:"id"`
	EventID      int64    `json:"event_id" db:"event_id"`
	Region       string   `json:"region" db:"region"`
	HazardType   string   `json:"hazard_type" db:"hazard_type"`
	LocationName *string  `json:"location_name" db:"location_name"`
	Latitude     *float64 `json:"latitude" db:"latitude"`
	Longitude    *float64 `json:"longitude" db:"longitude"`
	Impacts      []Impact `json:"impacts" db:"-"`
}

func (h Hazard) EntityID() ID {
	return ID(strconv.FormatInt(h.ID, 10))
}

// Mappable reports whether the hazard has both coordinates.
func (h Hazard) Mappable() bool {
	return h.Latitude != nil && h.Longitude != nil
}

// WeatherEvent - historic weather event with its hazards
type WeatherEvent struct {
	ID                   int64    `json:"id" db:"id"`
	EventIdentifier      string   `json:"event_identifier" db:"event_identifier"`
	Title                string   `json:"title" db:"title"`
	StartDate            string   `json:"start_date" db:"start_date"`
	ReturnPeriodCategory *string  `json:"return_period_category" db:"return_period_category"`
	Abstract             string   `json:"abstract" db:"abstract"`
	Hazards              []Hazard `json:"hazards" db:"-"`
}

func (e WeatherEvent) EntityID() ID {
	return ID(strconv.FormatInt(e.ID, 10))
}

func (e WeatherEvent) SearchText() string { return e.Title }

func (e WeatherEvent) StatusValue() string {
	if e.ReturnPeriodCategory == nil {
		return ""
	}
	return *e.ReturnPeriodCategory
}

// HasType reports whether any hazard of the event is of type t.
func (e WeatherEvent) HasType(t string) bool {
	for _, h := range e.Hazards {
		if h.HazardType == t {
			return true
		}
	}
	return false
}

func (e WeatherEvent) TypeValues() []string {
	out := make([]string, 0, len(e.Hazards))
	for _, h := range e.Hazards {
		out = append(out, h.HazardType)
	}
	return out
}

// MappableHazardCount counts hazards that can be placed on the map.
func (e WeatherEvent) MappableHazardCount() int {
	n := 0
	for _, h := range e.Hazards {
		if h.Mappable() {
			n++
		}
	}
	return n
}
