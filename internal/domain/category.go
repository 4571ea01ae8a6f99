package domain

// Category - a kind of civic event the dashboard can show
type Category string

const (
	// CategoryNone is the category picker: no event kind is active.
	CategoryNone           Category = ""
	CategoryPowerOutages   Category = "power-outages"
	CategoryRoadClosures   Category = "road-closures"
	CategoryWeatherHazards Category = "historic-weather-hazards"
)

// CategoryInfo - catalogue entry shown in the category picker
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

var catalogue = []CategoryInfo{
	{ID: CategoryPowerOutages, Name: "Power Outages"},
	{ID: CategoryRoadClosures, Name: "Road closures"},
	{ID: CategoryWeatherHazards, Name: "Historic weather hazards"},
}

// Categories returns the picker catalogue in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(catalogue))
	copy(out, catalogue)
	return out
}

// ParseCategory maps a raw id onto a known category.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range catalogue {
		if string(c.ID) == raw {
			return c.ID, true
		}
	}
	return CategoryNone, false
}

// Info returns the catalogue entry of c.
func (c Category) Info() (CategoryInfo, bool) {
	for _, info := range catalogue {
		if info.ID == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// ID - category-scoped entity identifier. Integer ids are stored in base 10.
type ID string
