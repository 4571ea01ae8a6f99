package filter

import "github.com/event-dashboard/internal/domain"

// MappableHazards flattens the hazards of events that match hazardType and
// have coordinates. Unmapped hazards stay in their event but never reach
// the map.
func MappableHazards(events []domain.WeatherEvent, hazardType string) []domain.Hazard {
	if hazardType == "" {
		hazardType = All
	}
	var out []domain.Hazard
	for _, e := range events {
		for _, h := range e.Hazards {
			if hazardType != All && h.HazardType != hazardType {
				continue
			}
			if !h.Mappable() {
				continue
			}
			out = append(out, h)
		}
	}
	return out
}
