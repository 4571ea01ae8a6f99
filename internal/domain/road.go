package domain

import "time"

// detourNotApplicable is the provider's placeholder for "no detour".
const detourNotApplicable = "Not Applicable"

// RoadClosure - closure or restriction on the state highway network
type RoadClosure struct {
	ID                  string           `json:"id" db:"id"`
	Provider            string           `json:"provider" db:"provider"`
	Category            string           `json:"category" db:"category"`
	Status              Status           `json:"status" db:"status"`
	EventType           string           `json:"event_type" db:"event_type"`
	ScheduleType        ScheduleType     `json:"schedule_type" db:"schedule_type"`
	StartTime           time.Time        `json:"start_time" db:"start_time"`
	EndTime             *time.Time       `json:"end_time" db:"end_time"`
	CreatedTime         time.Time        `json:"created_time" db:"created_time"`
	LastUpdated         time.Time        `json:"last_updated" db:"last_updated"`
	Description         string           `json:"description" db:"description"`
	Comments            string           `json:"comments" db:"comments"`
	Impact              string           `json:"impact" db:"impact"`
	Region              []string         `json:"region" db:"-"`
	LocationDescription string           `json:"location_description" db:"location_description"`
	LocationGeometry    LocationGeometry `json:"location_geometry" db:"location_geometry"`
	DetourDescription   string           `json:"detour_description" db:"detour_description"`
	ExpectedResolution  string           `json:"expected_resolution" db:"expected_resolution"`
}

func (r RoadClosure) EntityID() ID          { return ID(r.ID) }
func (r RoadClosure) SearchText() string    { return r.LocationDescription }
func (r RoadClosure) StatusValue() string   { return string(r.Status) }
func (r RoadClosure) HasType(t string) bool { return r.Impact == t }
func (r RoadClosure) TypeValues() []string  { return []string{r.Impact} }

// Detour returns the detour text, or "" when the provider marked it not applicable.
func (r RoadClosure) Detour() string {
	if r.DetourDescription == detourNotApplicable {
		return ""
	}
	return r.DetourDescription
}
