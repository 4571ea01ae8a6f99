package domain

import "time"

// Status - lifecycle state shared by outages and road closures
type Status string

const (
	StatusActive    Status = "active"
	StatusRestored  Status = "restored"
	StatusCancelled Status = "cancelled"
	StatusPostponed Status = "postponed"
	StatusScheduled Status = "scheduled"
)

// ScheduleType - whether the event was planned ahead
type ScheduleType string

const (
	SchedulePlanned   ScheduleType = "planned"
	ScheduleUnplanned ScheduleType = "unplanned"
)

// RescheduleEntry - one move of a planned outage's start time
type RescheduleEntry struct {
	OriginalStartTime time.Time `json:"original_start_time"`
	NewStartTime      time.Time `json:"new_start_time"`
	Reason            string    `json:"reason"`
}

// Outage - power outage reported by a lines company
type Outage struct {
	ID                  string            `json:"id" db:"id"`
	Provider            string            `json:"provider" db:"provider"`
	Category            string            `json:"category" db:"category"`
	Status              Status            `json:"status" db:"status"`
	ScheduleType        ScheduleType      `json:"schedule_type" db:"schedule_type"`
	StartTime           time.Time         `json:"start_time" db:"start_time"`
	EndTime             *time.Time        `json:"end_time" db:"end_time"`
	LastUpdated         time.Time         `json:"last_updated" db:"last_updated"`
	FetchedAt           time.Time         `json:"fetched_at" db:"fetched_at"`
	Cause               string            `json:"cause" db:"cause"`
	LocationDescription string            `json:"location_description" db:"location_description"`
	LocationGeometry    LocationGeometry  `json:"location_geometry" db:"location_geometry"`
	Region              string            `json:"region" db:"region"`
	AffectedCustomers   *int              `json:"affected_customers" db:"affected_customers"`
	InformationURL      string            `json:"information_url" db:"information_url"`
	Comments            string            `json:"comments" db:"comments"`
	LatestUpdate        string            `json:"latest_update" db:"latest_update"`
	RescheduleHistory   []RescheduleEntry `json:"reschedule_history" db:"-"`
}

func (o Outage) EntityID() ID        { return ID(o.ID) }
func (o Outage) SearchText() string  { return o.LocationDescription }
func (o Outage) StatusValue() string { return string(o.Status) }
func (o Outage) HasType(t string) bool {
	return string(o.ScheduleType) == t
}
func (o Outage) TypeValues() []string { return []string{string(o.ScheduleType)} }

// Ongoing reports whether the outage has no end time.
func (o Outage) Ongoing() bool { return o.EndTime == nil }
