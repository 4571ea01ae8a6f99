package dashboard

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/geometry"
	"github.com/event-dashboard/internal/selection"
)

// EmptyMessage is shown when no record matches the active criteria.
const EmptyMessage = "No results found — try adjusting your search or filters"

// LoadErrorMessage is shown in place of the list when the dataset failed to load.
const LoadErrorMessage = "Failed to load events, please try again"

// Default map framing before any selection.
var (
	DefaultCenter = domain.LatLng{Lat: -41.2865, Lng: 174.7762}
	DefaultZoom   = 6
)

const (
	maxPopupImpacts    = 3
	maxImpactDescRunes = 60
)

// View - everything a client needs to render the sidebar and the map
type View struct {
	SessionID    string                `json:"session_id,omitempty"`
	Category     domain.Category       `json:"category"`
	CategoryName string                `json:"category_name,omitempty"`
	Categories   []domain.CategoryInfo `json:"categories,omitempty"`

	Criteria      filter.Criteria `json:"criteria"`
	SearchInput   string          `json:"search_input"`
	SearchPending bool            `json:"search_pending"`

	Total        int        `json:"total"`
	DatasetTotal int        `json:"dataset_total"`
	Items        []ListItem `json:"items"`
	TypeOptions  []string   `json:"type_options"`
	Stats        *Stats     `json:"stats,omitempty"`

	Map      MapFrame              `json:"map"`
	Markers  []Marker              `json:"markers"`
	Shapes   []Shape               `json:"shapes"`
	Selected *Detail               `json:"selected,omitempty"`
	Camera   *selection.CameraMove `json:"camera,omitempty"`
	ShowAll  bool                  `json:"show_all"`

	LoadError    string     `json:"load_error,omitempty"`
	EmptyMessage string     `json:"empty_message,omitempty"`
	FetchedAt    *time.Time `json:"fetched_at,omitempty"`
}

// MapFrame - initial framing of the map and an optional title
type MapFrame struct {
	Center    domain.LatLng    `json:"center"`
	Zoom      int              `json:"zoom"`
	FitBounds *geometry.Bounds `json:"fit_bounds,omitempty"`
	Title     string           `json:"title,omitempty"`
}

// ListItem - one sidebar row
type ListItem struct {
	ID             domain.ID `json:"id"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle,omitempty"`
	Classification string    `json:"classification"`
	Color          string    `json:"color"`
	TimeRange      string    `json:"time_range,omitempty"`
	Updated        string    `json:"updated,omitempty"`
	Badge          *int      `json:"badge,omitempty"`
	Locatable      bool      `json:"locatable"`
	Selected       bool      `json:"selected"`
}

// Marker - point placed on the map
type Marker struct {
	ID             domain.ID     `json:"id"`
	Position       domain.LatLng `json:"position"`
	Classification string        `json:"classification"`
	Color          string        `json:"color"`
	Label          string        `json:"label,omitempty"`
	Selected       bool          `json:"selected"`
}

// Shape - polyline set drawn for a MultiLineString location
type Shape struct {
	ID             domain.ID         `json:"id"`
	Lines          [][]domain.LatLng `json:"lines"`
	Classification string            `json:"classification"`
	Color          string            `json:"color"`
	Weight         int               `json:"weight"`
	Opacity        float64           `json:"opacity"`
	Selected       bool              `json:"selected"`
}

// Stats - counters over the unfiltered dataset
type Stats struct {
	Total             int            `json:"total"`
	Active            int            `json:"active"`
	StatusCounts      map[string]int `json:"status_counts"`
	TypeCounts        map[string]int `json:"type_counts"`
	AffectedCustomers *int           `json:"affected_customers,omitempty"`
	MappableHazards   *int           `json:"mappable_hazards,omitempty"`
}

// DetailKind - what the detail panel shows
type DetailKind string

const (
	DetailOutage       DetailKind = "outage"
	DetailRoadClosure  DetailKind = "road-closure"
	DetailWeatherEvent DetailKind = "weather-event"
	DetailHazard       DetailKind = "hazard"
)

// Detail - panel for the focused entity
type Detail struct {
	Kind           DetailKind     `json:"kind"`
	ID             domain.ID      `json:"id"`
	Title          string         `json:"title"`
	Classification string         `json:"classification,omitempty"`
	Status         string         `json:"status,omitempty"`
	Schedule       string         `json:"schedule,omitempty"`
	TimeRange      string         `json:"time_range,omitempty"`
	Updated        string         `json:"updated,omitempty"`
	Provider       string         `json:"provider,omitempty"`
	Region         string         `json:"region,omitempty"`
	Location       string         `json:"location,omitempty"`
	Description    string         `json:"description,omitempty"`
	Cause          string         `json:"cause,omitempty"`
	Detour         string         `json:"detour,omitempty"`
	Resolution     string         `json:"expected_resolution,omitempty"`
	Customers      *int           `json:"affected_customers,omitempty"`
	InformationURL string         `json:"information_url,omitempty"`
	Impacts        []string       `json:"impacts,omitempty"`
	ImpactTotal    int            `json:"impact_total,omitempty"`
	MoreImpacts    int            `json:"more_impacts,omitempty"`
	Position       *domain.LatLng `json:"position,omitempty"`
}

// Selection highlight shared by markers and shapes.
const selectedColor = "#00bcd4"

var statusColors = map[domain.Status]string{
	domain.StatusActive:    "red",
	domain.StatusRestored:  "green",
	domain.StatusCancelled: "gray",
	domain.StatusPostponed: "yellow",
	domain.StatusScheduled: "blue",
}

var impactColors = map[string]string{
	"road closed": "#ff4757",
	"caution":     "#ffa502",
	"delays":      "#ff6b6b",
}

// StatusColor returns the badge colour of a lifecycle status.
func StatusColor(s domain.Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "gray"
}

// ImpactColor returns the line colour of a road impact.
func ImpactColor(impact string) string {
	if c, ok := impactColors[strings.ToLower(impact)]; ok {
		return c
	}
	return "#ffa502"
}

// ImpactLine renders one impact for the hazard popup: "rainfall: 400 mm"
// when measured, otherwise the description cut to 60 characters.
func ImpactLine(im domain.Impact) string {
	if im.Value != nil && *im.Value != 0 && im.Unit != nil && *im.Unit != "" {
		return im.ImpactType + ": " + strconv.FormatFloat(*im.Value, 'f', -1, 64) + " " + *im.Unit
	}
	if utf8.RuneCountInString(im.Description) <= maxImpactDescRunes {
		return im.Description
	}
	runes := []rune(im.Description)
	return string(runes[:maxImpactDescRunes]) + "..."
}

func scheduleLabel(s domain.ScheduleType) string {
	if s == domain.SchedulePlanned {
		return "Planned"
	}
	return "Unplanned"
}
