// Package timefmt renders event times the way New Zealand readers expect:
// "15 Jan 2024, 3:00 pm".
package timefmt

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
)

// DefaultZone is used when no zone is configured or it cannot be loaded.
const DefaultZone = "Pacific/Auckland"

const (
	dateLayout = "2 Jan 2006"
	timeLayout = "3:04 pm"
)

// Formatter - clock and zone aware time renderer
type Formatter struct {
	loc   *time.Location
	clock clockwork.Clock
}

// New creates a Formatter for the named IANA zone. An unknown zone falls back
// to UTC and the load error is returned alongside a usable Formatter.
func New(zone string, clock clockwork.Clock) (*Formatter, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return &Formatter{loc: time.UTC, clock: clock}, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return &Formatter{loc: loc, clock: clock}, nil
}

// Location returns the zone times are rendered in.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Date renders "15 Jan 2024".
func (f *Formatter) Date(t time.Time) string {
	return t.In(f.loc).Format(dateLayout)
}

// Time renders "3:00 pm".
func (f *Formatter) Time(t time.Time) string {
	return t.In(f.loc).Format(timeLayout)
}

// DateTime renders "15 Jan 2024 at 3:00 pm".
func (f *Formatter) DateTime(t time.Time) string {
	return f.Date(t) + " at " + f.Time(t)
}

// Range renders a start/end pair. A nil end is "Ongoing"; an end on the same
// local day drops the repeated date.
func (f *Formatter) Range(start time.Time, end *time.Time) string {
	head := f.Date(start) + ", " + f.Time(start)
	if end == nil {
		return head + " - Ongoing"
	}
	if f.Date(start) == f.Date(*end) {
		return head + " - " + f.Time(*end)
	}
	return head + " - " + f.Date(*end) + ", " + f.Time(*end)
}

// Relative renders t against the formatter's clock: "3 hours ago",
// "in 2 days", "just now".
func (f *Formatter) Relative(t time.Time) string {
	diff := f.clock.Now().Sub(t)
	future := diff < 0
	if future {
		diff = -diff
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff / time.Hour)
	mins := int(diff / time.Minute)

	var phrase string
	switch {
	case days > 0:
		phrase = plural(days, "day")
	case hours > 0:
		phrase = plural(hours, "hour")
	case mins > 0:
		phrase = plural(mins, "minute")
	default:
		if future {
			return "in a moment"
		}
		return "just now"
	}

	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
