package dashboard

import (
	"time"

	"github.com/event-dashboard/internal/domain/repository"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/observability"
	"github.com/event-dashboard/internal/pkg/timefmt"
	"github.com/event-dashboard/internal/selection"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Options - tunables of a dashboard session
type Options struct {
	Debounce     time.Duration
	ListLimit    int
	CameraZoom   int
	FetchTimeout time.Duration
}

// DefaultOptions returns the stock session behaviour.
func DefaultOptions() Options {
	return Options{
		Debounce:     filter.DefaultDebounce,
		ListLimit:    filter.DefaultListLimit,
		CameraZoom:   selection.DefaultZoom,
		FetchTimeout: 10 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Debounce <= 0 {
		o.Debounce = d.Debounce
	}
	if o.ListLimit <= 0 {
		o.ListLimit = d.ListLimit
	}
	if o.CameraZoom <= 0 {
		o.CameraZoom = d.CameraZoom
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = d.FetchTimeout
	}
	return o
}

// Deps - collaborators shared by every session
type Deps struct {
	Source    repository.EventSource
	Clock     clockwork.Clock
	Formatter *timefmt.Formatter
	Logger    *zap.Logger
	Metrics   *observability.Metrics
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Formatter == nil {
		d.Formatter, _ = timefmt.New(timefmt.DefaultZone, d.Clock)
	}
	return d
}
