package dashboard

import (
	"strings"
	"time"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/geometry"
	"github.com/event-dashboard/internal/pkg/timefmt"
	"github.com/event-dashboard/internal/selection"
)

// behavior is the per-category half of the dashboard: indexing, selection
// routing and rendering.
type behavior interface {
	index(ds *domain.Dataset) filter.Index
	selectItem(st *categoryState, id domain.ID) (selection.Granularity, bool)
	clickMarker(st *categoryState, id domain.ID) (selection.Granularity, bool)
	clearSelection(st *categoryState)
	showAll(st *categoryState) error
	reconcile(st *categoryState)
	render(r renderer, st *categoryState, v *View)
}

var behaviors = map[domain.Category]behavior{
	domain.CategoryPowerOutages:   outageBehavior{},
	domain.CategoryRoadClosures:   roadBehavior{},
	domain.CategoryWeatherHazards: weatherBehavior{},
}

type renderer struct {
	fmt   *timefmt.Formatter
	limit int
	zoom  int
}

func (r renderer) relative(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return r.fmt.Relative(t)
}

func (r renderer) camera(pos domain.LatLng) *selection.CameraMove {
	c := selection.CameraFor(pos, r.zoom)
	return &c
}

func markerColor(base string, selected bool) string {
	if selected {
		return selectedColor
	}
	return base
}

// outages

type outageBehavior struct{}

func findOutage(ds *domain.Dataset, id domain.ID) (domain.Outage, bool) {
	for _, o := range ds.Outages {
		if o.EntityID() == id {
			return o, true
		}
	}
	return domain.Outage{}, false
}

func (outageBehavior) index(ds *domain.Dataset) filter.Index {
	return filter.BuildIndex(ds.Outages)
}

func (outageBehavior) selectItem(st *categoryState, id domain.ID) (selection.Granularity, bool) {
	if _, ok := findOutage(st.dataset, id); ok {
		st.record.Select(id)
		return selection.GranularityRecord, true
	}
	st.record.Clear()
	return selection.GranularityRecord, false
}

func (b outageBehavior) clickMarker(st *categoryState, id domain.ID) (selection.Granularity, bool) {
	return b.selectItem(st, id)
}

func (outageBehavior) clearSelection(st *categoryState) { st.record.Clear() }

func (outageBehavior) showAll(*categoryState) error { return domain.ErrNotSupported }

func (outageBehavior) reconcile(st *categoryState) {
	st.record.Reconcile(func(id domain.ID) bool {
		_, ok := findOutage(st.dataset, id)
		return ok
	})
}

func (outageBehavior) render(r renderer, st *categoryState, v *View) {
	matches := filter.Apply(st.dataset.Outages, st.criteria)
	v.Total = len(matches)

	for _, o := range filter.Truncate(matches, r.limit) {
		res := geometry.Resolve(o.LocationGeometry.Geometry)
		v.Items = append(v.Items, ListItem{
			ID:             o.EntityID(),
			Title:          o.LocationDescription,
			Subtitle:       "Provider: " + strings.ToUpper(o.Provider),
			Classification: string(o.Status),
			Color:          StatusColor(o.Status),
			TimeRange:      r.fmt.Range(o.StartTime, o.EndTime),
			Updated:        r.relative(o.LastUpdated),
			Locatable:      res.Renderable,
			Selected:       st.record.Is(o.EntityID()),
		})
	}

	for _, o := range matches {
		res := geometry.Resolve(o.LocationGeometry.Geometry)
		if !res.Renderable {
			continue
		}
		selected := st.record.Is(o.EntityID())
		v.Markers = append(v.Markers, Marker{
			ID:             o.EntityID(),
			Position:       res.Center,
			Classification: string(o.Status),
			Color:          markerColor(StatusColor(o.Status), selected),
			Selected:       selected,
		})
	}

	summary := filter.SummarizeOutages(st.dataset.Outages)
	v.Stats = &Stats{
		Total:             summary.Total,
		Active:            summary.Active,
		StatusCounts:      st.index.StatusCounts,
		TypeCounts:        st.index.TypeCounts,
		AffectedCustomers: &summary.AffectedCustomers,
	}

	id, ok := st.record.Selected()
	if !ok {
		return
	}
	o, found := findOutage(st.dataset, id)
	if !found {
		return
	}
	d := &Detail{
		Kind:           DetailOutage,
		ID:             id,
		Title:          o.LocationDescription,
		Classification: string(o.Status),
		Status:         string(o.Status),
		Schedule:       scheduleLabel(o.ScheduleType),
		TimeRange:      r.fmt.Range(o.StartTime, o.EndTime),
		Updated:        r.relative(o.LastUpdated),
		Provider:       o.Provider,
		Region:         o.Region,
		Description:    o.LatestUpdate,
		Cause:          o.Cause,
		Customers:      o.AffectedCustomers,
		InformationURL: o.InformationURL,
	}
	if res := geometry.Resolve(o.LocationGeometry.Geometry); res.Renderable {
		pos := res.Center
		d.Position = &pos
		v.Camera = r.camera(pos)
	}
	v.Selected = d
}

// road closures

type roadBehavior struct{}

func findRoadClosure(ds *domain.Dataset, id domain.ID) (domain.RoadClosure, bool) {
	for _, rc := range ds.RoadClosures {
		if rc.EntityID() == id {
			return rc, true
		}
	}
	return domain.RoadClosure{}, false
}

func (roadBehavior) index(ds *domain.Dataset) filter.Index {
	return filter.BuildIndex(ds.RoadClosures)
}

func (roadBehavior) selectItem(st *categoryState, id domain.ID) (selection.Granularity, bool) {
	if _, ok := findRoadClosure(st.dataset, id); ok {
		st.record.Select(id)
		return selection.GranularityRecord, true
	}
	st.record.Clear()
	return selection.GranularityRecord, false
}

func (b roadBehavior) clickMarker(st *categoryState, id domain.ID) (selection.Granularity, bool) {
	return b.selectItem(st, id)
}

func (roadBehavior) clearSelection(st *categoryState) { st.record.Clear() }

func (roadBehavior) showAll(*categoryState) error { return domain.ErrNotSupported }

func (roadBehavior) reconcile(st *categoryState) {
	st.record.Reconcile(func(id domain.ID) bool {
		_, ok := findRoadClosure(st.dataset, id)
		return ok
	})
}

func (roadBehavior) render(r renderer, st *categoryState, v *View) {
	matches := filter.Apply(st.dataset.RoadClosures, st.criteria)
	v.Total = len(matches)

	for _, rc := range filter.Truncate(matches, r.limit) {
		res := geometry.Resolve(rc.LocationGeometry.Geometry)
		v.Items = append(v.Items, ListItem{
			ID:             rc.EntityID(),
			Title:          rc.LocationDescription,
			Subtitle:       rc.EventType,
			Classification: rc.Impact,
			Color:          ImpactColor(rc.Impact),
			TimeRange:      r.fmt.Range(rc.StartTime, rc.EndTime),
			Updated:        r.relative(rc.LastUpdated),
			Locatable:      res.Renderable,
			Selected:       st.record.Is(rc.EntityID()),
		})
	}

	for _, rc := range matches {
		res := geometry.Resolve(rc.LocationGeometry.Geometry)
		if !res.Renderable {
			continue
		}
		selected := st.record.Is(rc.EntityID())
		v.Markers = append(v.Markers, Marker{
			ID:             rc.EntityID(),
			Position:       res.Center,
			Classification: rc.Impact,
			Color:          markerColor(ImpactColor(rc.Impact), selected),
			Selected:       selected,
		})
		if len(res.Lines) == 0 {
			continue
		}
		shape := Shape{
			ID:             rc.EntityID(),
			Lines:          res.Lines,
			Classification: rc.Impact,
			Color:          markerColor(ImpactColor(rc.Impact), selected),
			Weight:         4,
			Opacity:        0.8,
			Selected:       selected,
		}
		if selected {
			shape.Weight, shape.Opacity = 6, 1
		}
		v.Shapes = append(v.Shapes, shape)
	}

	v.Stats = &Stats{
		Total:        st.index.Total,
		Active:       st.index.StatusCounts[string(domain.StatusActive)],
		StatusCounts: st.index.StatusCounts,
		TypeCounts:   st.index.TypeCounts,
	}

	id, ok := st.record.Selected()
	if !ok {
		return
	}
	rc, found := findRoadClosure(st.dataset, id)
	if !found {
		return
	}
	d := &Detail{
		Kind:           DetailRoadClosure,
		ID:             id,
		Title:          rc.LocationDescription,
		Classification: rc.Impact,
		Status:         string(rc.Status),
		Schedule:       scheduleLabel(rc.ScheduleType),
		TimeRange:      r.fmt.Range(rc.StartTime, rc.EndTime),
		Updated:        r.relative(rc.LastUpdated),
		Provider:       rc.Provider,
		Region:         strings.Join(rc.Region, ", "),
		Description:    rc.Description,
		Detour:         rc.Detour(),
		Resolution:     rc.ExpectedResolution,
	}
	if res := geometry.Resolve(rc.LocationGeometry.Geometry); res.Renderable {
		pos := res.Center
		d.Position = &pos
		v.Camera = r.camera(pos)
	}
	v.Selected = d
}

// historic weather

type weatherBehavior struct{}

func findEvent(ds *domain.Dataset, id domain.ID) (domain.WeatherEvent, bool) {
	for _, e := range ds.WeatherEvents {
		if e.EntityID() == id {
			return e, true
		}
	}
	return domain.WeatherEvent{}, false
}

// findHazard returns the hazard and its owning event.
func findHazard(ds *domain.Dataset, id domain.ID) (domain.Hazard, domain.WeatherEvent, bool) {
	for _, e := range ds.WeatherEvents {
		for _, h := range e.Hazards {
			if h.EntityID() == id {
				return h, e, true
			}
		}
	}
	return domain.Hazard{}, domain.WeatherEvent{}, false
}

func (weatherBehavior) index(ds *domain.Dataset) filter.Index {
	return filter.BuildIndex(ds.WeatherEvents)
}

func (weatherBehavior) selectItem(st *categoryState, id domain.ID) (selection.Granularity, bool) {
	if _, ok := findEvent(st.dataset, id); ok {
		st.weather.SelectEvent(id)
		return selection.GranularityEvent, true
	}
	st.weather.Clear()
	return selection.GranularityEvent, false
}

// clickMarker only accepts hazards that are on the map right now.
func (weatherBehavior) clickMarker(st *categoryState, id domain.ID) (selection.Granularity, bool) {
	plotted, _ := plottedHazards(st, filter.Apply(st.dataset.WeatherEvents, st.criteria))
	for _, h := range plotted {
		if h.EntityID() == id {
			st.weather.SelectHazard(id)
			return selection.GranularityHazard, true
		}
	}
	st.weather.ClearHazard()
	return selection.GranularityHazard, false
}

// plottedHazards returns the hazards that get a marker, and the map title
// when an event is selected.
func plottedHazards(st *categoryState, matches []domain.WeatherEvent) ([]domain.Hazard, string) {
	var candidates []domain.Hazard
	title := ""
	if eventID, ok := st.weather.Event(); ok {
		if e, found := findEvent(st.dataset, eventID); found {
			candidates = filter.MappableHazards([]domain.WeatherEvent{e}, filter.All)
			title = e.Title
		}
	} else if st.weather.ShowingAll() {
		candidates = filter.MappableHazards(matches, st.criteria.Type)
	}

	var plotted []domain.Hazard
	for _, h := range candidates {
		if _, ok := geometry.ResolveLatLng(h.Latitude, h.Longitude); ok {
			plotted = append(plotted, h)
		}
	}
	return plotted, title
}

func (weatherBehavior) clearSelection(st *categoryState) { st.weather.Clear() }

func (weatherBehavior) showAll(st *categoryState) error {
	st.weather.ShowAll()
	return nil
}

func (weatherBehavior) reconcile(st *categoryState) {
	st.weather.Reconcile(
		func(id domain.ID) bool {
			_, ok := findEvent(st.dataset, id)
			return ok
		},
		func(id domain.ID) bool {
			_, _, ok := findHazard(st.dataset, id)
			return ok
		},
	)
}

func (weatherBehavior) render(r renderer, st *categoryState, v *View) {
	matches := filter.Apply(st.dataset.WeatherEvents, st.criteria)
	v.Total = len(matches)
	v.ShowAll = st.weather.ShowingAll()

	eventID, eventSelected := st.weather.Event()
	hazardID, hazardSelected := st.weather.Hazard()

	for _, e := range filter.Truncate(matches, r.limit) {
		count := e.MappableHazardCount()
		v.Items = append(v.Items, ListItem{
			ID:             e.EntityID(),
			Title:          e.Title,
			Subtitle:       e.StartDate,
			Classification: e.StatusValue(),
			Badge:          &count,
			Locatable:      count > 0,
			Selected:       eventSelected && e.EntityID() == eventID,
		})
	}

	plotted, title := plottedHazards(st, matches)
	v.Map.Title = title

	positions := make([]domain.LatLng, 0, len(plotted))
	for _, h := range plotted {
		pos, _ := geometry.ResolveLatLng(h.Latitude, h.Longitude)
		selected := hazardSelected && h.EntityID() == hazardID
		label := ""
		if h.LocationName != nil {
			label = *h.LocationName
		}
		v.Markers = append(v.Markers, Marker{
			ID:             h.EntityID(),
			Position:       pos,
			Classification: h.HazardType,
			Color:          markerColor("white", selected),
			Label:          label,
			Selected:       selected,
		})
		positions = append(positions, pos)
	}
	if eventSelected && !hazardSelected {
		if b, ok := geometry.BoundsOf(positions); ok {
			v.Map.FitBounds = &b
		}
	}

	mappable := 0
	for _, e := range st.dataset.WeatherEvents {
		mappable += e.MappableHazardCount()
	}
	v.Stats = &Stats{
		Total:           st.index.Total,
		StatusCounts:    st.index.StatusCounts,
		TypeCounts:      st.index.TypeCounts,
		MappableHazards: &mappable,
	}

	switch {
	case hazardSelected:
		h, owner, ok := findHazard(st.dataset, hazardID)
		if !ok {
			return
		}
		v.Selected = hazardDetail(h, owner)
		if pos, ok := geometry.ResolveLatLng(h.Latitude, h.Longitude); ok {
			v.Selected.Position = &pos
			v.Camera = r.camera(pos)
		}
	case eventSelected:
		e, ok := findEvent(st.dataset, eventID)
		if !ok {
			return
		}
		v.Selected = &Detail{
			Kind:           DetailWeatherEvent,
			ID:             eventID,
			Title:          e.Title,
			Classification: e.StatusValue(),
			TimeRange:      e.StartDate,
			Description:    e.Abstract,
		}
	}
}

func hazardDetail(h domain.Hazard, owner domain.WeatherEvent) *Detail {
	title := owner.Title
	if title == "" {
		title = "Weather Hazard"
	}
	d := &Detail{
		Kind:           DetailHazard,
		ID:             h.EntityID(),
		Title:          title,
		Classification: h.HazardType,
		Region:         h.Region,
		ImpactTotal:    len(h.Impacts),
	}
	if h.LocationName != nil {
		d.Location = *h.LocationName
	}
	for i, im := range h.Impacts {
		if i == maxPopupImpacts {
			d.MoreImpacts = len(h.Impacts) - maxPopupImpacts
			break
		}
		d.Impacts = append(d.Impacts, ImpactLine(im))
	}
	return d
}
