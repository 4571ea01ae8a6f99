package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	outagesQuery = `
		SELECT id, provider, category, status, schedule_type, start_time, end_time,
		       last_updated, fetched_at, cause, location_description, location_geometry,
		       region, affected_customers, information_url, comments, latest_update,
		       reschedule_history
		FROM outages
		ORDER BY start_time DESC, id`

	roadClosuresQuery = `
		SELECT id, provider, category, status, event_type, schedule_type, start_time,
		       end_time, created_time, last_updated, description, comments, impact,
		       region, location_description, location_geometry, detour_description,
		       expected_resolution
		FROM road_closures
		ORDER BY start_time DESC, id`

	weatherEventsQuery = `
		SELECT id, event_identifier, title, start_date, return_period_category, abstract
		FROM weather_events
		ORDER BY start_date DESC, id`

	hazardsQuery = `
		SELECT id, event_id, region, hazard_type, location_name, latitude, longitude
		FROM hazards
		WHERE event_id = ANY($1)
		ORDER BY event_id, id`

	impactsQuery = `
		SELECT id, hazard_id, impact_type, value, unit, description
		FROM impacts
		WHERE hazard_id = ANY($1)
		ORDER BY hazard_id, id`
)

type outageRow struct {
	domain.Outage
	RescheduleJSON []byte `db:"reschedule_history"`
}

type roadClosureRow struct {
	domain.RoadClosure
	Regions pq.StringArray `db:"region"`
}

type eventRepository struct {
	db     *DB
	logger *zap.Logger
	now    func() time.Time
}

// NewEventRepository creates the PostgreSQL event source.
func NewEventRepository(db *DB) repository.EventSource {
	return &eventRepository{
		db:     db,
		logger: db.logger,
		now:    time.Now,
	}
}

func (r *eventRepository) FetchAll(ctx context.Context, category domain.Category) (*domain.Dataset, error) {
	ds := &domain.Dataset{Category: category, FetchedAt: r.now()}

	var err error
	switch category {
	case domain.CategoryPowerOutages:
		ds.Outages, err = r.fetchOutages(ctx)
	case domain.CategoryRoadClosures:
		ds.RoadClosures, err = r.fetchRoadClosures(ctx)
	case domain.CategoryWeatherHazards:
		ds.WeatherEvents, err = r.fetchWeatherEvents(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	if err != nil {
		r.logger.Error("failed to fetch events", zap.String("category", string(category)), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDataFetch, category, err)
	}

	return ds, nil
}

func (r *eventRepository) fetchOutages(ctx context.Context) ([]domain.Outage, error) {
	var rows []outageRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, outagesQuery); err != nil {
		return nil, fmt.Errorf("select outages: %w", err)
	}

	out := make([]domain.Outage, 0, len(rows))
	for _, row := range rows {
		o := row.Outage
		if len(row.RescheduleJSON) > 0 {
			if err := json.Unmarshal(row.RescheduleJSON, &o.RescheduleHistory); err != nil {
				r.logger.Warn("skipping unreadable reschedule history",
					zap.String("outage_id", o.ID), zap.Error(err))
				o.RescheduleHistory = nil
			}
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *eventRepository) fetchRoadClosures(ctx context.Context) ([]domain.RoadClosure, error) {
	var rows []roadClosureRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, roadClosuresQuery); err != nil {
		return nil, fmt.Errorf("select road closures: %w", err)
	}

	out := make([]domain.RoadClosure, 0, len(rows))
	for _, row := range rows {
		rc := row.RoadClosure
		rc.Region = []string(row.Regions)
		out = append(out, rc)
	}
	return out, nil
}

func (r *eventRepository) fetchWeatherEvents(ctx context.Context) ([]domain.WeatherEvent, error) {
	var events []domain.WeatherEvent
	if err := sqlx.SelectContext(ctx, r.db, &events, weatherEventsQuery); err != nil {
		return nil, fmt.Errorf("select weather events: %w", err)
	}
	if len(events) == 0 {
		return []domain.WeatherEvent{}, nil
	}

	eventIDs := make([]int64, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}

	var hazards []domain.Hazard
	if err := sqlx.SelectContext(ctx, r.db, &hazards, hazardsQuery, pq.Array(eventIDs)); err != nil {
		return nil, fmt.Errorf("select hazards: %w", err)
	}

	hazardIDs := make([]int64, 0, len(hazards))
	for _, h := range hazards {
		hazardIDs = append(hazardIDs, h.ID)
	}

	var impacts []domain.Impact
	if len(hazardIDs) > 0 {
		if err := sqlx.SelectContext(ctx, r.db, &impacts, impactsQuery, pq.Array(hazardIDs)); err != nil {
			return nil, fmt.Errorf("select impacts: %w", err)
		}
	}

	return assembleWeather(events, hazards, impacts), nil
}

// assembleWeather nests impacts into hazards and hazards into events,
// keeping the order of each input slice. Orphans are dropped.
func assembleWeather(events []domain.WeatherEvent, hazards []domain.Hazard, impacts []domain.Impact) []domain.WeatherEvent {
	impactsByHazard := make(map[int64][]domain.Impact)
	for _, im := range impacts {
		impactsByHazard[im.HazardID] = append(impactsByHazard[im.HazardID], im)
	}

	hazardsByEvent := make(map[int64][]domain.Hazard)
	for _, h := range hazards {
		h.Impacts = impactsByHazard[h.ID]
		if h.Impacts == nil {
			h.Impacts = []domain.Impact{}
		}
		hazardsByEvent[h.EventID] = append(hazardsByEvent[h.EventID], h)
	}

	out := make([]domain.WeatherEvent, 0, len(events))
	for _, e := range events {
		e.Hazards = hazardsByEvent[e.ID]
		if e.Hazards == nil {
			e.Hazards = []domain.Hazard{}
		}
		out = append(out, e)
	}
	return out
}
