package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/event-dashboard/internal/domain"
)

const (
	insertOutage = `
		INSERT INTO outages (
			id, provider, category, status, schedule_type, start_time, end_time,
			last_updated, fetched_at, cause, location_description, location_geometry,
			region, affected_customers, information_url, comments, latest_update,
			reschedule_history
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	insertRoadClosure = `
		INSERT INTO road_closures (
			id, provider, category, status, event_type, schedule_type, start_time,
			end_time, created_time, last_updated, description, comments, impact,
			region, location_description, location_geometry, detour_description,
			expected_resolution
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	insertWeatherEvent = `
		INSERT INTO weather_events (id, event_identifier, title, start_date, return_period_category, abstract)
		VALUES ($1, $2, $3, $4, $5, $6)`

	insertHazard = `
		INSERT INTO hazards (id, event_id, region, hazard_type, location_name, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	insertImpact = `
		INSERT INTO impacts (id, hazard_id, impact_type, value, unit, description)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

// EventWriter replaces the stored records of a category in one transaction.
type EventWriter struct {
	db     *DB
	logger *zap.Logger
}

func NewEventWriter(db *DB) *EventWriter {
	return &EventWriter{db: db, logger: db.logger}
}

// Replace deletes every stored record of ds.Category and inserts ds.
func (w *EventWriter) Replace(ctx context.Context, ds *domain.Dataset) error {
	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	switch ds.Category {
	case domain.CategoryPowerOutages:
		err = replaceOutages(ctx, tx, ds.Outages)
	case domain.CategoryRoadClosures:
		err = replaceRoadClosures(ctx, tx, ds.RoadClosures)
	case domain.CategoryWeatherHazards:
		err = replaceWeatherEvents(ctx, tx, ds.WeatherEvents)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, ds.Category)
	}
	if err != nil {
		return fmt.Errorf("replace %s: %w", ds.Category, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	w.logger.Info("Dataset stored",
		zap.String("category", string(ds.Category)),
		zap.Int("records", ds.Len()))
	return nil
}

func replaceOutages(ctx context.Context, tx *sqlx.Tx, outages []domain.Outage) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM outages`); err != nil {
		return err
	}
	for _, o := range outages {
		history := o.RescheduleHistory
		if history == nil {
			history = []domain.RescheduleEntry{}
		}
		historyJSON, err := json.Marshal(history)
		if err != nil {
			return fmt.Errorf("outage %s: %w", o.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insertOutage,
			o.ID, o.Provider, o.Category, o.Status, o.ScheduleType, o.StartTime, o.EndTime,
			o.LastUpdated, o.FetchedAt, o.Cause, o.LocationDescription, o.LocationGeometry,
			o.Region, o.AffectedCustomers, o.InformationURL, o.Comments, o.LatestUpdate,
			string(historyJSON),
		); err != nil {
			return fmt.Errorf("outage %s: %w", o.ID, err)
		}
	}
	return nil
}

func replaceRoadClosures(ctx context.Context, tx *sqlx.Tx, closures []domain.RoadClosure) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM road_closures`); err != nil {
		return err
	}
	for _, rc := range closures {
		regions := rc.Region
		if regions == nil {
			regions = []string{}
		}
		if _, err := tx.ExecContext(ctx, insertRoadClosure,
			rc.ID, rc.Provider, rc.Category, rc.Status, rc.EventType, rc.ScheduleType, rc.StartTime,
			rc.EndTime, rc.CreatedTime, rc.LastUpdated, rc.Description, rc.Comments, rc.Impact,
			pq.Array(regions), rc.LocationDescription, rc.LocationGeometry, rc.DetourDescription,
			rc.ExpectedResolution,
		); err != nil {
			return fmt.Errorf("road closure %s: %w", rc.ID, err)
		}
	}
	return nil
}

func replaceWeatherEvents(ctx context.Context, tx *sqlx.Tx, events []domain.WeatherEvent) error {
	// hazards and impacts go with their events
	if _, err := tx.ExecContext(ctx, `DELETE FROM weather_events`); err != nil {
		return err
	}
	for _, e := range events {
		identifier := e.EventIdentifier
		if identifier == "" {
			identifier = strconv.FormatInt(e.ID, 10)
		}
		if _, err := tx.ExecContext(ctx, insertWeatherEvent,
			e.ID, identifier, e.Title, e.StartDate, e.ReturnPeriodCategory, e.Abstract,
		); err != nil {
			return fmt.Errorf("weather event %d: %w", e.ID, err)
		}
		for _, h := range e.Hazards {
			if _, err := tx.ExecContext(ctx, insertHazard,
				h.ID, e.ID, h.Region, h.HazardType, h.LocationName, h.Latitude, h.Longitude,
			); err != nil {
				return fmt.Errorf("hazard %d: %w", h.ID, err)
			}
			for _, im := range h.Impacts {
				if _, err := tx.ExecContext(ctx, insertImpact,
					im.ID, h.ID, im.ImpactType, im.Value, im.Unit, im.Description,
				); err != nil {
					return fmt.Errorf("impact %d: %w", im.ID, err)
				}
			}
		}
	}

	for _, table := range []string{"weather_events", "hazards", "impacts"} {
		q := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s`,
			table)
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}
