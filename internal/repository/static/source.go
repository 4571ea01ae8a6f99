// Package static serves event datasets from JSON snapshots embedded in the binary.
package static

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

//go:embed data/*.json
var snapshots embed.FS

// Source - read-only EventSource over JSON snapshots
type Source struct {
	fsys   fs.FS
	clock  clockwork.Clock
	logger *zap.Logger
}

// New creates a Source over the embedded snapshots.
func New(clock clockwork.Clock, logger *zap.Logger) repository.EventSource {
	sub, err := fs.Sub(snapshots, "data")
	if err != nil {
		panic(err)
	}
	return NewFromFS(sub, clock, logger)
}

// NewFromFS creates a Source reading <category>.json files from fsys.
func NewFromFS(fsys fs.FS, clock clockwork.Clock, logger *zap.Logger) *Source {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{fsys: fsys, clock: clock, logger: logger}
}

// FetchAll decodes the category's snapshot on every call so each caller owns
// its records.
func (s *Source) FetchAll(ctx context.Context, category domain.Category) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataFetch, err)
	}
	if _, ok := category.Info(); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	raw, err := fs.ReadFile(s.fsys, string(category)+".json")
	if err != nil {
		s.logger.Error("Failed to read snapshot", zap.String("category", string(category)), zap.Error(err))
		return nil, fmt.Errorf("%w: read %s snapshot: %v", domain.ErrDataFetch, category, err)
	}

	ds := &domain.Dataset{Category: category, FetchedAt: s.clock.Now()}
	switch category {
	case domain.CategoryPowerOutages:
		err = json.Unmarshal(raw, &ds.Outages)
	case domain.CategoryRoadClosures:
		err = json.Unmarshal(raw, &ds.RoadClosures)
	case domain.CategoryWeatherHazards:
		err = json.Unmarshal(raw, &ds.WeatherEvents)
	}
	if err != nil {
		s.logger.Error("Failed to decode snapshot", zap.String("category", string(category)), zap.Error(err))
		return nil, fmt.Errorf("%w: decode %s snapshot: %v", domain.ErrDataFetch, category, err)
	}

	s.logger.Debug("Snapshot loaded",
		zap.String("category", string(category)),
		zap.Int("records", ds.Len()),
	)
	return ds, nil
}
