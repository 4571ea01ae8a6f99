package repository

import (
	"context"

	"github.com/event-dashboard/internal/domain"
)

// EventSource is the read-only data boundary of the dashboard.
type EventSource interface {
	// FetchAll returns every record of the category. Implementations wrap
	// transport and decoding failures in domain.ErrDataFetch.
	FetchAll(ctx context.Context, category domain.Category) (*domain.Dataset, error)
}

// Invalidator is implemented by sources that keep a copy of upstream data.
// Reloads call it so the next fetch goes to the origin.
type Invalidator interface {
	Invalidate(ctx context.Context, category domain.Category) error
}
