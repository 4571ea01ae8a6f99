package repository

import (
	"context"
	"time"

	"github.com/event-dashboard/internal/domain"
)

// CacheRepository - key/value cache in front of the event sources
type CacheRepository interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// GetDataset returns nil, nil on a cache miss.
	GetDataset(ctx context.Context, category domain.Category) (*domain.Dataset, error)

	SetDataset(ctx context.Context, dataset *domain.Dataset, ttl time.Duration) error
}
