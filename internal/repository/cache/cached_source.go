package cache

import (
	"context"
	"time"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/event-dashboard/internal/observability"
	"go.uber.org/zap"
)

// CachedSource - read-through dataset cache in front of another event source.
// Cache failures degrade to the origin and are never returned to callers.
type CachedSource struct {
	next    repository.EventSource
	cache   repository.CacheRepository
	ttl     time.Duration
	logger  *zap.Logger
	metrics *observability.Metrics
}

func NewCachedSource(
	next repository.EventSource,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{
		next:    next,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *CachedSource) FetchAll(ctx context.Context, category domain.Category) (*domain.Dataset, error) {
	cached, err := s.cache.GetDataset(ctx, category)
	switch {
	case err != nil:
		s.observe(category, "error")
		s.logger.Warn("Dataset cache unavailable, loading from origin",
			zap.String("category", string(category)), zap.Error(err))
	case cached != nil && cached.Category == category:
		s.observe(category, "hit")
		return cached, nil
	default:
		s.observe(category, "miss")
	}

	ds, err := s.next.FetchAll(ctx, category)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDataset(ctx, ds, s.ttl); err != nil {
		s.logger.Warn("Failed to cache dataset", zap.String("category", string(category)), zap.Error(err))
	}
	return ds, nil
}

// Invalidate drops the cached dataset of category.
func (s *CachedSource) Invalidate(ctx context.Context, category domain.Category) error {
	return s.cache.Delete(ctx, DatasetKey(category))
}

func (s *CachedSource) observe(category domain.Category, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CacheLookups.WithLabelValues(string(category), result).Inc()
}
