package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const datasetKeyPrefix = "dataset:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// DatasetKey is the cache key holding a category's dataset.
func DatasetKey(category domain.Category) string {
	return datasetKeyPrefix + string(category)
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetDataset reads a cached dataset. A miss returns nil, nil.
func (r *cacheRepository) GetDataset(ctx context.Context, category domain.Category) (*domain.Dataset, error) {
	data, err := r.Get(ctx, DatasetKey(category))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		r.logger.Error("Failed to unmarshal dataset from cache",
			zap.String("category", string(category)), zap.Error(err))
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}

	return &ds, nil
}

// SetDataset stores a dataset under its category key.
func (r *cacheRepository) SetDataset(ctx context.Context, dataset *domain.Dataset, ttl time.Duration) error {
	data, err := json.Marshal(dataset)
	if err != nil {
		r.logger.Error("Failed to marshal dataset", zap.Error(err))
		return fmt.Errorf("marshal dataset: %w", err)
	}

	return r.Set(ctx, DatasetKey(dataset.Category), data, ttl)
}
