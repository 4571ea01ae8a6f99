package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/event-dashboard/internal/dashboard"
	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/pkg/timefmt"
	"github.com/event-dashboard/internal/usecase/dto"
)

// CatalogUseCase - stateless reads: the category catalogue and one-shot
// filtering for clients that keep their own state.
type CatalogUseCase struct {
	source       repository.EventSource
	formatter    *timefmt.Formatter
	fetchTimeout time.Duration
	logger       *zap.Logger
}

// NewCatalogUseCase - create a new CatalogUseCase
func NewCatalogUseCase(
	source repository.EventSource,
	formatter *timefmt.Formatter,
	fetchTimeout time.Duration,
	logger *zap.Logger,
) *CatalogUseCase {
	if fetchTimeout <= 0 {
		fetchTimeout = dashboard.DefaultOptions().FetchTimeout
	}
	return &CatalogUseCase{
		source:       source,
		formatter:    formatter,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// Categories returns the picker catalogue.
func (uc *CatalogUseCase) Categories() *dto.CategoriesResponse {
	return &dto.CategoriesResponse{Categories: domain.Categories()}
}

// Events filters one category without debounce.
func (uc *CatalogUseCase) Events(ctx context.Context, q dto.EventsQuery) (*dashboard.Listing, error) {
	category, ok := domain.ParseCategory(q.Category)
	if !ok {
		return nil, toAppError(domain.ErrUnknownCategory)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	ds, err := uc.source.FetchAll(ctx, category)
	if err != nil {
		uc.logger.Error("Failed to fetch dataset",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, toAppError(err)
	}

	listing, err := dashboard.List(ds, filter.Criteria{
		SearchTerm: q.Query,
		Status:     q.Status,
		Type:       q.Type,
	}, q.Limit, uc.formatter)
	if err != nil {
		return nil, toAppError(err)
	}
	return &listing, nil
}
