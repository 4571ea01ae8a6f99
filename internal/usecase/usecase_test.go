package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/event-dashboard/internal/dashboard"
	"github.com/event-dashboard/internal/domain"
	apperrors "github.com/event-dashboard/internal/pkg/errors"
	"github.com/event-dashboard/internal/repository/static"
	"github.com/event-dashboard/internal/usecase"
	"github.com/event-dashboard/internal/usecase/dto"
)

// MockEventSource is a mock of EventSource
type MockEventSource struct {
	mock.Mock
}

func (m *MockEventSource) FetchAll(ctx context.Context, category domain.Category) (*domain.Dataset, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func ptrString(s string) *string { return &s }

func newDashboardUseCase() *usecase.DashboardUseCase {
	logger := zap.NewNop()
	deps := dashboard.Deps{Source: static.New(nil, logger), Logger: logger}
	return usecase.NewDashboardUseCase(dashboard.NewManager(deps, dashboard.DefaultOptions(), 0), logger)
}

func TestDashboardUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("session lifecycle", func(t *testing.T) {
		uc := newDashboardUseCase()

		created, view := uc.CreateSession()
		require.NotEmpty(t, created.SessionID)
		assert.Equal(t, created.SessionID, view.SessionID)
		assert.Equal(t, domain.CategoryNone, view.Category)

		view, err := uc.SelectCategory(ctx, created.SessionID, dto.SelectCategoryRequest{Category: "road-closures"})
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryRoadClosures, view.Category)

		view, err = uc.SetFilters(created.SessionID, dto.FilterRequest{Type: ptrString("Caution")})
		require.NoError(t, err)
		assert.Equal(t, 2, view.Total)

		view, err = uc.Select(created.SessionID, dto.SelectRequest{ID: "nzta-2024-1003"})
		require.NoError(t, err)
		require.NotNil(t, view.Selected)

		view, err = uc.ClearSelection(created.SessionID)
		require.NoError(t, err)
		assert.Nil(t, view.Selected)

		view, err = uc.ClearFilters(created.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 7, view.Total)

		view, err = uc.Back(created.SessionID)
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryNone, view.Category)

		uc.DeleteSession(created.SessionID)
		_, err = uc.View(created.SessionID)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("weather markers", func(t *testing.T) {
		uc := newDashboardUseCase()
		created, _ := uc.CreateSession()

		_, err := uc.SelectCategory(ctx, created.SessionID, dto.SelectCategoryRequest{Category: "historic-weather-hazards"})
		require.NoError(t, err)

		view, err := uc.ClickMarker(created.SessionID, "301")
		require.NoError(t, err)
		require.NotNil(t, view.Selected)
		assert.Equal(t, dashboard.DetailHazard, view.Selected.Kind)

		view, err = uc.ShowAll(created.SessionID)
		require.NoError(t, err)
		assert.True(t, view.ShowAll)
		assert.Nil(t, view.Selected)

		view, err = uc.Reload(ctx, created.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 4, view.Total)
	})

	t.Run("errors map to api errors", func(t *testing.T) {
		uc := newDashboardUseCase()
		created, _ := uc.CreateSession()

		_, err := uc.Search(created.SessionID, dto.SearchRequest{Term: "x"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

		_, err = uc.SelectCategory(ctx, created.SessionID, dto.SelectCategoryRequest{Category: "earthquakes"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)

		_, err = uc.SelectCategory(ctx, created.SessionID, dto.SelectCategoryRequest{Category: "power-outages"})
		require.NoError(t, err)
		_, err = uc.ShowAll(created.SessionID)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

		_, err = uc.View("missing")
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})
}

func TestCatalogUseCase(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("categories", func(t *testing.T) {
		uc := usecase.NewCatalogUseCase(static.New(nil, logger), nil, 0, logger)

		got := uc.Categories()

		require.Len(t, got.Categories, 3)
		assert.Equal(t, domain.CategoryPowerOutages, got.Categories[0].ID)
	})

	t.Run("events are filtered", func(t *testing.T) {
		uc := usecase.NewCatalogUseCase(static.New(nil, logger), nil, 0, logger)

		got, err := uc.Events(ctx, dto.EventsQuery{Category: "power-outages", Query: "karori"})

		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, 10, got.DatasetTotal)
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := usecase.NewCatalogUseCase(static.New(nil, logger), nil, 0, logger)

		_, err := uc.Events(ctx, dto.EventsQuery{Category: "earthquakes"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
	})

	t.Run("source failure", func(t *testing.T) {
		src := &MockEventSource{}
		src.On("FetchAll", mock.Anything, domain.CategoryRoadClosures).
			Return(nil, errors.Join(domain.ErrDataFetch, errors.New("timeout"))).Once()
		uc := usecase.NewCatalogUseCase(src, nil, 0, logger)

		_, err := uc.Events(ctx, dto.EventsQuery{Category: "road-closures"})

		assert.ErrorIs(t, err, apperrors.ErrDataSource)
		src.AssertExpectations(t)
	})
}
