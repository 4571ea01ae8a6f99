package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/event-dashboard/internal/dashboard"
	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/repository/static"
)

func TestList(t *testing.T) {
	src := static.New(nil, zap.NewNop())

	t.Run("applies criteria and limit", func(t *testing.T) {
		ds, err := src.FetchAll(context.Background(), domain.CategoryPowerOutages)
		require.NoError(t, err)

		got, err := dashboard.List(ds, filter.Criteria{Status: "active"}, 3, nil)
		require.NoError(t, err)

		assert.Equal(t, 5, got.Total)
		assert.Equal(t, 10, got.DatasetTotal)
		assert.Len(t, got.Items, 3)
		assert.Equal(t, filter.All, got.Criteria.Type)
		assert.Equal(t, "Provider: WELLINGTON ELECTRICITY", got.Items[0].Subtitle)
		assert.Empty(t, got.EmptyMessage)
	})

	t.Run("empty match", func(t *testing.T) {
		ds, err := src.FetchAll(context.Background(), domain.CategoryWeatherHazards)
		require.NoError(t, err)

		got, err := dashboard.List(ds, filter.Criteria{SearchTerm: "volcano"}, 0, nil)
		require.NoError(t, err)

		assert.Zero(t, got.Total)
		assert.NotNil(t, got.Items)
		assert.Equal(t, dashboard.EmptyMessage, got.EmptyMessage)
		assert.Equal(t, 4, got.DatasetTotal)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := dashboard.List(&domain.Dataset{Category: "earthquakes"}, filter.DefaultCriteria(), 0, nil)
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})
}
