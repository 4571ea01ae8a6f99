package dashboard

import (
	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/filter"
	"github.com/event-dashboard/internal/selection"
)

// categoryState - transient state of one category view. A category switch
// replaces every instance at once.
type categoryState struct {
	dataset  *domain.Dataset
	index    filter.Index
	criteria filter.Criteria
	input    string
	record   selection.Coordinator
	weather  selection.HazardCoordinator
	loadErr  error
}

func newCategoryState(category domain.Category) *categoryState {
	return &categoryState{
		dataset:  &domain.Dataset{Category: category},
		index:    filter.Index{Types: []string{}},
		criteria: filter.DefaultCriteria(),
		weather:  selection.NewHazardCoordinator(),
	}
}
