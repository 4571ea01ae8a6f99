package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/event-dashboard/internal/pkg/errors"
	"github.com/event-dashboard/internal/pkg/utils"
	"github.com/event-dashboard/internal/pkg/validator"
	"github.com/event-dashboard/internal/usecase"
	"github.com/event-dashboard/internal/usecase/dto"
)

// CatalogHandler - category catalogue and stateless filtering
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - create a new CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// GetCategories godoc
// @Summary List event categories
// @Description Returns the category picker catalogue in display order
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoriesResponse}
// @Router /api/v1/categories [get]
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	result := h.catalogUC.Categories()
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Categories)})
}

// GetEvents godoc
// @Summary Filter events of a category
// @Description Applies search, status and type filters to one category without debounce. For weather, type matches any hazard of the event.
// @Tags Catalog
// @Produce json
// @Param category path string true "Category id" Enums(power-outages, road-closures, historic-weather-hazards)
// @Param q query string false "Case-insensitive search term"
// @Param status query string false "Status filter" default(all)
// @Param type query string false "Type filter" default(all)
// @Param limit query int false "Rows to return" default(8)
// @Success 200 {object} utils.SuccessResponse{data=dashboard.Listing}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/categories/{category}/events [get]
func (h *CatalogHandler) GetEvents(c *fiber.Ctx) error {
	q := dto.EventsQuery{
		Category: c.Params("category"),
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Limit:    c.QueryInt("limit", 0),
	}

	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.Details(err)))
	}

	result, err := h.catalogUC.Events(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: q.Limit,
		Shown: len(result.Items),
	})
}
