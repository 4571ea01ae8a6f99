package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/event-dashboard/internal/dashboard"
	"github.com/event-dashboard/internal/pkg/errors"
	"github.com/event-dashboard/internal/pkg/utils"
	"github.com/event-dashboard/internal/pkg/validator"
	"github.com/event-dashboard/internal/usecase"
	"github.com/event-dashboard/internal/usecase/dto"
)

// DashboardHandler - session-bound dashboard endpoints. Every call answers
// with the resulting view.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler - create a new DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// CreateSession godoc
// @Summary Create a dashboard session
// @Description Opens a session on the category picker and returns its id and first view
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dashboard.View}
// @Router /api/v1/sessions [post]
func (h *DashboardHandler) CreateSession(c *fiber.Ctx) error {
	created, view := h.dashboardUC.CreateSession()
	c.Set(fiber.HeaderLocation, "/api/v1/sessions/"+created.SessionID)
	return utils.SendCreated(c, view)
}

// DeleteSession godoc
// @Summary Close a dashboard session
// @Tags Sessions
// @Param id path string true "Session id"
// @Success 204
// @Router /api/v1/sessions/{id} [delete]
func (h *DashboardHandler) DeleteSession(c *fiber.Ctx) error {
	h.dashboardUC.DeleteSession(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// GetView godoc
// @Summary Current session view
// @Description Sidebar list, map markers and shapes, selection detail and camera move
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *DashboardHandler) GetView(c *fiber.Ctx) error {
	return h.respond(c)(h.dashboardUC.View(c.Params("id")))
}

// SelectCategory godoc
// @Summary Switch category
// @Description Resets filters, search and selection, then loads the category. A failed load is reported in the view, not as an error.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SelectCategoryRequest true "Category"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/category [post]
func (h *DashboardHandler) SelectCategory(c *fiber.Ctx) error {
	var req dto.SelectCategoryRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c)(h.dashboardUC.SelectCategory(c.Context(), c.Params("id"), req))
}

// Back godoc
// @Summary Return to the category picker
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/back [post]
func (h *DashboardHandler) Back(c *fiber.Ctx) error {
	return h.respond(c)(h.dashboardUC.Back(c.Params("id")))
}

// Search godoc
// @Summary Type into the search box
// @Description The term is applied after 300ms without a newer call; until then the view reports search_pending
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SearchRequest true "Search term"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/search [post]
func (h *DashboardHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c)(h.dashboardUC.Search(c.Params("id"), req))
}

// SetFilters godoc
// @Summary Change status and type filters
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.FilterRequest true "Filters"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/filters [post]
func (h *DashboardHandler) SetFilters(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c)(h.dashboardUC.SetFilters(c.Params("id"), req))
}

// ClearFilters godoc
// @Summary Reset search and filters
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/filters/clear [post]
func (h *DashboardHandler) ClearFilters(c *fiber.Ctx) error {
	return h.respond(c)(h.dashboardUC.ClearFilters(c.Params("id")))
}

// Select godoc
// @Summary Select a list row
// @Description Outages and road closures select the record, weather selects the event. Unknown ids clear the selection.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SelectRequest true "Entity id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/select [post]
func (h *DashboardHandler) Select(c *fiber.Ctx) error {
	var req dto.SelectRequest
	if err := h.parse(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c)(h.dashboardUC.Select(c.Params("id"), req))
}

// ClickMarker godoc
// @Summary Click a map marker
// @Description Weather markers select a hazard and keep the event selection
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Param markerId path string true "Marker id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/markers/{markerId}/click [post]
func (h *DashboardHandler) ClickMarker(c *fiber.Ctx) error {
	return h.respond(c)(h.dashboardUC.ClickMarker(c.Params("id"), c.Params("markerId")))
}

// ClearSelection godoc
// @Summary Drop the selection
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/selection/clear [post]
func (h *DashboardHandler) ClearSelection(c *fiber.Ctx) error {
	return h.respond(c)(h.dashboardUC.ClearSelection(c.Params("id")))
}

// ShowAll godoc
// @Summary Show all weather hazards
// @Description Clears event and hazard selection and plots the hazards of every listed event
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/show-all [post]
func (h *DashboardHandler) ShowAll(c *fiber.Ctx) error {
	return h.respond(c)(h.dashboardUC.ShowAll(c.Params("id")))
}

// Reload godoc
// @Summary Reload the active dataset
// @Description Refetches from the origin, keeping filters and dropping selections that no longer exist
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dashboard.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/reload [post]
func (h *DashboardHandler) Reload(c *fiber.Ctx) error {
	return h.respond(c)(h.dashboardUC.Reload(c.Context(), c.Params("id")))
}

func (h *DashboardHandler) parse(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	if err := validator.Validate(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(validator.Details(err))
	}
	return nil
}

func (h *DashboardHandler) respond(c *fiber.Ctx) func(*dashboard.View, error) error {
	return func(view *dashboard.View, err error) error {
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, view, &utils.Meta{
			Total: view.Total,
			Shown: len(view.Items),
		})
	}
}
