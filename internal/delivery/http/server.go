package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/event-dashboard/internal/config"
	"github.com/event-dashboard/internal/delivery/http/handler"
	"github.com/event-dashboard/internal/delivery/http/middleware"
	"github.com/event-dashboard/internal/pkg/errors"
	"github.com/event-dashboard/internal/pkg/utils"
)

// HealthCheck reports whether a backing store is reachable.
type HealthCheck func(ctx context.Context) error

// Server - Fiber HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health HealthCheck

	catalogHandler   *handler.CatalogHandler
	dashboardHandler *handler.DashboardHandler
}

// NewServer - create a new HTTP server. health may be nil.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health HealthCheck,
	catalogHandler *handler.CatalogHandler,
	dashboardHandler *handler.DashboardHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Event Dashboard",
		// Sessions keep ids taken from params and queries past the request.
		Immutable:    true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		health:           health,
		catalogHandler:   catalogHandler,
		dashboardHandler: dashboardHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthCheck)

	// Catalog
	api.Get("/categories", s.catalogHandler.GetCategories)
	api.Get("/categories/:category/events", s.catalogHandler.GetEvents)

	// Sessions
	sessions := api.Group("/sessions")
	sessions.Post("/", s.dashboardHandler.CreateSession)
	sessions.Get("/:id", s.dashboardHandler.GetView)
	sessions.Delete("/:id", s.dashboardHandler.DeleteSession)
	sessions.Post("/:id/category", s.dashboardHandler.SelectCategory)
	sessions.Post("/:id/back", s.dashboardHandler.Back)
	sessions.Post("/:id/search", s.dashboardHandler.Search)
	sessions.Post("/:id/filters", s.dashboardHandler.SetFilters)
	sessions.Post("/:id/filters/clear", s.dashboardHandler.ClearFilters)
	sessions.Post("/:id/select", s.dashboardHandler.Select)
	sessions.Post("/:id/markers/:markerId/click", s.dashboardHandler.ClickMarker)
	sessions.Post("/:id/selection/clear", s.dashboardHandler.ClearSelection)
	sessions.Post("/:id/show-all", s.dashboardHandler.ShowAll)
	sessions.Post("/:id/reload", s.dashboardHandler.Reload)
}

// healthCheck godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	if s.health != nil {
		if err := s.health(c.Context()); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
				Error: errors.ErrDataSource.WithMessage(err.Error()),
			})
		}
	}
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// Start - start listening
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler answers routing and framework errors in the API envelope.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		apiCode := errors.ErrInternalServer.Code

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				apiCode = "NOT_FOUND"
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    apiCode,
				"message": err.Error(),
			},
		})
	}
}
