package main

// @title Event Dashboard API
// @version 1.0.0
// @description Map-based civic event dashboard: power outages, road closures and historic weather hazards.
// @description
// @description Sessions hold the active category, debounced search, filters and map selection.
// @description The stateless events endpoint serves clients that keep their own state.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	_ "github.com/event-dashboard/docs/swagger"
	"github.com/event-dashboard/internal/config"
	"github.com/event-dashboard/internal/dashboard"
	httpDelivery "github.com/event-dashboard/internal/delivery/http"
	"github.com/event-dashboard/internal/delivery/http/handler"
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/event-dashboard/internal/observability"
	"github.com/event-dashboard/internal/pkg/logger"
	"github.com/event-dashboard/internal/pkg/timefmt"
	"github.com/event-dashboard/internal/repository/cache"
	"github.com/event-dashboard/internal/repository/postgres"
	"github.com/event-dashboard/internal/repository/static"
	"github.com/event-dashboard/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Event Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("source", cfg.Dashboard.Source),
		zap.Bool("cache", cfg.Cache.Enabled),
	)

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	formatter, err := timefmt.New(cfg.Dashboard.TimeZone, clock)
	if err != nil {
		log.Warn("Falling back to UTC for time formatting", zap.Error(err))
	}

	// 3. Event source
	var (
		source  repository.EventSource
		checks  []httpDelivery.HealthCheck
		closers []func() error
	)

	switch cfg.Dashboard.Source {
	case config.SourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		closers = append(closers, db.Close)
		checks = append(checks, db.Health)
		source = postgres.NewEventRepository(db)
		log.Info("PostgreSQL event source connected")
	default:
		source = static.New(clock, log)
		log.Info("Using embedded event snapshot")
	}

	// 4. Optional Redis dataset cache
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		closers = append(closers, redisClient.Close)
		checks = append(checks, redisClient.Health)
		source = cache.NewCachedSource(source, cache.NewCacheRepository(redisClient), cfg.Cache.DatasetTTL, log, metrics)
		log.Info("Redis dataset cache enabled", zap.Duration("ttl", cfg.Cache.DatasetTTL))
	}

	// 5. Health checks
	health := func(ctx context.Context) error {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := health(ctx); err != nil {
		log.Fatal("Startup health check failed", zap.Error(err))
	}
	cancel()

	// 6. Sessions
	sessions := dashboard.NewManager(
		dashboard.Deps{
			Source:    source,
			Clock:     clock,
			Formatter: formatter,
			Logger:    log,
			Metrics:   metrics,
		},
		dashboard.Options{
			Debounce:     cfg.Dashboard.Debounce,
			ListLimit:    cfg.Dashboard.ListLimit,
			CameraZoom:   cfg.Dashboard.CameraZoom,
			FetchTimeout: cfg.Dashboard.FetchTimeout,
		},
		cfg.Dashboard.SessionIdleTTL,
	)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, cfg.Dashboard.SweepInterval)

	// 7. Use cases and handlers
	catalogUC := usecase.NewCatalogUseCase(source, formatter, cfg.Dashboard.FetchTimeout, log)
	dashboardUC := usecase.NewDashboardUseCase(sessions, log)

	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)

	// 8. HTTP server
	server := httpDelivery.NewServer(cfg, log, health, catalogHandler, dashboardHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")
	stopSweep()

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Error("Failed to close connection", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
