// Command seed copies the embedded event snapshot into PostgreSQL so the
// API can run with DASHBOARD_SOURCE=postgres. Migrations must be applied first.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/event-dashboard/internal/config"
	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/pkg/logger"
	"github.com/event-dashboard/internal/repository/cache"
	"github.com/event-dashboard/internal/repository/postgres"
	"github.com/event-dashboard/internal/repository/static"
)

func main() {
	only := flag.String("category", "", "seed a single category id (default: all)")
	flush := flag.Bool("flush-cache", true, "drop cached datasets in Redis when CACHE_ENABLED is set")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	categories := []domain.Category{
		domain.CategoryPowerOutages,
		domain.CategoryRoadClosures,
		domain.CategoryWeatherHazards,
	}
	if *only != "" {
		c, ok := domain.ParseCategory(*only)
		if !ok {
			log.Fatal("Unknown category", zap.String("category", *only))
		}
		categories = []domain.Category{c}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	snapshot := static.New(clockwork.NewRealClock(), log)
	writer := postgres.NewEventWriter(db)

	for _, c := range categories {
		ds, err := snapshot.FetchAll(ctx, c)
		if err != nil {
			log.Fatal("Failed to read snapshot", zap.String("category", string(c)), zap.Error(err))
		}
		if err := writer.Replace(ctx, ds); err != nil {
			log.Fatal("Failed to store dataset", zap.String("category", string(c)), zap.Error(err))
		}
	}

	if *flush && cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Skipping cache flush", zap.Error(err))
			return
		}
		defer redisClient.Close()

		repo := cache.NewCacheRepository(redisClient)
		for _, c := range categories {
			if err := repo.Delete(ctx, cache.DatasetKey(c)); err != nil {
				log.Warn("Failed to drop cached dataset", zap.String("category", string(c)), zap.Error(err))
			}
		}
	}

	log.Info("Seed complete", zap.Int("categories", len(categories)))
}
