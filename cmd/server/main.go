package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/sunnyliu/county-health-api/internal/config"
	"github.com/sunnyliu/county-health-api/internal/database"
	"github.com/sunnyliu/county-health-api/internal/handler"
	"github.com/sunnyliu/county-health-api/internal/middleware"
	"github.com/sunnyliu/county-health-api/internal/queue"
	"github.com/sunnyliu/county-health-api/internal/repository"
	"github.com/sunnyliu/county-health-api/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBPath, cfg.DBReadOnly) // Open the SQLite dataset
	if err != nil {
		log.Fatalf("open dataset %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	rankings := repository.NewRankingRepo(db)
	h := handler.NewCountyDataHandler(rankings, cfg.PublishLookups)

	e := echo.New()
	e.HTTPErrorHandler = router.NewHTTPErrorHandler()

	// Redis is optional: with no server reachable the client is nil and
	// both middlewares pass requests straight through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e, h)

	if cfg.PublishLookups {
		go func() {
			if err := queue.StartLookupConsumer(); err != nil {
				log.Printf("lookup consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
