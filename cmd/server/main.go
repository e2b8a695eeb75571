package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/River-03/shopping-list-api/internal/config"     // Internal config loaders
	"github.com/River-03/shopping-list-api/internal/handler"    // HTTP handlers
	"github.com/River-03/shopping-list-api/internal/middleware" // Rate limiting and caching middleware
	"github.com/River-03/shopping-list-api/internal/queue"      // Change-event publisher and consumer
	"github.com/River-03/shopping-list-api/internal/repository" // In-memory shopping list
	"github.com/River-03/shopping-list-api/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Load .env if present; the environment wins otherwise
	cfg := config.Load() // Load environment config

	e := echo.New() // Create Echo instance

	// Redis is optional: with no reachable server both middlewares become
	// pass-throughs and the API keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	repo := repository.NewShoppingListRepo() // The single owner of list state

	var events *queue.Publisher // nil publisher drops events
	if cfg.EventsEnabled {
		events = queue.NewPublisher()
		go func() { // Audit consumer runs for the life of the process
			if err := queue.StartEventsConsumer(); err != nil {
				log.Printf("events consumer stopped: %v", err)
			}
		}()
	}

	router.RegisterRoutes(e, handler.NewListHandler(repo, events)) // Register application routes

	addr := cfg.Host + ":" + cfg.Port                     // Address string with host and port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
