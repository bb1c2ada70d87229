package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/moviestream/catalog-admin/internal/config"     // Internal config loader
	"github.com/moviestream/catalog-admin/internal/database"   // MySQL pool constructor
	"github.com/moviestream/catalog-admin/internal/handler"    // Console handlers
	"github.com/moviestream/catalog-admin/internal/middleware" // Rate limit middleware
	"github.com/moviestream/catalog-admin/internal/queue"      // Change event consumer
	"github.com/moviestream/catalog-admin/internal/repository" // Data access layer
	"github.com/moviestream/catalog-admin/internal/router"     // Internal router setup
	"github.com/moviestream/catalog-admin/internal/view"       // HTML renderer
)

func main() {
	_ = godotenv.Load() // best effort; real deployments set the environment directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg) // Open the catalog database; unreachable DB is fatal
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	renderer, err := view.New() // Compile the embedded templates
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	e := echo.New() // Create Echo instance
	e.Renderer = renderer

	// Rate limiting degrades to a pass-through when Redis is unreachable.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewFixedWindow(config.LoadRateLimitConfig(), rdb))

	// One Console bundles every repository; handlers share it across requests.
	h := handler.NewConsole(
		repository.NewMovieRepo(db),
		repository.NewUserRepo(db),
		repository.NewGenreRepo(db),
		repository.NewSubscriptionRepo(db),
		repository.NewPaymentRepo(db),
		repository.NewRatingRepo(db),
		repository.NewReportRepo(db),
	)
	router.RegisterRoutes(e)     // Register health check
	router.RegisterConsole(e, h) // Register application routes

	// The change-event consumer keeps its own reconnect loop off the request path.
	go func() {
		if err := queue.StartChangeConsumer(); err != nil {
			log.Printf("change consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
