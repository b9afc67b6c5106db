package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"learnhub/backend/config"
	"learnhub/backend/middleware"
	"learnhub/backend/routes"
	"learnhub/backend/services"
	"learnhub/backend/store"
	"learnhub/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize store
	kv, err := openKV(cfg)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}
	st := store.New(kv)
	if err := st.Init(); err != nil {
		log.Fatalf("Error initializing store: %v", err)
	}
	api := services.New(st, cfg.LatencyScale)

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, api, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

func openKV(cfg *config.Config) (store.KV, error) {
	switch cfg.StoreDriver {
	case "memory":
		return store.NewMemory(), nil
	case "redis":
		return store.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), nil
	case "postgres":
		db, err := utils.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewGormKV(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
