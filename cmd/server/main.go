package main

import (
	"log"

	"github.com/Meyyun/HobbyHub/internal/router"
	"github.com/Meyyun/HobbyHub/pkg/config"
	"github.com/Meyyun/HobbyHub/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize database connection (also loads .env)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Load configuration
	cfg := config.Load()

	// Initialize the Redis session cache
	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, redisClient, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
