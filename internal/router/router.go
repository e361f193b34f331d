package router

import (
	"log"

	"github.com/Meyyun/HobbyHub/internal/handlers"
	"github.com/Meyyun/HobbyHub/internal/middleware"
	"github.com/Meyyun/HobbyHub/internal/models"
	"github.com/Meyyun/HobbyHub/internal/repositories"
	"github.com/Meyyun/HobbyHub/pkg/config"
	"github.com/Meyyun/HobbyHub/pkg/geocode"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Travel{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Drain travel rows that still carry the single-field thread encoding
	if err := repositories.MigrateLegacyThreads(pgdb); err != nil {
		log.Fatalf("Failed to migrate legacy comment threads: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Hello, World!"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	travelRepo := repositories.NewPostgresTravelRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	sessionRepo := repositories.NewRedisSessionRepository(redisClient)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, sessionRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Session restore / sign-out
	authHandler.RegisterSessionRoutes(api)
	log.Println("Session routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(travelRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Travel post routes
	travelHandler := handlers.NewTravelHandler(travelRepo, commentRepo)
	travelHandler.RegisterTravelRoutes(api)
	log.Println("Travel post routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(travelRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, travelRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Preference routes
	preferenceHandler := handlers.NewPreferenceHandler(sessionRepo)
	preferenceHandler.RegisterPreferenceRoutes(api)
	log.Println("Preference routes configured.")

	// Geocode routes
	geocodeHandler := handlers.NewGeocodeHandler(geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeAPIKey))
	geocodeHandler.RegisterGeocodeRoutes(api)
	log.Println("Geocode routes configured.")

	log.Println("All routes configured.")
}
