package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/phee464/Lnw-web-hamhub/internal/cache"
	"github.com/phee464/Lnw-web-hamhub/internal/config"
	"github.com/phee464/Lnw-web-hamhub/internal/delivery/http"
	"github.com/phee464/Lnw-web-hamhub/internal/repository/postgres"
	"github.com/phee464/Lnw-web-hamhub/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			pool = nil
		} else {
			defer pool.Close()
			log.Println("Connected to PostgreSQL")
		}
	}
	if pool == nil {
		log.Println("Running with in-memory plan history only")
	}

	// Optional Redis cache for geocode/weather lookups
	var lookupCache *cache.Cache
	if cfg.RedisEnabled {
		var err error
		lookupCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("Warning: Redis unavailable, running uncached: %v", err)
		} else {
			defer lookupCache.Close()
			log.Println("Connected to Redis")
		}
	}

	// Dependency Injection: Repositories
	var repo service.PlanRepository
	if pool != nil {
		repo = postgres.NewPlanRepository(pool)
	} else {
		repo = postgres.NewMockRepository()
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(cfg.OpenWeatherAPIKey, lookupCache, cfg.WeatherCacheTTL)
	geocodeSvc := service.NewGeocodeService(cfg.NominatimBaseURL, lookupCache, cfg.GeocodeCacheTTL)
	rideSvc := service.NewRideService()
	planSvc := service.NewPlanService(weatherSvc, geocodeSvc, repo)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Smart Depart API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, planSvc, weatherSvc, geocodeSvc, rideSvc, repo)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	planSvc.WaitBackground()
	log.Println("Server exited gracefully")
}
