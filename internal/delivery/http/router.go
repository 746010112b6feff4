package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phee464/Lnw-web-hamhub/internal/service"
)

// ErrorHandler renders every error as the JSON envelope the frontend
// expects, preserving fiber.Error status codes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(
	app *fiber.App,
	planSvc *service.PlanService,
	weatherSvc *service.WeatherService,
	geocodeSvc *service.GeocodeService,
	rideSvc *service.RideService,
	repo service.PlanRepository,
) {
	handler := NewHandler(planSvc, weatherSvc, geocodeSvc, rideSvc, repo)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Trip planning
		api.Post("/plan", handler.CreatePlan)
		api.Get("/plans/history", handler.GetPlanHistory)

		// Provider proxies
		api.Get("/weather", handler.GetWeather)
		api.Get("/weather/history", handler.GetWeatherHistory)
		api.Get("/places/search", handler.SearchPlaces)
		api.Get("/places/reverse", handler.ReverseGeocode)

		// Ride-hailing shortcuts
		api.Post("/rides", handler.GetRideOptions)
	}
}
