package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
	"github.com/phee464/Lnw-web-hamhub/internal/planner"
	"github.com/phee464/Lnw-web-hamhub/internal/service"
	"github.com/phee464/Lnw-web-hamhub/pkg/geo"
)

// Handler contains all HTTP handlers
type Handler struct {
	planSvc    *service.PlanService
	weatherSvc *service.WeatherService
	geocodeSvc *service.GeocodeService
	rideSvc    *service.RideService
	repo       service.PlanRepository
}

// NewHandler creates a new handler
func NewHandler(
	planSvc *service.PlanService,
	weatherSvc *service.WeatherService,
	geocodeSvc *service.GeocodeService,
	rideSvc *service.RideService,
	repo service.PlanRepository,
) *Handler {
	return &Handler{
		planSvc:    planSvc,
		weatherSvc: weatherSvc,
		geocodeSvc: geocodeSvc,
		rideSvc:    rideSvc,
		repo:       repo,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"service": "smart-depart-backend",
		"version": "1.0.0",
	})
}

// CreatePlan computes a departure recommendation
func (h *Handler) CreatePlan(c *fiber.Ctx) error {
	var input domain.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	plan, err := h.planSvc.PlanTrip(c.Context(), input)
	if err != nil {
		if isValidationError(err) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute plan")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    plan,
	})
}

// GetWeather returns current weather at a coordinate
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	at, err := coordinateQuery(c)
	if err != nil {
		return err
	}

	weather := h.weatherSvc.Current(c.Context(), at)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    weather,
	})
}

// SearchPlaces returns destination suggestions for a query. An empty query
// yields the popular-destination list.
func (h *Handler) SearchPlaces(c *fiber.Ctx) error {
	results, err := h.geocodeSvc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to search places")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
		"count":   len(results),
	})
}

// ReverseGeocode resolves a coordinate to an address
func (h *Handler) ReverseGeocode(c *fiber.Ctx) error {
	at, err := coordinateQuery(c)
	if err != nil {
		return err
	}

	detail := h.geocodeSvc.Reverse(c.Context(), at)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    detail,
	})
}

type rideRequest struct {
	Origin      *domain.Coordinate   `json:"origin"`
	Destination *domain.Coordinate   `json:"destination"`
	Mode        domain.TransportMode `json:"mode"`
}

// GetRideOptions estimates the trip for the requested mode and quotes the
// ride-hailing apps against it
func (h *Handler) GetRideOptions(c *fiber.Ctx) error {
	var req rideRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Origin == nil || req.Destination == nil {
		return fiber.NewError(fiber.StatusBadRequest, "origin and destination are required")
	}

	now := time.Now()
	estimate, err := planner.Estimate(*req.Origin, *req.Destination, req.Mode, nil, now)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMode) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to estimate trip")
	}

	quotes := h.rideSvc.Quotes(estimate, req.Mode, now)
	return c.JSON(fiber.Map{
		"success":  true,
		"estimate": estimate,
		"data":     quotes,
	})
}

// GetPlanHistory returns plans computed within a time range
func (h *Handler) GetPlanHistory(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 { // max 30 days
		hours = 24
	}

	data, err := h.planSvc.History(c.Context(), hours)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch plan history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// GetWeatherHistory returns weather snapshots within a time range
func (h *Handler) GetWeatherHistory(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 {
		hours = 24
	}

	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)

	data, err := h.repo.GetWeatherHistory(c.Context(), from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch weather history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

func coordinateQuery(c *fiber.Ctx) (geo.Coordinate, error) {
	lat := c.QueryFloat("lat", 0)
	lng := c.QueryFloat("lng", 0)
	if lat == 0 && lng == 0 {
		return geo.Coordinate{}, fiber.NewError(fiber.StatusBadRequest, "lat and lng query parameters are required")
	}
	return geo.Coordinate{Lat: lat, Lng: lng}, nil
}

// isValidationError reports whether the error should surface as a 400 with
// its message intact.
func isValidationError(err error) bool {
	var missing *domain.MissingInputError
	return errors.As(err, &missing) ||
		errors.Is(err, domain.ErrInvalidTime) ||
		errors.Is(err, domain.ErrTooFarInFuture) ||
		errors.Is(err, domain.ErrUnknownMode) ||
		errors.Is(err, domain.ErrDestinationNotFound)
}
