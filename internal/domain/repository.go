package domain

import (
	"context"
	"time"
)

// PlanRepository defines the interface for persisting computed plans and
// weather snapshots. The domain owns the interface; storage implementations
// live under internal/repository.
type PlanRepository interface {
	// SavePlan persists a computed departure plan
	SavePlan(ctx context.Context, plan DeparturePlan) error

	// SaveWeather persists a weather snapshot observed while planning
	SaveWeather(ctx context.Context, at Coordinate, snapshot WeatherSnapshot) error

	// GetPlanHistory retrieves plans computed within a time range
	GetPlanHistory(ctx context.Context, from, to time.Time) ([]DeparturePlan, error)

	// GetWeatherHistory retrieves weather snapshots within a time range
	GetWeatherHistory(ctx context.Context, from, to time.Time) ([]WeatherSnapshot, error)

	// Health checks storage connectivity
	Health(ctx context.Context) error
}
