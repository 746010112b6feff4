package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
)

// MockRepository implements domain.PlanRepository in memory for demo mode
// (no DATABASE_URL) and tests.
type MockRepository struct {
	mu      sync.Mutex
	plans   []domain.DeparturePlan
	weather []domain.WeatherSnapshot
}

// NewMockRepository creates a new in-memory repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SavePlan stores the plan in memory
func (r *MockRepository) SavePlan(ctx context.Context, plan domain.DeparturePlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, plan)
	return nil
}

// SaveWeather stores the snapshot in memory
func (r *MockRepository) SaveWeather(ctx context.Context, at domain.Coordinate, snapshot domain.WeatherSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.weather = append(r.weather, snapshot)
	return nil
}

// GetPlanHistory filters stored plans by computed_at, newest first
func (r *MockRepository) GetPlanHistory(ctx context.Context, from, to time.Time) ([]domain.DeparturePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var results []domain.DeparturePlan
	for i := len(r.plans) - 1; i >= 0; i-- {
		p := r.plans[i]
		if !p.ComputedAt.Before(from) && !p.ComputedAt.After(to) {
			results = append(results, p)
		}
	}
	return results, nil
}

// GetWeatherHistory filters stored snapshots by observation time, newest first
func (r *MockRepository) GetWeatherHistory(ctx context.Context, from, to time.Time) ([]domain.WeatherSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var results []domain.WeatherSnapshot
	for i := len(r.weather) - 1; i >= 0; i-- {
		w := r.weather[i]
		if !w.Timestamp.Before(from) && !w.Timestamp.After(to) {
			results = append(results, w)
		}
	}
	return results, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
