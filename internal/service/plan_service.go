package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
	"github.com/phee464/Lnw-web-hamhub/internal/planner"
	"github.com/phee464/Lnw-web-hamhub/pkg/geo"
)

// WeatherProvider is what the plan service needs from the weather layer:
// a fetch that can fail and a separate degradation step.
type WeatherProvider interface {
	Fetch(ctx context.Context, at geo.Coordinate) WeatherResult
	Resolve(result WeatherResult, now time.Time) domain.WeatherSnapshot
}

// GeocodeProvider resolves free-text destinations.
type GeocodeProvider interface {
	Geocode(ctx context.Context, query string) (*domain.Destination, error)
}

// PlanService orchestrates a trip plan: destination resolution and weather
// fetch run concurrently, the pure planner core does the arithmetic, and the
// result is persisted in the background.
type PlanService struct {
	weather  WeatherProvider
	geocoder GeocodeProvider
	repo     domain.PlanRepository

	wgBg sync.WaitGroup // tracks background persist goroutines for graceful shutdown
}

// NewPlanService creates a new plan service
func NewPlanService(weather WeatherProvider, geocoder GeocodeProvider, repo domain.PlanRepository) *PlanService {
	return &PlanService{
		weather:  weather,
		geocoder: geocoder,
		repo:     repo,
	}
}

// WaitBackground blocks until all background persist goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *PlanService) WaitBackground() {
	s.wgBg.Wait()
}

// PlanTrip validates the request, resolves the destination and fetches
// weather concurrently, and runs the departure planner. Validation happens
// before anything touches the network: a request with no current location
// performs no weather fetch.
func (s *PlanService) PlanTrip(ctx context.Context, input domain.PlanInput) (*domain.DeparturePlan, error) {
	now := time.Now()

	var missing []string
	if input.CurrentLocation == nil {
		missing = append(missing, "currentLocation")
	}
	if strings.TrimSpace(input.ArrivalTime) == "" {
		missing = append(missing, "arrivalTime")
	}
	if input.DestinationCoords == nil && strings.TrimSpace(input.Destination) == "" {
		missing = append(missing, "destination")
	}
	if len(missing) > 0 {
		return nil, &domain.MissingInputError{Fields: missing}
	}

	// Weather and geocoding are independent reads with no ordering
	// requirement between them.
	var (
		wg         sync.WaitGroup
		weather    domain.WeatherSnapshot
		resolved   *domain.Destination
		geocodeErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		weather = s.weather.Resolve(s.weather.Fetch(ctx, *input.CurrentLocation), now)
	}()

	if input.DestinationCoords == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved, geocodeErr = s.geocoder.Geocode(ctx, input.Destination)
		}()
	}

	wg.Wait()

	if geocodeErr != nil {
		return nil, geocodeErr
	}
	if resolved != nil {
		input.DestinationCoords = &resolved.Coordinate
		if strings.TrimSpace(input.Destination) == "" {
			input.Destination = resolved.Name
		}
	}
	input.Weather = &weather

	plan, err := planner.Plan(input, now)
	if err != nil {
		return nil, err
	}
	plan.ID = uuid.NewString()

	if s.repo != nil {
		s.persistAsync(*plan, *input.CurrentLocation, weather)
	}

	return plan, nil
}

// History returns plans computed in the last N hours.
func (s *PlanService) History(ctx context.Context, hours int) ([]domain.DeparturePlan, error) {
	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)
	return s.repo.GetPlanHistory(ctx, from, to)
}

// persistAsync saves the plan and the weather snapshot it was computed with,
// off the request path.
func (s *PlanService) persistAsync(plan domain.DeparturePlan, at geo.Coordinate, weather domain.WeatherSnapshot) {
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.repo.SavePlan(bgCtx, plan); err != nil {
			log.Printf("Failed to save plan %s: %v", plan.ID, err)
		}
		if err := s.repo.SaveWeather(bgCtx, at, weather); err != nil {
			log.Printf("Failed to save weather snapshot: %v", err)
		}
	}()
}
