package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
)

// PlanRepository implements domain.PlanRepository on PostgreSQL.
type PlanRepository struct {
	pool *pgxpool.Pool
}

// NewPlanRepository creates a new PostgreSQL repository
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

// SavePlan persists a computed departure plan. Ephemeral detail (zone hits,
// risk factors) is not stored; history only needs the headline numbers.
func (r *PlanRepository) SavePlan(ctx context.Context, plan domain.DeparturePlan) error {
	query := `
		INSERT INTO plans (
			id, destination, dest_lat, dest_lng, arrival_time, departure_time,
			arrival_at, depart_at, travel_minutes, buffer_minutes, total_minutes,
			distance_km, cost_thb, mode, reliability, risk_level, risk_score, computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.pool.Exec(ctx, query,
		plan.ID, plan.Destination, plan.DestinationCoords.Lat, plan.DestinationCoords.Lng,
		plan.ArrivalTime, plan.DepartureTime, plan.ArrivalAt, plan.DepartAt,
		plan.TravelTimeMinutes, plan.BufferMinutes, plan.TotalMinutes,
		plan.DistanceKm, plan.CostTHB, string(plan.Transport.Mode), plan.Reliability,
		string(plan.Risk.Level), plan.Risk.Score, plan.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save plan: %w", err)
	}

	return nil
}

// SaveWeather persists a weather snapshot observed while planning.
func (r *PlanRepository) SaveWeather(ctx context.Context, at domain.Coordinate, snapshot domain.WeatherSnapshot) error {
	query := `
		INSERT INTO weather_snapshots (
			lat, lng, temperature_c, humidity_pct, condition, description,
			wind_speed_ms, visibility_km, is_raining, rain_mm_per_hour, is_mock, observed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		at.Lat, at.Lng, snapshot.TemperatureC, snapshot.HumidityPct,
		snapshot.Condition, snapshot.Description, snapshot.WindSpeedMs,
		snapshot.VisibilityKm, snapshot.IsRaining, snapshot.RainMmPerHour,
		snapshot.IsMock, snapshot.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save weather snapshot: %w", err)
	}

	return nil
}

// GetPlanHistory retrieves plans computed within a time range.
func (r *PlanRepository) GetPlanHistory(ctx context.Context, from, to time.Time) ([]domain.DeparturePlan, error) {
	query := `
		SELECT id, destination, dest_lat, dest_lng, arrival_time, departure_time,
			   arrival_at, depart_at, travel_minutes, buffer_minutes, total_minutes,
			   distance_km, cost_thb, mode, reliability, risk_level, risk_score, computed_at
		FROM plans
		WHERE computed_at BETWEEN $1 AND $2
		ORDER BY computed_at DESC
		LIMIT 100
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query plans: %w", err)
	}
	defer rows.Close()

	var results []domain.DeparturePlan
	for rows.Next() {
		var (
			p           domain.DeparturePlan
			mode, level string
		)
		err := rows.Scan(
			&p.ID, &p.Destination, &p.DestinationCoords.Lat, &p.DestinationCoords.Lng,
			&p.ArrivalTime, &p.DepartureTime, &p.ArrivalAt, &p.DepartAt,
			&p.TravelTimeMinutes, &p.BufferMinutes, &p.TotalMinutes,
			&p.DistanceKm, &p.CostTHB, &mode, &p.Reliability,
			&level, &p.Risk.Score, &p.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan plan row: %w", err)
		}

		p.Risk.Level = domain.RiskLevel(level)
		p.Risk.Advice = p.Risk.Level.Advice()
		if profile, ok := domain.ProfileFor(domain.TransportMode(mode)); ok {
			p.Transport = profile
		}

		results = append(results, p)
	}

	return results, nil
}

// GetWeatherHistory retrieves weather snapshots within a time range.
func (r *PlanRepository) GetWeatherHistory(ctx context.Context, from, to time.Time) ([]domain.WeatherSnapshot, error) {
	query := `
		SELECT temperature_c, humidity_pct, condition, description,
			   wind_speed_ms, visibility_km, is_raining, rain_mm_per_hour, is_mock, observed_at
		FROM weather_snapshots
		WHERE observed_at BETWEEN $1 AND $2
		ORDER BY observed_at DESC
		LIMIT 100
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query weather snapshots: %w", err)
	}
	defer rows.Close()

	var results []domain.WeatherSnapshot
	for rows.Next() {
		var w domain.WeatherSnapshot
		err := rows.Scan(
			&w.TemperatureC, &w.HumidityPct, &w.Condition, &w.Description,
			&w.WindSpeedMs, &w.VisibilityKm, &w.IsRaining, &w.RainMmPerHour,
			&w.IsMock, &w.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan weather row: %w", err)
		}
		results = append(results, w)
	}

	return results, nil
}

// Health checks database connectivity.
func (r *PlanRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
