package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
	"github.com/phee464/Lnw-web-hamhub/pkg/geo"
)

// Buffer time bounds in minutes. The computed buffer always lands in this
// range regardless of how bad the conditions are.
const (
	minBufferMinutes = 5
	maxBufferMinutes = 30
)

// maxPlanHorizon guards against nonsensical arrival inputs; it is not a
// domain limit.
const maxPlanHorizon = 24 * time.Hour

// ValidateInput checks the planner preconditions without performing any
// computation or lookup. Callers run this before fetching weather so a bad
// request never triggers network traffic.
func ValidateInput(input domain.PlanInput) error {
	var missing []string
	if input.DestinationCoords == nil {
		missing = append(missing, "destinationCoords")
	}
	if input.CurrentLocation == nil {
		missing = append(missing, "currentLocation")
	}
	if strings.TrimSpace(input.ArrivalTime) == "" {
		missing = append(missing, "arrivalTime")
	}
	if len(missing) > 0 {
		return &domain.MissingInputError{Fields: missing}
	}
	return nil
}

// Plan produces the departure recommendation for one trip.
//
// The estimator runs twice: a first pass without weather (the bootstrap
// estimate any weather lookup keys off) and a second pass with weather
// applied. The second pass is authoritative. The calculation is pure and
// re-entrant; identical inputs with an identical now yield an identical plan.
func Plan(input domain.PlanInput, now time.Time) (*domain.DeparturePlan, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	hour, minute, err := parseClock(input.ArrivalTime)
	if err != nil {
		return nil, err
	}

	arrivalAt := nextOccurrence(now, hour, minute)
	if arrivalAt.Sub(now) > maxPlanHorizon {
		return nil, domain.ErrTooFarInFuture
	}

	origin := *input.CurrentLocation
	destination := *input.DestinationCoords

	// Bootstrap pass, no weather.
	if _, err := Estimate(origin, destination, input.Mode, nil, now); err != nil {
		return nil, err
	}

	estimate, err := Estimate(origin, destination, input.Mode, input.Weather, now)
	if err != nil {
		return nil, err
	}

	buffer := bufferMinutes(estimate, input.Weather)
	total := estimate.TimeMinutes + buffer
	departAt := arrivalAt.Add(-time.Duration(total) * time.Minute)

	risk := Assess(input.Weather, estimate, input.Mode, input.ArrivalTime, now)

	profile, _ := domain.ProfileFor(input.Mode)

	return &domain.DeparturePlan{
		Destination:       strings.TrimSpace(input.Destination),
		DestinationCoords: destination,
		ArrivalTime:       input.ArrivalTime,
		DepartureTime:     departAt.Format("15:04"),
		ArrivalAt:         arrivalAt,
		DepartAt:          departAt,
		TravelTimeMinutes: estimate.TimeMinutes,
		BufferMinutes:     buffer,
		TotalMinutes:      total,
		DistanceKm:        estimate.DistanceKm,
		CostTHB:           estimate.CostTHB,
		Weather:           input.Weather,
		TrafficZones:      estimate.TrafficZones,
		Risk:              risk,
		Transport:         profile,
		Reliability:       estimate.Reliability,
		ComputedAt:        now,
	}, nil
}

// bufferMinutes derives the uncertainty cushion added on top of raw travel
// time: a reliability term, a rain term, and a traffic-severity term, clamped
// to [5, 30].
func bufferMinutes(estimate domain.TravelEstimate, weather *domain.WeatherSnapshot) int {
	buffer := int(math.Round(float64(estimate.TimeMinutes) * (1 - estimate.Reliability) * 0.5))

	if weather != nil && weather.IsRaining {
		buffer += int(math.Round(weather.RainMmPerHour * 2))
	}

	if len(estimate.TrafficZones) > 0 {
		sum := 0
		for _, zone := range estimate.TrafficZones {
			sum += zone.Severity.Weight()
		}
		avgWeight := float64(sum) / float64(len(estimate.TrafficZones))
		buffer += int(math.Round(avgWeight * 3))
	}

	return geo.ClampInt(buffer, minBufferMinutes, maxBufferMinutes)
}

// parseClock parses "HH:MM" into an hour and minute, enforcing hour 0-23 and
// minute 0-59.
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("parse %q: %w", value, domain.ErrInvalidTime)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", value, domain.ErrInvalidTime)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", value, domain.ErrInvalidTime)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("parse %q: %w", value, domain.ErrInvalidTime)
	}
	return hour, minute, nil
}

// nextOccurrence returns the next wall-clock occurrence of the given
// time-of-day, rolling to tomorrow if it has already passed today.
func nextOccurrence(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
