package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
	"github.com/phee464/Lnw-web-hamhub/pkg/geo"
)

// waitingBufferMinutes is the fixed walking/waiting overhead for modes that
// depend on service frequency (bus, BTS/MRT).
const waitingBufferMinutes = 15

// Estimate produces the time, cost, and reliability estimate for one trip.
// A nil weather snapshot is treated as "no rain"; an unknown mode is the only
// hard failure.
//
// The congestion adjustment divides base time by
// trafficFactor * (2 - avgMultiplier). With an average effective multiplier
// near or above 2 (rush hour over a heavy zone) the denominator approaches
// zero or goes negative, producing extreme or negative times. Intent of the
// original model is unclear, so the behavior is kept unguarded.
func Estimate(origin, destination geo.Coordinate, mode domain.TransportMode, weather *domain.WeatherSnapshot, now time.Time) (domain.TravelEstimate, error) {
	profile, ok := domain.ProfileFor(mode)
	if !ok {
		return domain.TravelEstimate{}, fmt.Errorf("estimate %q: %w", mode, domain.ErrUnknownMode)
	}

	distance := geo.DistanceKm(origin, destination)
	zones := AffectedZones(origin, destination, now)

	timeMin := (distance / profile.BaseSpeedKmh) * 60

	avgMultiplier := 1.0
	if len(zones) > 0 {
		sum := 0.0
		for _, z := range zones {
			sum += z.Multiplier
		}
		avgMultiplier = sum / float64(len(zones))
	}
	timeMin /= profile.TrafficFactor * (2 - avgMultiplier)

	if weather != nil && weather.IsRaining {
		timeMin /= profile.RainFactor
	}

	if mode.WaitsForService() {
		timeMin += waitingBufferMinutes
	}

	cost := profile.Cost.Base + profile.Cost.PerKm*distance

	return domain.TravelEstimate{
		TimeMinutes:  int(math.Round(timeMin)),
		DistanceKm:   geo.RoundTo(distance, 2),
		CostTHB:      int(math.Round(cost)),
		TrafficZones: zones,
		Reliability:  profile.Reliability,
	}, nil
}
