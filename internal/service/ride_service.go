package service

import (
	"math"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
)

// RideService turns a travel estimate into per-app ride-hailing quotes
// (Grab, Bolt, LINE MAN). Apps without a rate for the requested mode are
// skipped, so rail and bus trips yield no quotes.
type RideService struct{}

// NewRideService creates a new ride service
func NewRideService() *RideService {
	return &RideService{}
}

// rushHour mirrors the planner's peak windows; surge pricing applies inside
// them.
func rushHour(now time.Time) bool {
	hour := now.Hour()
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
}

// Quotes estimates the fare and pickup wait for each supported app.
func (s *RideService) Quotes(estimate domain.TravelEstimate, mode domain.TransportMode, now time.Time) []domain.RideQuote {
	surge := rushHour(now)

	quotes := make([]domain.RideQuote, 0, len(domain.RideApps))
	for _, app := range domain.RideApps {
		rate, ok := app.BaseRate[mode]
		if !ok {
			continue
		}

		fare := float64(estimate.CostTHB) * rate
		if surge {
			fare *= app.SurgeRate
		}

		quotes = append(quotes, domain.RideQuote{
			App:            app.Key,
			Name:           app.Name,
			Icon:           app.Icon,
			EstimatedCost:  int(math.Round(fare)),
			WaitMinMinutes: app.WaitMinMin,
			WaitMaxMinutes: app.WaitMaxMin,
			Surge:          surge,
			URL:            app.URL,
		})
	}

	return quotes
}
