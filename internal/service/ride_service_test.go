package service

import (
	"testing"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
)

func offPeak() time.Time {
	return time.Date(2025, time.January, 15, 14, 0, 0, 0, time.UTC)
}

func morningRush() time.Time {
	return time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)
}

func TestQuotesForCar(t *testing.T) {
	svc := NewRideService()
	estimate := domain.TravelEstimate{CostTHB: 100, TimeMinutes: 30}

	quotes := svc.Quotes(estimate, domain.ModeCar, offPeak())
	if len(quotes) != 3 {
		t.Fatalf("expected quotes from all 3 apps, got %d", len(quotes))
	}

	want := map[string]int{"grab": 120, "bolt": 100, "lineman": 110}
	for _, q := range quotes {
		if q.Surge {
			t.Errorf("%s: surge outside rush hour", q.App)
		}
		if q.EstimatedCost != want[q.App] {
			t.Errorf("%s: cost = %d, want %d", q.App, q.EstimatedCost, want[q.App])
		}
		if q.WaitMinMinutes <= 0 || q.WaitMaxMinutes < q.WaitMinMinutes {
			t.Errorf("%s: nonsensical wait range %d-%d", q.App, q.WaitMinMinutes, q.WaitMaxMinutes)
		}
	}
}

func TestQuotesSurgeDuringRushHour(t *testing.T) {
	svc := NewRideService()
	estimate := domain.TravelEstimate{CostTHB: 100}

	quotes := svc.Quotes(estimate, domain.ModeCar, morningRush())

	want := map[string]int{"grab": 180, "bolt": 130, "lineman": 154}
	for _, q := range quotes {
		if !q.Surge {
			t.Errorf("%s: surge not flagged during rush hour", q.App)
		}
		if q.EstimatedCost != want[q.App] {
			t.Errorf("%s: surge cost = %d, want %d", q.App, q.EstimatedCost, want[q.App])
		}
	}
}

func TestQuotesMotorcycleRates(t *testing.T) {
	svc := NewRideService()
	estimate := domain.TravelEstimate{CostTHB: 50}

	quotes := svc.Quotes(estimate, domain.ModeMotorcycle, offPeak())
	want := map[string]int{"grab": 50, "bolt": 40, "lineman": 45}
	for _, q := range quotes {
		if q.EstimatedCost != want[q.App] {
			t.Errorf("%s: cost = %d, want %d", q.App, q.EstimatedCost, want[q.App])
		}
	}
}

func TestQuotesUnsupportedModes(t *testing.T) {
	svc := NewRideService()
	estimate := domain.TravelEstimate{CostTHB: 100}

	for _, mode := range []domain.TransportMode{domain.ModePublic, domain.ModeBTSMRT} {
		if quotes := svc.Quotes(estimate, mode, offPeak()); len(quotes) != 0 {
			t.Errorf("mode %s: expected no quotes, got %v", mode, quotes)
		}
	}
}
