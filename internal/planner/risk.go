package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
)

// Assess scores the trip risk additively and classifies the total. It never
// fails: a nil weather snapshot counts as no rain and an unparseable arrival
// time degrades to an "unknown" factor instead of aborting the assessment.
func Assess(weather *domain.WeatherSnapshot, estimate domain.TravelEstimate, mode domain.TransportMode, arrivalTime string, now time.Time) domain.RiskAssessment {
	score := 0
	factors := []string{}

	if weather != nil && weather.IsRaining {
		switch {
		case weather.RainMmPerHour > 5:
			score += 3
		case weather.RainMmPerHour > 2:
			score += 2
		default:
			score += 1
		}
		factors = append(factors, fmt.Sprintf("🌧️ rain %.1f mm/h", weather.RainMmPerHour))

		if mode == domain.ModeMotorcycle {
			score += 2
			factors = append(factors, "⚠️ motorcycle in the rain")
		}
	}

	if len(estimate.TrafficZones) > 0 {
		maxWeight := 0
		for _, zone := range estimate.TrafficZones {
			if w := zone.Severity.Weight(); w > maxWeight {
				maxWeight = w
			}
		}
		score += maxWeight
		factors = append(factors, "🚦 "+estimate.TrafficZones[0].Name)
	}

	if arrivalTime != "" {
		if hour, minute, err := parseClock(arrivalTime); err != nil {
			factors = append(factors, "⚠️ could not verify arrival time")
		} else {
			remaining := nextOccurrence(now, hour, minute).Sub(now).Minutes()
			if remaining < float64(estimate.TimeMinutes+15) {
				score += 3
				factors = append(factors, fmt.Sprintf("⏰ little time remaining (%d min)", int(math.Round(remaining))))
			} else if remaining < float64(estimate.TimeMinutes+30) {
				score += 1
				factors = append(factors, "⏳ time is somewhat tight")
			}
		}
	}

	if estimate.Reliability < 0.8 {
		score += 2
		factors = append(factors, "📊 low mode reliability")
	}

	if mode == domain.ModeMotorcycle && estimate.DistanceKm > 20 {
		score += 1
		factors = append(factors, "🏍️ long distance by motorcycle")
	}

	if isRushHour(now.Hour()) {
		score += 2
		factors = append(factors, "🕐 rush hour")
	}

	level := levelFor(score)
	return domain.RiskAssessment{
		Level:   level,
		Score:   score,
		Factors: factors,
		Advice:  level.Advice(),
	}
}

// levelFor maps a total score onto the fixed risk thresholds.
func levelFor(score int) domain.RiskLevel {
	switch {
	case score >= 8:
		return domain.RiskHighDanger
	case score >= 5:
		return domain.RiskCaution
	case score >= 3:
		return domain.RiskModerate
	default:
		return domain.RiskSafe
	}
}
