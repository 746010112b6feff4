package planner

import (
	"strings"
	"testing"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
)

func baselineEstimate() domain.TravelEstimate {
	return domain.TravelEstimate{
		TimeMinutes: 30,
		DistanceKm:  5,
		Reliability: 0.85,
	}
}

func TestAssessRainMonotonicity(t *testing.T) {
	now := clockAt(14, 0)
	prev := -1

	for level := 0.0; level <= 6.0; level++ {
		weather := &domain.WeatherSnapshot{IsRaining: level > 0, RainMmPerHour: level}
		risk := Assess(weather, baselineEstimate(), domain.ModeCar, "", now)
		if risk.Score < prev {
			t.Fatalf("score decreased from %d to %d at rain level %.0f", prev, risk.Score, level)
		}
		prev = risk.Score
	}
}

func TestAssessRainScoring(t *testing.T) {
	now := clockAt(14, 0)
	tests := []struct {
		level float64
		want  int
	}{
		{0.5, 1}, {2, 1}, // light
		{2.1, 2}, {5, 2}, // moderate
		{5.1, 3}, {8, 3}, // heavy
	}

	for _, tt := range tests {
		weather := &domain.WeatherSnapshot{IsRaining: true, RainMmPerHour: tt.level}
		risk := Assess(weather, baselineEstimate(), domain.ModeCar, "", now)
		if risk.Score != tt.want {
			t.Errorf("rain %.1f mm/h: score = %d, want %d", tt.level, risk.Score, tt.want)
		}
	}
}

func TestAssessMotorcycleInRain(t *testing.T) {
	now := clockAt(14, 0)
	weather := &domain.WeatherSnapshot{IsRaining: true, RainMmPerHour: 1}

	car := Assess(weather, baselineEstimate(), domain.ModeCar, "", now)
	// Motorcycle reliability is irrelevant here; reuse the same estimate so
	// the only difference is the mode.
	moto := Assess(weather, baselineEstimate(), domain.ModeMotorcycle, "", now)

	if moto.Score != car.Score+2 {
		t.Errorf("motorcycle rain score = %d, want car score %d + 2", moto.Score, car.Score)
	}
	if !containsFactor(moto.Factors, "motorcycle in the rain") {
		t.Errorf("missing motorcycle rain factor: %v", moto.Factors)
	}
}

func TestAssessTrafficUsesMaxSeverity(t *testing.T) {
	now := clockAt(14, 0)
	est := baselineEstimate()
	est.TrafficZones = []domain.TrafficZoneHit{
		{Name: "first zone", Multiplier: 1.5, Severity: domain.SeverityMedium},
		{Name: "second zone", Multiplier: 3.0, Severity: domain.SeverityVeryHigh},
	}

	risk := Assess(nil, est, domain.ModeCar, "", now)
	if risk.Score != 4 {
		t.Errorf("score = %d, want 4 (max severity weight)", risk.Score)
	}
	// The tag names the first hit zone, not the worst one.
	if !containsFactor(risk.Factors, "first zone") {
		t.Errorf("factor should name the first zone: %v", risk.Factors)
	}
}

func TestAssessTimePressure(t *testing.T) {
	now := clockAt(14, 0)
	est := baselineEstimate() // 30 min travel

	tests := []struct {
		name    string
		arrival string
		want    int
	}{
		// 30 min remaining < 30+15: short on time.
		{"short", "14:30", 3},
		// 50 min remaining, between time+15 and time+30: somewhat tight.
		{"tight", "14:50", 1},
		// 3 h remaining: no pressure.
		{"comfortable", "17:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := Assess(nil, est, domain.ModeCar, tt.arrival, now)
			if risk.Score != tt.want {
				t.Errorf("arrival %s: score = %d, want %d", tt.arrival, risk.Score, tt.want)
			}
		})
	}
}

func TestAssessMalformedTimeDegrades(t *testing.T) {
	risk := Assess(nil, baselineEstimate(), domain.ModeCar, "ab:cd", clockAt(14, 0))
	if !containsFactor(risk.Factors, "could not verify arrival time") {
		t.Errorf("expected an unknown-time factor, got %v", risk.Factors)
	}
	if risk.Score != 0 {
		t.Errorf("malformed time must not add score, got %d", risk.Score)
	}
}

func TestAssessReliabilityAndDistance(t *testing.T) {
	now := clockAt(14, 0)

	est := baselineEstimate()
	est.Reliability = 0.75
	risk := Assess(nil, est, domain.ModeCar, "", now)
	if risk.Score != 2 {
		t.Errorf("low reliability: score = %d, want 2", risk.Score)
	}

	est = baselineEstimate()
	est.DistanceKm = 25
	if got := Assess(nil, est, domain.ModeMotorcycle, "", now).Score; got != 1 {
		t.Errorf("long motorcycle trip: score = %d, want 1", got)
	}
	// Same distance by car scores nothing.
	if got := Assess(nil, est, domain.ModeCar, "", now).Score; got != 0 {
		t.Errorf("long car trip: score = %d, want 0", got)
	}
}

func TestAssessRushHour(t *testing.T) {
	calm := Assess(nil, baselineEstimate(), domain.ModeCar, "", clockAt(14, 0))
	rush := Assess(nil, baselineEstimate(), domain.ModeCar, "", clockAt(8, 0))
	if rush.Score != calm.Score+2 {
		t.Errorf("rush-hour score = %d, want %d", rush.Score, calm.Score+2)
	}
}

func TestRiskLevelThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  domain.RiskLevel
	}{
		{0, domain.RiskSafe}, {2, domain.RiskSafe},
		{3, domain.RiskModerate}, {4, domain.RiskModerate},
		{5, domain.RiskCaution}, {7, domain.RiskCaution},
		{8, domain.RiskHighDanger}, {12, domain.RiskHighDanger},
	}

	for _, tt := range tests {
		if got := levelFor(tt.score); got != tt.want {
			t.Errorf("levelFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func containsFactor(factors []string, substr string) bool {
	for _, f := range factors {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}
