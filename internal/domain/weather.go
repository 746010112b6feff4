package domain

import "time"

// WeatherSnapshot is the weather at a location at one moment. Sourced from
// OpenWeatherMap or generated synthetically when the provider is unavailable;
// consumed read-only by the estimator and risk assessor.
type WeatherSnapshot struct {
	TemperatureC  float64   `json:"temperature_c"`
	HumidityPct   int       `json:"humidity_pct"`
	Condition     string    `json:"condition"`
	Description   string    `json:"description"`
	WindSpeedMs   float64   `json:"wind_speed_ms"`
	VisibilityKm  float64   `json:"visibility_km"`
	IsRaining     bool      `json:"is_raining"`
	RainMmPerHour float64   `json:"rain_mm_per_hour"`
	Icon          string    `json:"icon,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	IsMock        bool      `json:"is_mock"`
}
