package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all environment-driven settings.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	OpenWeatherAPIKey string
	NominatimBaseURL  string

	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeocodeCacheTTL time.Duration
	WeatherCacheTTL time.Duration
}

// Load reads configuration from the environment. Nothing is required: with
// no API keys the weather service degrades to synthetic snapshots and with
// no DATABASE_URL the server runs on the in-memory repository.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("GO_ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		NominatimBaseURL:  getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),

		RedisEnabled:  getBoolEnv("REDIS_ENABLED", false),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		GeocodeCacheTTL: getDurationEnv("GEOCODE_CACHE_TTL", 24*time.Hour),
		WeatherCacheTTL: getDurationEnv("WEATHER_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
