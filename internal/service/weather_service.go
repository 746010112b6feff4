package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/cache"
	"github.com/phee464/Lnw-web-hamhub/internal/domain"
	"github.com/phee464/Lnw-web-hamhub/pkg/geo"
)

// rainConditions are the OpenWeatherMap condition groups treated as rain.
var rainConditions = map[string]bool{
	"Rain":         true,
	"Drizzle":      true,
	"Thunderstorm": true,
}

// WeatherService fetches current weather by coordinate from OpenWeatherMap.
// Provider failure is not an error for callers: Fetch returns a WeatherResult
// and Resolve substitutes a synthetic seasonal snapshot, keeping "fetch" and
// "degrade" as separate steps.
type WeatherService struct {
	apiKey     string
	httpClient *http.Client
	cache      *cache.Cache
	cacheTTL   time.Duration
}

// NewWeatherService creates a new weather service. cache may be nil.
func NewWeatherService(apiKey string, c *cache.Cache, cacheTTL time.Duration) *WeatherService {
	return &WeatherService{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// WeatherResult is the outcome of one provider fetch. Exactly one of
// Snapshot or Err is meaningful.
type WeatherResult struct {
	Snapshot domain.WeatherSnapshot
	Err      error
}

// openWeatherResponse mirrors the OpenWeatherMap current-weather payload.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Visibility int `json:"visibility"` // meters
}

// Fetch asks the provider for current weather at a coordinate. It does not
// fall back; use Resolve (or Current) for the degradation policy.
func (s *WeatherService) Fetch(ctx context.Context, at geo.Coordinate) WeatherResult {
	if s.apiKey == "" {
		return WeatherResult{Err: fmt.Errorf("weather: no API key configured")}
	}

	key := fmt.Sprintf("weather:%.2f:%.2f", at.Lat, at.Lng)
	var cached domain.WeatherSnapshot
	if s.cache.Get(ctx, key, &cached) {
		return WeatherResult{Snapshot: cached}
	}

	url := fmt.Sprintf(
		"https://api.openweathermap.org/data/2.5/weather?lat=%f&lon=%f&appid=%s&units=metric",
		at.Lat, at.Lng, s.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return WeatherResult{Err: fmt.Errorf("weather: failed to create request: %w", err)}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return WeatherResult{Err: fmt.Errorf("weather: request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherResult{Err: fmt.Errorf("weather: provider returned status %d", resp.StatusCode)}
	}

	var owResp openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return WeatherResult{Err: fmt.Errorf("weather: failed to decode response: %w", err)}
	}

	snapshot := domain.WeatherSnapshot{
		TemperatureC:  owResp.Main.Temp,
		HumidityPct:   owResp.Main.Humidity,
		WindSpeedMs:   owResp.Wind.Speed,
		VisibilityKm:  float64(owResp.Visibility) / 1000,
		RainMmPerHour: owResp.Rain.OneHour,
		Timestamp:     time.Now(),
	}
	if len(owResp.Weather) > 0 {
		snapshot.Condition = owResp.Weather[0].Main
		snapshot.Description = owResp.Weather[0].Description
		snapshot.Icon = owResp.Weather[0].Icon
		snapshot.IsRaining = rainConditions[owResp.Weather[0].Main]
	}

	s.cache.Set(ctx, key, snapshot, s.cacheTTL)

	return WeatherResult{Snapshot: snapshot}
}

// Resolve applies the degradation policy to a fetch result: on provider
// failure a synthetic seasonal snapshot is substituted so planning always has
// weather to work with. Availability over strict correctness.
func (s *WeatherService) Resolve(result WeatherResult, now time.Time) domain.WeatherSnapshot {
	if result.Err != nil {
		return SyntheticWeather(now)
	}
	return result.Snapshot
}

// Current is Fetch followed by Resolve.
func (s *WeatherService) Current(ctx context.Context, at geo.Coordinate) domain.WeatherSnapshot {
	return s.Resolve(s.Fetch(ctx, at), time.Now())
}

// SyntheticWeather generates a plausible Bangkok snapshot from the season:
// rainy season May-October, hot season March-April, cool season otherwise.
func SyntheticWeather(now time.Time) domain.WeatherSnapshot {
	month := now.Month()

	switch {
	case month >= time.May && month <= time.October: // rainy season
		return domain.WeatherSnapshot{
			TemperatureC:  29,
			HumidityPct:   80,
			Condition:     "Rain",
			Description:   "moderate rain",
			WindSpeedMs:   4.0,
			VisibilityKm:  7,
			IsRaining:     true,
			RainMmPerHour: 3.5,
			Timestamp:     now,
			IsMock:        true,
		}
	case month == time.March || month == time.April: // hot season
		return domain.WeatherSnapshot{
			TemperatureC: 35,
			HumidityPct:  65,
			Condition:    "Haze",
			Description:  "hot and hazy",
			WindSpeedMs:  2.5,
			VisibilityKm: 8,
			Timestamp:    now,
			IsMock:       true,
		}
	default: // cool season
		return domain.WeatherSnapshot{
			TemperatureC: 31,
			HumidityPct:  55,
			Condition:    "Clear",
			Description:  "clear sky",
			WindSpeedMs:  3.0,
			VisibilityKm: 10,
			Timestamp:    now,
			IsMock:       true,
		}
	}
}
