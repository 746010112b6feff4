package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/cache"
	"github.com/phee464/Lnw-web-hamhub/internal/domain"
	"github.com/phee464/Lnw-web-hamhub/pkg/geo"
)

const geocodeUserAgent = "SmartDepartApp/1.0"

// GeocodeService resolves free-text destinations to coordinates. The static
// popular-destination table is consulted first; Nominatim handles everything
// else, with the popular table doubling as the fallback when Nominatim is
// unreachable.
type GeocodeService struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	cacheTTL   time.Duration
}

// NewGeocodeService creates a new geocode service. cache may be nil.
func NewGeocodeService(baseURL string, c *cache.Cache, cacheTTL time.Duration) *GeocodeService {
	return &GeocodeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// nominatimPlace mirrors one entry of a Nominatim search response.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Address     struct {
		Road          string `json:"road"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
		Quarter       string `json:"quarter"`
		State         string `json:"state"`
		Province      string `json:"province"`
	} `json:"address"`
}

// Geocode resolves a destination name to a coordinate. Popular destinations
// match by case-insensitive substring and never touch the network.
func (s *GeocodeService) Geocode(ctx context.Context, query string) (*domain.Destination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrDestinationNotFound
	}

	if dest := matchPopular(query); dest != nil {
		return dest, nil
	}

	key := "geocode:" + strings.ToLower(query)
	var cached domain.Destination
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	places, err := s.search(ctx, query, 1)
	if err != nil || len(places) == 0 {
		return nil, domain.ErrDestinationNotFound
	}

	dest, err := placeToDestination(places[0])
	if err != nil {
		return nil, domain.ErrDestinationNotFound
	}

	s.cache.Set(ctx, key, *dest, s.cacheTTL)
	return dest, nil
}

// Search returns place suggestions for a query. An empty query returns the
// popular-destination list; a Nominatim failure falls back to filtering it.
func (s *GeocodeService) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.PopularDestinations, nil
	}

	places, err := s.search(ctx, query, 10)
	if err != nil {
		return filterPopular(query), nil
	}

	results := make([]domain.Destination, 0, len(places))
	for _, place := range places {
		dest, err := placeToDestination(place)
		if err != nil {
			continue
		}
		results = append(results, *dest)
	}
	if len(results) == 0 {
		return filterPopular(query), nil
	}
	return results, nil
}

// Reverse resolves a coordinate to a human-readable address. On failure it
// degrades to formatted coordinates rather than erroring.
func (s *GeocodeService) Reverse(ctx context.Context, at geo.Coordinate) domain.PlaceDetail {
	fallback := domain.PlaceDetail{
		Address:  fmt.Sprintf("lat %.6f, lng %.6f", at.Lat, at.Lng),
		Province: "unknown",
		Display:  fmt.Sprintf("%.6f, %.6f", at.Lat, at.Lng),
	}

	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&addressdetails=1", s.baseURL, at.Lat, at.Lng)
	var place nominatimPlace
	if err := s.get(ctx, endpoint, &place); err != nil {
		return fallback
	}

	district := place.Address.Suburb
	if district == "" {
		district = place.Address.Neighbourhood
	}
	if district == "" {
		district = place.Address.Quarter
	}
	province := place.Address.State
	if province == "" {
		province = place.Address.Province
	}
	if province == "" {
		province = "Bangkok"
	}

	display := strings.TrimSpace(strings.Join([]string{place.Address.Road, district, province}, " "))
	if display == "" {
		display = place.DisplayName
	}

	return domain.PlaceDetail{
		Address:  place.DisplayName,
		District: district,
		Province: province,
		Display:  display,
	}
}

func (s *GeocodeService) search(ctx context.Context, query string, limit int) ([]nominatimPlace, error) {
	endpoint := fmt.Sprintf(
		"%s/search?format=json&q=%s&countrycodes=th&limit=%d&addressdetails=1",
		s.baseURL, url.QueryEscape(query), limit,
	)

	var places []nominatimPlace
	if err := s.get(ctx, endpoint, &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (s *GeocodeService) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("geocode: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", geocodeUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode: provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	return nil
}

func placeToDestination(place nominatimPlace) (*domain.Destination, error) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", place.Lat, err)
	}
	lng, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", place.Lon, err)
	}

	name := place.DisplayName
	if i := strings.Index(name, ","); i > 0 {
		name = name[:i]
	}

	category := place.Type
	if category == "" {
		category = "place"
	}

	return &domain.Destination{
		Name:       name,
		Category:   category,
		Icon:       "📍",
		Coordinate: geo.Coordinate{Lat: lat, Lng: lng},
		Address:    place.DisplayName,
	}, nil
}

// matchPopular finds the first popular destination whose name contains the
// query, case-insensitively.
func matchPopular(query string) *domain.Destination {
	q := strings.ToLower(query)
	for _, dest := range domain.PopularDestinations {
		if strings.Contains(strings.ToLower(dest.Name), q) {
			d := dest
			return &d
		}
	}
	return nil
}

func filterPopular(query string) []domain.Destination {
	q := strings.ToLower(query)
	matches := make([]domain.Destination, 0, len(domain.PopularDestinations))
	for _, dest := range domain.PopularDestinations {
		if strings.Contains(strings.ToLower(dest.Name), q) {
			matches = append(matches, dest)
		}
	}
	return matches
}
