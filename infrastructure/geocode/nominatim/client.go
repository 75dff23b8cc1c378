// ABOUTME: Nominatim geocoder resolves free-text place names to coordinates
// ABOUTME: Calls the OpenStreetMap search endpoint through the injected HTTP client

package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"college-profile-api/core/domain"
	coreerrors "college-profile-api/core/errors"
	"college-profile-api/core/interfaces"
)

// DefaultBaseURL is the public Nominatim instance
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Geocoder implements interfaces.Geocoder against a Nominatim server
type Geocoder struct {
	baseURL    string
	httpClient interfaces.HTTPClient
}

// NewGeocoder creates a geocoder. An empty baseURL uses DefaultBaseURL.
// The HTTP client must send an identifying User-Agent, which Nominatim's
// usage policy requires.
func NewGeocoder(baseURL string, httpClient interfaces.HTTPClient) *Geocoder {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Geocoder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns up to limit coordinate pairs for query
func (g *Geocoder) Geocode(ctx context.Context, query string, limit int) ([]domain.Coordinates, error) {
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	searchURL := g.baseURL + "/search?" + params.Encode()

	resp, err := g.httpClient.Get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        "nominatim",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var places []place
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("failed to parse geocoding results: %w", err)
	}

	coords := make([]domain.Coordinates, 0, len(places))
	for _, p := range places {
		lat, err := strconv.ParseFloat(p.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude %q: %w", p.Lat, err)
		}
		lon, err := strconv.ParseFloat(p.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude %q: %w", p.Lon, err)
		}
		coords = append(coords, domain.Coordinates{
			Latitude:      lat,
			Longitude:     lon,
			LatitudeText:  strings.TrimSpace(p.Lat),
			LongitudeText: strings.TrimSpace(p.Lon),
		})
		if len(coords) == limit {
			break
		}
	}

	return coords, nil
}
