package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"festa/internal/apperrors"
)

// Geocoder resolves a free-text location into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

type geocodeResponse struct {
	Results []struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"results"`
}

// HTTPGeocoder calls an external geocoding API:
// GET <base>?q=<address>&key=<key>.
type HTTPGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGeocoder(baseURL, apiKey string) *HTTPGeocoder {
	return &HTTPGeocoder{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *HTTPGeocoder) Geocode(ctx context.Context, address string) (Coordinates, error) {
	if address == "" {
		return Coordinates{}, apperrors.Validation("location cannot be empty")
	}

	reqURL := fmt.Sprintf("%s?q=%s&key=%s", g.baseURL, url.QueryEscape(address), url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, apperrors.ExternalService("failed to build geocoding request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinates{}, apperrors.ExternalService("geocoding service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, apperrors.ExternalService(
			fmt.Sprintf("geocoding service returned status %d", resp.StatusCode), nil)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, apperrors.ExternalService("failed to decode geocoding response", err)
	}

	if len(body.Results) == 0 {
		return Coordinates{}, apperrors.ExternalService(
			fmt.Sprintf("no geocoding result for %q", address), nil)
	}

	return Coordinates{
		Latitude:  body.Results[0].Lat,
		Longitude: body.Results[0].Lng,
	}, nil
}
