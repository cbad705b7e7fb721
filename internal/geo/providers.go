package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/swifthaul/rate-service/internal/domain/model"
)

// Geocoder forward-geocodes a place name to coordinates.
// A nil coordinate with a nil error means "not found".
type Geocoder interface {
	Geocode(ctx context.Context, place string) (*model.Coordinate, error)
}

// RouteProvider computes a driving route between two coordinates.
// A nil result with a nil error means the provider found no route.
type RouteProvider interface {
	Name() string
	Route(ctx context.Context, from, to model.Coordinate) (*model.DistanceResult, error)
}

// HTTPGeocoder calls a GeoJSON forward-geocoding endpoint
// (Pelias-compatible: ORS geocode, Geoapify) with an API key.
type HTTPGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPGeocoder creates a geocoder against the given endpoint.
func NewHTTPGeocoder(baseURL, apiKey string, client *http.Client) *HTTPGeocoder {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGeocoder{baseURL: baseURL, apiKey: apiKey, client: client}
}

// Enabled reports whether the geocoder is configured with an API key.
func (g *HTTPGeocoder) Enabled() bool {
	return g.apiKey != "" && g.baseURL != ""
}

type geoJSONResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a place name to coordinates.
func (g *HTTPGeocoder) Geocode(ctx context.Context, place string) (*model.Coordinate, error) {
	q := url.Values{}
	q.Set("text", place)
	q.Set("api_key", g.apiKey)
	q.Set("size", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var body geoJSONResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(body.Features) == 0 || len(body.Features[0].Geometry.Coordinates) < 2 {
		return nil, nil
	}

	// GeoJSON order is [lon, lat].
	coords := body.Features[0].Geometry.Coordinates
	return &model.Coordinate{Lat: coords[1], Lon: coords[0]}, nil
}

// OSRMProvider is the primary routing provider, speaking the OSRM
// route API (no credentials required against the public server).
type OSRMProvider struct {
	baseURL string
	client  *http.Client
}

// NewOSRMProvider creates an OSRM routing client.
func NewOSRMProvider(baseURL string, client *http.Client) *OSRMProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &OSRMProvider{baseURL: baseURL, client: client}
}

// Name identifies the provider in logs and metrics.
func (p *OSRMProvider) Name() string { return "route_primary" }

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route requests a driving route from OSRM.
func (p *OSRMProvider) Route(ctx context.Context, from, to model.Coordinate) (*model.DistanceResult, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		p.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("osrm: unexpected status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("osrm: decode response: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, nil
	}

	return &model.DistanceResult{
		DistanceKm:    body.Routes[0].Distance / 1000,
		DurationHours: body.Routes[0].Duration / 3600,
		Source:        p.Name(),
	}, nil
}

// ORSProvider is the secondary routing provider, speaking the
// openrouteservice directions API with an API key.
type ORSProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewORSProvider creates an openrouteservice directions client.
func NewORSProvider(baseURL, apiKey string, client *http.Client) *ORSProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &ORSProvider{baseURL: baseURL, apiKey: apiKey, client: client}
}

// Name identifies the provider in logs and metrics.
func (p *ORSProvider) Name() string { return "route_secondary" }

type orsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// Route requests a driving route from openrouteservice.
func (p *ORSProvider) Route(ctx context.Context, from, to model.Coordinate) (*model.DistanceResult, error) {
	payload, err := json.Marshal(map[string][][]float64{
		"coordinates": {{from.Lon, from.Lat}, {to.Lon, to.Lat}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v2/directions/driving-car", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ors: unexpected status %d", resp.StatusCode)
	}

	var body orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("ors: decode response: %w", err)
	}
	if len(body.Routes) == 0 {
		return nil, nil
	}

	return &model.DistanceResult{
		DistanceKm:    body.Routes[0].Summary.Distance / 1000,
		DurationHours: body.Routes[0].Summary.Duration / 3600,
		Source:        p.Name(),
	}, nil
}
