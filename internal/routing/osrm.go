package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultProfile = "driving"

type osrmClient struct {
	http *http.Client
}

func newOSRMClient() *osrmClient {
	return &osrmClient{http: &http.Client{Timeout: 10 * time.Second}}
}

// route issues a single route query against an OSRM-compatible endpoint and
// converts the response into km/minutes.
func (c *osrmClient) route(ctx context.Context, origin, destination Point, cfg Config) (Result, error) {
	if cfg.BaseURL == "" {
		return Result{}, fmt.Errorf("osrm: base url is empty")
	}

	profile := cfg.Profile
	if profile == "" {
		profile = defaultProfile
	}

	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return Result{}, fmt.Errorf("osrm: parse base url: %w", err)
	}

	coords := fmt.Sprintf("%f,%f;%f,%f", origin.Lon, origin.Lat, destination.Lon, destination.Lat)
	base.Path += fmt.Sprintf("/route/v1/%s/%s", profile, coords)

	q := url.Values{}
	q.Set("overview", "false")
	base.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("osrm: create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("osrm: http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return Result{}, fmt.Errorf("osrm: bad status: %s", resp.Status)
	}

	var payload struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"` // meters
			Duration float64 `json:"duration"` // seconds
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, fmt.Errorf("osrm: decode: %w", err)
	}

	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return Result{}, fmt.Errorf("osrm: no route (code=%q)", payload.Code)
	}

	return Result{
		DistanceKm:    payload.Routes[0].Distance / 1000,
		TravelTimeMin: int(payload.Routes[0].Duration/60 + 0.5),
		Provider:      ProviderOSRM,
	}, nil
}
