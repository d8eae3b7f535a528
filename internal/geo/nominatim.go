package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HoussamELM/PharmaRapide/config"
)

// reverseTimeout caps the nominatim lookup; past it the caller gets an error
// and the address stays whatever the customer typed.
const reverseTimeout = 5 * time.Second

// Geocoder resolves coordinates into a display address through the nominatim
// reverse endpoint.
type Geocoder struct {
	Client    *http.Client
	Endpoint  string
	UserAgent string
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func NewGeocoder(cfg config.GeocodingConfig) *Geocoder {
	return &Geocoder{
		Client:    &http.Client{Timeout: reverseTimeout},
		Endpoint:  cfg.Endpoint,
		UserAgent: cfg.UserAgent,
	}
}

// Reverse returns the display address for a coordinate pair. When the service
// answers without a display name, the formatted coordinates are returned so
// the caller always has something to show.
func (g *Geocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, reverseTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocoding request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.UserAgent)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding failed: status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocoding response: %w", err)
	}
	if body.Error != "" {
		return "", fmt.Errorf("reverse geocoding failed: %s", body.Error)
	}

	if body.DisplayName == "" {
		return fmt.Sprintf("%.6f, %.6f", lat, lng), nil
	}
	return body.DisplayName, nil
}
