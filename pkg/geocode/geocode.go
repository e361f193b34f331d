// Package geocode is a thin client for an OpenCage-style reverse
// geocoding service: coordinates in, a formatted location string out.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the hosted OpenCage endpoint.
const DefaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// Client queries the reverse-geocoding service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geocoding client. An empty API key is allowed;
// every lookup then fails fast and callers fall back to coordinates.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type reverseResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
	} `json:"results"`
}

// Reverse resolves coordinates to a formatted location string.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("geocode: no API key configured")
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%f+%f", lat, lng))
	query.Set("key", c.apiKey)
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Results) == 0 {
		return "", errors.New("geocode: no results")
	}
	return body.Results[0].Formatted, nil
}

// Fallback renders raw coordinates the way the composer pre-fills them
// when lookup fails.
func Fallback(lat, lng float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lng)
}
