// Package places provides a Geocoder implementation backed by a
// find-place-from-text places API.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/ports"
	"github.com/perdan/gamescope/internal/infrastructure/config"
)

// Client implements the Geocoder interface against a places API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new places geocoder client.
func NewClient(cfg config.PlacesConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("places API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.Default().Places.BaseURL
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
	}, nil
}

type findPlaceResponse struct {
	Status     string      `json:"status"`
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Types            []string `json:"types"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Locate geocodes a developer name. Candidates typed as an establishment or
// point of interest are preferred; otherwise the first candidate serves as a
// fallback. Any failure surfaces as ports.ErrNoPlaceFound.
func (c *Client) Locate(ctx context.Context, developer string) (entities.Location, error) {
	query := url.Values{}
	query.Set("input", developer)
	query.Set("inputtype", "textquery")
	query.Set("fields", "formatted_address,name,geometry,types")
	query.Set("key", c.apiKey)

	resp, err := c.findPlace(ctx, c.baseURL+"/findplacefromtext/json?"+query.Encode())
	if err != nil {
		return entities.Location{}, fmt.Errorf("%w: %v", ports.ErrNoPlaceFound, err)
	}

	if resp.Status != "OK" || len(resp.Candidates) == 0 {
		return entities.Location{}, fmt.Errorf("%w: status %s for %q", ports.ErrNoPlaceFound, resp.Status, developer)
	}

	best := resp.Candidates[0]
	for _, cand := range resp.Candidates {
		if cand.isEstablishment() {
			best = cand
			break
		}
	}

	return entities.Location{
		Developer: developer,
		Latitude:  best.Geometry.Location.Lat,
		Longitude: best.Geometry.Location.Lng,
		PlaceName: best.Name,
		Address:   best.FormattedAddress,
	}, nil
}

func (c *Client) findPlace(ctx context.Context, rawURL string) (*findPlaceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var out findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &out, nil
}

func (c candidate) isEstablishment() bool {
	for _, t := range c.Types {
		if t == "establishment" || t == "point_of_interest" {
			return true
		}
	}
	return false
}
