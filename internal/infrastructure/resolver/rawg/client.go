// Package rawg provides a GameResolver implementation backed by the RAWG
// video game metadata API.
package rawg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/perdan/gamescope/internal/domain/entities"
	"github.com/perdan/gamescope/internal/domain/ports"
	"github.com/perdan/gamescope/internal/infrastructure/catalog"
	"github.com/perdan/gamescope/internal/infrastructure/config"
)

// Client implements the GameResolver interface against a RAWG-style API.
// Resolution is a two-step protocol: a search request picks the best-match
// slug for a free-text title, then a detail request fetches the full record.
// Each call makes a single attempt per step; there is no retry policy.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

// NewClient creates a new RAWG resolver client.
func NewClient(cfg config.RAWGConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("RAWG API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.Default().RAWG.BaseURL
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 1
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		pageSize:   pageSize,
		httpClient: &http.Client{},
	}, nil
}

// searchResponse is the payload of the search endpoint.
type searchResponse struct {
	Count   int `json:"count"`
	Results []struct {
		Slug string `json:"slug"`
	} `json:"results"`
}

// detailResponse is the payload of the detail endpoint.
type detailResponse struct {
	Name     string `json:"name"`
	Released string `json:"released"`
	Genres   []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Platforms []struct {
		Platform struct {
			Name string `json:"name"`
		} `json:"platform"`
	} `json:"platforms"`
	Publishers []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	Developers []struct {
		Name string `json:"name"`
	} `json:"developers"`
}

// Resolve looks up a free-text title and maps the best match into the
// catalog's record shape. Every failure mode (search miss, detail miss,
// transport error, malformed payload) surfaces as ports.ErrGameNotFound;
// the lookup is never fatal and never yields a partial record.
func (c *Client) Resolve(ctx context.Context, title string) (entities.Game, error) {
	slug, err := c.findSlug(ctx, title)
	if err != nil {
		return entities.Game{}, fmt.Errorf("%w: %v", ports.ErrGameNotFound, err)
	}

	detail, err := c.findDetails(ctx, slug)
	if err != nil {
		return entities.Game{}, fmt.Errorf("%w: %v", ports.ErrGameNotFound, err)
	}

	return mapGame(detail), nil
}

// findSlug queries the search endpoint for the best-match slug.
func (c *Client) findSlug(ctx context.Context, title string) (string, error) {
	query := url.Values{}
	query.Set("search", title)
	query.Set("key", c.apiKey)
	query.Set("page_size", fmt.Sprint(c.pageSize))

	var resp searchResponse
	if err := c.get(ctx, c.baseURL+"/games?"+query.Encode(), &resp); err != nil {
		return "", err
	}

	if resp.Count == 0 || len(resp.Results) == 0 {
		return "", fmt.Errorf("no search results for %q", title)
	}

	return resp.Results[0].Slug, nil
}

// findDetails queries the detail endpoint for the full record.
func (c *Client) findDetails(ctx context.Context, slug string) (*detailResponse, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)

	var resp detailResponse
	if err := c.get(ctx, c.baseURL+"/games/"+url.PathEscape(slug)+"?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// get performs a GET request and decodes the JSON response body.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// mapGame converts a detail response into a catalog record. Multi-valued
// fields are joined with the catalog's pipe separator so resolver-added
// records filter identically to loaded ones.
func mapGame(d *detailResponse) entities.Game {
	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}

	platforms := make([]string, 0, len(d.Platforms))
	for _, p := range d.Platforms {
		platforms = append(platforms, p.Platform.Name)
	}

	publishers := make([]string, 0, len(d.Publishers))
	for _, p := range d.Publishers {
		publishers = append(publishers, p.Name)
	}

	developers := make([]string, 0, len(d.Developers))
	for _, dev := range d.Developers {
		developers = append(developers, dev.Name)
	}

	return entities.Game{
		Name:      d.Name,
		Released:  catalog.ParseReleaseDate(d.Released),
		Genre:     entities.JoinTags(genres),
		Platform:  entities.JoinTags(platforms),
		Publisher: entities.JoinTags(publishers),
		Developer: entities.JoinTags(developers),
	}
}
