// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package photos provides stock-photo search against the Pexels API.
// The generation pipeline uses it to turn image keyword phrases into
// real photo URLs.
package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// perPage is how many candidates a single search returns. The enricher
// picks one at random, so a small page keeps responses cheap while still
// varying the chosen photo.
const perPage = 10

// Photo is a single search candidate.
type Photo struct {
	URL          string
	Alt          string
	Photographer string
}

// Searcher resolves a text query and page index into candidate photos.
type Searcher interface {
	Search(ctx context.Context, query string, page int) ([]Photo, error)
}

// Client calls the Pexels search API (GET /v1/search).
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a Pexels API client.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.pexels.com"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Search returns candidate photos for the query, using the given results
// page. Page indexes start at 1.
func (c *Client) Search(ctx context.Context, query string, page int) ([]Photo, error) {
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pexels request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pexels read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result pexelsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("pexels unmarshal: %w", err)
	}

	photos := make([]Photo, 0, len(result.Photos))
	for _, p := range result.Photos {
		u := p.Src.Large2x
		if u == "" {
			u = p.Src.Large
		}
		if u == "" {
			u = p.Src.Original
		}
		if u == "" {
			continue
		}
		photos = append(photos, Photo{
			URL:          u,
			Alt:          p.Alt,
			Photographer: p.Photographer,
		})
	}

	return photos, nil
}

// --- Pexels API response types ---

type pexelsResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

type pexelsPhoto struct {
	Alt          string    `json:"alt"`
	Photographer string    `json:"photographer"`
	Src          pexelsSrc `json:"src"`
}

type pexelsSrc struct {
	Original string `json:"original"`
	Large2x  string `json:"large2x"`
	Large    string `json:"large"`
}
