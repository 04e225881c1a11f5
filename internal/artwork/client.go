// Package artwork fetches collectible creature artwork from the public
// PokeAPI. Responses are cached indefinitely since the upstream data for a
// given ID never changes.
package artwork

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Artwork is the resolved display data for one collectible.
type Artwork struct {
	ExternalID int    `json:"externalId"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
}

// Client fetches artwork over HTTP with a polite request rate and an
// in-memory cache keyed by external ID.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter

	mu    sync.RWMutex
	cache map[int]Artwork
}

// NewClient creates an artwork client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		// PokeAPI asks consumers to keep traffic modest; 5 req/s with a
		// small burst is plenty for prefetching a cohort's rewards.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		cache:   make(map[int]Artwork),
	}
}

type pokemonResponse struct {
	Name    string `json:"name"`
	Sprites struct {
		Other struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// Get resolves the artwork for an external ID, serving from cache when
// possible.
func (c *Client) Get(ctx context.Context, externalID int) (Artwork, error) {
	c.mu.RLock()
	cached, ok := c.cache[externalID]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Artwork{}, err
	}

	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Artwork{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Artwork{}, fmt.Errorf("failed to fetch artwork %d: %w", externalID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Artwork{}, fmt.Errorf("artwork %d: unexpected status %d", externalID, resp.StatusCode)
	}

	var body pokemonResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Artwork{}, fmt.Errorf("failed to decode artwork %d: %w", externalID, err)
	}

	art := Artwork{
		ExternalID: externalID,
		Name:       body.Name,
		ImageURL:   body.Sprites.Other.OfficialArtwork.FrontDefault,
	}

	c.mu.Lock()
	c.cache[externalID] = art
	c.mu.Unlock()

	return art, nil
}

// CacheSize reports the number of cached entries.
func (c *Client) CacheSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
