// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// scrape.go provides a Valkey-backed cache in front of the reference
// content extractor. Users frequently retry generation against the same
// reference URL, so a successful extraction is kept for a while and the
// site is not re-fetched on every attempt.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"smartsite/internal/scraper"
)

const (
	// scrapeKeyPrefix is the Valkey key prefix for cached extractions.
	scrapeKeyPrefix = "scrape:"

	// DefaultScrapeTTL is how long extracted reference content stays cached.
	DefaultScrapeTTL = 1 * time.Hour
)

// ScrapeCache decorates a scraper.Extractor with Valkey caching. Cache
// failures degrade to a plain fetch; only successful extractions are stored.
type ScrapeCache struct {
	client *redis.Client
	inner  scraper.Extractor
	ttl    time.Duration
}

// NewScrapeCache wraps an extractor with the given Valkey client.
func NewScrapeCache(client *redis.Client, inner scraper.Extractor, ttl time.Duration) *ScrapeCache {
	if ttl == 0 {
		ttl = DefaultScrapeTTL
	}
	return &ScrapeCache{client: client, inner: inner, ttl: ttl}
}

// Extract returns cached content for the URL when present, fetching and
// caching through the inner extractor otherwise.
func (c *ScrapeCache) Extract(ctx context.Context, pageURL string) (*scraper.PageContent, error) {
	key := scrapeKeyPrefix + pageURL

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		content := &scraper.PageContent{}
		if err := json.Unmarshal(raw, content); err == nil {
			slog.Debug("scrape cache hit", "url", pageURL)
			return content, nil
		}
		// Corrupt entry: drop it and re-fetch.
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		slog.Warn("scrape cache get error", "url", pageURL, "error", err)
	}

	content, err := c.inner.Extract(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(content); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			slog.Warn("scrape cache set error", "url", pageURL, "error", err)
		}
	}
	return content, nil
}

// Invalidate removes the cached extraction for a URL.
func (c *ScrapeCache) Invalidate(ctx context.Context, pageURL string) {
	if err := c.client.Del(ctx, scrapeKeyPrefix+pageURL).Err(); err != nil {
		slog.Warn("scrape cache invalidate error", "url", pageURL, "error", err)
	}
}
