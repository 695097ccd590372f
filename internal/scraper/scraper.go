// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package scraper fetches a reference website and condenses it into the
// small title/description/content summary embedded into generation
// prompts. The summary is advisory: callers treat every failure here as
// recoverable and generate without reference context.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// MaxContentLength bounds the condensed main content. Anything longer
	// dilutes the prompt without improving the exemplar.
	MaxContentLength = 5000

	// maxBodyBytes caps how much HTML is read from the reference site.
	maxBodyBytes = 2 << 20

	userAgent = "SmartSiteBot/1.0 (+https://vlah.sh)"
)

// urlPattern matches the first http(s) URL embedded in free text.
var urlPattern = regexp.MustCompile(`https?://[^\s"'<>)]+`)

// whitespaceRun collapses runs of whitespace in extracted text.
var whitespaceRun = regexp.MustCompile(`\s+`)

// PageContent is the condensed representation of a reference page.
type PageContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MainContent string `json:"main_content"`
}

// Extractor fetches a URL and returns its condensed content.
type Extractor interface {
	Extract(ctx context.Context, pageURL string) (*PageContent, error)
}

// FindURL returns the first URL embedded in the given text, or an empty
// string when none is present.
func FindURL(text string) string {
	return urlPattern.FindString(text)
}

// HTTPExtractor fetches reference pages directly and condenses them with
// a DOM parse.
type HTTPExtractor struct {
	client *http.Client
}

// NewHTTPExtractor creates an extractor with a bounded request timeout.
func NewHTTPExtractor() *HTTPExtractor {
	return &HTTPExtractor{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Extract fetches the page and returns its title, meta description, and
// visible text truncated to MaxContentLength.
func (e *HTTPExtractor) Extract(ctx context.Context, pageURL string) (*PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("scrape request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("scrape %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("scrape parse: %w", err)
	}

	return condense(doc), nil
}

// condense reduces a parsed document to the fields the prompt composer
// needs.
func condense(doc *goquery.Document) *PageContent {
	pc := &PageContent{
		Title: cleanText(doc.Find("title").First().Text()),
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		pc.Description = cleanText(desc)
	} else if og, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		pc.Description = cleanText(og)
	}

	// Non-content elements would dominate the text extraction.
	body := doc.Find("body").Clone()
	body.Find("script, style, noscript, iframe, svg").Remove()

	pc.MainContent = truncate(cleanText(body.Text()), MaxContentLength)
	return pc
}

// cleanText trims and collapses whitespace runs into single spaces.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
