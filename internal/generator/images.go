// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"golang.org/x/sync/errgroup"

	"smartsite/internal/models"
	"smartsite/internal/photos"
)

const (
	// maxConcurrentSearches bounds the photo-search fan-out. A template
	// carries a few dozen image fields at most; eight keeps the search
	// service comfortable without serializing the whole stage.
	maxConcurrentSearches = 8

	// searchPageRange is how many result pages the enricher spreads
	// queries across. Common keywords ("plumber", "office team") would
	// otherwise converge on the same top photo on every run.
	searchPageRange = 5
)

// Mirror copies a resolved photo into owned storage and returns the new
// URL. Optional — without it, photo URLs hotlink the search API's CDN.
type Mirror interface {
	MirrorPhoto(ctx context.Context, srcURL string) (string, error)
}

// ImageEnricher resolves image keyword phrases in a template into real
// photo URLs.
type ImageEnricher struct {
	search  photos.Searcher
	mirror  Mirror
	randInt func(n int) int
}

// NewImageEnricher creates an enricher. mirror may be nil.
func NewImageEnricher(search photos.Searcher, mirror Mirror) *ImageEnricher {
	return &ImageEnricher{
		search:  search,
		mirror:  mirror,
		randInt: rand.IntN,
	}
}

// Enrich walks every section and item image field holding a keyword
// phrase and replaces it with a photo URL. Field lookups run concurrently
// under a fixed limit; each goroutine writes only its own field, so there
// is no contention on the template tree. A failed search leaves the
// keyword in place — cosmetic degradation, never a pipeline failure.
func (e *ImageEnricher) Enrich(ctx context.Context, tpl *models.Template) {
	if e.search == nil {
		return
	}

	var fields []*string
	for pi := range tpl.Pages {
		for si := range tpl.Pages[pi].Sections {
			sec := &tpl.Pages[pi].Sections[si]
			if isKeyword(sec.Image) {
				fields = append(fields, &sec.Image)
			}
			for ii := range sec.Items {
				if isKeyword(sec.Items[ii].Image) {
					fields = append(fields, &sec.Items[ii].Image)
				}
			}
		}
	}
	if len(fields) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)

	for _, field := range fields {
		g.Go(func() error {
			if url, ok := e.resolve(ctx, *field); ok {
				*field = url
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	g.Wait()

	slog.Debug("image enrichment finished", "fields", len(fields))
}

// resolve turns one keyword phrase into a photo URL. The results page and
// the candidate within it are both chosen at random so repeated runs with
// the same keywords produce varied sites.
func (e *ImageEnricher) resolve(ctx context.Context, keyword string) (string, bool) {
	page := e.randInt(searchPageRange) + 1

	candidates, err := e.search.Search(ctx, keyword, page)
	if err != nil {
		slog.Warn("photo search failed, keeping keyword",
			"keyword", keyword, "page", page, "error", err)
		return "", false
	}
	if len(candidates) == 0 {
		// High page numbers can run past the result set for narrow
		// queries; retry once on the first page.
		candidates, err = e.search.Search(ctx, keyword, 1)
		if err != nil || len(candidates) == 0 {
			slog.Warn("photo search returned no candidates, keeping keyword",
				"keyword", keyword)
			return "", false
		}
	}

	chosen := candidates[e.randInt(len(candidates))].URL

	if e.mirror != nil {
		mirrored, err := e.mirror.MirrorPhoto(ctx, chosen)
		if err != nil {
			slog.Warn("photo mirror failed, hotlinking instead",
				"url", chosen, "error", err)
		} else {
			chosen = mirrored
		}
	}

	return chosen, true
}

// isKeyword reports whether an image field still holds a keyword phrase
// rather than an already-resolved URL.
func isKeyword(s string) bool {
	if s == "" {
		return false
	}
	return !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://")
}
