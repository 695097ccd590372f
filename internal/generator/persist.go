// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"smartsite/internal/models"
	"smartsite/internal/slug"
)

// maxMetaDescriptionLen bounds derived meta descriptions to what search
// engines display.
const maxMetaDescriptionLen = 160

// persist decomposes the enriched template into one website row and its
// page rows. The two writes are not transactional: if page insertion
// fails, the parent website row remains as an orphaned draft. Known gap,
// recorded in the design notes rather than papered over.
func (p *Pipeline) persist(ownerID uuid.UUID, req GenerateRequest, tpl *models.Template) (*models.Website, int, error) {
	site, err := p.websites.Create(&models.Website{
		OwnerID:     ownerID,
		Name:        tpl.WebsiteName,
		Description: tpl.Description,
		Category:    req.Category,
		Status:      models.WebsiteStatusDraft,
		Colors:      tpl.Colors,
	})
	if err != nil {
		return nil, 0, &PersistenceError{Op: "insert website", Err: err}
	}

	rows := make([]models.WebsitePage, 0, len(tpl.Pages))
	for i, page := range tpl.Pages {
		pageSlug := page.Slug
		if pageSlug == "" {
			pageSlug = slug.Generate(page.Title)
		}

		rows = append(rows, models.WebsitePage{
			WebsiteID:       site.ID,
			Title:           page.Title,
			Slug:            pageSlug,
			IsHomepage:      page.IsHomepage,
			Sections:        page.Sections,
			MetaTitle:       deriveMetaTitle(page.Title, tpl.WebsiteName),
			MetaDescription: deriveMetaDescription(tpl.Description),
			SortOrder:       i,
		})
	}

	if err := p.pages.CreateBatch(rows); err != nil {
		return nil, 0, &PersistenceError{Op: "insert pages", Err: err}
	}

	return site, len(rows), nil
}

// deriveMetaTitle builds the browser/search title for a page.
func deriveMetaTitle(pageTitle, siteName string) string {
	if pageTitle == "" {
		return siteName
	}
	return fmt.Sprintf("%s | %s", pageTitle, siteName)
}

// deriveMetaDescription trims the site description to display length.
func deriveMetaDescription(description string) string {
	if utf8.RuneCountInString(description) <= maxMetaDescriptionLen {
		return description
	}
	runes := []rune(description)
	return string(runes[:maxMetaDescriptionLen-1]) + "…"
}
