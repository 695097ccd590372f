// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"

	"smartsite/internal/models"
	"smartsite/internal/scraper"
)

// Sampling settings for website generation. Low temperature favors schema
// compliance over creative variance; the token budget bounds the largest
// multi-page template we accept.
const (
	generationMaxTokens   = 8192
	generationTemperature = 0.3
)

// systemPrompt enumerates the exact target JSON shape, section ordering,
// per-section cardinality, and image keyword rules. It is a pure function
// of the section constants so prompt and validator cannot drift apart.
func systemPrompt() string {
	sections := make([]string, len(models.RequiredHomepageSections))
	for i, st := range models.RequiredHomepageSections {
		sections[i] = string(st)
	}

	return fmt.Sprintf(`You are a website content architect. Produce the complete content structure for a multi-page business website as a single JSON object.

Output rules:
- Output ONLY the JSON object. No commentary, no markdown fences.
- The JSON shape is exactly:
{
  "websiteName": string,
  "description": string (one-sentence site summary),
  "colors": {"primary": hex, "secondary": hex, "accent": hex, "background": hex, "text": hex},
  "pages": [
    {"title": string, "slug": string, "isHomepage": boolean, "sections": [Section, ...]}
  ]
}
- Exactly one page has "isHomepage": true.
- The homepage sections array contains, in this order: %s.
- Each Section has "type" (one of the above), "id" (anchor string), and type-appropriate fields: "heading", "subheading", "content", "backgroundColor", "textColor", "image", "items", "buttons", "fields".
- Cardinality: "services" has exactly %d items, "stats" exactly %d, "projects" exactly %d, "testimonials" exactly %d.
- Services items use {"title", "description", "icon"}. Stats items use {"value", "label"}. Projects items use {"title", "description", "image"}. Testimonials items use {"quote", "author", "role"}.
- The "contact" section has "fields": [{"name":"name","type":"text"},{"name":"email","type":"email"},{"name":"message","type":"textarea"}].
- Navigation buttons use href values of "#" plus the id of a homepage section.
- Every "image" value is a short, SPECIFIC stock-photo keyword phrase of 2-4 words (e.g. "plumber fixing sink", not "business"). Never invent image URLs.
- Additional pages (about, services, contact) reuse the same Section shape.`,
		strings.Join(sections, ", "),
		models.ItemCardinality[models.SectionServices],
		models.ItemCardinality[models.SectionStats],
		models.ItemCardinality[models.SectionProjects],
		models.ItemCardinality[models.SectionTestimonials],
	)
}

// userPrompt embeds the business inputs and, when present, the condensed
// reference-site content framed as a style and structure exemplar.
func userPrompt(req GenerateRequest, ref *scraper.PageContent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create the website content for this business.\n\nBusiness description: %s\nCategory: %s\n", req.Description, req.Category)
	if req.BusinessName != "" {
		fmt.Fprintf(&b, "Business name: %s (use this as websiteName)\n", req.BusinessName)
	}

	if ref != nil {
		b.WriteString("\nA reference website the client likes is summarized below. Use it as an exemplar for tone, structure, and emphasis — do not copy its text.\n")
		if ref.Title != "" {
			fmt.Fprintf(&b, "Reference title: %s\n", ref.Title)
		}
		if ref.Description != "" {
			fmt.Fprintf(&b, "Reference description: %s\n", ref.Description)
		}
		if ref.MainContent != "" {
			fmt.Fprintf(&b, "Reference content:\n%s\n", ref.MainContent)
		}
	}

	return b.String()
}
