// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteStatus represents the publishing state of a generated website.
type WebsiteStatus string

const (
	WebsiteStatusDraft     WebsiteStatus = "draft"
	WebsiteStatusPublished WebsiteStatus = "published"
)

// Website is the persisted parent record of one generated site. There is
// no update path: regenerating creates a new Website with fresh pages.
type Website struct {
	ID          uuid.UUID         `json:"id"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Status      WebsiteStatus     `json:"status"`
	Colors      map[string]string `json:"colors,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsDraft returns true while the website has not been published.
func (w *Website) IsDraft() bool {
	return w.Status == WebsiteStatusDraft
}

// WebsitePage is one persisted page of a website. Sections holds the
// ordered section list as the page's content payload; the rendering
// component consumes it verbatim.
type WebsitePage struct {
	ID              uuid.UUID `json:"id"`
	WebsiteID       uuid.UUID `json:"website_id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	IsHomepage      bool      `json:"is_homepage"`
	Sections        []Section `json:"sections"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
