// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"smartsite/internal/models"
)

// PageStore handles all website-page database operations. Section content
// is stored as a JSONB document per page.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

// CreateBatch inserts all pages of a freshly generated website inside one
// transaction, so a generation run produces either the full page set or
// no page rows at all.
func (s *PageStore) CreateBatch(pages []models.WebsitePage) error {
	if len(pages) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("create pages: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO website_pages (website_id, title, slug, is_homepage, sections,
		                           meta_title, meta_description, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return fmt.Errorf("create pages: prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range pages {
		sections, err := json.Marshal(p.Sections)
		if err != nil {
			return fmt.Errorf("create pages: marshal sections for %q: %w", p.Slug, err)
		}
		if _, err := stmt.Exec(
			p.WebsiteID, p.Title, p.Slug, p.IsHomepage, sections,
			p.MetaTitle, p.MetaDescription, p.SortOrder,
		); err != nil {
			return fmt.Errorf("create pages: insert %q: %w", p.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create pages: commit: %w", err)
	}
	return nil
}

// ListByWebsite returns all pages of a website in sort order.
func (s *PageStore) ListByWebsite(websiteID uuid.UUID) ([]models.WebsitePage, error) {
	rows, err := s.db.Query(`
		SELECT id, website_id, title, slug, is_homepage, sections,
		       meta_title, meta_description, sort_order, created_at, updated_at
		FROM website_pages
		WHERE website_id = $1
		ORDER BY sort_order ASC
	`, websiteID)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.WebsitePage
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// FindBySlug retrieves one page of a website by slug. Returns nil if not found.
func (s *PageStore) FindBySlug(websiteID uuid.UUID, slug string) (*models.WebsitePage, error) {
	row := s.db.QueryRow(`
		SELECT id, website_id, title, slug, is_homepage, sections,
		       meta_title, meta_description, sort_order, created_at, updated_at
		FROM website_pages
		WHERE website_id = $1 AND slug = $2
	`, websiteID, slug)

	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return p, nil
}

// Homepage retrieves the homepage of a website. Returns nil if not found.
func (s *PageStore) Homepage(websiteID uuid.UUID) (*models.WebsitePage, error) {
	row := s.db.QueryRow(`
		SELECT id, website_id, title, slug, is_homepage, sections,
		       meta_title, meta_description, sort_order, created_at, updated_at
		FROM website_pages
		WHERE website_id = $1 AND is_homepage = TRUE
	`, websiteID)

	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find homepage: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*models.WebsitePage, error) {
	p := &models.WebsitePage{}
	var sections []byte
	err := row.Scan(
		&p.ID, &p.WebsiteID, &p.Title, &p.Slug, &p.IsHomepage, &sections,
		&p.MetaTitle, &p.MetaDescription, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan page: %w", err)
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
	}
	return p, nil
}
