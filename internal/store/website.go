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

// WebsiteStore handles all website-related database operations.
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore with the given database connection.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// Create inserts a new website and returns it with the generated ID.
func (s *WebsiteStore) Create(w *models.Website) (*models.Website, error) {
	colors, err := marshalColors(w.Colors)
	if err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}

	result := &models.Website{}
	var rawColors []byte
	err = s.db.QueryRow(`
		INSERT INTO websites (owner_id, name, description, category, status, colors)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, description, category, status, colors, created_at, updated_at
	`, w.OwnerID, w.Name, w.Description, w.Category, w.Status, colors).Scan(
		&result.ID, &result.OwnerID, &result.Name, &result.Description,
		&result.Category, &result.Status, &rawColors, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}
	if err := unmarshalColors(rawColors, &result.Colors); err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}
	return result, nil
}

// FindByID retrieves a website by its UUID. Returns nil if not found.
func (s *WebsiteStore) FindByID(id uuid.UUID) (*models.Website, error) {
	w := &models.Website{}
	var rawColors []byte
	err := s.db.QueryRow(`
		SELECT id, owner_id, name, description, category, status, colors, created_at, updated_at
		FROM websites WHERE id = $1
	`, id).Scan(
		&w.ID, &w.OwnerID, &w.Name, &w.Description,
		&w.Category, &w.Status, &rawColors, &w.CreatedAt, &w.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by id: %w", err)
	}
	if err := unmarshalColors(rawColors, &w.Colors); err != nil {
		return nil, fmt.Errorf("find website by id: %w", err)
	}
	return w, nil
}

// ListByOwner returns all websites owned by a user, newest first.
func (s *WebsiteStore) ListByOwner(ownerID uuid.UUID) ([]models.Website, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, name, description, category, status, colors, created_at, updated_at
		FROM websites
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list websites by owner: %w", err)
	}
	defer rows.Close()

	var sites []models.Website
	for rows.Next() {
		var w models.Website
		var rawColors []byte
		if err := rows.Scan(
			&w.ID, &w.OwnerID, &w.Name, &w.Description,
			&w.Category, &w.Status, &rawColors, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		if err := unmarshalColors(rawColors, &w.Colors); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		sites = append(sites, w)
	}
	return sites, rows.Err()
}

// UpdateStatus transitions a website between draft and published.
func (s *WebsiteStore) UpdateStatus(id uuid.UUID, status models.WebsiteStatus) error {
	_, err := s.db.Exec(`
		UPDATE websites SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update website status: %w", err)
	}
	return nil
}

// Delete removes a website by ID. Page rows go with it via ON DELETE CASCADE.
func (s *WebsiteStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM websites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete website: %w", err)
	}
	return nil
}

// CountByOwner returns the number of websites a user owns.
func (s *WebsiteStore) CountByOwner(ownerID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM websites WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count websites: %w", err)
	}
	return count, nil
}

func marshalColors(colors map[string]string) ([]byte, error) {
	if colors == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(colors)
	if err != nil {
		return nil, fmt.Errorf("marshal colors: %w", err)
	}
	return b, nil
}

func unmarshalColors(raw []byte, dst *map[string]string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal colors: %w", err)
	}
	return nil
}
