// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartsite/internal/generator"
	"smartsite/internal/middleware"
	"smartsite/internal/models"
)

// maxGenerateBody caps the generation request body.
const maxGenerateBody = 64 << 10

// Generator runs the content generation pipeline. *generator.Pipeline
// satisfies it.
type Generator interface {
	Run(ctx context.Context, req generator.GenerateRequest, callerID uuid.UUID) (*generator.Result, error)
}

// WebsiteReader reads persisted websites.
type WebsiteReader interface {
	ListByOwner(ownerID uuid.UUID) ([]models.Website, error)
	FindByID(id uuid.UUID) (*models.Website, error)
}

// PageReader reads persisted website pages.
type PageReader interface {
	ListByWebsite(websiteID uuid.UUID) ([]models.WebsitePage, error)
}

// Websites groups all website-related HTTP handlers.
type Websites struct {
	pipeline Generator
	websites WebsiteReader
	pages    PageReader
}

// NewWebsites creates a new Websites handler group.
func NewWebsites(pipeline Generator, websites WebsiteReader, pages PageReader) *Websites {
	return &Websites{
		pipeline: pipeline,
		websites: websites,
		pages:    pages,
	}
}

// Generate runs the full generation pipeline for one request and returns
// the persisted website's identity. Unauthenticated calls must carry an
// ownerId in the body.
func (h *Websites) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxGenerateBody)

	var req generator.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	callerID := uuid.Nil
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		callerID = sess.UserID
	}

	result, err := h.pipeline.Run(r.Context(), req, callerID)
	if err != nil {
		h.respondPipelineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"websiteId":   result.WebsiteID.String(),
		"websiteName": result.WebsiteName,
		"pageCount":   result.PageCount,
		"warnings":    result.Warnings,
		"message":     fmt.Sprintf("%q generated with %d pages", result.WebsiteName, result.PageCount),
	})
}

// respondPipelineError maps pipeline errors onto HTTP statuses. The failing
// stage is named in the body so clients can show where generation stopped.
func (h *Websites) respondPipelineError(w http.ResponseWriter, err error) {
	stage := "pipeline"
	var stageErr *generator.StageError
	if errors.As(err, &stageErr) {
		stage = string(stageErr.Stage)
	}

	var (
		validationErr *generator.ValidationError
		authErr       *generator.AuthError
	)
	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Msg)
	case errors.As(err, &authErr):
		respondError(w, http.StatusUnauthorized, authErr.Msg)
	default:
		slog.Error("website generation failed", "stage", stage, "error", err)
		respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("website generation failed while %s", stage))
	}
}

// List returns the authenticated user's websites, newest first.
func (h *Websites) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	sites, err := h.websites.ListByOwner(sess.UserID)
	if err != nil {
		slog.Error("list websites failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not list websites")
		return
	}
	if sites == nil {
		sites = []models.Website{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"websites": sites})
}

// Get returns one website with its pages. Only the owner (or an admin)
// may read it.
func (h *Websites) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid website id")
		return
	}

	site, err := h.websites.FindByID(id)
	if err != nil {
		slog.Error("find website failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load website")
		return
	}
	if site == nil {
		respondError(w, http.StatusNotFound, "website not found")
		return
	}
	if site.OwnerID != sess.UserID && sess.Role != "admin" {
		respondError(w, http.StatusForbidden, "not your website")
		return
	}

	pages, err := h.pages.ListByWebsite(site.ID)
	if err != nil {
		slog.Error("list pages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load website pages")
		return
	}
	if pages == nil {
		pages = []models.WebsitePage{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"website": site,
		"pages":   pages,
	})
}
