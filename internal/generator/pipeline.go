// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator implements the website generation pipeline: it turns
// a free-text business description into a validated multi-page content
// structure, optionally seeded by a reference URL, enriched with real
// photography, and persisted as one website row plus its page rows.
//
// Stages run strictly in order; only the photo lookups inside image
// enrichment fan out. Context and image failures are recovered locally,
// every other error aborts the run carrying its stage.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"smartsite/internal/ai"
	"smartsite/internal/models"
	"smartsite/internal/scraper"
)

// Completer issues one completion-service call. *ai.Registry satisfies it.
type Completer interface {
	Complete(ctx context.Context, req ai.CompletionRequest) ([]byte, error)
}

// PromptChecker screens text before it is embedded into prompts.
// *ai.Registry satisfies it.
type PromptChecker interface {
	CheckPrompt(ctx context.Context, prompt string) (*ai.ModerationResult, error)
}

// WebsiteWriter persists the parent website row.
type WebsiteWriter interface {
	Create(w *models.Website) (*models.Website, error)
}

// PageWriter persists the page rows of a website.
type PageWriter interface {
	CreateBatch(pages []models.WebsitePage) error
}

// Result is returned on a successful pipeline run.
type Result struct {
	WebsiteID   uuid.UUID
	WebsiteName string
	PageCount   int
	Warnings    []string
}

// Pipeline wires the generation stages to their collaborators.
type Pipeline struct {
	completer Completer
	checker   PromptChecker
	extractor scraper.Extractor
	enricher  *ImageEnricher
	websites  WebsiteWriter
	pages     PageWriter
}

// New creates a pipeline. checker, extractor, and enricher may be nil;
// the corresponding steps degrade (no moderation, no reference context,
// keywords left unresolved).
func New(completer Completer, checker PromptChecker, extractor scraper.Extractor, enricher *ImageEnricher, websites WebsiteWriter, pages PageWriter) *Pipeline {
	return &Pipeline{
		completer: completer,
		checker:   checker,
		extractor: extractor,
		enricher:  enricher,
		websites:  websites,
		pages:     pages,
	}
}

// Run executes one generation. callerID is the authenticated identity,
// or uuid.Nil when the request arrived without a session (batch mode).
func (p *Pipeline) Run(ctx context.Context, req GenerateRequest, callerID uuid.UUID) (*Result, error) {
	// Validating
	if err := req.Validate(); err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}
	ownerID, err := req.ResolveOwner(callerID)
	if err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}
	if err := p.moderate(ctx, req.Description); err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	// ContextEnriching — skipped entirely when the description carries no URL.
	ref := p.enrichContext(ctx, req.Description)

	// Composing
	system := systemPrompt()
	user := userPrompt(req, ref)

	// Generating
	slog.Info("generating website content", "category", req.Category, "has_reference", ref != nil)
	raw, err := p.completer.Complete(ctx, ai.CompletionRequest{
		System:      system,
		User:        user,
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		var apiErr *ai.APIError
		if errors.As(err, &apiErr) {
			return nil, &StageError{Stage: StageGenerating, Err: &GenerationError{Status: apiErr.Status, Body: apiErr.Body}}
		}
		return nil, &StageError{Stage: StageGenerating, Err: err}
	}

	// Extracting
	text := ExtractText(raw)
	if strings.TrimSpace(text) == "" {
		return nil, &StageError{Stage: StageExtracting, Err: &EmptyGenerationError{}}
	}

	// ValidatingSchema
	tpl, err := ParseTemplate(text)
	if err != nil {
		return nil, &StageError{Stage: StageSchema, Err: err}
	}
	vr := ValidateTemplate(tpl)
	if vr.Fatal != nil {
		return nil, &StageError{Stage: StageSchema, Err: vr.Fatal}
	}
	for _, warning := range vr.Warnings {
		slog.Warn("template validation warning", "warning", warning)
	}

	// EnrichingImages
	if p.enricher != nil {
		p.enricher.Enrich(ctx, tpl)
	}

	// Persisting
	site, pageCount, err := p.persist(ownerID, req, tpl)
	if err != nil {
		return nil, &StageError{Stage: StagePersisting, Err: err}
	}

	slog.Info("website generated",
		"website_id", site.ID,
		"name", site.Name,
		"pages", pageCount,
		"warnings", len(vr.Warnings),
	)

	return &Result{
		WebsiteID:   site.ID,
		WebsiteName: site.Name,
		PageCount:   pageCount,
		Warnings:    vr.Warnings,
	}, nil
}

// moderate screens the description when a moderator is configured. A
// failing moderation call is tolerated — providers keep their own safety
// filters — but a flagged description is rejected.
func (p *Pipeline) moderate(ctx context.Context, description string) error {
	if p.checker == nil {
		return nil
	}
	result, err := p.checker.CheckPrompt(ctx, description)
	if err != nil {
		slog.Warn("moderation check failed, continuing", "error", err)
		return nil
	}
	if !result.Safe {
		return &ValidationError{Msg: fmt.Sprintf(
			"description was rejected by content moderation (%s)",
			strings.Join(result.Categories, ", "))}
	}
	return nil
}

// enrichContext fetches condensed reference content when the description
// embeds a URL. Advisory only: any failure logs and the pipeline proceeds
// without context.
func (p *Pipeline) enrichContext(ctx context.Context, description string) *scraper.PageContent {
	pageURL := scraper.FindURL(description)
	if pageURL == "" || p.extractor == nil {
		return nil
	}

	ref, err := p.extractor.Extract(ctx, pageURL)
	if err != nil {
		slog.Warn("reference extraction failed, generating without context",
			"url", pageURL, "error", err)
		return nil
	}

	slog.Info("reference content extracted", "url", pageURL, "title", ref.Title)
	return ref
}
