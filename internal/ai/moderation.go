// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ModerationResult contains the outcome of a prompt safety check.
type ModerationResult struct {
	Safe       bool     // true if the prompt passes moderation
	Categories []string // list of flagged category names (empty when safe)
}

// Moderator checks user-supplied text for policy violations before it is
// embedded into generation prompts.
type Moderator interface {
	// CheckSafety evaluates a text prompt and returns whether it is safe
	// to send to an AI provider. If not safe, Categories lists the reasons.
	CheckSafety(ctx context.Context, text string) (*ModerationResult, error)
}

// moderator calls a moderation endpoint. OpenAI and Mistral expose the
// same request/response shape, so one implementation covers both; only
// the base URL, path, and model name differ.
type moderator struct {
	name    string
	apiKey  string
	baseURL string
	path    string
	model   string
	client  *http.Client
}

// newModerator creates a moderator for the named vendor ("openai" or
// "mistral").
func newModerator(name, apiKey, baseURL string) *moderator {
	m := &moderator{
		name:   name,
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
	switch name {
	case "mistral":
		m.baseURL = "https://api.mistral.ai"
		m.path = "/v1/moderations"
		m.model = "mistral-moderation-latest"
	default:
		m.baseURL = "https://api.openai.com/v1"
		m.path = "/moderations"
		m.model = "omni-moderation-latest"
	}
	if baseURL != "" {
		m.baseURL = baseURL
	}
	return m
}

func (m *moderator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	payload, err := json.Marshal(moderationRequest{Model: m.model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("%s moderation marshal: %w", m.name, err)
	}

	respBody, err := postJSON(ctx, m.client, m.name+" moderation", m.baseURL+m.path, payload, map[string]string{
		"Authorization": "Bearer " + m.apiKey,
	})
	if err != nil {
		return nil, err
	}

	var result moderationResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%s moderation unmarshal: %w", m.name, err)
	}

	if len(result.Results) == 0 {
		return &ModerationResult{Safe: true}, nil
	}

	// OpenAI sets a top-level Flagged; Mistral only reports per-category
	// booleans. Collecting flagged categories covers both.
	var flagged []string
	for cat, isFlagged := range result.Results[0].Categories {
		if isFlagged {
			display := strings.ReplaceAll(cat, "/", " (")
			if strings.Contains(cat, "/") {
				display += ")"
			}
			flagged = append(flagged, strings.ReplaceAll(display, "_", " "))
		}
	}

	return &ModerationResult{
		Safe:       len(flagged) == 0,
		Categories: flagged,
	}, nil
}

// fallbackModerator tries the primary moderator and switches to the
// secondary when the primary call itself fails (e.g. project-scoped keys
// without moderation access). A flagged result is never retried.
type fallbackModerator struct {
	primary   Moderator
	secondary Moderator
}

func newFallbackModerator(primary, secondary Moderator) *fallbackModerator {
	return &fallbackModerator{primary: primary, secondary: secondary}
}

func (f *fallbackModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	result, err := f.primary.CheckSafety(ctx, text)
	if err == nil {
		return result, nil
	}
	return f.secondary.CheckSafety(ctx, text)
}

// --- Request/Response types ---

type moderationRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []moderationOutcome `json:"results"`
}

type moderationOutcome struct {
	Flagged    bool            `json:"flagged"`
	Categories map[string]bool `json:"categories"`
}
