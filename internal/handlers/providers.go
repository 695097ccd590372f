package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"smartsite/internal/ai"
)

// Providers exposes admin endpoints for inspecting and switching the
// active completion provider at runtime.
type Providers struct {
	registry *ai.Registry
}

// NewProviders creates a new Providers handler group.
func NewProviders(registry *ai.Registry) *Providers {
	return &Providers{registry: registry}
}

// List returns the configured providers and which one is active.
func (h *Providers) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"active":    h.registry.ActiveName(),
		"available": h.registry.Available(),
	})
}

type setProviderRequest struct {
	Provider string `json:"provider"`
}

// SetActive switches the active provider. Subsequent generations use it
// immediately.
func (h *Providers) SetActive(w http.ResponseWriter, r *http.Request) {
	var req setProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.registry.SetActive(req.Provider); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("active ai provider switched", "provider", req.Provider)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"active":  req.Provider,
	})
}
