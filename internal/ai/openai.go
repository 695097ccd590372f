package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// openAIProvider implements the Provider interface using the OpenAI
// chat completions API (POST /v1/chat/completions).
type openAIProvider struct {
	config ProviderConfig
	client *http.Client
}

// newOpenAI creates a new OpenAI provider.
func newOpenAI(cfg ProviderConfig) *openAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	return &openAIProvider{
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *openAIProvider) Name() string { return "openai" }

// Complete sends a chat completion request and returns the raw response
// envelope. Shared with Mistral, whose API is OpenAI-compatible.
func (p *openAIProvider) Complete(ctx context.Context, cr CompletionRequest) ([]byte, error) {
	return p.doChat(ctx, "openai", cr)
}

func (p *openAIProvider) doChat(ctx context.Context, name string, cr CompletionRequest) ([]byte, error) {
	body := openAIRequest{
		Model:       p.config.Model,
		MaxTokens:   cr.MaxTokens,
		Temperature: cr.Temperature,
		Messages: []openAIMessage{
			{Role: "system", Content: cr.System},
			{Role: "user", Content: cr.User},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s marshal: %w", name, err)
	}

	return postJSON(ctx, p.client, name, p.config.BaseURL+"/chat/completions", payload, map[string]string{
		"Authorization": "Bearer " + p.config.APIKey,
	})
}

// --- OpenAI-compatible request types ---
// Used by both OpenAI and Mistral providers.

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature,omitempty"`
	Messages    []openAIMessage `json:"messages"`
}
