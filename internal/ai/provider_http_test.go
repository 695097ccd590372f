// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates an httptest.Server that responds with the given status
// code and body bytes. The caller must call Close on the returned server.
func newTestServer(t *testing.T, statusCode int, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(body)
	}))
}

func TestClaudeComplete_ReturnsRawEnvelope(t *testing.T) {
	envelope := []byte(`{"content":[{"type":"text","text":"hello"}]}`)
	srv := newTestServer(t, http.StatusOK, envelope)
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "test-key", Model: "claude-sonnet-4-20250514", BaseURL: srv.URL})

	got, err := p.Complete(context.Background(), CompletionRequest{System: "sys", User: "usr", MaxTokens: 1024})
	if err != nil {
		t.Fatalf("Complete: unexpected error: %v", err)
	}
	if string(got) != string(envelope) {
		t.Errorf("Complete: got %q, want raw envelope %q", got, envelope)
	}
}

func TestClaudeComplete_SendsHeadersAndSampling(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		capturedBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "sk-ant-test", Model: "claude-sonnet-4-20250514", BaseURL: srv.URL})

	_, err := p.Complete(context.Background(), CompletionRequest{
		System:      "structure",
		User:        "business",
		MaxTokens:   8000,
		Temperature: 0.3,
	})
	if err != nil {
		t.Fatalf("Complete: unexpected error: %v", err)
	}

	if got := capturedHeaders.Get("x-api-key"); got != "sk-ant-test" {
		t.Errorf("x-api-key header: got %q, want %q", got, "sk-ant-test")
	}
	if got := capturedHeaders.Get("anthropic-version"); got == "" {
		t.Error("anthropic-version header missing")
	}

	var reqBody claudeRequest
	if err := json.Unmarshal(capturedBody, &reqBody); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if reqBody.MaxTokens != 8000 {
		t.Errorf("max_tokens: got %d, want 8000", reqBody.MaxTokens)
	}
	if reqBody.Temperature != 0.3 {
		t.Errorf("temperature: got %v, want 0.3", reqBody.Temperature)
	}
	if reqBody.System != "structure" {
		t.Errorf("system: got %q, want %q", reqBody.System, "structure")
	}
	if len(reqBody.Messages) != 1 || reqBody.Messages[0].Content != "business" {
		t.Errorf("messages: got %+v", reqBody.Messages)
	}
}

func TestOpenAIComplete_SendsBearerAuth(t *testing.T) {
	var capturedAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "sk-test-12345", Model: "gpt-4o", BaseURL: srv.URL})

	if _, err := p.Complete(context.Background(), CompletionRequest{System: "s", User: "u"}); err != nil {
		t.Fatalf("Complete: unexpected error: %v", err)
	}
	if capturedAuth != "Bearer sk-test-12345" {
		t.Errorf("Authorization header: got %q, want %q", capturedAuth, "Bearer sk-test-12345")
	}
}

func TestGeminiComplete_BuildsModelURL(t *testing.T) {
	var capturedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "g-key", Model: "gemini-2.0-flash", BaseURL: srv.URL})

	if _, err := p.Complete(context.Background(), CompletionRequest{System: "s", User: "u"}); err != nil {
		t.Fatalf("Complete: unexpected error: %v", err)
	}
	want := "/v1beta/models/gemini-2.0-flash:generateContent"
	if capturedPath != want {
		t.Errorf("request path: got %q, want %q", capturedPath, want)
	}
}

func TestComplete_NonOKStatusIsAPIError(t *testing.T) {
	tests := []struct {
		name     string
		provider func(baseURL string) Provider
	}{
		{"claude", func(u string) Provider {
			return newClaude(ProviderConfig{APIKey: "k", Model: "m", BaseURL: u})
		}},
		{"openai", func(u string) Provider {
			return newOpenAI(ProviderConfig{APIKey: "k", Model: "m", BaseURL: u})
		}},
		{"gemini", func(u string) Provider {
			return newGemini(ProviderConfig{APIKey: "k", Model: "m", BaseURL: u})
		}},
		{"mistral", func(u string) Provider {
			return newMistral(ProviderConfig{APIKey: "k", Model: "m", BaseURL: u})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusTooManyRequests, []byte(`{"error":"overloaded"}`))
			defer srv.Close()

			_, err := tt.provider(srv.URL).Complete(context.Background(), CompletionRequest{System: "s", User: "u"})
			if err == nil {
				t.Fatal("Complete: expected error for 429 response, got nil")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Complete: error %v is not *APIError", err)
			}
			if apiErr.Status != http.StatusTooManyRequests {
				t.Errorf("APIError.Status = %d, want %d", apiErr.Status, http.StatusTooManyRequests)
			}
			if apiErr.Body != `{"error":"overloaded"}` {
				t.Errorf("APIError.Body = %q", apiErr.Body)
			}
		})
	}
}

func TestModeratorCheckSafety_Flagged(t *testing.T) {
	body := []byte(`{"results":[{"flagged":true,"categories":{"violence":true,"hate/threatening":true,"spam":false}}]}`)
	srv := newTestServer(t, http.StatusOK, body)
	defer srv.Close()

	m := newModerator("openai", "key", srv.URL)
	result, err := m.CheckSafety(context.Background(), "bad text")
	if err != nil {
		t.Fatalf("CheckSafety: unexpected error: %v", err)
	}
	if result.Safe {
		t.Error("CheckSafety: Safe = true, want false")
	}
	if len(result.Categories) != 2 {
		t.Errorf("Categories = %v, want 2 entries", result.Categories)
	}
}

func TestModeratorCheckSafety_Safe(t *testing.T) {
	body := []byte(`{"results":[{"flagged":false,"categories":{"violence":false}}]}`)
	srv := newTestServer(t, http.StatusOK, body)
	defer srv.Close()

	m := newModerator("mistral", "key", srv.URL)
	result, err := m.CheckSafety(context.Background(), "plumbing company")
	if err != nil {
		t.Fatalf("CheckSafety: unexpected error: %v", err)
	}
	if !result.Safe {
		t.Errorf("CheckSafety: Safe = false, Categories = %v", result.Categories)
	}
}

func TestFallbackModerator_SwitchesOnPrimaryError(t *testing.T) {
	failing := newTestServer(t, http.StatusUnauthorized, []byte(`{"error":"no access"}`))
	defer failing.Close()
	working := newTestServer(t, http.StatusOK, []byte(`{"results":[{"flagged":false,"categories":{}}]}`))
	defer working.Close()

	f := newFallbackModerator(
		newModerator("openai", "scoped-key", failing.URL),
		newModerator("mistral", "key", working.URL),
	)

	result, err := f.CheckSafety(context.Background(), "text")
	if err != nil {
		t.Fatalf("CheckSafety: unexpected error: %v", err)
	}
	if !result.Safe {
		t.Error("CheckSafety via fallback: Safe = false, want true")
	}
}
