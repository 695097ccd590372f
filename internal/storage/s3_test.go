package storage

import (
	"strings"
	"testing"
)

func TestNewWithoutCredentials(t *testing.T) {
	c, err := New("", "eu-central", "", "", "bucket", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client when credentials are missing")
	}
}

func TestFileURL(t *testing.T) {
	t.Run("path-style from endpoint", func(t *testing.T) {
		c := &Client{endpoint: "https://s3.example.com", bucket: "photos"}
		got := c.FileURL("photos/abc.jpg")
		want := "https://s3.example.com/photos/photos/abc.jpg"
		if got != want {
			t.Errorf("FileURL = %q, want %q", got, want)
		}
	})

	t.Run("public URL preferred", func(t *testing.T) {
		c := &Client{endpoint: "https://s3.example.com", bucket: "photos",
			publicURL: "https://cdn.example.com"}
		got := c.FileURL("photos/abc.jpg")
		want := "https://cdn.example.com/photos/abc.jpg"
		if got != want {
			t.Errorf("FileURL = %q, want %q", got, want)
		}
	})
}

func TestExtractKey(t *testing.T) {
	c := &Client{
		endpoint:  "https://s3.example.com",
		bucket:    "photos",
		publicURL: "https://cdn.example.com",
	}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{"cdn url", "https://cdn.example.com/photos/a.jpg", "photos/a.jpg", true},
		{"path-style url", "https://s3.example.com/photos/photos/a.jpg", "photos/a.jpg", true},
		{"foreign url", "https://images.pexels.com/a.jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.url)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("ExtractKey(%q) = (%q, %v), want (%q, %v)",
					tt.url, key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

func TestPhotoKey(t *testing.T) {
	tests := []struct {
		contentType string
		wantExt     string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/webp", ".webp"},
		{"", ".jpg"},
	}

	for _, tt := range tests {
		key := photoKey(tt.contentType)
		if !strings.HasPrefix(key, "photos/") {
			t.Errorf("photoKey(%q) = %q, want photos/ prefix", tt.contentType, key)
		}
		if !strings.HasSuffix(key, tt.wantExt) {
			t.Errorf("photoKey(%q) = %q, want %q suffix", tt.contentType, key, tt.wantExt)
		}
	}

	if photoKey("image/jpeg") == photoKey("image/jpeg") {
		t.Error("photoKey must generate unique keys")
	}
}
