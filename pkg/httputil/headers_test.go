package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNoCache(t *testing.T) {
	rec := httptest.NewRecorder()
	NoCache(rec.Header())

	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}
}

func TestETag(t *testing.T) {
	if got := ETag("abc123"); got != `W/"abc123"` {
		t.Errorf("ETag = %q", got)
	}
}

func TestNotModified(t *testing.T) {
	etag := ETag("build-7")

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"no header", "", false},
		{"exact match", `W/"build-7"`, true},
		{"wildcard", "*", true},
		{"mismatch", `W/"build-6"`, false},
		{"list with match", `W/"build-6", W/"build-7"`, true},
		{"list without match", `W/"build-5", W/"build-6"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/index.html", nil)
			if tt.header != "" {
				r.Header.Set("If-None-Match", tt.header)
			}
			if got := NotModified(r, etag); got != tt.want {
				t.Errorf("NotModified(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"index.html", "text/html; charset=utf-8"},
		{"styles.css", "text/css; charset=utf-8"},
		{"layout.json", "application/json"},
		{"tree.svg", "image/svg+xml"},
		{"tree.png", "image/png"},
		{"tree.dot", "text/plain; charset=utf-8"},
		{"hero.webp", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentTypeFor(tt.name); got != tt.want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
