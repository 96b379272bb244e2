package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/vitrine/pkg/content"
)

func TestLocalizeAssetsFetchesRemoteImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	m := &content.Model{}
	m.Hero.Image = srv.URL + "/img/hero.png"
	outDir := t.TempDir()

	local, n, err := localizeAssets(context.Background(), m, outDir)
	if err != nil {
		t.Fatalf("localizeAssets() error: %v", err)
	}
	if n != 1 {
		t.Fatalf("localized %d assets, want 1", n)
	}

	if local.Hero.Image != "assets/hero.png" {
		t.Errorf("rewritten image = %q, want %q", local.Hero.Image, "assets/hero.png")
	}
	// The loaded model stays untouched.
	if m.Hero.Image == local.Hero.Image {
		t.Error("localizeAssets should return a copy, not mutate the input")
	}

	data, err := os.ReadFile(filepath.Join(outDir, assetsSubdir, "hero.png"))
	if err != nil {
		t.Fatalf("read fetched asset: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("fetched asset = %q, want %q", data, "png-bytes")
	}
}

func TestLocalizeAssetsSkipsLocalImage(t *testing.T) {
	m := &content.Model{}
	m.Hero.Image = "images/hero.png"

	local, n, err := localizeAssets(context.Background(), m, t.TempDir())
	if err != nil {
		t.Fatalf("localizeAssets() error: %v", err)
	}
	if n != 0 {
		t.Errorf("localized %d assets, want 0", n)
	}
	if local != m {
		t.Error("a model without remote references should pass through unchanged")
	}
}

func TestRemoteURL(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://cdn.example.com/hero.png", true},
		{"http://cdn.example.com/hero.png", true},
		{"images/hero.png", false},
		{"/hero.png", false},
		{"", false},
		{"ftp://example.com/hero.png", false},
	}

	for _, tt := range tests {
		if got := remoteURL(tt.ref); got != tt.want {
			t.Errorf("remoteURL(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestAssetFileName(t *testing.T) {
	if got := assetFileName("https://cdn.example.com/img/hero.png", nil); got != "hero.png" {
		t.Errorf("assetFileName = %q, want %q", got, "hero.png")
	}

	// No usable base name falls back to a content hash.
	got := assetFileName("https://cdn.example.com/", []byte("payload"))
	if !strings.HasPrefix(got, "asset-") {
		t.Errorf("assetFileName = %q, want an asset- hash name", got)
	}

	// Hidden base names are not written as-is.
	got = assetFileName("https://cdn.example.com/.secret", []byte("payload"))
	if strings.HasPrefix(got, ".") {
		t.Errorf("assetFileName = %q, must not produce a hidden file", got)
	}
}

func TestCopyAssets(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "fonts"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"logo.svg":       "<svg/>",
		"fonts/body.ttf": "ttf-bytes",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(src, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	outDir := t.TempDir()
	copied, err := copyAssets(src, outDir)
	if err != nil {
		t.Fatalf("copyAssets() error: %v", err)
	}
	if copied != 2 {
		t.Errorf("copied = %d, want 2", copied)
	}

	for name, body := range files {
		data, err := os.ReadFile(filepath.Join(outDir, assetsSubdir, name))
		if err != nil {
			t.Fatalf("read copied %s: %v", name, err)
		}
		if string(data) != body {
			t.Errorf("copied %s = %q, want %q", name, data, body)
		}
	}
}

func TestCopyAssetsMissingDir(t *testing.T) {
	if _, err := copyAssets(filepath.Join(t.TempDir(), "missing"), t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing assets directory")
	}
}
