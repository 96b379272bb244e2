package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/vitrine/pkg/errors"
)

const dirSiteTOML = `
[site]
title = "Acme Cloud"

[header]
logo = "Acme"

[hero]
heading = "Launch in minutes"

[footer]
copyright = "© 2026 Acme"
`

func writeContentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "site.toml"), []byte(dirSiteTOML), 0o644); err != nil {
		t.Fatalf("write site.toml: %v", err)
	}

	featDir := filepath.Join(dir, "features")
	if err := os.MkdirAll(filepath.Join(featDir, "drafts"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files := map[string]string{
		// No title in frontmatter: derived from the filename.
		"fast-builds.md": "---\nicon: rocket-outline\nweight: 2\n---\nDeploys in *seconds*.",
		"security.md":    "---\nicon: lock-closed-outline\ntitle: Secure by Default\nweight: 1\n---\nEncrypted.",
		// No frontmatter at all: weight 0, everything derived.
		"support.md": "Humans answer.",
		// Not a feature file, must be skipped.
		"notes.txt": "ignore me",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(featDir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestDirSourceLoad(t *testing.T) {
	src := NewDirSource(writeContentDir(t))

	m, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(m.Features) != 3 {
		t.Fatalf("len(Features) = %d, want 3", len(m.Features))
	}

	// Weight ascending, ties broken by filename.
	wantTitles := []string{"Support", "Secure by Default", "Fast Builds"}
	for i, want := range wantTitles {
		if got := m.Features[i].Title; got != want {
			t.Errorf("Features[%d].Title = %q, want %q", i, got, want)
		}
	}

	if got, want := m.Features[2].Description, "Deploys in <em>seconds</em>."; got != want {
		t.Errorf("Features[2].Description = %q, want %q", got, want)
	}
	if got := m.Features[1].Icon; got != "lock-closed-outline" {
		t.Errorf("Features[1].Icon = %q", got)
	}
}

func TestDirSourceMissingSite(t *testing.T) {
	src := NewDirSource(t.TempDir())

	_, err := src.Load(context.Background())
	if err == nil {
		t.Fatal("Load() expected error for missing site.toml")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeContentNotFound {
		t.Errorf("GetCode(err) = %v, want %v", code, errors.ErrCodeContentNotFound)
	}
}

func TestDirSourceInlineFeatures(t *testing.T) {
	// Without a features directory the site.toml feature tables survive.
	dir := t.TempDir()
	body := dirSiteTOML + `
[[features]]
icon = "flash-outline"
title = "Fast"
description = "Quick."
`
	if err := os.WriteFile(filepath.Join(dir, "site.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write site.toml: %v", err)
	}

	m, err := NewDirSource(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m.Features) != 1 || m.Features[0].Title != "Fast" {
		t.Errorf("inline features not preserved: %+v", m.Features)
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"fast-builds.md", "Fast Builds"},
		{"zero_config.md", "Zero Config"},
		{"support.md", "Support"},
	}
	for _, tt := range tests {
		if got := titleFromFilename(tt.name); got != tt.want {
			t.Errorf("titleFromFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDirSourceString(t *testing.T) {
	src := NewDirSource("content")
	if got := src.String(); got != "dir:content" {
		t.Errorf("String() = %q", got)
	}
}
