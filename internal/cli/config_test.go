package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/vitrine/pkg/content/source"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// chdir runs the rest of the test from dir, so loadConfig's search for a
// default vitrine.yaml starts somewhere controlled.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Output != "dist" {
		t.Errorf("Output = %q, want %q", cfg.Output, "dist")
	}
	if cfg.Source.Kind != source.KindFile {
		t.Errorf("Source.Kind = %q, want %q", cfg.Source.Kind, source.KindFile)
	}
	if cfg.Source.Path != "site.toml" {
		t.Errorf("Source.Path = %q, want %q", cfg.Source.Path, "site.toml")
	}
	if cfg.Cache.Backend != cacheBackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, cacheBackendFile)
	}
	if !cfg.Render.Generator {
		t.Error("Render.Generator should default to true")
	}
	if cfg.Render.NavToggle != "" {
		t.Errorf("Render.NavToggle = %q, want empty", cfg.Render.NavToggle)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
output: public
addr: 0.0.0.0:9000
source:
  kind: dir
  path: content
cache:
  backend: none
render:
  nav_toggle: "#nav"
  widths: [1024, 600, 400]
  artifacts: [index.html, styles.css, layout.json]
`
	path := filepath.Join(dir, "vitrine.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Output != "public" {
		t.Errorf("Output = %q, want %q", cfg.Output, "public")
	}
	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "0.0.0.0:9000")
	}
	if cfg.Source.Kind != source.KindDir {
		t.Errorf("Source.Kind = %q, want %q", cfg.Source.Kind, source.KindDir)
	}
	if cfg.Cache.Backend != cacheBackendNone {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, cacheBackendNone)
	}
	if cfg.Render.NavToggle != "#nav" {
		t.Errorf("Render.NavToggle = %q, want %q", cfg.Render.NavToggle, "#nav")
	}
	if want := []int{1024, 600, 400}; !reflect.DeepEqual(cfg.Render.Widths, want) {
		t.Errorf("Render.Widths = %v, want %v", cfg.Render.Widths, want)
	}
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VITRINE_OUTPUT", "build-out")
	t.Setenv("VITRINE_SOURCE_PATH", "pages/landing.toml")
	t.Setenv("VITRINE_CACHE_BACKEND", "none")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Output != "build-out" {
		t.Errorf("Output = %q, want env override %q", cfg.Output, "build-out")
	}
	if cfg.Source.Path != "pages/landing.toml" {
		t.Errorf("Source.Path = %q, want env override", cfg.Source.Path)
	}
	if cfg.Cache.Backend != cacheBackendNone {
		t.Errorf("Cache.Backend = %q, want env override", cfg.Cache.Backend)
	}
}

func TestPipelineOptionsExtraCSS(t *testing.T) {
	dir := t.TempDir()
	cssPath := filepath.Join(dir, "brand.css")
	if err := os.WriteFile(cssPath, []byte(".hero { color: teal; }"), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}

	cfg := &Config{
		Source: SourceConfig{Kind: source.KindFile, Path: "site.toml"},
		Render: RenderConfig{ExtraCSS: cssPath},
	}

	opts, err := cfg.pipelineOptions(discardLogger())
	if err != nil {
		t.Fatalf("pipelineOptions() error: %v", err)
	}
	if !strings.Contains(opts.ExtraCSS, "teal") {
		t.Errorf("ExtraCSS = %q, want the file contents", opts.ExtraCSS)
	}

	cfg.Render.ExtraCSS = filepath.Join(dir, "missing.css")
	if _, err := cfg.pipelineOptions(discardLogger()); err == nil {
		t.Error("expected an error for a missing extra css file")
	}
}

func TestPipelineOptionsMapping(t *testing.T) {
	cfg := &Config{
		Source: SourceConfig{Kind: source.KindMongo, URI: "mongodb://localhost", Database: "cms", Collection: "pages", Page: "landing"},
		Render: RenderConfig{
			Widths:    []int{800},
			Artifacts: []string{pipeline.ArtifactPage},
			NavToggle: "#nav",
			Generator: true,
			InlineCSS: true,
		},
	}

	opts, err := cfg.pipelineOptions(discardLogger())
	if err != nil {
		t.Fatalf("pipelineOptions() error: %v", err)
	}

	if opts.Source.Kind != source.KindMongo || opts.Source.Database != "cms" {
		t.Errorf("Source not mapped: %+v", opts.Source)
	}
	if opts.NavToggle != "#nav" || !opts.InlineCSS || !opts.Generator {
		t.Errorf("render options not mapped: %+v", opts)
	}
	if !reflect.DeepEqual(opts.Widths, []int{800}) {
		t.Errorf("Widths = %v, want [800]", opts.Widths)
	}
}
