// Package pipeline provides the core build pipeline for Vitrine.
//
// This package implements the complete load → render pipeline that can be
// used by CLI and server components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Resolve the content model from a file, directory, or MongoDB source
//  2. Render: Generate output artifacts (page, stylesheet, layout table, tree)
//
// Layout resolution is a pure function of the rule table and needs no stage
// of its own; the render stage resolves states on demand.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source: source.Config{Kind: "file", Path: "content/site.toml"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts[pipeline.ArtifactPage]
//
// Run individual stages:
//
//	// Load only
//	m, err := runner.Load(ctx, opts)
//
//	// Render with an existing model
//	artifacts, err := runner.Render(ctx, m, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vitrine/pkg/cache"
	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/content/source"
	"github.com/matzehuels/vitrine/pkg/errors"
	"github.com/matzehuels/vitrine/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// DefaultWidths are the viewport widths resolved into layout.json: one wide
// desktop, one stacked tablet, one narrow phone.
var DefaultWidths = []int{1024, 600, 400}

// MaxWidth caps accepted viewport widths.
const MaxWidth = errors.MaxViewportWidth

// Artifact names produced by the render stage.
const (
	ArtifactPage    = "index.html"
	ArtifactStyles  = "styles.css"
	ArtifactLayout  = "layout.json"
	ArtifactTreeDOT = "tree.dot"
	ArtifactTreeSVG = "tree.svg"
	ArtifactTreePNG = "tree.png"
)

// DefaultArtifacts is the artifact set a build produces unless overridden.
var DefaultArtifacts = []string{ArtifactPage, ArtifactStyles}

// ValidArtifacts is the set of supported artifact names.
var ValidArtifacts = map[string]bool{
	ArtifactPage:    true,
	ArtifactStyles:  true,
	ArtifactLayout:  true,
	ArtifactTreeDOT: true,
	ArtifactTreeSVG: true,
	ArtifactTreePNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the build pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Load options
	Source  source.Config `json:"source"`
	Refresh bool          `json:"refresh,omitempty"`

	// Layout options
	Widths []int `json:"widths,omitempty"`

	// Render options
	Artifacts  []string `json:"artifacts,omitempty"`
	Stylesheet string   `json:"stylesheet,omitempty"` // stylesheet href override; empty links styles.css relative to the page
	NavToggle  string   `json:"nav_toggle,omitempty"` // anchor target for the menu icon, e.g. "#nav"
	Generator  bool     `json:"generator,omitempty"`  // emit the generator meta tag
	ExtraCSS   string   `json:"extra_css,omitempty"`  // site-author CSS appended to the stylesheet
	InlineCSS  bool     `json:"inline_css,omitempty"` // embed the stylesheet in the page instead of linking it

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Model is the loaded content model.
	Model *content.Model

	// ModelHash is the content hash of the model.
	ModelHash string

	// States are the layout states resolved at the requested widths.
	States []layout.Snapshot

	// Artifacts contains rendered outputs keyed by artifact name.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NavItems    int
	Features    int
	SocialLinks int
	LoadTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the model came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateArtifact checks that an artifact name is valid.
func ValidateArtifact(name string) error {
	if !ValidArtifacts[name] {
		return fmt.Errorf("invalid artifact: %q (must be one of: index.html, styles.css, layout.json, tree.dot, tree.svg, tree.png)", name)
	}
	return nil
}

// ValidateArtifacts checks that all artifact names are valid.
func ValidateArtifacts(names []string) error {
	for _, n := range names {
		if err := ValidateArtifact(n); err != nil {
			return err
		}
	}
	return nil
}

// ValidateWidths checks that all widths are usable viewport widths. An
// empty list is fine here; defaults fill it before rendering.
func ValidateWidths(widths []int) error {
	if len(widths) == 0 {
		return nil
	}
	return errors.ValidateWidths(widths)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	switch o.Source.Kind {
	case source.KindFile, source.KindDir, "":
		if o.Source.Path == "" {
			return fmt.Errorf("source path is required")
		}
	case source.KindMongo:
		if o.Source.URI == "" {
			return fmt.Errorf("source URI is required")
		}
	default:
		return fmt.Errorf("unknown source kind: %q", o.Source.Kind)
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Widths) == 0 {
		o.Widths = DefaultWidths
	}
	if len(o.Artifacts) == 0 {
		o.Artifacts = DefaultArtifacts
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateWidths(o.Widths); err != nil {
		return err
	}
	return ValidateArtifacts(o.Artifacts)
}

// WantsTree returns true if any tree artifact was requested.
func (o *Options) WantsTree() bool {
	for _, name := range o.Artifacts {
		switch name {
		case ArtifactTreeDOT, ArtifactTreeSVG, ArtifactTreePNG:
			return true
		}
	}
	return false
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(artifact, layoutHash string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Artifact:   artifact,
		LayoutHash: layoutHash,
		Widths:     o.Widths,
		Stylesheet: o.Stylesheet,
		NavToggle:  o.NavToggle,
		Generator:  o.Generator,
		Inline:     o.InlineCSS,
	}
	if o.ExtraCSS != "" {
		opts.ExtraHash = cache.Hash([]byte(o.ExtraCSS))
	}
	return opts
}
