package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vitrine/pkg/cache"
	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/content/source"
	"github.com/matzehuels/vitrine/pkg/layout"
	"github.com/matzehuels/vitrine/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, rule table, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Engine *layout.Engine
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The runner resolves widths against the default rule table; assign Engine
// after construction to override it.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Engine: layout.Default(),
		Logger: logger,
	}
}

// Execute runs the complete load → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	m, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Model = m
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NavItems = len(m.Header.Nav)
	result.Stats.Features = len(m.Features)
	result.Stats.SocialLinks = len(m.Footer.Social)
	result.CacheInfo.LoadHit = loadHit

	// Compute model hash for cache keys and server responses
	if data, err := content.MarshalModel(m); err == nil {
		result.ModelHash = cache.Hash(data)
	}

	r.Logger.Info("loaded content",
		"nav_items", result.Stats.NavItems,
		"features", result.Stats.Features,
		"duration", result.Stats.LoadTime)

	// Resolve requested widths against the rule table
	result.States = r.Engine.Snapshots(opts.Widths...)

	// The menu icon appears on stacked viewports but carries no behavior
	// unless a toggle target wires it to an anchor.
	if opts.NavToggle == "" {
		r.Logger.Warn("menu icon has no toggle target and renders inert",
			"hint", "set nav_toggle to an anchor like #nav")
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"artifacts", opts.Artifacts,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo resolves the content model with caching and returns cache hit info.
// Only remote sources are cached; local files are cheaper to reread than to cache.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*content.Model, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	src, err := source.New(opts.Source)
	if err != nil {
		return nil, false, err
	}

	observability.Pipeline().OnLoadStart(ctx, src.String())
	start := time.Now()

	remote := source.Remote(src)
	cacheKey := r.Keyer.ContentKey(src.String())

	// Try cache first (unless refresh requested)
	if remote && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			m, err := content.UnmarshalModel(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "content")
				observability.Pipeline().OnLoadComplete(ctx, src.String(), len(m.Features), time.Since(start), nil)
				return m, true, nil // Cache hit
			}
			// If deserialization fails, fall through to reload
		}
		observability.Cache().OnCacheMiss(ctx, "content")
	}

	// Load
	m, err := loadFrom(ctx, src)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, src.String(), 0, time.Since(start), err)
		return nil, false, err
	}

	// Cache the result
	if remote {
		if data, err := content.MarshalModel(m); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLContent)
			observability.Cache().OnCacheSet(ctx, "content", len(data))
		}
	}

	observability.Pipeline().OnLoadComplete(ctx, src.String(), len(m.Features), time.Since(start), nil)
	return m, false, nil // Cache miss
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*content.Model, error) {
	m, _, err := r.LoadWithCacheInfo(ctx, opts)
	return m, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, m *content.Model, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache keys from the model and the rule table
	data, err := content.MarshalModel(m)
	if err != nil {
		return nil, false, fmt.Errorf("serialize model for cache key: %w", err)
	}
	modelHash := cache.Hash(data)
	layoutHash := r.engineHash()

	observability.Pipeline().OnRenderStart(ctx, opts.Artifacts)
	start := time.Now()

	// Try to get all artifacts from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, name := range opts.Artifacts {
		cacheKey := r.Keyer.ArtifactKey(modelHash, opts.ArtifactKeyOpts(name, layoutHash))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[name] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Artifacts) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		observability.Pipeline().OnRenderComplete(ctx, opts.Artifacts, artifactBytes(artifacts), time.Since(start), nil)
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all artifacts
	rendered, err := Render(m, r.Engine, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Artifacts, 0, time.Since(start), err)
		return nil, false, err
	}

	// Cache each artifact
	for name, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(modelHash, opts.ArtifactKeyOpts(name, layoutHash))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Artifacts, artifactBytes(rendered), time.Since(start), nil)
	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, m *content.Model, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, m, opts)
	return artifacts, err
}

// Resolve returns the layout state for one viewport width.
func (r *Runner) Resolve(width int) layout.State {
	return r.Engine.Resolve(width)
}

// engineHash fingerprints the rule table so cached artifacts are invalidated
// when the table changes.
func (r *Runner) engineHash() string {
	table := struct {
		Base        layout.State        `json:"base"`
		Breakpoints []layout.Breakpoint `json:"breakpoints"`
	}{r.Engine.Base(), r.Engine.Breakpoints()}

	data, _ := json.Marshal(table)
	return cache.Hash(data)
}

// artifactBytes sums the size of all rendered artifacts.
func artifactBytes(artifacts map[string][]byte) int {
	total := 0
	for _, data := range artifacts {
		total += len(data)
	}
	return total
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
