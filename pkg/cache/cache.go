// Package cache provides pluggable caching for pipeline stages.
//
// Two stages are cached: loaded content models (only when the source is
// remote) and rendered artifacts. Backends:
//   - file: directory-based cache for CLI usage
//   - redis: shared cache for multi-instance deployments
//   - null: caching disabled
//
// Keys are produced by a Keyer so callers never assemble key strings by
// hand. A ScopedKeyer prefixes every key, isolating sites that share one
// cache backend.
package cache

import (
	"context"
	"time"
)

// Default TTLs for the cached stages.
const (
	// TTLContent bounds how stale a remotely loaded model may get.
	TTLContent = 15 * time.Minute

	// TTLArtifact applies to rendered artifacts, which are pure functions
	// of the model and render options.
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts carries the render options that affect artifact bytes.
// Two runs with equal model hash and equal opts produce identical output,
// so they may share a cache entry.
type ArtifactKeyOpts struct {
	Artifact   string // artifact filename, e.g. "index.html"
	LayoutHash string // hash of the layout rule table
	Widths     []int  // snapshot widths baked into layout.json
	Stylesheet string // stylesheet href override, if any
	NavToggle  string // anchor target the menu icon links to, if any
	Generator  bool   // whether the generator meta tag is emitted
	Inline     bool   // whether the stylesheet is embedded in the page
	ExtraHash  string // hash of site-author CSS additions, if any
}

// Keyer generates cache keys for the cached pipeline stages.
type Keyer interface {
	// ContentKey identifies a loaded model by its source description.
	ContentKey(source string) string

	// ArtifactKey identifies one rendered artifact.
	ArtifactKey(modelHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ContentKey generates a key for content model caching.
// Source descriptions are short and already unambiguous, so the key stays
// readable: "content:mongo:vitrine.pages/home".
func (k *DefaultKeyer) ContentKey(source string) string {
	return "content:" + source
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(modelHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", modelHash, opts)
}
