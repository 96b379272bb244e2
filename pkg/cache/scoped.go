package cache

// ScopedKeyer wraps a Keyer with a prefix so several sites can share one
// cache backend without key collisions.
//
// Example usage:
//
//	// Site-specific keys when one Redis serves many sites
//	siteKeyer := NewScopedKeyer(NewDefaultKeyer(), "site:acme:")
//
//	// Unscoped keys for a single-site setup
//	keyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ContentKey generates a prefixed key for content model caching.
func (k *ScopedKeyer) ContentKey(source string) string {
	return k.prefix + k.inner.ContentKey(source)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(modelHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(modelHash, opts)
}
