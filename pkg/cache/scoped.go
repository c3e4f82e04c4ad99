package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// A shared render service uses it to keep the cache namespaces of
// different projects apart while reusing one backing store.
//
// Example usage:
//
//	// Project-specific keys on a shared Redis instance
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:abc123:")
//
//	// Unscoped keys for a single-user CLI cache
//	localKeyer := NewDefaultKeyer()
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

// DefinitionKey generates a prefixed key for parsed definition caching.
func (k *ScopedKeyer) DefinitionKey(sourceHash string) string {
	return k.prefix + k.inner.DefinitionKey(sourceHash)
}

// FigureKey generates a prefixed key for solved layout caching.
func (k *ScopedKeyer) FigureKey(defHash string, opts FigureKeyOpts) string {
	return k.prefix + k.inner.FigureKey(defHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifact caching.
func (k *ScopedKeyer) ArtifactKey(figHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(figHash, opts)
}
