package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Parsed definitions change often
// while a user iterates on a file; solved figures and rendered
// artifacts are content-addressed and can live longer.
const (
	DefinitionTTL = 1 * time.Hour
	FigureTTL     = 24 * time.Hour
	ArtifactTTL   = 7 * 24 * time.Hour
)

// Cache stores opaque bytes under string keys with per-entry TTLs.
//
// Implementations: FileCache for single-machine CLI runs, RedisCache
// shared across render service replicas, NullCache when caching is
// disabled.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// Keyer derives cache keys for the pipeline stages. Keys are content
// addressed: each stage keys on a hash of its input plus the options
// that change its output.
type Keyer interface {
	// DefinitionKey keys a parsed definition by its source text hash.
	DefinitionKey(sourceHash string) string

	// FigureKey keys a solved layout document by the definition hash
	// and the solve options.
	FigureKey(defHash string, opts FigureKeyOpts) string

	// ArtifactKey keys a rendered artifact by the layout hash and the
	// render options.
	ArtifactKey(figHash string, opts ArtifactKeyOpts) string
}

// FigureKeyOpts are the solve options that change the resulting
// layout document.
type FigureKeyOpts struct {
	UseObjectTitles bool `json:"use_object_titles"`
}

// ArtifactKeyOpts are the render options that change the output bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Scale       float64 `json:"scale"`
	Transparent bool    `json:"transparent"`
}

// DefaultKeyer is the standard key scheme. The version segments let a
// layout schema change invalidate old entries without flushing the
// whole store.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DefinitionKey generates a key for parsed definition caching.
func (k *DefaultKeyer) DefinitionKey(sourceHash string) string {
	return "definition:v1:" + sourceHash
}

// FigureKey generates a key for solved layout caching.
func (k *DefaultKeyer) FigureKey(defHash string, opts FigureKeyOpts) string {
	return hashKey("figure:v1", defHash, opts)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(figHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:v1", figHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
