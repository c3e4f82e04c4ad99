package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gridplot/pkg/cache"
	"github.com/matzehuels/gridplot/pkg/config"
	"github.com/matzehuels/gridplot/pkg/layout"
	"github.com/matzehuels/gridplot/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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
		Logger: logger,
	}
}

// Execute runs the complete parse → solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Warnings are recorded for the result and forwarded to whatever
	// sink the caller configured.
	rec := &observability.Recorder{}
	opts.Hooks = teeWarnings{rec: rec, next: opts.warningHooks()}

	result := &Result{
		RunID:          uuid.NewString(),
		DefinitionHash: cache.Hash(opts.Source),
		Artifacts:      make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	def, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Definition = def
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.PlotCount = len(def.Plots)
	result.CacheInfo.ParseHit = parseHit

	opts.Logger.Info("parsed definition",
		"source", opts.SourceName,
		"plots", len(def.Plots),
		"duration", result.Stats.ParseTime)

	// Stage 2: Solve
	solveStart := time.Now()
	doc, solveHit, err := r.SolveWithCacheInfo(ctx, def, result.DefinitionHash, opts)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Figure = doc
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.PadCount = len(doc.Pads)
	result.Stats.MarkCount = countMarks(doc)
	result.CacheInfo.SolveHit = solveHit

	if data, err := layout.MarshalFigure(doc); err == nil {
		result.FigureHash = cache.Hash(data)
	}

	opts.Logger.Info("solved figure",
		"figure", doc.Name,
		"pads", len(doc.Pads),
		"marks", result.Stats.MarkCount,
		"duration", result.Stats.SolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, result.FigureHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	result.Warnings = rec.Warnings()
	return result, nil
}

// ParseWithCacheInfo decodes the definition with caching and returns cache hit info.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (*config.Definition, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.SourceName)
	start := time.Now()

	cacheKey := r.Keyer.DefinitionKey(cache.Hash(opts.Source))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var def config.Definition
			if err := json.Unmarshal(data, &def); err == nil {
				observability.Cache().OnCacheHit(ctx, "definition")
				hooks.OnParseComplete(ctx, opts.SourceName, len(def.Plots), time.Since(start), nil)
				return &def, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "definition")

	// Parse
	def, err := Parse(opts)
	if err != nil {
		hooks.OnParseComplete(ctx, opts.SourceName, 0, time.Since(start), err)
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(def); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.DefinitionTTL) == nil {
			observability.Cache().OnCacheSet(ctx, "definition", len(data))
		}
	}

	hooks.OnParseComplete(ctx, opts.SourceName, len(def.Plots), time.Since(start), nil)
	return def, false, nil // Cache miss
}

// Parse is a convenience wrapper that calls ParseWithCacheInfo and discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*config.Definition, error) {
	def, _, err := r.ParseWithCacheInfo(ctx, opts)
	return def, err
}

// SolveWithCacheInfo solves a definition with caching and returns cache hit info.
// defHash is the content hash of the TOML source the definition was parsed from.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, def *config.Definition, defHash string, opts Options) (layout.Figure, bool, error) {
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnSolveStart(ctx, def.Figure.Name, len(def.Plots))
	start := time.Now()

	cacheKey := r.Keyer.FigureKey(defHash, opts.SolveKeyOpts())

	// Try cache first
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if doc, err := layout.UnmarshalFigure(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "figure")
				hooks.OnSolveComplete(ctx, doc.Name, time.Since(start), nil)
				return doc, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "figure")

	// Solve
	doc, err := Solve(def, opts)
	if err != nil {
		hooks.OnSolveComplete(ctx, def.Figure.Name, time.Since(start), err)
		return layout.Figure{}, false, err
	}

	// Cache the result
	if data, err := layout.MarshalFigure(doc); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.FigureTTL) == nil {
			observability.Cache().OnCacheSet(ctx, "figure", len(data))
		}
	}

	hooks.OnSolveComplete(ctx, doc.Name, time.Since(start), nil)
	return doc, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, def *config.Definition, opts Options) (layout.Figure, error) {
	doc, _, err := r.SolveWithCacheInfo(ctx, def, cache.Hash(opts.Source), opts)
	return doc, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// figHash is the content hash of the serialized layout document.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc layout.Figure, figHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	if figHash == "" {
		data, err := layout.MarshalFigure(doc)
		if err != nil {
			return nil, false, fmt.Errorf("serialize figure for cache key: %w", err)
		}
		figHash = cache.Hash(data)
	}

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(figHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := Render(doc, opts)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(figHash, opts.ArtifactKeyOpts(format))
		if r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL) == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc layout.Figure, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, "", opts)
	return artifacts, err
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

// teeWarnings records warnings for the pipeline result while still
// forwarding them to the caller's sink.
type teeWarnings struct {
	rec  *observability.Recorder
	next observability.WarningHooks
}

func (t teeWarnings) OnWarning(w observability.Warning) {
	t.rec.OnWarning(w)
	t.next.OnWarning(w)
}
