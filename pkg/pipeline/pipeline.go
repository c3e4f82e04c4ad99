// Package pipeline provides the figure generation pipeline for gridplot.
//
// This package implements the complete parse → solve → render pipeline that
// can be used by CLI and server components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Decode a TOML figure definition
//  2. Solve: Assemble the figure and resolve layout geometry and axis
//     boundaries into a render-ready document
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  tomlBytes,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	def, err := runner.Parse(ctx, opts)
//
//	// Solve with an existing definition
//	doc, err := runner.Solve(ctx, def, opts)
//
//	// Render with an existing document
//	artifacts, err := runner.Render(ctx, doc, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridplot/pkg/cache"
	"github.com/matzehuels/gridplot/pkg/config"
	"github.com/matzehuels/gridplot/pkg/layout"
	"github.com/matzehuels/gridplot/pkg/observability"
	"github.com/matzehuels/gridplot/pkg/render/svg"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultSourceName labels a definition whose origin is unknown,
	// e.g. a request body.
	DefaultSourceName = "definition"

	// DefaultScale is the rasterization scale for PNG output.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the figure pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Source     []byte `json:"source"`                // raw TOML figure definition
	SourceName string `json:"source_name,omitempty"` // display name for logs (file path or "definition")
	Refresh    bool   `json:"refresh,omitempty"`     // bypass the cache for this run

	// Solve options
	NoObjectTitles bool `json:"no_object_titles,omitempty"` // keep blank axis titles blank

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Scale       float64  `json:"scale,omitempty"`       // PNG rasterization scale
	Transparent bool     `json:"transparent,omitempty"` // drop the canvas background
	FontFamily  string   `json:"font_family,omitempty"` // override the SVG font stack

	// Runtime options (not serialized)
	Logger *log.Logger                `json:"-"`
	Hooks  observability.WarningHooks `json:"-"` // request-local warning sink

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run.
	RunID string

	// Definition is the decoded figure definition.
	Definition *config.Definition

	// DefinitionHash is the content hash of the TOML source.
	DefinitionHash string

	// Figure is the solved layout document.
	Figure layout.Figure

	// FigureHash is the content hash of the solved document.
	FigureHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Warnings lists the recoverable anomalies hit while parsing and
	// solving. Empty when the stages came from the cache.
	Warnings []observability.Warning

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PlotCount  int
	PadCount   int
	MarkCount  int
	ParseTime  time.Duration
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether the decoded definition came from cache
	SolveHit  bool // Whether the solved document came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
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
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if len(o.Source) == 0 {
		return fmt.Errorf("source is required")
	}
	if o.SourceName == "" {
		o.SourceName = DefaultSourceName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// warningHooks returns the request-local warning sink, falling back to
// the globally registered hooks.
func (o *Options) warningHooks() observability.WarningHooks {
	if o.Hooks != nil {
		return o.Hooks
	}
	return observability.Warnings()
}

// svgOptions translates the render options into SVG renderer options.
func (o *Options) svgOptions() []svg.Option {
	var opts []svg.Option
	if o.Transparent {
		opts = append(opts, svg.WithTransparentBackground())
	}
	if o.FontFamily != "" {
		opts = append(opts, svg.WithFontFamily(o.FontFamily))
	}
	return opts
}

// SolveKeyOpts returns cache key options for the solve stage.
func (o *Options) SolveKeyOpts() cache.FigureKeyOpts {
	return cache.FigureKeyOpts{
		UseObjectTitles: !o.NoObjectTitles,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Scale:       o.Scale,
		Transparent: o.Transparent,
	}
}

// countMarks sums the marks across a document's pads.
func countMarks(doc layout.Figure) int {
	n := 0
	for i := range doc.Pads {
		n += len(doc.Pads[i].Marks)
	}
	return n
}
