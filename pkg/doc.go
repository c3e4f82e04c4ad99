// Package pkg provides the core libraries for Gridplot figure layout and rendering.
//
// # Overview
//
// Gridplot arranges scientific plots on a rectangular figure grid: cells are
// claimed by plots, axis boundaries are derived from the data the plots hold,
// and the resolved geometry is rendered to SVG, PNG, PDF or a JSON layout
// document. The pkg directory is organized into four main areas:
//
//  1. Geometry and layout ([geom], [grid], [figure], [layout])
//  2. Data objects and boundary search ([data], [bounds])
//  3. Rendering ([render], [render/svg], [render/sharedot])
//  4. Infrastructure ([config], [cache], [pipeline], [store], [server])
//
// # Architecture
//
// The typical data flow through Gridplot:
//
//	TOML figure definition
//	         ↓
//	    [config] package (parse + build)
//	         ↓
//	    [figure] package (grid placement, shared axes, Create)
//	         ↓
//	    [bounds] package (axis boundary search over plot data)
//	         ↓
//	    [layout] package (resolved layout document)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Build a figure programmatically and render it:
//
//	import (
//	    "github.com/matzehuels/gridplot/pkg/data"
//	    "github.com/matzehuels/gridplot/pkg/figure"
//	    "github.com/matzehuels/gridplot/pkg/grid"
//	    "github.com/matzehuels/gridplot/pkg/render/svg"
//	)
//
//	// 1. Define the grid
//	f, _ := figure.New(grid.Options{Cols: 2, Rows: 2, Width: 800, Height: 800})
//
//	// 2. Place a plot and attach data
//	r, _ := f.DefinePlot(0, 1)
//	h, _ := data.NewHist1D("counts", edges, contents, errs)
//	r.Add(h)
//
//	// 3. Resolve geometry and boundaries
//	f.Create()
//
//	// 4. Render to SVG
//	doc := f.Layout()
//	out := svg.Render(doc, svg.Options{})
//
// Or drive everything from a TOML definition via the [pipeline] package,
// which is what the CLI and HTTP server use.
//
// # Main Packages
//
// ## Geometry and Layout
//
// [geom] - Primitive rectangle and margin math in relative figure
// coordinates.
//
// [grid] - Grid construction: column/row ratios, margin normalization and
// cell rectangles. Rows count from the bottom.
//
// [figure] - The figure model: regions claiming cell spans, occupancy
// tracking, shared axes, legends, styles, and the one-shot Create step.
//
// [layout] - The resolved layout document and its JSON serialization.
//
// ## Data and Boundaries
//
// [data] - Plottable objects (1D and 2D histograms, scatter data) exposing
// their value bounds.
//
// [bounds] - Axis boundary search: combines user limits with data extents,
// applies padding, log floors and legend reserve.
//
// ## Rendering
//
// [render] - Artifact assembly and format conversion (SVG to PDF/PNG via
// rsvg-convert).
//
// [render/svg] - The SVG sink for layout documents.
//
// [render/sharedot] - Graphviz diagrams of a figure's axis-share relations.
//
// ## Infrastructure
//
// [config] - TOML definition parsing and figure building, with warnings for
// unknown attributes.
//
// [cache] - Content-addressed artifact caching: file, Redis and null
// implementations behind one interface, plus scoped key helpers.
//
// [pipeline] - Parse → solve → render orchestration used by CLI and server,
// with per-stage caching and warning collection.
//
// [store] - Figure persistence (memory and MongoDB).
//
// [server] - HTTP API over the pipeline and store.
//
// [errors] - Coded errors shared across the module.
//
// [observability] - Warning, pipeline, cache and HTTP hooks.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/bounds/...     # Specific package
//	go test -run Example         # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/geom
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/grid
// [figure]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/figure
// [layout]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/layout
// [data]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/data
// [bounds]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/bounds
// [render]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/render/svg
// [render/sharedot]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/render/sharedot
// [config]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/pipeline
// [store]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/store
// [server]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridplot/pkg/observability
package pkg
