// Package render turns resolved layout documents into output files.
//
// # Overview
//
// The renderers consume [layout.Figure] documents, never live figures:
// everything needed to draw is already resolved, so rendering is pure
// coordinate mapping. The package provides:
//
//   - Format dispatch by file extension ([Save], [Render])
//   - Generic format conversion (SVG to PDF/PNG)
//   - SVG drawing (in [svg] subpackage)
//   - Share-graph diagrams (in [sharedot] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg).
//
//	out := svg.RenderSVG(doc)
//	pdf, err := render.ToPDF(out)
//	png, err := render.ToPNG(out, 2.0)  // 2x scale
//
// # SVG Drawing
//
// The [svg] subpackage draws frames, ticks, histograms, curves,
// scatter markers, heat maps, legends and annotations into a plain
// SVG document.
//
// # Share Graphs
//
// The [sharedot] subpackage renders the axis-sharing relationships of
// a figure as a directed graph via Graphviz, which helps debugging
// grid layouts whose limits come out unexpected.
//
// [svg]: github.com/matzehuels/gridplot/pkg/render/svg
// [sharedot]: github.com/matzehuels/gridplot/pkg/render/sharedot
// [layout.Figure]: github.com/matzehuels/gridplot/pkg/layout
package render
