// Package svg draws layout documents as standalone SVG images.
//
// The renderer is deterministic: identical documents produce identical
// bytes, which keeps cached render results byte-comparable. All input
// geometry is already resolved, so drawing is coordinate mapping plus
// formatting.
//
//	doc, _ := fig.Layout()
//	out := svg.RenderSVG(doc, svg.WithTransparentBackground())
package svg
