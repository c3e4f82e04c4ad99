package sharedot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridplot/pkg/figure"
	"github.com/matzehuels/gridplot/pkg/render"
)

// Options configures share diagram rendering.
type Options struct {
	// Detailed includes cell spans and object counts in node labels.
	// When false, only the plot id is shown.
	Detailed bool
}

// ToDOT converts a figure's share relations to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
//
// Edges point from the borrowing region to its source, so the arrows
// follow the direction boundaries are copied against.
func ToDOT(f *figure.Figure, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	regions := f.Regions()
	for _, r := range regions {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(r), fmtLabel(r, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, r := range regions {
		if src := r.SharedX(); src != nil {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"x\"];\n", nodeID(r), nodeID(src))
		}
		if src := r.SharedY(); src != nil {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"y\", style=dashed];\n", nodeID(r), nodeID(src))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(r *figure.Region) string {
	return fmt.Sprintf("plot_%d", r.ID())
}

func fmtLabel(r *figure.Region, detailed bool) string {
	id := nodeID(r)
	if !detailed {
		return id
	}

	s := r.Span()
	parts := []string{
		fmt.Sprintf("cells: (%d,%d)-(%d,%d)", s.ColLow, s.RowLow, s.ColUp, s.RowUp),
		fmt.Sprintf("objects: %d", r.ObjectCount()),
	}
	if r.Title != "" {
		parts = append([]string{r.Title}, parts...)
	}
	return id + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
