package svg

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/gridplot/pkg/layout"
)

const errorBarCap = 3.0

// resolveStyle fills the defaults for marks that carry no or partial
// styling: a thin black solid line with filled circle markers.
func resolveStyle(s *layout.StyleAttr) layout.StyleAttr {
	st := layout.StyleAttr{
		LineWidth:   1,
		LineStyle:   1,
		LineColor:   "#000000",
		MarkerSize:  1,
		MarkerStyle: 20,
		FillAlpha:   1,
	}
	if s != nil {
		st = *s
		if st.LineWidth <= 0 {
			st.LineWidth = 1
		}
		if st.LineColor == "" {
			st.LineColor = "#000000"
		}
		if st.MarkerSize <= 0 {
			st.MarkerSize = 1
		}
		if st.MarkerStyle == 0 {
			st.MarkerStyle = 20
		}
		if st.FillAlpha <= 0 {
			st.FillAlpha = 1
		}
	}
	if st.MarkerColor == "" {
		st.MarkerColor = st.LineColor
	}
	if st.FillColor == "" {
		st.FillColor = st.LineColor
	}
	return st
}

// dashPattern maps line style codes onto SVG dash arrays. Code 1 is
// solid, 7 dashed, 10 dash-dotted; unknown codes fall back to solid.
func dashPattern(code int) string {
	switch code {
	case 7:
		return "12,6"
	case 10:
		return "12,6,3,6"
	default:
		return ""
	}
}

func strokeAttrs(st layout.StyleAttr) string {
	attrs := fmt.Sprintf(`stroke="%s" stroke-width="%d"`, st.LineColor, st.LineWidth)
	if d := dashPattern(st.LineStyle); d != "" {
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, d)
	}
	return attrs
}

// drawMark dispatches on the mark kind. Marks with a missing payload
// are skipped silently; the assembler never produces them.
func drawMark(buf *bytes.Buffer, f *frame, m *layout.Mark) {
	st := resolveStyle(m.Style)
	switch m.Kind {
	case layout.MarkHist:
		if m.Hist != nil {
			drawHist(buf, f, m.Name, m.Hist, st)
		}
	case layout.MarkHist2D:
		if m.Hist2D != nil {
			drawHist2D(buf, f, m.Hist2D)
		}
	case layout.MarkCurve:
		if m.Curve != nil {
			drawCurve(buf, f, m.Curve, st)
		}
	case layout.MarkScatter:
		if m.Scatter != nil {
			drawScatter(buf, f, m.Scatter, st)
		}
	}
}

// drawHist draws binned contents as a step outline following the bin
// tops, with an optional fill below the steps and error bars per bin.
func drawHist(buf *bytes.Buffer, f *frame, name string, h *layout.HistData, st layout.StyleAttr) {
	n := len(h.Contents)
	if n == 0 || len(h.Edges) != n+1 {
		return
	}

	var steps strings.Builder
	fmt.Fprintf(&steps, "M%.2f,%.2f", f.X(h.Edges[0]), f.Y(h.Contents[0]))
	for i := 0; i < n; i++ {
		fmt.Fprintf(&steps, " H%.2f", f.X(h.Edges[i+1]))
		if i < n-1 {
			fmt.Fprintf(&steps, " V%.2f", f.Y(h.Contents[i+1]))
		}
	}

	if paint := fillPaint(buf, name, st); paint != "" {
		fmt.Fprintf(buf, `  <path d="%s V%.2f H%.2f Z" fill="%s" fill-opacity="%.2f" stroke="none"/>`+"\n",
			steps.String(), f.bottom, f.X(h.Edges[0]), paint, st.FillAlpha)
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="none" %s/>`+"\n", steps.String(), strokeAttrs(st))

	if len(h.Errors) == n {
		for i, e := range h.Errors {
			if e <= 0 {
				continue
			}
			x := f.X((h.Edges[i] + h.Edges[i+1]) / 2)
			drawVerticalErrorBar(buf, x, f.Y(h.Contents[i]-e), f.Y(h.Contents[i]+e), st)
		}
	}
}

// drawHist2D paints each non-empty cell with the heat color of its
// content. Empty cells stay transparent.
func drawHist2D(buf *bytes.Buffer, f *frame, h *layout.Hist2DData) {
	if len(h.XEdges) < 2 || len(h.YEdges) < 2 {
		return
	}
	z := f.z
	if z == nil {
		z = &axisScale{low: 0, up: maxContent(h.Contents)}
	}
	for ix := range h.Contents {
		if ix+1 >= len(h.XEdges) {
			break
		}
		for iy, v := range h.Contents[ix] {
			if iy+1 >= len(h.YEdges) || v == 0 {
				continue
			}
			x0, x1 := f.X(h.XEdges[ix]), f.X(h.XEdges[ix+1])
			y0, y1 := f.Y(h.YEdges[iy]), f.Y(h.YEdges[iy+1])
			fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
				x0, y1, x1-x0, y0-y1, heatColor(z.frac(v)))
		}
	}
}

func maxContent(contents [][]float64) float64 {
	max := 0.0
	for _, col := range contents {
		for _, v := range col {
			if v > max {
				max = v
			}
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

// drawCurve draws sampled function values as a polyline.
func drawCurve(buf *bytes.Buffer, f *frame, c *layout.CurveData, st layout.StyleAttr) {
	if len(c.Xs) == 0 || len(c.Xs) != len(c.Ys) {
		return
	}
	var path strings.Builder
	fmt.Fprintf(&path, "M%.2f,%.2f", f.X(c.Xs[0]), f.Y(c.Ys[0]))
	for i := 1; i < len(c.Xs); i++ {
		fmt.Fprintf(&path, " L%.2f,%.2f", f.X(c.Xs[i]), f.Y(c.Ys[i]))
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="none" %s/>`+"\n", path.String(), strokeAttrs(st))
}

// drawScatter draws error bars first so the marker glyphs sit on top.
func drawScatter(buf *bytes.Buffer, f *frame, s *layout.ScatterData, st layout.StyleAttr) {
	if len(s.Xs) != len(s.Ys) {
		return
	}
	for i := range s.Xs {
		x, y := f.X(s.Xs[i]), f.Y(s.Ys[i])
		if len(s.XErrs) == len(s.Xs) && s.XErrs[i] > 0 {
			drawHorizontalErrorBar(buf, f.X(s.Xs[i]-s.XErrs[i]), f.X(s.Xs[i]+s.XErrs[i]), y, st)
		}
		if len(s.YErrs) == len(s.Ys) && s.YErrs[i] > 0 {
			drawVerticalErrorBar(buf, x, f.Y(s.Ys[i]-s.YErrs[i]), f.Y(s.Ys[i]+s.YErrs[i]), st)
		}
		drawMarker(buf, x, y, st)
	}
}

func drawVerticalErrorBar(buf *bytes.Buffer, x, yLow, yHigh float64, st layout.StyleAttr) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%d"/>`+"\n",
		x, yLow, x, yHigh, st.LineColor, st.LineWidth)
	for _, y := range []float64{yLow, yHigh} {
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%d"/>`+"\n",
			x-errorBarCap, y, x+errorBarCap, y, st.LineColor, st.LineWidth)
	}
}

func drawHorizontalErrorBar(buf *bytes.Buffer, xLow, xHigh, y float64, st layout.StyleAttr) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%d"/>`+"\n",
		xLow, y, xHigh, y, st.LineColor, st.LineWidth)
	for _, x := range []float64{xLow, xHigh} {
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%d"/>`+"\n",
			x, y-errorBarCap, x, y+errorBarCap, st.LineColor, st.LineWidth)
	}
}

// drawMarker draws one marker glyph. Codes follow the classic palette:
// 20 filled circle, 21 filled square, 22 upward triangle, 23 downward
// triangle, 34 cross. Unknown codes fall back to the circle.
func drawMarker(buf *bytes.Buffer, x, y float64, st layout.StyleAttr) {
	r := 4.0 * st.MarkerSize
	c := st.MarkerColor
	switch st.MarkerStyle {
	case 21:
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			x-r, y-r, 2*r, 2*r, c)
	case 22:
		fmt.Fprintf(buf, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
			x, y-r, x-r, y+r, x+r, y+r, c)
	case 23:
		fmt.Fprintf(buf, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
			x, y+r, x-r, y-r, x+r, y-r, c)
	case 34:
		fmt.Fprintf(buf, `  <path d="M%.2f,%.2f H%.2f M%.2f,%.2f V%.2f" stroke="%s" stroke-width="1.5" fill="none"/>`+"\n",
			x-r, y, x+r, x, y-r, y+r, c)
	default:
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n", x, y, r, c)
	}
}

// fillPaint resolves a fill style code to a paint reference. Pattern
// fills emit their definition inline; mark names are unique within a
// figure so the pattern ids cannot collide.
func fillPaint(buf *bytes.Buffer, name string, st layout.StyleAttr) string {
	switch {
	case st.FillStyle == 0:
		return ""
	case st.FillStyle >= 3000:
		id := "fill-" + name
		writeFillPattern(buf, id, st)
		return fmt.Sprintf("url(#%s)", id)
	default:
		return st.FillColor
	}
}

func writeFillPattern(buf *bytes.Buffer, id string, st layout.StyleAttr) {
	switch st.FillStyle {
	case 3001:
		fmt.Fprintf(buf, `  <pattern id="%s" width="6" height="6" patternUnits="userSpaceOnUse"><circle cx="3" cy="3" r="1.2" fill="%s"/></pattern>`+"\n",
			id, st.FillColor)
	default:
		fmt.Fprintf(buf, `  <pattern id="%s" width="8" height="8" patternUnits="userSpaceOnUse"><path d="M0,8 L8,0" stroke="%s" stroke-width="1"/></pattern>`+"\n",
			id, st.FillColor)
	}
}

// drawLine draws a straight annotation line between two data points.
func drawLine(buf *bytes.Buffer, f *frame, l layout.Line) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#000000" stroke-width="1"/>`+"\n",
		f.X(l.X0), f.Y(l.Y0), f.X(l.X1), f.Y(l.Y1))
}

// heatStops are the gradient stops of the heat map palette, dark blue
// through teal and yellow to deep red.
var heatStops = []string{"#30123B", "#28BBEC", "#A2FC3C", "#FB8022", "#7A0403"}

// heatColor interpolates the heat palette at t in [0, 1]; out of range
// values clamp to the end colors.
func heatColor(t float64) string {
	if t <= 0 || math.IsNaN(t) {
		return heatStops[0]
	}
	if t >= 1 {
		return heatStops[len(heatStops)-1]
	}
	pos := t * float64(len(heatStops)-1)
	i := int(pos)
	frac := pos - float64(i)
	r0, g0, b0 := hexRGB(heatStops[i])
	r1, g1, b1 := hexRGB(heatStops[i+1])
	return fmt.Sprintf("#%02X%02X%02X",
		lerpByte(r0, r1, frac), lerpByte(g0, g1, frac), lerpByte(b0, b1, frac))
}

func hexRGB(s string) (r, g, b int) {
	fmt.Sscanf(s, "#%02X%02X%02X", &r, &g, &b)
	return r, g, b
}

func lerpByte(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
