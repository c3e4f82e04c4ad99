package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/gridplot/pkg/layout"
)

const (
	defaultTickLength = 5.0
	minorTickFactor   = 0.5
	labelGap          = 4.0
)

// axisTicks resolves the major and minor tick values of an axis.
func axisTicks(a layout.Axis) (major, minor []float64) {
	if a.Log {
		return logTicks(a.Low, a.Up)
	}
	return linearTicks(a.Low, a.Up), nil
}

func tickLength(a layout.Axis) float64 {
	if a.TickLengthPx > 0 {
		return a.TickLengthPx
	}
	return defaultTickLength
}

// drawXAxis draws ticks inward from the bottom frame edge, labels
// below it and the title underneath the labels. Zero label/title sizes
// suppress those elements but never the ticks.
func drawXAxis(buf *bytes.Buffer, f *frame, a layout.Axis) {
	major, minor := axisTicks(a)
	tick := tickLength(a)

	for _, v := range major {
		x := f.X(v)
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
			x, f.bottom, x, f.bottom-tick, frameColor)
	}
	for _, v := range minor {
		x := f.X(v)
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.7"/>`+"\n",
			x, f.bottom, x, f.bottom-tick*minorTickFactor, frameColor)
	}

	if a.LabelSizePx > 0 {
		labelY := f.bottom + float64(a.LabelSizePx) + labelGap
		for _, v := range major {
			fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%d" text-anchor="middle" fill="%s">%s</text>`+"\n",
				f.X(v), labelY, a.LabelSizePx, frameColor, formatTick(v))
		}
	}

	if a.Title != "" && a.TitleSizePx > 0 {
		titleY := f.bottom + float64(a.TitleSizePx) + labelGap
		if a.LabelSizePx > 0 {
			titleY += float64(a.LabelSizePx) + labelGap
		}
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%d" text-anchor="middle" fill="%s">%s</text>`+"\n",
			(f.left+f.right)/2, titleY, a.TitleSizePx, frameColor, EscapeXML(a.Title))
	}
}

// drawYAxis draws ticks inward from the left frame edge, right-aligned
// labels beside it and the rotated title further left.
func drawYAxis(buf *bytes.Buffer, f *frame, a layout.Axis) {
	major, minor := axisTicks(a)
	tick := tickLength(a)

	for _, v := range major {
		y := f.Y(v)
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
			f.left, y, f.left+tick, y, frameColor)
	}
	for _, v := range minor {
		y := f.Y(v)
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.7"/>`+"\n",
			f.left, y, f.left+tick*minorTickFactor, y, frameColor)
	}

	labelReserve := 0.0
	if a.LabelSizePx > 0 {
		for _, v := range major {
			// Baseline shifted down to visually center on the tick.
			fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%d" text-anchor="end" fill="%s">%s</text>`+"\n",
				f.left-labelGap, f.Y(v)+0.35*float64(a.LabelSizePx), a.LabelSizePx, frameColor, formatTick(v))
		}
		labelReserve = 2.4 * float64(a.LabelSizePx)
	}

	if a.Title != "" && a.TitleSizePx > 0 {
		x := f.left - labelReserve - float64(a.TitleSizePx) - labelGap
		y := (f.top + f.bottom) / 2
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%d" text-anchor="middle" fill="%s" transform="rotate(-90 %.2f %.2f)">%s</text>`+"\n",
			x, y, a.TitleSizePx, frameColor, x, y, EscapeXML(a.Title))
	}
}

const (
	colorbarGap   = 6.0
	colorbarWidth = 10.0
)

// writeZGradient emits the vertical gradient definition backing the
// pad's colorbar, low value at the bottom.
func writeZGradient(buf *bytes.Buffer, p *layout.Pad) {
	fmt.Fprintf(buf, `    <linearGradient id="zgrad-%s" x1="0" y1="1" x2="0" y2="0">`+"\n", p.Name)
	n := len(heatStops)
	for i, c := range heatStops {
		fmt.Fprintf(buf, `      <stop offset="%.2f" stop-color="%s"/>`+"\n",
			float64(i)/float64(n-1), c)
	}
	buf.WriteString("    </linearGradient>\n")
}

// drawColorbar draws the z scale beside the frame with its range
// labels.
func drawColorbar(buf *bytes.Buffer, f *frame, p *layout.Pad) {
	z := p.Frame.Z
	barLeft := f.right + colorbarGap

	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.1f" height="%.2f" fill="url(#zgrad-%s)" stroke="%s" stroke-width="0.5"/>`+"\n",
		barLeft, f.top, colorbarWidth, f.bottom-f.top, p.Name, frameColor)

	labelX := barLeft + colorbarWidth + labelGap
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="10" fill="%s">%s</text>`+"\n",
		labelX, f.bottom, frameColor, formatTick(z.Low))
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="10" fill="%s">%s</text>`+"\n",
		labelX, f.top+10, frameColor, formatTick(z.Up))
}
