package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/gridplot/pkg/layout"
)

const (
	defaultBackground = "#FFFFFF"
	defaultFontFamily = "Helvetica, Arial, sans-serif"
	frameColor        = "#1A1A1A"
	frameStrokeWidth  = 1.0
)

// Option configures the renderer.
type Option func(*renderer)

type renderer struct {
	background string
	font       string
}

// WithBackground sets the canvas fill color.
func WithBackground(color string) Option {
	return func(r *renderer) { r.background = color }
}

// WithTransparentBackground drops the canvas fill entirely.
func WithTransparentBackground() Option {
	return func(r *renderer) { r.background = "" }
}

// WithFontFamily overrides the font family used for all text.
func WithFontFamily(family string) Option {
	return func(r *renderer) { r.font = family }
}

// RenderSVG draws the figure into a standalone SVG document.
func RenderSVG(doc layout.Figure, opts ...Option) []byte {
	r := renderer{background: defaultBackground, font: defaultFontFamily}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := float64(doc.WidthPx), float64(doc.HeightPx)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		w, h, w, h, EscapeXML(r.font))
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
			w, h, r.background)
	}

	for i := range doc.Pads {
		r.renderPad(&buf, &doc.Pads[i], w, h)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderPad draws one pad: clipped marks first, then the frame and its
// decorations on top, then legend and annotations.
func (r *renderer) renderPad(buf *bytes.Buffer, p *layout.Pad, figW, figH float64) {
	f := newFrame(p, figW, figH)
	pr := newPadRect(p, figW, figH)
	clipID := "clip-" + p.Name

	fmt.Fprintf(buf, `  <g id="%s">`+"\n", EscapeXML(p.Name))

	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <clipPath id="%s"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`+"\n",
		clipID, f.left, f.top, f.right-f.left, f.bottom-f.top)
	if p.Frame.Z != nil {
		writeZGradient(buf, p)
	}
	buf.WriteString("  </defs>\n")

	fmt.Fprintf(buf, `  <g clip-path="url(#%s)">`+"\n", clipID)
	for i := range p.Marks {
		drawMark(buf, &f, &p.Marks[i])
	}
	for _, l := range p.Lines {
		drawLine(buf, &f, l)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		f.left, f.top, f.right-f.left, f.bottom-f.top, frameColor, frameStrokeWidth)

	drawXAxis(buf, &f, p.Frame.X)
	drawYAxis(buf, &f, p.Frame.Y)
	if p.Frame.Z != nil {
		drawColorbar(buf, &f, p)
	}

	if p.Legend != nil {
		drawLegend(buf, &pr, p)
	}
	for _, t := range p.Texts {
		drawText(buf, &pr, t)
	}
	if p.Title != "" {
		drawPadTitle(buf, &f, p)
	}

	buf.WriteString("  </g>\n")
}

// drawPadTitle centers the pad title above the frame.
func drawPadTitle(buf *bytes.Buffer, f *frame, p *layout.Pad) {
	size := p.TitleSizePx
	if size <= 0 {
		size = 14
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%d" text-anchor="middle" fill="%s">%s</text>`+"\n",
		(f.left+f.right)/2, f.top-0.4*float64(size), size, frameColor, EscapeXML(p.Title))
}
