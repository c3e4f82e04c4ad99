package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/gridplot/pkg/layout"
)

const (
	legendPad      = 6.0
	legendSwatchW  = 22.0
	defaultTextPx  = 12
	legendBoxColor = "#FFFFFF"
)

// drawLegend draws the legend box with one swatch and label per entry,
// filled row-major from the top-left corner.
func drawLegend(buf *bytes.Buffer, pr *padRect, p *layout.Pad) {
	lg := p.Legend
	if lg == nil || len(lg.Entries) == 0 {
		return
	}

	left, right := pr.X(lg.X0), pr.X(lg.X1)
	top, bottom := pr.Y(lg.Y1), pr.Y(lg.Y0)

	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		left, top, right-left, bottom-top, legendBoxColor, frameColor)

	marks := make(map[string]*layout.Mark, len(p.Marks))
	for i := range p.Marks {
		marks[p.Marks[i].Name] = &p.Marks[i]
	}

	cols := lg.Columns
	if cols < 1 {
		cols = 1
	}
	rows := (len(lg.Entries) + cols - 1) / cols

	cellW := (right - left) / float64(cols)
	cellH := (bottom - top) / float64(rows)

	size := lg.TextSizePx
	if size <= 0 {
		size = defaultTextPx
	}

	for i, e := range lg.Entries {
		row, col := i/cols, i%cols
		x0 := left + float64(col)*cellW + legendPad
		cy := top + (float64(row)+0.5)*cellH

		drawSwatch(buf, marks[e.Mark], x0, x0+legendSwatchW, cy)
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%d" fill="%s">%s</text>`+"\n",
			x0+legendSwatchW+legendPad, cy+0.35*float64(size), size, frameColor, EscapeXML(e.Label))
	}
}

// drawSwatch mirrors how the referenced mark is drawn: a marker glyph
// for scatter marks, a filled box for filled marks, a line segment
// otherwise. Pattern fills reference the pattern the mark emitted.
func drawSwatch(buf *bytes.Buffer, m *layout.Mark, x0, x1, cy float64) {
	if m == nil {
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#000000" stroke-width="1"/>`+"\n",
			x0, cy, x1, cy)
		return
	}
	st := resolveStyle(m.Style)

	if m.Kind == layout.MarkScatter {
		drawMarker(buf, (x0+x1)/2, cy, st)
		return
	}
	if st.FillStyle != 0 {
		paint := st.FillColor
		if st.FillStyle >= 3000 {
			paint = fmt.Sprintf("url(#fill-%s)", m.Name)
		}
		h := 0.6 * (x1 - x0)
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" %s/>`+"\n",
			x0, cy-h/2, x1-x0, h, paint, st.FillAlpha, strokeAttrs(st))
		return
	}
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n",
		x0, cy, x1, cy, strokeAttrs(st))
}

// drawText draws one annotation anchored at its lower-left corner.
func drawText(buf *bytes.Buffer, pr *padRect, t layout.Text) {
	if t.Value == "" {
		return
	}
	size := t.SizePx
	if size <= 0 {
		size = defaultTextPx
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%d" fill="%s">%s</text>`+"\n",
		pr.X(t.X), pr.Y(t.Y), size, frameColor, EscapeXML(t.Value))
}
