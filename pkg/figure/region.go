package figure

import (
	"fmt"
	"math"

	"github.com/matzehuels/gridplot/pkg/bounds"
	"github.com/matzehuels/gridplot/pkg/data"
	"github.com/matzehuels/gridplot/pkg/geom"
	"github.com/matzehuels/gridplot/pkg/grid"
	"github.com/matzehuels/gridplot/pkg/layout"
	"github.com/matzehuels/gridplot/pkg/observability"
)

// markerScaleBase is the reference pad area in square pixels at which
// marker sizes are used as given. Smaller pads shrink markers by the
// square root of the area ratio.
const markerScaleBase = 600 * 600

// Region is one plot region of a figure: the content assigned to a
// cell span plus the axis, legend and annotation settings used to
// realize it.
//
// The exported config fields can be edited freely until Create runs on
// the owning figure.
type Region struct {
	// XAxis, YAxis and ZAxis hold the user-settable axis attributes,
	// seeded from the figure defaults.
	XAxis AxisConfig
	YAxis AxisConfig
	ZAxis AxisConfig

	// Legend holds the user-settable legend attributes.
	Legend LegendConfig

	// Title is drawn centered above the frame.
	Title string

	id      int
	span    grid.Span
	rect    geom.Rect
	margins grid.CellMargins

	objects []data.Boundable
	styles  []*Style
	labels  []string

	texts []TextSpec
	lines []LineSpec

	shareX *Region
	shareY *Region

	resolvedX  [2]float64
	resolvedY  [2]float64
	resolvedOK bool

	fig *Figure
}

// ID returns the region's index in the figure's definition order.
func (r *Region) ID() int { return r.id }

// Span returns the claimed cell span.
func (r *Region) Span() grid.Span { return r.span }

// Rect returns the resolved rectangle in figure fractions.
func (r *Region) Rect() geom.Rect { return r.rect }

// ObjectCount returns how many objects are registered for drawing.
func (r *Region) ObjectCount() int { return len(r.objects) }

// AddObject registers an object to be drawn. The object is cloned
// under a fresh unique name, so later mutation of the original does
// not affect the figure. Style may be nil for backend defaults; an
// empty label keeps the object out of the legend.
func (r *Region) AddObject(obj data.Boundable, style *Style, label string) {
	if obj == nil {
		warn(r.fig.warningHooks(), observability.WarnUnsupportedObject,
			"ignoring nil object added to plot %d", r.id)
		return
	}

	clone := obj.Clone(r.fig.namer.Next(obj.Name()))

	var s *Style
	if style != nil {
		cp := *style
		s = &cp
	}

	r.objects = append(r.objects, clone)
	r.styles = append(r.styles, s)
	r.labels = append(r.labels, label)
}

// AddObjects registers several objects at once, assigning each one a
// generated style from the default cycles so the set stays visually
// distinct without per-object styling. Objects carry no legend label;
// use AddObject for labelled entries.
func (r *Region) AddObjects(objs ...data.Boundable) {
	styles := GenerateStyles(len(objs), Cycles{})
	for i, obj := range objs {
		r.AddObject(obj, &styles[i], "")
	}
}

// AddText places a text annotation. A zero Size falls back to
// DefaultTextSize.
func (r *Region) AddText(t TextSpec) {
	if t.Size == 0 {
		t.Size = DefaultTextSize
	}
	r.texts = append(r.texts, t)
}

// AddLine places a line annotation.
func (r *Region) AddLine(l LineSpec) {
	r.lines = append(r.lines, l)
}

// ShareX copies the resolved x-limits of other into this region at
// create time and suppresses this region's own x labels and title.
// The other region must belong to the same figure.
func (r *Region) ShareX(other *Region) { r.shareX = other }

// ShareY copies the resolved y-limits of other, forces them exactly
// and suppresses this region's own y labels and title.
func (r *Region) ShareY(other *Region) { r.shareY = other }

// SharedX returns the region this one borrows x-limits from, or nil.
func (r *Region) SharedX() *Region { return r.shareX }

// SharedY returns the region this one borrows y-limits from, or nil.
func (r *Region) SharedY() *Region { return r.shareY }

// ResolvedX returns the x-limits fixed during Create.
func (r *Region) ResolvedX() (low, up float64, ok bool) {
	return r.resolvedX[0], r.resolvedX[1], r.resolvedOK
}

// ResolvedY returns the y-limits fixed during Create.
func (r *Region) ResolvedY() (low, up float64, ok bool) {
	return r.resolvedY[0], r.resolvedY[1], r.resolvedOK
}

// realize resolves the region's boundaries and builds its pad. The
// second return is false when the region produces no pad, which is the
// case for regions without content.
func (r *Region) realize(name string, cfg createConfig) (layout.Pad, bool, error) {
	if len(r.objects) == 0 {
		return layout.Pad{}, false, nil
	}

	f := r.fig
	hooks := f.warningHooks()
	figW, figH := f.grid.Width, f.grid.Height

	padWpx := r.rect.Width() * float64(figW)
	padHpx := r.rect.Height() * float64(figH)
	scale := math.Sqrt(padWpx * padHpx / markerScaleBase)

	// Legend sizing comes first so the boundary search knows how much
	// vertical space to reserve.
	nLabels := 0
	for _, l := range r.labels {
		if l != "" {
			nLabels++
		}
	}

	var legendBox geom.Rect
	var legendAt legendAnchor
	var reserveTop, reserveBottom float64
	if nLabels > 0 {
		var err error
		legendBox, legendAt, err = r.Legend.geometry(nLabels, hooks)
		if err != nil {
			return layout.Pad{}, false, err
		}
		if legendAt.bottom {
			reserveBottom = legendBox.Top
		} else {
			reserveTop = 1 - legendBox.Bottom
		}
	}

	xAxis := bounds.Axis{Low: r.XAxis.Low, High: r.XAxis.High, Log: r.XAxis.Log}
	yAxis := bounds.Axis{Low: r.YAxis.Low, High: r.YAxis.High, Log: r.YAxis.Log}
	zAxis := bounds.Axis{Low: r.ZAxis.Low, High: r.ZAxis.High, Log: r.ZAxis.Log}

	// Shared axes borrow the sibling's resolved limits. A sibling that
	// produced no pad has none to borrow, so the region falls back to
	// its own settings.
	if r.shareX != nil && r.shareX.resolvedOK {
		low, up := r.shareX.resolvedX[0], r.shareX.resolvedX[1]
		xAxis.Low, xAxis.High = &low, &up
	}
	yForce := false
	if r.shareY != nil && r.shareY.resolvedOK {
		low, up := r.shareY.resolvedY[0], r.shareY.resolvedY[1]
		yAxis.Low, yAxis.High = &low, &up
		yForce = true
	}

	res := bounds.Compute(bounds.Request{
		Objects:          r.objects,
		X:                xAxis,
		Y:                yAxis,
		Z:                zAxis,
		ReserveTop:       reserveTop,
		ReserveBottom:    reserveBottom,
		YForce:           yForce,
		AccountForErrors: r.YAxis.AccountForErrors,
		Hooks:            hooks,
	})
	if !res.OK {
		warn(hooks, observability.WarnUnsupportedObject,
			"plot %d has no drawable content, skipped", r.id)
		return layout.Pad{}, false, nil
	}

	r.resolvedX = [2]float64{res.XLow, res.XUp}
	r.resolvedY = [2]float64{res.YLow, res.YUp}
	r.resolvedOK = true

	titles := data.Titles{X: r.XAxis.Title, Y: r.YAxis.Title, Z: r.ZAxis.Title}
	if cfg.useObjectTitles {
		titles = r.axisTitles()
	}

	// Margins are stored in figure fractions and rescaled to the pad.
	mLeft := r.margins.Left / r.rect.Width()
	mRight := r.margins.Right / r.rect.Width()
	mBottom := r.margins.Bottom / r.rect.Height()
	mTop := r.margins.Top / r.rect.Height()

	pad := layout.Pad{
		Name:  name,
		Title: r.Title,
		X0:    r.rect.Left, Y0: r.rect.Bottom,
		X1: r.rect.Right, Y1: r.rect.Top,
		MarginLeft: mLeft, MarginRight: mRight,
		MarginBottom: mBottom, MarginTop: mTop,
	}
	if r.Title != "" {
		pad.TitleSizePx = textPx(DefaultTitleSize, figH)
	}

	pad.Frame.X = layout.Axis{
		Low: res.XLow, Up: res.XUp,
		Log:          r.XAxis.Log,
		Title:        titles.X,
		TitleSizePx:  textPx(r.XAxis.TitleSize, figH),
		LabelSizePx:  textPx(r.XAxis.LabelSize, figH),
		TickLengthPx: r.XAxis.TickSize * float64(figH),
	}
	pad.Frame.Y = layout.Axis{
		Low: res.YLow, Up: res.YUp,
		Log:          r.YAxis.Log,
		Title:        titles.Y,
		TitleSizePx:  textPx(r.YAxis.TitleSize, figH),
		LabelSizePx:  textPx(r.YAxis.LabelSize, figH),
		TickLengthPx: r.YAxis.TickSize * float64(figH),
	}
	if res.HasZ {
		pad.Frame.Z = &layout.Axis{
			Low: res.ZLow, Up: res.ZUp,
			Log:   r.ZAxis.Log,
			Title: titles.Z,
		}
	}

	// Shared axes keep their ticks but drop duplicate labels and
	// titles.
	if r.shareX != nil {
		pad.Frame.X.TitleSizePx = 0
		pad.Frame.X.LabelSizePx = 0
	}
	if r.shareY != nil {
		pad.Frame.Y.TitleSizePx = 0
		pad.Frame.Y.LabelSizePx = 0
	}

	for i, obj := range r.objects {
		mark, ok := buildMark(obj, r.styles[i], r.labels[i], scale)
		if !ok {
			continue
		}
		pad.Marks = append(pad.Marks, mark)
	}

	if nLabels > 0 {
		pad.Legend = r.buildLegend(legendBox, mLeft, mRight, mBottom, mTop, figH)
	}

	for _, t := range r.texts {
		pad.Texts = append(pad.Texts, layout.Text{
			Value:  t.Text,
			X:      geom.MapValue(t.X, 0, 1, mLeft, 1-mRight),
			Y:      geom.MapValue(t.Y, 0, 1, mBottom, 1-mTop),
			SizePx: textPx(t.Size, figH),
		})
	}

	for _, l := range r.lines {
		x0, x1 := fillEndpoints(l.X0, l.X1)
		y0, y1 := fillEndpoints(l.Y0, l.Y1)
		pad.Lines = append(pad.Lines, layout.Line{
			X0: resolveLineCoord(x0, l.XOrientation, res.XLow, res.XUp, r.XAxis.Log),
			Y0: resolveLineCoord(y0, l.YOrientation, res.YLow, res.YUp, r.YAxis.Log),
			X1: resolveLineCoord(x1, l.XOrientation, res.XLow, res.XUp, r.XAxis.Log),
			Y1: resolveLineCoord(y1, l.YOrientation, res.YLow, res.YUp, r.YAxis.Log),
		})
	}

	return pad, true, nil
}

// axisTitles resolves the frame titles, falling back to the first
// object that carries one for an axis the user left blank.
func (r *Region) axisTitles() data.Titles {
	titles := data.Titles{X: r.XAxis.Title, Y: r.YAxis.Title, Z: r.ZAxis.Title}
	for _, obj := range r.objects {
		t := obj.Titles()
		if titles.X == "" {
			titles.X = t.X
		}
		if titles.Y == "" {
			titles.Y = t.Y
		}
		if titles.Z == "" {
			titles.Z = t.Z
		}
		if titles.X != "" && titles.Y != "" && titles.Z != "" {
			break
		}
	}
	return titles
}

// buildLegend maps the frame-fraction legend box into pad coordinates.
func (r *Region) buildLegend(box geom.Rect, mLeft, mRight, mBottom, mTop float64, figH int) *layout.Legend {
	columns := r.Legend.Columns
	if columns <= 0 {
		columns = 1
	}

	leg := &layout.Legend{
		X0:         geom.MapValue(box.Left, 0, 1, mLeft, 1-mRight),
		Y0:         geom.MapValue(box.Bottom, 0, 1, mBottom, 1-mTop),
		X1:         geom.MapValue(box.Right, 0, 1, mLeft, 1-mRight),
		Y1:         geom.MapValue(box.Top, 0, 1, mBottom, 1-mTop),
		Columns:    columns,
		TextSizePx: textPx(r.Legend.TextSize, figH),
	}
	for i, label := range r.labels {
		if label == "" {
			continue
		}
		leg.Entries = append(leg.Entries, layout.LegendEntry{
			Label: label,
			Mark:  r.objects[i].Name(),
		})
	}
	return leg
}

// buildMark converts an object and its style into a drawable mark.
func buildMark(obj data.Boundable, style *Style, label string, scale float64) (layout.Mark, bool) {
	mark := layout.Mark{
		Name:  obj.Name(),
		Label: label,
		Style: styleAttr(style, scale),
	}

	switch o := obj.(type) {
	case *data.Hist1D:
		mark.Kind = layout.MarkHist
		mark.Hist = &layout.HistData{
			Edges:    o.Edges(),
			Contents: o.Contents(),
			Errors:   o.Errors(),
		}
	case *data.Hist2D:
		contents := make([][]float64, o.XBins())
		for ix := range contents {
			row := make([]float64, o.YBins())
			for iy := range row {
				row[iy] = o.Content(ix, iy)
			}
			contents[ix] = row
		}
		mark.Kind = layout.MarkHist2D
		mark.Hist2D = &layout.Hist2DData{
			XEdges:   o.XEdges(),
			YEdges:   o.YEdges(),
			Contents: contents,
		}
	case *data.Curve:
		xs, ys := sampleCurve(o)
		mark.Kind = layout.MarkCurve
		mark.Curve = &layout.CurveData{Xs: xs, Ys: ys}
	case *data.Scatter:
		xs := make([]float64, o.Len())
		ys := make([]float64, o.Len())
		for i := range xs {
			xs[i], ys[i] = o.Point(i)
		}
		mark.Kind = layout.MarkScatter
		mark.Scatter = &layout.ScatterData{
			Xs: xs, Ys: ys,
			XErrs: o.XErrors(),
			YErrs: o.YErrors(),
		}
	default:
		return layout.Mark{}, false
	}
	return mark, true
}

// sampleCurve evaluates the curve at evenly spaced points across its
// domain, one more point than sampling intervals.
func sampleCurve(c *data.Curve) (xs, ys []float64) {
	n := c.Samples()
	xMin, xMax := c.Domain()
	step := (xMax - xMin) / float64(n)

	xs = make([]float64, n+1)
	ys = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		x := xMin + float64(i)*step
		xs[i] = x
		ys[i] = c.Eval(x)
	}
	return xs, ys
}

// styleAttr converts a Style into its serialized form, applying the
// pad's marker scale.
func styleAttr(s *Style, scale float64) *layout.StyleAttr {
	if s == nil {
		return nil
	}
	return &layout.StyleAttr{
		LineWidth:   s.LineWidth,
		LineStyle:   s.LineStyle,
		LineColor:   s.LineColor,
		MarkerSize:  s.MarkerSize * scale,
		MarkerStyle: s.MarkerStyle,
		MarkerColor: s.MarkerColor,
		FillStyle:   s.FillStyle,
		FillColor:   s.FillColor,
		FillAlpha:   s.FillAlpha,
	}
}

// resolveLineCoord turns one line endpoint coordinate into an axis
// value. Relative coordinates are fractions of the axis range, mapped
// in log space on log axes.
func resolveLineCoord(v float64, o Orientation, low, up float64, log bool) float64 {
	if o == Absolute {
		return v
	}
	if log {
		return math.Pow(10, math.Log10(low)+v*(math.Log10(up)-math.Log10(low)))
	}
	return low + v*(up-low)
}

// textPx converts a figure-relative text size into pixels, never less
// than one.
func textPx(size float64, heightPx int) int {
	px := int(size * float64(heightPx))
	if px < 1 {
		return 1
	}
	return px
}

func warn(h observability.WarningHooks, code observability.WarningCode, format string, args ...any) {
	h.OnWarning(observability.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}
