// Package layout defines the render-ready description of a figure: pads
// positioned in figure coordinates, axis frames with resolved boundaries,
// and the marks, legends and annotations drawn inside each pad.
//
// The format is the contract between figure assembly and the renderers.
// It is self-contained: a Figure can be serialized, stored and rendered
// later without access to the objects it was assembled from.
package layout

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Mark kinds.
const (
	MarkHist    = "hist"
	MarkHist2D  = "hist2d"
	MarkCurve   = "curve"
	MarkScatter = "scatter"
)

// =============================================================================
// Figure - Assembled Figure Serialization
// =============================================================================

// Figure is the canonical serialization format for an assembled figure.
// Used for API responses, storage, caching and as renderer input.
//
// All geometry inside a Pad is resolved: axis boundaries are final numbers,
// text sizes are pixels, legend boxes are positioned. Rendering a Figure
// requires no further computation beyond coordinate mapping.
type Figure struct {
	Name     string `json:"name" bson:"name"`
	WidthPx  int    `json:"width_px" bson:"width_px"`
	HeightPx int    `json:"height_px" bson:"height_px"`
	Pads     []Pad  `json:"pads" bson:"pads"`
}

// Pad is one plot region positioned inside the figure. The corner
// coordinates are fractions of the figure with origin bottom-left.
// A non-empty Title is drawn centered above the frame.
type Pad struct {
	Name        string `json:"name" bson:"name"`
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	TitleSizePx int    `json:"title_size_px,omitempty" bson:"title_size_px,omitempty"`

	X0 float64 `json:"x0" bson:"x0"`
	Y0 float64 `json:"y0" bson:"y0"`
	X1 float64 `json:"x1" bson:"x1"`
	Y1 float64 `json:"y1" bson:"y1"`

	// Margins are fractions of the pad reserved around the axis frame.
	MarginLeft   float64 `json:"margin_left" bson:"margin_left"`
	MarginRight  float64 `json:"margin_right" bson:"margin_right"`
	MarginBottom float64 `json:"margin_bottom" bson:"margin_bottom"`
	MarginTop    float64 `json:"margin_top" bson:"margin_top"`

	Frame  Frame   `json:"frame" bson:"frame"`
	Marks  []Mark  `json:"marks" bson:"marks"`
	Legend *Legend `json:"legend,omitempty" bson:"legend,omitempty"`
	Texts  []Text  `json:"texts,omitempty" bson:"texts,omitempty"`
	Lines  []Line  `json:"lines,omitempty" bson:"lines,omitempty"`
}

// Frame carries the resolved axis ranges and label styling of a pad.
// Z is present only when the pad holds a two-dimensional mark and then
// describes the color scale.
type Frame struct {
	X Axis  `json:"x" bson:"x"`
	Y Axis  `json:"y" bson:"y"`
	Z *Axis `json:"z,omitempty" bson:"z,omitempty"`
}

// Axis is one rendered frame axis. Sizes are pixels; a zero title or
// label size suppresses that element, which is how shared axes hide
// their duplicate labeling.
type Axis struct {
	Low          float64 `json:"low" bson:"low"`
	Up           float64 `json:"up" bson:"up"`
	Log          bool    `json:"log,omitempty" bson:"log,omitempty"`
	Title        string  `json:"title,omitempty" bson:"title,omitempty"`
	TitleSizePx  int     `json:"title_size_px,omitempty" bson:"title_size_px,omitempty"`
	LabelSizePx  int     `json:"label_size_px,omitempty" bson:"label_size_px,omitempty"`
	TickLengthPx float64 `json:"tick_length_px,omitempty" bson:"tick_length_px,omitempty"`
}

// =============================================================================
// Mark - Drawn Data Element
// =============================================================================

// Mark is one drawn data element inside a pad.
//
// This is a discriminated union type - check Kind to determine which
// payload field is populated:
//
//	Hist ("hist"):       binned contents with optional per-bin errors
//	Hist2D ("hist2d"):   binned cell contents rendered as a heat map
//	Curve ("curve"):     a function sampled into a polyline
//	Scatter ("scatter"): individual points with optional errors
type Mark struct {
	Kind  string `json:"kind" bson:"kind"`
	Name  string `json:"name" bson:"name"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`

	Style *StyleAttr `json:"style,omitempty" bson:"style,omitempty"`

	Hist    *HistData    `json:"hist,omitempty" bson:"hist,omitempty"`
	Hist2D  *Hist2DData  `json:"hist2d,omitempty" bson:"hist2d,omitempty"`
	Curve   *CurveData   `json:"curve,omitempty" bson:"curve,omitempty"`
	Scatter *ScatterData `json:"scatter,omitempty" bson:"scatter,omitempty"`
}

// HistData holds binned contents. Edges has one more entry than Contents;
// Errors is either empty or matches Contents in length.
type HistData struct {
	Edges    []float64 `json:"edges" bson:"edges"`
	Contents []float64 `json:"contents" bson:"contents"`
	Errors   []float64 `json:"errors,omitempty" bson:"errors,omitempty"`
}

// Hist2DData holds two-dimensional binned contents, indexed [x][y].
type Hist2DData struct {
	XEdges   []float64   `json:"x_edges" bson:"x_edges"`
	YEdges   []float64   `json:"y_edges" bson:"y_edges"`
	Contents [][]float64 `json:"contents" bson:"contents"`
}

// CurveData is a function sampled into a polyline.
type CurveData struct {
	Xs []float64 `json:"xs" bson:"xs"`
	Ys []float64 `json:"ys" bson:"ys"`
}

// ScatterData holds individual points with optional symmetric errors.
type ScatterData struct {
	Xs    []float64 `json:"xs" bson:"xs"`
	Ys    []float64 `json:"ys" bson:"ys"`
	XErrs []float64 `json:"x_errs,omitempty" bson:"x_errs,omitempty"`
	YErrs []float64 `json:"y_errs,omitempty" bson:"y_errs,omitempty"`
}

// IsHist returns true if this mark carries one-dimensional binned data.
func (m *Mark) IsHist() bool { return m.Kind == MarkHist }

// IsHist2D returns true if this mark carries two-dimensional binned data.
func (m *Mark) IsHist2D() bool { return m.Kind == MarkHist2D }

// =============================================================================
// StyleAttr - Resolved Mark Styling
// =============================================================================

// StyleAttr is the resolved styling of a mark. Colors are hex strings,
// line and marker styles are the numeric codes the renderers map to
// dash patterns and marker shapes. MarkerSize carries the pad scale
// factor already applied.
type StyleAttr struct {
	LineWidth int    `json:"line_width,omitempty" bson:"line_width,omitempty"`
	LineStyle int    `json:"line_style,omitempty" bson:"line_style,omitempty"`
	LineColor string `json:"line_color,omitempty" bson:"line_color,omitempty"`

	MarkerSize  float64 `json:"marker_size,omitempty" bson:"marker_size,omitempty"`
	MarkerStyle int     `json:"marker_style,omitempty" bson:"marker_style,omitempty"`
	MarkerColor string  `json:"marker_color,omitempty" bson:"marker_color,omitempty"`

	FillStyle int     `json:"fill_style,omitempty" bson:"fill_style,omitempty"`
	FillColor string  `json:"fill_color,omitempty" bson:"fill_color,omitempty"`
	FillAlpha float64 `json:"fill_alpha,omitempty" bson:"fill_alpha,omitempty"`
}

// =============================================================================
// Legend and Annotations
// =============================================================================

// Legend is a positioned legend box in pad coordinates. Entries reference
// marks by name so renderers can draw matching swatches.
type Legend struct {
	X0 float64 `json:"x0" bson:"x0"`
	Y0 float64 `json:"y0" bson:"y0"`
	X1 float64 `json:"x1" bson:"x1"`
	Y1 float64 `json:"y1" bson:"y1"`

	Columns    int           `json:"columns" bson:"columns"`
	TextSizePx int           `json:"text_size_px" bson:"text_size_px"`
	Entries    []LegendEntry `json:"entries" bson:"entries"`
}

// LegendEntry is one legend line.
type LegendEntry struct {
	Label string `json:"label" bson:"label"`
	Mark  string `json:"mark" bson:"mark"`
}

// Text is a text annotation anchored at its lower-left corner in pad
// coordinates.
type Text struct {
	Value  string  `json:"value" bson:"value"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	SizePx int     `json:"size_px" bson:"size_px"`
}

// Line is a straight line between two points in data coordinates.
type Line struct {
	X0 float64 `json:"x0" bson:"x0"`
	Y0 float64 `json:"y0" bson:"y0"`
	X1 float64 `json:"x1" bson:"x1"`
	Y1 float64 `json:"y1" bson:"y1"`
}
