package grid

import (
	"github.com/matzehuels/gridplot/pkg/errors"
	"github.com/matzehuels/gridplot/pkg/geom"
)

const (
	// DefaultMargin is the fraction of a cell reserved on each side when
	// no margins are given.
	DefaultMargin = 0.05

	// DefaultWidthPx is the default figure width in pixels.
	DefaultWidthPx = 300

	// DefaultHeightPx is the default figure height in pixels.
	DefaultHeightPx = 300
)

// Options describes the cell grid of a figure. The zero value of every
// field is replaced by a sensible default during ValidateAndSetDefaults,
// except Cols and Rows which must be positive.
type Options struct {
	// Cols and Rows are the grid dimensions.
	Cols int
	Rows int

	// WidthRatios and HeightRatios weight the size of each column and
	// row. Nil means equal sizes. Lengths must match Cols and Rows.
	WidthRatios  []float64
	HeightRatios []float64

	// ColMargins and RowMargins hold one pair per column and row.
	// Nil applies DefaultMargin on every side; a single pair is
	// broadcast to every column or row.
	ColMargins []Margin
	RowMargins []Margin

	// Width and Height are the figure pixel size.
	Width  int
	Height int

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the grid dimensions and normalizes
// ratios and margins. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Cols <= 0 || o.Rows <= 0 {
		return errors.New(errors.ErrCodeInvalidGrid,
			"grid dimensions must be positive, got %d cols x %d rows", o.Cols, o.Rows)
	}

	var err error
	if o.WidthRatios, err = normalizeRatios(o.WidthRatios, o.Cols, "width"); err != nil {
		return err
	}
	if o.HeightRatios, err = normalizeRatios(o.HeightRatios, o.Rows, "height"); err != nil {
		return err
	}
	if o.ColMargins, err = normalizeMargins(o.ColMargins, o.Cols, "column"); err != nil {
		return err
	}
	if o.RowMargins, err = normalizeMargins(o.RowMargins, o.Rows, "row"); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidthPx
	}
	if o.Height == 0 {
		o.Height = DefaultHeightPx
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidGrid,
			"figure size must be positive, got %dx%d", o.Width, o.Height)
	}

	o.validated = true
	return nil
}

// Span is an inclusive rectangular range of grid cells.
type Span struct {
	ColLow int
	RowLow int
	ColUp  int
	RowUp  int
}

// Cell returns the single-cell span covering (col, row).
func Cell(col, row int) Span {
	return Span{ColLow: col, RowLow: row, ColUp: col, RowUp: row}
}

// CheckSpan validates span indices against the grid dimensions.
func (o *Options) CheckSpan(s Span) error {
	if s.ColLow < 0 || s.RowLow < 0 || s.ColUp < s.ColLow || s.RowUp < s.RowLow ||
		s.ColUp >= o.Cols || s.RowUp >= o.Rows {
		return errors.New(errors.ErrCodeInvalidSpan,
			"span (%d,%d)-(%d,%d) outside grid: columns must satisfy 0 <= low <= up < %d, rows 0 <= low <= up < %d",
			s.ColLow, s.RowLow, s.ColUp, s.RowUp, o.Cols, o.Rows)
	}
	return nil
}

// Rect resolves the relative rectangle a span occupies, derived from the
// cumulative ratio sums up to the span boundaries. Row 0 sits at the
// bottom of the figure.
func (o *Options) Rect(s Span) (geom.Rect, error) {
	if err := o.CheckSpan(s); err != nil {
		return geom.Rect{}, err
	}

	var totalW float64
	for _, r := range o.WidthRatios {
		totalW += r
	}
	var totalH float64
	for _, r := range o.HeightRatios {
		totalH += r
	}

	var left float64
	for i := 0; i < s.ColLow; i++ {
		left += o.WidthRatios[i] / totalW
	}
	right := left
	for i := s.ColLow; i <= s.ColUp; i++ {
		right += o.WidthRatios[i] / totalW
	}

	var bottom float64
	for i := 0; i < s.RowLow; i++ {
		bottom += o.HeightRatios[i] / totalH
	}
	top := bottom
	for i := s.RowLow; i <= s.RowUp; i++ {
		top += o.HeightRatios[i] / totalH
	}

	return geom.Rect{Left: left, Bottom: bottom, Right: right, Top: top}, nil
}

// CellMargins are the resolved outward margins of a span's rectangle.
// Only the outer edge cells of a multi-cell span contribute margin;
// interior shared edges contribute none.
type CellMargins struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// SpanMargins slices the outward margins of the span's edge cells.
// The span must have been validated with CheckSpan.
func (o *Options) SpanMargins(s Span) CellMargins {
	return CellMargins{
		Left:   o.ColMargins[s.ColLow].Low,
		Right:  o.ColMargins[s.ColUp].High,
		Bottom: o.RowMargins[s.RowLow].Low,
		Top:    o.RowMargins[s.RowUp].High,
	}
}
