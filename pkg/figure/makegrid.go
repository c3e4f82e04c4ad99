package figure

import "github.com/matzehuels/gridplot/pkg/grid"

const (
	// DefaultGridOuterMargin pads the right and top figure edges of a
	// MakeGrid layout.
	DefaultGridOuterMargin = 0.05

	// DefaultGridSizePx is the pixel size of a MakeGrid figure.
	DefaultGridSizePx = 600
)

// GridLayout describes a figure of attached plots: interior cell edges
// carry no margin, so neighbouring frames touch, and only the outer
// figure edges are padded. The left and bottom margins leave room for
// the axis labels of the outer plots.
type GridLayout struct {
	Cols int
	Rows int

	MarginLeft   float64
	MarginBottom float64
	MarginRight  float64
	MarginTop    float64

	Width  int
	Height int
}

// NewGridLayout returns a layout with the given label margins and
// default right/top padding and pixel size.
func NewGridLayout(cols, rows int, marginLeft, marginBottom float64) GridLayout {
	return GridLayout{
		Cols:         cols,
		Rows:         rows,
		MarginLeft:   marginLeft,
		MarginBottom: marginBottom,
		MarginRight:  DefaultGridOuterMargin,
		MarginTop:    DefaultGridOuterMargin,
		Width:        DefaultGridSizePx,
		Height:       DefaultGridSizePx,
	}
}

// MakeGrid builds a figure of attached plots and defines one region per
// cell, bottom row first. Outer columns and rows are widened by the
// outer margins so the frames inside stay equally sized. Every region
// above the bottom row shares its x axis with the bottom region of its
// column, and every region right of the first column shares its y axis
// with the leftmost region of its row, which suppresses the interior
// axis labels.
func MakeGrid(gl GridLayout, options ...Option) (*Figure, error) {
	opts := grid.Options{
		Cols:         gl.Cols,
		Rows:         gl.Rows,
		WidthRatios:  edgeWeightedRatios(gl.Cols, gl.MarginLeft, gl.MarginRight),
		HeightRatios: edgeWeightedRatios(gl.Rows, gl.MarginBottom, gl.MarginTop),
		ColMargins:   outerMargins(gl.Cols, gl.MarginLeft, gl.MarginRight),
		RowMargins:   outerMargins(gl.Rows, gl.MarginBottom, gl.MarginTop),
		Width:        gl.Width,
		Height:       gl.Height,
	}

	f, err := New(opts, options...)
	if err != nil {
		return nil, err
	}

	bottomOfCol := make([]*Region, gl.Cols)
	var leftOfRow *Region
	for row := 0; row < gl.Rows; row++ {
		for col := 0; col < gl.Cols; col++ {
			r, err := f.DefinePlot(col, row)
			if err != nil {
				return nil, err
			}
			if row == 0 {
				bottomOfCol[col] = r
			} else {
				r.ShareX(bottomOfCol[col])
			}
			if col == 0 {
				leftOfRow = r
			} else {
				r.ShareY(leftOfRow)
			}
		}
	}
	return f, nil
}

// MakeEqualGrid builds a figure of equally sized, detached cells with
// the same margin on every cell edge, and defines one region per cell,
// bottom row first. Unlike MakeGrid no axes are shared, so every plot
// keeps its own labels.
func MakeEqualGrid(cols, rows int, margin float64, options ...Option) (*Figure, error) {
	opts := grid.Options{
		Cols:       cols,
		Rows:       rows,
		ColMargins: grid.UniformMargins(margin, cols),
		RowMargins: grid.UniformMargins(margin, rows),
		Width:      DefaultGridSizePx,
		Height:     DefaultGridSizePx,
	}

	f, err := New(opts, options...)
	if err != nil {
		return nil, err
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if _, err := f.DefinePlot(col, row); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// edgeWeightedRatios sizes cells equally, widening the first and last
// by the outer margins so all frames end up the same size.
func edgeWeightedRatios(n int, lowMargin, upMargin float64) []float64 {
	cell := (1 - (lowMargin + upMargin)) / float64(n)
	ratios := make([]float64, n)
	for i := range ratios {
		ratios[i] = cell
	}
	ratios[0] += lowMargin
	ratios[n-1] += upMargin
	return ratios
}

// outerMargins pads only the first cell's low edge and the last cell's
// up edge.
func outerMargins(n int, lowMargin, upMargin float64) []grid.Margin {
	margins := make([]grid.Margin, n)
	margins[0].Low = lowMargin
	margins[n-1].High = upMargin
	return margins
}
