package data

import (
	"math"

	"github.com/matzehuels/gridplot/pkg/errors"
)

// Hist2D is a two dimensional binned histogram. Contents are indexed as
// contents[ix][iy] with bin (ix, iy) spanning
// [xEdges[ix], xEdges[ix+1]) x [yEdges[iy], yEdges[iy+1]).
type Hist2D struct {
	name     string
	xEdges   []float64
	yEdges   []float64
	contents [][]float64
	titles   Titles
}

// NewHist2D builds a 2D histogram from bin edges and a content matrix.
func NewHist2D(name string, xEdges, yEdges []float64, contents [][]float64) (*Hist2D, error) {
	if len(xEdges) < 2 || len(yEdges) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q needs at least one bin per axis, got %d x-edges and %d y-edges",
			name, len(xEdges), len(yEdges))
	}
	for _, edges := range [][]float64{xEdges, yEdges} {
		for i := 1; i < len(edges); i++ {
			if edges[i] <= edges[i-1] {
				return nil, errors.New(errors.ErrCodeInvalidData,
					"histogram %q: edges must be strictly increasing", name)
			}
		}
	}
	nx, ny := len(xEdges)-1, len(yEdges)-1
	if len(contents) != nx {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q: expected %d content columns, got %d", name, nx, len(contents))
	}
	for ix, col := range contents {
		if len(col) != ny {
			return nil, errors.New(errors.ErrCodeInvalidData,
				"histogram %q: content column %d has %d entries, expected %d", name, ix, len(col), ny)
		}
	}

	h := &Hist2D{
		name:     name,
		xEdges:   append([]float64(nil), xEdges...),
		yEdges:   append([]float64(nil), yEdges...),
		contents: cloneMatrix(contents),
	}
	return h, nil
}

// NewHist2DUniform builds a 2D histogram with equally sized bins.
func NewHist2DUniform(name string, nx int, xMin, xMax float64, ny int, yMin, yMax float64, contents [][]float64) (*Hist2D, error) {
	if nx <= 0 || ny <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q: bin counts must be positive, got %dx%d", name, nx, ny)
	}
	if xMax <= xMin || yMax <= yMin {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q: axis ranges [%v, %v] x [%v, %v] are empty", name, xMin, xMax, yMin, yMax)
	}
	xEdges := uniformEdges(nx, xMin, xMax)
	yEdges := uniformEdges(ny, yMin, yMax)
	return NewHist2D(name, xEdges, yEdges, contents)
}

func uniformEdges(n int, min, max float64) []float64 {
	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[n] = max
	return edges
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, col := range m {
		out[i] = append([]float64(nil), col...)
	}
	return out
}

// Kind implements Boundable.
func (h *Hist2D) Kind() Kind { return KindHist2D }

// Name implements Boundable.
func (h *Hist2D) Name() string { return h.name }

// SetTitles attaches axis titles.
func (h *Hist2D) SetTitles(t Titles) { h.titles = t }

// Titles implements Boundable.
func (h *Hist2D) Titles() Titles { return h.titles }

// XBins returns the number of bins along x.
func (h *Hist2D) XBins() int { return len(h.xEdges) - 1 }

// YBins returns the number of bins along y.
func (h *Hist2D) YBins() int { return len(h.yEdges) - 1 }

// XEdges returns the x bin edges. Callers must not modify the slice.
func (h *Hist2D) XEdges() []float64 { return h.xEdges }

// YEdges returns the y bin edges. Callers must not modify the slice.
func (h *Hist2D) YEdges() []float64 { return h.yEdges }

// Content returns the content of bin (ix, iy).
func (h *Hist2D) Content(ix, iy int) float64 { return h.contents[ix][iy] }

// Clone implements Boundable.
func (h *Hist2D) Clone(name string) Boundable {
	return &Hist2D{
		name:     name,
		xEdges:   append([]float64(nil), h.xEdges...),
		yEdges:   append([]float64(nil), h.yEdges...),
		contents: cloneMatrix(h.contents),
		titles:   h.titles,
	}
}

// Extent implements Boundable. The x- and y-ranges are derived from the
// 1D projections along each axis; the z-range scans the content over the
// bin rectangle covering the resolved x/y ranges.
func (h *Hist2D) Extent(w Window) Extent {
	nx, ny := h.XBins(), h.YBins()

	projX := make([]float64, nx)
	projY := make([]float64, ny)
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			projX[ix] += h.contents[ix][iy]
			projY[iy] += h.contents[ix][iy]
		}
	}

	px := Hist1D{name: h.name, edges: h.xEdges, contents: projX}
	py := Hist1D{name: h.name, edges: h.yEdges, contents: projY}
	xt := px.Extent(Window{XLow: w.XLow, XUp: w.XUp, XLog: w.XLog})
	yt := py.Extent(Window{XLow: w.YLow, XUp: w.YUp, XLog: w.YLog})

	ixLow, ixUp := findBin(h.xEdges, xt.XLow), findBin(h.xEdges, xt.XUp)
	iyLow, iyUp := findBin(h.yEdges, yt.XLow), findBin(h.yEdges, yt.XUp)

	zLow := math.MaxFloat64
	zUp := -math.MaxFloat64
	if w.ZLow != nil {
		zLow = *w.ZLow
	}
	if w.ZUp != nil {
		zUp = *w.ZUp
	}
	for ix := ixLow; ix <= ixUp; ix++ {
		for iy := iyLow; iy <= iyUp; iy++ {
			c := h.contents[ix][iy]
			if w.ZLow == nil && c < zLow {
				zLow = c
			}
			if w.ZUp == nil && c > zUp {
				zUp = c
			}
		}
	}

	return Extent{
		XLow: xt.XLow, XUp: xt.XUp,
		YLow: yt.XLow, YUp: yt.XUp,
		ZLow: zLow, ZUp: zUp,
		HasZ: true,
		OK:   true,
	}
}
