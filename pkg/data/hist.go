package data

import (
	"sort"

	"github.com/matzehuels/gridplot/pkg/errors"
)

// Hist1D is a one dimensional binned histogram with optional per-bin
// errors. Bin i spans [edges[i], edges[i+1]).
type Hist1D struct {
	name     string
	edges    []float64
	contents []float64
	errs     []float64
	titles   Titles
}

// NewHist1D builds a histogram from bin edges and contents. Edges must
// be strictly increasing with len(edges) == len(contents)+1. Errors are
// optional; when given they must match the bin count.
func NewHist1D(name string, edges, contents, errs []float64) (*Hist1D, error) {
	if len(edges) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q needs at least one bin, got %d edges", name, len(edges))
	}
	if len(contents) != len(edges)-1 {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q: %d edges require %d contents, got %d",
			name, len(edges), len(edges)-1, len(contents))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, errors.New(errors.ErrCodeInvalidData,
				"histogram %q: edges must be strictly increasing, edge %d (%v) <= edge %d (%v)",
				name, i, edges[i], i-1, edges[i-1])
		}
	}
	if errs != nil && len(errs) != len(contents) {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q: expected %d errors, got %d", name, len(contents), len(errs))
	}

	h := &Hist1D{
		name:     name,
		edges:    append([]float64(nil), edges...),
		contents: append([]float64(nil), contents...),
	}
	if errs != nil {
		h.errs = append([]float64(nil), errs...)
	}
	return h, nil
}

// NewHist1DUniform builds a histogram with nBins equally sized bins
// between xMin and xMax.
func NewHist1DUniform(name string, nBins int, xMin, xMax float64, contents, errs []float64) (*Hist1D, error) {
	if nBins <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q: bin count must be positive, got %d", name, nBins)
	}
	if xMax <= xMin {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"histogram %q: range [%v, %v] is empty", name, xMin, xMax)
	}
	edges := make([]float64, nBins+1)
	width := (xMax - xMin) / float64(nBins)
	for i := range edges {
		edges[i] = xMin + float64(i)*width
	}
	edges[nBins] = xMax
	return NewHist1D(name, edges, contents, errs)
}

// Kind implements Boundable.
func (h *Hist1D) Kind() Kind { return KindHist1D }

// Name implements Boundable.
func (h *Hist1D) Name() string { return h.name }

// SetTitles attaches axis titles.
func (h *Hist1D) SetTitles(t Titles) { h.titles = t }

// Titles implements Boundable.
func (h *Hist1D) Titles() Titles { return h.titles }

// Bins returns the number of bins.
func (h *Hist1D) Bins() int { return len(h.contents) }

// Edges returns the bin edges. Callers must not modify the slice.
func (h *Hist1D) Edges() []float64 { return h.edges }

// Contents returns the bin contents. Callers must not modify the slice.
func (h *Hist1D) Contents() []float64 { return h.contents }

// Errors returns the per-bin errors or nil. Callers must not modify the
// slice.
func (h *Hist1D) Errors() []float64 { return h.errs }

// Clone implements Boundable.
func (h *Hist1D) Clone(name string) Boundable {
	clone := &Hist1D{
		name:     name,
		edges:    append([]float64(nil), h.edges...),
		contents: append([]float64(nil), h.contents...),
		titles:   h.titles,
	}
	if h.errs != nil {
		clone.errs = append([]float64(nil), h.errs...)
	}
	return clone
}

// Extent implements Boundable. The x-range trims leading and trailing
// empty bins unless a window bound fixes it; the y-range is the min and
// max of bin content, widened by errors when requested, across the bins
// inside the resolved x-range.
func (h *Hist1D) Extent(w Window) Extent {
	n := len(h.contents)
	startBin, endBin := 0, n-1

	var xLow float64
	if w.XLow != nil {
		xLow = *w.XLow
	} else {
		xLow = h.edges[0]
		for i := 0; i < n; i++ {
			if h.contents[i] == 0 {
				continue
			}
			xLow = h.edges[i]
			// Under a log x-axis keep scanning past bins whose low edge
			// is not positive.
			if xLow > 0 || !w.XLog {
				startBin = i
				break
			}
		}
	}

	var xUp float64
	if w.XUp != nil {
		xUp = *w.XUp
	} else {
		xUp = h.edges[n]
		for i := n - 1; i >= 0; i-- {
			if h.contents[i] != 0 {
				xUp = h.edges[i+1]
				endBin = i
				break
			}
		}
	}

	var yLow float64
	if w.YLow != nil {
		yLow = *w.YLow
	} else {
		found := false
		for i := startBin; i <= endBin; i++ {
			v := h.contents[i]
			if w.AccountForErrors && h.errs != nil {
				v -= h.errs[i]
			}
			if w.YLog && v <= 0 {
				continue
			}
			if !found || v < yLow {
				yLow = v
				found = true
			}
		}
		if !found {
			yLow = MinLogScale
		}
	}

	var yUp float64
	if w.YUp != nil {
		yUp = *w.YUp
	} else {
		found := false
		for i := startBin; i <= endBin; i++ {
			v := h.contents[i]
			if w.AccountForErrors && h.errs != nil {
				v += h.errs[i]
			}
			if w.YLog && v <= 0 {
				continue
			}
			if !found || v > yUp {
				yUp = v
				found = true
			}
		}
		if !found {
			yUp = MinLogScale
		}
	}

	return Extent{XLow: xLow, XUp: xUp, YLow: yLow, YUp: yUp, OK: true}
}

// findBin returns the index of the bin containing x, clamped to the
// valid bin range. Bins are low-edge inclusive.
func findBin(edges []float64, x float64) int {
	n := len(edges) - 1
	i := sort.SearchFloat64s(edges, x)
	if i >= len(edges) || edges[i] != x {
		i--
	}
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
