package data

import (
	"math"

	"github.com/matzehuels/gridplot/pkg/errors"
)

// Scatter is an ordered set of (x, y) points, optionally with symmetric
// per-point errors. Errors are drawn as bars but do not influence the
// boundary search.
type Scatter struct {
	name   string
	xs     []float64
	ys     []float64
	xErrs  []float64
	yErrs  []float64
	titles Titles
}

// NewScatter builds a point set. The coordinate slices must have equal
// length. An empty set is valid and contributes nothing to the boundary
// search.
func NewScatter(name string, xs, ys []float64) (*Scatter, error) {
	if len(xs) != len(ys) {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"scatter %q: %d x-values but %d y-values", name, len(xs), len(ys))
	}
	return &Scatter{
		name: name,
		xs:   append([]float64(nil), xs...),
		ys:   append([]float64(nil), ys...),
	}, nil
}

// Kind implements Boundable.
func (s *Scatter) Kind() Kind { return KindScatter }

// Name implements Boundable.
func (s *Scatter) Name() string { return s.name }

// SetTitles attaches axis titles.
func (s *Scatter) SetTitles(t Titles) { s.titles = t }

// Titles implements Boundable.
func (s *Scatter) Titles() Titles { return s.titles }

// SetErrors attaches symmetric per-point errors. Either slice may be
// nil; non-nil slices must match the point count.
func (s *Scatter) SetErrors(xErrs, yErrs []float64) error {
	if xErrs != nil && len(xErrs) != len(s.xs) {
		return errors.New(errors.ErrCodeInvalidData,
			"scatter %q: %d points but %d x-errors", s.name, len(s.xs), len(xErrs))
	}
	if yErrs != nil && len(yErrs) != len(s.ys) {
		return errors.New(errors.ErrCodeInvalidData,
			"scatter %q: %d points but %d y-errors", s.name, len(s.ys), len(yErrs))
	}
	s.xErrs = append([]float64(nil), xErrs...)
	s.yErrs = append([]float64(nil), yErrs...)
	return nil
}

// Len returns the number of points.
func (s *Scatter) Len() int { return len(s.xs) }

// Point returns the i-th point.
func (s *Scatter) Point(i int) (x, y float64) { return s.xs[i], s.ys[i] }

// XErrors returns the x-errors, or nil when none are set.
func (s *Scatter) XErrors() []float64 { return s.xErrs }

// YErrors returns the y-errors, or nil when none are set.
func (s *Scatter) YErrors() []float64 { return s.yErrs }

// Clone implements Boundable.
func (s *Scatter) Clone(name string) Boundable {
	return &Scatter{
		name:   name,
		xs:     append([]float64(nil), s.xs...),
		ys:     append([]float64(nil), s.ys...),
		xErrs:  append([]float64(nil), s.xErrs...),
		yErrs:  append([]float64(nil), s.yErrs...),
		titles: s.titles,
	}
}

// Extent implements Boundable. Ranges are literal minima and maxima
// over the points. A window bound fixes its own side verbatim; points
// outside a fixed x-bound are excluded from the remaining axes as well.
func (s *Scatter) Extent(w Window) Extent {
	if len(s.xs) == 0 {
		return Extent{}
	}

	xLow, xUp := math.MaxFloat64, -math.MaxFloat64
	yLow, yUp := math.MaxFloat64, -math.MaxFloat64
	if w.XLow != nil {
		xLow = *w.XLow
	}
	if w.XUp != nil {
		xUp = *w.XUp
	}
	if w.YLow != nil {
		yLow = *w.YLow
	}
	if w.YUp != nil {
		yUp = *w.YUp
	}

	for i := range s.xs {
		x, y := s.xs[i], s.ys[i]
		if w.XLow == nil {
			if x < xLow {
				xLow = x
			}
		} else if x < *w.XLow {
			continue
		}
		if w.XUp == nil {
			if x > xUp {
				xUp = x
			}
		} else if x > *w.XUp {
			continue
		}
		if w.YLow == nil && y < yLow {
			yLow = y
		}
		if w.YUp == nil && y > yUp {
			yUp = y
		}
	}

	return Extent{XLow: xLow, XUp: xUp, YLow: yLow, YUp: yUp, OK: true}
}
