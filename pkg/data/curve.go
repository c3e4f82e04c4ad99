package data

import (
	"github.com/matzehuels/gridplot/pkg/errors"
)

// DefaultCurveSamples is the number of evaluation intervals used when
// deriving a curve's y-range.
const DefaultCurveSamples = 100

// Curve is a function sampled over a declared x-domain.
type Curve struct {
	name    string
	fn      func(float64) float64
	xMin    float64
	xMax    float64
	samples int
	titles  Titles
}

// NewCurve builds a curve from a function and its domain. The function
// must be defined over the whole domain and free of side effects.
func NewCurve(name string, fn func(float64) float64, xMin, xMax float64) (*Curve, error) {
	if fn == nil {
		return nil, errors.New(errors.ErrCodeInvalidData, "curve %q has no function", name)
	}
	if xMax <= xMin {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"curve %q: domain [%v, %v] is empty", name, xMin, xMax)
	}
	return &Curve{
		name:    name,
		fn:      fn,
		xMin:    xMin,
		xMax:    xMax,
		samples: DefaultCurveSamples,
	}, nil
}

// Kind implements Boundable.
func (c *Curve) Kind() Kind { return KindCurve }

// Name implements Boundable.
func (c *Curve) Name() string { return c.name }

// SetTitles attaches axis titles.
func (c *Curve) SetTitles(t Titles) { c.titles = t }

// Titles implements Boundable.
func (c *Curve) Titles() Titles { return c.titles }

// SetSamples overrides the number of evaluation intervals. Values below
// one are ignored.
func (c *Curve) SetSamples(n int) {
	if n >= 1 {
		c.samples = n
	}
}

// Samples returns the number of evaluation intervals.
func (c *Curve) Samples() int { return c.samples }

// Domain returns the declared x-domain.
func (c *Curve) Domain() (xMin, xMax float64) { return c.xMin, c.xMax }

// Eval evaluates the curve at x.
func (c *Curve) Eval(x float64) float64 { return c.fn(x) }

// Clone implements Boundable. The function value is shared between the
// clone and the original.
func (c *Curve) Clone(name string) Boundable {
	clone := *c
	clone.name = name
	return &clone
}

// Extent implements Boundable. The x-range comes from the declared
// domain unless overridden; the y-range is the sampled minimum and
// maximum over the resolved x-range.
func (c *Curve) Extent(w Window) Extent {
	xLow, xUp := c.xMin, c.xMax
	if w.XLow != nil {
		xLow = *w.XLow
	}
	if w.XUp != nil {
		xUp = *w.XUp
	}

	var yLow, yUp float64
	if w.YLow != nil {
		yLow = *w.YLow
	}
	if w.YUp != nil {
		yUp = *w.YUp
	}
	if w.YLow == nil || w.YUp == nil {
		min, max := c.sampleRange(xLow, xUp)
		if w.YLow == nil {
			yLow = min
		}
		if w.YUp == nil {
			yUp = max
		}
	}

	return Extent{XLow: xLow, XUp: xUp, YLow: yLow, YUp: yUp, OK: true}
}

// sampleRange evaluates the curve on a uniform grid over [xLow, xUp].
func (c *Curve) sampleRange(xLow, xUp float64) (min, max float64) {
	min = c.fn(xLow)
	max = min
	if xUp == xLow {
		return min, max
	}
	step := (xUp - xLow) / float64(c.samples)
	for i := 1; i <= c.samples; i++ {
		v := c.fn(xLow + float64(i)*step)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
