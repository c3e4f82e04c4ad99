package svg

import (
	"math"

	"github.com/matzehuels/gridplot/pkg/layout"
)

// axisScale maps one axis's data values onto [0, 1].
type axisScale struct {
	low, up float64
	log     bool
}

func (s axisScale) frac(v float64) float64 {
	if s.log {
		// Non-positive values cannot be placed on a log scale; map
		// them well below the frame so the clip path removes them.
		if v <= 0 {
			return -1
		}
		span := math.Log10(s.up) - math.Log10(s.low)
		if span == 0 {
			return 0.5
		}
		return (math.Log10(v) - math.Log10(s.low)) / span
	}
	span := s.up - s.low
	if span == 0 {
		return 0.5
	}
	return (v - s.low) / span
}

// frame is the pixel rectangle of a pad's axis box plus the data
// scales drawn inside it. Pixel y grows downward. The z scale is set
// only for pads with a color axis.
type frame struct {
	left, right float64
	top, bottom float64

	x, y axisScale
	z    *axisScale
}

func newFrame(p *layout.Pad, figW, figH float64) frame {
	padLeft := p.X0 * figW
	padRight := p.X1 * figW
	padTop := (1 - p.Y1) * figH
	padBottom := (1 - p.Y0) * figH
	padW := padRight - padLeft
	padH := padBottom - padTop

	f := frame{
		left:   padLeft + p.MarginLeft*padW,
		right:  padRight - p.MarginRight*padW,
		top:    padTop + p.MarginTop*padH,
		bottom: padBottom - p.MarginBottom*padH,
		x:      axisScale{low: p.Frame.X.Low, up: p.Frame.X.Up, log: p.Frame.X.Log},
		y:      axisScale{low: p.Frame.Y.Low, up: p.Frame.Y.Up, log: p.Frame.Y.Log},
	}
	if p.Frame.Z != nil {
		f.z = &axisScale{low: p.Frame.Z.Low, up: p.Frame.Z.Up, log: p.Frame.Z.Log}
	}
	return f
}

// X maps a data x-value to a pixel coordinate.
func (f *frame) X(v float64) float64 {
	return f.left + f.x.frac(v)*(f.right-f.left)
}

// Y maps a data y-value to a pixel coordinate.
func (f *frame) Y(v float64) float64 {
	return f.bottom - f.y.frac(v)*(f.bottom-f.top)
}

// padRect maps pad-relative fractions (origin bottom-left) to pixels.
type padRect struct {
	left, bottom float64
	w, h         float64
}

func newPadRect(p *layout.Pad, figW, figH float64) padRect {
	return padRect{
		left:   p.X0 * figW,
		bottom: (1 - p.Y0) * figH,
		w:      (p.X1 - p.X0) * figW,
		h:      (p.Y1 - p.Y0) * figH,
	}
}

// X maps a pad fraction to a pixel coordinate.
func (p *padRect) X(v float64) float64 { return p.left + v*p.w }

// Y maps a pad fraction to a pixel coordinate.
func (p *padRect) Y(v float64) float64 { return p.bottom - v*p.h }
