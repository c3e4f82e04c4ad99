package geom

// Rect is a rectangle in relative figure coordinates, origin bottom-left.
// All four values are fractions of the figure in [0,1].
type Rect struct {
	Left, Bottom float64
	Right, Top   float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return (r.Bottom + r.Top) / 2 }

// Area returns the area of the rectangle.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// MapValue maps a value from one interval onto another. A degenerate source
// interval maps everything to half the target span.
func MapValue(value, oldMin, oldMax, newMin, newMax float64) float64 {
	if oldMin == oldMax {
		return (newMax - newMin) / 2
	}
	return (value-oldMin)*(newMax-newMin)/(oldMax-oldMin) + newMin
}
