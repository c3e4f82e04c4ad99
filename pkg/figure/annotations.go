package figure

// DefaultTextSize is the annotation text size as a fraction of the
// figure height.
const DefaultTextSize = 0.02

// TextSpec is a text annotation anchored at its lower-left corner in
// frame fractions.
type TextSpec struct {
	Text string

	// X and Y are fractions of the frame, origin bottom-left.
	X float64
	Y float64

	// Size is a fraction of the figure height. Zero uses
	// DefaultTextSize.
	Size float64
}

// Orientation selects how a line endpoint coordinate is interpreted.
type Orientation string

const (
	// Relative coordinates are fractions of the resolved axis range.
	Relative Orientation = "relative"

	// Absolute coordinates are literal axis values.
	Absolute Orientation = "absolute"
)

// LineSpec is a straight line annotation. Each coordinate pair defaults
// independently: with both endpoints nil the line spans the full axis
// (0 to 1 relative), with one nil it copies the other, giving a
// horizontal or vertical line. The orientation applies to both
// endpoints of its axis and defaults to Relative.
type LineSpec struct {
	X0, X1 *float64
	Y0, Y1 *float64

	XOrientation Orientation
	YOrientation Orientation
}

// fillEndpoints resolves the nil-defaulting rules for one coordinate
// pair.
func fillEndpoints(a, b *float64) (float64, float64) {
	switch {
	case a == nil && b == nil:
		return 0, 1
	case a == nil:
		return *b, *b
	case b == nil:
		return *a, *a
	}
	return *a, *b
}
