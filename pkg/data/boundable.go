// Package data models the plottable object kinds the boundary search
// understands: binned histograms (1D and 2D), sampled curves and scatter
// point sets.
//
// Every kind computes its own axis extent under a Window of constraints.
// A nil window bound means "derive from the data"; a set bound is taken
// verbatim and, depending on the kind, filters which data contributes to
// the orthogonal axes. Objects are read-only during extent computation.
package data

// MinLogScale is the smallest axis value compatible with a log scale.
// Non-positive bounds are clamped to it when a log axis is requested.
const MinLogScale = 1e-11

// Kind identifies a plottable object kind.
type Kind string

// Supported object kinds.
const (
	KindHist1D  Kind = "hist1d"
	KindHist2D  Kind = "hist2d"
	KindCurve   Kind = "curve"
	KindScatter Kind = "scatter"
)

// Window carries the constraints for one extent computation pass. Nil
// bounds are derived from the data; set bounds are honored verbatim.
type Window struct {
	XLow, XUp *float64
	YLow, YUp *float64
	ZLow, ZUp *float64

	XLog, YLog, ZLog bool

	// AccountForErrors widens the derived y-range by the per-bin errors
	// of binned objects.
	AccountForErrors bool
}

// Extent is the resolved axis range of a single object. OK is false when
// the object contributes nothing, e.g. a scatter set without points.
type Extent struct {
	XLow, XUp float64
	YLow, YUp float64
	ZLow, ZUp float64

	// HasZ marks kinds that carry a third content axis.
	HasZ bool

	OK bool
}

// Titles are the axis titles attached to an object. Empty strings mean
// the object carries no title for that axis.
type Titles struct {
	X, Y, Z string
}

// Boundable is a plottable object the boundary search can inspect.
type Boundable interface {
	// Kind tags the object for dispatch.
	Kind() Kind

	// Name is the object's display name.
	Name() string

	// Clone returns a deep copy under a new name. The receiver is never
	// mutated afterwards through the clone.
	Clone(name string) Boundable

	// Extent computes the object's axis ranges under the given window.
	Extent(w Window) Extent

	// Titles returns the object's axis titles.
	Titles() Titles

	// SetTitles attaches axis titles.
	SetTitles(Titles)
}

// Float returns a pointer to v, for filling optional window bounds.
func Float(v float64) *float64 {
	return &v
}
