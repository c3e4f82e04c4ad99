// Package bounds derives axis ranges for a set of plottable objects.
//
// Every object is examined twice: once honoring user-fixed limits as
// hard filters and once ignoring them, so the engine knows both the
// constrained range and the true data extent. The two passes are then
// reconciled: user bounds that would clip data are widened (unless
// forced), log-incompatible lower bounds are raised, the y-range is
// padded so extrema do not touch the frame, and space for a legend is
// reserved on request.
//
// Only the y-axis is padded and data-checked. The x-axis follows either
// the data or the user verbatim, which keeps x-limits stable across
// regions that share them.
package bounds

import (
	"fmt"
	"math"

	"github.com/matzehuels/gridplot/pkg/data"
	"github.com/matzehuels/gridplot/pkg/observability"
)

// padFraction is the fraction of the y-range added above the maximum
// and below the minimum so data does not touch the frame.
const padFraction = 0.1

// Axis is the user constraint for one axis. Nil bounds are derived from
// the data.
type Axis struct {
	Low  *float64
	High *float64
	Log  bool
}

// Request describes one boundary computation.
type Request struct {
	// Objects are inspected in order. Unrecognized kinds are skipped
	// with a warning.
	Objects []data.Boundable

	X, Y, Z Axis

	// ReserveTop and ReserveBottom are fractions in [0, 1) of the final
	// y-range to keep free of data, typically for a legend. Zero means
	// no reservation.
	ReserveTop    float64
	ReserveBottom float64

	// XForce and YForce trust both user bounds of the axis exactly,
	// even if they clip data.
	XForce bool
	YForce bool

	// AccountForErrors widens the derived y-range by per-bin errors of
	// binned objects. Figure-level callers default this to true.
	AccountForErrors bool

	// Hooks receives warnings. Nil falls back to the globally
	// registered hooks.
	Hooks observability.WarningHooks
}

// Result holds the reconciled ranges. OK is false when no object
// contributed, in which case the ranges are meaningless. HasZ is set
// when at least one object carries a content axis.
type Result struct {
	XLow, XUp float64
	YLow, YUp float64
	ZLow, ZUp float64
	HasZ      bool
	OK        bool
}

// ranges accumulates running minima and maxima across objects.
type ranges struct {
	xLow, xUp float64
	yLow, yUp float64
	zLow, zUp float64
}

func newRanges() ranges {
	return ranges{
		xLow: math.MaxFloat64, xUp: -math.MaxFloat64,
		yLow: math.MaxFloat64, yUp: -math.MaxFloat64,
		zLow: math.MaxFloat64, zUp: -math.MaxFloat64,
	}
}

func (r *ranges) merge(e data.Extent) {
	r.xLow = math.Min(r.xLow, e.XLow)
	r.xUp = math.Max(r.xUp, e.XUp)
	r.yLow = math.Min(r.yLow, e.YLow)
	r.yUp = math.Max(r.yUp, e.YUp)
}

func (r *ranges) mergeZ(e data.Extent) {
	r.zLow = math.Min(r.zLow, e.ZLow)
	r.zUp = math.Max(r.zUp, e.ZUp)
}

// Compute reconciles the axis ranges for the request's objects.
func Compute(req Request) Result {
	hooks := req.Hooks
	if hooks == nil {
		hooks = observability.Warnings()
	}

	x := normalizeAxis(req.X, "x", hooks)
	y := normalizeAxis(req.Y, "y", hooks)
	z := normalizeAxis(req.Z, "z", hooks)

	userWin := data.Window{
		XLow: x.Low, XUp: x.High,
		YLow: y.Low, YUp: y.High,
		ZLow: z.Low, ZUp: z.High,
		XLog: x.Log, YLog: y.Log, ZLog: z.Log,
		AccountForErrors: req.AccountForErrors,
	}
	bareWin := data.Window{
		XLog: x.Log, YLog: y.Log, ZLog: z.Log,
		AccountForErrors: req.AccountForErrors,
	}

	user := newRanges()
	noUser := newRanges()
	adjustY := true
	hasZ := false
	contributed := false

	for _, obj := range req.Objects {
		switch obj.Kind() {
		case data.KindHist1D, data.KindHist2D, data.KindCurve, data.KindScatter:
		default:
			emit(hooks, observability.WarnUnsupportedObject,
				"cannot derive limits for object %q of kind %q", obj.Name(), obj.Kind())
			continue
		}

		est := obj.Extent(userWin)
		if !est.OK {
			continue
		}
		bare := obj.Extent(bareWin)

		user.merge(est)
		noUser.merge(bare)
		if est.HasZ {
			user.mergeZ(est)
			noUser.mergeZ(bare)
			// A content axis means the y-axis is a data coordinate, not
			// a value range, so it is never padded.
			adjustY = false
			hasZ = true
		}
		contributed = true
	}

	if !contributed {
		return Result{}
	}

	xLow, xUp := user.xLow, user.xUp
	yLow, yUp := user.yLow, user.yUp

	// Never let a user bound clip real data unless forced.
	if y.High != nil && yUp < noUser.yUp && !req.YForce {
		emit(hooks, observability.WarnBoundsAdjusted,
			"upper y-limit %v is too small to fit the data, adjusted to %v", yUp, noUser.yUp)
		yUp = noUser.yUp
	}
	if y.Low != nil && yLow > noUser.yLow && !req.YForce {
		emit(hooks, observability.WarnBoundsAdjusted,
			"lower y-limit %v is too large to fit the data, adjusted to %v", yLow, noUser.yLow)
		yLow = noUser.yLow
	}

	if y.Log {
		if yLow <= 0 {
			yLow = data.MinLogScale
		}
		if noUser.yLow <= 0 {
			noUser.yLow = data.MinLogScale
		}
	}

	// Pad so extrema do not sit exactly on the frame. Ends that are
	// user-fixed or reserved for a legend keep their value.
	if adjustY {
		yDiff := axisSpan(yLow, yUp, y.Log)
		if y.Low == nil && req.ReserveBottom <= 0 {
			if y.Log {
				yLow = math.Pow(10, math.Log10(yLow)-padFraction*yDiff)
			} else {
				yLow -= padFraction * yDiff
			}
		}
		if y.High == nil && req.ReserveTop <= 0 {
			if y.Log {
				yUp = math.Pow(10, math.Log10(yUp)+padFraction*yDiff)
			} else {
				yUp += padFraction * yDiff
			}
		}
	}

	if req.XForce && x.Low != nil && x.High != nil {
		xLow, xUp = *x.Low, *x.High
	}
	if req.YForce && y.Low != nil && y.High != nil {
		yLow, yUp = *y.Low, *y.High
	}

	zLow, zUp := user.zLow, user.zUp
	if !hasZ {
		zLow, zUp = 0, 0
	}

	if z.Log && hasZ && zLow <= 0 {
		emit(hooks, observability.WarnBoundsAdjusted,
			"z-minimum %v is not compatible with a log scale, raised to %v", zLow, data.MinLogScale)
		zLow = data.MinLogScale
	}
	if y.Log && yLow <= 0 {
		emit(hooks, observability.WarnBoundsAdjusted,
			"y-minimum %v is not compatible with a log scale, raised to %v", yLow, data.MinLogScale)
		yLow = data.MinLogScale
	}
	if x.Log && xLow <= 0 {
		emit(hooks, observability.WarnBoundsAdjusted,
			"x-minimum %v is not compatible with a log scale, raised to %v", xLow, data.MinLogScale)
		xLow = data.MinLogScale
	}

	// Reserve vertical space for the legend unless the existing
	// headroom between the constrained and the true data range already
	// covers it.
	if req.ReserveTop > 0 && !req.YForce {
		yDiff := axisSpan(yLow, yUp, y.Log)
		headroom := axisSpan(noUser.yUp, yUp, y.Log)
		if headroom/yDiff < req.ReserveTop {
			spanWithLegend := yDiff / (1 - req.ReserveTop)
			if y.Log {
				yUp = math.Pow(10, math.Log10(yLow)+spanWithLegend+padFraction*yDiff)
			} else {
				yUp = yLow + spanWithLegend + padFraction*yDiff
			}
		}
	} else if req.ReserveBottom > 0 && !req.YForce {
		yDiff := axisSpan(yLow, yUp, y.Log)
		headroom := axisSpan(yLow, noUser.yLow, y.Log)
		if headroom/yDiff < req.ReserveBottom {
			spanWithLegend := yDiff / (1 - req.ReserveBottom)
			if y.Log {
				yLow = math.Pow(10, math.Log10(yUp)-spanWithLegend-padFraction*yDiff)
			} else {
				yLow = yUp - spanWithLegend - padFraction*yDiff
			}
		}
	}

	return Result{
		XLow: xLow, XUp: xUp,
		YLow: yLow, YUp: yUp,
		ZLow: zLow, ZUp: zUp,
		HasZ: hasZ,
		OK:   true,
	}
}

// normalizeAxis swaps reversed user bounds with a warning.
func normalizeAxis(a Axis, name string, hooks observability.WarningHooks) Axis {
	if a.Low != nil && a.High != nil && *a.High < *a.Low {
		emit(hooks, observability.WarnBoundsAdjusted,
			"minimum %v is larger than maximum %v on the %s-axis, swapping them", *a.Low, *a.High, name)
		a.Low, a.High = a.High, a.Low
	}
	return a
}

// axisSpan is the distance between two axis values, measured in decades
// on a log axis.
func axisSpan(low, up float64, log bool) float64 {
	if log {
		return math.Log10(up) - math.Log10(low)
	}
	return up - low
}

func emit(h observability.WarningHooks, code observability.WarningCode, format string, args ...any) {
	h.OnWarning(observability.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}
