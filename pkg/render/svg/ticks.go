package svg

import (
	"math"
	"strconv"
)

// maxLinearTicks bounds how many major ticks a linear axis gets.
const maxLinearTicks = 6

// linearTicks places major ticks on a 1-2-5 step ladder inside
// [low, up].
func linearTicks(low, up float64) []float64 {
	span := up - low
	if span <= 0 {
		return nil
	}

	raw := span / maxLinearTicks
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, s := range []float64{1, 2, 5} {
		if s*mag >= raw {
			step = s * mag
			break
		}
	}

	eps := span * 1e-9
	var ticks []float64
	for v := math.Ceil((low-eps)/step) * step; v <= up+eps; v += step {
		// Snap values like 0.30000000000000004 back onto the grid.
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

// logTicks places major ticks on powers of ten and minor ticks on the
// 2..9 multiples in between. Minor ticks are omitted once the range
// spans too many decades to keep them readable.
func logTicks(low, up float64) (major, minor []float64) {
	if low <= 0 || up <= low {
		return nil, nil
	}

	lowExp := math.Log10(low)
	upExp := math.Log10(up)
	for k := math.Ceil(lowExp - 1e-9); k <= upExp+1e-9; k++ {
		major = append(major, math.Pow(10, k))
	}

	if upExp-lowExp > 4 {
		return major, nil
	}
	for k := math.Floor(lowExp); k <= upExp; k++ {
		base := math.Pow(10, k)
		for m := 2.0; m <= 9; m++ {
			v := m * base
			if v > low && v < up {
				minor = append(minor, v)
			}
		}
	}
	return major, minor
}

// formatTick renders a tick value with at most four significant
// digits, switching to scientific notation beyond that.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'g', 4, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
