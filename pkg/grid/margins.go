package grid

import (
	"github.com/matzehuels/gridplot/pkg/errors"
)

// Margin is the padding pair for one row or column, as fractions of the
// cell extent. Low is the left (columns) or bottom (rows) side, High the
// right or top side.
type Margin struct {
	Low  float64
	High float64
}

// UniformMargins returns n copies of the symmetric pair (v, v).
func UniformMargins(v float64, n int) []Margin {
	return RepeatMargin(Margin{Low: v, High: v}, n)
}

// RepeatMargin returns n copies of the given pair.
func RepeatMargin(m Margin, n int) []Margin {
	if n <= 0 {
		return nil
	}
	out := make([]Margin, n)
	for i := range out {
		out[i] = m
	}
	return out
}

// normalizeMargins expands a margin specification to exactly one pair per
// row or column. A nil slice yields the default margin on every side, a
// single pair is broadcast to every row or column, and an explicit slice
// must already have length n.
func normalizeMargins(margins []Margin, n int, axis string) ([]Margin, error) {
	if margins == nil {
		return UniformMargins(DefaultMargin, n), nil
	}
	if len(margins) == 1 && n > 1 {
		return RepeatMargin(margins[0], n), nil
	}
	if len(margins) != n {
		return nil, errors.New(errors.ErrCodeInvalidMargin,
			"%s margins: expected %d pairs, got %d", axis, n, len(margins))
	}
	out := make([]Margin, n)
	copy(out, margins)
	return out, nil
}

// normalizeRatios expands a ratio specification to exactly one positive
// value per row or column. A nil slice yields equal ratios.
func normalizeRatios(ratios []float64, n int, axis string) ([]float64, error) {
	if ratios == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}
	if len(ratios) != n {
		return nil, errors.New(errors.ErrCodeInvalidRatio,
			"%s ratios: expected %d values, got %d", axis, n, len(ratios))
	}
	out := make([]float64, n)
	for i, r := range ratios {
		if r <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidRatio,
				"%s ratios: value %v at index %d must be positive", axis, r, i)
		}
		out[i] = r
	}
	return out, nil
}
