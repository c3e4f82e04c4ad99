package geom

import (
	"math"
	"testing"
)

func TestRectWidth(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{
			name: "positive width",
			rect: Rect{Left: 0.1, Right: 0.5},
			want: 0.4,
		},
		{
			name: "zero width",
			rect: Rect{Left: 0.3, Right: 0.3},
			want: 0,
		},
		{
			name: "full span",
			rect: Rect{Left: 0, Right: 1},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Width(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Width() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectHeight(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{
			name: "positive height",
			rect: Rect{Bottom: 0.2, Top: 0.8},
			want: 0.6,
		},
		{
			name: "zero height",
			rect: Rect{Bottom: 0.5, Top: 0.5},
			want: 0,
		},
		{
			name: "full span",
			rect: Rect{Bottom: 0, Top: 1},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Height(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Height() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCenterAndArea(t *testing.T) {
	r := Rect{Left: 0.1, Bottom: 0.2, Right: 0.6, Top: 0.7}

	if got := r.CenterX(); math.Abs(got-0.35) > 1e-12 {
		t.Errorf("CenterX() = %v, want 0.35", got)
	}
	if got := r.CenterY(); math.Abs(got-0.45) > 1e-12 {
		t.Errorf("CenterY() = %v, want 0.45", got)
	}
	if got := r.Area(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Area() = %v, want 0.25", got)
	}
}

func TestMapValue(t *testing.T) {
	tests := []struct {
		name                   string
		value                  float64
		oldMin, oldMax         float64
		newMin, newMax         float64
		want                   float64
	}{
		{
			name:  "identity",
			value: 0.5, oldMin: 0, oldMax: 1, newMin: 0, newMax: 1,
			want: 0.5,
		},
		{
			name:  "scale up",
			value: 0.5, oldMin: 0, oldMax: 1, newMin: 0, newMax: 10,
			want: 5,
		},
		{
			name:  "offset interval",
			value: 5, oldMin: 0, oldMax: 10, newMin: 100, newMax: 200,
			want: 150,
		},
		{
			name:  "inverted target",
			value: 0, oldMin: 0, oldMax: 1, newMin: 1, newMax: 0,
			want: 1,
		},
		{
			name:  "degenerate source returns target midpoint",
			value: 7, oldMin: 3, oldMax: 3, newMin: 0, newMax: 10,
			want: 5,
		},
		{
			name:  "outside source extrapolates",
			value: 2, oldMin: 0, oldMax: 1, newMin: 0, newMax: 10,
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapValue(tt.value, tt.oldMin, tt.oldMax, tt.newMin, tt.newMax)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MapValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
