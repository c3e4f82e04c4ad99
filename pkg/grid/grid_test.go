package grid

import (
	"math"
	"testing"

	"github.com/matzehuels/gridplot/pkg/errors"
	"github.com/matzehuels/gridplot/pkg/geom"
)

const tol = 1e-9

func mustOptions(t *testing.T, o Options) *Options {
	t.Helper()
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	return &o
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantErr  bool
		wantCode errors.Code
	}{
		{
			name: "minimal grid gets defaults",
			opts: Options{Cols: 2, Rows: 3},
		},
		{
			name:     "zero columns fails",
			opts:     Options{Cols: 0, Rows: 1},
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidGrid,
		},
		{
			name:     "negative rows fails",
			opts:     Options{Cols: 1, Rows: -1},
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidGrid,
		},
		{
			name:     "ratio length mismatch fails",
			opts:     Options{Cols: 2, Rows: 1, WidthRatios: []float64{1, 2, 3}},
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidRatio,
		},
		{
			name:     "margin length mismatch fails",
			opts:     Options{Cols: 2, Rows: 1, RowMargins: []Margin{{0, 0}, {0, 0}}},
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := errors.GetCode(err); code != tt.wantCode {
					t.Errorf("error code = %v, want %v", code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.opts.Width != DefaultWidthPx || tt.opts.Height != DefaultHeightPx {
				t.Errorf("size = %dx%d, want %dx%d",
					tt.opts.Width, tt.opts.Height, DefaultWidthPx, DefaultHeightPx)
			}
			if len(tt.opts.WidthRatios) != tt.opts.Cols {
				t.Errorf("width ratios length = %d, want %d", len(tt.opts.WidthRatios), tt.opts.Cols)
			}
			if len(tt.opts.RowMargins) != tt.opts.Rows {
				t.Errorf("row margins length = %d, want %d", len(tt.opts.RowMargins), tt.opts.Rows)
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	o := Options{Cols: 2, Rows: 2, Width: 800}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if o.Width != 800 {
		t.Errorf("width = %d, want 800", o.Width)
	}
}

func TestCheckSpan(t *testing.T) {
	o := mustOptions(t, Options{Cols: 3, Rows: 2})

	tests := []struct {
		name    string
		span    Span
		wantErr bool
	}{
		{name: "single cell", span: Cell(0, 0)},
		{name: "full grid", span: Span{ColLow: 0, RowLow: 0, ColUp: 2, RowUp: 1}},
		{name: "negative column", span: Span{ColLow: -1, ColUp: 0}, wantErr: true},
		{name: "column beyond grid", span: Span{ColLow: 0, ColUp: 3}, wantErr: true},
		{name: "row beyond grid", span: Span{RowLow: 0, RowUp: 2}, wantErr: true},
		{name: "inverted columns", span: Span{ColLow: 2, ColUp: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.CheckSpan(tt.span)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidSpan {
					t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidSpan)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRectEqualRatios(t *testing.T) {
	o := mustOptions(t, Options{Cols: 4, Rows: 3})

	tests := []struct {
		name string
		span Span
		want geom.Rect
	}{
		{
			name: "bottom left cell",
			span: Cell(0, 0),
			want: geom.Rect{Left: 0, Bottom: 0, Right: 0.25, Top: 1.0 / 3},
		},
		{
			name: "top right cell",
			span: Cell(3, 2),
			want: geom.Rect{Left: 0.75, Bottom: 2.0 / 3, Right: 1, Top: 1},
		},
		{
			name: "two by two span",
			span: Span{ColLow: 1, RowLow: 0, ColUp: 2, RowUp: 1},
			want: geom.Rect{Left: 0.25, Bottom: 0, Right: 0.75, Top: 2.0 / 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.Rect(tt.span)
			if err != nil {
				t.Fatalf("Rect: %v", err)
			}
			checkRect(t, got, tt.want)
		})
	}
}

func TestRectAreaProportional(t *testing.T) {
	o := mustOptions(t, Options{Cols: 4, Rows: 3})
	span := Span{ColLow: 1, RowLow: 1, ColUp: 3, RowUp: 2}

	got, err := o.Rect(span)
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	cells := float64((span.ColUp - span.ColLow + 1) * (span.RowUp - span.RowLow + 1))
	want := cells / float64(o.Cols*o.Rows)
	if math.Abs(got.Area()-want) > tol {
		t.Errorf("area = %v, want %v", got.Area(), want)
	}
}

func TestRectRowWidthsSumToOne(t *testing.T) {
	o := mustOptions(t, Options{Cols: 5, Rows: 2, WidthRatios: []float64{3, 1, 2, 1, 5}})

	var sum float64
	for col := 0; col < o.Cols; col++ {
		r, err := o.Rect(Cell(col, 0))
		if err != nil {
			t.Fatalf("Rect col %d: %v", col, err)
		}
		sum += r.Width()
	}
	if math.Abs(sum-1.0) > tol {
		t.Errorf("row width sum = %v, want 1.0", sum)
	}
}

func TestRectTwoColumnScenario(t *testing.T) {
	o := mustOptions(t, Options{Cols: 2, Rows: 1})

	left, err := o.Rect(Cell(0, 0))
	if err != nil {
		t.Fatalf("Rect left: %v", err)
	}
	right, err := o.Rect(Cell(1, 0))
	if err != nil {
		t.Fatalf("Rect right: %v", err)
	}

	checkRect(t, left, geom.Rect{Left: 0, Bottom: 0, Right: 0.5, Top: 1})
	checkRect(t, right, geom.Rect{Left: 0.5, Bottom: 0, Right: 1, Top: 1})
}

func TestRectWeightedRows(t *testing.T) {
	// Row 0 sits at the bottom and takes 3/4 of the height.
	o := mustOptions(t, Options{Cols: 1, Rows: 2, HeightRatios: []float64{3, 1}})

	bottom, err := o.Rect(Cell(0, 0))
	if err != nil {
		t.Fatalf("Rect bottom: %v", err)
	}
	top, err := o.Rect(Cell(0, 1))
	if err != nil {
		t.Fatalf("Rect top: %v", err)
	}

	checkRect(t, bottom, geom.Rect{Left: 0, Bottom: 0, Right: 1, Top: 0.75})
	checkRect(t, top, geom.Rect{Left: 0, Bottom: 0.75, Right: 1, Top: 1})
}

func TestSpanMargins(t *testing.T) {
	o := mustOptions(t, Options{
		Cols:       3,
		Rows:       2,
		ColMargins: []Margin{{0.1, 0.01}, {0.02, 0.03}, {0.04, 0.2}},
		RowMargins: []Margin{{0.15, 0.05}, {0.06, 0.25}},
	})

	tests := []struct {
		name string
		span Span
		want CellMargins
	}{
		{
			name: "single cell keeps its own pairs",
			span: Cell(1, 0),
			want: CellMargins{Left: 0.02, Right: 0.03, Bottom: 0.15, Top: 0.05},
		},
		{
			name: "multi cell span uses outer edges only",
			span: Span{ColLow: 0, RowLow: 0, ColUp: 2, RowUp: 1},
			want: CellMargins{Left: 0.1, Right: 0.2, Bottom: 0.15, Top: 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := o.SpanMargins(tt.span)
			if got != tt.want {
				t.Errorf("SpanMargins = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func checkRect(t *testing.T, got, want geom.Rect) {
	t.Helper()
	if math.Abs(got.Left-want.Left) > tol || math.Abs(got.Bottom-want.Bottom) > tol ||
		math.Abs(got.Right-want.Right) > tol || math.Abs(got.Top-want.Top) > tol {
		t.Errorf("rect = %+v, want %+v", got, want)
	}
}
