package grid

import (
	"testing"

	"github.com/matzehuels/gridplot/pkg/errors"
)

func TestUniformMargins(t *testing.T) {
	got := UniformMargins(0.05, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 pairs, got %d", len(got))
	}
	for i, m := range got {
		if m.Low != 0.05 || m.High != 0.05 {
			t.Errorf("pair %d = %+v, want {0.05 0.05}", i, m)
		}
	}
}

func TestRepeatMargin(t *testing.T) {
	got := RepeatMargin(Margin{Low: 0.1, High: 0.2}, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(got))
	}
	for i, m := range got {
		if m.Low != 0.1 || m.High != 0.2 {
			t.Errorf("pair %d = %+v, want {0.1 0.2}", i, m)
		}
	}
}

func TestNormalizeMargins(t *testing.T) {
	tests := []struct {
		name    string
		margins []Margin
		n       int
		wantErr bool
		wantLen int
	}{
		{
			name:    "nil applies defaults",
			margins: nil,
			n:       3,
			wantLen: 3,
		},
		{
			name:    "matching length passes through",
			margins: []Margin{{0, 0}, {0, 0}, {0.1, 0.1}},
			n:       3,
			wantLen: 3,
		},
		{
			name:    "single pair broadcasts to three columns",
			margins: []Margin{{0.1, 0.2}},
			n:       3,
			wantLen: 3,
		},
		{
			name:    "length mismatch fails",
			margins: []Margin{{0, 0}, {0, 0}},
			n:       3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeMargins(tt.margins, tt.n, "column")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidMargin {
					t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidMargin)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("length = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestNormalizeMarginsBroadcastValues(t *testing.T) {
	got, err := normalizeMargins([]Margin{{0.1, 0.2}}, 3, "column")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("length = %d, want 3", len(got))
	}
	for i, m := range got {
		if m.Low != 0.1 || m.High != 0.2 {
			t.Errorf("pair %d = %+v, want {0.1 0.2}", i, m)
		}
	}
}

func TestNormalizeMarginsPassthroughValues(t *testing.T) {
	in := []Margin{{0.1, 0}, {0, 0}, {0, 0.2}}
	got, err := normalizeMargins(in, 3, "column")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got[i], in[i])
		}
	}
}

func TestNormalizeRatios(t *testing.T) {
	tests := []struct {
		name    string
		ratios  []float64
		n       int
		wantErr bool
	}{
		{
			name:   "nil becomes equal ratios",
			ratios: nil,
			n:      4,
		},
		{
			name:   "matching length passes",
			ratios: []float64{1, 2, 1},
			n:      3,
		},
		{
			name:    "length mismatch fails",
			ratios:  []float64{1, 2},
			n:       3,
			wantErr: true,
		},
		{
			name:    "zero ratio fails",
			ratios:  []float64{1, 0, 1},
			n:       3,
			wantErr: true,
		},
		{
			name:    "negative ratio fails",
			ratios:  []float64{1, -2, 1},
			n:       3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeRatios(tt.ratios, tt.n, "width")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidRatio {
					t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidRatio)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.n {
				t.Errorf("length = %d, want %d", len(got), tt.n)
			}
		})
	}
}
