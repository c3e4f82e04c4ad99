package figure

import (
	"testing"

	"github.com/matzehuels/gridplot/pkg/errors"
)

func TestGenerateStylesCyclesDefaults(t *testing.T) {
	styles := GenerateStyles(7, Cycles{})
	if len(styles) != 7 {
		t.Fatalf("got %d styles, want 7", len(styles))
	}

	// Each attribute list wraps independently.
	if styles[6].LineColor != DefaultColors[0] {
		t.Errorf("style 6 line color = %q, want wrap to %q", styles[6].LineColor, DefaultColors[0])
	}
	if styles[5].MarkerStyle != DefaultMarkerStyles[0] {
		t.Errorf("style 5 marker style = %d, want wrap to %d", styles[5].MarkerStyle, DefaultMarkerStyles[0])
	}
	if styles[3].LineStyle != DefaultLineStyles[0] {
		t.Errorf("style 3 line style = %d, want wrap to %d", styles[3].LineStyle, DefaultLineStyles[0])
	}

	for i, s := range styles {
		if s.LineWidth != 2 {
			t.Errorf("style %d line width = %d, want 2", i, s.LineWidth)
		}
		if s.MarkerSize != 1 {
			t.Errorf("style %d marker size = %v, want 1", i, s.MarkerSize)
		}
		if s.FillStyle != FillEmpty {
			t.Errorf("style %d fill style = %d, want empty", i, s.FillStyle)
		}
		if s.FillAlpha != 1 {
			t.Errorf("style %d fill alpha = %v, want 1", i, s.FillAlpha)
		}
	}
}

func TestGenerateStylesOverrides(t *testing.T) {
	styles := GenerateStyles(3, Cycles{
		LineColors: []string{"#000000"},
		FillStyles: []int{FillSolid, FillHatched},
	})

	for i, s := range styles {
		if s.LineColor != "#000000" {
			t.Errorf("style %d line color = %q, want #000000", i, s.LineColor)
		}
		// Marker colors keep the default palette.
		if s.MarkerColor != DefaultColors[i%len(DefaultColors)] {
			t.Errorf("style %d marker color = %q, want %q", i, s.MarkerColor, DefaultColors[i])
		}
	}
	wantFills := []int{FillSolid, FillHatched, FillSolid}
	for i, want := range wantFills {
		if styles[i].FillStyle != want {
			t.Errorf("style %d fill = %d, want %d", i, styles[i].FillStyle, want)
		}
	}
}

func TestFillStyleCode(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"empty", FillEmpty},
		{"solid", FillSolid},
		{"dotted", FillDotted},
		{"hatched", FillHatched},
	}
	for _, tt := range tests {
		got, err := FillStyleCode(tt.name)
		if err != nil {
			t.Errorf("FillStyleCode(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FillStyleCode(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}

	if _, err := FillStyleCode("striped"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("FillStyleCode(striped) error = %v, want %s", err, errors.ErrCodeInvalidStyle)
	}
}
