package layout

import (
	"path/filepath"
	"strings"
	"testing"
)

func sampleFigure() Figure {
	return Figure{
		Name:     "fig_1",
		WidthPx:  600,
		HeightPx: 400,
		Pads: []Pad{
			{
				Name: "fig_1_pad_0",
				X0:   0, Y0: 0, X1: 1, Y1: 1,
				MarginLeft: 0.1, MarginRight: 0.05, MarginBottom: 0.1, MarginTop: 0.05,
				Frame: Frame{
					X: Axis{Low: 0, Up: 4, Title: "x", LabelSizePx: 12, TitleSizePx: 12, TickLengthPx: 4},
					Y: Axis{Low: -2, Up: 22, Title: "y", LabelSizePx: 12, TitleSizePx: 12, TickLengthPx: 4},
				},
				Marks: []Mark{
					{
						Kind:  MarkHist,
						Name:  "h_1",
						Label: "data",
						Style: &StyleAttr{LineWidth: 2, LineStyle: 1, LineColor: "#009999"},
						Hist: &HistData{
							Edges:    []float64{0, 1, 2, 3, 4},
							Contents: []float64{10, 0, 20, 5},
						},
					},
				},
				Legend: &Legend{
					X0: 0.5, Y0: 0.78, X1: 0.89, Y1: 0.86,
					Columns: 1, TextSizePx: 9,
					Entries: []LegendEntry{{Label: "data", Mark: "h_1"}},
				},
				Texts: []Text{{Value: "13 TeV", X: 0.12, Y: 0.8, SizePx: 12}},
			},
		},
	}
}

func TestFigureRoundTrip(t *testing.T) {
	fig := sampleFigure()

	data, err := MarshalFigure(fig)
	if err != nil {
		t.Fatalf("MarshalFigure() error = %v", err)
	}

	got, err := UnmarshalFigure(data)
	if err != nil {
		t.Fatalf("UnmarshalFigure() error = %v", err)
	}

	if got.Name != fig.Name || got.WidthPx != fig.WidthPx || got.HeightPx != fig.HeightPx {
		t.Errorf("header mismatch: got %s %dx%d", got.Name, got.WidthPx, got.HeightPx)
	}
	if len(got.Pads) != 1 {
		t.Fatalf("expected 1 pad, got %d", len(got.Pads))
	}

	pad := got.Pads[0]
	if len(pad.Marks) != 1 || pad.Marks[0].Kind != MarkHist {
		t.Fatalf("expected one hist mark, got %+v", pad.Marks)
	}
	if pad.Marks[0].Hist == nil || len(pad.Marks[0].Hist.Contents) != 4 {
		t.Errorf("hist payload not preserved: %+v", pad.Marks[0].Hist)
	}
	if pad.Marks[0].Style == nil || pad.Marks[0].Style.LineColor != "#009999" {
		t.Errorf("style not preserved: %+v", pad.Marks[0].Style)
	}
	if pad.Legend == nil || len(pad.Legend.Entries) != 1 || pad.Legend.Entries[0].Mark != "h_1" {
		t.Errorf("legend not preserved: %+v", pad.Legend)
	}
	if pad.Frame.Y.Low != -2 || pad.Frame.Y.Up != 22 {
		t.Errorf("frame not preserved: %+v", pad.Frame)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Figure)
		wantErr string
	}{
		{
			name:   "valid figure",
			mutate: func(f *Figure) {},
		},
		{
			name:    "zero width",
			mutate:  func(f *Figure) { f.WidthPx = 0 },
			wantErr: "positive pixel dimensions",
		},
		{
			name:    "degenerate pad",
			mutate:  func(f *Figure) { f.Pads[0].X1 = f.Pads[0].X0 },
			wantErr: "degenerate region",
		},
		{
			name:    "unknown mark kind",
			mutate:  func(f *Figure) { f.Pads[0].Marks[0].Kind = "surface" },
			wantErr: "unknown kind",
		},
		{
			name: "hist mark without payload",
			mutate: func(f *Figure) {
				f.Pads[0].Marks[0].Hist = nil
			},
			wantErr: "must contain hist data",
		},
		{
			name: "curve mark without payload",
			mutate: func(f *Figure) {
				f.Pads[0].Marks[0] = Mark{Kind: MarkCurve, Name: "c_1"}
			},
			wantErr: "must contain curve data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig := sampleFigure()
			tt.mutate(&fig)

			err := Validate(fig)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalFigureRejectsInvalid(t *testing.T) {
	if _, err := UnmarshalFigure([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := UnmarshalFigure([]byte(`{"name":"f","width_px":0,"height_px":100,"pads":[]}`)); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestFigureFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.json")

	if err := WriteFigureFile(sampleFigure(), path); err != nil {
		t.Fatalf("WriteFigureFile() error = %v", err)
	}

	got, err := ReadFigureFile(path)
	if err != nil {
		t.Fatalf("ReadFigureFile() error = %v", err)
	}
	if got.Name != "fig_1" || len(got.Pads) != 1 {
		t.Errorf("file round trip lost content: %s, %d pads", got.Name, len(got.Pads))
	}
}

func TestReadFigureFileMissing(t *testing.T) {
	if _, err := ReadFigureFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
