package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/gridplot/pkg/errors"
	"github.com/matzehuels/gridplot/pkg/figure"
	"github.com/matzehuels/gridplot/pkg/observability"
)

func mustParse(t *testing.T, raw string) (*Definition, *observability.Recorder) {
	t.Helper()
	rec := &observability.Recorder{}
	def, err := Parse([]byte(raw), rec)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return def, rec
}

func mustBuild(t *testing.T, def *Definition) *figure.Figure {
	t.Helper()
	f, err := Build(def, figure.WithNamer(figure.NewNamer()))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return f
}

func TestParseMinimal(t *testing.T) {
	def, rec := mustParse(t, `
[figure]
cols = 2
rows = 1

[[plot]]
cells = [0, 0]
`)
	if def.Figure.Cols != 2 || def.Figure.Rows != 1 {
		t.Errorf("grid = %dx%d, want 2x1", def.Figure.Cols, def.Figure.Rows)
	}
	if len(def.Plots) != 1 {
		t.Fatalf("plot count = %d, want 1", len(def.Plots))
	}
	if got := rec.Count(observability.WarnUnknownAttribute); got != 0 {
		t.Errorf("unknown-key warnings = %d, want 0", got)
	}
}

func TestParseWarnsOnUnknownKeys(t *testing.T) {
	_, rec := mustParse(t, `
[figure]
cols = 1
colz = 3

[[plot]]
[plot.x]
loq = true
`)
	if got := rec.Count(observability.WarnUnknownAttribute); got != 2 {
		t.Errorf("unknown-key warnings = %d, want 2", got)
	}
}

func TestParseRejectsBrokenTOML(t *testing.T) {
	_, err := Parse([]byte("[figure]\ncols = ["), nil)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.toml"), nil)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestBuildAppliesDefinition(t *testing.T) {
	def, _ := mustParse(t, `
[figure]
name = "massfit"
cols = 2
rows = 1

[[plot]]
cells = [0, 0]
title = "signal region"

[plot.x]
title = "m [GeV]"
low = 0.0
up = 10.0

[plot.legend]
position = "top left"
columns = 2

[[plot.object]]
kind = "hist"
name = "sig"
label = "signal"
edges = [0.0, 5.0, 10.0]
contents = [4.0, 9.0]

[plot.object.style]
line_color = "#112233"
fill = "solid"
fill_color = "#445566"
fill_alpha = 0.5

[[plot.text]]
value = "preliminary"
x = 0.2
y = 0.8

[[plot.line]]
y0 = 0.5
y1 = 0.5

[[plot]]
cells = [1, 0]
share_y = 0

[[plot.object]]
kind = "scatter"
name = "pts"
xs = [1.0, 9.0]
ys = [3.0, 4.0]
y_errs = [0.5, 0.5]
`)
	f := mustBuild(t, def)

	if f.Name() != "massfit" {
		t.Errorf("name = %q, want massfit", f.Name())
	}
	regions := f.Regions()
	if len(regions) != 2 {
		t.Fatalf("region count = %d, want 2", len(regions))
	}
	r0 := regions[0]
	if r0.Title != "signal region" || r0.XAxis.Title != "m [GeV]" {
		t.Errorf("plot 0 settings not applied: %+v", r0)
	}
	if r0.XAxis.Low == nil || *r0.XAxis.Low != 0 || r0.XAxis.High == nil || *r0.XAxis.High != 10 {
		t.Error("x limits not applied")
	}
	if r0.Legend.Position != "top left" || r0.Legend.Columns != 2 {
		t.Errorf("legend settings not applied: %+v", r0.Legend)
	}
	if regions[1].SharedY() != r0 {
		t.Error("share_y did not wire plot 1 to plot 0")
	}

	if err := f.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	doc, err := f.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(doc.Pads) != 2 {
		t.Fatalf("pad count = %d, want 2", len(doc.Pads))
	}

	pad := doc.Pads[0]
	if len(pad.Marks) != 1 {
		t.Fatalf("pad 0 mark count = %d, want 1", len(pad.Marks))
	}
	st := pad.Marks[0].Style
	if st == nil || st.LineColor != "#112233" || st.FillColor != "#445566" {
		t.Errorf("style overrides not applied: %+v", st)
	}
	if st.FillStyle != figure.FillSolid || st.FillAlpha != 0.5 {
		t.Errorf("fill style = %d alpha %v, want solid 0.5", st.FillStyle, st.FillAlpha)
	}
	if pad.Legend == nil || len(pad.Legend.Entries) != 1 || pad.Legend.Entries[0].Label != "signal" {
		t.Error("legend entry missing")
	}
	if len(pad.Texts) != 1 || pad.Texts[0].Value != "preliminary" {
		t.Error("text annotation missing")
	}
	if len(pad.Lines) != 1 {
		t.Error("line annotation missing")
	}
}

func TestBuildHistShorthand(t *testing.T) {
	def, _ := mustParse(t, `
[[plot]]

[[plot.object]]
kind = "hist"
bins = 4
range = [0.0, 8.0]
contents = [1.0, 2.0, 3.0, 4.0]
`)
	f := mustBuild(t, def)
	if got := f.Regions()[0].ObjectCount(); got != 1 {
		t.Fatalf("object count = %d, want 1", got)
	}
	if err := f.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestBuildHist2D(t *testing.T) {
	def, _ := mustParse(t, `
[[plot]]

[[plot.object]]
kind = "hist2d"
name = "occupancy"
x_edges = [0.0, 1.0, 2.0]
y_edges = [0.0, 1.0]
cells = [[3.0], [7.0]]
`)
	f := mustBuild(t, def)
	if err := f.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	doc, err := f.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if doc.Pads[0].Frame.Z == nil {
		t.Error("hist2d pad has no z axis")
	}
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	def, _ := mustParse(t, `
[[plot]]

[[plot.object]]
kind = "spline"
xs = [1.0]
ys = [2.0]
`)
	_, err := Build(def, figure.WithNamer(figure.NewNamer()))
	if !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidData)
	}
}

func TestBuildRejectsUnknownFill(t *testing.T) {
	def, _ := mustParse(t, `
[[plot]]

[[plot.object]]
kind = "hist"
edges = [0.0, 1.0]
contents = [1.0]

[plot.object.style]
fill = "striped"
`)
	_, err := Build(def, figure.WithNamer(figure.NewNamer()))
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidStyle)
	}
}

func TestBuildRejectsBadShareIndex(t *testing.T) {
	def, _ := mustParse(t, `
[figure]
cols = 2

[[plot]]
share_x = 5
`)
	_, err := Build(def, figure.WithNamer(figure.NewNamer()))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestBuildRejectsBadMarginPair(t *testing.T) {
	def, _ := mustParse(t, `
[figure]
col_margins = [[0.1]]

[[plot]]
`)
	_, err := Build(def, figure.WithNamer(figure.NewNamer()))
	if !errors.Is(err, errors.ErrCodeInvalidMargin) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidMargin)
	}
}

func TestBuildMarginShorthand(t *testing.T) {
	def, _ := mustParse(t, `
[figure]
cols = 2
margin = 0.1

[[plot]]
`)
	f := mustBuild(t, def)
	opts := f.Grid()
	if opts.ColMargins[0].Low != 0.1 || opts.ColMargins[1].High != 0.1 {
		t.Errorf("margin shorthand not applied: %+v", opts.ColMargins)
	}
}

func TestBuildMarginSinglePairBroadcasts(t *testing.T) {
	def, _ := mustParse(t, `
[figure]
cols = 3
col_margins = [[0.1, 0.2]]

[[plot]]
`)
	f := mustBuild(t, def)
	opts := f.Grid()
	if len(opts.ColMargins) != 3 {
		t.Fatalf("column margins = %d pairs, want 3", len(opts.ColMargins))
	}
	for i, m := range opts.ColMargins {
		if m.Low != 0.1 || m.High != 0.2 {
			t.Errorf("pair %d = %+v, want {0.1 0.2}", i, m)
		}
	}
}

func TestBuildRejectsBadOrientation(t *testing.T) {
	def, _ := mustParse(t, `
[[plot]]

[[plot.line]]
y0 = 0.5
y_orientation = "sideways"
`)
	_, err := Build(def, figure.WithNamer(figure.NewNamer()))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fig.toml")
	raw := `
[figure]
name = "loaded"

[[plot]]

[[plot.object]]
kind = "hist"
edges = [0.0, 1.0, 2.0]
contents = [3.0, 5.0]
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rec := &observability.Recorder{}
	f, err := Load(path, rec, figure.WithNamer(figure.NewNamer()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Name() != "loaded" {
		t.Errorf("name = %q, want loaded", f.Name())
	}
	if err := f.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
}
