package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/gridplot/pkg/layout"
)

func testPad(name string) layout.Pad {
	return layout.Pad{
		Name: name,
		X0:   0, Y0: 0, X1: 1, Y1: 1,
		MarginLeft: 0.1, MarginRight: 0.1, MarginBottom: 0.1, MarginTop: 0.1,
		Frame: layout.Frame{
			X: layout.Axis{Low: 0, Up: 1, LabelSizePx: 12, TickLengthPx: 5},
			Y: layout.Axis{Low: 0, Up: 10, LabelSizePx: 12, TickLengthPx: 5},
		},
	}
}

func testDoc(pads ...layout.Pad) layout.Figure {
	return layout.Figure{Name: "fig", WidthPx: 600, HeightPx: 600, Pads: pads}
}

func TestRenderSVGFrame(t *testing.T) {
	out := string(RenderSVG(testDoc(testPad("pad_0"))))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 600"`,
		`<rect x="0" y="0" width="600" height="600" fill="#FFFFFF"/>`,
		`<g id="pad_0">`,
		`<clipPath id="clip-pad_0">`,
		`stroke="#1A1A1A"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	pad := testPad("pad_0")
	pad.Marks = []layout.Mark{{
		Kind: layout.MarkHist,
		Name: "h_0",
		Hist: &layout.HistData{Edges: []float64{0, 0.5, 1}, Contents: []float64{3, 7}},
	}}
	doc := testDoc(pad)

	a := RenderSVG(doc)
	b := RenderSVG(doc)
	if !bytes.Equal(a, b) {
		t.Fatal("two renders of the same document differ")
	}
}

func TestRenderSVGBackgroundOptions(t *testing.T) {
	doc := testDoc(testPad("pad_0"))

	transparent := string(RenderSVG(doc, WithTransparentBackground()))
	if strings.Contains(transparent, `<rect x="0" y="0"`) {
		t.Error("transparent render still contains a background rect")
	}

	gray := string(RenderSVG(doc, WithBackground("#EEEEEE")))
	if !strings.Contains(gray, `fill="#EEEEEE"`) {
		t.Error("custom background color not applied")
	}

	mono := string(RenderSVG(doc, WithFontFamily("monospace")))
	if !strings.Contains(mono, `font-family="monospace"`) {
		t.Error("custom font family not applied")
	}
}

func TestRenderSVGHistSteps(t *testing.T) {
	pad := testPad("pad_0")
	pad.Marks = []layout.Mark{{
		Kind:  layout.MarkHist,
		Name:  "h_0",
		Style: &layout.StyleAttr{LineWidth: 2, LineStyle: 1, LineColor: "#33CCCC"},
		Hist:  &layout.HistData{Edges: []float64{0, 0.5, 1}, Contents: []float64{3, 7}},
	}}
	out := string(RenderSVG(testDoc(pad)))

	if !strings.Contains(out, `stroke="#33CCCC" stroke-width="2"`) {
		t.Error("hist stroke attributes missing")
	}
	// One horizontal segment per bin and a vertical step between them.
	if !strings.Contains(out, " H") || !strings.Contains(out, " V") {
		t.Error("hist path is not built from step segments")
	}
	if strings.Contains(out, "stroke-dasharray") {
		t.Error("solid line style produced a dash array")
	}
}

func TestRenderSVGHistFill(t *testing.T) {
	pad := testPad("pad_0")
	pad.Marks = []layout.Mark{{
		Kind:  layout.MarkHist,
		Name:  "h_0",
		Style: &layout.StyleAttr{LineWidth: 2, FillStyle: 1, FillColor: "#D9608C", FillAlpha: 0.5},
		Hist:  &layout.HistData{Edges: []float64{0, 0.5, 1}, Contents: []float64{3, 7}},
	}}
	out := string(RenderSVG(testDoc(pad)))

	if !strings.Contains(out, `fill="#D9608C" fill-opacity="0.50"`) {
		t.Error("fill color and alpha missing")
	}
	if !strings.Contains(out, ` Z" fill=`) {
		t.Error("fill path is not closed")
	}
}

func TestRenderSVGHistPatternFill(t *testing.T) {
	pad := testPad("pad_0")
	pad.Marks = []layout.Mark{{
		Kind:  layout.MarkHist,
		Name:  "h_0",
		Style: &layout.StyleAttr{FillStyle: 3004, FillColor: "#1A1AB2"},
		Hist:  &layout.HistData{Edges: []float64{0, 0.5, 1}, Contents: []float64{3, 7}},
	}}
	out := string(RenderSVG(testDoc(pad)))

	if !strings.Contains(out, `<pattern id="fill-h_0"`) {
		t.Error("hatch pattern definition missing")
	}
	if !strings.Contains(out, `fill="url(#fill-h_0)"`) {
		t.Error("fill does not reference the pattern")
	}
}

func TestRenderSVGHistErrorBars(t *testing.T) {
	pad := testPad("pad_0")
	pad.Marks = []layout.Mark{{
		Kind: layout.MarkHist,
		Name: "h_0",
		Hist: &layout.HistData{
			Edges:    []float64{0, 0.5, 1},
			Contents: []float64{3, 7},
			Errors:   []float64{1, 0},
		},
	}}
	out := string(RenderSVG(testDoc(pad)))

	// One bar plus two caps for the single bin with a non-zero error.
	// Axis ticks use the frame color, so the mark color isolates them.
	lines := strings.Count(out, `stroke="#000000"`)
	if lines != 3 {
		t.Errorf("error bar line count = %d, want 3", lines)
	}
}

func TestRenderSVGDashedLineStyles(t *testing.T) {
	tests := []struct {
		style int
		dash  string
	}{
		{1, ""},
		{7, `stroke-dasharray="12,6"`},
		{10, `stroke-dasharray="12,6,3,6"`},
	}
	for _, tt := range tests {
		pad := testPad("pad_0")
		pad.Marks = []layout.Mark{{
			Kind:  layout.MarkCurve,
			Name:  "graph_0",
			Style: &layout.StyleAttr{LineStyle: tt.style},
			Curve: &layout.CurveData{Xs: []float64{0, 1}, Ys: []float64{1, 2}},
		}}
		out := string(RenderSVG(testDoc(pad)))

		if tt.dash == "" {
			if strings.Contains(out, "stroke-dasharray") {
				t.Errorf("style %d: unexpected dash array", tt.style)
			}
		} else if !strings.Contains(out, tt.dash) {
			t.Errorf("style %d: missing %s", tt.style, tt.dash)
		}
	}
}

func TestRenderSVGMarkers(t *testing.T) {
	tests := []struct {
		style int
		want  string
	}{
		{20, `r="4.00" fill="#00804D"`},
		{21, `width="8.00" height="8.00" fill="#00804D"`},
		{22, `<polygon points=`},
		{23, `<polygon points=`},
		{34, `stroke="#00804D" stroke-width="1.5"`},
	}
	for _, tt := range tests {
		pad := testPad("pad_0")
		pad.Marks = []layout.Mark{{
			Kind:    layout.MarkScatter,
			Name:    "graph_0",
			Style:   &layout.StyleAttr{MarkerStyle: tt.style, MarkerSize: 1, MarkerColor: "#00804D"},
			Scatter: &layout.ScatterData{Xs: []float64{0.5}, Ys: []float64{5}},
		}}
		out := string(RenderSVG(testDoc(pad), WithTransparentBackground()))

		if !strings.Contains(out, tt.want) {
			t.Errorf("marker style %d: output missing %s", tt.style, tt.want)
		}
		if !strings.Contains(out, "#00804D") {
			t.Errorf("marker style %d: marker color missing", tt.style)
		}
	}
}

func TestRenderSVGScatterErrors(t *testing.T) {
	pad := testPad("pad_0")
	pad.Marks = []layout.Mark{{
		Kind: layout.MarkScatter,
		Name: "graph_0",
		Scatter: &layout.ScatterData{
			Xs:    []float64{0.5},
			Ys:    []float64{5},
			XErrs: []float64{0.1},
			YErrs: []float64{1},
		},
	}}
	out := string(RenderSVG(testDoc(pad)))

	// Two bars with two caps each, drawn in the default mark color.
	if got := strings.Count(out, `stroke="#000000"`); got != 6 {
		t.Errorf("error bar line count = %d, want 6", got)
	}
	if !strings.Contains(out, `<circle`) {
		t.Error("default marker glyph missing")
	}
}

func TestRenderSVGHist2D(t *testing.T) {
	pad := testPad("pad_0")
	pad.Frame.Z = &layout.Axis{Low: 0, Up: 8}
	pad.Marks = []layout.Mark{{
		Kind: layout.MarkHist2D,
		Name: "h2_0",
		Hist2D: &layout.Hist2DData{
			XEdges:   []float64{0, 0.5, 1},
			YEdges:   []float64{0, 5, 10},
			Contents: [][]float64{{0, 8}, {4, 2}},
		},
	}}
	out := string(RenderSVG(testDoc(pad), WithTransparentBackground()))

	// Zero cells stay unpainted: three cell rects plus the clip path,
	// frame and colorbar rects.
	if got := strings.Count(out, `<rect`); got != 6 {
		t.Errorf("rect count = %d, want 6", got)
	}
	if !strings.Contains(out, `<linearGradient id="zgrad-pad_0"`) {
		t.Error("colorbar gradient missing")
	}
	if !strings.Contains(out, `fill="url(#zgrad-pad_0)"`) {
		t.Error("colorbar does not reference its gradient")
	}
	// The maximum cell takes the last palette color.
	if !strings.Contains(out, heatStops[len(heatStops)-1]) {
		t.Error("maximum cell not painted with the palette endpoint")
	}
}

func TestRenderSVGLinearTickLabels(t *testing.T) {
	out := string(RenderSVG(testDoc(testPad("pad_0"))))

	// X spans [0, 1] so the step ladder lands on 0.2.
	if !strings.Contains(out, ">0.2<") {
		t.Error("x tick label 0.2 missing")
	}
	// Y spans [0, 10] with step 2.
	if !strings.Contains(out, ">4<") {
		t.Error("y tick label 4 missing")
	}
}

func TestRenderSVGLogTicks(t *testing.T) {
	pad := testPad("pad_0")
	pad.Frame.Y = layout.Axis{Low: 1, Up: 1000, Log: true, LabelSizePx: 12, TickLengthPx: 5}
	out := string(RenderSVG(testDoc(pad)))

	for _, want := range []string{">1<", ">10<", ">100<", ">1000<"} {
		if !strings.Contains(out, want) {
			t.Errorf("log tick label %s missing", want)
		}
	}
	// Minor ticks are drawn at half length with a thinner stroke.
	if !strings.Contains(out, `stroke-width="0.7"`) {
		t.Error("minor ticks missing")
	}
}

func TestRenderSVGSuppressedLabels(t *testing.T) {
	pad := testPad("pad_0")
	pad.Frame.X.LabelSizePx = 0
	pad.Frame.X.Title = "mass"
	pad.Frame.X.TitleSizePx = 0
	out := string(RenderSVG(testDoc(pad)))

	if strings.Contains(out, ">0.2<") {
		t.Error("suppressed x labels were drawn")
	}
	if strings.Contains(out, ">mass<") {
		t.Error("suppressed x title was drawn")
	}
	// Ticks survive suppression.
	if !strings.Contains(out, `<line x1=`) {
		t.Error("x ticks missing")
	}
}

func TestRenderSVGAxisTitles(t *testing.T) {
	pad := testPad("pad_0")
	pad.Frame.X.Title = "m [GeV]"
	pad.Frame.X.TitleSizePx = 14
	pad.Frame.Y.Title = "candidates"
	pad.Frame.Y.TitleSizePx = 14
	out := string(RenderSVG(testDoc(pad)))

	if !strings.Contains(out, ">m [GeV]<") {
		t.Error("x title missing")
	}
	if !strings.Contains(out, "rotate(-90") || !strings.Contains(out, ">candidates<") {
		t.Error("rotated y title missing")
	}
}

func TestRenderSVGLegend(t *testing.T) {
	pad := testPad("pad_0")
	pad.Marks = []layout.Mark{{
		Kind:  layout.MarkHist,
		Name:  "h_0",
		Style: &layout.StyleAttr{LineColor: "#33CCCC"},
		Hist:  &layout.HistData{Edges: []float64{0, 1}, Contents: []float64{3}},
	}}
	pad.Legend = &layout.Legend{
		X0: 0.6, Y0: 0.8, X1: 0.9, Y1: 0.9,
		Columns: 1, TextSizePx: 12,
		Entries: []layout.LegendEntry{{Label: "signal", Mark: "h_0"}},
	}
	out := string(RenderSVG(testDoc(pad)))

	if !strings.Contains(out, ">signal<") {
		t.Error("legend label missing")
	}
	if !strings.Contains(out, `fill="#FFFFFF" stroke="#1A1A1A"`) {
		t.Error("legend box missing")
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	pad := testPad("pad_0")
	pad.Texts = []layout.Text{{Value: "E > 5 & m < 2", X: 0.2, Y: 0.8, SizePx: 12}}
	out := string(RenderSVG(testDoc(pad)))

	if !strings.Contains(out, "E &gt; 5 &amp; m &lt; 2") {
		t.Error("annotation text not escaped")
	}
	if strings.Contains(out, ">E > 5") {
		t.Error("raw markup leaked into the output")
	}
}

func TestRenderSVGPadTitle(t *testing.T) {
	pad := testPad("pad_0")
	pad.Title = "fit region"
	pad.TitleSizePx = 16
	out := string(RenderSVG(testDoc(pad)))

	if !strings.Contains(out, ">fit region<") {
		t.Error("pad title missing")
	}
	if !strings.Contains(out, `font-size="16"`) {
		t.Error("pad title size not applied")
	}
}

func TestRenderSVGAnnotationLine(t *testing.T) {
	pad := testPad("pad_0")
	pad.Lines = []layout.Line{{X0: 0, Y0: 5, X1: 1, Y1: 5}}
	out := string(RenderSVG(testDoc(pad), WithTransparentBackground()))

	if !strings.Contains(out, `stroke="#000000" stroke-width="1"`) {
		t.Error("annotation line missing")
	}
}

func TestHeatColorEndpoints(t *testing.T) {
	if got := heatColor(-0.5); got != heatStops[0] {
		t.Errorf("heatColor(-0.5) = %s, want %s", got, heatStops[0])
	}
	if got := heatColor(2); got != heatStops[len(heatStops)-1] {
		t.Errorf("heatColor(2) = %s, want %s", got, heatStops[len(heatStops)-1])
	}
	if got := heatColor(0.5); got != heatStops[2] {
		t.Errorf("heatColor(0.5) = %s, want %s", got, heatStops[2])
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{0.2, "0.2"},
		{0.30000000000000004, "0.3"},
		{1000, "1000"},
		{123456, "1.235e+05"},
		{-2.5, "-2.5"},
	}
	for _, tt := range tests {
		if got := formatTick(tt.v); got != tt.want {
			t.Errorf("formatTick(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestLinearTicksLadder(t *testing.T) {
	tests := []struct {
		low, up float64
		first   float64
		step    float64
	}{
		{0, 1, 0, 0.2},
		{0, 10, 0, 2},
		{3, 4, 3, 0.2},
		{-5, 5, -4, 2},
	}
	for _, tt := range tests {
		ticks := linearTicks(tt.low, tt.up)
		if len(ticks) == 0 {
			t.Errorf("linearTicks(%v, %v) empty", tt.low, tt.up)
			continue
		}
		if ticks[0] != tt.first {
			t.Errorf("linearTicks(%v, %v)[0] = %v, want %v", tt.low, tt.up, ticks[0], tt.first)
		}
		if len(ticks) > 1 {
			got := ticks[1] - ticks[0]
			if diff := got - tt.step; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("linearTicks(%v, %v) step = %v, want %v", tt.low, tt.up, got, tt.step)
			}
		}
		for _, v := range ticks {
			if v < tt.low-1e-9 || v > tt.up+1e-9 {
				t.Errorf("tick %v outside [%v, %v]", v, tt.low, tt.up)
			}
		}
	}
}

func TestLogTicksDecades(t *testing.T) {
	major, minor := logTicks(1, 1000)
	if len(major) != 4 {
		t.Fatalf("major tick count = %d, want 4", len(major))
	}
	for i, want := range []float64{1, 10, 100, 1000} {
		if major[i] != want {
			t.Errorf("major[%d] = %v, want %v", i, major[i], want)
		}
	}
	if len(minor) == 0 {
		t.Error("expected minor ticks inside a 3 decade span")
	}

	// Wide spans drop the minor ticks.
	_, minor = logTicks(1, 1e6)
	if len(minor) != 0 {
		t.Errorf("minor tick count over 6 decades = %d, want 0", len(minor))
	}
}
