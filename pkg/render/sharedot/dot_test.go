package sharedot

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridplot/pkg/data"
	"github.com/matzehuels/gridplot/pkg/figure"
	"github.com/matzehuels/gridplot/pkg/grid"
)

func testFigure(t *testing.T) *figure.Figure {
	t.Helper()
	f, err := figure.New(
		grid.Options{Cols: 2, Rows: 1, Width: 600, Height: 600},
		figure.WithName("fig"),
		figure.WithNamer(figure.NewNamer()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestToDOTNodesAndEdges(t *testing.T) {
	f := testFigure(t)
	left, err := f.DefinePlot(0, 0)
	if err != nil {
		t.Fatalf("DefinePlot: %v", err)
	}
	right, err := f.DefinePlot(1, 0)
	if err != nil {
		t.Fatalf("DefinePlot: %v", err)
	}
	right.ShareY(left)

	dot := ToDOT(f, Options{})

	for _, want := range []string{
		"digraph G {",
		`"plot_0" [label="plot_0"];`,
		`"plot_1" [label="plot_1"];`,
		`"plot_1" -> "plot_0" [label="y", style=dashed];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("dot output missing %q", want)
		}
	}
	if strings.Contains(dot, `[label="x"]`) {
		t.Error("unexpected x share edge")
	}
}

func TestToDOTShareXEdge(t *testing.T) {
	f := testFigure(t)
	left, _ := f.DefinePlot(0, 0)
	right, _ := f.DefinePlot(1, 0)
	right.ShareX(left)

	dot := ToDOT(f, Options{})
	if !strings.Contains(dot, `"plot_1" -> "plot_0" [label="x"];`) {
		t.Error("x share edge missing")
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	f := testFigure(t)
	r, err := f.DefinePlot(0, 0)
	if err != nil {
		t.Fatalf("DefinePlot: %v", err)
	}
	r.Title = "signal region"
	h, err := data.NewHist1D("h", []float64{0, 1, 2}, []float64{3, 5}, nil)
	if err != nil {
		t.Fatalf("NewHist1D: %v", err)
	}
	f.AddObject(h, nil, "")

	dot := ToDOT(f, Options{Detailed: true})

	for _, want := range []string{
		"signal region",
		"cells: (0,0)-(0,0)",
		"objects: 1",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("detailed label missing %q", want)
		}
	}
}

func TestRenderSVGFromDOT(t *testing.T) {
	f := testFigure(t)
	left, _ := f.DefinePlot(0, 0)
	right, _ := f.DefinePlot(1, 0)
	right.ShareY(left)

	svg, err := RenderSVG(ToDOT(f, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "plot_0") {
		t.Error("svg output does not contain the diagram")
	}
	if !strings.Contains(out, `viewBox="0 0 `) {
		t.Error("viewBox was not normalized to the origin")
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte("<svg>no viewbox here</svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("normalizeViewBox altered input without a viewBox: %s", got)
	}
}
