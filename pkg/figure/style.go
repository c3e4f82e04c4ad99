package figure

import "github.com/matzehuels/gridplot/pkg/errors"

// Fill style codes understood by the renderers.
const (
	FillEmpty   = 0
	FillSolid   = 1
	FillDotted  = 3001
	FillHatched = 3004
)

// Default style cycles. The colors approximate the cyan, pink, dark
// blue, dark teal, olive and orange entries of the classic ROOT
// palette.
var (
	DefaultColors       = []string{"#33CCCC", "#D9608C", "#1A1AB2", "#00804D", "#807326", "#FF661A"}
	DefaultLineWidths   = []int{2}
	DefaultLineStyles   = []int{1, 7, 10}
	DefaultMarkerSizes  = []float64{1}
	DefaultMarkerStyles = []int{20, 21, 22, 23, 34}
	DefaultFillStyles   = []int{FillEmpty}
	DefaultFillAlphas   = []float64{1}
)

// FillStyleCode translates a fill style name into its numeric code.
func FillStyleCode(name string) (int, error) {
	switch name {
	case "empty":
		return FillEmpty, nil
	case "solid":
		return FillSolid, nil
	case "dotted":
		return FillDotted, nil
	case "hatched":
		return FillHatched, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidStyle, "unknown fill style %q", name)
}

// Style bundles the visual attributes applied to one drawn object.
// Colors are hex strings; line, marker and fill styles are the numeric
// codes the renderers map to dash patterns, marker shapes and fill
// patterns.
type Style struct {
	LineWidth int
	LineStyle int
	LineColor string

	MarkerSize  float64
	MarkerStyle int
	MarkerColor string

	FillStyle int
	FillColor string
	FillAlpha float64
}

// Cycles overrides individual attribute lists used by GenerateStyles.
// Empty lists keep the package defaults.
type Cycles struct {
	LineWidths   []int
	LineStyles   []int
	LineColors   []string
	MarkerSizes  []float64
	MarkerStyles []int
	MarkerColors []string
	FillStyles   []int
	FillColors   []string
	FillAlphas   []float64
}

// GenerateStyles produces n styles by walking each attribute list
// independently, wrapping every list as it runs out. With the defaults
// this yields distinct color/marker combinations for the first handful
// of objects and repeats beyond that.
func GenerateStyles(n int, c Cycles) []Style {
	lineWidths := orDefault(c.LineWidths, DefaultLineWidths)
	lineStyles := orDefault(c.LineStyles, DefaultLineStyles)
	lineColors := orDefault(c.LineColors, DefaultColors)
	markerSizes := orDefault(c.MarkerSizes, DefaultMarkerSizes)
	markerStyles := orDefault(c.MarkerStyles, DefaultMarkerStyles)
	markerColors := orDefault(c.MarkerColors, DefaultColors)
	fillStyles := orDefault(c.FillStyles, DefaultFillStyles)
	fillColors := orDefault(c.FillColors, DefaultColors)
	fillAlphas := orDefault(c.FillAlphas, DefaultFillAlphas)

	styles := make([]Style, n)
	for i := range styles {
		styles[i] = Style{
			LineWidth:   lineWidths[i%len(lineWidths)],
			LineStyle:   lineStyles[i%len(lineStyles)],
			LineColor:   lineColors[i%len(lineColors)],
			MarkerSize:  markerSizes[i%len(markerSizes)],
			MarkerStyle: markerStyles[i%len(markerStyles)],
			MarkerColor: markerColors[i%len(markerColors)],
			FillStyle:   fillStyles[i%len(fillStyles)],
			FillColor:   fillColors[i%len(fillColors)],
			FillAlpha:   fillAlphas[i%len(fillAlphas)],
		}
	}
	return styles
}

func orDefault[T any](override, def []T) []T {
	if len(override) > 0 {
		return override
	}
	return def
}
