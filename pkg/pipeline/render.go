package pipeline

import (
	"fmt"

	"github.com/matzehuels/gridplot/pkg/layout"
	"github.com/matzehuels/gridplot/pkg/render"
	"github.com/matzehuels/gridplot/pkg/render/svg"
)

// Render generates output artifacts in the requested formats. The SVG
// is rendered once and reused for the PNG and PDF conversions; JSON
// output is the layout document itself, so a rendered figure can be
// reloaded and rendered again elsewhere.
func Render(doc layout.Figure, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	var svgData []byte
	renderSVG := func() []byte {
		if svgData == nil {
			svgData = svg.RenderSVG(doc, opts.svgOptions()...)
		}
		return svgData
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = renderSVG()
		case FormatPNG:
			data, err = render.ToPNG(renderSVG(), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(renderSVG())
		case FormatJSON:
			data, err = layout.MarshalFigure(doc)
		default:
			err = fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
