package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/gridplot/pkg/errors"
	"github.com/matzehuels/gridplot/pkg/layout"
	"github.com/matzehuels/gridplot/pkg/render/svg"
)

// Format is a supported output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// DefaultPNGScale is the rasterization scale used when saving PNG files.
const DefaultPNGScale = 2.0

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON}
}

// ParseFormat reads a format name or file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported output format %q, supported: svg, png, pdf, json", s)
}

// Render produces the figure in the given format. JSON output is the
// layout document itself, so a rendered figure can be reloaded and
// rendered again elsewhere.
func Render(doc layout.Figure, format Format, opts ...svg.Option) ([]byte, error) {
	switch format {
	case FormatSVG:
		return svg.RenderSVG(doc, opts...), nil
	case FormatPNG:
		return ToPNG(svg.RenderSVG(doc, opts...), DefaultPNGScale)
	case FormatPDF:
		return ToPDF(svg.RenderSVG(doc, opts...))
	case FormatJSON:
		return layout.MarshalFigure(doc)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"unsupported output format %q", format)
}

// Save renders the figure and writes it to path, picking the format
// from the file extension.
func Save(doc layout.Figure, path string, opts ...svg.Option) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	out, err := Render(doc, format, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
