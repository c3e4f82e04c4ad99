package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridplot/pkg/data"
	"github.com/matzehuels/gridplot/pkg/errors"
	"github.com/matzehuels/gridplot/pkg/figure"
	"github.com/matzehuels/gridplot/pkg/grid"
	"github.com/matzehuels/gridplot/pkg/observability"
)

// Parse decodes a TOML figure definition. Keys the schema does not
// know are reported through hooks as unknown-attribute warnings and
// otherwise ignored; nil hooks route to the global warning hooks.
func Parse(raw []byte, hooks observability.WarningHooks) (*Definition, error) {
	if hooks == nil {
		hooks = observability.Warnings()
	}

	var def Definition
	md, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&def)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse figure definition")
	}
	for _, key := range md.Undecoded() {
		hooks.OnWarning(observability.Warning{
			Code:    observability.WarnUnknownAttribute,
			Message: "unknown key " + key.String() + " in figure definition",
		})
	}
	return &def, nil
}

// ParseFile reads and decodes a TOML figure definition file.
func ParseFile(path string, hooks observability.WarningHooks) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read figure definition %s", path)
	}
	return Parse(raw, hooks)
}

// Build assembles the figure a definition describes. The returned
// figure is fully populated but not yet created, so callers can still
// adjust regions before Create runs.
func Build(def *Definition, options ...figure.Option) (*figure.Figure, error) {
	opts, err := gridOptions(def.Figure)
	if err != nil {
		return nil, err
	}

	if def.Figure.Name != "" {
		options = append(options, figure.WithName(def.Figure.Name))
	}
	f, err := figure.New(opts, options...)
	if err != nil {
		return nil, err
	}

	regions := make([]*figure.Region, len(def.Plots))
	for i := range def.Plots {
		r, err := buildPlot(f, &def.Plots[i])
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "plot %d", i)
		}
		regions[i] = r
	}

	// Share targets may be defined after the plots referencing them,
	// so wiring happens once every region exists.
	for i, p := range def.Plots {
		if p.ShareX != nil {
			src, err := shareTarget(regions, i, *p.ShareX, "x")
			if err != nil {
				return nil, err
			}
			regions[i].ShareX(src)
		}
		if p.ShareY != nil {
			src, err := shareTarget(regions, i, *p.ShareY, "y")
			if err != nil {
				return nil, err
			}
			regions[i].ShareY(src)
		}
	}
	return f, nil
}

// Load is the one-call path from a definition file to a figure.
func Load(path string, hooks observability.WarningHooks, options ...figure.Option) (*figure.Figure, error) {
	def, err := ParseFile(path, hooks)
	if err != nil {
		return nil, err
	}
	if hooks != nil {
		options = append([]figure.Option{figure.WithHooks(hooks)}, options...)
	}
	return Build(def, options...)
}

func gridOptions(fd FigureDef) (grid.Options, error) {
	cols, rows := fd.Cols, fd.Rows
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}

	opts := grid.Options{
		Cols:         cols,
		Rows:         rows,
		WidthRatios:  fd.WidthRatios,
		HeightRatios: fd.HeightRatios,
		Width:        fd.Width,
		Height:       fd.Height,
	}

	if fd.Margin != nil {
		opts.ColMargins = grid.UniformMargins(*fd.Margin, cols)
		opts.RowMargins = grid.UniformMargins(*fd.Margin, rows)
	}
	if fd.ColMargins != nil {
		m, err := marginPairs(fd.ColMargins, "col_margins")
		if err != nil {
			return grid.Options{}, err
		}
		opts.ColMargins = m
	}
	if fd.RowMargins != nil {
		m, err := marginPairs(fd.RowMargins, "row_margins")
		if err != nil {
			return grid.Options{}, err
		}
		opts.RowMargins = m
	}
	return opts, nil
}

func marginPairs(pairs [][]float64, key string) ([]grid.Margin, error) {
	out := make([]grid.Margin, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidMargin,
				"%s[%d] must be a [low, high] pair, got %d values", key, i, len(p))
		}
		out[i] = grid.Margin{Low: p[0], High: p[1]}
	}
	return out, nil
}

func buildPlot(f *figure.Figure, p *PlotDef) (*figure.Region, error) {
	r, err := f.DefinePlot(p.Cells...)
	if err != nil {
		return nil, err
	}

	r.Title = p.Title
	applyAxis(&r.XAxis, p.X)
	applyAxis(&r.YAxis, p.Y)
	applyAxis(&r.ZAxis, p.Z)
	applyLegend(&r.Legend, p.Legend)

	for i := range p.Objects {
		obj, style, err := buildObject(&p.Objects[i])
		if err != nil {
			return nil, err
		}
		r.AddObject(obj, style, p.Objects[i].Label)
	}
	for _, t := range p.Texts {
		spec := figure.TextSpec{Text: t.Value, X: t.X, Y: t.Y}
		if t.Size != nil {
			spec.Size = *t.Size
		}
		r.AddText(spec)
	}
	for _, l := range p.Lines {
		spec, err := buildLine(l)
		if err != nil {
			return nil, err
		}
		r.AddLine(spec)
	}
	return r, nil
}

func applyAxis(dst *figure.AxisConfig, a *AxisDef) {
	if a == nil {
		return
	}
	if a.Title != "" {
		dst.Title = a.Title
	}
	if a.Low != nil {
		dst.Low = a.Low
	}
	if a.Up != nil {
		dst.High = a.Up
	}
	if a.Log != nil {
		dst.Log = *a.Log
	}
	if a.LabelSize != nil {
		dst.LabelSize = *a.LabelSize
	}
	if a.TitleSize != nil {
		dst.TitleSize = *a.TitleSize
	}
	if a.TickSize != nil {
		dst.TickSize = *a.TickSize
	}
	if a.AccountForErrors != nil {
		dst.AccountForErrors = *a.AccountForErrors
	}
}

func applyLegend(dst *figure.LegendConfig, l *LegendDef) {
	if l == nil {
		return
	}
	if l.Position != "" {
		dst.Position = l.Position
	}
	if l.TextSize != nil {
		dst.TextSize = *l.TextSize
	}
	if l.Columns != nil {
		dst.Columns = *l.Columns
	}
}

func buildObject(o *ObjectDef) (data.Boundable, *figure.Style, error) {
	name := o.Name
	if name == "" {
		name = o.Kind
	}

	var (
		obj data.Boundable
		err error
	)
	switch o.Kind {
	case "hist":
		obj, err = buildHist(name, o)
	case "hist2d":
		obj, err = data.NewHist2D(name, o.XEdges, o.YEdges, o.Cells)
	case "scatter":
		obj, err = buildScatter(name, o)
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidData,
			"object %q has unsupported kind %q, supported: hist, hist2d, scatter", name, o.Kind)
	}
	if err != nil {
		return nil, nil, err
	}

	if o.Titles != nil {
		obj.SetTitles(data.Titles{X: o.Titles.X, Y: o.Titles.Y, Z: o.Titles.Z})
	}

	style, err := buildStyle(o.Style)
	if err != nil {
		return nil, nil, err
	}
	return obj, style, nil
}

func buildHist(name string, o *ObjectDef) (*data.Hist1D, error) {
	if o.Bins > 0 {
		if len(o.Range) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidData,
				"object %q uses bins but range is not a [min, max] pair", name)
		}
		return data.NewHist1DUniform(name, o.Bins, o.Range[0], o.Range[1], o.Contents, o.Errors)
	}
	return data.NewHist1D(name, o.Edges, o.Contents, o.Errors)
}

func buildScatter(name string, o *ObjectDef) (*data.Scatter, error) {
	s, err := data.NewScatter(name, o.Xs, o.Ys)
	if err != nil {
		return nil, err
	}
	if o.XErrs != nil || o.YErrs != nil {
		if err := s.SetErrors(o.XErrs, o.YErrs); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// buildStyle starts from the first default cycle entry so partial
// overrides still yield a complete style.
func buildStyle(s *StyleDef) (*figure.Style, error) {
	if s == nil {
		return nil, nil
	}

	st := figure.GenerateStyles(1, figure.Cycles{})[0]
	if s.LineWidth != nil {
		st.LineWidth = *s.LineWidth
	}
	if s.LineStyle != nil {
		st.LineStyle = *s.LineStyle
	}
	if s.LineColor != "" {
		st.LineColor = s.LineColor
	}
	if s.MarkerSize != nil {
		st.MarkerSize = *s.MarkerSize
	}
	if s.MarkerStyle != nil {
		st.MarkerStyle = *s.MarkerStyle
	}
	if s.MarkerColor != "" {
		st.MarkerColor = s.MarkerColor
	}
	if s.Fill != "" {
		code, err := figure.FillStyleCode(s.Fill)
		if err != nil {
			return nil, err
		}
		st.FillStyle = code
	}
	if s.FillColor != "" {
		st.FillColor = s.FillColor
	}
	if s.FillAlpha != nil {
		st.FillAlpha = *s.FillAlpha
	}
	return &st, nil
}

func buildLine(l LineDef) (figure.LineSpec, error) {
	xo, err := parseOrientation(l.XOrientation)
	if err != nil {
		return figure.LineSpec{}, err
	}
	yo, err := parseOrientation(l.YOrientation)
	if err != nil {
		return figure.LineSpec{}, err
	}
	return figure.LineSpec{
		X0: l.X0, X1: l.X1,
		Y0: l.Y0, Y1: l.Y1,
		XOrientation: xo,
		YOrientation: yo,
	}, nil
}

func parseOrientation(s string) (figure.Orientation, error) {
	switch s {
	case "", string(figure.Relative):
		return figure.Relative, nil
	case string(figure.Absolute):
		return figure.Absolute, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig,
		"unknown line orientation %q, supported: relative, absolute", s)
}

func shareTarget(regions []*figure.Region, from, to int, axis string) (*figure.Region, error) {
	if to < 0 || to >= len(regions) {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"plot %d shares %s with undefined plot %d, %d are defined", from, axis, to, len(regions))
	}
	return regions[to], nil
}
