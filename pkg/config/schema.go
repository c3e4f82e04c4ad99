package config

// Definition is the top-level TOML document.
type Definition struct {
	Figure FigureDef `toml:"figure"`
	Plots  []PlotDef `toml:"plot"`
}

// FigureDef describes the grid and canvas. Zero cols or rows default
// to 1; ratio and margin fields follow the grid package's defaulting.
type FigureDef struct {
	Name   string `toml:"name"`
	Cols   int    `toml:"cols"`
	Rows   int    `toml:"rows"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	WidthRatios  []float64 `toml:"width_ratios"`
	HeightRatios []float64 `toml:"height_ratios"`

	// Margin is a uniform shorthand applied to all cell edges.
	// ColMargins and RowMargins list [low, high] pairs and win over it.
	Margin     *float64    `toml:"margin"`
	ColMargins [][]float64 `toml:"col_margins"`
	RowMargins [][]float64 `toml:"row_margins"`
}

// PlotDef describes one plot region. Cells takes 0, 2 or 4 indices
// like DefinePlot; ShareX and ShareY reference other plots by their
// position in the definition file.
type PlotDef struct {
	Cells  []int  `toml:"cells"`
	Title  string `toml:"title"`
	ShareX *int   `toml:"share_x"`
	ShareY *int   `toml:"share_y"`

	X      *AxisDef   `toml:"x"`
	Y      *AxisDef   `toml:"y"`
	Z      *AxisDef   `toml:"z"`
	Legend *LegendDef `toml:"legend"`

	Objects []ObjectDef `toml:"object"`
	Texts   []TextDef   `toml:"text"`
	Lines   []LineDef   `toml:"line"`
}

// AxisDef overrides individual axis attributes; nil fields keep the
// figure defaults.
type AxisDef struct {
	Title            string   `toml:"title"`
	Low              *float64 `toml:"low"`
	Up               *float64 `toml:"up"`
	Log              *bool    `toml:"log"`
	LabelSize        *float64 `toml:"label_size"`
	TitleSize        *float64 `toml:"title_size"`
	TickSize         *float64 `toml:"tick_size"`
	AccountForErrors *bool    `toml:"account_for_errors"`
}

// LegendDef overrides individual legend attributes.
type LegendDef struct {
	Position string   `toml:"position"`
	TextSize *float64 `toml:"text_size"`
	Columns  *int     `toml:"columns"`
}

// ObjectDef is one drawn object with inline data. Kind selects which
// data fields apply: "hist" (edges or bins+range, contents, errors),
// "hist2d" (x_edges, y_edges, cells) or "scatter" (xs, ys, errors).
type ObjectDef struct {
	Kind  string `toml:"kind"`
	Name  string `toml:"name"`
	Label string `toml:"label"`

	Edges    []float64 `toml:"edges"`
	Contents []float64 `toml:"contents"`
	Errors   []float64 `toml:"errors"`

	// Bins and Range build uniform edges instead of listing them.
	Bins  int       `toml:"bins"`
	Range []float64 `toml:"range"`

	XEdges []float64   `toml:"x_edges"`
	YEdges []float64   `toml:"y_edges"`
	Cells  [][]float64 `toml:"cells"`

	Xs    []float64 `toml:"xs"`
	Ys    []float64 `toml:"ys"`
	XErrs []float64 `toml:"x_errs"`
	YErrs []float64 `toml:"y_errs"`

	Titles *TitlesDef `toml:"titles"`
	Style  *StyleDef  `toml:"style"`
}

// TitlesDef carries the axis titles an object suggests for its plot.
type TitlesDef struct {
	X string `toml:"x"`
	Y string `toml:"y"`
	Z string `toml:"z"`
}

// StyleDef overrides individual style attributes on top of the first
// default cycle entry. Fill takes a style name; unknown names are
// fatal.
type StyleDef struct {
	LineWidth *int   `toml:"line_width"`
	LineStyle *int   `toml:"line_style"`
	LineColor string `toml:"line_color"`

	MarkerSize  *float64 `toml:"marker_size"`
	MarkerStyle *int     `toml:"marker_style"`
	MarkerColor string   `toml:"marker_color"`

	Fill      string   `toml:"fill"`
	FillColor string   `toml:"fill_color"`
	FillAlpha *float64 `toml:"fill_alpha"`
}

// TextDef is a text annotation in frame fractions.
type TextDef struct {
	Value string   `toml:"value"`
	X     float64  `toml:"x"`
	Y     float64  `toml:"y"`
	Size  *float64 `toml:"size"`
}

// LineDef is a line annotation. Omitted endpoints follow the
// LineSpec defaulting rules; orientations are "relative" (default) or
// "absolute".
type LineDef struct {
	X0 *float64 `toml:"x0"`
	X1 *float64 `toml:"x1"`
	Y0 *float64 `toml:"y0"`
	Y1 *float64 `toml:"y1"`

	XOrientation string `toml:"x_orientation"`
	YOrientation string `toml:"y_orientation"`
}
