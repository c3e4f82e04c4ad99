package figure

import (
	"strings"

	"github.com/matzehuels/gridplot/pkg/errors"
	"github.com/matzehuels/gridplot/pkg/geom"
	"github.com/matzehuels/gridplot/pkg/observability"
)

// LegendRowHeight is the fraction of the frame height one legend row
// occupies. It sizes the legend box and drives the axis space reserved
// so the box does not overlap data.
const LegendRowHeight = 0.04

// DefaultLegendTextSize is the legend text size as a fraction of the
// figure height.
const DefaultLegendTextSize = 0.015

// Legend box edges in frame fractions.
const (
	legendNearEdge = 0.11
	legendFarEdge  = 0.89
	legendMidEdge  = 0.5
)

// LegendConfig collects the user-settable legend attributes. A legend
// is only materialized when at least one object carries a label.
type LegendConfig struct {
	// Position combines "top" or "bottom" with "left" or "right",
	// whitespace separated. Missing parts default to top and right.
	Position string

	// TextSize is a fraction of the figure height.
	TextSize float64

	// Columns spreads entries over multiple columns. Zero means one.
	Columns int
}

// NewLegendConfig returns a legend with the package defaults.
func NewLegendConfig() LegendConfig {
	return LegendConfig{
		Position: "top right",
		TextSize: DefaultLegendTextSize,
		Columns:  1,
	}
}

// Rows returns the number of displayed legend rows for n labeled
// entries.
func (l LegendConfig) Rows(nLabels int) int {
	cols := l.Columns
	if cols <= 1 {
		return nLabels
	}
	return (nLabels + cols - 1) / cols
}

// legendAnchor is the parsed corner of a legend position.
type legendAnchor struct {
	bottom bool
	left   bool
}

// parseLegendPosition reads the position tokens. Conflicting tokens are
// fatal; unrecognized ones warn and are ignored.
func parseLegendPosition(position string, hooks observability.WarningHooks) (legendAnchor, error) {
	var top, bottom, left, right bool
	for _, tok := range strings.Fields(position) {
		switch tok {
		case "top":
			top = true
		case "bottom":
			bottom = true
		case "left":
			left = true
		case "right":
			right = true
		default:
			warn(hooks, observability.WarnUnknownAttribute,
				"unknown legend position token %q", tok)
		}
	}
	if top && bottom {
		return legendAnchor{}, errors.New(errors.ErrCodeInvalidLegend,
			"legend position %q requests both top and bottom", position)
	}
	if left && right {
		return legendAnchor{}, errors.New(errors.ErrCodeInvalidLegend,
			"legend position %q requests both left and right", position)
	}
	return legendAnchor{bottom: bottom, left: left}, nil
}

// geometry computes the legend box in frame fractions for n labeled
// entries, plus the anchor that decides on which end axis space is
// reserved.
func (l LegendConfig) geometry(nLabels int, hooks observability.WarningHooks) (geom.Rect, legendAnchor, error) {
	anchor, err := parseLegendPosition(l.Position, hooks)
	if err != nil {
		return geom.Rect{}, legendAnchor{}, err
	}

	box := geom.Rect{Left: legendMidEdge, Right: legendFarEdge}
	if anchor.left {
		box.Left = legendNearEdge
		box.Right = legendMidEdge
	}

	height := float64(l.Rows(nLabels)) * LegendRowHeight
	if anchor.bottom {
		box.Bottom = legendNearEdge
		box.Top = legendNearEdge + height
	} else {
		box.Top = legendFarEdge
		box.Bottom = legendFarEdge - height
	}
	return box, anchor, nil
}
