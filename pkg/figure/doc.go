// Package figure assembles plot figures from a cell grid and plottable
// objects.
//
// A Figure divides its area into a grid of cells. Plot regions claim
// rectangular cell spans, collect objects with styles and labels, and
// carry per-axis settings, a legend configuration and annotations.
// Create resolves every region: objects are styled, legend space is
// measured, axis boundaries are derived from the data, and the result
// is a render-ready layout document.
//
// Typical use:
//
//	fig, err := figure.New(grid.Options{Cols: 1, Rows: 1, Width: 600, Height: 600})
//	if err != nil {
//	    return err
//	}
//	region, _ := fig.Current()
//	region.YAxis.Log = true
//	region.AddObject(hist, &styles[0], "data")
//	if err := fig.Create(); err != nil {
//	    return err
//	}
//	doc, _ := fig.Layout()
//
// Regions can share axes: a region that shares x with a sibling copies
// the sibling's resolved x-limits verbatim and suppresses its own x
// labels, which is how grids of touching pads keep a single visible
// scale per column or row. Share references must form a directed
// acyclic graph; Create resolves regions in dependency order and fails
// on a cycle.
package figure
