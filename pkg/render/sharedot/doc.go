// Package sharedot visualizes the axis sharing relations of a figure
// as a Graphviz node-link diagram.
//
// Each plot region becomes a node; an edge points from a region to the
// region it borrows an axis range from, labeled with the shared axis.
// The diagram makes resolution order problems visible before Create
// reports them: a cycle in the picture is a cycle in the share graph.
//
// Usage:
//
//	dot := sharedot.ToDOT(fig, sharedot.Options{Detailed: true})
//	svg, err := sharedot.RenderSVG(dot)
package sharedot
