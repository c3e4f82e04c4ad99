// Package geom provides the rectangle and interval arithmetic shared by the
// grid resolver, the boundary engine and the render sinks.
//
// Two coordinate conventions appear throughout gridplot:
//
//   - Relative (figure) coordinates: fractions of the figure in [0,1], with
//     the origin at the bottom-left. Grid rows count upward from the bottom.
//   - Axis (data) coordinates: whatever units the plotted objects carry.
//
// MapValue converts between arbitrary intervals and is the single place where
// that conversion lives.
package geom
