// Package grid partitions a figure into addressable cells and resolves
// cell spans into relative coordinate rectangles.
//
// A grid is described by column and row counts, per-column and per-row
// size ratios, and per-column and per-row margin pairs. Rows are counted
// from the bottom: row 0 is the bottom-most row of the figure, so a
// span's bottom edge is derived from the rows below it. Cell indices are
// row-major, index = row*cols + col.
//
// Ratios and margins are normalized once by ValidateAndSetDefaults and
// treated as immutable afterwards.
package grid
