// Package config reads figure definitions from TOML files and builds
// figures from them.
//
// A definition describes the grid, the plots placed on it and the data
// each plot draws, with the same defaulting rules the figure package
// applies: omitted axis limits are derived from the data, omitted
// styles come from the default cycles, omitted cells auto-place.
//
// Unknown keys are not fatal. They are reported as warnings at parse
// time so a typo like "loq = true" surfaces before the figure renders
// without the setting.
//
// A minimal definition:
//
//	[figure]
//	cols = 2
//	rows = 1
//
//	[[plot]]
//	cells = [0, 0]
//	x = { title = "m [GeV]" }
//
//	[[plot.object]]
//	kind = "hist"
//	name = "sig"
//	label = "signal"
//	edges = [0.0, 1.0, 2.0, 3.0]
//	contents = [4.0, 9.0, 2.0]
//
//	[[plot]]
//	cells = [1, 0]
//	share_y = 0
package config
