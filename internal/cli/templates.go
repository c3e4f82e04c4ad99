package cli

// Template is a starter figure definition offered by `gridplot new`.
type Template struct {
	Name        string
	Description string
	Source      string
}

// templates lists the available starters, simplest first.
var templates = []Template{
	{
		Name:        "single",
		Description: "One plot with a histogram",
		Source: `[figure]
name = "my_figure"
width = 600
height = 600

[[plot]]

[plot.x]
title = "x"

[plot.y]
title = "entries"

[plot.legend]
position = "top right"

[[plot.object]]
kind = "hist"
label = "counts"
edges = [0.0, 1.0, 2.0, 3.0, 4.0, 5.0]
contents = [4.0, 9.0, 14.0, 6.0, 2.0]
errors = [2.0, 3.0, 3.7, 2.4, 1.4]
`,
	},
	{
		Name:        "grid",
		Description: "2×2 grid with a plot per cell",
		Source: `[figure]
name = "grid_figure"
cols = 2
rows = 2
width = 800
height = 800

[[plot]]
cells = [0, 1]

[[plot.object]]
kind = "hist"
label = "a"
bins = 10
range = [0.0, 10.0]
contents = [1.0, 3.0, 7.0, 12.0, 16.0, 14.0, 9.0, 5.0, 2.0, 1.0]

[[plot]]
cells = [1, 1]

[[plot.object]]
kind = "scatter"
label = "b"
xs = [1.0, 2.0, 3.0, 4.0]
ys = [2.5, 4.1, 3.2, 5.0]

[[plot]]
cells = [0, 0]

[[plot.object]]
kind = "hist"
label = "c"
bins = 10
range = [0.0, 10.0]
contents = [2.0, 2.0, 5.0, 9.0, 11.0, 10.0, 7.0, 4.0, 2.0, 1.0]

[[plot]]
cells = [1, 0]

[[plot.object]]
kind = "scatter"
label = "d"
xs = [1.0, 2.0, 3.0, 4.0]
ys = [1.2, 2.3, 2.1, 3.6]
`,
	},
	{
		Name:        "ratio",
		Description: "Main plot with a ratio panel sharing its x axis",
		Source: `[figure]
name = "ratio_figure"
rows = 2
height_ratios = [1.0, 3.0]
width = 600
height = 700

# Row 0 is the bottom panel; the definition order keeps the
# share source (plot 0, the main panel) first.
[[plot]]
cells = [0, 1]

[plot.y]
title = "entries"

[[plot.object]]
kind = "hist"
label = "data"
edges = [0.0, 1.0, 2.0, 3.0, 4.0]
contents = [10.0, 22.0, 18.0, 7.0]

[[plot]]
cells = [0, 0]
share_x = 0

[plot.y]
title = "ratio"
low = 0.5
up = 1.5

[[plot.object]]
kind = "scatter"
xs = [0.5, 1.5, 2.5, 3.5]
ys = [0.95, 1.02, 0.99, 1.1]
`,
	},
}

// templateByName returns the named template, or nil.
func templateByName(name string) *Template {
	for i := range templates {
		if templates[i].Name == name {
			return &templates[i]
		}
	}
	return nil
}
