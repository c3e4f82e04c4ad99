package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplot/pkg/layout"
	"github.com/matzehuels/gridplot/pkg/observability"
	"github.com/matzehuels/gridplot/pkg/pipeline"
)

// inspectCommand creates the inspect command. It accepts either a TOML
// figure definition (solved on the fly) or a JSON layout document
// produced by an earlier render, and prints the resolved geometry.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect [definition.toml|layout.json]",
		Short: "Print the resolved geometry and axis ranges of a figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, warnings, err := c.loadFigure(cmd, args[0], noCache)
			if err != nil {
				return err
			}
			if asJSON {
				data, err := layout.MarshalFigure(doc)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			printFigure(doc, warnings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout document as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// loadFigure solves a TOML definition or reads a JSON layout document,
// depending on the file extension.
func (c *CLI) loadFigure(cmd *cobra.Command, input string, noCache bool) (layout.Figure, []observability.Warning, error) {
	if filepath.Ext(input) == ".json" {
		doc, err := layout.ReadFigureFile(input)
		return doc, nil, err
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return layout.Figure{}, nil, fmt.Errorf("read %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return layout.Figure{}, nil, err
	}
	defer runner.Close()

	rec := &observability.Recorder{}
	opts := pipeline.Options{
		Source:     source,
		SourceName: input,
		Logger:     c.Logger,
		Hooks:      rec,
	}
	def, err := runner.Parse(cmd.Context(), opts)
	if err != nil {
		return layout.Figure{}, nil, err
	}
	doc, err := runner.Solve(cmd.Context(), def, opts)
	if err != nil {
		return layout.Figure{}, nil, err
	}
	return doc, rec.Warnings(), nil
}

// printFigure writes a human-readable summary of the layout document.
func printFigure(doc layout.Figure, warnings []observability.Warning) {
	fmt.Println(StyleTitle.Render(doc.Name))
	printKeyValue("canvas", fmt.Sprintf("%d×%d px", doc.WidthPx, doc.HeightPx))
	printKeyValue("pads", fmt.Sprintf("%d", len(doc.Pads)))

	if len(doc.Pads) > 0 {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(StyleDim).
			Headers("PAD", "RECT", "X RANGE", "Y RANGE", "MARKS", "LEGEND")
		for _, pad := range doc.Pads {
			legend := "-"
			if pad.Legend != nil {
				legend = fmt.Sprintf("%d entries", len(pad.Legend.Entries))
			}
			t.Row(
				pad.Name,
				fmt.Sprintf("(%.2f, %.2f)–(%.2f, %.2f)", pad.X0, pad.Y0, pad.X1, pad.Y1),
				axisRange(pad.Frame.X),
				axisRange(pad.Frame.Y),
				fmt.Sprintf("%d", len(pad.Marks)),
				legend,
			)
		}
		fmt.Println(t.Render())
	}

	for _, w := range warnings {
		printWarning("%s", w.Message)
	}
}

// axisRange formats an axis interval, marking log axes.
func axisRange(a layout.Axis) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%.4g, %.4g]", a.Low, a.Up)
	if a.Log {
		sb.WriteString(" log")
	}
	return sb.String()
}
