package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplot/pkg/config"
	"github.com/matzehuels/gridplot/pkg/render/sharedot"
)

// sharesCommand creates the shares command, a debug view of which plot
// regions borrow axis limits from which. The figure is assembled but
// not solved; only the share edges matter here.
func (c *CLI) sharesCommand() *cobra.Command {
	var output string
	var detailed bool

	cmd := &cobra.Command{
		Use:   "shares [definition.toml]",
		Short: "Visualize the axis-sharing graph of a figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShares(args[0], output, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file: .svg, .png, .pdf or .dot (default: input with _shares.svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include cell spans and object counts in node labels")

	return cmd
}

func (c *CLI) runShares(input, output string, detailed bool) error {
	f, err := config.Load(input, nil)
	if err != nil {
		return err
	}

	dot := sharedot.ToDOT(f, sharedot.Options{Detailed: detailed})

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "_shares.svg"
	}

	var data []byte
	switch ext := filepath.Ext(output); ext {
	case ".dot":
		data = []byte(dot)
	case ".svg":
		data, err = sharedot.RenderSVG(dot)
	case ".png":
		data, err = sharedot.RenderPNG(dot, 2.0)
	case ".pdf":
		data, err = sharedot.RenderPDF(dot)
	default:
		return fmt.Errorf("unsupported output extension: %s", ext)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Share graph for %d plots", len(f.Regions()))
	printFile(output)
	return nil
}
