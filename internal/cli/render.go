package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplot/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output         string   // output file path (or base path for multiple formats)
	formats        []string // output formats: "svg", "png", "pdf", "json"
	scale          float64  // PNG rasterization scale
	transparent    bool     // drop the canvas background
	fontFamily     string   // override the SVG font stack
	noCache        bool     // disable the render cache
	refresh        bool     // recompute even when cached
	noObjectTitles bool     // keep blank axis titles blank
}

// renderCommand creates the render command for generating figure artifacts.
//
// Default settings:
//   - format: svg
//   - scale: 2.0 (PNG only)
//   - cache: on (~/.cache/gridplot)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [definition.toml]",
		Short: "Render a figure definition to SVG, PNG, PDF or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG rasterization scale")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", false, "transparent canvas background")
	cmd.Flags().StringVar(&opts.fontFamily, "font", "", "override the SVG font family")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&opts.noObjectTitles, "no-object-titles", false, "do not borrow axis titles from objects")

	return cmd
}

// runRender executes the pipeline on the definition file and writes the artifacts.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spin := newSpinnerWithContext(cmd.Context(), "Solving figure...")
	spin.Start()

	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Source:         source,
		SourceName:     input,
		Refresh:        opts.refresh,
		NoObjectTitles: opts.noObjectTitles,
		Formats:        opts.formats,
		Scale:          opts.scale,
		Transparent:    opts.transparent,
		FontFamily:     opts.fontFamily,
		Logger:         c.Logger,
	})
	spin.Stop()
	if err != nil {
		if spin.Cancelled() {
			return cmd.Context().Err()
		}
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d pads", result.Stats.PadCount))

	for _, w := range result.Warnings {
		printWarning("%s", w.Message)
	}

	base := basePath(opts.output, input)
	written := make([]string, 0, len(opts.formats))
	for _, format := range opts.formats {
		path := outputPath(opts.output, base, format, len(opts.formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Rendered %s", StyleHighlight.Render(result.Figure.Name))
	printStats(result.Stats.PadCount, result.Stats.MarkCount, result.CacheInfo.RenderHit)
	for _, path := range written {
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath builds the path for one artifact. A single format honors an
// explicit --output verbatim; multiple formats share the base path.
func outputPath(output, base, format string, formatCount int) string {
	if formatCount == 1 && output != "" {
		if filepath.Ext(output) != "" {
			return output
		}
		return output + "." + format
	}
	return base + "." + format
}
