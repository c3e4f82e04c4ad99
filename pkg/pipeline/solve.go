package pipeline

import (
	"fmt"

	"github.com/matzehuels/gridplot/pkg/config"
	"github.com/matzehuels/gridplot/pkg/figure"
	"github.com/matzehuels/gridplot/pkg/layout"
)

// Solve assembles the figure a definition describes and resolves it
// into a render-ready layout document: cell geometry, axis boundaries,
// shared-axis propagation and legend placement all become final
// numbers here.
//
// Each call builds a fresh figure from the definition, so solving the
// same definition twice yields independent, identical documents.
func Solve(def *config.Definition, opts Options) (layout.Figure, error) {
	f, err := config.Build(def, figure.WithHooks(opts.warningHooks()))
	if err != nil {
		return layout.Figure{}, fmt.Errorf("build %s: %w", opts.SourceName, err)
	}

	var createOpts []figure.CreateOption
	if opts.NoObjectTitles {
		createOpts = append(createOpts, figure.WithoutObjectTitles())
	}
	if err := f.Create(createOpts...); err != nil {
		return layout.Figure{}, fmt.Errorf("solve %s: %w", opts.SourceName, err)
	}
	return f.Layout()
}
