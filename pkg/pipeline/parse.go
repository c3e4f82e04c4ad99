package pipeline

import (
	"fmt"

	"github.com/matzehuels/gridplot/pkg/config"
)

// Parse decodes a TOML figure definition. Unknown keys in the source
// are reported through the options' warning hooks and otherwise
// ignored; malformed TOML and structurally invalid values are fatal.
func Parse(opts Options) (*config.Definition, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}

	def, err := config.Parse(opts.Source, opts.warningHooks())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.SourceName, err)
	}
	return def, nil
}
