package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newCommand creates the new command, which writes a starter figure
// definition. Without --template it opens an interactive picker.
func (c *CLI) newCommand() *cobra.Command {
	var templateName string
	var force bool

	cmd := &cobra.Command{
		Use:   "new [path]",
		Short: "Create a figure definition from a template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "figure.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runNew(path, templateName, force)
		},
	}

	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "template name: "+strings.Join(names, ", "))
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) runNew(path, templateName string, force bool) error {
	var tmpl *Template
	if templateName != "" {
		tmpl = templateByName(templateName)
		if tmpl == nil {
			return fmt.Errorf("unknown template: %q", templateName)
		}
	} else {
		var err error
		tmpl, err = pickTemplate()
		if err != nil {
			return err
		}
		if tmpl == nil {
			printInfo("No template selected")
			return nil
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(tmpl.Source), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Created %s from the %s template", StyleHighlight.Render(path), tmpl.Name)
	printNextStep("Render it", fmt.Sprintf("gridplot render %s", path))
	return nil
}
