package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modernstack/cli/internal/catalog"
	"github.com/modernstack/cli/internal/cmdutil"
	"github.com/modernstack/cli/internal/output"
)

// NewListCmd creates the list command.
func NewListCmd(_ *GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long: `List the templates bundled with the CLI.

Output formats:
  text   name and description per line (default)
  table  name, description, version and features
  json   machine-readable catalog
  yaml   machine-readable catalog`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runList(c, outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "text",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return c
}

func runList(c *cobra.Command, outputFlag string) error {
	format, err := output.ParseOutputFormat(outputFlag)
	if err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), "invalid output format", err)
	}

	w := c.OutOrStdout()
	templates := catalog.List()

	switch format {
	case output.FormatJSON, output.FormatYAML:
		if err := output.WriteStructured(w, format, templates); err != nil {
			return cmdutil.Fail(c.ErrOrStderr(), "writing catalog", err)
		}
	case output.FormatTable:
		tbl := output.NewTable("NAME", "DESCRIPTION", "VERSION", "FEATURES")
		for _, t := range templates {
			tbl.Row(t.Name, t.Description, t.Version, strings.Join(t.Features, ", "))
		}
		fmt.Fprintln(w, tbl.String())
	default:
		fmt.Fprintln(w, output.StyleAction.Render("Available templates:"))
		fmt.Fprintln(w)
		for _, t := range templates {
			fmt.Fprintf(w, "  %s - %s\n", output.StyleNoun.Render(t.Name), t.Description)
		}
	}
	return nil
}
