package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modernstack/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-modern-fullstack version information.

Displays the CLI version, commit, build date and Go version.
The version is also exposed to templates as cliVersion.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.GetInfo().String())
			return nil
		},
	}
}
