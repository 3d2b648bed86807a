package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modernstack/cli/internal/cmdutil"
	"github.com/modernstack/cli/internal/config"
	"github.com/modernstack/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the create-modern-fullstack configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML and matches the schema
  3. The template exists and every feature belongs to a template
  4. MFS_* environment overrides merged over the file pass the same checks

Examples:
  # Validate default configuration
  create-modern-fullstack config vet

  # Validate custom config path
  create-modern-fullstack config vet --config ./config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *GlobalConfig) error {
	output.Debug("validating config", "path", cfg.ConfigPath)

	v, err := config.NewValidator()
	if err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), "loading config schema", err)
	}
	if err := v.ValidateFile(cfg.ConfigPath); err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), "invalid configuration", err)
	}

	// Environment overrides are merged by the loader and checked against the same schema.
	loaded, err := config.NewLoader().Load(cfg.ConfigPath)
	if err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), "loading configuration", err)
	}
	if err := v.Validate(loaded); err != nil {
		return cmdutil.Fail(c.ErrOrStderr(), "invalid configuration (with environment overrides)", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+cfg.ConfigPath))
	return nil
}
