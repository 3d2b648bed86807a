package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/modernstack/cli/internal/cmdutil"
	"github.com/modernstack/cli/internal/config"
	oerrors "github.com/modernstack/cli/internal/errors"
)

// configHeader is written above the generated defaults.
const configHeader = `# create-modern-fullstack configuration.
# Keys: template, packageManager, skipInstall, git, features, log.timestamps
# Every key can be overridden with an MFS_* environment variable or a flag.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a config file with the built-in defaults.

The file is created at the resolved config path (default
~/.modern-fullstack/config.yaml) with owner-only permissions.

Examples:
  # Initialize configuration
  create-modern-fullstack config init

  # Overwrite existing configuration
  create-modern-fullstack config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, cfg *GlobalConfig, force bool) error {
	errOut := c.ErrOrStderr()

	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return cmdutil.Fail(errOut, "resolving config path", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cmdutil.Fail(errOut, "initializing configuration", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.Fail(errOut, "encoding configuration", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.Fail(errOut, "initializing configuration",
			oerrors.WrapCause(oerrors.ErrPermission, err, "could not create "+filepath.Dir(path)))
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o600); err != nil {
		return cmdutil.Fail(errOut, "initializing configuration",
			oerrors.WrapCause(oerrors.ErrPermission, err, "could not write "+path))
	}

	w := c.OutOrStdout()
	fmt.Fprintln(w, "Configuration initialized at "+path)
	fmt.Fprintln(w, "Validate with: create-modern-fullstack config vet")
	return nil
}
