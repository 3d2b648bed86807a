// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modernstack/cli/internal/cmdutil"
	"github.com/modernstack/cli/internal/config"
	"github.com/modernstack/cli/internal/output"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is created by NewRootCmd and passed explicitly into every sub-command constructor.
type GlobalConfig struct {
	// Config is the file and environment configuration, without defaults applied.
	Config *config.Config

	// Loader is the loader that produced Config; nil when the file could not be read.
	Loader *config.Loader

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// ConfigFlag is the raw --config flag value.
	ConfigFlag string

	// Verbose enables debug logging.
	Verbose bool

	// Timestamps is the raw --timestamps flag value; only used when the flag changed.
	Timestamps bool

	deps Deps
}

// NewRootCmd creates the root command. Running it without a subcommand creates a project.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(DefaultDeps())
}

// NewRootCmdWithDeps creates the root command with the given collaborators.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	cfg := &GlobalConfig{deps: deps.withDefaults()}
	var scaffoldFlags cmdutil.ScaffoldFlags
	var installFlags cmdutil.InstallFlags

	rootCmd := &cobra.Command{
		Use:   "create-modern-fullstack [project-name]",
		Short: "Create a modern fullstack TypeScript project",
		Long: `Create a new fullstack project (TanStack Router frontend, Hono API) from a bundled template.

Without flags the CLI asks for the project name, template and features.
Pass --yes to accept the defaults instead.

Examples:
  # Interactive
  create-modern-fullstack

  # Non-interactive with the advanced template
  create-modern-fullstack my-app --template advanced --feature auth --feature database --yes

  # Extra template variables and pnpm
  create-modern-fullstack my-app -y --var author=Ada --vars-file vars.toml --package-manager pnpm`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, cfg, &scaffoldFlags, &installFlags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFlag, "config", "", "Path to config file (env: MFS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.Timestamps, "timestamps", true, "Show timestamps in log output")

	scaffoldFlags.AddTo(rootCmd)
	installFlags.AddTo(rootCmd)

	rootCmd.AddCommand(NewListCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(c *cobra.Command, cfg *GlobalConfig) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: cfg.ConfigFlag})
	if err != nil {
		return err
	}
	cfg.ConfigPath = pathResult.Value

	loader := config.NewLoader()
	loaded, loadErr := loader.Load(cfg.ConfigPath)
	if loadErr != nil {
		// Commands that don't need config (config vet, version) keep working.
		loaded = &config.Config{}
		loader = nil
	}
	cfg.Config = loaded
	cfg.Loader = loader

	logCfg := output.LogConfig{Verbose: cfg.Verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(cfg.Timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", cfg.ConfigPath, "error", loadErr)
	}
	config.LogResolvedValues([]config.ResolvedValue{pathResult})
	output.Debug("initializing CLI", "config", cfg.ConfigPath, "loaded", loader != nil && loader.ConfigFileUsed() != "")

	return nil
}
