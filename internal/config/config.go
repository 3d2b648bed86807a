// Package config provides configuration loading and management.
package config

import (
	"github.com/modernstack/cli/internal/catalog"
	"github.com/modernstack/cli/internal/install"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty"`
}

// Config holds user defaults for new projects.
// Loaded from ~/.modern-fullstack/config.yaml and MFS_* environment variables.
type Config struct {
	// Template is the default template name.
	// Env: MFS_TEMPLATE
	Template string `mapstructure:"template" json:"template,omitempty"`

	// PackageManager installs dependencies: npm, pnpm, yarn or bun.
	// Env: MFS_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" json:"packageManager,omitempty"`

	// SkipInstall disables the install step.
	// Env: MFS_SKIP_INSTALL
	SkipInstall bool `mapstructure:"skipInstall" json:"skipInstall,omitempty"`

	// Git initializes a git repository in new projects.
	// Env: MFS_GIT
	Git bool `mapstructure:"git" json:"git,omitempty"`

	// Features preselects template features. Unsupported ones are ignored per template.
	// Env: MFS_FEATURES (comma separated)
	Features []string `mapstructure:"features" json:"features,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by config init to generate the initial file.
func DefaultConfig() *Config {
	return &Config{
		Template:       catalog.DefaultTemplateName,
		PackageManager: install.NPM,
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.Template == "" {
		out.Template = def.Template
	}
	if out.PackageManager == "" {
		out.PackageManager = def.PackageManager
	}
	return &out
}
