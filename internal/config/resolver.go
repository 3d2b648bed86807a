package config

import (
	"fmt"
	"os"

	"github.com/modernstack/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value after precedence was applied.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions describes the candidates for a single key.
type ResolveOptions struct {
	Key string

	// FlagValue is used when FlagSet is true.
	FlagValue string
	FlagSet   bool

	// ConfigValue is used when ConfigSet is true.
	ConfigValue string
	ConfigSet   bool

	Default string
}

// Resolve applies the precedence flag > env > config > default to one key.
// The environment variable is the one bound to Key by the loader.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{Key: opts.Key, Shadowed: make(map[ConfigSource]string)}

	envValue, envSet := "", false
	if name := EnvVar(opts.Key); name != "" {
		envValue, envSet = os.LookupEnv(name)
	}

	type candidate struct {
		source ConfigSource
		value  string
		set    bool
	}
	candidates := []candidate{
		{SourceFlag, opts.FlagValue, opts.FlagSet},
		{SourceEnv, envValue, envSet},
		{SourceConfig, opts.ConfigValue, opts.ConfigSet},
		{SourceDefault, opts.Default, true},
	}

	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MFS_CONFIG env, (3) ~/.modern-fullstack/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, fmt.Errorf("resolving home directory: %w", err)
	}

	result := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]string)}
	envValue := os.Getenv(envPrefix + "_CONFIG")

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = paths.ConfigFile
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = paths.ConfigFile
	default:
		result.Value = paths.ConfigFile
		result.Source = SourceDefault
	}
	return result, nil
}

// LogResolvedValues logs each value's resolution at debug level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
