package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for configuration.
const envPrefix = "MFS"

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	"template":       envPrefix + "_TEMPLATE",
	"packageManager": envPrefix + "_PACKAGE_MANAGER",
	"skipInstall":    envPrefix + "_SKIP_INSTALL",
	"git":            envPrefix + "_GIT",
	"features":       envPrefix + "_FEATURES",
	"log.timestamps": envPrefix + "_LOG_TIMESTAMPS",
}

// EnvVar returns the environment variable bound to key, or "" for unknown keys.
func EnvVar(key string) string {
	return envBindings[key]
}

// Loader handles loading and merging configuration from file and environment.
type Loader struct {
	v *viper.Viper

	// used is the file that was actually read, empty when none existed.
	used string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default path is used. A missing file is not an error.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	} else {
		l.used = expandedPath
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// ConfigFileUsed returns the file read by the last Load, or "" if none existed.
func (l *Loader) ConfigFileUsed() string {
	return l.used
}

// InConfig reports whether key was set in the config file (not the environment).
func (l *Loader) InConfig(key string) bool {
	return l.used != "" && l.v.InConfig(key)
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(expandedPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
