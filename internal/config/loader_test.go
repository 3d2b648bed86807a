package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfig(t, `
template: advanced
packageManager: pnpm
skipInstall: true
git: true
features: [auth, database]
log:
  timestamps: false
`)
		loader := NewLoader()
		cfg, err := loader.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "advanced", cfg.Template)
		assert.Equal(t, "pnpm", cfg.PackageManager)
		assert.True(t, cfg.SkipInstall)
		assert.True(t, cfg.Git)
		assert.Equal(t, []string{"auth", "database"}, cfg.Features)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, path, loader.ConfigFileUsed())
		assert.True(t, loader.InConfig("packageManager"))
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		loader := NewLoader()
		cfg, err := loader.Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))

		require.NoError(t, err)
		assert.Empty(t, cfg.Template)
		assert.Empty(t, loader.ConfigFileUsed())
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("MFS_PACKAGE_MANAGER", "bun")
		t.Setenv("MFS_SKIP_INSTALL", "true")
		t.Setenv("MFS_FEATURES", "router,api")

		path := writeConfig(t, "packageManager: yarn\n")
		cfg, err := NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, "bun", cfg.PackageManager)
		assert.True(t, cfg.SkipInstall)
		assert.Equal(t, []string{"router", "api"}, cfg.Features)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "template: [unterminated\n")
		_, err := NewLoader().Load(path)
		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.Template)
	assert.Equal(t, "npm", cfg.PackageManager)
}

func TestConfigFileExists(t *testing.T) {
	path := writeConfig(t, "")
	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "MFS_PACKAGE_MANAGER", EnvVar("packageManager"))
	assert.Empty(t, EnvVar("unknown"))
}
