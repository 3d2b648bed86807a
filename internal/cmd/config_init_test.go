package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/modernstack/cli/internal/errors"
)

func TestNewConfigInitCmd(t *testing.T) {
	c := NewConfigInitCmd(&GlobalConfig{})

	assert.Equal(t, "init", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	env := newTestEnv(t)
	env.configPath = filepath.Join(t.TempDir(), "nested", "config.yaml")

	stdout, _, err := env.run("config", "init")
	require.NoError(t, err)

	data, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "template: basic")
	assert.Contains(t, string(data), "packageManager: npm")
	assert.Contains(t, stdout, "Configuration initialized at "+env.configPath)
}

func TestConfigInit_SecurePermissions(t *testing.T) {
	env := newTestEnv(t)
	env.configPath = filepath.Join(t.TempDir(), "mfs", "config.yaml")

	_, _, err := env.run("config", "init")
	require.NoError(t, err)

	dirInfo, err := os.Stat(filepath.Dir(env.configPath))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("# existing\n"), 0o600))

	_, stderr, err := env.run("config", "init")
	require.Error(t, err)

	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, stderr, "--force")

	data, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, "# existing\n", string(data))
}

func TestConfigInit_Force(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("# existing\n"), 0o600))

	_, _, err := env.run("config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "template: basic")
}

func TestConfigInit_ThenVet(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "init")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "vet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration is valid")
}
