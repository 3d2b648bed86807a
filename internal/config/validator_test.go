package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/modernstack/cli/internal/errors"
	"github.com/modernstack/cli/internal/output"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{name: "defaults", cfg: DefaultConfig()},
		{name: "empty", cfg: &Config{}},
		{name: "full", cfg: &Config{
			Template: "advanced", PackageManager: "bun", Git: true,
			Features: []string{"auth"}, Log: LogConfig{Timestamps: output.BoolPtr(false)},
		}},
		{name: "bad package manager", cfg: &Config{PackageManager: "pip"}, wantField: "packageManager"},
		{name: "unknown template", cfg: &Config{Template: "enterprise"}, wantField: "template"},
		{name: "malformed template", cfg: &Config{Template: "Not Kebab"}, wantField: "template"},
		{name: "unknown feature", cfg: &Config{Features: []string{"docker"}}, wantField: "features"},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrValidation)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.wantField)
			assert.NotContains(t, err.Error(), "#Config")
			assert.Equal(t, 1, strings.Count(err.Error(), tt.wantField+":"), "field reported once")
		})
	}
}

func TestValidateFile(t *testing.T) {
	v := newValidator(t)

	t.Run("valid", func(t *testing.T) {
		path := writeConfig(t, "template: basic\npackageManager: pnpm\nlog:\n  timestamps: true\n")
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("empty file", func(t *testing.T) {
		assert.NoError(t, v.ValidateFile(writeConfig(t, "")))
	})

	t.Run("unknown key", func(t *testing.T) {
		err := v.ValidateFile(writeConfig(t, "templte: basic\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
		assert.Contains(t, err.Error(), "templte")
	})

	t.Run("wrong type", func(t *testing.T) {
		err := v.ValidateFile(writeConfig(t, "git: yes please\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git")
	})

	t.Run("unknown template", func(t *testing.T) {
		err := v.ValidateFile(writeConfig(t, "template: enterprise\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown template")
	})

	t.Run("one entry per field", func(t *testing.T) {
		err := v.ValidateFile(writeConfig(t, "packageManager: pip\ntemplate: Bad Name\n"))
		require.Error(t, err)

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		fields := make([]string, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, e.Field)
		}
		assert.ElementsMatch(t, []string{"packageManager", "template"}, fields)
		assert.Equal(t, 1, strings.Count(err.Error(), "packageManager:"))
		assert.Contains(t, err.Error(), `"pip"`)
	})

	t.Run("missing file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})
}
