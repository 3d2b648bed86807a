package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernstack/cli/internal/catalog"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default name", DefaultProjectName, false},
		{"underscores", "my_app", false},
		{"mixed case", "MyApp", false},
		{"space", "my app", true},
		{"slash", "my/app", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTemplateOptions(t *testing.T) {
	opts := TemplateOptions(catalog.List())

	require.Len(t, opts, 2)
	assert.Equal(t, "basic", opts[0].Value)
	assert.Equal(t, "basic - Basic fullstack template with TanStack Router and Hono", opts[0].Key)
	assert.Equal(t, "advanced", opts[1].Value)
}

func TestFeatureOptions(t *testing.T) {
	tmpl, err := catalog.Get("advanced")
	require.NoError(t, err)

	opts := FeatureOptions(tmpl, []string{"auth"})
	require.Len(t, opts, len(tmpl.Features))
	for _, o := range opts {
		assert.Equal(t, o.Key, o.Value)
	}
}

func TestDefaultFeatures(t *testing.T) {
	basic, err := catalog.Get("basic")
	require.NoError(t, err)

	assert.Equal(t, basic.Features, DefaultFeatures(basic, nil), "all features when nothing preselected")
	assert.Equal(t, []string{"api"}, DefaultFeatures(basic, []string{"api", "auth"}), "unsupported features dropped")
	assert.Equal(t, basic.Features, DefaultFeatures(basic, []string{"auth"}))
}
