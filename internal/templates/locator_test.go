package templates

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernstack/cli/internal/catalog"
	oerrors "github.com/modernstack/cli/internal/errors"
)

func TestResolvePath(t *testing.T) {
	l := NewLocator(fstest.MapFS{})

	assert.Equal(t, "basic", l.ResolvePath("basic"))
	assert.Equal(t, "missing", l.ResolvePath("missing"))
}

func TestExists(t *testing.T) {
	fsys := fstest.MapFS{
		"basic/package.json.hbs": {Data: []byte(`{}`)},
		"notadir":                {Data: []byte("x")},
	}
	l := NewLocator(fsys)

	tests := []struct {
		name string
		want bool
	}{
		{"basic", true},
		{"advanced", false},
		{"notadir", false},
		{"", false},
		{"..", false},
		{"basic/..", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Exists(tt.name))
		})
	}
}

func TestSubMissingTemplate(t *testing.T) {
	l := NewLocator(fstest.MapFS{})

	_, err := l.Sub("basic")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrTemplateNotFound)
}

func TestBundledTemplatesMatchCatalog(t *testing.T) {
	l := NewLocator(nil)

	for _, tmpl := range catalog.List() {
		t.Run(tmpl.Name, func(t *testing.T) {
			require.True(t, l.Exists(tmpl.Name), "catalog entry without a bundled tree")

			files, err := l.Files(tmpl.Name)
			require.NoError(t, err)
			assert.Contains(t, files, "package.json")
			assert.Contains(t, files, "README.md")
			assert.Contains(t, files, ".gitignore")
			for _, f := range files {
				assert.False(t, strings.HasSuffix(f, MarkerSuffix), f)
			}
		})
	}
}

func TestBundledTemplatesHaveMarkedRoots(t *testing.T) {
	for _, name := range catalog.Names() {
		_, err := fs.Stat(Bundled(), name+"/package.json"+MarkerSuffix)
		assert.NoError(t, err, name)
	}
}
