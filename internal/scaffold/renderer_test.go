package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/modernstack/cli/internal/errors"
)

// failingFS fails to open one path while still listing it in its directory.
type failingFS struct {
	files fstest.MapFS
	fail  string
}

func (f failingFS) Open(name string) (fs.File, error) {
	if name == f.fail {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errors.New("disk on fire")}
	}
	return f.files.Open(name)
}

func renderInto(t *testing.T, src fs.FS, vars map[string]any) (string, *Renderer, error) {
	t.Helper()
	dest := t.TempDir()
	r := NewRenderer(src, dest, vars)
	return dest, r, r.Render()
}

func TestRenderMirrorsTree(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, '{', '{'}
	src := fstest.MapFS{
		"a/b/file.hbs": {Data: []byte("name={{projectName}}")},
		"a/static.png": {Data: png},
		"top.txt":      {Data: []byte("{{projectName}} stays literal")},
		"scripts/run":  {Data: []byte("#!/bin/sh\n"), Mode: 0o755},
		"empty/.keep":  {Data: nil},
		"nested/x.hbs": {Data: []byte("")},
	}

	dest, r, err := renderInto(t, src, map[string]any{"projectName": "demo-app"})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dest, "a", "b", "file"))
	require.NoError(t, err)
	assert.Equal(t, "name=demo-app", string(got))
	assert.NoFileExists(t, filepath.Join(dest, "a", "b", "file.hbs"))

	got, err = os.ReadFile(filepath.Join(dest, "a", "static.png"))
	require.NoError(t, err)
	assert.Equal(t, png, got, "static files are copied byte for byte")

	got, err = os.ReadFile(filepath.Join(dest, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "{{projectName}} stays literal", string(got))

	info, err := os.Stat(filepath.Join(dest, "scripts", "run"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100, "executable bit is kept")

	assert.FileExists(t, filepath.Join(dest, "empty", ".keep"))
	assert.FileExists(t, filepath.Join(dest, "nested", "x"))

	assert.Equal(t, []string{"a", "a/b", "empty", "nested", "scripts"}, r.Dirs())
	assert.Equal(t, []FileRecord{
		{Path: "a/b/file", Rendered: true},
		{Path: "a/static.png"},
		{Path: "empty/.keep"},
		{Path: "nested/x", Rendered: true},
		{Path: "scripts/run"},
		{Path: "top.txt"},
	}, r.Files())
}

func TestRenderPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		src  string
		vars map[string]any
		want string
	}{
		{
			name: "spaced placeholder",
			src:  "Hello {{ projectName }}!",
			vars: map[string]any{"projectName": "demo-app"},
			want: "Hello demo-app!",
		},
		{
			name: "unknown placeholder renders empty",
			src:  "[{{ unknownVar }}]",
			vars: map[string]any{"projectName": "demo-app"},
			want: "[]",
		},
		{
			name: "feature conditional",
			src:  "{{#if auth}}auth{{else}}none{{/if}}",
			vars: map[string]any{"auth": false},
			want: "none",
		},
		{
			name: "feature list",
			src:  "{{#each features}}{{this}};{{/each}}",
			vars: map[string]any{"features": []string{"router", "api"}},
			want: "router;api;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, _, err := renderInto(t, fstest.MapFS{"out.txt.hbs": {Data: []byte(tt.src)}}, tt.vars)
			require.NoError(t, err)

			got, err := os.ReadFile(filepath.Join(dest, "out.txt"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRenderMalformedTemplateStopsWalk(t *testing.T) {
	src := fstest.MapFS{
		"a.txt.hbs": {Data: []byte("ok {{projectName}}")},
		"b.txt.hbs": {Data: []byte("broken {{ projectName ")},
		"c.txt":     {Data: []byte("never written")},
		"d/e.txt":   {Data: []byte("never written")},
	}

	dest, r, err := renderInto(t, src, map[string]any{"projectName": "demo-app"})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrRender)
	assert.Contains(t, err.Error(), "b.txt.hbs")

	assert.FileExists(t, filepath.Join(dest, "a.txt"), "earlier siblings remain")
	assert.NoFileExists(t, filepath.Join(dest, "b.txt"))
	assert.NoFileExists(t, filepath.Join(dest, "c.txt"))
	assert.NoDirExists(t, filepath.Join(dest, "d"))
	assert.Len(t, r.Files(), 1)
}

func TestRenderReadError(t *testing.T) {
	src := failingFS{
		files: fstest.MapFS{
			"broken.txt": {Data: []byte("x")},
			"z.txt":      {Data: []byte("y")},
		},
		fail: "broken.txt",
	}

	dest, _, err := renderInto(t, src, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrRead)
	assert.NoFileExists(t, filepath.Join(dest, "z.txt"))
}

func TestRenderNeverOverwrites(t *testing.T) {
	dest := t.TempDir()
	existing := filepath.Join(dest, "README.md")
	require.NoError(t, os.WriteFile(existing, []byte("mine"), 0o644))

	r := NewRenderer(fstest.MapFS{"README.md": {Data: []byte("theirs")}}, dest, nil)
	err := r.Render()
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrWrite)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(got))
}

func TestRenderRejectsSymlinks(t *testing.T) {
	src := fstest.MapFS{
		"link": {Data: []byte("/etc/passwd"), Mode: fs.ModeSymlink},
	}

	_, _, err := renderInto(t, src, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrRead)
}

func TestSafeEntryName(t *testing.T) {
	assert.True(t, safeEntryName("package.json.hbs"))
	assert.True(t, safeEntryName(".gitignore"))
	assert.False(t, safeEntryName(".."))
	assert.False(t, safeEntryName("."))
	assert.False(t, safeEntryName(""))
	assert.False(t, safeEntryName(`a\b`))
}
