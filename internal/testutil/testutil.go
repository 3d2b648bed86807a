// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// envVars are the variables that change CLI behavior.
var envVars = []string{
	"MFS_CONFIG",
	"MFS_TEMPLATE",
	"MFS_PACKAGE_MANAGER",
	"MFS_SKIP_INSTALL",
	"MFS_GIT",
	"MFS_FEATURES",
	"MFS_LOG_TIMESTAMPS",
}

// IsolateEnv points HOME at a fresh directory and clears every MFS_* variable
// for the duration of the test. It returns the new home directory.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range envVars {
		// Setenv registers the restore; Unsetenv makes the variable absent, not empty.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
	return home
}

// ListFiles returns the regular files under root as sorted slash-separated relative paths.
func ListFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to list %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}
