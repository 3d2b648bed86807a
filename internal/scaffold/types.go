// Package scaffold renders template trees into new project directories.
package scaffold

import (
	"context"

	"github.com/modernstack/cli/internal/catalog"
)

// ProjectConfig is the caller's answer set for one scaffold run.
type ProjectConfig struct {
	// ProjectName names the project and its directory. Must match ^[A-Za-z0-9_-]+$.
	ProjectName string

	// TemplateName selects a catalog entry.
	TemplateName string

	// Features is the subset of the template's declared features to enable.
	Features []string

	// Extra holds additional render variables. Keys here win over built-in ones.
	Extra map[string]any

	// PackageManager is exposed to templates and used by the installer. Defaults to npm.
	PackageManager string

	// SkipInstall disables the install step.
	SkipInstall bool

	// InitGit creates a git repository in the new project.
	InitGit bool
}

// Result describes a completed scaffold.
type Result struct {
	// ProjectPath is the absolute destination directory.
	ProjectPath string

	// Template is the catalog entry that was rendered.
	Template catalog.Template

	// Files are the created files relative to ProjectPath, in creation order.
	Files []FileRecord

	// Dirs are the created directories relative to ProjectPath, in creation order.
	Dirs []string

	// GitInitialized is true when a repository was created.
	GitInitialized bool

	// Installed is true when the install step ran and succeeded.
	Installed bool
}

// FileRecord is one created file.
type FileRecord struct {
	// Path is relative to the project directory, slash separated.
	Path string

	// Rendered is true for template files, false for verbatim copies.
	Rendered bool
}

// Installer runs the dependency install step in a project directory.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// RepoInitializer creates a version control repository in a directory.
type RepoInitializer interface {
	Init(dir string) error
}
