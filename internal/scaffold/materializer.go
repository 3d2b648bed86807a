package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/modernstack/cli/internal/catalog"
	oerrors "github.com/modernstack/cli/internal/errors"
	"github.com/modernstack/cli/internal/output"
	"github.com/modernstack/cli/internal/templates"
)

var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateProjectName checks that name can be used as a single directory name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty: %w", oerrors.ErrInvalidName)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("project name %q may only contain letters, numbers, dashes and underscores: %w",
			name, oerrors.ErrInvalidName)
	}
	return nil
}

// Options configures a Materializer.
type Options struct {
	// WorkDir is the parent of the project directory. Defaults to the current directory.
	WorkDir string

	// Locator finds template trees. Defaults to the bundled templates.
	Locator *templates.Locator

	// Installer runs the install step. Nil disables it.
	Installer Installer

	// Git initializes a repository when ProjectConfig.InitGit is set. Nil disables it.
	Git RepoInitializer

	// CLIVersion is exposed to templates as cliVersion.
	CLIVersion string

	// Now overrides the clock for createdAt and year.
	Now func() time.Time
}

// Materializer turns a ProjectConfig into a project directory.
type Materializer struct {
	opts Options
}

// NewMaterializer creates a Materializer with the given options.
func NewMaterializer(opts Options) *Materializer {
	if opts.Locator == nil {
		opts.Locator = templates.NewLocator(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Materializer{opts: opts}
}

// Materialize scaffolds the project and then runs the install step.
// On failure after the directory was created, the partial project is left in place
// and the returned Result (if non-nil) describes what was written.
func (m *Materializer) Materialize(ctx context.Context, cfg ProjectConfig) (*Result, error) {
	res, err := m.Scaffold(ctx, cfg)
	if err != nil {
		return res, err
	}
	if err := m.Install(ctx, res, cfg); err != nil {
		return res, err
	}
	return res, nil
}

// Scaffold validates cfg, creates the project directory and renders the template into it.
func (m *Materializer) Scaffold(ctx context.Context, cfg ProjectConfig) (*Result, error) {
	if err := ValidateProjectName(cfg.ProjectName); err != nil {
		return nil, err
	}

	workDir := m.opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		workDir = wd
	}
	dest, err := filepath.Abs(filepath.Join(workDir, cfg.ProjectName))
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	if _, err := os.Lstat(dest); err == nil {
		return nil, &oerrors.DetailError{
			Type:     "destination exists",
			Message:  fmt.Sprintf("directory %q already exists", cfg.ProjectName),
			Location: dest,
			Hint:     "Choose a different project name or remove the existing directory.",
			Cause:    oerrors.ErrDestinationExists,
		}
	} else if !os.IsNotExist(err) {
		return nil, fsError(oerrors.ErrRead, "checking", dest, err)
	}

	tmpl, err := catalog.Get(cfg.TemplateName)
	if err != nil {
		return nil, err
	}
	if err := checkFeatures(tmpl, cfg.Features); err != nil {
		return nil, err
	}
	src, err := m.opts.Locator.Sub(tmpl.Name)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vars := BuildVariables(cfg, tmpl, Metadata{CLIVersion: m.opts.CLIVersion, Now: m.opts.Now()})
	output.Debug("render variables", "keys", sortedKeys(vars))

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fsError(oerrors.ErrWrite, "creating", dest, err)
	}

	log := output.ProjectLogger(cfg.ProjectName)
	log.Debug("scaffolding", "template", tmpl.Name, "version", tmpl.Version, "path", dest)

	r := NewRenderer(src, dest, vars)
	renderErr := r.Render()
	res := &Result{
		ProjectPath: dest,
		Template:    tmpl,
		Files:       r.Files(),
		Dirs:        r.Dirs(),
	}
	if renderErr != nil {
		return res, renderErr
	}
	log.Debug("template rendered", "files", len(res.Files), "dirs", len(res.Dirs))

	if cfg.InitGit && m.opts.Git != nil {
		if err := m.opts.Git.Init(dest); err != nil {
			return res, fmt.Errorf("initializing git repository: %w", err)
		}
		res.GitInitialized = true
		log.Debug("initialized git repository")
	}

	return res, nil
}

// Install runs the install step for a scaffolded project unless it is disabled.
func (m *Materializer) Install(ctx context.Context, res *Result, cfg ProjectConfig) error {
	if cfg.SkipInstall || m.opts.Installer == nil {
		output.Debug("skipping install", "project", cfg.ProjectName)
		return nil
	}
	if err := m.opts.Installer.Install(ctx, res.ProjectPath); err != nil {
		return fmt.Errorf("installing dependencies in %s: %w", res.ProjectPath, err)
	}
	res.Installed = true
	return nil
}

func checkFeatures(tmpl catalog.Template, features []string) error {
	var unknown []string
	for _, f := range features {
		if !tmpl.HasFeature(f) {
			unknown = append(unknown, f)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return &oerrors.DetailError{
		Type:    "validation failed",
		Message: fmt.Sprintf("template %q does not support feature(s): %s", tmpl.Name, strings.Join(unknown, ", ")),
		Field:   "feature",
		Hint:    "Available features: " + strings.Join(tmpl.Features, ", "),
		Cause:   oerrors.ErrValidation,
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fsError wraps a filesystem failure on the project directory.
// Permission failures get a DetailError pointing at the parent directory.
func fsError(sentinel error, op, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(
			fmt.Sprintf("%s %s: permission denied", op, path),
			map[string]string{"Path": path, "Parent": filepath.Dir(path)},
			"Check that you can write to the parent directory or choose another location.",
		)
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, sentinel, err)
}
