// Package install runs the package manager inside a freshly scaffolded project.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/modernstack/cli/internal/errors"
	"github.com/modernstack/cli/internal/output"
)

// Supported package managers.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
	Bun  = "bun"
)

// PackageManagers returns the supported package manager names.
func PackageManagers() []string {
	return []string{NPM, PNPM, Yarn, Bun}
}

// ValidatePackageManager checks that name is supported.
func ValidatePackageManager(name string) error {
	for _, pm := range PackageManagers() {
		if pm == name {
			return nil
		}
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("unsupported package manager %q", name),
		"", "package-manager",
		"Use one of: "+strings.Join(PackageManagers(), ", "),
	)
}

// InstallError reports a package manager that ran and exited unsuccessfully.
type InstallError struct {
	Command string
	Code    int
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	return fmt.Sprintf("%s failed with code %d", e.Command, e.Code)
}

// Unwrap returns ErrInstallFailed.
func (e *InstallError) Unwrap() error {
	return oerrors.ErrInstallFailed
}

// Runner runs "<binary> <args...>" in a project directory with the parent's stdio.
type Runner struct {
	Binary string
	Args   []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner that executes "<packageManager> install".
func New(packageManager string) *Runner {
	if packageManager == "" {
		packageManager = NPM
	}
	return &Runner{
		Binary: packageManager,
		Args:   []string{"install"},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command returns the command line the runner executes.
func (r *Runner) Command() string {
	return strings.Join(append([]string{r.Binary}, r.Args...), " ")
}

// Install runs the command in dir and waits for it.
// A non-zero exit becomes an *InstallError; failure to start is wrapped in ErrInstallFailed.
func (r *Runner) Install(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, r.Binary, r.Args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	output.Debug("running package manager", "command", r.Command(), "dir", dir)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &InstallError{Command: r.Command(), Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("running %s: %w: %w", r.Command(), oerrors.ErrInstallFailed, err)
}
