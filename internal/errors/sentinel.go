package errors

import (
	"errors"
	"strconv"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input or a config schema failure.
	ErrValidation = errors.New("validation error")

	// ErrInvalidName indicates a project name that cannot be used as a directory name.
	ErrInvalidName = errors.New("invalid project name")

	// ErrTemplateNotFound indicates a template name missing from the catalog or its bundled tree.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrDestinationExists indicates the project directory is already present.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrRead indicates a template entry could not be read.
	ErrRead = errors.New("read error")

	// ErrWrite indicates a destination file or directory could not be created.
	ErrWrite = errors.New("write error")

	// ErrRender indicates malformed template syntax.
	ErrRender = errors.New("render error")

	// ErrInstallFailed indicates the package manager exited unsuccessfully.
	ErrInstallFailed = errors.New("install failed")

	// ErrPermission indicates insufficient permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes. Every failure maps to ExitGeneralError; the constants exist so
// call sites read the same way whatever the mapping becomes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates the command failed.
	ExitGeneralError = 1
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already wrote the error to stderr.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneralError
}
