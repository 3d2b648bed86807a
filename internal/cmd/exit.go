package cmd

import (
	oerrors "github.com/modernstack/cli/internal/errors"
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case oerrors.ExitSuccess:
		return "Success"
	case oerrors.ExitGeneralError:
		return "General Error"
	default:
		return "Unknown"
	}
}
