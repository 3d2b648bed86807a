package cmdutil

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/modernstack/cli/internal/errors"
	"github.com/modernstack/cli/internal/output"
)

// PrintError writes a failure to w in a user-friendly format.
// DetailErrors print their structured block; other errors print one line
// prefixed with msg.
func PrintError(w io.Writer, msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprint(w, detail.Error())
		return
	}
	fmt.Fprintln(w, output.StyleError.Render(fmt.Sprintf("Error: %s: %v", msg, err)))
}

// Fail prints err and returns it as an already printed ExitError.
// Every failure exits with the general error code.
func Fail(w io.Writer, msg string, err error) error {
	PrintError(w, msg, err)
	return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
}
