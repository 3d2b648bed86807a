// Package main is the entry point for the create-modern-fullstack CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modernstack/cli/internal/cmd"
	oerrors "github.com/modernstack/cli/internal/errors"
	"github.com/modernstack/cli/internal/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl-C cancels the context so a running package manager is stopped too.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return oerrors.ExitSuccess
	}

	code := oerrors.ExitCodeFromError(err)
	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(os.Stderr, err)
	}
	output.Debug("exiting", "code", code, "reason", cmd.ExitCodeName(code))
	return code
}
