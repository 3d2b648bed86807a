package output

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
	done  string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithDoneMessage prints a checkmark line with msg once the action succeeds.
func WithDoneMessage(msg string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.done = msg
	}
}

// RunWithSpinner runs action while showing a spinner on a terminal.
// Without a terminal the action runs directly. Returns the action's error.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	var err error
	if IsTTY() {
		err = runSpinner(ctx, cfg.title, action)
	} else {
		err = action()
	}
	Debug("step finished", "step", cfg.title, "duration", time.Since(start).Round(time.Millisecond))

	if err == nil && cfg.done != "" {
		Println(FormatCheckmark(cfg.done))
	}
	return err
}

func runSpinner(ctx context.Context, title string, action func() error) error {
	return runWithIndicator(ctx, action, func(wait func()) error {
		return spinner.New().Title(title).Action(wait).Run()
	})
}

// runWithIndicator runs action in the background while show renders progress.
// show gets a wait func that returns once the action finishes or ctx is done.
// The action result is read only after show returns.
func runWithIndicator(ctx context.Context, action func() error, show func(wait func()) error) error {
	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		errCh <- action()
		close(done)
	}()

	showErr := show(func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
	})

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	if showErr != nil {
		return fmt.Errorf("spinner error: %w", showErr)
	}
	return nil
}
