package cmd

import (
	"os"

	"github.com/modernstack/cli/internal/install"
	"github.com/modernstack/cli/internal/output"
	"github.com/modernstack/cli/internal/prompt"
	"github.com/modernstack/cli/internal/scaffold"
	"github.com/modernstack/cli/internal/templates"
	"github.com/modernstack/cli/internal/vcs"
)

// Deps are the collaborators of the create command.
type Deps struct {
	// Prompter asks the interactive questions.
	Prompter prompt.Prompter

	// NewInstaller returns the installer for a package manager.
	NewInstaller func(packageManager string) scaffold.Installer

	// Git initializes repositories for --git.
	Git scaffold.RepoInitializer

	// Locator finds template trees.
	Locator *templates.Locator

	// WorkDir is where projects are created. Empty means the current directory.
	WorkDir string

	// Interactive reports whether prompts can be shown.
	Interactive func() bool
}

// DefaultDeps returns the production collaborators.
func DefaultDeps() Deps {
	return Deps{}.withDefaults()
}

func (d Deps) withDefaults() Deps {
	if d.Prompter == nil {
		// ACCESSIBLE switches huh to line-based prompts for screen readers.
		d.Prompter = &prompt.Huh{Accessible: os.Getenv("ACCESSIBLE") != ""}
	}
	if d.NewInstaller == nil {
		d.NewInstaller = func(pm string) scaffold.Installer { return install.New(pm) }
	}
	if d.Git == nil {
		d.Git = &vcs.Git{Stage: true}
	}
	if d.Locator == nil {
		d.Locator = templates.NewLocator(nil)
	}
	if d.Interactive == nil {
		d.Interactive = output.IsInteractive
	}
	return d
}
