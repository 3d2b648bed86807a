// Package vcs initializes version control for new projects.
package vcs

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/modernstack/cli/internal/output"
)

// DefaultBranch is the initial branch of new repositories.
const DefaultBranch = "main"

// Git creates repositories with go-git, so no git binary is required.
type Git struct {
	// Branch overrides DefaultBranch.
	Branch string

	// Stage adds every project file to the index after init.
	Stage bool
}

// Init creates a repository in dir.
func (g *Git) Init(dir string) error {
	branch := g.Branch
	if branch == "" {
		branch = DefaultBranch
	}

	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(branch),
		},
	})
	if err != nil {
		return fmt.Errorf("git init %s: %w", dir, err)
	}
	output.Debug("initialized repository", "dir", dir, "branch", branch)

	if !g.Stage {
		return nil
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}
	return nil
}
