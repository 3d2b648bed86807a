// Package cmdutil provides shared command utilities: flag groups, render
// variable parsing and error printing.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// ScaffoldFlags holds the flags that shape what gets generated.
type ScaffoldFlags struct {
	Template string
	Features []string
	Vars     []string
	VarsFile string
	Yes      bool
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		"Template to use (default: basic, or the config file value)")
	cmd.Flags().StringArrayVarP(&f.Features, "feature", "f", nil,
		"Template feature to enable (can be repeated)")
	cmd.Flags().StringArrayVar(&f.Vars, "var", nil,
		"Extra template variable as key=value (can be repeated)")
	cmd.Flags().StringVar(&f.VarsFile, "vars-file", "",
		"File with extra template variables (.yaml, .yml, .toml or .json)")
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false,
		"Skip prompts and use defaults")
}

// InstallFlags holds the flags for the post-scaffold steps.
type InstallFlags struct {
	PackageManager string
	SkipInstall    bool
	Git            bool
}

// AddTo registers the install flags on the given cobra command.
func (f *InstallFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.PackageManager, "package-manager", "",
		"Package manager to install with: npm, pnpm, yarn or bun (default: npm)")
	cmd.Flags().BoolVar(&f.SkipInstall, "skip-install", false,
		"Do not install dependencies")
	cmd.Flags().BoolVar(&f.Git, "git", false,
		"Initialize a git repository in the new project")
}
