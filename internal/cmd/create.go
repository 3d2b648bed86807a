package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modernstack/cli/internal/catalog"
	"github.com/modernstack/cli/internal/cmdutil"
	"github.com/modernstack/cli/internal/config"
	oerrors "github.com/modernstack/cli/internal/errors"
	"github.com/modernstack/cli/internal/install"
	"github.com/modernstack/cli/internal/output"
	"github.com/modernstack/cli/internal/prompt"
	"github.com/modernstack/cli/internal/scaffold"
	"github.com/modernstack/cli/internal/vcs"
	"github.com/modernstack/cli/internal/version"
)

// createOptions is the fully resolved input of one create run.
type createOptions struct {
	ProjectName    string
	TemplateName   string
	Features       []string
	Extra          map[string]any
	PackageManager string
	SkipInstall    bool
	Git            bool
}

func (o createOptions) projectConfig() scaffold.ProjectConfig {
	return scaffold.ProjectConfig{
		ProjectName:    o.ProjectName,
		TemplateName:   o.TemplateName,
		Features:       o.Features,
		Extra:          o.Extra,
		PackageManager: o.PackageManager,
		SkipInstall:    o.SkipInstall,
		InitGit:        o.Git,
	}
}

// runCreate resolves options, asks the remaining questions and materializes the project.
func runCreate(c *cobra.Command, args []string, cfg *GlobalConfig, sf *cmdutil.ScaffoldFlags, inf *cmdutil.InstallFlags) error {
	ctx := c.Context()
	out := c.OutOrStdout()
	errOut := c.ErrOrStderr()

	opts, err := resolveCreateOptions(c, args, cfg, sf, inf)
	if err != nil {
		return cmdutil.Fail(errOut, "invalid options", err)
	}

	interactive := !sf.Yes && cfg.deps.Interactive()
	if interactive {
		printBanner(out)
		opts, err = askCreateOptions(cfg.deps.Prompter, opts, len(args) > 0, c.Flags().Changed("feature"))
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(errOut, "Operation cancelled.")
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
		}
		if err != nil {
			return cmdutil.Fail(errOut, "prompt failed", err)
		}
	} else {
		if opts.ProjectName == "" {
			opts.ProjectName = prompt.DefaultProjectName
		}
		if !c.Flags().Changed("feature") {
			opts.Features = defaultFeatures(opts.TemplateName, opts.Features)
		}
		output.Debug("running without prompts", "yes", sf.Yes)
	}

	if err := install.ValidatePackageManager(opts.PackageManager); err != nil {
		return cmdutil.Fail(errOut, "invalid options", err)
	}

	m := scaffold.NewMaterializer(scaffold.Options{
		WorkDir:    cfg.deps.WorkDir,
		Locator:    cfg.deps.Locator,
		Installer:  cfg.deps.NewInstaller(opts.PackageManager),
		Git:        cfg.deps.Git,
		CLIVersion: version.GetInfo().Short(),
	})
	pc := opts.projectConfig()

	var res *scaffold.Result
	err = output.RunWithSpinner(ctx, func() error {
		var scaffoldErr error
		res, scaffoldErr = m.Scaffold(ctx, pc)
		return scaffoldErr
	},
		output.WithTitle(fmt.Sprintf("Creating %s from the %s template...", opts.ProjectName, opts.TemplateName)),
		output.WithDoneMessage(fmt.Sprintf("Scaffolded %s", output.StyleNoun.Render(opts.ProjectName))),
	)
	if res != nil {
		fmt.Fprintln(out, output.RenderFileTree(opts.ProjectName, fileStatuses(res, err)))
	}
	if err != nil {
		return cmdutil.Fail(errOut, "creating project", err)
	}

	if !pc.SkipInstall {
		output.ProjectLogger(opts.ProjectName).Info("installing dependencies", "packageManager", opts.PackageManager)
	}
	if err := m.Install(ctx, res, pc); err != nil {
		return cmdutil.Fail(errOut, "installing dependencies", err)
	}

	printSuccess(out, opts, res)
	return nil
}

// resolveCreateOptions applies flag > env > config > default to every create input.
func resolveCreateOptions(c *cobra.Command, args []string, cfg *GlobalConfig, sf *cmdutil.ScaffoldFlags, inf *cmdutil.InstallFlags) (createOptions, error) {
	fileCfg := cfg.Config
	if fileCfg == nil {
		fileCfg = &config.Config{}
	}
	inConfig := func(key string) bool {
		return cfg.Loader != nil && cfg.Loader.InConfig(key)
	}
	defaults := config.DefaultConfig()

	tmpl := config.Resolve(config.ResolveOptions{
		Key:         "template",
		FlagValue:   sf.Template,
		FlagSet:     c.Flags().Changed("template"),
		ConfigValue: fileCfg.Template,
		ConfigSet:   inConfig("template"),
		Default:     defaults.Template,
	})
	pm := config.Resolve(config.ResolveOptions{
		Key:         "packageManager",
		FlagValue:   inf.PackageManager,
		FlagSet:     c.Flags().Changed("package-manager"),
		ConfigValue: fileCfg.PackageManager,
		ConfigSet:   inConfig("packageManager"),
		Default:     defaults.PackageManager,
	})
	skip := config.Resolve(config.ResolveOptions{
		Key:         "skipInstall",
		FlagValue:   strconv.FormatBool(inf.SkipInstall),
		FlagSet:     c.Flags().Changed("skip-install"),
		ConfigValue: strconv.FormatBool(fileCfg.SkipInstall),
		ConfigSet:   inConfig("skipInstall"),
		Default:     "false",
	})
	git := config.Resolve(config.ResolveOptions{
		Key:         "git",
		FlagValue:   strconv.FormatBool(inf.Git),
		FlagSet:     c.Flags().Changed("git"),
		ConfigValue: strconv.FormatBool(fileCfg.Git),
		ConfigSet:   inConfig("git"),
		Default:     "false",
	})
	config.LogResolvedValues([]config.ResolvedValue{tmpl, pm, skip, git})

	skipInstall, err := parseBoolValue(skip)
	if err != nil {
		return createOptions{}, err
	}
	initGit, err := parseBoolValue(git)
	if err != nil {
		return createOptions{}, err
	}

	extra, err := cmdutil.ParseVars(sf.VarsFile, sf.Vars)
	if err != nil {
		return createOptions{}, err
	}

	features := sf.Features
	if !c.Flags().Changed("feature") {
		features = fileCfg.Features
	}

	opts := createOptions{
		TemplateName:   tmpl.Value,
		Features:       features,
		Extra:          extra,
		PackageManager: pm.Value,
		SkipInstall:    skipInstall,
		Git:            initGit,
	}
	if len(args) > 0 {
		opts.ProjectName = args[0]
	}
	return opts, nil
}

func parseBoolValue(v config.ResolvedValue) (bool, error) {
	b, err := strconv.ParseBool(v.Value)
	if err != nil {
		hint := "Use true or false"
		if env := config.EnvVar(v.Key); env != "" && v.Source == config.SourceEnv {
			hint = fmt.Sprintf("Set %s to true or false", env)
		}
		return false, oerrors.NewValidationError(
			fmt.Sprintf("%q is not a boolean", v.Value), "", v.Key, hint)
	}
	return b, nil
}

// askCreateOptions runs the prompter with opts as defaults and merges the answers back.
func askCreateOptions(p prompt.Prompter, opts createOptions, nameGiven, featuresGiven bool) (createOptions, error) {
	answers, err := p.Ask(prompt.Answers{
		ProjectName:    opts.ProjectName,
		TemplateName:   opts.TemplateName,
		Features:       opts.Features,
		PackageManager: opts.PackageManager,
		Install:        !opts.SkipInstall,
		AskName:        !nameGiven,
	})
	if err != nil {
		return opts, err
	}

	opts.ProjectName = answers.ProjectName
	opts.TemplateName = answers.TemplateName
	opts.Features = answers.Features
	opts.PackageManager = answers.PackageManager
	opts.SkipInstall = !answers.Install
	output.Debug("prompt answers",
		"project", opts.ProjectName,
		"template", opts.TemplateName,
		"features", strings.Join(opts.Features, ","),
		"explicitFeatures", featuresGiven,
	)
	return opts, nil
}

// defaultFeatures picks the configured features the template supports, or all of them.
// Unknown templates keep the list as is so the materializer reports the template error.
func defaultFeatures(templateName string, configured []string) []string {
	tmpl, err := catalog.Get(templateName)
	if err != nil {
		return configured
	}
	return prompt.DefaultFeatures(tmpl, configured)
}

// fileStatuses maps created paths to their tree annotation. When scaffolding
// failed the tree shows what was written before the failure.
func fileStatuses(res *scaffold.Result, scaffoldErr error) map[string]string {
	statuses := make(map[string]string, len(res.Files))
	for _, f := range res.Files {
		if f.Rendered {
			statuses[f.Path] = output.StatusRendered
		} else {
			statuses[f.Path] = output.StatusCopied
		}
	}
	if scaffoldErr != nil {
		output.Debug("partial project left in place", "path", res.ProjectPath, "files", len(res.Files))
	}
	return statuses
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, output.StyleSummary.Render("Welcome to Modern Fullstack CLI!"))
	fmt.Fprintln(w, output.StyleDim.Render("Let's create something amazing together"))
	fmt.Fprintln(w)
}

func printSuccess(w io.Writer, opts createOptions, res *scaffold.Result) {
	steps := []string{"cd " + opts.ProjectName}
	if !res.Installed {
		steps = append(steps, opts.PackageManager+" install")
	}
	steps = append(steps, opts.PackageManager+" run dev")

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.FormatCheckmark("Project created successfully!"))
	if res.GitInitialized {
		fmt.Fprintln(w, output.StyleDim.Render("Initialized a git repository on branch "+vcs.DefaultBranch))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, output.FormatNextSteps(steps))
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleAction.Render("Your app will be running at:"))
	fmt.Fprintln(w, "  Frontend: "+output.StyleNoun.Render("http://localhost:3000"))
	fmt.Fprintln(w, "  API:      "+output.StyleNoun.Render("http://localhost:8000"))
	fmt.Fprintln(w, "  API Docs: "+output.StyleNoun.Render("http://localhost:8000/ui"))
}
