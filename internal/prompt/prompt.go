// Package prompt asks the interactive questions for a new project.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/modernstack/cli/internal/catalog"
	"github.com/modernstack/cli/internal/install"
	"github.com/modernstack/cli/internal/scaffold"
)

// DefaultProjectName is offered when no name was given on the command line.
const DefaultProjectName = "my-awesome-app"

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("aborted by user")

// Answers holds what the user chose. Fields set before Ask are used as defaults;
// AskName is false when the project name came from the command line.
type Answers struct {
	ProjectName    string
	TemplateName   string
	Features       []string
	PackageManager string
	Install        bool

	AskName bool
}

// Prompter collects Answers.
type Prompter interface {
	Ask(defaults Answers) (Answers, error)
}

// Huh asks questions with charmbracelet/huh forms.
type Huh struct {
	// Accessible switches huh to line-based prompts for screen readers.
	Accessible bool
}

// Ask runs the form in two steps: identity first, then the chosen template's features.
func (h *Huh) Ask(defaults Answers) (Answers, error) {
	a := defaults
	if a.ProjectName == "" {
		a.ProjectName = DefaultProjectName
	}
	if a.TemplateName == "" {
		a.TemplateName = catalog.DefaultTemplateName
	}
	if a.PackageManager == "" {
		a.PackageManager = install.NPM
	}

	var fields []huh.Field
	if a.AskName {
		fields = append(fields, huh.NewInput().
			Title("What is your project named?").
			Placeholder(DefaultProjectName).
			Validate(ValidateName).
			Value(&a.ProjectName))
	}
	fields = append(fields, huh.NewSelect[string]().
		Title("Which template would you like to use?").
		Options(TemplateOptions(catalog.List())...).
		Value(&a.TemplateName))

	if err := h.run(huh.NewForm(huh.NewGroup(fields...))); err != nil {
		return Answers{}, err
	}

	tmpl, err := catalog.Get(a.TemplateName)
	if err != nil {
		return Answers{}, err
	}
	a.Features = DefaultFeatures(tmpl, a.Features)

	second := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select features").
				Description("Use space to toggle, enter to confirm").
				Options(FeatureOptions(tmpl, a.Features)...).
				Value(&a.Features),
			huh.NewSelect[string]().
				Title("Which package manager?").
				Options(huh.NewOptions(install.PackageManagers()...)...).
				Value(&a.PackageManager),
			huh.NewConfirm().
				Title("Install dependencies now?").
				Value(&a.Install),
		),
	)
	if err := h.run(second); err != nil {
		return Answers{}, err
	}
	return a, nil
}

func (h *Huh) run(form *huh.Form) error {
	err := form.WithAccessible(h.Accessible).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// ValidateName is the project name validator used by the name input.
func ValidateName(name string) error {
	if err := scaffold.ValidateProjectName(name); err != nil {
		return errors.New("project name may only include letters, numbers, dashes and underscores")
	}
	return nil
}

// TemplateOptions builds select options labelled "name - description".
func TemplateOptions(list []catalog.Template) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(list))
	for _, t := range list {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s - %s", t.Name, t.Description), t.Name))
	}
	return opts
}

// FeatureOptions builds multi-select options for tmpl with selected pre-checked.
func FeatureOptions(tmpl catalog.Template, selected []string) []huh.Option[string] {
	on := make(map[string]bool, len(selected))
	for _, s := range selected {
		on[s] = true
	}
	opts := make([]huh.Option[string], 0, len(tmpl.Features))
	for _, f := range tmpl.Features {
		opts = append(opts, huh.NewOption(f, f).Selected(on[f]))
	}
	return opts
}

// DefaultFeatures keeps the preselected features the template supports, or
// selects all of them when none remain.
func DefaultFeatures(tmpl catalog.Template, preselected []string) []string {
	var kept []string
	for _, f := range preselected {
		if tmpl.HasFeature(f) {
			kept = append(kept, f)
		}
	}
	if len(kept) > 0 {
		return kept
	}
	return append([]string(nil), tmpl.Features...)
}
