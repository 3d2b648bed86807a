// Package catalog provides the fixed table of project templates.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/modernstack/cli/internal/errors"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "basic"

// Template describes one bundled project template.
type Template struct {
	// Name is the template identifier, unique and kebab-case.
	Name string `json:"name"`

	// Description is the one-line summary shown by list and the prompt.
	Description string `json:"description"`

	// Features are the capability tags the template supports, in display order.
	Features []string `json:"features"`

	// Version is the template's semantic version.
	Version string `json:"version"`
}

// HasFeature reports whether the template declares tag.
func (t Template) HasFeature(tag string) bool {
	for _, f := range t.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// SemVer parses the template version.
func (t Template) SemVer() (*semver.Version, error) {
	v, err := semver.StrictNewVersion(t.Version)
	if err != nil {
		return nil, fmt.Errorf("template %q has invalid version %q: %w", t.Name, t.Version, err)
	}
	return v, nil
}

// templates is the catalog in declaration order. It is never mutated.
var templates = []Template{
	{
		Name:        "basic",
		Description: "Basic fullstack template with TanStack Router and Hono",
		Features:    []string{"router", "api", "typescript"},
		Version:     "0.1.0",
	},
	{
		Name:        "advanced",
		Description: "Advanced template with auth, database, and testing",
		Features:    []string{"router", "api", "typescript", "auth", "database", "testing"},
		Version:     "0.1.0",
	},
}

// List returns all available templates in declaration order.
// The returned slice is a copy.
func List() []Template {
	out := make([]Template, len(templates))
	for i, t := range templates {
		t.Features = append([]string(nil), t.Features...)
		out[i] = t
	}
	return out
}

// Get returns a template by exact, case-sensitive name.
func Get(name string) (Template, error) {
	for _, t := range templates {
		if t.Name == name {
			t.Features = append([]string(nil), t.Features...)
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("template %q: %w; valid templates: %s",
		name, oerrors.ErrTemplateNotFound, strings.Join(Names(), ", "))
}

// Default returns the default template.
func Default() Template {
	t, _ := Get(DefaultTemplateName)
	return t
}

// Names returns all template names in declaration order.
func Names() []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

var kebabCase = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks that every entry is well formed: kebab-case unique names,
// at least one feature, no duplicate features and a strict semantic version.
func Validate(list []Template) error {
	seen := make(map[string]bool, len(list))
	for _, t := range list {
		if !kebabCase.MatchString(t.Name) {
			return fmt.Errorf("template name %q is not kebab-case: %w", t.Name, oerrors.ErrValidation)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate template name %q: %w", t.Name, oerrors.ErrValidation)
		}
		seen[t.Name] = true

		if len(t.Features) == 0 {
			return fmt.Errorf("template %q declares no features: %w", t.Name, oerrors.ErrValidation)
		}
		features := make(map[string]bool, len(t.Features))
		for _, f := range t.Features {
			if features[f] {
				return fmt.Errorf("template %q declares feature %q twice: %w", t.Name, f, oerrors.ErrValidation)
			}
			features[f] = true
		}

		if _, err := t.SemVer(); err != nil {
			return fmt.Errorf("%w: %w", oerrors.ErrValidation, err)
		}
	}
	return nil
}
