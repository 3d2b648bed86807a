package scaffold

import (
	"time"

	"github.com/iancoleman/strcase"

	"github.com/modernstack/cli/internal/catalog"
)

// DefaultPackageManager is used when ProjectConfig.PackageManager is empty.
const DefaultPackageManager = "npm"

// Metadata carries values that come from the running binary rather than the user.
type Metadata struct {
	CLIVersion string
	Now        time.Time
}

// BuildVariables returns the render mapping for cfg and tmpl.
//
// Keys, in the order they are applied:
//   - projectName and its case variants (projectNamePascal, projectNameCamel,
//     projectNameSnake, projectNameKebab)
//   - templateName, templateVersion, packageManager, cliVersion, year, createdAt
//   - features: the selected feature tags in template declaration order
//   - one boolean per declared feature, keyed by its lowerCamel tag
//   - cfg.Extra, overriding anything above
func BuildVariables(cfg ProjectConfig, tmpl catalog.Template, meta Metadata) map[string]any {
	now := meta.Now
	if now.IsZero() {
		now = time.Now()
	}
	pm := cfg.PackageManager
	if pm == "" {
		pm = DefaultPackageManager
	}

	vars := map[string]any{
		"projectName":       cfg.ProjectName,
		"projectNamePascal": strcase.ToCamel(cfg.ProjectName),
		"projectNameCamel":  strcase.ToLowerCamel(cfg.ProjectName),
		"projectNameSnake":  strcase.ToSnake(cfg.ProjectName),
		"projectNameKebab":  strcase.ToKebab(cfg.ProjectName),
		"templateName":      tmpl.Name,
		"templateVersion":   tmpl.Version,
		"packageManager":    pm,
		"cliVersion":        meta.CLIVersion,
		"year":              now.Year(),
		"createdAt":         now.UTC().Format(time.RFC3339),
	}

	selected := make(map[string]bool, len(cfg.Features))
	for _, f := range cfg.Features {
		selected[f] = true
	}

	features := make([]string, 0, len(cfg.Features))
	for _, f := range tmpl.Features {
		on := selected[f]
		vars[strcase.ToLowerCamel(f)] = on
		if on {
			features = append(features, f)
		}
	}
	vars["features"] = features

	for k, v := range cfg.Extra {
		vars[k] = v
	}
	return vars
}
